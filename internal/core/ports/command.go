package ports

import "context"

// CommandRunner abstracts subprocess execution for version probes. It exists
// so probe chains are testable without the real binaries installed.
type CommandRunner interface {
	// Output runs name with args and returns its raw standard output.
	// Failure to start, a non-zero exit, and a timeout are all errors;
	// callers decide which of those mean "absent".
	Output(ctx context.Context, name string, args ...string) (string, error)
}
