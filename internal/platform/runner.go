package platform

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"getdriver.dev/cli/internal/core/ports"
)

// DefaultCommandTimeout bounds every version probe so a wedged browser binary
// cannot hang an install run.
const DefaultCommandTimeout = 10 * time.Second

// execRunner runs commands via os/exec with a per-command timeout.
type execRunner struct {
	timeout time.Duration
}

// NewRunner returns the production CommandRunner. A non-positive timeout
// falls back to DefaultCommandTimeout.
func NewRunner(timeout time.Duration) ports.CommandRunner {
	if timeout <= 0 {
		timeout = DefaultCommandTimeout
	}
	return &execRunner{timeout: timeout}
}

func (r *execRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	var stdout bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout

	err := cmd.Run()
	// exec reports a killed process, not the deadline; surface the context
	// error so callers can tell a timeout from "command not found".
	if ctx.Err() != nil {
		return "", fmt.Errorf("command %s: %w", name, ctx.Err())
	}
	if err != nil {
		return "", fmt.Errorf("command %s: %w", name, err)
	}
	return stdout.String(), nil
}
