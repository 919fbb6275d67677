// Package platform normalizes the inconsistent ways browser vendors expose
// their installed version (macOS bundle metadata, a --version flag, a Windows
// PE version resource) into three narrow probe primitives, and derives the
// run-constant platform descriptor.
package platform

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"getdriver.dev/cli/internal/core/ports"
)

// Probe answers best-effort "what version is installed" questions. A probe
// that finds nothing reports ok=false and a nil error; the error return is
// reserved for cancelled or timed-out lookups, which are fatal for the run.
type Probe struct {
	runner ports.CommandRunner
}

// NewProbe creates a Probe backed by the given command runner.
func NewProbe(runner ports.CommandRunner) *Probe {
	return &Probe{runner: runner}
}

// MacAppVersion reads CFBundleShortVersionString from a macOS application
// bundle under /Applications. Products ship under several bundle names, so
// callers try candidates in order and take the first hit.
func (p *Probe) MacAppVersion(ctx context.Context, appName string) (string, bool, error) {
	plist := fmt.Sprintf("/Applications/%s.app/Contents/Info", appName)
	return p.CommandOutput(ctx, "defaults", "read", plist, "CFBundleShortVersionString")
}

// CommandOutput runs a command and returns its trimmed standard output.
// "Command not found" and non-zero exits are absent results, not errors.
func (p *Probe) CommandOutput(ctx context.Context, name string, args ...string) (string, bool, error) {
	out, err := p.runner.Output(ctx, name, args...)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return "", false, err
		}
		return "", false, nil
	}
	out = strings.TrimSpace(out)
	return out, out != "", nil
}

// WindowsExeVersion reads the file-version resource of a Windows executable.
// Absent when the file does not exist or carries no version metadata.
func (p *Probe) WindowsExeVersion(ctx context.Context, path string) (string, bool, error) {
	if _, err := os.Stat(path); err != nil {
		return "", false, nil
	}
	script := fmt.Sprintf("(Get-Item '%s').VersionInfo.FileVersion", path)
	return p.CommandOutput(ctx, "powershell", "-NoProfile", "-Command", script)
}
