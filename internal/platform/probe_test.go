package platform

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRunner scripts command results by executable name.
type fakeRunner struct {
	outputs map[string]string
	errs    map[string]error
	calls   [][]string
}

func newFakeRunner() *fakeRunner {
	return &fakeRunner{
		outputs: make(map[string]string),
		errs:    make(map[string]error),
	}
}

func (r *fakeRunner) Output(ctx context.Context, name string, args ...string) (string, error) {
	r.calls = append(r.calls, append([]string{name}, args...))
	if err, ok := r.errs[name]; ok {
		return "", err
	}
	out, ok := r.outputs[name]
	if !ok {
		return "", fmt.Errorf("command %s: executable file not found in $PATH", name)
	}
	return out, nil
}

func TestCommandOutputTrimsStdout(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["opera"] = "114.0.5735.90\n"
	probe := NewProbe(runner)

	out, ok, err := probe.CommandOutput(context.Background(), "opera", "--version")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "114.0.5735.90", out)
}

func TestCommandOutputMissingCommandIsAbsent(t *testing.T) {
	probe := NewProbe(newFakeRunner())

	_, ok, err := probe.CommandOutput(context.Background(), "no-such-browser", "--version")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommandOutputEmptyStdoutIsAbsent(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["opera"] = "   \n"
	probe := NewProbe(runner)

	_, ok, err := probe.CommandOutput(context.Background(), "opera", "--version")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCommandOutputTimeoutIsFatal(t *testing.T) {
	runner := newFakeRunner()
	runner.errs["opera"] = fmt.Errorf("command opera: %w", context.DeadlineExceeded)
	probe := NewProbe(runner)

	_, ok, err := probe.CommandOutput(context.Background(), "opera", "--version")
	assert.False(t, ok)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestMacAppVersionReadsBundlePlist(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["defaults"] = "99.0.4788.13\n"
	probe := NewProbe(runner)

	v, ok, err := probe.MacAppVersion(context.Background(), "Opera Beta")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "99.0.4788.13", v)

	require.Len(t, runner.calls, 1)
	assert.Equal(t, []string{
		"defaults", "read",
		"/Applications/Opera Beta.app/Contents/Info",
		"CFBundleShortVersionString",
	}, runner.calls[0])
}

func TestWindowsExeVersionMissingFileIsAbsent(t *testing.T) {
	runner := newFakeRunner()
	runner.outputs["powershell"] = "114.0.5735.90"
	probe := NewProbe(runner)

	missing := filepath.Join(t.TempDir(), "launcher.exe")
	_, ok, err := probe.WindowsExeVersion(context.Background(), missing)
	require.NoError(t, err)
	assert.False(t, ok)
	// The powershell probe must not run for a missing file.
	assert.Empty(t, runner.calls)
}

func TestRunnerReportsMissingExecutable(t *testing.T) {
	runner := NewRunner(DefaultCommandTimeout)

	_, err := runner.Output(context.Background(), "definitely-not-a-real-binary-12345")
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.DeadlineExceeded))
}
