// Package drivers holds the concrete per-browser installers and the registry
// that selects one at configuration time by browser name.
package drivers

import (
	"fmt"
	"os/exec"
	"os/user"
	"sort"
	"strings"

	"getdriver.dev/cli/internal/core/domain"
	"getdriver.dev/cli/internal/core/ports"
	"getdriver.dev/cli/internal/platform"
)

// Deps bundles the collaborators every installer composes. The zero value of
// the optional fields (LookPath, Username, Progress) is filled with
// production defaults by New.
type Deps struct {
	Descriptor domain.Descriptor
	Probe      *platform.Probe
	Tags       ports.TagResolver
	Fetcher    ports.Fetcher
	Archive    ports.ArchiveInstaller

	// LookPath resolves a bare executable name via PATH.
	LookPath func(file string) (string, error)
	// Username returns the current OS user name, for per-user install paths.
	Username func() (string, error)
	// Progress receives download progress keyed by driver name.
	Progress func(driver string, downloaded, total int64)
}

// Factory builds a DriverInstaller from shared dependencies.
type Factory func(deps Deps) ports.DriverInstaller

var registry = map[string]Factory{
	"opera":  NewOpera,
	"chrome": NewChrome,
}

// New returns the installer registered for browser, with optional Deps
// fields defaulted.
func New(browser string, deps Deps) (ports.DriverInstaller, error) {
	factory, ok := registry[browser]
	if !ok {
		return nil, fmt.Errorf("unknown browser %q (supported: %s)", browser, strings.Join(Browsers(), ", "))
	}
	if deps.LookPath == nil {
		deps.LookPath = exec.LookPath
	}
	if deps.Username == nil {
		deps.Username = currentUsername
	}
	return factory(deps), nil
}

// Browsers lists the registered browser names in stable order.
func Browsers() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// currentUsername returns the bare user name, stripping any Windows
// DOMAIN\ qualifier.
func currentUsername() (string, error) {
	u, err := user.Current()
	if err != nil {
		return "", fmt.Errorf("resolve current user: %w", err)
	}
	name := u.Username
	if i := strings.LastIndexByte(name, '\\'); i >= 0 {
		name = name[i+1:]
	}
	return name, nil
}

// boundProgress adapts the per-driver progress callback to the archive
// installer's ProgressFunc shape. Returns nil when no callback is set.
func boundProgress(deps Deps, driver string) ports.ProgressFunc {
	if deps.Progress == nil {
		return nil
	}
	return func(downloaded, total int64) {
		deps.Progress(driver, downloaded, total)
	}
}
