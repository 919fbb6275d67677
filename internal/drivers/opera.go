package drivers

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"getdriver.dev/cli/internal/core/domain"
	"getdriver.dev/cli/internal/core/ports"
	"getdriver.dev/cli/internal/platform"
)

const operaDriverRepo = "operasoftware/operachromiumdriver"

// operaSpec carries Opera's vendor conventions: release tags are prefixed
// "v." and the driver binary sits one directory deep in the archive, under
// operadriver_<platform>/.
var operaSpec = domain.DriverSpec{
	BrowserName:    "opera",
	DriverName:     "operadriver",
	ArchiveURL:     "https://github.com/operasoftware/operachromiumdriver/releases/download/v.%s/operadriver_%s.zip",
	EntryPath:      "operadriver_%s/operadriver%s",
	OutputFileName: "operadriver",
}

// Opera installs operadriver. Driver versions are resolved from the latest
// published operachromiumdriver release rather than from the installed
// browser build: Opera does not publish a driver for every browser build, so
// the latest tag is the version guaranteed to exist for download.
type Opera struct {
	spec     domain.DriverSpec
	desc     domain.Descriptor
	probe    *platform.Probe
	tags     ports.TagResolver
	archive  ports.ArchiveInstaller
	lookPath func(string) (string, error)
	username func() (string, error)
	progress ports.ProgressFunc
}

// NewOpera creates the Opera driver installer.
func NewOpera(deps Deps) ports.DriverInstaller {
	return &Opera{
		spec:     operaSpec,
		desc:     deps.Descriptor,
		probe:    deps.Probe,
		tags:     deps.Tags,
		archive:  deps.Archive,
		lookPath: deps.LookPath,
		username: deps.Username,
		progress: boundProgress(deps, operaSpec.DriverName),
	}
}

func (o *Opera) BrowserName() string { return o.spec.BrowserName }

func (o *Opera) DriverName() string { return o.spec.DriverName }

// InstalledBrowserVersion probes the host for an Opera install, trying each
// OS-specific candidate in order and short-circuiting on the first hit.
func (o *Opera) InstalledBrowserVersion(ctx context.Context) (string, bool, error) {
	switch o.desc.OS {
	case domain.OSDarwin:
		// Stable and Beta ship under different bundle names.
		for _, app := range []string{"Opera", "Opera Beta"} {
			if v, ok, err := o.probe.MacAppVersion(ctx, app); err != nil || ok {
				return v, ok, err
			}
		}
		return "", false, nil

	case domain.OSLinux:
		// Snap installs live outside PATH for some shells; try the fixed
		// snap path before falling back to PATH resolution.
		for _, bin := range []string{"/snap/bin/opera", "opera"} {
			out, ok, err := o.probe.CommandOutput(ctx, bin, "--version")
			if err != nil {
				return "", false, err
			}
			if !ok {
				continue
			}
			if v, ok := domain.FirstField(out); ok {
				return v, true, nil
			}
		}
		return "", false, nil

	case domain.OSWindows:
		paths := []string{
			`C:\Program Files\Opera\launcher.exe`,
			`C:\Program Files (x86)\Opera\launcher.exe`,
		}
		if name, err := o.username(); err == nil {
			paths = append(paths, fmt.Sprintf(`C:\Users\%s\AppData\Local\Programs\Opera\launcher.exe`, name))
		}
		for _, p := range paths {
			if v, ok, err := o.probe.WindowsExeVersion(ctx, p); err != nil || ok {
				return v, ok, err
			}
		}
		// Last resort: whatever PATH resolves the bare executable name to.
		for _, name := range []string{"launcher.exe", "opera.exe"} {
			resolved, err := o.lookPath(name)
			if err != nil {
				continue
			}
			if v, ok, err := o.probe.WindowsExeVersion(ctx, resolved); err != nil || ok {
				return v, ok, err
			}
		}
		return "", false, nil
	}

	return "", false, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, o.desc.OS)
}

// InstalledDriverVersion asks an already-installed operadriver binary for its
// version. The binary reports "operadriver <version> (<revision>)", so the
// version is the second field.
func (o *Opera) InstalledDriverVersion(ctx context.Context, outputDir string) (string, bool, error) {
	bin := filepath.Join(outputDir, o.desc.ExeName(o.spec.DriverName))
	if _, err := os.Stat(bin); err != nil {
		return "", false, nil
	}
	out, ok, err := o.probe.CommandOutput(ctx, bin, "--version")
	if err != nil || !ok {
		return "", false, err
	}
	v, ok := domain.SecondField(out)
	return v, ok, nil
}

// BestDriverVersion resolves the driver version to install. The installed
// browser version is deliberately ignored; see the type comment.
func (o *Opera) BestDriverVersion(ctx context.Context, browserVersion string) (string, error) {
	_ = browserVersion

	tag, err := o.tags.LatestTag(ctx, operaDriverRepo)
	if err != nil {
		return "", fmt.Errorf("resolve operadriver version: %w", err)
	}
	return domain.StripVersionPrefix(tag), nil
}

// Install downloads the operadriver archive for this platform and places the
// binary at <outputDir>/operadriver[.exe].
func (o *Opera) Install(ctx context.Context, driverVersion, outputDir string) (domain.InstalledArtifact, error) {
	if err := o.desc.Validate(); err != nil {
		return domain.InstalledArtifact{}, err
	}

	req := ports.InstallRequest{
		URL:           fmt.Sprintf(o.spec.ArchiveURL, driverVersion, o.desc.ArchiveTag),
		NameInArchive: fmt.Sprintf(o.spec.EntryPath, o.desc.ArchiveTag, o.desc.ExeSuffix),
		OutputName:    o.desc.ExeName(o.spec.OutputFileName),
		OutputDir:     outputDir,
		Zip:           true,
		Progress:      o.progress,
	}

	path, err := o.archive.InstallBinary(ctx, req)
	if err != nil {
		return domain.InstalledArtifact{}, fmt.Errorf("install operadriver %s: %w", driverVersion, err)
	}

	return domain.InstalledArtifact{
		Driver:  o.spec.DriverName,
		Version: driverVersion,
		Path:    path,
	}, nil
}
