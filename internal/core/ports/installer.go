package ports

import (
	"context"

	"getdriver.dev/cli/internal/core/domain"
)

// DriverInstaller is the per-browser contract behind the four-step workflow:
// detect the installed browser, resolve the matching driver version, fetch
// the platform archive, place the binary. One implementation exists per
// supported browser; instances hold no mutable state, so independent
// installers may run concurrently.
type DriverInstaller interface {
	// BrowserName returns the registry key for the browser ("opera").
	BrowserName() string

	// DriverName returns the driver binary's base name ("operadriver").
	DriverName() string

	// InstalledBrowserVersion probes the host for the browser's version.
	// ok is false when no candidate probe found the browser; err is reserved
	// for unsupported platforms and cancelled/timed-out probes.
	InstalledBrowserVersion(ctx context.Context) (version string, ok bool, err error)

	// InstalledDriverVersion runs the previously installed driver binary in
	// outputDir with --version. ok is false when the binary is missing or
	// does not report a version.
	InstalledDriverVersion(ctx context.Context, outputDir string) (version string, ok bool, err error)

	// BestDriverVersion resolves the driver version to install. browserVersion
	// may be empty and implementations are free to ignore it, e.g. by always
	// resolving the latest published release. The result never retains a
	// "v"/"v." tag prefix.
	BestDriverVersion(ctx context.Context, browserVersion string) (string, error)

	// Install downloads the platform archive for driverVersion, extracts the
	// driver binary, and places it at its deterministic path under outputDir.
	Install(ctx context.Context, driverVersion, outputDir string) (domain.InstalledArtifact, error)
}

// ArchiveInstaller fetches an archive and installs one named entry from it as
// an executable file.
type ArchiveInstaller interface {
	// InstallBinary downloads req.URL, locates the entry whose path equals
	// req.NameInArchive, writes it to req.OutputDir/req.OutputName with the
	// executable bit set, and returns the final path. No partial artifact is
	// left behind on failure.
	InstallBinary(ctx context.Context, req InstallRequest) (string, error)
}

// InstallRequest describes one archive-to-binary installation.
type InstallRequest struct {
	URL           string
	NameInArchive string
	OutputName    string
	OutputDir     string
	Zip           bool // zip archive when true, tar.gz otherwise
	Progress      ProgressFunc
}

// ProgressFunc receives download progress. total is -1 when the server did
// not announce a content length.
type ProgressFunc func(downloaded, total int64)
