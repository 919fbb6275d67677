package domain

import "fmt"

// OS identifies a supported host operating system family.
type OS string

const (
	OSDarwin  OS = "darwin"
	OSLinux   OS = "linux"
	OSWindows OS = "windows"
)

// Descriptor captures everything platform-specific an installer needs. It is
// derived once per run from the host and passed in explicitly, so OS dispatch
// never re-queries runtime state mid-workflow.
type Descriptor struct {
	OS         OS
	ExeSuffix  string // ".exe" on windows, empty elsewhere
	ArchiveTag string // platform token used in archive names: mac64, linux64, win64
}

// DescribePlatform maps a GOOS value to its descriptor. Any OS outside the
// supported set is a hard error, never a silent fallback.
func DescribePlatform(goos string) (Descriptor, error) {
	switch OS(goos) {
	case OSDarwin:
		return Descriptor{OS: OSDarwin, ArchiveTag: "mac64"}, nil
	case OSLinux:
		return Descriptor{OS: OSLinux, ArchiveTag: "linux64"}, nil
	case OSWindows:
		return Descriptor{OS: OSWindows, ExeSuffix: ".exe", ArchiveTag: "win64"}, nil
	default:
		return Descriptor{}, fmt.Errorf("%w: %s", ErrUnsupportedPlatform, goos)
	}
}

// Validate reports whether the descriptor names a supported OS. Installers
// call this before building platform-specific URLs.
func (d Descriptor) Validate() error {
	switch d.OS {
	case OSDarwin, OSLinux, OSWindows:
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedPlatform, d.OS)
	}
}

// ExeName appends the platform binary suffix to a base name.
func (d Descriptor) ExeName(base string) string {
	return base + d.ExeSuffix
}
