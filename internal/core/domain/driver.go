package domain

// DriverSpec is the static identity of a browser/driver pairing. The URL and
// entry templates are printf-style; each concrete installer fills them with
// its own argument convention, so the spec itself stays immutable data.
type DriverSpec struct {
	BrowserName    string
	DriverName     string
	ArchiveURL     string // template for the download URL
	EntryPath      string // template for the binary's path inside the archive
	OutputFileName string // final name in the output directory, without suffix
}

// InstalledArtifact describes a driver binary placed in the output directory.
// Reinstalls overwrite the same path; there is no uninstall.
type InstalledArtifact struct {
	Driver  string
	Version string
	Path    string
}
