package drivers

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"getdriver.dev/cli/internal/core/domain"
	"getdriver.dev/cli/internal/core/ports"
	"getdriver.dev/cli/internal/platform"
)

const chromeDriverBase = "https://chromedriver.storage.googleapis.com"

var chromeSpec = domain.DriverSpec{
	BrowserName:    "chrome",
	DriverName:     "chromedriver",
	ArchiveURL:     chromeDriverBase + "/%s/chromedriver_%s.zip",
	EntryPath:      "chromedriver%s",
	OutputFileName: "chromedriver",
}

// chromeVersionPattern extracts the version token from output like
// "Google Chrome 114.0.5735.90" or "Chromium 114.0.5735.90 snap".
var chromeVersionPattern = regexp.MustCompile(`(\d+\.?){3,}`)

// Chrome installs chromedriver. Unlike Opera it honors the installed browser
// version: chromedriver publishes a LATEST_RELEASE_<major> endpoint mapping
// each browser major version to its matching driver release.
type Chrome struct {
	spec     domain.DriverSpec
	desc     domain.Descriptor
	probe    *platform.Probe
	fetcher  ports.Fetcher
	archive  ports.ArchiveInstaller
	lookPath func(string) (string, error)
	username func() (string, error)
	progress ports.ProgressFunc
}

// NewChrome creates the Chrome driver installer.
func NewChrome(deps Deps) ports.DriverInstaller {
	return &Chrome{
		spec:     chromeSpec,
		desc:     deps.Descriptor,
		probe:    deps.Probe,
		fetcher:  deps.Fetcher,
		archive:  deps.Archive,
		lookPath: deps.LookPath,
		username: deps.Username,
		progress: boundProgress(deps, chromeSpec.DriverName),
	}
}

func (c *Chrome) BrowserName() string { return c.spec.BrowserName }

func (c *Chrome) DriverName() string { return c.spec.DriverName }

// InstalledBrowserVersion probes for Chrome or Chromium.
func (c *Chrome) InstalledBrowserVersion(ctx context.Context) (string, bool, error) {
	switch c.desc.OS {
	case domain.OSDarwin:
		for _, app := range []string{"Google Chrome", "Chromium"} {
			if v, ok, err := c.probe.MacAppVersion(ctx, app); err != nil || ok {
				return v, ok, err
			}
		}
		return "", false, nil

	case domain.OSLinux:
		for _, bin := range []string{"google-chrome", "chrome", "chromium", "chromium-browser"} {
			out, ok, err := c.probe.CommandOutput(ctx, bin, "--version")
			if err != nil {
				return "", false, err
			}
			if !ok {
				continue
			}
			// --version output embeds the product name, so pick out the
			// dotted numeric token instead of splitting on fields.
			if v := chromeVersionPattern.FindString(out); v != "" {
				return v, true, nil
			}
		}
		return "", false, nil

	case domain.OSWindows:
		paths := []string{
			`C:\Program Files\Google\Chrome\Application\chrome.exe`,
			`C:\Program Files (x86)\Google\Chrome\Application\chrome.exe`,
		}
		if name, err := c.username(); err == nil {
			paths = append(paths, fmt.Sprintf(`C:\Users\%s\AppData\Local\Google\Chrome\Application\chrome.exe`, name))
		}
		for _, p := range paths {
			if v, ok, err := c.probe.WindowsExeVersion(ctx, p); err != nil || ok {
				return v, ok, err
			}
		}
		if resolved, err := c.lookPath("chrome.exe"); err == nil {
			return c.probe.WindowsExeVersion(ctx, resolved)
		}
		return "", false, nil
	}

	return "", false, fmt.Errorf("%w: %s", domain.ErrUnsupportedPlatform, c.desc.OS)
}

// InstalledDriverVersion reads the version an installed chromedriver binary
// reports ("ChromeDriver 114.0.5735.90 (...)" — second field).
func (c *Chrome) InstalledDriverVersion(ctx context.Context, outputDir string) (string, bool, error) {
	bin := filepath.Join(outputDir, c.desc.ExeName(c.spec.DriverName))
	if _, err := os.Stat(bin); err != nil {
		return "", false, nil
	}
	out, ok, err := c.probe.CommandOutput(ctx, bin, "--version")
	if err != nil || !ok {
		return "", false, err
	}
	v, ok := domain.SecondField(out)
	return v, ok, nil
}

// BestDriverVersion maps the browser's major version to its matching driver
// release via the LATEST_RELEASE endpoint. With no browser installed it
// falls back to the newest release train.
func (c *Chrome) BestDriverVersion(ctx context.Context, browserVersion string) (string, error) {
	endpoint := chromeDriverBase + "/LATEST_RELEASE"
	if browserVersion != "" {
		endpoint += "_" + domain.MajorVersion(browserVersion)
	}

	body, _, err := c.fetcher.Fetch(ctx, endpoint)
	if err != nil {
		return "", fmt.Errorf("resolve chromedriver version: %w", err)
	}
	defer body.Close()

	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("resolve chromedriver version: %w", err)
	}

	version := strings.TrimSpace(string(raw))
	if version == "" {
		return "", fmt.Errorf("resolve chromedriver version: %w", domain.ErrEmptyTag)
	}
	return domain.StripVersionPrefix(version), nil
}

// Install downloads the chromedriver archive for this platform. The binary
// sits at the archive root, not nested like operadriver.
func (c *Chrome) Install(ctx context.Context, driverVersion, outputDir string) (domain.InstalledArtifact, error) {
	if err := c.desc.Validate(); err != nil {
		return domain.InstalledArtifact{}, err
	}

	req := ports.InstallRequest{
		URL:           fmt.Sprintf(c.spec.ArchiveURL, driverVersion, c.desc.ArchiveTag),
		NameInArchive: fmt.Sprintf(c.spec.EntryPath, c.desc.ExeSuffix),
		OutputName:    c.desc.ExeName(c.spec.OutputFileName),
		OutputDir:     outputDir,
		Zip:           true,
		Progress:      c.progress,
	}

	path, err := c.archive.InstallBinary(ctx, req)
	if err != nil {
		return domain.InstalledArtifact{}, fmt.Errorf("install chromedriver %s: %w", driverVersion, err)
	}

	return domain.InstalledArtifact{
		Driver:  c.spec.DriverName,
		Version: driverVersion,
		Path:    path,
	}, nil
}
