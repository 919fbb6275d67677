package cli

import (
	"fmt"
	"net/http"

	"getdriver.dev/cli/internal/config"
	"getdriver.dev/cli/internal/core/domain"
	"getdriver.dev/cli/internal/core/ports"
	"getdriver.dev/cli/internal/drivers"
	"getdriver.dev/cli/internal/infrastructure/archive"
	"getdriver.dev/cli/internal/infrastructure/github"
	"getdriver.dev/cli/internal/infrastructure/httpx"
	"getdriver.dev/cli/internal/platform"
)

// CLIContainer holds the dependencies shared by all commands. The platform
// descriptor is derived exactly once here; an unsupported host OS fails
// container construction before any command runs.
type CLIContainer struct {
	Config     *config.Config
	Descriptor domain.Descriptor
	Probe      *platform.Probe
	Tags       ports.TagResolver
	Fetcher    ports.Fetcher
	Archive    ports.ArchiveInstaller
}

// NewContainer wires the production dependency graph.
func NewContainer() (*CLIContainer, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load configuration: %w", err)
	}

	descriptor, err := platform.Describe()
	if err != nil {
		return nil, err
	}

	fetcher := httpx.NewClient(
		httpx.WithHTTPClient(&http.Client{Timeout: cfg.DownloadTimeout}),
	)

	githubOpts := []github.Option{}
	if cfg.GitHubToken != "" {
		githubOpts = append(githubOpts, github.WithToken(cfg.GitHubToken))
	}

	return &CLIContainer{
		Config:     cfg,
		Descriptor: descriptor,
		Probe:      platform.NewProbe(platform.NewRunner(cfg.CommandTimeout)),
		Tags:       github.NewClient(githubOpts...),
		Fetcher:    fetcher,
		Archive:    archive.NewInstaller(fetcher),
	}, nil
}

// driverDeps assembles the per-run dependency bundle for the registry.
// progress may be nil for non-interactive runs.
func (c *CLIContainer) driverDeps(progress func(driver string, downloaded, total int64)) drivers.Deps {
	return drivers.Deps{
		Descriptor: c.Descriptor,
		Probe:      c.Probe,
		Tags:       c.Tags,
		Fetcher:    c.Fetcher,
		Archive:    c.Archive,
		Progress:   progress,
	}
}

// buildInstallers resolves browser names through the registry. An empty list
// selects every registered browser.
func (c *CLIContainer) buildInstallers(browsers []string, progress func(string, int64, int64)) ([]ports.DriverInstaller, error) {
	if len(browsers) == 0 {
		browsers = drivers.Browsers()
	}

	deps := c.driverDeps(progress)
	installers := make([]ports.DriverInstaller, 0, len(browsers))
	for _, browser := range browsers {
		installer, err := drivers.New(browser, deps)
		if err != nil {
			return nil, err
		}
		installers = append(installers, installer)
	}

	return installers, nil
}
