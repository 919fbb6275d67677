// Package services contains the application-level orchestration of driver
// installs: sequencing the detect → resolve → fetch → place workflow and
// fanning it out across browsers.
package services

import (
	"context"
	"fmt"
	"sync"

	"getdriver.dev/cli/internal/core/ports"
)

// InstallService drives the four-step workflow for one or more browsers.
// DriverInstaller instances share no mutable state, so browsers are
// processed concurrently; each writes only its own output path.
type InstallService struct {
	outputDir string
}

// NewInstallService creates an install service targeting outputDir.
func NewInstallService(outputDir string) *InstallService {
	return &InstallService{outputDir: outputDir}
}

// Result is the per-browser outcome of an install run.
type Result struct {
	Browser        string
	Driver         string
	BrowserVersion string // empty when the browser was not detected
	DriverVersion  string // resolved driver version
	Path           string // final binary path, empty when skipped or failed
	Skipped        bool   // already up to date
	Err            error
}

// Install runs the workflow for every installer and returns one result per
// installer, in input order. Failures never abort sibling installs.
func (s *InstallService) Install(ctx context.Context, installers []ports.DriverInstaller, force bool) []Result {
	results := make([]Result, len(installers))

	var wg sync.WaitGroup
	for idx, installer := range installers {
		wg.Add(1)
		go func(idx int, installer ports.DriverInstaller) {
			defer wg.Done()
			results[idx] = s.installOne(ctx, installer, force)
		}(idx, installer)
	}
	wg.Wait()

	return results
}

func (s *InstallService) installOne(ctx context.Context, installer ports.DriverInstaller, force bool) Result {
	result := Result{
		Browser: installer.BrowserName(),
		Driver:  installer.DriverName(),
	}

	// Step 1: detect the installed browser. Absence is fine — resolution
	// policies that ignore the browser version still work.
	browserVersion, found, err := installer.InstalledBrowserVersion(ctx)
	if err != nil {
		result.Err = fmt.Errorf("detect %s: %w", result.Browser, err)
		return result
	}
	if found {
		result.BrowserVersion = browserVersion
	}

	// Step 2: resolve the driver version to install.
	driverVersion, err := installer.BestDriverVersion(ctx, result.BrowserVersion)
	if err != nil {
		result.Err = err
		return result
	}
	result.DriverVersion = driverVersion

	// Skip when the exact version is already in place.
	installed, ok, err := installer.InstalledDriverVersion(ctx, s.outputDir)
	if err != nil {
		result.Err = fmt.Errorf("inspect installed %s: %w", result.Driver, err)
		return result
	}
	if ok && installed == driverVersion && !force {
		result.Skipped = true
		return result
	}

	// Steps 3 and 4: fetch the archive and place the binary.
	artifact, err := installer.Install(ctx, driverVersion, s.outputDir)
	if err != nil {
		result.Err = err
		return result
	}
	result.Path = artifact.Path

	return result
}

// VersionReport describes what is currently installed, without installing.
type VersionReport struct {
	Browser        string
	Driver         string
	BrowserVersion string
	BrowserFound   bool
	DriverVersion  string
	DriverFound    bool
	Err            error
}

// Versions reports installed browser and driver versions for every
// installer, concurrently.
func (s *InstallService) Versions(ctx context.Context, installers []ports.DriverInstaller) []VersionReport {
	reports := make([]VersionReport, len(installers))

	var wg sync.WaitGroup
	for idx, installer := range installers {
		wg.Add(1)
		go func(idx int, installer ports.DriverInstaller) {
			defer wg.Done()
			reports[idx] = s.versionsOne(ctx, installer)
		}(idx, installer)
	}
	wg.Wait()

	return reports
}

func (s *InstallService) versionsOne(ctx context.Context, installer ports.DriverInstaller) VersionReport {
	report := VersionReport{
		Browser: installer.BrowserName(),
		Driver:  installer.DriverName(),
	}

	browserVersion, found, err := installer.InstalledBrowserVersion(ctx)
	if err != nil {
		report.Err = fmt.Errorf("detect %s: %w", report.Browser, err)
		return report
	}
	report.BrowserVersion = browserVersion
	report.BrowserFound = found

	driverVersion, found, err := installer.InstalledDriverVersion(ctx, s.outputDir)
	if err != nil {
		report.Err = fmt.Errorf("inspect installed %s: %w", report.Driver, err)
		return report
	}
	report.DriverVersion = driverVersion
	report.DriverFound = found

	return report
}
