package cli

import (
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"getdriver.dev/cli/internal/application/services"
)

// InstallFlags holds command-line flags for the install command.
type InstallFlags struct {
	OutputDir  string
	Force      bool
	NoProgress bool
}

// NewInstallCommand creates the install command.
func NewInstallCommand(container *CLIContainer) *cobra.Command {
	flags := &InstallFlags{}

	cmd := &cobra.Command{
		Use:   "install [browser...]",
		Short: "Install matching drivers for locally installed browsers",
		Long: `Install the automation driver binary for one or more browsers.

With no arguments every supported browser is processed. Browsers are handled
concurrently and independently: a failure for one never aborts the others.

Examples:
  getdriver install                 # all supported browsers
  getdriver install opera           # just operadriver
  getdriver install --force chrome  # reinstall even when up to date`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInstall(cmd, container, args, flags)
		},
	}

	cmd.Flags().StringVar(&flags.OutputDir, "out", "", "Output directory for driver binaries (default ~/.getdriver/bin)")
	cmd.Flags().BoolVar(&flags.Force, "force", false, "Reinstall even when the resolved version is already present")
	cmd.Flags().BoolVar(&flags.NoProgress, "no-progress", false, "Disable the interactive download progress display")

	return cmd
}

func runInstall(cmd *cobra.Command, container *CLIContainer, browsers []string, flags *InstallFlags) error {
	ctx := cmd.Context()

	outputDir := flags.OutputDir
	if outputDir == "" {
		outputDir = container.Config.OutputDir
	}

	// The progress UI owns the terminal while downloads run, so it is only
	// used interactively.
	var ui *progressUI
	var progressFn func(string, int64, int64)
	if !flags.NoProgress && isatty.IsTerminal(os.Stdout.Fd()) {
		ui = newProgressUI()
		progressFn = ui.Callback()
	}

	installers, err := container.buildInstallers(browsers, progressFn)
	if err != nil {
		return err
	}

	service := services.NewInstallService(outputDir)

	var results []services.Result
	if ui != nil {
		resultsCh := make(chan []services.Result, 1)
		go func() {
			resultsCh <- service.Install(ctx, installers, flags.Force)
			ui.Done()
		}()
		if err := ui.Run(); err != nil {
			// The UI failing is cosmetic; the install itself decides the
			// exit status below.
			fmt.Fprintf(cmd.ErrOrStderr(), "progress display failed: %v\n", err)
		}
		results = <-resultsCh
	} else {
		results = service.Install(ctx, installers, flags.Force)
	}

	failed := 0
	out := cmd.OutOrStdout()
	for _, result := range results {
		switch {
		case result.Err != nil:
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("✗"), result.Browser, result.Err)
		case result.Skipped:
			fmt.Fprintf(out, "%s %s %s %s\n", dimStyle.Render("–"), result.Driver, result.DriverVersion, dimStyle.Render("already up to date"))
		default:
			fmt.Fprintf(out, "%s %s %s → %s\n", successStyle.Render("✓"), result.Driver, result.DriverVersion, result.Path)
		}
		if result.Err == nil && result.BrowserVersion == "" {
			fmt.Fprintf(out, "  %s\n", dimStyle.Render(fmt.Sprintf("%s not detected locally, installed latest driver", result.Browser)))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d driver installs failed", failed, len(results))
	}
	return nil
}
