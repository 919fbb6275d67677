package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"getdriver.dev/cli/internal/application/services"
)

// NewVersionsCommand creates the versions command, which reports installed
// browser and driver versions without installing anything.
func NewVersionsCommand(container *CLIContainer) *cobra.Command {
	var outputDir string

	cmd := &cobra.Command{
		Use:   "versions [browser...]",
		Short: "Show installed browser and driver versions",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersions(cmd, container, args, outputDir)
		},
	}

	cmd.Flags().StringVar(&outputDir, "out", "", "Directory holding driver binaries (default ~/.getdriver/bin)")

	return cmd
}

func runVersions(cmd *cobra.Command, container *CLIContainer, browsers []string, outputDir string) error {
	if outputDir == "" {
		outputDir = container.Config.OutputDir
	}

	installers, err := container.buildInstallers(browsers, nil)
	if err != nil {
		return err
	}

	service := services.NewInstallService(outputDir)
	reports := service.Versions(cmd.Context(), installers)

	out := cmd.OutOrStdout()
	failed := 0
	for _, report := range reports {
		if report.Err != nil {
			failed++
			fmt.Fprintf(out, "%s %s: %v\n", errorStyle.Render("✗"), report.Browser, report.Err)
			continue
		}

		fmt.Fprintln(out, headerStyle.Render(report.Browser))
		if report.BrowserFound {
			fmt.Fprintf(out, "  browser: %s\n", report.BrowserVersion)
		} else {
			fmt.Fprintf(out, "  browser: %s\n", dimStyle.Render("not installed"))
		}
		if report.DriverFound {
			fmt.Fprintf(out, "  %s: %s\n", report.Driver, report.DriverVersion)
		} else {
			fmt.Fprintf(out, "  %s: %s\n", report.Driver, dimStyle.Render("not installed"))
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d version probes failed", failed, len(reports))
	}
	return nil
}
