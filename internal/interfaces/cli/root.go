// Package cli is the cobra command surface of getdriver.
package cli

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// NewRootCommand builds the base command and attaches all subcommands.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "getdriver",
		Short: "getdriver - browser automation driver installer",
		Long: `getdriver resolves and installs the platform-specific driver binaries used
for browser automation (operadriver, chromedriver, ...).

For each browser it detects the locally installed version, resolves the
matching driver release, downloads the correct platform archive, and places
the driver binary at a deterministic path in the output directory.`,
		Version:      Version,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewInstallCommand(container))
	rootCmd.AddCommand(NewVersionsCommand(container))
	rootCmd.AddCommand(NewDoctorCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context, container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
