package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"getdriver.dev/cli/internal/platform"
)

// NewDoctorCommand creates the doctor command: a diagnostic dump of the
// platform descriptor, host details, and output directory health.
func NewDoctorCommand(container *CLIContainer) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose the host platform and installer configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDoctor(cmd, container)
		},
	}
}

func runDoctor(cmd *cobra.Command, container *CLIContainer) error {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, headerStyle.Render("Platform"))
	fmt.Fprintf(out, "  os:          %s\n", container.Descriptor.OS)
	fmt.Fprintf(out, "  archive tag: %s\n", container.Descriptor.ArchiveTag)
	if container.Descriptor.ExeSuffix != "" {
		fmt.Fprintf(out, "  exe suffix:  %s\n", container.Descriptor.ExeSuffix)
	}

	info, err := platform.CollectHostInfo(cmd.Context())
	if err != nil {
		return fmt.Errorf("collect host info: %w", err)
	}
	fmt.Fprintf(out, "  arch:        %s\n", info.Arch)
	if info.Platform != "" {
		fmt.Fprintf(out, "  distro:      %s %s (%s)\n", info.Platform, info.Version, info.Family)
	}
	if info.KernelVersion != "" {
		fmt.Fprintf(out, "  kernel:      %s\n", info.KernelVersion)
	}

	fmt.Fprintln(out, headerStyle.Render("Output directory"))
	fmt.Fprintf(out, "  path: %s\n", container.Config.OutputDir)
	if err := checkWritable(container.Config.OutputDir); err != nil {
		fmt.Fprintf(out, "  %s %v\n", errorStyle.Render("not writable:"), err)
		return fmt.Errorf("output directory is not writable")
	}
	fmt.Fprintf(out, "  %s\n", successStyle.Render("writable"))

	return nil
}

// checkWritable verifies the directory exists (creating it if needed) and
// accepts a file write.
func checkWritable(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	probe, err := os.CreateTemp(dir, ".doctor-*")
	if err != nil {
		return err
	}
	name := probe.Name()
	probe.Close()
	return os.Remove(name)
}
