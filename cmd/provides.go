package cmd

import (
	"github.com/djcass44/cargo-bundled/internal/bundled"
	"github.com/djcass44/cargo-bundled/pkg/report"
	"github.com/spf13/cobra"
)

var providesCmd = &cobra.Command{
	Use:   "provides [dir]",
	Short: "print bundled provides for the crates in a lockfile",
	Args:  cobra.MaximumNArgs(1),
	RunE:  provides,
}

func provides(cmd *cobra.Command, args []string) error {
	dir, err := workingDir(args, 0)
	if err != nil {
		return err
	}

	lines, err := bundled.Provides(cmd.Context(), dir)
	if err != nil {
		return err
	}
	return report.Write(cmd.Context(), cmd.OutOrStdout(), lines)
}
