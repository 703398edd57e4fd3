package cmd

import (
	"os"
	"path/filepath"

	"github.com/djcass44/cargo-bundled/internal/bundled"
	"github.com/djcass44/cargo-bundled/pkg/report"
	"github.com/go-logr/logr"
	"github.com/spf13/cobra"
)

var bundleCmd = &cobra.Command{
	Use:   "bundle <path> [workdir] [vendordir]",
	Short: "print bundled provides and the combined license of vendored crates",
	Long: `Print a Provides line for every crate in the Cargo.lock found in workdir,
followed by a License line built from the manifests in vendordir.

The first argument is accepted for compatibility and ignored. workdir
defaults to the current directory and vendordir to <workdir>/vendor.`,
	Args: cobra.RangeArgs(1, 3),
	RunE: bundle,
}

func bundle(cmd *cobra.Command, args []string) error {
	log := logr.FromContextOrDiscard(cmd.Context())

	workDir, err := workingDir(args, 1)
	if err != nil {
		return err
	}
	vendorDir := filepath.Join(workDir, "vendor")
	if len(args) > 2 {
		vendorDir = args[2]
	}

	lines, err := bundled.Bundle(cmd.Context(), workDir, vendorDir)
	if err != nil {
		return err
	}
	if err := report.Write(cmd.Context(), cmd.OutOrStdout(), lines); err != nil {
		return err
	}
	log.V(1).Info("success")
	return nil
}

// workingDir returns the path argument at index i, or the
// current directory if it was not given.
func workingDir(args []string, i int) (string, error) {
	if len(args) > i {
		return args[i], nil
	}
	return os.Getwd()
}
