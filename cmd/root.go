package cmd

import (
	"os"

	"github.com/djcass44/go-utils/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var command = &cobra.Command{
	Use:          "cargo-bundled",
	Short:        "generate bundled provides for vendored crates",
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logLevel, _ := cmd.Flags().GetInt(flagLogLevel)
		debug, _ := cmd.Flags().GetBool(flagDebug)

		_, ctx := logging.NewZap(cmd.Context(), loggerConfig(logLevel, debug))
		cmd.SetContext(ctx)
	},
}

const (
	flagLogLevel = "v"
	flagDebug    = "debug"
)

const debugLogLevel = 10

func init() {
	command.PersistentFlags().Int(flagLogLevel, 0, "log level. Higher is more")
	command.PersistentFlags().BoolP(flagDebug, "d", false, "enable debug tracing")
	command.AddCommand(bundleCmd, providesCmd)
}

// loggerConfig builds the stderr logger. Sampling is disabled
// since every per-package diagnostic shares a message.
func loggerConfig(logLevel int, debug bool) zap.Config {
	if debug && logLevel < debugLogLevel {
		logLevel = debugLogLevel
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(zapcore.Level(logLevel * -1))
	zc.Sampling = nil
	return zc
}

func Execute(version string) {
	command.Version = version
	if err := command.Execute(); err != nil {
		os.Exit(1)
	}
}
