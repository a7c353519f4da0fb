package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"

	monitoring "github.com/komari-monitor/komari-uptime/monitoring/unit"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var logger = zap.NewNop()

var rootCmd = &cobra.Command{
	Use:           "komari-uptime",
	Short:         "Print how long the system has been running",
	Long:          `komari-uptime reports the time since the last boot as "Xd Yh Zm Ws".`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		platform := monitoring.DetectPlatform(runtime.GOOS)
		logger.Debug("reading uptime", zap.Stringer("platform", platform))
		return printUptime(cmd.OutOrStdout(), monitoring.NewReader(platform, logger))
	},
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	logger = newLogger()
	if err := rootCmd.Execute(); err != nil {
		logger.Error("failed to report system uptime", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
	_ = logger.Sync()
}

func printUptime(w io.Writer, r monitoring.Reader) error {
	secs, err := r.Seconds()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, "System Uptime:", monitoring.Format(secs))
	return err
}
