package cmd

import (
	"fmt"

	"github.com/blang/semver"
	"github.com/spf13/cobra"
)

// CurrentVersion is overridden at build time with -ldflags "-X".
var CurrentVersion = "0.0.1"

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := semver.Parse(CurrentVersion)
		if err != nil {
			return fmt.Errorf("failed to parse current version: %w", err)
		}
		_, err = fmt.Fprintf(cmd.OutOrStdout(), "komari-uptime %s\n", v)
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
