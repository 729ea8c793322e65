package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutterkit/pkg/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	RunE: func(cmd *cobra.Command, _ []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), "flutterkit "+version.GetFullVersion())
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
