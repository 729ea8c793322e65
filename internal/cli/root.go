package cli

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/modu-ai/flutterkit/internal/defs"
	"github.com/modu-ai/flutterkit/pkg/version"
)

var rootCmd = &cobra.Command{
	Use:   "flutterkit",
	Short: "flutterkit: Flutter project scaffolding generator",
	Long: `flutterkit generates the skeleton of a Flutter application from a
declarative configuration: project name, organization identifier,
architecture pattern, state-management approach, features and modules.

The configuration is validated and resolved into a complete plan before
anything is written, and existing files are never overwritten.`,
	Version:           version.GetVersion(),
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setupLogging,
}

// Execute loads .env, initializes dependencies and runs the root command.
func Execute() error {
	// A missing .env file is not an error.
	_ = godotenv.Load(defs.DotEnv)

	if err := InitDependencies(); err != nil {
		return err
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf("flutterkit %s\n", version.GetVersion()))

	rootCmd.PersistentFlags().String("log-level", "", "Log level: debug, info, warn, error (default: warn)")
	rootCmd.PersistentFlags().String("log-format", "", "Log format: text or json (default: text)")
}
