package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutterkit/internal/config"
)

// newLogger builds a slog.Logger writing to w. An empty level means warn
// and an empty format means text.
func newLogger(level, format string, w io.Writer) (*slog.Logger, error) {
	lvl := slog.LevelWarn
	if level != "" {
		if err := lvl.UnmarshalText([]byte(level)); err != nil {
			return nil, fmt.Errorf("invalid log level %q: %w", level, err)
		}
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q: must be text or json", format)
	}
}

// setupLogging replaces deps.Logger according to --log-level/--log-format,
// falling back to FLUTTERKIT_LOG_LEVEL/FLUTTERKIT_LOG_FORMAT.
func setupLogging(cmd *cobra.Command, _ []string) error {
	if deps == nil {
		return fmt.Errorf("dependencies not initialized")
	}

	level := getStringFlag(cmd, "log-level")
	if level == "" {
		level = os.Getenv(config.EnvLogLevel)
	}
	format := getStringFlag(cmd, "log-format")
	if format == "" {
		format = os.Getenv(config.EnvLogFormat)
	}

	logger, err := newLogger(level, format, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	deps.Logger = logger
	return nil
}

// getStringFlag retrieves a string flag value from the command.
func getStringFlag(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		return ""
	}
	return val
}

// getBoolFlag retrieves a bool flag value from the command.
func getBoolFlag(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		return false
	}
	return val
}

// getStringArrayFlag retrieves a repeatable string flag. The second result
// reports whether the flag was given at all.
func getStringArrayFlag(cmd *cobra.Command, name string) ([]string, bool) {
	if !cmd.Flags().Changed(name) {
		return nil, false
	}
	val, err := cmd.Flags().GetStringArray(name)
	if err != nil {
		return nil, false
	}
	return val, true
}
