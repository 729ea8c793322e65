package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/modu-ai/flutterkit/internal/cli/wizard"
	"github.com/modu-ai/flutterkit/internal/config"
	"github.com/modu-ai/flutterkit/internal/defs"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// addInputFlags registers the flags that feed a RawConfig.
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", "Path to a YAML configuration file (default: ./"+defs.ConfigYAML+" if present)")
	cmd.Flags().String("name", "", "Project name (lowercase identifier, e.g. demo_app)")
	cmd.Flags().String("org", "", "Organization identifier (e.g. com.example)")
	cmd.Flags().String("architecture", "", "Architecture: Clean Architecture, MVVM, MVC, Feature-Driven")
	cmd.Flags().String("state", "", "State management: Provider, Riverpod, Bloc, GetX, MobX, Redux")
	cmd.Flags().StringArray("feature", nil, "Feature to generate (repeatable)")
	cmd.Flags().StringArray("module", nil, "Module to generate (repeatable)")
	cmd.Flags().Bool("strict-default-feature", false, "Insert the "+string(models.DefaultFeature)+" feature when it is missing")
	cmd.Flags().Bool("non-interactive", false, "Never prompt; use flags, config file and environment only")
}

// resolveInput merges defaults, the config file, environment variables,
// flags and, when interactive, wizard answers into a single RawConfig.
// Later sources win.
func resolveInput(cmd *cobra.Command, dir string) (*config.RawConfig, error) {
	explicit, err := loadConfigFile(cmd)
	if err != nil {
		return nil, err
	}
	config.ApplyEnvOverrides(explicit)
	explicit.Overlay(flagConfig(cmd))

	if explicit.ProjectName == "" && dir != "." {
		if name := models.Normalize(filepath.Base(dir)); models.IsIdentifier(name) {
			explicit.ProjectName = name
		}
	}

	if isInteractive(cmd) {
		answers, err := wizard.RunWithDefaults(dir, toWizardResult(explicit))
		if err != nil {
			return nil, err
		}
		explicit.Overlay(fromWizardResult(answers))
	}

	raw := config.NewDefaultRawConfig()
	raw.Overlay(explicit)
	return raw, nil
}

// loadConfigFile reads --config, or ./flutterkit.yaml when present.
func loadConfigFile(cmd *cobra.Command) (*config.RawConfig, error) {
	path := getStringFlag(cmd, "config")
	if path == "" {
		if _, err := os.Stat(defs.ConfigYAML); err != nil {
			return &config.RawConfig{}, nil
		}
		path = defs.ConfigYAML
	}

	raw, err := config.LoadFile(path)
	if err != nil {
		return nil, err
	}
	deps.Logger.Debug("loaded config file", "path", path)
	return raw, nil
}

func flagConfig(cmd *cobra.Command) *config.RawConfig {
	raw := &config.RawConfig{
		ProjectName:      getStringFlag(cmd, "name"),
		BundleIdentifier: getStringFlag(cmd, "org"),
		Architecture:     getStringFlag(cmd, "architecture"),
		StateManagement:  getStringFlag(cmd, "state"),
	}
	if features, ok := getStringArrayFlag(cmd, "feature"); ok {
		raw.Features = features
	}
	if modules, ok := getStringArrayFlag(cmd, "module"); ok {
		raw.Modules = modules
	}
	return raw
}

func isInteractive(cmd *cobra.Command) bool {
	return !getBoolFlag(cmd, "non-interactive") && !deps.Headless.IsHeadless()
}

func toWizardResult(raw *config.RawConfig) *wizard.WizardResult {
	r := &wizard.WizardResult{
		ProjectName:            raw.ProjectName,
		OrganizationIdentifier: raw.OrganizationIdentifier(),
		Architecture:           raw.Architecture,
		StateManagement:        raw.StateManagement,
	}
	if raw.Features != nil {
		r.SetFeatures(raw.Features)
	}
	if raw.Modules != nil {
		r.SetModules(raw.Modules)
	}
	return r
}

func fromWizardResult(r *wizard.WizardResult) *config.RawConfig {
	raw := &config.RawConfig{
		ProjectName:      r.ProjectName,
		BundleIdentifier: r.OrganizationIdentifier,
		Architecture:     r.Architecture,
		StateManagement:  r.StateManagement,
		Features:         r.Features,
		Modules:          r.Modules,
	}
	if raw.Features == nil {
		raw.Features = []string{}
	}
	if raw.Modules == nil {
		raw.Modules = []string{}
	}
	return raw
}

// validationOptions reads validation tuning flags.
func validationOptions(cmd *cobra.Command) config.Options {
	return config.Options{EnforceDefaultFeature: getBoolFlag(cmd, "strict-default-feature")}
}
