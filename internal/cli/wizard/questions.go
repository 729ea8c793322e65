package wizard

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/modu-ai/flutterkit/internal/config"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// DefaultQuestions returns the standard question set. dir is the target
// directory; its base name seeds the project name default.
func DefaultQuestions(dir string) []Question {
	defaultName := models.Normalize(filepath.Base(dir))
	if !models.IsIdentifier(defaultName) {
		defaultName = "my_app"
	}

	archOpts := make([]Option, 0, len(models.ValidArchitectures()))
	for _, a := range models.ValidArchitectures() {
		archOpts = append(archOpts, Option{Label: a.DisplayName(), Value: a.DisplayName()})
	}

	stateOpts := make([]Option, 0, len(models.ValidStateManagements()))
	for _, s := range models.ValidStateManagements() {
		stateOpts = append(stateOpts, Option{Label: s.DisplayName(), Value: s.DisplayName()})
	}

	featureOpts := make([]Option, 0, len(config.FeatureCatalog))
	for _, f := range config.FeatureCatalog {
		featureOpts = append(featureOpts, Option{Label: string(f), Value: string(f)})
	}

	moduleOpts := make([]Option, 0, len(config.ModuleCatalog))
	for _, m := range config.ModuleCatalog {
		moduleOpts = append(moduleOpts, Option{Label: string(m), Value: string(m)})
	}

	return []Question{
		{
			ID:          QuestionProjectName,
			Type:        QuestionTypeInput,
			Title:       "Project name",
			Description: "Lowercase letters, digits and underscores; must not start with a digit.",
			Default:     defaultName,
			Required:    true,
			Validate:    ValidateProjectName,
		},
		{
			ID:          QuestionOrganization,
			Type:        QuestionTypeInput,
			Title:       "Organization identifier",
			Description: "Used to derive the Android and iOS application ids, e.g. com_example. Press Enter to skip.",
		},
		{
			ID:      QuestionArchitecture,
			Type:    QuestionTypeSelect,
			Title:   "Architecture",
			Options: archOpts,
			Default: config.DefaultArchitecture,
		},
		{
			ID:      QuestionStateManagement,
			Type:    QuestionTypeSelect,
			Title:   "State management",
			Options: stateOpts,
			Default: config.DefaultStateManagement,
		},
		{
			ID:          QuestionFeatures,
			Type:        QuestionTypeMultiSelect,
			Title:       "Features",
			Description: "Each feature gets its own directory tree and state artifact.",
			Options:     featureOpts,
			Defaults:    []string{string(models.DefaultFeature)},
		},
		{
			ID:          QuestionModules,
			Type:        QuestionTypeMultiSelect,
			Title:       "Modules",
			Description: "Each module gets a directory and a base service file.",
			Options:     moduleOpts,
		},
	}
}

// ValidateProjectName rejects names the generator would refuse.
func ValidateProjectName(name string) error {
	if !models.IsIdentifier(strings.TrimSpace(name)) {
		return errors.New("use lowercase letters, digits and underscores, starting with a letter or underscore")
	}
	return nil
}
