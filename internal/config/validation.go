package config

import (
	"fmt"
	"strings"

	"github.com/modu-ai/flutterkit/pkg/models"
)

// Validate checks raw input and returns the normalized ProjectConfig.
// All invalid fields are reported together in a *ValidationErrors that
// wraps ErrInvalidConfig. Anomalies that are not errors (empty feature
// list, missing default feature, missing organization identifier) are
// returned as notes. Validate has no side effects.
func Validate(raw *RawConfig, opts Options) (*models.ProjectConfig, []models.Note, error) {
	if raw == nil {
		raw = &RawConfig{}
	}

	var (
		errs  []*ValidationError
		notes []models.Note
	)

	if !models.IsIdentifier(raw.ProjectName) {
		errs = append(errs, &ValidationError{
			Field:  "project_name",
			Reason: ReasonBadProjectName,
			Value:  raw.ProjectName,
		})
	}

	arch, ok := models.ParseArchitecture(raw.Architecture)
	if !ok {
		errs = append(errs, &ValidationError{
			Field:  "architecture",
			Reason: ReasonUnknownArchitecture,
			Value:  raw.Architecture,
		})
	}

	sm, ok := models.ParseStateManagement(raw.StateManagement)
	if !ok {
		errs = append(errs, &ValidationError{
			Field:  "state_management",
			Reason: ReasonUnknownStateManagement,
			Value:  raw.StateManagement,
		})
	}

	features, featureErrs := normalizeTags[models.FeatureTag](raw.Features, "features", ReasonBadFeatureName)
	errs = append(errs, featureErrs...)

	modules, moduleErrs := normalizeTags[models.ModuleTag](raw.Modules, "modules", ReasonBadModuleName)
	errs = append(errs, moduleErrs...)

	if len(errs) > 0 {
		return nil, nil, &ValidationErrors{Errors: errs}
	}

	features, featureNotes := applyDefaultFeature(features, opts)
	notes = append(notes, featureNotes...)

	orgID := raw.OrganizationIdentifier()
	if orgID == "" {
		notes = append(notes, models.NewInfo("bundle_identifier",
			"no organization identifier given; platform application identifiers will be omitted"))
	}

	cfg := &models.ProjectConfig{
		ProjectName:            raw.ProjectName,
		OrganizationIdentifier: orgID,
		Architecture:           arch,
		StateManagement:        sm,
		Features:               features,
		Modules:                modules,
	}
	return cfg, notes, nil
}

// normalizeTags trims, de-duplicates by normalized name (first wins) and
// checks that every normalized name is a valid identifier.
func normalizeTags[T ~string](values []string, field, reason string) ([]T, []*ValidationError) {
	var (
		tags []T
		errs []*ValidationError
	)
	seen := make(map[string]bool, len(values))

	for i, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		normalized := models.Normalize(v)
		if !models.IsIdentifier(normalized) {
			errs = append(errs, &ValidationError{
				Field:  fmt.Sprintf("%s[%d]", field, i),
				Reason: reason,
				Value:  v,
			})
			continue
		}
		if seen[normalized] {
			continue
		}
		seen[normalized] = true
		tags = append(tags, T(v))
	}
	return tags, errs
}

// applyDefaultFeature enforces the baseline feature rule.
func applyDefaultFeature(features []models.FeatureTag, opts Options) ([]models.FeatureTag, []models.Note) {
	if len(features) == 0 {
		return []models.FeatureTag{models.DefaultFeature}, []models.Note{
			models.NewInfo("features", fmt.Sprintf(
				"no features selected; using the baseline feature set {%s}", models.DefaultFeature)),
		}
	}

	cfg := models.ProjectConfig{Features: features}
	if cfg.HasFeature(models.DefaultFeature) {
		return features, nil
	}

	if opts.EnforceDefaultFeature {
		withDefault := append([]models.FeatureTag{models.DefaultFeature}, features...)
		return withDefault, []models.Note{
			models.NewInfo("features", fmt.Sprintf("added the baseline feature %s", models.DefaultFeature)),
		}
	}

	return features, []models.Note{
		models.NewWarning("features", fmt.Sprintf(
			"feature set does not include %s; including it is recommended", models.DefaultFeature)),
	}
}
