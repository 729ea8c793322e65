package config

import "github.com/modu-ai/flutterkit/pkg/models"

// Default value constants to avoid magic strings.
const (
	DefaultArchitecture    = "Clean Architecture"
	DefaultStateManagement = "Provider"
)

// Environment variable names recognized by ApplyEnvOverrides.
const (
	EnvProjectName      = "FLUTTERKIT_PROJECT_NAME"
	EnvBundleIdentifier = "FLUTTERKIT_BUNDLE_IDENTIFIER"
	EnvOrgName          = "FLUTTERKIT_ORG_NAME"
	EnvArchitecture     = "FLUTTERKIT_ARCHITECTURE"
	EnvStateManagement  = "FLUTTERKIT_STATE_MANAGEMENT"
	EnvFeatures         = "FLUTTERKIT_FEATURES"
	EnvModules          = "FLUTTERKIT_MODULES"
	EnvLogLevel         = "FLUTTERKIT_LOG_LEVEL"
	EnvLogFormat        = "FLUTTERKIT_LOG_FORMAT"
)

// FeatureCatalog lists the features offered by the wizard.
var FeatureCatalog = []models.FeatureTag{
	models.DefaultFeature,
	"Dashboard",
	"Profile",
	"Settings",
	"Notifications",
	"Onboarding",
	"Search",
}

// ModuleCatalog lists the modules offered by the wizard.
var ModuleCatalog = []models.ModuleTag{
	"Network Layer",
	"Local Storage",
	"Localization",
	"Theming",
	"Routing",
	"Analytics",
	"Dependency Injection",
}

// NewDefaultRawConfig returns a RawConfig with the compiled defaults.
// Project name, identifier, features and modules are intentionally empty.
func NewDefaultRawConfig() *RawConfig {
	return &RawConfig{
		Architecture:    DefaultArchitecture,
		StateManagement: DefaultStateManagement,
	}
}
