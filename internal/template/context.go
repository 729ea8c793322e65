package template

import (
	"strings"

	"github.com/modu-ai/flutterkit/pkg/models"
)

// ListSeparator joins list-valued variables such as features and modules.
const ListSeparator = ", "

// Variable names exposed to every template.
const (
	VarApplicationIDAndroid   = "application_id_android"
	VarApplicationIDIOS       = "application_id_ios"
	VarProjectName            = "project_name"
	VarProjectTitle           = "project_title"
	VarOrganizationIdentifier = "organization_identifier"
	VarArchitecture           = "architecture"
	VarArchitectureName       = "architecture_name"
	VarStateManagement        = "state_management"
	VarStateManagementName    = "state_management_name"
	VarStatePackage           = "state_package"
	VarFeatures               = "features"
	VarModules                = "modules"
	VarAppClass               = "app_class"
	VarGeneratorVersion       = "generator_version"
)

// statePackages maps a state-management approach to its primary pub package.
var statePackages = map[models.StateManagement]string{
	models.StateProvider: "provider",
	models.StateRiverpod: "flutter_riverpod",
	models.StateBloc:     "flutter_bloc",
	models.StateGetX:     "get",
	models.StateMobX:     "mobx",
	models.StateRedux:    "redux",
}

// StatePackage returns the pub package backing sm, or "" when unknown.
func StatePackage(sm models.StateManagement) string {
	return statePackages[sm]
}

// TemplateContext holds the project-wide values substituted into templates.
type TemplateContext struct {
	ProjectName            string
	OrganizationIdentifier string
	Architecture           models.Architecture
	StateManagement        models.StateManagement
	Features               []models.FeatureTag
	Modules                []models.ModuleTag
	Identifiers            models.DerivedIdentifiers
	GeneratorVersion       string
}

// ContextOption configures a TemplateContext.
type ContextOption func(*TemplateContext)

// NewTemplateContext creates a TemplateContext and applies opts.
func NewTemplateContext(opts ...ContextOption) *TemplateContext {
	ctx := &TemplateContext{
		GeneratorVersion: "dev",
	}
	for _, opt := range opts {
		opt(ctx)
	}
	return ctx
}

// WithProject copies the validated project configuration.
func WithProject(cfg *models.ProjectConfig) ContextOption {
	return func(c *TemplateContext) {
		if cfg == nil {
			return
		}
		c.ProjectName = cfg.ProjectName
		c.OrganizationIdentifier = cfg.OrganizationIdentifier
		c.Architecture = cfg.Architecture
		c.StateManagement = cfg.StateManagement
		c.Features = cfg.Features
		c.Modules = cfg.Modules
	}
}

// WithIdentifiers sets the derived platform identifiers.
func WithIdentifiers(ids models.DerivedIdentifiers) ContextOption {
	return func(c *TemplateContext) {
		c.Identifiers = ids
	}
}

// WithGeneratorVersion sets the generator version stamped into output.
func WithGeneratorVersion(v string) ContextOption {
	return func(c *TemplateContext) {
		if v != "" {
			c.GeneratorVersion = v
		}
	}
}

// Variables flattens the context into the map handed to the renderer.
// Every key is always present; absent values are empty strings.
func (c *TemplateContext) Variables() map[string]string {
	features := make([]string, len(c.Features))
	for i, f := range c.Features {
		features[i] = string(f)
	}
	modules := make([]string, len(c.Modules))
	for i, m := range c.Modules {
		modules[i] = string(m)
	}

	return map[string]string{
		VarApplicationIDAndroid:   c.Identifiers.Android,
		VarApplicationIDIOS:       c.Identifiers.IOS,
		VarProjectName:            c.ProjectName,
		VarProjectTitle:           models.Title(c.ProjectName),
		VarOrganizationIdentifier: c.OrganizationIdentifier,
		VarArchitecture:           string(c.Architecture),
		VarArchitectureName:       c.Architecture.DisplayName(),
		VarStateManagement:        string(c.StateManagement),
		VarStateManagementName:    c.StateManagement.DisplayName(),
		VarStatePackage:           StatePackage(c.StateManagement),
		VarFeatures:               strings.Join(features, ListSeparator),
		VarModules:                strings.Join(modules, ListSeparator),
		VarAppClass:               models.ClassName(c.ProjectName) + "App",
		VarGeneratorVersion:       c.GeneratorVersion,
	}
}

// SplitList reverses the ListSeparator join. An empty string yields nil.
func SplitList(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, ListSeparator)
}
