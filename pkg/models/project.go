package models

// FeatureTag names a user-facing capability such as "Authentication".
type FeatureTag string

// ModuleTag names an infrastructure capability such as "Network Layer".
type ModuleTag string

// DefaultFeature is the baseline feature every project is expected to carry.
const DefaultFeature FeatureTag = "Authentication"

// Normalized returns the directory-safe name of the feature.
func (f FeatureTag) Normalized() string { return Normalize(string(f)) }

// ClassName returns the PascalCase class stem of the feature.
func (f FeatureTag) ClassName() string { return ClassName(f.Normalized()) }

// Normalized returns the directory-safe name of the module.
func (m ModuleTag) Normalized() string { return Normalize(string(m)) }

// ClassName returns the PascalCase class stem of the module.
func (m ModuleTag) ClassName() string { return ClassName(m.Normalized()) }

// ProjectConfig is the validated, normalized generation input.
// It is built once per run by config.Validate and never mutated afterwards.
type ProjectConfig struct {
	ProjectName            string          `yaml:"project_name" json:"project_name"`
	OrganizationIdentifier string          `yaml:"organization_identifier" json:"organization_identifier"`
	Architecture           Architecture    `yaml:"architecture" json:"architecture"`
	StateManagement        StateManagement `yaml:"state_management" json:"state_management"`
	Features               []FeatureTag    `yaml:"features" json:"features"`
	Modules                []ModuleTag     `yaml:"modules" json:"modules"`
}

// HasFeature reports whether the feature set contains tag, comparing
// normalized names.
func (c *ProjectConfig) HasFeature(tag FeatureTag) bool {
	want := tag.Normalized()
	for _, f := range c.Features {
		if f.Normalized() == want {
			return true
		}
	}
	return false
}

// DerivedIdentifiers holds the per-platform application identifiers.
type DerivedIdentifiers struct {
	Android string `json:"android"`
	IOS     string `json:"ios"`
}

// IsEmpty reports whether no identifier could be derived.
func (d DerivedIdentifiers) IsEmpty() bool {
	return d.Android == "" && d.IOS == ""
}
