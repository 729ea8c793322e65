package models

import "strings"

// Architecture defines the structural convention used for the generated app.
type Architecture string

const (
	// ArchitectureClean layers every feature into data, domain and presentation.
	ArchitectureClean Architecture = "clean"

	// ArchitectureMVVM splits features into models, views and view models.
	ArchitectureMVVM Architecture = "mvvm"

	// ArchitectureMVC splits features into models, views and controllers.
	ArchitectureMVC Architecture = "mvc"

	// ArchitectureFeatureDriven keeps each feature self-contained and moves
	// infrastructure into shared services.
	ArchitectureFeatureDriven Architecture = "feature_driven"
)

var architectureNames = map[Architecture]string{
	ArchitectureClean:         "Clean Architecture",
	ArchitectureMVVM:          "MVVM",
	ArchitectureMVC:           "MVC",
	ArchitectureFeatureDriven: "Feature-Driven",
}

// architectureAliases maps squashed spellings to enum values.
var architectureAliases = map[string]Architecture{
	"clean":             ArchitectureClean,
	"cleanarchitecture": ArchitectureClean,
	"mvvm":              ArchitectureMVVM,
	"mvc":               ArchitectureMVC,
	"featuredriven":     ArchitectureFeatureDriven,
}

// ValidArchitectures returns all valid architecture values in display order.
func ValidArchitectures() []Architecture {
	return []Architecture{
		ArchitectureClean,
		ArchitectureMVVM,
		ArchitectureMVC,
		ArchitectureFeatureDriven,
	}
}

// IsValid checks if the architecture is a valid value.
func (a Architecture) IsValid() bool {
	_, ok := architectureNames[a]
	return ok
}

// DisplayName returns the human-readable name, or the raw value when unknown.
func (a Architecture) DisplayName() string {
	if name, ok := architectureNames[a]; ok {
		return name
	}
	return string(a)
}

// ParseArchitecture resolves user input such as "Clean Architecture",
// "feature-driven" or "MVVM" to an Architecture. Matching ignores case,
// spaces, hyphens and underscores.
func ParseArchitecture(s string) (Architecture, bool) {
	a, ok := architectureAliases[squash(s)]
	return a, ok
}

// squash lowercases s and drops separator characters.
func squash(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimSpace(s)) {
		switch r {
		case ' ', '-', '_', '\t':
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
