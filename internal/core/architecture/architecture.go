// Package architecture maps an architecture choice to the directory rule
// used by feature and module expansion.
package architecture

import (
	"path"
	"slices"

	"github.com/modu-ai/flutterkit/internal/defs"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// Rule describes where feature and module sub-trees attach under lib/.
// Rules are read-only; callers must not modify the slices.
type Rule struct {
	Architecture models.Architecture

	// FeatureBase is the directory under lib/ that holds one directory per feature.
	FeatureBase string

	// FeatureLayers are created under every feature directory.
	FeatureLayers []string

	// StateDir is the layer holding the state-management artifact.
	StateDir string

	// ScreenDir is the layer holding the screen stub.
	ScreenDir string

	// ModuleBase is the directory under lib/ that holds one directory per module.
	ModuleBase string

	// SharedDirs are architecture-level directories created under lib/.
	SharedDirs []string
}

var cleanRule = Rule{
	Architecture: models.ArchitectureClean,
	FeatureBase:  "features",
	FeatureLayers: []string{
		"data/datasources",
		"data/models",
		"data/repositories",
		"domain/entities",
		"domain/repositories",
		"domain/usecases",
		"presentation/pages",
		"presentation/widgets",
		"presentation/state",
	},
	StateDir:   "presentation/state",
	ScreenDir:  "presentation/pages",
	ModuleBase: "core",
	SharedDirs: []string{"core"},
}

var rules = map[models.Architecture]Rule{
	models.ArchitectureClean: cleanRule,
	models.ArchitectureMVVM: {
		Architecture:  models.ArchitectureMVVM,
		FeatureBase:   "features",
		FeatureLayers: []string{"models", "views", "viewmodels"},
		StateDir:      "viewmodels",
		ScreenDir:     "views",
		ModuleBase:    "core",
		SharedDirs:    []string{"core"},
	},
	models.ArchitectureMVC: {
		Architecture:  models.ArchitectureMVC,
		FeatureBase:   "features",
		FeatureLayers: []string{"models", "views", "controllers"},
		StateDir:      "controllers",
		ScreenDir:     "views",
		ModuleBase:    "core",
		SharedDirs:    []string{"core"},
	},
	models.ArchitectureFeatureDriven: {
		Architecture:  models.ArchitectureFeatureDriven,
		FeatureBase:   "features",
		FeatureLayers: []string{"screens", "widgets", "services", "state"},
		StateDir:      "state",
		ScreenDir:     "screens",
		ModuleBase:    "shared/services",
		SharedDirs:    []string{"shared", "shared/widgets", "shared/services"},
	},
}

// Resolve returns the rule for arch. Resolve is total: an unrecognized
// value falls back to the Clean Architecture layout with module base "core".
func Resolve(arch models.Architecture) Rule {
	if r, ok := rules[arch]; ok {
		return r
	}
	return cleanRule
}

// BaseDirs returns the skeleton directories every project carries,
// independent of architecture.
func BaseDirs() []string {
	return slices.Clone(defs.BaseDirs)
}

// FeatureDir returns the slash-separated path of a feature directory.
func (r Rule) FeatureDir(normalized string) string {
	return path.Join(defs.LibDir, r.FeatureBase, normalized)
}

// ModuleDir returns the slash-separated path of a module directory.
func (r Rule) ModuleDir(normalized string) string {
	return path.Join(defs.LibDir, r.ModuleBase, normalized)
}

// SharedPaths returns the shared directories prefixed with lib/.
func (r Rule) SharedPaths() []string {
	paths := make([]string, len(r.SharedDirs))
	for i, d := range r.SharedDirs {
		paths[i] = path.Join(defs.LibDir, d)
	}
	return paths
}
