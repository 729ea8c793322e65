package project

import (
	"fmt"
	"io/fs"

	"github.com/modu-ai/flutterkit/internal/core/architecture"
	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/internal/defs"
	"github.com/modu-ai/flutterkit/internal/template"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// skeletonFiles maps project-root files to their template identifiers.
var skeletonFiles = []struct {
	path     string
	template string
}{
	{defs.ReadmeMD, "base/README.md.tmpl"},
	{defs.PubspecYAML, "base/pubspec.yaml.tmpl"},
	{defs.MainDart, "base/lib/main.dart.tmpl"},
	{defs.WidgetTestDart, "base/test/widget_test.dart.tmpl"},
}

const analysisOptionsSource = "base/analysis_options.yaml"

// addSkeleton registers the architecture-independent base directories,
// the shared directories of rule, and the project-root files.
func addSkeleton(p *plan.Plan, rule architecture.Rule, templates fs.FS) error {
	dirs := append(architecture.BaseDirs(), rule.SharedPaths()...)
	for _, d := range dirs {
		if _, err := p.AddDir(plan.DirectorySpec{Path: d, Owner: plan.OwnerSkeleton}); err != nil {
			return err
		}
	}

	for _, f := range skeletonFiles {
		if err := p.AddFile(plan.FileSpec{
			Path:     f.path,
			Owner:    plan.OwnerSkeleton,
			Template: f.template,
		}); err != nil {
			return err
		}
	}

	content, err := template.Static(templates, analysisOptionsSource)
	if err != nil {
		return fmt.Errorf("load %s: %w", analysisOptionsSource, err)
	}
	return p.AddFile(plan.FileSpec{
		Path:    defs.AnalysisOptionsYAML,
		Owner:   plan.OwnerSkeleton,
		Content: content,
	})
}

// addPlatformFiles registers identifier-dependent files. A platform whose
// identifier is empty is omitted and a note is returned instead.
func addPlatformFiles(p *plan.Plan, ids models.DerivedIdentifiers) ([]models.Note, error) {
	var notes []models.Note

	if ids.Android != "" {
		if err := p.AddFile(plan.FileSpec{
			Path:     defs.AndroidBuildGradle,
			Owner:    plan.OwnerPlatform,
			Template: "platform/android/build.gradle.tmpl",
		}); err != nil {
			return nil, err
		}
	} else {
		notes = append(notes, models.NewInfo(template.VarApplicationIDAndroid,
			fmt.Sprintf("android application id is empty; %s omitted", defs.AndroidBuildGradle)))
	}

	if ids.IOS != "" {
		if err := p.AddFile(plan.FileSpec{
			Path:     defs.IOSIdentifierXCConfig,
			Owner:    plan.OwnerPlatform,
			Template: "platform/ios/AppIdentifier.xcconfig.tmpl",
		}); err != nil {
			return nil, err
		}
	} else {
		notes = append(notes, models.NewInfo(template.VarApplicationIDIOS,
			fmt.Sprintf("iOS bundle id is empty; %s omitted", defs.IOSIdentifierXCConfig)))
	}

	return notes, nil
}
