// Package cli provides the Cobra command tree and dependency wiring for
// the flutterkit CLI. This file defines the Dependencies struct
// (Composition Root) that wires the generator, writer and UI together.
package cli

import (
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modu-ai/flutterkit/internal/config"
	"github.com/modu-ai/flutterkit/internal/core/project"
	"github.com/modu-ai/flutterkit/internal/template"
	"github.com/modu-ai/flutterkit/internal/ui"
	"github.com/modu-ai/flutterkit/internal/writer"
	"github.com/modu-ai/flutterkit/pkg/version"
)

// Dependencies holds all services used by CLI commands. This is the only
// place where concrete types are instantiated and wired together.
type Dependencies struct {
	Templates fs.FS
	Renderer  template.Renderer
	Headless  *ui.HeadlessManager
	Theme     *ui.Theme
	Logger    *slog.Logger

	// NewFS returns the filesystem a project is written to.
	NewFS func(dir string) billy.Filesystem
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// InitDependencies creates and wires all dependencies. It should be called
// once during application startup.
func InitDependencies() error {
	templates, err := template.EmbeddedTemplates()
	if err != nil {
		return fmt.Errorf("load embedded templates: %w", err)
	}

	deps = &Dependencies{
		Templates: templates,
		Renderer:  template.NewRenderer(templates),
		Headless:  ui.NewHeadlessManager(),
		Theme:     ui.NewTheme(),
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		NewFS: func(dir string) billy.Filesystem {
			return osfs.New(dir)
		},
	}
	return nil
}

// GetDeps returns the current Dependencies instance.
// Returns nil if InitDependencies has not been called.
func GetDeps() *Dependencies {
	return deps
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}

// Generator builds a pipeline generator reporting through reporter.
func (d *Dependencies) Generator(opts config.Options, reporter project.Reporter) *project.Generator {
	return project.NewGenerator(d.Templates,
		project.WithLogger(d.Logger),
		project.WithReporter(reporter),
		project.WithValidationOptions(opts),
		project.WithGeneratorVersion(version.GetVersion()),
	)
}

// Writer builds a plan writer for dir.
func (d *Dependencies) Writer(dir string, progress writer.ProgressFunc, opts ...writer.Option) *writer.Writer {
	opts = append([]writer.Option{
		writer.WithLogger(d.Logger),
		writer.WithProgress(progress),
	}, opts...)
	return writer.New(d.NewFS(dir), d.Renderer, opts...)
}
