package project

import (
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/modu-ai/flutterkit/internal/config"
	"github.com/modu-ai/flutterkit/internal/core/architecture"
	"github.com/modu-ai/flutterkit/internal/core/feature"
	"github.com/modu-ai/flutterkit/internal/core/identifier"
	"github.com/modu-ai/flutterkit/internal/core/module"
	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/internal/template"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// Result is the outcome of a successful pipeline run.
type Result struct {
	Config      *models.ProjectConfig
	Identifiers models.DerivedIdentifiers
	Rule        architecture.Rule
	Plan        *plan.Plan
	Variables   map[string]string
	Notes       []models.Note
	States      []State
}

// Generator runs the generation pipeline. A Generator holds no per-run
// state and may be reused.
type Generator struct {
	templates        fs.FS
	reporter         Reporter
	logger           *slog.Logger
	validation       config.Options
	generatorVersion string
	features         *feature.Expander
	modules          *module.Expander
}

// Option configures a Generator.
type Option func(*Generator)

// WithReporter sets the progress and note collaborator.
func WithReporter(r Reporter) Option {
	return func(g *Generator) {
		if r != nil {
			g.reporter = r
		}
	}
}

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(g *Generator) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithValidationOptions sets the validation strictness.
func WithValidationOptions(opts config.Options) Option {
	return func(g *Generator) {
		g.validation = opts
	}
}

// WithGeneratorVersion sets the version stamped into generated files.
func WithGeneratorVersion(v string) Option {
	return func(g *Generator) {
		g.generatorVersion = v
	}
}

// NewGenerator creates a Generator reading static sources from templates.
func NewGenerator(templates fs.FS, opts ...Option) *Generator {
	g := &Generator{
		templates: templates,
		reporter:  NopReporter{},
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.features = feature.NewExpander(g.logger)
	g.modules = module.NewExpander(g.logger)
	return g
}

// Plan runs validating, deriving, resolving and expanding, and returns the
// finished plan. A validation failure is returned unwrapped so callers can
// match config.ErrInvalidConfig; later failures wrap ErrPipeline. Plan
// never touches the file system.
func (g *Generator) Plan(ctx context.Context, raw *config.RawConfig) (*Result, error) {
	if g.templates == nil {
		return nil, ErrNoTemplates
	}

	run := newPipelineRun(g.reporter)
	res, err := g.run(ctx, run, raw)
	if err != nil {
		run.fail(ctx)
		g.logger.Debug("pipeline failed", "state", string(run.current()), "error", err)
		return nil, err
	}
	res.States = run.states()
	return res, nil
}

func (g *Generator) run(ctx context.Context, run *pipelineRun, raw *config.RawConfig) (*Result, error) {
	if err := run.advance(ctx, eventValidate); err != nil {
		return nil, err
	}
	cfg, notes, err := config.Validate(raw, g.validation)
	if err != nil {
		return nil, err
	}
	g.report(notes...)

	if err := run.advance(ctx, eventDerive); err != nil {
		return nil, err
	}
	ids := identifier.Derive(cfg.OrganizationIdentifier)

	if err := run.advance(ctx, eventResolve); err != nil {
		return nil, err
	}
	rule := architecture.Resolve(cfg.Architecture)

	if err := run.advance(ctx, eventExpand); err != nil {
		return nil, err
	}

	p := plan.New()
	vars := template.NewTemplateContext(
		template.WithProject(cfg),
		template.WithIdentifiers(ids),
		template.WithGeneratorVersion(g.generatorVersion),
	).Variables()
	if err := p.SetVariables(vars); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPipeline, err)
	}

	if err := addSkeleton(p, rule, g.templates); err != nil {
		return nil, fmt.Errorf("%w: skeleton: %w", ErrPipeline, err)
	}
	platformNotes, err := addPlatformFiles(p, ids)
	if err != nil {
		return nil, fmt.Errorf("%w: platform files: %w", ErrPipeline, err)
	}
	g.report(platformNotes...)
	notes = append(notes, platformNotes...)

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return g.features.Expand(egCtx, p, cfg.Features, rule, cfg.StateManagement)
	})
	eg.Go(func() error {
		return g.modules.Expand(egCtx, p, cfg.Modules, rule)
	})
	if err := eg.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPipeline, err)
	}

	if err := run.advance(ctx, eventFinish); err != nil {
		return nil, err
	}

	dirs, files := p.Len()
	g.logger.Info("plan ready",
		"project", cfg.ProjectName,
		"architecture", string(cfg.Architecture),
		"state_management", string(cfg.StateManagement),
		"dirs", dirs,
		"files", files,
	)

	return &Result{
		Config:      cfg,
		Identifiers: ids,
		Rule:        rule,
		Plan:        p,
		Variables:   vars,
		Notes:       notes,
	}, nil
}

func (g *Generator) report(notes ...models.Note) {
	for _, n := range notes {
		g.reporter.Note(n)
	}
}
