// Package module expands selected infrastructure modules into one
// directory and one base service file each, placed under the module base
// path of the active architecture rule.
package module

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"

	"github.com/modu-ai/flutterkit/internal/core/architecture"
	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/internal/defs"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// ServiceTemplate is the template identifier of a module service file.
const ServiceTemplate = "module/service.dart.tmpl"

// Expander registers module sub-trees into a plan.
type Expander struct {
	logger *slog.Logger
}

// NewExpander creates an Expander. A nil logger discards output.
func NewExpander(logger *slog.Logger) *Expander {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Expander{logger: logger}
}

// Expand registers lib/<ModuleBase>/<name> and its <name>_service.dart for
// every module. Module directories are no-clobber: a module whose
// directory is already planned is skipped, and the writer skips it when
// it already exists on disk.
func (e *Expander) Expand(ctx context.Context, p *plan.Plan, modules []models.ModuleTag, rule architecture.Rule) error {
	for _, m := range modules {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.expandOne(p, m, rule); err != nil {
			return fmt.Errorf("expand module %q: %w", m, err)
		}
	}
	return nil
}

func (e *Expander) expandOne(p *plan.Plan, m models.ModuleTag, rule architecture.Rule) error {
	name := m.Normalized()
	dir := rule.ModuleDir(name)

	added, err := p.AddDir(plan.DirectorySpec{
		Path:      dir,
		Owner:     plan.ModuleOwner(name),
		NoClobber: true,
	})
	if err != nil {
		return err
	}
	if !added {
		e.logger.Debug("module directory already planned, skipping", "module", string(m), "dir", dir)
		return nil
	}

	file := ServicePath(rule, name)
	if err := p.AddFile(plan.FileSpec{
		Path:     file,
		Owner:    plan.ModuleOwner(name),
		Template: ServiceTemplate,
		Data:     Data(m),
	}); err != nil {
		return err
	}

	e.logger.Debug("module expanded", "module", string(m), "dir", dir, "service", file)
	return nil
}

// ServicePath returns the path of a module's base service file.
func ServicePath(rule architecture.Rule, normalized string) string {
	return path.Join(rule.ModuleDir(normalized), normalized+"_service"+defs.DartExt)
}

// Data returns the per-module template bindings.
func Data(m models.ModuleTag) map[string]string {
	name := m.Normalized()
	return map[string]string{
		"module_name":  name,
		"module_class": models.ClassName(name),
		"module_title": models.Title(name),
	}
}
