// Package feature expands selected features into architecture-shaped
// sub-trees with exactly one state-management artifact and one screen stub
// per feature.
package feature

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

// Template identifiers used by feature files.
const (
	ScreenTemplate = "feature/screen.dart.tmpl"
	stateTemplate  = "state/%s.dart.tmpl"
)

// stateSuffixes maps a state-management approach to the file suffix of
// its state artifact.
var stateSuffixes = map[models.StateManagement]string{
	models.StateProvider: "provider",
	models.StateRiverpod: "notifier",
	models.StateBloc:     "bloc",
	models.StateGetX:     "controller",
	models.StateMobX:     "store",
	models.StateRedux:    "reducer",
}

// StateSuffix returns the state artifact suffix for sm ("state" when unknown).
func StateSuffix(sm models.StateManagement) string {
	if s, ok := stateSuffixes[sm]; ok {
		return s
	}
	return "state"
}

// StateTemplate returns the template identifier of the state artifact for sm.
func StateTemplate(sm models.StateManagement) string {
	return fmt.Sprintf(stateTemplate, sm)
}

// Expander registers feature sub-trees into a plan.
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

// Expand registers, for every feature, its directory, the architecture
// layers beneath it, one state artifact and one screen stub. Expansion is
// idempotent and independent of the order of features.
func (e *Expander) Expand(ctx context.Context, p *plan.Plan, features []models.FeatureTag, rule architecture.Rule, sm models.StateManagement) error {
	for _, f := range features {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := e.expandOne(p, f, rule, sm); err != nil {
			return fmt.Errorf("expand feature %q: %w", f, err)
		}
	}
	return nil
}

func (e *Expander) expandOne(p *plan.Plan, f models.FeatureTag, rule architecture.Rule, sm models.StateManagement) error {
	name := f.Normalized()
	owner := plan.FeatureOwner(name)
	root := rule.FeatureDir(name)

	dirs := make([]string, 0, len(rule.FeatureLayers)+1)
	dirs = append(dirs, root)
	for _, layer := range rule.FeatureLayers {
		dirs = append(dirs, path.Join(root, layer))
	}
	for _, d := range dirs {
		if _, err := p.AddDir(plan.DirectorySpec{Path: d, Owner: owner}); err != nil {
			return err
		}
	}

	data := Data(f)

	statePath := path.Join(root, rule.StateDir, name+"_"+StateSuffix(sm)+defs.DartExt)
	if err := p.AddFile(plan.FileSpec{
		Path:     statePath,
		Owner:    owner,
		Template: StateTemplate(sm),
		Data:     data,
	}); err != nil {
		return err
	}

	screenPath := path.Join(root, rule.ScreenDir, name+"_screen"+defs.DartExt)
	if err := p.AddFile(plan.FileSpec{
		Path:     screenPath,
		Owner:    owner,
		Template: ScreenTemplate,
		Data:     data,
	}); err != nil {
		return err
	}

	e.logger.Debug("feature expanded",
		"feature", string(f),
		"dir", root,
		"state", statePath,
	)
	return nil
}

// Data returns the per-feature template bindings.
func Data(f models.FeatureTag) map[string]string {
	name := f.Normalized()
	return map[string]string{
		"feature_name":  name,
		"feature_class": models.ClassName(name),
		"feature_title": models.Title(name),
		"feature_var":   models.VariableName(name),
	}
}
