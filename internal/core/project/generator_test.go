package project

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"
	"testing"
	"testing/fstest"

	"github.com/modu-ai/flutterkit/internal/config"
	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/internal/template"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// recordingReporter captures reporter calls for assertions.
type recordingReporter struct {
	mu          sync.Mutex
	transitions []State
	notes       []models.Note
}

func (r *recordingReporter) StateChanged(_, to State) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.transitions = append(r.transitions, to)
}

func (r *recordingReporter) Note(n models.Note) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.notes = append(r.notes, n)
}

func testTemplates() fstest.MapFS {
	return fstest.MapFS{
		"base/analysis_options.yaml": &fstest.MapFile{Data: []byte("include: package:flutter_lints/flutter.yaml\n")},
	}
}

func demoRaw() *config.RawConfig {
	return &config.RawConfig{
		ProjectName:      "demo_app",
		BundleIdentifier: "com_demo_app",
		Architecture:     "MVC",
		StateManagement:  "Provider",
		Features:         []string{},
		Modules:          []string{"Network Layer"},
	}
}

func TestGeneratorPlan_EndToEnd(t *testing.T) {
	t.Parallel()

	rep := &recordingReporter{}
	g := NewGenerator(testTemplates(), WithReporter(rep))

	res, err := g.Plan(context.Background(), demoRaw())
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}

	p := res.Plan
	for _, d := range []string{"lib", "test", "assets", "assets/images", "assets/icons", "assets/fonts"} {
		if !p.HasDir(d) {
			t.Errorf("missing base directory %q", d)
		}
	}
	for _, d := range []string{"lib/features/authentication/models", "lib/features/authentication/views", "lib/features/authentication/controllers"} {
		if !p.HasDir(d) {
			t.Errorf("missing MVC feature directory %q", d)
		}
	}
	state, ok := p.File("lib/features/authentication/controllers/authentication_provider.dart")
	if !ok {
		t.Fatalf("missing provider state artifact, files: %v", p.FilePaths())
	}
	if state.Template != "state/provider.dart.tmpl" {
		t.Errorf("state template = %q", state.Template)
	}

	if !p.HasDir("lib/core/network_layer") {
		t.Error("missing module directory lib/core/network_layer")
	}
	if _, ok := p.File("lib/core/network_layer/network_layer_service.dart"); !ok {
		t.Error("missing module service file")
	}

	if res.Identifiers.Android != "comdemoapp" || res.Identifiers.IOS != "comdemoapp" {
		t.Errorf("Identifiers = %+v, want comdemoapp for both", res.Identifiers)
	}
	if res.Variables[template.VarApplicationIDAndroid] != "comdemoapp" {
		t.Errorf("application_id_android = %q", res.Variables[template.VarApplicationIDAndroid])
	}
	if !slices.Equal(res.Config.Features, []models.FeatureTag{models.DefaultFeature}) {
		t.Errorf("Features = %v, want [Authentication]", res.Config.Features)
	}

	for _, f := range []string{"README.md", "pubspec.yaml", "analysis_options.yaml", "lib/main.dart", "test/widget_test.dart", "android/app/build.gradle", "ios/Flutter/AppIdentifier.xcconfig"} {
		if _, ok := p.File(f); !ok {
			t.Errorf("missing skeleton file %q", f)
		}
	}

	wantStates := []State{StateValidating, StateDeriving, StateResolving, StateExpanding, StatePlanned}
	if !slices.Equal(res.States, wantStates) {
		t.Errorf("States = %v, want %v", res.States, wantStates)
	}
	if !slices.Equal(rep.transitions, wantStates) {
		t.Errorf("reported transitions = %v, want %v", rep.transitions, wantStates)
	}
	if len(rep.notes) != 1 || rep.notes[0].Field != "features" {
		t.Errorf("reported notes = %+v, want the empty-features note", rep.notes)
	}
}

func TestGeneratorPlan_ValidationFailureIsTerminal(t *testing.T) {
	t.Parallel()

	rep := &recordingReporter{}
	raw := demoRaw()
	raw.ProjectName = "Demo App"

	res, err := NewGenerator(testTemplates(), WithReporter(rep)).Plan(context.Background(), raw)
	if res != nil {
		t.Error("expected nil result on validation failure")
	}
	if !errors.Is(err, config.ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
	if config.Reason(err) != config.ReasonBadProjectName {
		t.Errorf("Reason = %q", config.Reason(err))
	}
	if !slices.Equal(rep.transitions, []State{StateValidating, StateFailed}) {
		t.Errorf("transitions = %v, want [validating failed]", rep.transitions)
	}
}

func TestGeneratorPlan_EmptyOrganization(t *testing.T) {
	t.Parallel()

	raw := demoRaw()
	raw.BundleIdentifier = ""

	res, err := NewGenerator(testTemplates()).Plan(context.Background(), raw)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	if !res.Identifiers.IsEmpty() {
		t.Errorf("Identifiers = %+v, want empty", res.Identifiers)
	}
	for _, f := range []string{"android/app/build.gradle", "ios/Flutter/AppIdentifier.xcconfig"} {
		if _, ok := res.Plan.File(f); ok {
			t.Errorf("%s must be omitted without an identifier", f)
		}
	}

	var fields []string
	for _, n := range res.Notes {
		fields = append(fields, n.Field)
	}
	for _, want := range []string{"bundle_identifier", template.VarApplicationIDAndroid, template.VarApplicationIDIOS} {
		if !slices.Contains(fields, want) {
			t.Errorf("missing note for %q in %v", want, fields)
		}
	}
}

func TestGeneratorPlan_FeatureDriven(t *testing.T) {
	t.Parallel()

	raw := demoRaw()
	raw.Architecture = "Feature-Driven"
	raw.StateManagement = "Riverpod"
	raw.Features = []string{"Authentication", "Dashboard"}

	res, err := NewGenerator(testTemplates()).Plan(context.Background(), raw)
	if err != nil {
		t.Fatalf("Plan() error = %v", err)
	}
	p := res.Plan
	for _, d := range []string{"lib/shared", "lib/shared/widgets", "lib/shared/services", "lib/shared/services/network_layer"} {
		if !p.HasDir(d) {
			t.Errorf("missing %q", d)
		}
	}
	if _, ok := p.File("lib/features/dashboard/state/dashboard_notifier.dart"); !ok {
		t.Errorf("missing riverpod notifier, files: %v", p.FilePaths())
	}
	for _, d := range p.Dirs() {
		if strings.HasPrefix(d.Path, "lib/core") {
			t.Errorf("Feature-Driven plan must not contain %q", d.Path)
		}
	}
}

func TestGeneratorPlan_Deterministic(t *testing.T) {
	t.Parallel()

	raw := demoRaw()
	raw.Features = []string{"Settings", "Authentication", "Profile"}
	raw.Modules = []string{"Theming", "Network Layer", "Routing"}

	g := NewGenerator(testTemplates())
	first, err := g.Plan(context.Background(), raw)
	if err != nil {
		t.Fatal(err)
	}
	for range 5 {
		again, err := g.Plan(context.Background(), raw)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Equal(first.Plan.DirPaths(), again.Plan.DirPaths()) ||
			!slices.Equal(first.Plan.FilePaths(), again.Plan.FilePaths()) {
			t.Fatal("plan output differs between runs")
		}
	}
}

func TestGeneratorPlan_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewGenerator(testTemplates()).Plan(ctx, demoRaw())
	if !errors.Is(err, ErrPipeline) {
		t.Errorf("expected ErrPipeline, got %v", err)
	}
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled in chain, got %v", err)
	}
}

func TestGeneratorPlan_MissingStaticTemplate(t *testing.T) {
	t.Parallel()

	_, err := NewGenerator(fstest.MapFS{}).Plan(context.Background(), demoRaw())
	if !errors.Is(err, ErrPipeline) || !errors.Is(err, template.ErrTemplateNotFound) {
		t.Errorf("expected ErrPipeline wrapping ErrTemplateNotFound, got %v", err)
	}

	if _, err := NewGenerator(nil).Plan(context.Background(), demoRaw()); !errors.Is(err, ErrNoTemplates) {
		t.Errorf("expected ErrNoTemplates, got %v", err)
	}
}

func TestGeneratorPlan_NoCollisionsAcrossCatalog(t *testing.T) {
	t.Parallel()

	for _, arch := range models.ValidArchitectures() {
		raw := demoRaw()
		raw.Architecture = string(arch)
		raw.Features = raw.Features[:0]
		for _, f := range config.FeatureCatalog {
			raw.Features = append(raw.Features, string(f))
		}
		raw.Modules = nil
		for _, m := range config.ModuleCatalog {
			raw.Modules = append(raw.Modules, string(m))
		}

		_, err := NewGenerator(testTemplates()).Plan(context.Background(), raw)
		if errors.Is(err, plan.ErrPlanCollision) {
			t.Errorf("%s: unexpected collision: %v", arch, err)
		} else if err != nil {
			t.Errorf("%s: %v", arch, err)
		}
	}
}

func TestPipelineRun_RejectsBackwardTransition(t *testing.T) {
	t.Parallel()

	run := newPipelineRun(NopReporter{})
	ctx := context.Background()
	for _, ev := range []string{eventValidate, eventDerive} {
		if err := run.advance(ctx, ev); err != nil {
			t.Fatalf("advance(%s): %v", ev, err)
		}
	}
	if err := run.advance(ctx, eventValidate); !errors.Is(err, ErrPipeline) {
		t.Errorf("expected ErrPipeline for backward transition, got %v", err)
	}
	run.fail(ctx)
	run.fail(ctx)
	if run.current() != StateFailed {
		t.Errorf("current = %s, want failed", run.current())
	}
}
