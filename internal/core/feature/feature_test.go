package feature

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/modu-ai/flutterkit/internal/core/architecture"
	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/pkg/models"
)

func expand(t *testing.T, features []models.FeatureTag, arch models.Architecture, sm models.StateManagement) *plan.Plan {
	t.Helper()
	p := plan.New()
	if err := NewExpander(nil).Expand(context.Background(), p, features, architecture.Resolve(arch), sm); err != nil {
		t.Fatalf("Expand() error = %v", err)
	}
	return p
}

func TestExpand_CleanLayers(t *testing.T) {
	t.Parallel()

	p := expand(t, []models.FeatureTag{"Authentication"}, models.ArchitectureClean, models.StateBloc)

	for _, want := range []string{
		"lib/features/authentication",
		"lib/features/authentication/data/datasources",
		"lib/features/authentication/domain/usecases",
		"lib/features/authentication/presentation/state",
	} {
		if !p.HasDir(want) {
			t.Errorf("missing directory %q", want)
		}
	}

	f, ok := p.File("lib/features/authentication/presentation/state/authentication_bloc.dart")
	if !ok {
		t.Fatalf("state artifact missing, files: %v", p.FilePaths())
	}
	if f.Template != "state/bloc.dart.tmpl" {
		t.Errorf("Template = %q", f.Template)
	}
	if f.Data["feature_class"] != "Authentication" {
		t.Errorf("feature_class = %q", f.Data["feature_class"])
	}
	if _, ok := p.File("lib/features/authentication/presentation/pages/authentication_screen.dart"); !ok {
		t.Error("screen stub missing")
	}
}

func TestExpand_ExactlyOneStateArtifact(t *testing.T) {
	t.Parallel()

	features := []models.FeatureTag{"Authentication", "User Profile", "Settings"}
	for _, arch := range models.ValidArchitectures() {
		for _, sm := range models.ValidStateManagements() {
			t.Run(string(arch)+"/"+string(sm), func(t *testing.T) {
				t.Parallel()
				p := expand(t, features, arch, sm)
				suffix := "_" + StateSuffix(sm) + ".dart"

				for _, f := range features {
					prefix := "lib/features/" + f.Normalized() + "/"
					var states int
					for _, fp := range p.FilePaths() {
						if strings.HasPrefix(fp, prefix) && strings.HasSuffix(fp, suffix) {
							states++
						}
					}
					if states != 1 {
						t.Errorf("feature %q has %d state artifacts, want 1", f, states)
					}
				}
			})
		}
	}
}

func TestExpand_StateSuffixes(t *testing.T) {
	t.Parallel()

	want := map[models.StateManagement]string{
		models.StateProvider: "provider",
		models.StateRiverpod: "notifier",
		models.StateBloc:     "bloc",
		models.StateGetX:     "controller",
		models.StateMobX:     "store",
		models.StateRedux:    "reducer",
		"unknown":            "state",
	}
	for sm, suffix := range want {
		if got := StateSuffix(sm); got != suffix {
			t.Errorf("StateSuffix(%q) = %q, want %q", sm, got, suffix)
		}
	}
}

func TestExpand_MVCProvider(t *testing.T) {
	t.Parallel()

	p := expand(t, []models.FeatureTag{"Authentication"}, models.ArchitectureMVC, models.StateProvider)
	for _, d := range []string{"models", "views", "controllers"} {
		if !p.HasDir("lib/features/authentication/" + d) {
			t.Errorf("missing MVC layer %q", d)
		}
	}
	if _, ok := p.File("lib/features/authentication/controllers/authentication_provider.dart"); !ok {
		t.Errorf("provider artifact missing, files: %v", p.FilePaths())
	}
}

func TestExpand_OrderInvariant(t *testing.T) {
	t.Parallel()

	a := expand(t, []models.FeatureTag{"Authentication", "Dashboard", "Push-Notifications"},
		models.ArchitectureFeatureDriven, models.StateRiverpod)
	b := expand(t, []models.FeatureTag{"Push-Notifications", "Authentication", "Dashboard"},
		models.ArchitectureFeatureDriven, models.StateRiverpod)

	if !slices.Equal(a.DirPaths(), b.DirPaths()) {
		t.Errorf("directory sets differ:\n%v\n%v", a.DirPaths(), b.DirPaths())
	}
	if !slices.Equal(a.FilePaths(), b.FilePaths()) {
		t.Errorf("file sets differ:\n%v\n%v", a.FilePaths(), b.FilePaths())
	}
}

func TestExpand_Idempotent(t *testing.T) {
	t.Parallel()

	p := plan.New()
	rule := architecture.Resolve(models.ArchitectureMVVM)
	e := NewExpander(nil)
	features := []models.FeatureTag{"Authentication"}

	if err := e.Expand(context.Background(), p, features, rule, models.StateGetX); err != nil {
		t.Fatal(err)
	}
	dirs, files := p.Len()

	if err := e.Expand(context.Background(), p, features, rule, models.StateGetX); err != nil {
		t.Fatalf("second Expand() error = %v", err)
	}
	dirs2, files2 := p.Len()
	if dirs != dirs2 || files != files2 {
		t.Errorf("second expansion changed plan: %d/%d -> %d/%d", dirs, files, dirs2, files2)
	}
}

func TestExpand_Canceled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := NewExpander(nil).Expand(ctx, plan.New(), []models.FeatureTag{"Authentication"},
		architecture.Resolve(models.ArchitectureClean), models.StateProvider)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}

func TestData(t *testing.T) {
	t.Parallel()

	d := Data("User Profile")
	want := map[string]string{
		"feature_name":  "user_profile",
		"feature_class": "UserProfile",
		"feature_title": "User Profile",
		"feature_var":   "userProfile",
	}
	for k, v := range want {
		if d[k] != v {
			t.Errorf("Data[%q] = %q, want %q", k, d[k], v)
		}
	}
}
