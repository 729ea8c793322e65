package config

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/modu-ai/flutterkit/pkg/models"
)

func validRaw() *RawConfig {
	return &RawConfig{
		ProjectName:      "demo_app",
		BundleIdentifier: "com_demo_app",
		Architecture:     "MVC",
		StateManagement:  "Provider",
		Features:         []string{"Authentication"},
	}
}

func TestValidate_ProjectNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"lowercase", "demo_app", false},
		{"leading_underscore", "_demo", false},
		{"digits_after_first", "app2go", false},
		{"single_letter", "a", false},
		{"uppercase", "DemoApp", true},
		{"space", "demo app", true},
		{"leading_digit", "1demo", true},
		{"hyphen", "demo-app", true},
		{"empty", "", true},
		{"trailing_space", "demo ", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			raw := validRaw()
			raw.ProjectName = tt.input

			_, _, err := Validate(raw, Options{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidConfig) {
					t.Errorf("expected ErrInvalidConfig, got %v", err)
				}
				if got := Reason(err); got != ReasonBadProjectName {
					t.Errorf("Reason() = %q, want %q", got, ReasonBadProjectName)
				}
			}
		})
	}
}

func TestValidate_UnknownEnums(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Architecture = "hexagonal"
	_, _, err := Validate(raw, Options{})
	if got := Reason(err); got != ReasonUnknownArchitecture {
		t.Errorf("Reason() = %q, want %q", got, ReasonUnknownArchitecture)
	}

	raw = validRaw()
	raw.StateManagement = "signals"
	_, _, err = Validate(raw, Options{})
	if got := Reason(err); got != ReasonUnknownStateManagement {
		t.Errorf("Reason() = %q, want %q", got, ReasonUnknownStateManagement)
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	t.Parallel()

	raw := &RawConfig{ProjectName: "Bad Name", Architecture: "x", StateManagement: "y"}
	_, _, err := Validate(raw, Options{})

	var ve *ValidationErrors
	if !errors.As(err, &ve) {
		t.Fatalf("expected *ValidationErrors, got %T", err)
	}
	want := []string{ReasonBadProjectName, ReasonUnknownArchitecture, ReasonUnknownStateManagement}
	if got := ve.Reasons(); !slices.Equal(got, want) {
		t.Errorf("Reasons() = %v, want %v", got, want)
	}
	if !strings.Contains(err.Error(), "3 error(s)") {
		t.Errorf("Error() = %q, want error count", err.Error())
	}
}

func TestValidate_EmptyFeaturesUseBaseline(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Features = nil

	cfg, notes, err := Validate(raw, Options{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !slices.Equal(cfg.Features, []models.FeatureTag{models.DefaultFeature}) {
		t.Errorf("Features = %v, want [%s]", cfg.Features, models.DefaultFeature)
	}
	if len(notes) != 1 || notes[0].Level != models.NoteInfo || notes[0].Field != "features" {
		t.Errorf("notes = %+v, want one info note for features", notes)
	}
}

func TestValidate_MissingDefaultFeatureOnlyNotes(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Features = []string{"Dashboard", "Settings"}

	cfg, notes, err := Validate(raw, Options{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.HasFeature(models.DefaultFeature) {
		t.Error("default feature must not be force-inserted without EnforceDefaultFeature")
	}
	if len(cfg.Features) != 2 {
		t.Errorf("Features = %v, want 2 entries", cfg.Features)
	}
	if len(notes) != 1 || notes[0].Level != models.NoteWarning {
		t.Errorf("notes = %+v, want one warning", notes)
	}
}

func TestValidate_EnforceDefaultFeature(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Features = []string{"Dashboard"}

	cfg, _, err := Validate(raw, Options{EnforceDefaultFeature: true})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	want := []models.FeatureTag{models.DefaultFeature, "Dashboard"}
	if !slices.Equal(cfg.Features, want) {
		t.Errorf("Features = %v, want %v", cfg.Features, want)
	}
}

func TestValidate_TagsDeduplicatedAndChecked(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Features = []string{"Authentication", "authentication", " ", "User Profile"}
	raw.Modules = []string{"Network Layer", "network layer"}

	cfg, _, err := Validate(raw, Options{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(cfg.Features) != 2 {
		t.Errorf("Features = %v, want 2 unique entries", cfg.Features)
	}
	if !slices.Equal(cfg.Modules, []models.ModuleTag{"Network Layer"}) {
		t.Errorf("Modules = %v, want [Network Layer]", cfg.Modules)
	}

	raw.Modules = []string{"Network/Layer"}
	_, _, err = Validate(raw, Options{})
	if got := Reason(err); got != ReasonBadModuleName {
		t.Errorf("Reason() = %q, want %q", got, ReasonBadModuleName)
	}

	raw = validRaw()
	raw.Features = []string{"3D View"}
	_, _, err = Validate(raw, Options{})
	if got := Reason(err); got != ReasonBadFeatureName {
		t.Errorf("Reason() = %q, want %q", got, ReasonBadFeatureName)
	}
}

func TestValidate_OrganizationIdentifier(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.BundleIdentifier = ""
	raw.OrgName = " com_fallback "

	cfg, notes, err := Validate(raw, Options{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if cfg.OrganizationIdentifier != "com_fallback" {
		t.Errorf("OrganizationIdentifier = %q, want %q", cfg.OrganizationIdentifier, "com_fallback")
	}
	if len(notes) != 0 {
		t.Errorf("notes = %+v, want none", notes)
	}

	raw.OrgName = ""
	_, notes, err = Validate(raw, Options{})
	if err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if len(notes) != 1 || notes[0].Field != "bundle_identifier" {
		t.Errorf("notes = %+v, want one bundle_identifier note", notes)
	}
}

func TestValidate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	raw := validRaw()
	raw.Features = []string{"Dashboard"}
	before := raw.Clone()

	if _, _, err := Validate(raw, Options{EnforceDefaultFeature: true}); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if !slices.Equal(raw.Features, before.Features) || raw.ProjectName != before.ProjectName {
		t.Errorf("Validate mutated input: %+v", raw)
	}
}
