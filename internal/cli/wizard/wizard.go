package wizard

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"
)

// Run asks every question that initial does not already answer and
// returns the merged result. initial may be nil. Each question runs as its
// own huh.Form.
func Run(questions []Question, initial *WizardResult) (*WizardResult, error) {
	if len(questions) == 0 {
		return nil, ErrNoQuestions
	}

	result := &WizardResult{}
	if initial != nil {
		*result = *initial
	}
	theme := newWizardTheme()

	for i := range questions {
		q := &questions[i]
		if hasAnswer(q.ID, result) {
			continue
		}

		form := huh.NewForm(huh.NewGroup(buildField(q, result))).
			WithTheme(theme).
			WithAccessible(false)

		if err := form.Run(); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil, ErrCancelled
			}
			return nil, fmt.Errorf("wizard error: %w", err)
		}
	}

	return result, nil
}

// RunWithDefaults runs DefaultQuestions(dir) on top of initial.
func RunWithDefaults(dir string, initial *WizardResult) (*WizardResult, error) {
	return Run(DefaultQuestions(dir), initial)
}

// SetFeatures records an explicit feature selection, including an empty one.
func (r *WizardResult) SetFeatures(features []string) {
	r.Features = features
	r.featuresSet = true
}

// SetModules records an explicit module selection, including an empty one.
func (r *WizardResult) SetModules(modules []string) {
	r.Modules = modules
	r.modulesSet = true
}

func buildField(q *Question, result *WizardResult) huh.Field {
	switch q.Type {
	case QuestionTypeSelect:
		return buildSelectField(q, result)
	case QuestionTypeMultiSelect:
		return buildMultiSelectField(q, result)
	default:
		return buildInputField(q, result)
	}
}

func buildSelectField(q *Question, result *WizardResult) *huh.Select[string] {
	selected := q.Default

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		key := opt.Label
		if opt.Desc != "" {
			key = opt.Label + " - " + opt.Desc
		}
		opts[i] = huh.NewOption(key, opt.Value)
	}

	return huh.NewSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(val string) error {
			saveAnswer(q.ID, val, result)
			return nil
		})
}

func buildMultiSelectField(q *Question, result *WizardResult) *huh.MultiSelect[string] {
	var selected []string

	opts := make([]huh.Option[string], len(q.Options))
	for i, opt := range q.Options {
		o := huh.NewOption(opt.Label, opt.Value)
		for _, d := range q.Defaults {
			if d == opt.Value {
				o = o.Selected(true)
			}
		}
		opts[i] = o
	}

	return huh.NewMultiSelect[string]().
		Title(q.Title).
		Description(q.Description).
		Options(opts...).
		Value(&selected).
		Validate(func(vals []string) error {
			saveList(q.ID, vals, result)
			return nil
		})
}

func buildInputField(q *Question, result *WizardResult) *huh.Input {
	var value string

	inp := huh.NewInput().
		Title(q.Title).
		Description(q.Description).
		Value(&value)
	if q.Default != "" {
		inp = inp.Placeholder(q.Default)
	}

	return inp.Validate(func(val string) error {
		v := strings.TrimSpace(val)
		if v == "" {
			v = q.Default
		}
		if q.Required && v == "" {
			return errors.New("this field is required")
		}
		if q.Validate != nil && v != "" {
			if err := q.Validate(v); err != nil {
				return err
			}
		}
		saveAnswer(q.ID, v, result)
		return nil
	})
}

// hasAnswer reports whether result already holds a value for id.
func hasAnswer(id string, result *WizardResult) bool {
	switch id {
	case QuestionProjectName:
		return result.ProjectName != ""
	case QuestionOrganization:
		return result.OrganizationIdentifier != ""
	case QuestionArchitecture:
		return result.Architecture != ""
	case QuestionStateManagement:
		return result.StateManagement != ""
	case QuestionFeatures:
		return result.featuresSet || len(result.Features) > 0
	case QuestionModules:
		return result.modulesSet || len(result.Modules) > 0
	}
	return false
}

// saveAnswer stores a scalar answer in the result.
func saveAnswer(id, value string, result *WizardResult) {
	switch id {
	case QuestionProjectName:
		result.ProjectName = value
	case QuestionOrganization:
		result.OrganizationIdentifier = value
	case QuestionArchitecture:
		result.Architecture = value
	case QuestionStateManagement:
		result.StateManagement = value
	}
}

// saveList stores a multi-select answer in the result.
func saveList(id string, values []string, result *WizardResult) {
	switch id {
	case QuestionFeatures:
		result.SetFeatures(values)
	case QuestionModules:
		result.SetModules(values)
	}
}
