// Package wizard provides the interactive huh-based prompt flow that
// collects generator input not supplied by flags or a config file.
package wizard

import "errors"

// WizardResult holds the user's answers.
type WizardResult struct {
	ProjectName            string
	OrganizationIdentifier string
	Architecture           string
	StateManagement        string
	Features               []string
	Modules                []string

	// featuresSet and modulesSet distinguish "not asked" from "chose none".
	featuresSet bool
	modulesSet  bool
}

// QuestionType represents the type of wizard question.
type QuestionType int

const (
	// QuestionTypeSelect is a single-choice selection question.
	QuestionTypeSelect QuestionType = iota
	// QuestionTypeInput is a text input question.
	QuestionTypeInput
	// QuestionTypeMultiSelect is a multiple-choice question.
	QuestionTypeMultiSelect
)

// Question defines a single wizard question.
type Question struct {
	ID          string
	Type        QuestionType
	Title       string
	Description string
	Options     []Option
	Default     string
	Defaults    []string // initial selection for multi-select questions
	Required    bool
	Validate    func(string) error
}

// Option represents a selectable option.
type Option struct {
	Label string
	Value string
	Desc  string
}

// Question identifiers.
const (
	QuestionProjectName     = "project_name"
	QuestionOrganization    = "organization_identifier"
	QuestionArchitecture    = "architecture"
	QuestionStateManagement = "state_management"
	QuestionFeatures        = "features"
	QuestionModules         = "modules"
)

var (
	// ErrCancelled is returned when the user cancels the wizard.
	ErrCancelled = errors.New("wizard cancelled by user")
	// ErrNoQuestions is returned when no questions are provided.
	ErrNoQuestions = errors.New("no questions provided")
)
