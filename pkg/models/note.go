package models

// NoteLevel classifies informational output produced during generation.
type NoteLevel string

const (
	NoteInfo    NoteLevel = "info"
	NoteWarning NoteLevel = "warning"
)

// Note is a non-fatal message surfaced to the user. Missing identifiers,
// an empty feature list and similar anomalies are reported as notes rather
// than errors.
type Note struct {
	Level   NoteLevel `json:"level"`
	Field   string    `json:"field,omitempty"`
	Message string    `json:"message"`
}

// NewInfo returns an informational note for field.
func NewInfo(field, message string) Note {
	return Note{Level: NoteInfo, Field: field, Message: message}
}

// NewWarning returns a warning note for field.
func NewWarning(field, message string) Note {
	return Note{Level: NoteWarning, Field: field, Message: message}
}
