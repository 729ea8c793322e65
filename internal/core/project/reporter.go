package project

import (
	"context"
	"io"
	"log/slog"

	"github.com/modu-ai/flutterkit/pkg/models"
)

// Reporter receives pipeline progress and informational notes. It replaces
// ambient console output so that the pipeline can run silently in tests.
type Reporter interface {
	// StateChanged is called after every pipeline transition.
	StateChanged(from, to State)

	// Note is called for every non-fatal anomaly, such as a missing
	// organization identifier or an empty feature list.
	Note(note models.Note)
}

// NopReporter discards everything.
type NopReporter struct{}

// StateChanged implements Reporter.
func (NopReporter) StateChanged(State, State) {}

// Note implements Reporter.
func (NopReporter) Note(models.Note) {}

// SlogReporter forwards pipeline events to a structured logger.
type SlogReporter struct {
	logger *slog.Logger
}

// NewSlogReporter creates a SlogReporter. A nil logger discards output.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SlogReporter{logger: logger}
}

// StateChanged implements Reporter.
func (r *SlogReporter) StateChanged(from, to State) {
	r.logger.Debug("pipeline transition", "from", string(from), "to", string(to))
}

// Note implements Reporter.
func (r *SlogReporter) Note(note models.Note) {
	level := slog.LevelInfo
	if note.Level == models.NoteWarning {
		level = slog.LevelWarn
	}
	r.logger.Log(context.Background(), level, note.Message, "field", note.Field)
}
