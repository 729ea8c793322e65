package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/modu-ai/flutterkit/internal/core/project"
	"github.com/modu-ai/flutterkit/internal/writer"
	"github.com/modu-ai/flutterkit/pkg/models"
)

// CLI styles.
var (
	cliPrimary = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#02569B", Dark: "#13B9FD"})
	cliBorder  = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#CFD8DC", Dark: "#37474F"})
	cliSuccess = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#2E7D32", Dark: "#66BB6A"})
	cliWarn    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#F57F17", Dark: "#FFCA28"})
	cliError   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#C62828", Dark: "#EF5350"})
	cliMuted   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#78909C", Dark: "#90A4AE"})
)

func cardStyle() lipgloss.Style {
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder.GetForeground()).
		Padding(0, 2)
}

// renderCard renders content inside a rounded border box with a styled title.
func renderCard(title, content string) string {
	return cardStyle().Render(cliPrimary.Bold(true).Render(title) + "\n\n" + content)
}

// renderSuccessCard renders a check-marked title with optional detail blocks.
func renderSuccessCard(title string, details ...string) string {
	return renderStatusCard(cliSuccess.Render("✓")+" "+title, details...)
}

// renderErrorCard renders a cross-marked title with optional detail blocks.
func renderErrorCard(title string, details ...string) string {
	return renderStatusCard(cliError.Render("✗")+" "+title, details...)
}

func renderStatusCard(titleLine string, details ...string) string {
	var body strings.Builder
	body.WriteString(titleLine)
	if len(details) > 0 {
		body.WriteString("\n\n")
		body.WriteString(strings.Join(details, "\n"))
	}
	return cardStyle().Render(body.String())
}

type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines aligns keys into a column.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		width = max(width, lipgloss.Width(p.key))
	}
	lines := make([]string, len(pairs))
	for i, p := range pairs {
		lines[i] = cliMuted.Render(fmt.Sprintf("%-*s", width, p.key)) + "  " + p.value
	}
	return strings.Join(lines, "\n")
}

// renderNote formats a single note for the console.
func renderNote(n models.Note) string {
	if n.Level == models.NoteWarning {
		return cliWarn.Render("warning: ") + n.Message
	}
	return cliMuted.Render("note: ") + n.Message
}

// renderDrift colors a unified diff of a kept file.
func renderDrift(d writer.Drift) string {
	var b strings.Builder
	b.WriteString(cliWarn.Render("drift: "+d.Path+" differs from the generated version") + "\n")
	for _, line := range strings.SplitAfter(d.Diff, "\n") {
		switch {
		case line == "":
		case strings.HasPrefix(line, "+++"), strings.HasPrefix(line, "---"):
			b.WriteString(cliMuted.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "@@"):
			b.WriteString(cliPrimary.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "+"):
			b.WriteString(cliSuccess.Render(strings.TrimSuffix(line, "\n")) + "\n")
		case strings.HasPrefix(line, "-"):
			b.WriteString(cliError.Render(strings.TrimSuffix(line, "\n")) + "\n")
		default:
			b.WriteString(line)
		}
	}
	return b.String()
}

// consoleReporter prints notes as they arrive and logs transitions.
type consoleReporter struct {
	*project.SlogReporter
	out    io.Writer
	logger *slog.Logger
}

func newConsoleReporter(out io.Writer) *consoleReporter {
	return &consoleReporter{
		SlogReporter: project.NewSlogReporter(deps.Logger),
		out:          out,
		logger:       deps.Logger,
	}
}

// Note implements project.Reporter. Notes are already on screen, so the
// log copy stays at debug level.
func (r *consoleReporter) Note(n models.Note) {
	_, _ = fmt.Fprintln(r.out, renderNote(n))
	r.logger.Debug("note", "level", string(n.Level), "field", n.Field, "message", n.Message)
}
