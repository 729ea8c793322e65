package ui

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

// ProgressBar displays write progress. Update matches the writer's
// progress callback signature.
type ProgressBar interface {
	Update(done, total int, entry string)
	Done()
}

// NewProgressBar returns an animated bar when a terminal is attached and
// color is enabled, otherwise a bar that prints one line per entry to w.
func NewProgressBar(theme *Theme, hm *HeadlessManager, title string, w io.Writer) ProgressBar {
	if hm.IsHeadless() || theme.NoColor {
		return &textProgressBar{title: title, w: w}
	}
	return newAnimatedProgressBar(theme, title, w)
}

// progressMsg carries a writer step into the bubbletea program.
type progressMsg struct {
	done  int
	total int
	entry string
}

type progressDoneMsg struct{}

type progressModel struct {
	bar      progress.Model
	title    string
	entry    string
	done     int
	total    int
	finished bool
}

func newProgressModel(theme *Theme, title string) progressModel {
	return progressModel{
		bar: progress.New(
			progress.WithGradient(theme.Colors.Primary, theme.Colors.Secondary),
			progress.WithWidth(40),
		),
		title: title,
	}
}

func (m progressModel) Init() tea.Cmd {
	return nil
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case progressMsg:
		m.done, m.total, m.entry = msg.done, msg.total, msg.entry
		return m, nil
	case progressDoneMsg:
		m.finished = true
		return m, tea.Quit
	case progress.FrameMsg:
		pm, cmd := m.bar.Update(msg)
		m.bar = pm.(progress.Model)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.finished = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m progressModel) View() string {
	if m.finished {
		return ""
	}
	pct := 0.0
	if m.total > 0 {
		pct = float64(m.done) / float64(m.total)
	}
	return fmt.Sprintf("%s %s [%d/%d] %s\n", m.title, m.bar.ViewAs(pct), m.done, m.total, m.entry)
}

// animatedProgressBar drives a bubbletea program from writer callbacks.
type animatedProgressBar struct {
	program *tea.Program
	exited  chan struct{}
	once    sync.Once
}

func newAnimatedProgressBar(theme *Theme, title string, w io.Writer) *animatedProgressBar {
	p := tea.NewProgram(newProgressModel(theme, title), tea.WithOutput(w), tea.WithInput(nil))
	b := &animatedProgressBar{program: p, exited: make(chan struct{})}
	go func() {
		defer close(b.exited)
		_, _ = p.Run()
	}()
	return b
}

// Update implements ProgressBar.
func (b *animatedProgressBar) Update(done, total int, entry string) {
	b.program.Send(progressMsg{done: done, total: total, entry: entry})
}

// Done implements ProgressBar. It is safe to call more than once.
func (b *animatedProgressBar) Done() {
	b.once.Do(func() {
		b.program.Send(progressDoneMsg{})
		<-b.exited
	})
}

// textProgressBar prints "[done/total] entry" lines.
type textProgressBar struct {
	mu    sync.Mutex
	title string
	w     io.Writer
	last  int
	total int
}

// Update implements ProgressBar.
func (b *textProgressBar) Update(done, total int, entry string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.last, b.total = done, total
	_, _ = fmt.Fprintf(b.w, "[%d/%d] %s\n", done, total, entry)
}

// Done implements ProgressBar.
func (b *textProgressBar) Done() {
	b.mu.Lock()
	defer b.mu.Unlock()
	_, _ = fmt.Fprintf(b.w, "%s: %d/%d entries\n", b.title, b.last, b.total)
}
