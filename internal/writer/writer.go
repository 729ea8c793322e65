// Package writer materializes a GenerationPlan on a go-billy filesystem.
// It never overwrites an existing file and skips no-clobber directories
// that already exist together with every file planned beneath them.
package writer

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"maps"
	"os"
	"path"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/osfs"

	"github.com/modu-ai/flutterkit/internal/core/plan"
	"github.com/modu-ai/flutterkit/internal/defs"
	"github.com/modu-ai/flutterkit/internal/template"
)

var (
	// ErrRender indicates a planned template could not be rendered.
	// Nothing is written when it is returned.
	ErrRender = errors.New("writer: render failed")

	// ErrWrite indicates a file-system operation failed mid-write.
	ErrWrite = errors.New("writer: write failed")
)

// Report lists what a Write created and what it left alone.
type Report struct {
	CreatedDirs  []string
	CreatedFiles []string
	SkippedDirs  []string
	SkippedFiles []string

	// Drift holds a unified diff for every skipped file whose content
	// differs from what would have been generated. Only filled when the
	// Writer was created WithDriftCheck.
	Drift []Drift
}

// ProgressFunc is called after every processed entry.
type ProgressFunc func(done, total int, entry string)

// Writer writes plans to a filesystem.
type Writer struct {
	fs       billy.Filesystem
	renderer template.Renderer
	logger   *slog.Logger
	progress ProgressFunc
	drift    bool
}

// Option configures a Writer.
type Option func(*Writer)

// WithLogger sets the structured logger.
func WithLogger(l *slog.Logger) Option {
	return func(w *Writer) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithProgress sets the progress observer.
func WithProgress(fn ProgressFunc) Option {
	return func(w *Writer) {
		w.progress = fn
	}
}

// WithDriftCheck makes Write diff every skipped existing file against its
// generated content.
func WithDriftCheck() Option {
	return func(w *Writer) {
		w.drift = true
	}
}

// New creates a Writer on fs rendering templates with renderer.
func New(fs billy.Filesystem, renderer template.Renderer, opts ...Option) *Writer {
	w := &Writer{
		fs:       fs,
		renderer: renderer,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// NewOS creates a Writer rooted at dir on the host filesystem.
func NewOS(dir string, renderer template.Renderer, opts ...Option) *Writer {
	return New(osfs.New(dir), renderer, opts...)
}

type pendingFile struct {
	path    string
	content []byte
}

// Write materializes p. All templates are rendered before the first write,
// so a render error leaves the filesystem untouched. ctx is checked between
// entries; on cancellation the partial Report is returned with ctx.Err().
func (w *Writer) Write(ctx context.Context, p *plan.Plan) (*Report, error) {
	report := &Report{}

	skipRoots, err := w.existingNoClobberDirs(p.Dirs())
	if err != nil {
		return nil, err
	}

	vars := p.Variables()
	var pending []pendingFile
	for _, f := range p.Files() {
		exists, err := w.exists(f.Path)
		if err != nil {
			return nil, err
		}
		if !exists && !under(f.Path, skipRoots) {
			content, err := w.content(f, vars)
			if err != nil {
				return nil, err
			}
			pending = append(pending, pendingFile{path: f.Path, content: content})
			continue
		}

		report.SkippedFiles = append(report.SkippedFiles, f.Path)
		if exists && w.drift {
			d, err := w.checkDrift(f, vars)
			if err != nil {
				return nil, err
			}
			if d.Diff != "" {
				report.Drift = append(report.Drift, d)
			}
		}
	}

	dirs := p.Dirs()
	total := len(dirs) + len(pending)
	done := 0

	for _, d := range dirs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		if under(d.Path, skipRoots) {
			report.SkippedDirs = append(report.SkippedDirs, d.Path)
			w.logger.Debug("no-clobber directory exists, skipping", "dir", d.Path)
		} else {
			created, err := w.mkdir(d.Path)
			if err != nil {
				return report, err
			}
			if created {
				report.CreatedDirs = append(report.CreatedDirs, d.Path)
			} else {
				report.SkippedDirs = append(report.SkippedDirs, d.Path)
			}
		}
		done++
		w.step(done, total, d.Path)
	}

	for _, f := range pending {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		created, err := w.writeNew(f.path, f.content)
		if err != nil {
			return report, err
		}
		if created {
			report.CreatedFiles = append(report.CreatedFiles, f.path)
		} else {
			report.SkippedFiles = append(report.SkippedFiles, f.path)
		}
		done++
		w.step(done, total, f.path)
	}

	w.logger.Info("plan written",
		"created_dirs", len(report.CreatedDirs),
		"created_files", len(report.CreatedFiles),
		"skipped_dirs", len(report.SkippedDirs),
		"skipped_files", len(report.SkippedFiles),
	)
	return report, nil
}

func (w *Writer) existingNoClobberDirs(dirs []plan.DirectorySpec) ([]string, error) {
	var roots []string
	for _, d := range dirs {
		if !d.NoClobber {
			continue
		}
		exists, err := w.exists(d.Path)
		if err != nil {
			return nil, err
		}
		if exists {
			roots = append(roots, d.Path)
		}
	}
	return roots, nil
}

func (w *Writer) content(f plan.FileSpec, vars map[string]string) ([]byte, error) {
	if !f.IsTemplate() {
		return f.Content, nil
	}
	data := make(map[string]string, len(vars)+len(f.Data))
	maps.Copy(data, vars)
	maps.Copy(data, f.Data)

	out, err := w.renderer.Render(f.Template, data)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrRender, f.Path, err)
	}
	return out, nil
}

func (w *Writer) exists(name string) (bool, error) {
	_, err := w.fs.Stat(name)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, os.ErrNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("%w: stat %q: %w", ErrWrite, name, err)
	}
}

func (w *Writer) mkdir(dir string) (bool, error) {
	exists, err := w.exists(dir)
	if err != nil || exists {
		return false, err
	}
	if err := w.fs.MkdirAll(dir, defs.DirPerm); err != nil {
		return false, fmt.Errorf("%w: mkdir %q: %w", ErrWrite, dir, err)
	}
	return true, nil
}

// writeNew creates name exclusively. An existing file is left untouched
// and reported as not created.
func (w *Writer) writeNew(name string, content []byte) (bool, error) {
	if dir := path.Dir(name); dir != "." {
		if err := w.fs.MkdirAll(dir, defs.DirPerm); err != nil {
			return false, fmt.Errorf("%w: mkdir %q: %w", ErrWrite, dir, err)
		}
	}

	f, err := w.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_EXCL, defs.FilePerm)
	if err != nil {
		if errors.Is(err, os.ErrExist) {
			return false, nil
		}
		return false, fmt.Errorf("%w: create %q: %w", ErrWrite, name, err)
	}
	if _, err := f.Write(content); err != nil {
		_ = f.Close()
		return false, fmt.Errorf("%w: write %q: %w", ErrWrite, name, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("%w: close %q: %w", ErrWrite, name, err)
	}
	return true, nil
}

func (w *Writer) step(done, total int, entry string) {
	if w.progress != nil {
		w.progress(done, total, entry)
	}
}

// under reports whether p equals or is nested beneath one of roots.
func under(p string, roots []string) bool {
	for _, r := range roots {
		if p == r || strings.HasPrefix(p, r+"/") {
			return true
		}
	}
	return false
}
