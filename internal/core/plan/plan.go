// Package plan holds the GenerationPlan: the complete set of directories
// and files a generation run will materialize. A plan is additive. Entries
// are never removed or overwritten, and registering a file path twice with
// different content is a collision error.
package plan

import (
	"bytes"
	"fmt"
	"maps"
	"path"
	"slices"
	"strings"
	"sync"
)

// Owner prefixes identify which contributor registered an entry.
const (
	OwnerSkeleton = "skeleton"
	OwnerPlatform = "platform"
)

// FeatureOwner returns the owner label for a feature contribution.
func FeatureOwner(normalized string) string { return "feature:" + normalized }

// ModuleOwner returns the owner label for a module contribution.
func ModuleOwner(normalized string) string { return "module:" + normalized }

// DirectorySpec is a directory the writer must ensure exists.
type DirectorySpec struct {
	Path  string
	Owner string

	// NoClobber makes the writer skip the directory, and every file planned
	// beneath it, when the directory already exists on disk.
	NoClobber bool
}

// FileSpec is a file the writer must create. Exactly one of Template or
// Content is meaningful: a non-empty Template is rendered with the plan
// variables merged with Data, otherwise Content is written verbatim.
type FileSpec struct {
	Path     string
	Owner    string
	Template string
	Data     map[string]string
	Content  []byte
}

// IsTemplate reports whether the file is rendered from a template.
func (f FileSpec) IsTemplate() bool { return f.Template != "" }

func (f FileSpec) sameContent(o FileSpec) bool {
	return f.Template == o.Template &&
		maps.Equal(f.Data, o.Data) &&
		bytes.Equal(f.Content, o.Content)
}

func (f FileSpec) clone() FileSpec {
	f.Data = maps.Clone(f.Data)
	f.Content = bytes.Clone(f.Content)
	return f
}

// Plan is a concurrency-safe, append-only set of directory and file specs.
type Plan struct {
	mu        sync.RWMutex
	dirs      map[string]DirectorySpec
	files     map[string]FileSpec
	variables map[string]string
}

// New creates an empty plan.
func New() *Plan {
	return &Plan{
		dirs:      make(map[string]DirectorySpec),
		files:     make(map[string]FileSpec),
		variables: make(map[string]string),
	}
}

// AddDir registers a directory. Registration is idempotent: the first
// registration of a path wins and later ones report added == false.
func (p *Plan) AddDir(spec DirectorySpec) (added bool, err error) {
	clean, err := CleanPath(spec.Path)
	if err != nil {
		return false, err
	}
	spec.Path = clean

	p.mu.Lock()
	defer p.mu.Unlock()

	if _, ok := p.dirs[clean]; ok {
		return false, nil
	}
	p.dirs[clean] = spec
	return true, nil
}

// AddFile registers a file. Registering an identical spec again is a
// no-op. A different spec at the same path fails with a *CollisionError.
func (p *Plan) AddFile(spec FileSpec) error {
	clean, err := CleanPath(spec.Path)
	if err != nil {
		return err
	}
	spec.Path = clean

	p.mu.Lock()
	defer p.mu.Unlock()

	if existing, ok := p.files[clean]; ok {
		if existing.sameContent(spec) {
			return nil
		}
		return &CollisionError{Path: clean, Existing: existing.Owner, Incoming: spec.Owner}
	}
	if _, ok := p.dirs[clean]; ok {
		return &CollisionError{Path: clean, Existing: "directory", Incoming: spec.Owner}
	}
	p.files[clean] = spec.clone()
	return nil
}

// HasDir reports whether a directory path is registered.
func (p *Plan) HasDir(dir string) bool {
	clean, err := CleanPath(dir)
	if err != nil {
		return false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	_, ok := p.dirs[clean]
	return ok
}

// File returns the FileSpec registered at filePath.
func (p *Plan) File(filePath string) (FileSpec, bool) {
	clean, err := CleanPath(filePath)
	if err != nil {
		return FileSpec{}, false
	}
	p.mu.RLock()
	defer p.mu.RUnlock()
	f, ok := p.files[clean]
	if !ok {
		return FileSpec{}, false
	}
	return f.clone(), true
}

// Dirs returns the registered directories sorted by path.
func (p *Plan) Dirs() []DirectorySpec {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := slices.Collect(maps.Values(p.dirs))
	slices.SortFunc(out, func(a, b DirectorySpec) int { return strings.Compare(a.Path, b.Path) })
	return out
}

// Files returns the registered files sorted by path.
func (p *Plan) Files() []FileSpec {
	p.mu.RLock()
	defer p.mu.RUnlock()
	out := make([]FileSpec, 0, len(p.files))
	for _, f := range p.files {
		out = append(out, f.clone())
	}
	slices.SortFunc(out, func(a, b FileSpec) int { return strings.Compare(a.Path, b.Path) })
	return out
}

// DirPaths returns the sorted directory paths.
func (p *Plan) DirPaths() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Sorted(maps.Keys(p.dirs))
}

// FilePaths returns the sorted file paths.
func (p *Plan) FilePaths() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return slices.Sorted(maps.Keys(p.files))
}

// Len returns the number of directories and files.
func (p *Plan) Len() (dirs, files int) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return len(p.dirs), len(p.files)
}

// SetVariables merges vars into the plan-wide template variables.
// Existing keys keep their value; a conflicting value is a collision.
func (p *Plan) SetVariables(vars map[string]string) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	for k, v := range vars {
		if old, ok := p.variables[k]; ok && old != v {
			return &CollisionError{Path: "variable " + k, Existing: old, Incoming: v}
		}
		p.variables[k] = v
	}
	return nil
}

// Variables returns a copy of the plan-wide template variables.
func (p *Plan) Variables() map[string]string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return maps.Clone(p.variables)
}

// CleanPath validates and cleans a plan path. Plan paths are relative and
// slash-separated; absolute paths and paths escaping the root are rejected.
func CleanPath(p string) (string, error) {
	if strings.TrimSpace(p) == "" {
		return "", fmt.Errorf("%w: empty path", ErrInvalidPath)
	}
	if strings.Contains(p, `\`) {
		return "", fmt.Errorf("%w: %q uses backslashes", ErrInvalidPath, p)
	}
	if path.IsAbs(p) {
		return "", fmt.Errorf("%w: %q is absolute", ErrInvalidPath, p)
	}
	clean := path.Clean(p)
	if clean == "." || clean == ".." || strings.HasPrefix(clean, "../") {
		return "", fmt.Errorf("%w: %q escapes the project root", ErrInvalidPath, p)
	}
	return clean, nil
}
