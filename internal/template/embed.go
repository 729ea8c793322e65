package template

import (
	"embed"
	"fmt"
	"io/fs"
)

//go:embed all:templates
var embeddedRaw embed.FS

// EmbeddedTemplates returns the template tree rooted at templates/.
func EmbeddedTemplates() (fs.FS, error) {
	sub, err := fs.Sub(embeddedRaw, "templates")
	if err != nil {
		return nil, fmt.Errorf("embedded templates: %w", err)
	}
	return sub, nil
}

// Static reads a template file verbatim, without rendering.
func Static(fsys fs.FS, name string) ([]byte, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
	}
	return data, nil
}
