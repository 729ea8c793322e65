package template

import (
	"bytes"
	"fmt"
	"io/fs"
	"regexp"
	"strings"
	"text/template"
)

// templateFuncMap provides custom functions available in all templates.
var templateFuncMap = template.FuncMap{
	// dartString escapes a value for a single-quoted Dart string literal.
	"dartString": func(s string) string {
		return dartEscaper.Replace(s)
	},
	// split turns a ListSeparator-joined variable back into its items.
	"split": SplitList,
}

var dartEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `$`, `\$`)

// unexpandedTokenPattern detects leftover placeholders in rendered output.
// Matches ${VAR} and {{VAR}} patterns.
var unexpandedTokenPattern = regexp.MustCompile(`\$\{[A-Za-z_][A-Za-z0-9_]*\}|\{\{\.?[A-Za-z_][A-Za-z0-9_.]*\}\}`)

// Renderer renders Go text/template files with strict mode enabled.
type Renderer interface {
	// Render parses the named template and executes it with data.
	// Returns ErrTemplateNotFound, ErrMissingTemplateKey or ErrUnexpandedToken.
	Render(templateName string, data any) ([]byte, error)
}

// renderer is the concrete implementation of Renderer.
type renderer struct {
	fsys fs.FS
}

// NewRenderer creates a Renderer backed by the given filesystem.
func NewRenderer(fsys fs.FS) Renderer {
	return &renderer{fsys: fsys}
}

// Render parses and executes a template with strict mode (missingkey=error).
func (r *renderer) Render(templateName string, data any) ([]byte, error) {
	content, err := fs.ReadFile(r.fsys, templateName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrTemplateNotFound, templateName)
	}

	tmpl, err := template.New(templateName).
		Funcs(templateFuncMap).
		Option("missingkey=error").
		Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("template parse %q: %w", templateName, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMissingTemplateKey, err)
	}

	result := buf.Bytes()
	if loc := unexpandedTokenPattern.Find(result); loc != nil {
		return nil, fmt.Errorf("%w: found %q in %s", ErrUnexpandedToken, string(loc), templateName)
	}

	return result, nil
}
