// Package template renders the embedded project templates. Templates are
// Go text/template files executed in strict mode against a flat variable
// map; missing keys and leftover placeholders are errors.
package template

import "errors"

var (
	// ErrTemplateNotFound indicates the named template does not exist.
	ErrTemplateNotFound = errors.New("template: not found")

	// ErrMissingTemplateKey indicates a template referenced an unbound variable.
	ErrMissingTemplateKey = errors.New("template: missing key")

	// ErrUnexpandedToken indicates a placeholder survived rendering.
	ErrUnexpandedToken = errors.New("template: unexpanded token")
)
