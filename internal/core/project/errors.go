// Package project runs the generation pipeline: it validates raw input,
// derives platform identifiers, resolves the architecture rule and expands
// features and modules into a GenerationPlan. The pipeline performs no
// file-system writes; the resulting plan is handed to the writer.
package project

import "errors"

// Sentinel errors for the project package.
var (
	// ErrPipeline indicates a pipeline step after validation failed, or the
	// pipeline was driven through an invalid state transition.
	ErrPipeline = errors.New("generation pipeline failed")

	// ErrNoTemplates indicates the generator was built without a template tree.
	ErrNoTemplates = errors.New("no templates available")
)
