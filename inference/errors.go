// Package inference - Image classification pre- and post-processing.
package inference

import "github.com/pkg/errors"

// Error kinds surfaced by the classification pipeline. Callers match them
// with errors.Is; every failure is synchronous and leaves no partial state.
var (
	// ErrInvalidInput indicates a malformed pixel buffer, an empty score
	// vector, or an otherwise unusable argument. This is a caller error.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDependency indicates the external inference runtime rejected or
	// failed a request.
	ErrDependency = errors.New("inference runtime failure")
)
