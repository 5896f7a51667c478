// Package providers - Session option construction for ONNX Runtime.
package providers

import (
	"fmt"
	"runtime"

	ort "github.com/yalue/onnxruntime_go"
)

// SessionConfig controls how ONNX Runtime executes a model: threading,
// graph optimization, and which execution provider carries the work.
type SessionConfig struct {
	// Backend specifies the execution provider to use.
	Backend Backend `json:"backend" yaml:"backend"`

	// Options contains provider-specific configuration matching Backend.
	Options Options `json:"-" yaml:"-"`

	// GraphOptimizationLevel controls the level of graph optimization.
	GraphOptimizationLevel ort.GraphOptimizationLevel `json:"graphOptimizationLevel" yaml:"graphOptimizationLevel"`

	// IntraOpNumThreads sets threads for parallelizing ops. Zero uses the
	// runtime default.
	IntraOpNumThreads int `json:"intraOpNumThreads" yaml:"intraOpNumThreads"`

	// InterOpNumThreads sets threads for parallelizing independent ops.
	// Zero uses the runtime default.
	InterOpNumThreads int `json:"interOpNumThreads" yaml:"interOpNumThreads"`
}

// DefaultSessionConfig returns a configuration suitable for a single
// classification stream: CPU execution with extended graph optimization
// and threading scaled to the host.
func DefaultSessionConfig() SessionConfig {
	numCPU := runtime.NumCPU()
	return SessionConfig{
		Backend:                CPUBackend,
		GraphOptimizationLevel: ort.GraphOptimizationLevelEnableExtended,
		IntraOpNumThreads:      maxInt(1, numCPU/2),
		InterOpNumThreads:      maxInt(1, numCPU/4),
	}
}

// NewSessionOptions builds ORT session options from the config and wires
// in the configured execution provider. The caller must Destroy the
// returned options once the session is created.
//
// Arguments:
//   - config: The session configuration to apply.
//
// Returns:
//   - *ort.SessionOptions: Configured session options.
//   - error: Configuration error if any.
func NewSessionOptions(config SessionConfig) (*ort.SessionOptions, error) {
	options, err := ort.NewSessionOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to create session options: %w", err)
	}

	options.SetGraphOptimizationLevel(config.GraphOptimizationLevel)
	options.SetIntraOpNumThreads(config.IntraOpNumThreads)
	options.SetInterOpNumThreads(config.InterOpNumThreads)

	backend := config.Backend
	if backend == "" {
		backend = CPUBackend
	}
	if err := Append(options, backend, config.Options); err != nil {
		options.Destroy()
		return nil, fmt.Errorf("failed to configure execution provider: %w", err)
	}

	return options, nil
}

// maxInt returns the maximum of two integers.
func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
