// Package providers - CoreML execution provider options.
package providers

// CoreMLOptions contains arguments for the CoreML provider.
// See: https://onnxruntime.ai/docs/execution-providers/CoreML-ExecutionProvider.html
type CoreMLOptions struct {
	// Flags is the CoreML EP flag bitmask passed to the runtime, e.g.
	// COREML_FLAG_USE_CPU_ONLY (0x1) or COREML_FLAG_ONLY_ENABLE_DEVICE_WITH_ANE
	// (0x4) to require the Apple Neural Engine. Zero enables CoreML on all
	// compatible compute units.
	Flags uint32 `json:"flags" yaml:"flags"`
}

// isProviderOptions is a marker function to ensure the options are valid.
func (CoreMLOptions) isProviderOptions() {}
