// Package providers - DirectML execution provider options.
package providers

// DirectMLOptions contains arguments for the DirectML provider, the
// Windows path to GPU and NPU adapters.
// See: https://onnxruntime.ai/docs/execution-providers/DirectML-ExecutionProvider.html
type DirectMLOptions struct {
	// DeviceID selects the DirectX adapter. Adapter 0 is the system
	// default; NPU adapters enumerate alongside GPUs.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
}

// isProviderOptions is a marker function to ensure the options are valid.
func (DirectMLOptions) isProviderOptions() {}
