// Package providers - OpenVINO execution provider options.
package providers

import "fmt"

// OpenVINOOptions contains arguments for the OpenVINO provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/OpenVINO-ExecutionProvider.html#summary-of-options
type OpenVINOOptions struct {
	// Overrides the accelerator hardware type at runtime, e.g. "CPU",
	// "GPU" or "NPU". If not set, the default hardware specified during
	// the runtime build is used.
	DeviceType string `json:"deviceType" yaml:"deviceType"`
	// Supported precisions per device: CPU:FP32, GPU:[FP32, FP16, ACCURACY],
	// NPU:FP16. To execute with the device's default input precision,
	// select the ACCURACY precision type.
	Precision string `json:"precision" yaml:"precision"`
	// Overrides the accelerator default thread count at runtime. Zero keeps
	// the build-time default of 8.
	NumOfThreads int `json:"numOfThreads" yaml:"numOfThreads"`
	// Rewrites dynamic shaped models to static shape at runtime.
	DisableDynamicShapes bool `json:"disableDynamicShapes" yaml:"disableDynamicShapes"`
}

// isProviderOptions is a marker function to ensure the options are valid.
func (OpenVINOOptions) isProviderOptions() {}

// ToMap converts the options to the string map the ORT OpenVINO appender
// expects, omitting unset values so runtime defaults apply.
func (o OpenVINOOptions) ToMap() map[string]string {
	m := map[string]string{}
	if o.DeviceType != "" {
		m["device_type"] = o.DeviceType
	}
	if o.Precision != "" {
		m["precision"] = o.Precision
	}
	if o.NumOfThreads > 0 {
		m["num_of_threads"] = fmt.Sprintf("%d", o.NumOfThreads)
	}
	if o.DisableDynamicShapes {
		m["disable_dynamic_shapes"] = "true"
	}
	return m
}
