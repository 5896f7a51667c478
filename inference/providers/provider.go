// Package providers - Execution provider selection for ONNX Runtime.
package providers

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// Backend represents an ONNX Runtime execution provider.
type Backend string

const (
	// CPUBackend uses CPU for inference. Always available.
	CPUBackend Backend = "cpu"

	// CUDABackend uses NVIDIA CUDA for GPU acceleration.
	CUDABackend Backend = "cuda"

	// CoreMLBackend uses Apple CoreML for macOS/iOS acceleration.
	CoreMLBackend Backend = "coreml"

	// OpenVINOBackend uses Intel OpenVINO, covering Intel CPU/GPU/NPU devices.
	OpenVINOBackend Backend = "openvino"

	// DirectMLBackend uses DirectML on Windows, covering GPU and NPU devices.
	DirectMLBackend Backend = "directml"
)

// Backends lists every supported execution provider.
var Backends = []Backend{CPUBackend, CUDABackend, CoreMLBackend, OpenVINOBackend, DirectMLBackend}

// ParseBackend validates a backend name from configuration or flags.
// The backend is always an explicit choice; there is no hardware
// auto-detection here.
//
// Arguments:
//   - name: The backend name, e.g. "cpu" or "directml".
//
// Returns:
//   - Backend: The matching backend.
//   - error: An error if the name matches no supported backend.
func ParseBackend(name string) (Backend, error) {
	for _, b := range Backends {
		if string(b) == name {
			return b, nil
		}
	}
	return "", fmt.Errorf("unsupported execution provider %q (supported: %v)", name, Backends)
}

// Options is a marker interface for provider-specific config.
type Options interface {
	isProviderOptions()
}

// Append wires the chosen execution provider into session options.
// A nil opts selects the provider's defaults.
//
// Arguments:
//   - sessionOptions: The ORT session options being built.
//   - backend: The execution provider to enable.
//   - opts: Provider-specific options matching the backend, or nil.
//
// Returns:
//   - error: An error if the provider cannot be enabled or opts has the
//     wrong concrete type for the backend.
func Append(sessionOptions *ort.SessionOptions, backend Backend, opts Options) error {
	switch backend {
	case CPUBackend:
		// CPU needs no explicit configuration.
		return nil

	case CUDABackend:
		cudaOpts, err := optionsAs[CUDAOptions](backend, opts)
		if err != nil {
			return err
		}
		native, err := cudaOpts.ToNativeProviderOptions()
		if err != nil {
			return fmt.Errorf("error converting CUDA options: %w", err)
		}
		defer native.Destroy()
		if err := sessionOptions.AppendExecutionProviderCUDA(native); err != nil {
			return fmt.Errorf("error enabling CUDA: %w", err)
		}
		return nil

	case CoreMLBackend:
		coremlOpts, err := optionsAs[CoreMLOptions](backend, opts)
		if err != nil {
			return err
		}
		if err := sessionOptions.AppendExecutionProviderCoreML(coremlOpts.Flags); err != nil {
			return fmt.Errorf("error enabling CoreML: %w", err)
		}
		return nil

	case OpenVINOBackend:
		ovOpts, err := optionsAs[OpenVINOOptions](backend, opts)
		if err != nil {
			return err
		}
		if err := sessionOptions.AppendExecutionProviderOpenVINO(ovOpts.ToMap()); err != nil {
			return fmt.Errorf("error enabling OpenVINO: %w", err)
		}
		return nil

	case DirectMLBackend:
		dmlOpts, err := optionsAs[DirectMLOptions](backend, opts)
		if err != nil {
			return err
		}
		if err := sessionOptions.AppendExecutionProviderDirectML(dmlOpts.DeviceID); err != nil {
			return fmt.Errorf("error enabling DirectML: %w", err)
		}
		return nil

	default:
		return fmt.Errorf("unsupported execution provider: %s", backend)
	}
}

// optionsAs narrows the marker interface to the backend's concrete
// options type, substituting the zero value when opts is nil.
func optionsAs[T Options](backend Backend, opts Options) (T, error) {
	var zero T
	if opts == nil {
		return zero, nil
	}
	typed, ok := opts.(T)
	if !ok {
		return zero, fmt.Errorf("invalid options type for %s: %T", backend, opts)
	}
	return typed, nil
}
