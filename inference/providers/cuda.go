// Package providers - CUDA execution provider options.
package providers

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"
)

// CUDAOptions contains arguments for the CUDA provider.
// See:
// https://onnxruntime.ai/docs/execution-providers/CUDA-ExecutionProvider.html#configuration-options
type CUDAOptions struct {
	// The device ID.
	DeviceID int `json:"deviceID" yaml:"deviceID"`
	// The size limit of the device memory arena in bytes. Zero keeps the
	// runtime default. This limit only covers the execution provider's
	// arena; total device memory usage may be higher.
	GPUMemLimit int64 `json:"gpuMemLimit" yaml:"gpuMemLimit"`
	// The strategy for extending the device memory arena.
	// 0: kNextPowerOfTwo - extend by amounts multiplied by powers of two.
	// 1: kSameAsRequested - extend by the requested amount.
	ArenaExtendStrategy int `json:"arenaExtendStrategy" yaml:"arenaExtendStrategy"`
	// The type of search done for cuDNN convolution algorithms.
	// 0: EXHAUSTIVE, 1: HEURISTIC, 2: DEFAULT.
	CudnnConvAlgoSearch int `json:"cudnnConvAlgoSearch" yaml:"cudnnConvAlgoSearch"`
	// Whether to do copies in the default stream or use separate streams.
	// The recommended setting is true.
	DoCopyInDefaultStream bool `json:"doCopyInDefaultStream" yaml:"doCopyInDefaultStream"`
}

// isProviderOptions is a marker function to ensure the options are valid.
func (CUDAOptions) isProviderOptions() {}

// ToNativeProviderOptions converts the CUDA options to native ORT provider
// options. The caller owns the returned value and must Destroy it.
func (o CUDAOptions) ToNativeProviderOptions() (*ort.CUDAProviderOptions, error) {
	opts, err := ort.NewCUDAProviderOptions()
	if err != nil {
		return nil, err
	}

	settings := map[string]string{
		"device_id":                 fmt.Sprintf("%d", o.DeviceID),
		"arena_extend_strategy":     fmt.Sprintf("%d", o.ArenaExtendStrategy),
		"cudnn_conv_algo_search":    fmt.Sprintf("%d", o.CudnnConvAlgoSearch),
		"do_copy_in_default_stream": fmt.Sprintf("%t", o.DoCopyInDefaultStream),
	}
	if o.GPUMemLimit > 0 {
		settings["gpu_mem_limit"] = fmt.Sprintf("%d", o.GPUMemLimit)
	}
	if err := opts.Update(settings); err != nil {
		opts.Destroy()
		return nil, err
	}
	return opts, nil
}
