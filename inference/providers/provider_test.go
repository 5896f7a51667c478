package providers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseBackend(t *testing.T) {
	for _, b := range Backends {
		parsed, err := ParseBackend(string(b))
		require.NoError(t, err)
		assert.Equal(t, b, parsed)
	}

	_, err := ParseBackend("npu-magic")
	assert.Error(t, err)
	_, err = ParseBackend("")
	assert.Error(t, err)
}

func TestOpenVINOOptionsToMap(t *testing.T) {
	assert.Empty(t, OpenVINOOptions{}.ToMap())

	m := OpenVINOOptions{
		DeviceType:           "NPU",
		Precision:            "FP16",
		NumOfThreads:         4,
		DisableDynamicShapes: true,
	}.ToMap()

	assert.Equal(t, "NPU", m["device_type"])
	assert.Equal(t, "FP16", m["precision"])
	assert.Equal(t, "4", m["num_of_threads"])
	assert.Equal(t, "true", m["disable_dynamic_shapes"])
}

func TestGetSharedLibPathEnvOverride(t *testing.T) {
	t.Setenv(SharedLibEnvVar, "/opt/ort/libonnxruntime.so")
	assert.Equal(t, "/opt/ort/libonnxruntime.so", GetSharedLibPath())
}

func TestDefaultSessionConfig(t *testing.T) {
	config := DefaultSessionConfig()
	assert.Equal(t, CPUBackend, config.Backend)
	assert.GreaterOrEqual(t, config.IntraOpNumThreads, 1)
	assert.GreaterOrEqual(t, config.InterOpNumThreads, 1)
}
