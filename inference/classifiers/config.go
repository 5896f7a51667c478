// Package classifiers - ONNX image classification.
package classifiers

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/sandeepks1/webnnpu/inference"
	"github.com/sandeepks1/webnnpu/inference/providers"
)

// Config represents the configuration for an ONNX classifier.
type Config struct {
	// ModelPath is the path to the ONNX model file.
	ModelPath string `json:"modelPath" yaml:"modelPath"`

	// LabelsPath is the path to the labels file (one canonical name per
	// line, index order). Empty means no catalog; every class falls back
	// to a synthesized name.
	LabelsPath string `json:"labelsPath" yaml:"labelsPath"`

	// InputWidth and InputHeight are the model's input dimensions.
	InputWidth  int `json:"inputWidth" yaml:"inputWidth"`
	InputHeight int `json:"inputHeight" yaml:"inputHeight"`

	// ClassCount is the length of the model's score vector.
	ClassCount int `json:"classCount" yaml:"classCount"`

	// TopK is how many ranked predictions Predict returns. Zero or
	// negative selects the default.
	TopK int `json:"topK" yaml:"topK"`

	// InputName and OutputName are the model's graph node names.
	InputName  string `json:"inputName" yaml:"inputName"`
	OutputName string `json:"outputName" yaml:"outputName"`

	// Session controls execution provider and runtime options.
	Session providers.SessionConfig `json:"session" yaml:"session"`
}

// DefaultConfig returns a configuration for a typical 224x224 ImageNet
// classifier running on CPU.
func DefaultConfig() Config {
	return Config{
		InputWidth:  224,
		InputHeight: 224,
		ClassCount:  1000,
		TopK:        inference.DefaultTopK,
		InputName:   "input",
		OutputName:  "output",
		Session:     providers.DefaultSessionConfig(),
	}
}

// Validate checks the configuration before a session is built.
//
// Returns:
//   - error: ErrInvalidInput describing the first problem found, or nil.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return errors.Wrap(inference.ErrInvalidInput, "model path is required")
	}
	if c.InputWidth <= 0 || c.InputHeight <= 0 {
		return errors.Wrapf(inference.ErrInvalidInput,
			"input dimensions %dx%d", c.InputWidth, c.InputHeight)
	}
	if c.ClassCount <= 0 {
		return errors.Wrapf(inference.ErrInvalidInput, "class count %d", c.ClassCount)
	}
	if c.InputName == "" || c.OutputName == "" {
		return errors.Wrap(inference.ErrInvalidInput, "input and output node names are required")
	}
	return nil
}

// LoadConfig reads a classifier configuration from a YAML file, filling
// unset fields from DefaultConfig.
//
// Arguments:
//   - path: Path to the YAML configuration file.
//
// Returns:
//   - Config: The loaded configuration.
//   - error: An error if the file cannot be read or parsed.
func LoadConfig(path string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading classifier config")
	}
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, errors.Wrap(err, "parsing classifier config")
	}
	return config, nil
}
