// Package classifiers - ONNX model inference.
package classifiers

import (
	"context"
	"image"
	"os"
	"sync"

	"github.com/pkg/errors"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/sandeepks1/webnnpu/inference"
	"github.com/sandeepks1/webnnpu/inference/providers"
)

// Classifier runs an image-classification ONNX model: preprocess into the
// model's input tensor, execute, then softmax and top-k over the scores.
//
// The preprocessing and postprocessing routines themselves are pure; the
// mutex only guards the preallocated tensor pair that is reused across
// calls.
type Classifier struct {
	config  Config
	catalog *inference.Catalog
	session *inference.Session
	timed   *inference.TimedSession
	mu      sync.Mutex
}

// New creates a classifier for the configured model.
//
// Order of operations:
//  1. Library path check: ensures the native runtime is accessible.
//  2. Environment setup: initializes ONNX Runtime internals once per process.
//  3. Tensor allocation: fixed-shape input (1, 3, H, W) and output (1, classes).
//  4. Session options: threading, graph optimization, execution provider.
//  5. Session creation: loads the model and binds the tensors.
//
// Arguments:
//   - config: The classifier configuration.
//
// Returns:
//   - *Classifier: The ready classifier.
//   - error: An error if validation, label loading, or session creation fails.
func New(config Config) (*Classifier, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if config.TopK <= 0 {
		config.TopK = inference.DefaultTopK
	}

	var catalog *inference.Catalog
	if config.LabelsPath != "" {
		loaded, err := inference.LoadCatalog(config.LabelsPath)
		if err != nil {
			return nil, err
		}
		catalog = loaded
	}

	if !ort.IsInitialized() {
		// Check if the shared library exists before trying to use it.
		libPath := providers.GetSharedLibPath()
		if _, err := os.Stat(libPath); os.IsNotExist(err) {
			return nil, errors.Wrapf(err, "ONNX Runtime library not found at %s", libPath)
		}
		ort.SetSharedLibraryPath(libPath)
		if err := ort.InitializeEnvironment(); err != nil {
			return nil, errors.Wrap(err, "error initializing ORT environment")
		}
	}

	inputTensor, err := ort.NewEmptyTensor[float32](
		ort.NewShape(1, 3, int64(config.InputHeight), int64(config.InputWidth)))
	if err != nil {
		return nil, errors.Wrap(err, "error creating input tensor")
	}

	outputTensor, err := ort.NewEmptyTensor[float32](
		ort.NewShape(1, int64(config.ClassCount)))
	if err != nil {
		inputTensor.Destroy()
		return nil, errors.Wrap(err, "error creating output tensor")
	}

	options, err := providers.NewSessionOptions(config.Session)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, err
	}
	defer options.Destroy()

	session, err := ort.NewAdvancedSession(
		config.ModelPath,
		[]string{config.InputName},
		[]string{config.OutputName},
		[]ort.ArbitraryTensor{inputTensor},
		[]ort.ArbitraryTensor{outputTensor},
		options,
	)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, errors.Wrap(err, "error creating ORT session")
	}

	wrapped := &inference.Session{
		Session: session,
		Input:   inputTensor,
		Output:  outputTensor,
	}
	return &Classifier{
		config:  config,
		catalog: catalog,
		session: wrapped,
		timed:   inference.NewTimedSession(wrapped),
	}, nil
}

// Predict runs classification on the provided image and returns the
// ranked top-k predictions.
//
// Arguments:
//   - ctx: The context for the prediction; checked before dispatch.
//   - img: The image to classify, any resolution.
//
// Returns:
//   - []inference.Prediction: Predictions sorted by descending probability.
//   - error: ErrInvalidInput or ErrDependency; the classifier stays usable
//     for subsequent requests either way.
func (c *Classifier) Predict(ctx context.Context, img image.Image) ([]inference.Prediction, error) {
	if c.session == nil {
		return nil, errors.Wrap(inference.ErrDependency, "model not loaded")
	}

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	err := inference.PrepareInput(img, c.session.Input, c.config.InputWidth, c.config.InputHeight)
	if err != nil {
		return nil, err
	}

	if err := c.timed.Run(); err != nil {
		return nil, errors.Wrapf(inference.ErrDependency, "session run: %v", err)
	}

	scores := c.session.Output.GetData()
	probabilities, err := inference.Softmax(scores)
	if err != nil {
		return nil, err
	}
	return inference.TopK(probabilities, c.config.TopK, c.catalog), nil
}

// PredictPixels classifies a raw interleaved RGBA pixel buffer, the form
// camera frame grabbers hand over.
//
// Arguments:
//   - ctx: The context for the prediction.
//   - pixels: Row-major RGBA bytes, 4 per pixel.
//   - width, height: Dimensions of the pixel buffer.
//
// Returns:
//   - []inference.Prediction: Predictions sorted by descending probability.
//   - error: ErrInvalidInput if the buffer does not match its dimensions.
func (c *Classifier) PredictPixels(ctx context.Context, pixels []byte, width, height int) ([]inference.Prediction, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return nil, errors.Wrapf(inference.ErrInvalidInput,
			"pixel buffer holds %d bytes, %dx%d RGBA needs %d",
			len(pixels), width, height, width*height*4)
	}
	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return c.Predict(ctx, img)
}

// Catalog returns the label catalog the classifier resolves names from,
// nil when none was configured.
func (c *Classifier) Catalog() *inference.Catalog {
	return c.catalog
}

// Metrics reports completed inference count and average latency.
func (c *Classifier) Metrics() (runs int64, avgMS float64) {
	return c.timed.Metrics()
}

// Close releases the session and its tensors.
func (c *Classifier) Close() error {
	if c.session != nil {
		c.session.Close()
		c.session = nil
	}
	return nil
}
