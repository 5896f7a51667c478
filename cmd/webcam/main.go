// Live webcam classification demo. Frames that arrive while a
// classification is in flight are dropped, keeping the preview real-time.
package main

import (
	"context"
	"flag"
	"image"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"gocv.io/x/gocv"

	"github.com/sandeepks1/webnnpu/inference"
	"github.com/sandeepks1/webnnpu/inference/classifiers"
	"github.com/sandeepks1/webnnpu/inference/providers"
	"github.com/sandeepks1/webnnpu/stream"
)

func main() {
	var (
		configPath string
		modelPath  string
		labelsPath string
		provider   string
		deviceID   int
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML classifier config")
	flag.StringVar(&modelPath, "model", "", "Path to the ONNX classification model")
	flag.StringVar(&labelsPath, "labels", "", "Path to the labels file")
	flag.StringVar(&provider, "provider", "", "Execution provider: cpu, cuda, coreml, openvino, directml")
	flag.IntVar(&deviceID, "camera", 0, "Video capture device ID")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config := classifiers.DefaultConfig()
	if configPath != "" {
		loaded, err := classifiers.LoadConfig(configPath)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to load config")
		}
		config = loaded
	}
	if modelPath != "" {
		config.ModelPath = modelPath
	}
	if labelsPath != "" {
		config.LabelsPath = labelsPath
	}
	if provider != "" {
		backend, err := providers.ParseBackend(provider)
		if err != nil {
			log.Fatal().Err(err).Msg("invalid provider")
		}
		config.Session.Backend = backend
	}

	classifier, err := classifiers.New(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create classifier")
	}
	defer classifier.Close()

	capture, err := gocv.OpenVideoCapture(deviceID)
	if err != nil {
		log.Fatal().Err(err).Int("device", deviceID).Msg("failed to open camera")
	}
	defer capture.Close()

	source := &cameraSource{capture: capture, mat: gocv.NewMat()}
	defer source.mat.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pump := stream.NewPump(source, classifier, func(predictions []inference.Prediction) {
		if len(predictions) == 0 {
			return
		}
		top := predictions[0]
		log.Info().
			Str("label", top.Label).
			Float32("probability", top.Probability).
			Msg("top prediction")
	}, log)

	if err := pump.Run(ctx); err != nil && err != context.Canceled {
		log.Fatal().Err(err).Msg("pump failed")
	}
}

// cameraSource adapts a gocv capture to the pump's frame source.
type cameraSource struct {
	capture *gocv.VideoCapture
	mat     gocv.Mat
}

// Next reads the next frame, skipping the empty frames some drivers emit
// while warming up.
func (s *cameraSource) Next(ctx context.Context) (image.Image, error) {
	for {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		if ok := s.capture.Read(&s.mat); !ok {
			return nil, io.EOF
		}
		if s.mat.Empty() {
			continue
		}
		return s.mat.ToImage()
	}
}
