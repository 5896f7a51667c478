package main

import (
	"context"
	"flag"
	"os"

	"github.com/rs/zerolog"

	"github.com/sandeepks1/webnnpu/images"
	"github.com/sandeepks1/webnnpu/inference/classifiers"
	"github.com/sandeepks1/webnnpu/inference/providers"
	"github.com/sandeepks1/webnnpu/util"
)

// prescaleLimit bounds the decode-time prescale; the classifier does the
// final stretch to the network's input rectangle itself.
const prescaleLimit = 1024

func main() {
	// Parse command line arguments.
	var (
		configPath string
		modelPath  string
		labelsPath string
		inputPath  string
		provider   string
		inputSize  int
		topK       int
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML classifier config (flags override it)")
	flag.StringVar(&modelPath, "model", "", "Path to the ONNX classification model")
	flag.StringVar(&labelsPath, "labels", "", "Path to the labels file (one canonical name per line)")
	flag.StringVar(&inputPath, "input", "", "Image file or directory of images to classify")
	flag.StringVar(&provider, "provider", "", "Execution provider: cpu, cuda, coreml, openvino, directml")
	flag.IntVar(&inputSize, "size", 0, "Model input size (square), e.g. 224")
	flag.IntVar(&topK, "topk", 0, "Number of ranked predictions per image (0 keeps the config default)")
	flag.Parse()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config, err := buildConfig(configPath, modelPath, labelsPath, provider, inputSize, topK)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	if inputPath == "" {
		log.Fatal().Msg("-input is required")
	}

	classifier, err := classifiers.New(config)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create classifier")
	}
	defer classifier.Close()

	files, err := collectInputs(inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("input", inputPath).Msg("failed to load input")
	}

	ctx := context.Background()
	for _, file := range files {
		format, err := images.FormatForPath(file.Path)
		if err != nil {
			log.Warn().Err(err).Str("path", file.Path).Msg("skipping file")
			continue
		}
		img, err := images.DecodeResize(file.Data, prescaleLimit, prescaleLimit, format)
		if err != nil {
			log.Warn().Err(err).Str("path", file.Path).Msg("failed to decode image")
			continue
		}

		predictions, err := classifier.Predict(ctx, img)
		if err != nil {
			// One bad image must not stop the run.
			log.Warn().Err(err).Str("path", file.Path).Msg("classification failed")
			continue
		}
		for rank, p := range predictions {
			log.Info().
				Str("path", file.Path).
				Int("rank", rank+1).
				Str("label", p.Label).
				Float32("probability", p.Probability).
				Msg("prediction")
		}
	}

	runs, avgMS := classifier.Metrics()
	log.Info().Int64("inferences", runs).Float64("avg_ms", avgMS).Msg("done")
}

// buildConfig merges the optional YAML config with flag overrides.
func buildConfig(configPath, modelPath, labelsPath, provider string, inputSize, topK int) (classifiers.Config, error) {
	config := classifiers.DefaultConfig()
	if configPath != "" {
		loaded, err := classifiers.LoadConfig(configPath)
		if err != nil {
			return config, err
		}
		config = loaded
	}
	if modelPath != "" {
		config.ModelPath = modelPath
	}
	if labelsPath != "" {
		config.LabelsPath = labelsPath
	}
	if inputSize > 0 {
		config.InputWidth = inputSize
		config.InputHeight = inputSize
	}
	if topK > 0 {
		config.TopK = topK
	}
	if provider != "" {
		backend, err := providers.ParseBackend(provider)
		if err != nil {
			return config, err
		}
		config.Session.Backend = backend
	}
	return config, nil
}

// collectInputs loads one file or every image in a directory.
func collectInputs(path string) ([]util.ImageFile, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return util.LoadDirectoryImageFiles(path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return []util.ImageFile{{Path: path, Data: data}}, nil
}
