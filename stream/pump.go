package stream

import (
	"context"
	"image"
	"io"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/sandeepks1/webnnpu/inference"
)

// FrameSource supplies frames from a camera or decoder. Next blocks until
// a frame is available and returns io.EOF when the stream ends.
type FrameSource interface {
	Next(ctx context.Context) (image.Image, error)
}

// Predictor is the classification surface the pump drives.
type Predictor interface {
	Predict(ctx context.Context, img image.Image) ([]inference.Prediction, error)
}

// Stats is a snapshot of pump counters.
type Stats struct {
	// Processed counts frames that completed classification.
	Processed int64 `json:"processed"`
	// Dropped counts frames shed while a classification was in flight.
	Dropped int64 `json:"dropped"`
	// Failed counts frames whose classification returned an error.
	Failed int64 `json:"failed"`
}

// Pump pulls frames from a source and classifies at most one at a time.
// Frames arriving while a classification is running are dropped, the
// policy appropriate for a real-time preview. A failed frame is logged
// and counted; it never stops the pump or affects later frames.
type Pump struct {
	source    FrameSource
	predictor Predictor
	onResult  func([]inference.Prediction)
	log       zerolog.Logger
	gate      Gate

	processed atomic.Int64
	dropped   atomic.Int64
	failed    atomic.Int64
}

// NewPump creates a pump. onResult receives the ranked predictions of
// each completed frame and may be nil.
//
// Arguments:
//   - source: The frame source to drain.
//   - predictor: The classifier to run per frame.
//   - onResult: Callback for completed classifications, may be nil.
//   - log: Logger for per-frame failures and the final summary.
//
// Returns:
//   - *Pump: The configured pump.
func NewPump(source FrameSource, predictor Predictor, onResult func([]inference.Prediction), log zerolog.Logger) *Pump {
	return &Pump{
		source:    source,
		predictor: predictor,
		onResult:  onResult,
		log:       log,
	}
}

// Run drains the source until it ends or the context is canceled.
// Classification runs concurrently with frame acquisition so that frames
// arriving mid-classification are observed and dropped rather than
// queued.
//
// Arguments:
//   - ctx: Cancels the pump.
//
// Returns:
//   - error: The context error on cancellation; nil when the source ends.
func (p *Pump) Run(ctx context.Context) error {
	var inflight sync.WaitGroup
	defer func() {
		inflight.Wait()
		stats := p.Stats()
		p.log.Info().
			Int64("processed", stats.Processed).
			Int64("dropped", stats.Dropped).
			Int64("failed", stats.Failed).
			Msg("pump finished")
	}()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		frame, err := p.source.Next(ctx)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return err
		}

		if !p.gate.TryAcquire() {
			p.dropped.Add(1)
			continue
		}

		inflight.Add(1)
		go func(img image.Image) {
			defer inflight.Done()
			defer p.gate.Release()
			p.classify(ctx, img)
		}(frame)
	}
}

// classify runs one frame through the predictor, isolating its failure.
func (p *Pump) classify(ctx context.Context, img image.Image) {
	predictions, err := p.predictor.Predict(ctx, img)
	if err != nil {
		p.failed.Add(1)
		p.log.Warn().Err(err).Msg("frame classification failed")
		return
	}
	p.processed.Add(1)
	if p.onResult != nil {
		p.onResult(predictions)
	}
}

// Stats returns a snapshot of the pump counters.
func (p *Pump) Stats() Stats {
	return Stats{
		Processed: p.processed.Load(),
		Dropped:   p.dropped.Load(),
		Failed:    p.failed.Load(),
	}
}
