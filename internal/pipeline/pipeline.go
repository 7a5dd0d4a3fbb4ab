package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/couchcryptid/relief-calc/internal/domain"
	"github.com/couchcryptid/relief-calc/internal/observability"
)

// BatchExtractor reads up to batchSize study requests from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer evaluates a study request into a serialized result.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.OutputEvent, error)
}

// BatchLoader writes multiple study results to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, events []domain.OutputEvent) error
}

// Pipeline orchestrates the extract-evaluate-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int) *Pipeline {
	return &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
	}
}

// CheckReadiness returns nil once the pipeline has loaded at least one study
// result, or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any study requests yet")
	}
	return nil
}

// Ready reports whether a batch has been loaded.
func (p *Pipeline) Ready() bool {
	return p.ready.Load()
}

// Run executes the batch loop until the context is cancelled. Transport
// failures back off exponentially from 200ms to 5s.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	b := newBackoff(200*time.Millisecond, 5*time.Second)
	for ctx.Err() == nil {
		if !p.runBatch(ctx, b) {
			break
		}
	}
	p.logger.Info("pipeline stopping", "reason", ctx.Err())
	return nil
}

// runBatch runs one extract-evaluate-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) runBatch(ctx context.Context, b *backoff) bool {
	start := time.Now()

	requests, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return b.wait(ctx)
	}
	if len(requests) == 0 {
		return true
	}

	p.metrics.MessagesConsumed.Add(float64(len(requests)))
	p.metrics.BatchSize.Observe(float64(len(requests)))
	b.reset()

	results, accepted := p.evaluate(ctx, requests)
	if len(results) == 0 {
		return true
	}

	if err := p.loader.LoadBatch(ctx, results); err != nil {
		p.logger.Error("load batch failed", "error", err, "batch_size", len(results))
		return b.wait(ctx)
	}
	p.metrics.MessagesProduced.Add(float64(len(results)))
	for _, raw := range accepted {
		p.commit(ctx, raw)
	}

	p.metrics.BatchProcessingDuration.Observe(time.Since(start).Seconds())
	p.ready.Store(true)
	return true
}

// evaluate transforms each request. Rejected requests are committed
// immediately so a poison message is never redelivered; accepted ones are
// committed only after their results are loaded.
func (p *Pipeline) evaluate(ctx context.Context, requests []domain.RawEvent) ([]domain.OutputEvent, []domain.RawEvent) {
	results := make([]domain.OutputEvent, 0, len(requests))
	accepted := make([]domain.RawEvent, 0, len(requests))

	for _, raw := range requests {
		out, err := p.transformer.Transform(ctx, raw)
		if err != nil {
			p.logger.Warn("study request rejected, skipping message",
				"error", err,
				"topic", raw.Topic,
				"partition", raw.Partition,
				"offset", raw.Offset,
			)
			p.metrics.StudiesFailed.Inc()
			p.commit(ctx, raw)
			continue
		}
		results = append(results, out)
		accepted = append(accepted, raw)
	}
	return results, accepted
}

// commit commits the message offset if a commit function is available.
func (p *Pipeline) commit(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

type backoff struct {
	initial, max, current time.Duration
}

func newBackoff(initial, maxDelay time.Duration) *backoff {
	return &backoff{initial: initial, max: maxDelay, current: initial}
}

func (b *backoff) reset() { b.current = b.initial }

// wait sleeps for the current delay and doubles it up to the cap. Returns
// false if ctx ends first.
func (b *backoff) wait(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	timer := time.NewTimer(b.current)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
	}
	b.current = min(b.current*2, b.max)
	return true
}
