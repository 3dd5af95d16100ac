package pipeline

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/couchcryptid/refet-weather-etl/internal/domain"
	"github.com/couchcryptid/refet-weather-etl/internal/observability"
)

// BatchExtractor reads up to batchSize raw events from the source.
type BatchExtractor interface {
	ExtractBatch(ctx context.Context, batchSize int) ([]domain.RawEvent, error)
}

// Transformer converts a raw station payload into its normalized form.
type Transformer interface {
	Transform(ctx context.Context, raw domain.RawEvent) (domain.NormalizedStation, error)
}

// BatchLoader writes multiple normalized stations to the destination.
type BatchLoader interface {
	LoadBatch(ctx context.Context, stations []domain.NormalizedStation) error
}

const (
	defaultInitialBackoff = 200 * time.Millisecond
	defaultMaxBackoff     = 5 * time.Second
	defaultWorkers        = 4
)

// Pipeline orchestrates the extract-transform-load loop.
type Pipeline struct {
	extractor   BatchExtractor
	transformer Transformer
	loader      BatchLoader
	logger      *slog.Logger
	metrics     *observability.Metrics
	ready       atomic.Bool
	batchSize   int
	workers     int
	clock       clockwork.Clock
	backoff     *backoff.ExponentialBackOff
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithWorkers bounds how many stations of a batch are normalized concurrently.
func WithWorkers(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.workers = n
		}
	}
}

// WithClock sets the clock used for batch timing and retry sleeps.
func WithClock(c clockwork.Clock) Option {
	return func(p *Pipeline) { p.clock = c }
}

// WithBackoff sets the retry interval range for extract and load failures.
func WithBackoff(initial, maxInterval time.Duration) Option {
	return func(p *Pipeline) {
		p.backoff.InitialInterval = initial
		p.backoff.MaxInterval = maxInterval
		p.backoff.Reset()
	}
}

// New creates a Pipeline with the given stages and observability.
func New(e BatchExtractor, t Transformer, l BatchLoader, logger *slog.Logger, metrics *observability.Metrics, batchSize int, opts ...Option) *Pipeline {
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = defaultInitialBackoff
	bo.MaxInterval = defaultMaxBackoff
	bo.Multiplier = 2
	bo.MaxElapsedTime = 0
	bo.Reset()

	p := &Pipeline{
		extractor:   e,
		transformer: t,
		loader:      l,
		logger:      logger,
		metrics:     metrics,
		batchSize:   batchSize,
		workers:     defaultWorkers,
		clock:       clockwork.NewRealClock(),
		backoff:     bo,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// CheckReadiness returns nil once the pipeline has loaded at least one batch,
// or an error describing why the service is not yet ready.
func (p *Pipeline) CheckReadiness(_ context.Context) error {
	if !p.ready.Load() {
		return errors.New("pipeline has not processed any messages yet")
	}
	return nil
}

// Run executes the batch ETL loop until the context is cancelled.
func (p *Pipeline) Run(ctx context.Context) error {
	p.logger.Info("pipeline started", "batch_size", p.batchSize, "workers", p.workers)
	p.metrics.PipelineRunning.Set(1)
	defer p.metrics.PipelineRunning.Set(0)

	for {
		select {
		case <-ctx.Done():
			p.logger.Info("pipeline stopping", "reason", ctx.Err())
			return nil
		default:
		}

		if !p.processBatch(ctx) {
			return nil
		}
	}
}

// processBatch runs one extract-transform-load cycle. Returns false if the pipeline should stop.
func (p *Pipeline) processBatch(ctx context.Context) bool {
	start := p.clock.Now()

	rawBatch, err := p.extractor.ExtractBatch(ctx, p.batchSize)
	if err != nil {
		if ctx.Err() != nil {
			return false
		}
		p.logger.Error("extract batch failed", "error", err)
		return p.backoffOrStop(ctx)
	}

	if len(rawBatch) == 0 {
		return ctx.Err() == nil
	}

	p.metrics.MessagesConsumed.Add(float64(len(rawBatch)))
	p.metrics.BatchSize.Observe(float64(len(rawBatch)))
	p.backoff.Reset()

	loaded, ok := p.transformAndLoad(ctx, rawBatch)
	if !ok {
		return false
	}

	if loaded > 0 {
		p.metrics.BatchProcessingDuration.Observe(p.clock.Since(start).Seconds())
		p.ready.Store(true)
	}
	return true
}

type transformResult struct {
	station domain.NormalizedStation
	err     error
}

// transformAll normalizes every message of the batch, at most p.workers at a
// time. Results are in input order.
func (p *Pipeline) transformAll(ctx context.Context, rawBatch []domain.RawEvent) []transformResult {
	results := make([]transformResult, len(rawBatch))

	var g errgroup.Group
	g.SetLimit(p.workers)
	for i := range rawBatch {
		g.Go(func() error {
			st, err := p.transformer.Transform(ctx, rawBatch[i])
			results[i] = transformResult{station: st, err: err}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// transformAndLoad transforms each message in the batch, loads the successes,
// and commits offsets. Returns the number of successfully loaded stations and
// false if the pipeline should stop.
// Offsets are committed in batch order and only after the load succeeds, since
// a commit also covers every lower offset on the partition.
func (p *Pipeline) transformAndLoad(ctx context.Context, rawBatch []domain.RawEvent) (int, bool) {
	results := p.transformAll(ctx, rawBatch)

	outBatch := make([]domain.NormalizedStation, 0, len(rawBatch))
	for i, res := range results {
		if res.err != nil {
			p.recordTransformError(rawBatch[i], res.err)
			continue
		}
		outBatch = append(outBatch, res.station)
	}

	if len(outBatch) == 0 {
		p.commitAll(ctx, rawBatch)
		return 0, true
	}

	for {
		err := p.loader.LoadBatch(ctx, outBatch)
		if err == nil {
			break
		}
		p.logger.Error("load batch failed", "error", err, "batch_size", len(outBatch))
		if !p.backoffOrStop(ctx) {
			return 0, false
		}
	}
	p.backoff.Reset()

	p.metrics.MessagesProduced.Add(float64(len(outBatch)))
	for _, st := range outBatch {
		p.metrics.RecordsProduced.Add(float64(len(st.Records)))
	}

	p.commitAll(ctx, rawBatch)
	return len(outBatch), true
}

func (p *Pipeline) commitAll(ctx context.Context, rawBatch []domain.RawEvent) {
	for _, raw := range rawBatch {
		p.commitOffset(ctx, raw)
	}
}

// recordTransformError logs and counts a skipped message. Unit failures carry
// the field, date and offending unit.
func (p *Pipeline) recordTransformError(raw domain.RawEvent, err error) {
	attrs := []any{
		"error", err,
		"topic", raw.Topic,
		"partition", raw.Partition,
		"offset", raw.Offset,
	}

	if errors.Is(err, ErrDuplicate) {
		p.metrics.DuplicatesSkipped.Inc()
		p.logger.Debug("duplicate payload, skipping message", attrs...)
		return
	}

	var ue *domain.UnitError
	if errors.As(err, &ue) {
		reason := "unrecognized_unit"
		if errors.Is(ue.Err, domain.ErrEmptyUnit) {
			reason = "empty_unit"
		}
		p.metrics.NormalizationErrors.WithLabelValues(ue.Field.String(), reason).Inc()
		attrs = append(attrs,
			"field", ue.Field.String(),
			"date", ue.Date.Format(domain.DateLayout),
			"unit", ue.Unit,
		)
	}

	p.metrics.TransformErrors.Inc()
	p.logger.Warn("transform failed, skipping message", attrs...)
}

// backoffOrStop sleeps for the next retry interval. Returns false if the
// context ended first.
func (p *Pipeline) backoffOrStop(ctx context.Context) bool {
	if ctx.Err() != nil {
		return false
	}
	d := p.backoff.NextBackOff()
	if d == backoff.Stop {
		return false
	}
	p.metrics.Retries.Inc()
	return p.sleepWithContext(ctx, d)
}

// commitOffset commits the message offset if a commit function is available.
func (p *Pipeline) commitOffset(ctx context.Context, raw domain.RawEvent) {
	if raw.Commit == nil {
		return
	}
	if err := raw.Commit(ctx); err != nil {
		p.logger.Warn("commit offset failed", "error", err,
			"topic", raw.Topic, "partition", raw.Partition, "offset", raw.Offset)
	}
}

func (p *Pipeline) sleepWithContext(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return true
	}

	timer := p.clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.Chan():
		return true
	}
}
