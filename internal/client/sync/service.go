package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/iudanet/routesync/internal/client/auth"
	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/geo"
	"github.com/iudanet/routesync/internal/metrics"
	"github.com/iudanet/routesync/internal/models"
	"github.com/iudanet/routesync/internal/signature"
)

//go:generate moq -out service_mock.go . Orchestrator

// ErrNoFetcher в запросе не указана стратегия загрузки
var ErrNoFetcher = errors.New("no trace fetcher configured")

// исходы цикла для метрик
const (
	outcomeComplete    = "complete"
	outcomeDiscarded   = "discarded"
	outcomeCancelled   = "cancelled"
	outcomeError       = "error"
	outcomeUnavailable = "engine_unavailable"
)

// Config параметры цикла синхронизации
type Config struct {
	PollInterval   time.Duration
	PollTimeout    time.Duration
	MinTracePoints int
}

// DefaultConfig returns the reference sync parameters.
func DefaultConfig() Config {
	return Config{
		PollInterval:   200 * time.Millisecond,
		PollTimeout:    60 * time.Second,
		MinTracePoints: 4,
	}
}

// ProgressFunc получает прогресс цикла
type ProgressFunc func(models.SyncProgress)

// SyncRequest параметры одного цикла
type SyncRequest struct {
	Fetcher    TraceFetcher
	OnProgress ProgressFunc
	// Alive возвращает false, когда владелец цикла больше не ждет результата
	Alive func() bool
	IDs   []string
}

// SyncResult итог цикла
type SyncResult struct {
	Error             error
	RunID             string
	DetectionStatus   engine.DetectionStatus
	Progress          models.SyncProgress
	SyncedIDs         []string
	Skipped           int
	Discarded         bool
	Cancelled         bool
	DetectionTimedOut bool
}

// Orchestrator runs sync cycles against the route engine.
type Orchestrator interface {
	// Sync выполняет один цикл. Ошибка возвращается только когда нет учетных данных,
	// остальные сбои описываются в SyncResult.
	Sync(ctx context.Context, req SyncRequest) (*SyncResult, error)

	// Reset увеличивает generation и очищает кеш
	Reset(ctx context.Context) error
}

type orchestrator struct {
	engine  engine.Adapter
	store   storage.SyncStorage
	gen     *Generation
	builder *signature.Builder
	logger  *slog.Logger
	now     func() time.Time
	cfg     Config
}

// Option настройка orchestrator
type Option func(*orchestrator)

// WithConfig задает параметры цикла
func WithConfig(cfg Config) Option {
	return func(o *orchestrator) {
		o.cfg = cfg
	}
}

// WithSignatureBuilder задает построитель сигнатур для кеша
func WithSignatureBuilder(b *signature.Builder) Option {
	return func(o *orchestrator) {
		o.builder = b
	}
}

// NewOrchestrator creates a sync orchestrator. A nil engine is allowed:
// every cycle then reports engine.ErrEngineUnavailable. A nil store disables caching.
func NewOrchestrator(
	eng engine.Adapter,
	store storage.SyncStorage,
	gen *Generation,
	logger *slog.Logger,
	opts ...Option,
) Orchestrator {
	o := &orchestrator{
		engine:  eng,
		store:   store,
		gen:     gen,
		builder: signature.NewBuilder(signature.DefaultConfig()),
		logger:  logger,
		now:     time.Now,
		cfg:     DefaultConfig(),
	}
	if o.gen == nil {
		o.gen = ProcessGeneration()
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// cycle состояние одного вызова Sync
type cycle struct {
	ctx    context.Context
	req    SyncRequest
	logger *slog.Logger
	result *SyncResult
}

func (c *cycle) cancelled() bool {
	if c.ctx.Err() != nil {
		return true
	}
	return c.req.Alive != nil && !c.req.Alive()
}

func (c *cycle) emit(status models.SyncStatus, completed, total int, message string) {
	if c.cancelled() {
		return
	}
	p := models.SyncProgress{
		Status:    status,
		Completed: completed,
		Total:     total,
		Message:   message,
	}
	c.result.Progress = p
	if c.req.OnProgress != nil {
		c.req.OnProgress(p)
	}
}

func (o *orchestrator) Sync(ctx context.Context, req SyncRequest) (*SyncResult, error) {
	runID := uuid.NewString()
	c := &cycle{
		ctx:    ctx,
		req:    req,
		logger: o.logger.With("run_id", runID),
		result: &SyncResult{
			RunID:           runID,
			DetectionStatus: engine.StatusIdle,
			Progress:        models.SyncProgress{Status: models.SyncStatusIdle},
		},
	}

	if c.cancelled() {
		return o.cancel(c, "start")
	}
	if o.engine == nil {
		c.logger.Warn("Route engine is not available, skipping sync")
		return o.fail(c, outcomeUnavailable, engine.ErrEngineUnavailable)
	}
	if req.Fetcher == nil {
		return o.fail(c, outcomeError, ErrNoFetcher)
	}

	// 1. snapshot
	startGen := o.gen.Current()

	// 2. fetch
	c.emit(models.SyncStatusFetching, 0, len(req.IDs), "Fetching activities")
	traces, err := req.Fetcher.FetchTraces(ctx, req.IDs, func(completed, total int) {
		c.emit(models.SyncStatusFetching, completed, total, "Fetching activities")
	})
	if c.cancelled() {
		return o.cancel(c, "fetch")
	}
	if err != nil {
		if errors.Is(err, auth.ErrNoCredentials) {
			metrics.SyncCyclesTotal.WithLabelValues(outcomeError).Inc()
			return nil, err
		}
		c.logger.Error("Failed to fetch activities", "error", err)
		return o.fail(c, outcomeError, fmt.Errorf("failed to fetch activities: %w", err))
	}

	// 3. filter
	usable := make([]models.ActivityTrace, 0, len(traces))
	for _, t := range traces {
		if len(t.Points) < o.cfg.MinTracePoints {
			c.result.Skipped++
			c.logger.Debug("Skipping activity without usable trace",
				"activity_id", t.ID,
				"points", len(t.Points))
			continue
		}
		usable = append(usable, t)
	}
	if c.result.Skipped > 0 {
		metrics.ActivitiesSkippedTotal.Add(float64(c.result.Skipped))
		c.logger.Warn("Skipped activities with too few GPS points", "count", c.result.Skipped)
	}

	// 4. buffer
	buf := NewFlatBuffer(usable)
	if c.cancelled() {
		return o.cancel(c, "buffer")
	}

	// 5. generation должен сравниваться непосредственно перед передачей в движок
	if o.stale(c, startGen, "ingest") {
		return o.discard(c)
	}

	if buf.Len() == 0 {
		c.logger.Info("No usable activities to ingest", "fetched", len(traces))
		c.emit(models.SyncStatusComplete, 0, len(traces), "No activities with GPS data")
		metrics.SyncCyclesTotal.WithLabelValues(outcomeComplete).Inc()
		return c.result, nil
	}

	// 6. ingest
	if err := o.engine.AddActivities(ctx, buf.IDs, buf.Coords, buf.Offsets, buf.SportTypes); err != nil {
		if c.cancelled() {
			return o.cancel(c, "ingest")
		}
		c.logger.Error("Failed to add activities to engine", "error", err)
		return o.fail(c, outcomeError, fmt.Errorf("failed to add activities: %w", err))
	}
	c.emit(models.SyncStatusProcessing, buf.Len(), len(traces), "Processing routes")
	if c.cancelled() {
		return o.cancel(c, "ingest")
	}

	detecting := true
	if err := o.engine.StartSectionDetection(ctx); err != nil {
		c.logger.Warn("Failed to start section detection", "error", err)
		c.result.DetectionStatus = engine.StatusError
		detecting = false
	}
	c.emit(models.SyncStatusComputing, buf.Len(), len(traces), "Detecting sections")
	if c.cancelled() {
		return o.cancel(c, "detection")
	}

	// 7. poll
	if detecting {
		status, timedOut := o.poll(c)
		if c.cancelled() {
			return o.cancel(c, "poll")
		}
		c.result.DetectionStatus = status
		c.result.DetectionTimedOut = timedOut
	}

	// 8. persist; Reset во время опроса уже очистил кэш
	if o.stale(c, startGen, "persist") {
		return o.discard(c)
	}
	o.persist(c, usable)
	if c.cancelled() {
		return o.cancel(c, "persist")
	}

	c.result.SyncedIDs = buf.IDs
	c.emit(models.SyncStatusComplete, buf.Len(), len(traces), "Sync complete")
	metrics.SyncCyclesTotal.WithLabelValues(outcomeComplete).Inc()
	c.logger.Info("Sync complete",
		"synced", buf.Len(),
		"skipped", c.result.Skipped,
		"detection", c.result.DetectionStatus)
	return c.result, nil
}

// poll опрашивает движок до завершения поиска секций или таймаута.
// Ошибка и таймаут не прерывают цикл.
func (o *orchestrator) poll(c *cycle) (engine.DetectionStatus, bool) {
	deadline := o.now().Add(o.cfg.PollTimeout)
	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()

	for {
		status, err := o.engine.PollSectionDetection(c.ctx)
		if err != nil {
			if c.cancelled() {
				return engine.StatusIdle, false
			}
			c.logger.Warn("Failed to poll section detection", "error", err)
			return engine.StatusError, false
		}

		switch status {
		case engine.StatusComplete, engine.StatusIdle:
			return status, false
		case engine.StatusError:
			c.logger.Warn("Section detection failed")
			return status, false
		}

		if !o.now().Before(deadline) {
			c.logger.Warn("Section detection timed out", "timeout", o.cfg.PollTimeout)
			return engine.StatusRunning, true
		}

		select {
		case <-c.ctx.Done():
			return engine.StatusIdle, false
		case <-ticker.C:
		}
		if c.cancelled() {
			return engine.StatusIdle, false
		}
	}
}

// persist сохраняет сигнатуры, bounds и диапазон дат. Ошибки хранилища только логируются.
func (o *orchestrator) persist(c *cycle, traces []models.ActivityTrace) {
	if o.store == nil {
		return
	}

	var synced storage.SyncRange
	for _, t := range traces {
		if c.cancelled() {
			return
		}
		o.cacheSignature(c, t)

		bounds, ok := geoBounds(t)
		if ok {
			if err := o.store.SaveBounds(c.ctx, t.ID, bounds); err != nil {
				c.logger.Warn("Failed to save bounds", "activity_id", t.ID, "error", err)
			}
		}

		if !t.StartDate.IsZero() {
			synced = synced.Merge(storage.SyncRange{Oldest: t.StartDate, Newest: t.StartDate})
		}
	}

	if !synced.IsZero() {
		if err := o.store.UpdateSyncedRange(c.ctx, synced); err != nil {
			c.logger.Warn("Failed to update synced range", "error", err)
		}
	}
	if err := o.store.SaveLastSyncTimestamp(c.ctx, o.now().Unix()); err != nil {
		c.logger.Warn("Failed to save last sync timestamp", "error", err)
	}
}

// cacheSignature пересчитывает сигнатуру только если исходный трек изменился
func (o *orchestrator) cacheSignature(c *cycle, t models.ActivityTrace) {
	digest := signature.Digest(t.Points)
	cached, err := o.store.GetSignature(c.ctx, t.ID)
	switch {
	case err == nil && cached.TraceDigest == digest:
		return
	case err != nil && !errors.Is(err, storage.ErrSignatureNotFound):
		c.logger.Warn("Failed to read cached signature", "activity_id", t.ID, "error", err)
	}

	sig, err := o.builder.Build(t.ID, t.Points, t.ElevationGain)
	if err != nil {
		c.logger.Warn("Failed to build signature", "activity_id", t.ID, "error", err)
		return
	}
	if err := o.store.SaveSignature(c.ctx, sig); err != nil {
		c.logger.Warn("Failed to save signature", "activity_id", t.ID, "error", err)
	}
}

func geoBounds(t models.ActivityTrace) (models.Bounds, bool) {
	if t.Bounds != nil {
		return *t.Bounds, true
	}
	return geo.ComputeBounds(t.Points)
}

// stale сообщает, что после начала цикла был Reset
func (o *orchestrator) stale(c *cycle, startGen uint64, step string) bool {
	current := o.gen.Current()
	if current == startGen {
		return false
	}
	c.logger.Info("Sync generation changed, discarding results",
		"step", step,
		"start_generation", startGen,
		"current_generation", current)
	return true
}

func (o *orchestrator) discard(c *cycle) (*SyncResult, error) {
	c.result.Discarded = true
	metrics.SyncCyclesTotal.WithLabelValues(outcomeDiscarded).Inc()
	return c.result, nil
}

func (o *orchestrator) cancel(c *cycle, step string) (*SyncResult, error) {
	c.logger.Info("Sync cancelled", "step", step)
	c.result.Cancelled = true
	metrics.SyncCyclesTotal.WithLabelValues(outcomeCancelled).Inc()
	return c.result, nil
}

func (o *orchestrator) fail(c *cycle, outcome string, err error) (*SyncResult, error) {
	c.result.Error = err
	c.emit(models.SyncStatusError, 0, 0, err.Error())
	metrics.SyncCyclesTotal.WithLabelValues(outcome).Inc()
	return c.result, nil
}

func (o *orchestrator) Reset(ctx context.Context) error {
	gen := o.gen.Bump()
	o.logger.Info("Sync state reset", "generation", gen)

	if o.store == nil {
		return nil
	}
	if err := o.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	return nil
}
