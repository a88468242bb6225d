package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/iudanet/routesync/internal/client/api"
	"github.com/iudanet/routesync/internal/client/auth"
	"github.com/iudanet/routesync/internal/models"
	wire "github.com/iudanet/routesync/pkg/api"
)

// DefaultLookback период, за который берутся активности, если ids не заданы
const DefaultLookback = 30 * 24 * time.Hour

// ClientFactory создает клиент upstream API для учетных данных
type ClientFactory func(creds *auth.Credentials) api.ClientAPI

// MetricsRecorder сохраняет сводные показатели активностей
type MetricsRecorder interface {
	RecordMetrics(ctx context.Context, metrics []models.ActivityMetrics) error
}

// LiveFetcher загружает треки из upstream API.
type LiveFetcher struct {
	auth      auth.Service
	newClient ClientFactory
	recorder  MetricsRecorder
	logger    *slog.Logger
	now       func() time.Time
	lookback  time.Duration
}

var _ TraceFetcher = (*LiveFetcher)(nil)

// LiveOption настройка LiveFetcher
type LiveOption func(*LiveFetcher)

// WithLookback задает период выборки активностей
func WithLookback(d time.Duration) LiveOption {
	return func(f *LiveFetcher) {
		f.lookback = d
	}
}

// WithMetricsRecorder сохраняет показатели активностей из списка
func WithMetricsRecorder(r MetricsRecorder) LiveOption {
	return func(f *LiveFetcher) {
		f.recorder = r
	}
}

// NewLiveFetcher creates a fetcher that resolves credentials on every call.
func NewLiveFetcher(authService auth.Service, newClient ClientFactory, logger *slog.Logger, opts ...LiveOption) *LiveFetcher {
	f := &LiveFetcher{
		auth:      authService,
		newClient: newClient,
		logger:    logger,
		now:       time.Now,
		lookback:  DefaultLookback,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// FetchTraces загружает треки для ids. Пустой ids означает все активности
// с GPS за последний lookback период. Без учетных данных возвращает
// auth.ErrNoCredentials.
func (f *LiveFetcher) FetchTraces(ctx context.Context, ids []string, onProgress FetchProgressFunc) ([]models.ActivityTrace, error) {
	creds, err := f.auth.Resolve(ctx)
	if err != nil {
		return nil, err
	}
	client := f.newClient(creds)

	meta := make(map[string]wire.Activity)
	if len(ids) == 0 {
		listed, err := f.listActivities(ctx, client, creds.AthleteID)
		if err != nil {
			return nil, err
		}
		for _, a := range listed {
			meta[a.ID] = a
			if a.HasGPS() {
				ids = append(ids, a.ID)
			}
		}
	}

	if len(ids) == 0 {
		f.logger.Info("No activities with GPS to fetch")
		return nil, nil
	}

	results, err := client.FetchActivityMaps(ctx, ids, api.ProgressFunc(onProgress))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch activity maps: %w", err)
	}

	traces := make([]models.ActivityTrace, 0, len(results))
	for _, r := range results {
		trace := models.ActivityTrace{ID: r.ID}
		if r.Err != nil {
			if errors.Is(r.Err, api.ErrUnauthorized) {
				return nil, fmt.Errorf("fetch activity %s: %w", r.ID, r.Err)
			}
			f.logger.Warn("Failed to fetch activity map", "activity_id", r.ID, "error", r.Err)
		} else {
			trace.Points = r.Points
			trace.Bounds = r.Bounds
		}

		if a, ok := meta[r.ID]; ok {
			trace.SportType = a.Type
			if start, err := a.StartTime(); err == nil {
				trace.StartDate = start
			}
			gain := a.TotalElevationGain
			trace.ElevationGain = &gain
		}
		traces = append(traces, trace)
	}
	return traces, nil
}

// listActivities список активностей за lookback период; показатели сохраняются
// в recorder, ошибка записи не прерывает загрузку.
func (f *LiveFetcher) listActivities(ctx context.Context, client api.ClientAPI, athleteID string) ([]wire.Activity, error) {
	newest := f.now()
	oldest := newest.Add(-f.lookback)

	listed, err := client.ListActivities(ctx, athleteID, oldest, newest)
	if err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	f.logger.Debug("Listed activities", "count", len(listed), "oldest", oldest, "newest", newest)

	if f.recorder != nil && len(listed) > 0 {
		if err := f.recorder.RecordMetrics(ctx, activityMetrics(listed)); err != nil {
			f.logger.Warn("Failed to record activity metrics", "error", err)
		}
	}
	return listed, nil
}

func activityMetrics(activities []wire.Activity) []models.ActivityMetrics {
	out := make([]models.ActivityMetrics, 0, len(activities))
	for _, a := range activities {
		start, err := a.StartTime()
		if err != nil {
			continue
		}
		out = append(out, models.ActivityMetrics{
			ActivityID:    a.ID,
			Name:          a.Name,
			SportType:     a.Type,
			Date:          start.Unix(),
			MovingTime:    a.MovingTime,
			Distance:      a.Distance,
			ElevationGain: a.TotalElevationGain,
			FTP:           a.FTP,
		})
	}
	return out
}
