package api

import (
	"context"
	"fmt"
	"net/url"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/iudanet/routesync/internal/models"
	"github.com/iudanet/routesync/internal/validation"
	"github.com/iudanet/routesync/pkg/api"
)

// MinUsablePoints минимальное число пар координат, при котором трек пригоден для сопоставления.
const MinUsablePoints = 4

// ProgressFunc вызывается после каждой завершенной загрузки.
type ProgressFunc func(completed, total int)

// MapResult результат загрузки карты одной активности.
type MapResult struct {
	Err    error
	Bounds *models.Bounds
	ID     string
	Points models.Polyline
}

// Usable сообщает, пригоден ли трек: загрузка без ошибки и не меньше MinUsablePoints точек.
// Трек без GPS не является ошибкой.
func (r MapResult) Usable() bool {
	return r.Err == nil && len(r.Points) >= MinUsablePoints
}

// FetchActivityMap загружает трек активности
func (c *Client) FetchActivityMap(ctx context.Context, id string) (*api.MapResponse, error) {
	if err := validation.ValidateActivityID(id); err != nil {
		return nil, fmt.Errorf("invalid activity id: %w", err)
	}

	var resp api.MapResponse
	path := fmt.Sprintf("/api/v1/activity/%s/map", url.PathEscape(id))
	if err := c.doRequest(ctx, "activity_map", path, &resp); err != nil {
		return nil, fmt.Errorf("fetch activity map %s: %w", id, err)
	}
	return &resp, nil
}

// FetchActivityMaps загружает треки параллельно (не более concurrency одновременно).
// Результаты возвращаются в порядке ids; ошибка отдельной активности записывается
// в MapResult.Err и не прерывает остальные. Ошибка возвращается только при отмене ctx.
func (c *Client) FetchActivityMaps(ctx context.Context, ids []string, onProgress ProgressFunc) ([]MapResult, error) {
	results := make([]MapResult, len(ids))
	total := len(ids)

	var (
		mu        sync.Mutex
		completed int
	)
	report := func() {
		mu.Lock()
		defer mu.Unlock()
		completed++
		if onProgress != nil {
			onProgress(completed, total)
		}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.concurrency)

	for i, id := range ids {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = c.fetchOne(gctx, id)
			report()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) fetchOne(ctx context.Context, id string) MapResult {
	res := MapResult{ID: id}

	resp, err := c.FetchActivityMap(ctx, id)
	if err != nil {
		c.logger.Warn("Failed to fetch activity map",
			"activity_id", id,
			"error", err)
		res.Err = err
		return res
	}

	pairs := resp.Pairs()
	res.Points = make(models.Polyline, 0, len(pairs))
	for _, p := range pairs {
		res.Points = append(res.Points, models.RoutePoint{Lat: p[0], Lng: p[1]})
	}
	if b := resp.Bounds; b != nil && len(b.NE) >= 2 && len(b.SW) >= 2 {
		res.Bounds = &models.Bounds{
			MinLat: b.SW[0],
			MaxLat: b.NE[0],
			MinLng: b.SW[1],
			MaxLng: b.NE[1],
		}
	}

	if !res.Usable() {
		c.logger.Debug("Activity has no usable GPS trace",
			"activity_id", id,
			"points", len(res.Points))
	}
	return res
}

// ListActivities возвращает активности атлета в диапазоне дат [oldest, newest].
func (c *Client) ListActivities(ctx context.Context, athleteID string, oldest, newest time.Time) ([]api.Activity, error) {
	if err := validation.ValidateAthleteID(athleteID); err != nil {
		return nil, fmt.Errorf("invalid athlete id: %w", err)
	}

	q := url.Values{}
	q.Set("oldest", oldest.Format(time.DateOnly))
	q.Set("newest", newest.Format(time.DateOnly))
	path := fmt.Sprintf("/api/v1/athlete/%s/activities?%s", url.PathEscape(athleteID), q.Encode())

	var resp []api.Activity
	if err := c.doRequest(ctx, "activities", path, &resp); err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return resp, nil
}
