package sync

import (
	"bytes"
	"context"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/iudanet/routesync/internal/geo"
	"github.com/iudanet/routesync/internal/models"
)

// ErrInvalidFixture файл фикстур не удалось разобрать
var ErrInvalidFixture = errors.New("invalid fixture")

//go:embed fixtures/demo.json
var demoFixture []byte

// fixtureFile формат JSON файла фикстур
type fixtureFile struct {
	Activities []fixtureActivity `json:"activities"`
}

type fixtureActivity struct {
	StartDate     time.Time   `json:"start_date"`
	ElevationGain *float64    `json:"elevation_gain,omitempty"`
	ID            string      `json:"id"`
	SportType     string      `json:"sport_type"`
	Latlngs       [][]float64 `json:"latlngs"` // пропуски GPS записываются как null
}

// FixtureFetcher отдает треки из локального JSON вместо upstream API.
type FixtureFetcher struct {
	byID  map[string]models.ActivityTrace
	order []string
}

var _ TraceFetcher = (*FixtureFetcher)(nil)

// NewFixtureFetcher читает фикстуры из r
func NewFixtureFetcher(r io.Reader) (*FixtureFetcher, error) {
	var file fixtureFile
	if err := json.NewDecoder(r).Decode(&file); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFixture, err)
	}

	f := &FixtureFetcher{
		byID:  make(map[string]models.ActivityTrace, len(file.Activities)),
		order: make([]string, 0, len(file.Activities)),
	}
	for i, a := range file.Activities {
		if a.ID == "" {
			return nil, fmt.Errorf("%w: activity %d has no id", ErrInvalidFixture, i)
		}
		if _, ok := f.byID[a.ID]; ok {
			return nil, fmt.Errorf("%w: duplicate activity id %q", ErrInvalidFixture, a.ID)
		}
		f.byID[a.ID] = a.trace()
		f.order = append(f.order, a.ID)
	}
	return f, nil
}

// LoadFixtureFile читает фикстуры из файла
func LoadFixtureFile(path string) (*FixtureFetcher, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open fixture file: %w", err)
	}
	defer file.Close()

	return NewFixtureFetcher(file)
}

// DemoFixtureFetcher встроенный демонстрационный набор
func DemoFixtureFetcher() (*FixtureFetcher, error) {
	return NewFixtureFetcher(bytes.NewReader(demoFixture))
}

// IDs возвращает id всех активностей в порядке файла
func (f *FixtureFetcher) IDs() []string {
	out := make([]string, len(f.order))
	copy(out, f.order)
	return out
}

// FetchTraces возвращает треки для ids; пустой ids означает все активности.
// Неизвестный id возвращается без точек.
func (f *FixtureFetcher) FetchTraces(ctx context.Context, ids []string, onProgress FetchProgressFunc) ([]models.ActivityTrace, error) {
	if len(ids) == 0 {
		ids = f.order
	}

	traces := make([]models.ActivityTrace, 0, len(ids))
	for i, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		trace, ok := f.byID[id]
		if !ok {
			trace = models.ActivityTrace{ID: id}
		}
		traces = append(traces, trace)
		reportFetch(onProgress, i+1, len(ids))
	}
	return traces, nil
}

func (a fixtureActivity) trace() models.ActivityTrace {
	points := make(models.Polyline, 0, len(a.Latlngs))
	for _, ll := range a.Latlngs {
		if len(ll) < 2 {
			continue
		}
		p := models.RoutePoint{Lat: ll[0], Lng: ll[1]}
		if !geo.IsValid(p) {
			continue
		}
		points = append(points, p)
	}

	trace := models.ActivityTrace{
		ID:            a.ID,
		SportType:     a.SportType,
		StartDate:     a.StartDate,
		ElevationGain: a.ElevationGain,
		Points:        points,
	}
	if b, ok := geo.ComputeBounds(points); ok {
		trace.Bounds = &b
	}
	return trace
}
