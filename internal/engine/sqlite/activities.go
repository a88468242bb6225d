package sqlite

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/iudanet/routesync/internal/models"
	"github.com/iudanet/routesync/internal/signature"
)

// ErrInvalidBuffer плоский буфер не согласован с ids/offsets
var ErrInvalidBuffer = errors.New("invalid flat coordinate buffer")

// AddActivities распаковывает плоский буфер, строит сигнатуры и сохраняет активности.
// Существующие активности с теми же id заменяются.
func (e *Engine) AddActivities(ctx context.Context, ids []string, flatCoords []float64, offsets []int, sportTypes []string) error {
	if err := validateBuffer(ids, flatCoords, offsets, sportTypes); err != nil {
		return err
	}

	totalPairs := len(flatCoords) / 2
	type row struct {
		sig   *models.RouteSignature
		sport string
		raw   []float64
	}
	rows := make([]row, 0, len(ids))

	for i, id := range ids {
		start := offsets[i]
		end := totalPairs
		if i+1 < len(offsets) {
			end = offsets[i+1]
		}
		raw := flatCoords[start*2 : end*2]

		sig, err := e.builder.Build(id, unflatten(raw), nil)
		if err != nil {
			if errors.Is(err, signature.ErrInsufficientPoints) {
				e.logger.Warn("Skipping activity without usable points",
					"activity_id", id,
					"points", end-start)
				continue
			}
			return fmt.Errorf("build signature for %s: %w", id, err)
		}
		rows = append(rows, row{sig: sig, sport: sportTypes[i], raw: raw})
	}

	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	now := time.Now().Unix()
	for _, r := range rows {
		sigJSON, err := json.Marshal(r.sig)
		if err != nil {
			return fmt.Errorf("failed to marshal signature: %w", err)
		}

		query := `
			INSERT INTO activities (
				id, sport_type, point_count, distance, start_region,
				end_region, is_loop, trace_digest, signature, updated_at
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			ON CONFLICT(id) DO UPDATE SET
				sport_type = excluded.sport_type,
				point_count = excluded.point_count,
				distance = excluded.distance,
				start_region = excluded.start_region,
				end_region = excluded.end_region,
				is_loop = excluded.is_loop,
				trace_digest = excluded.trace_digest,
				signature = excluded.signature,
				updated_at = excluded.updated_at
		`
		_, err = tx.ExecContext(ctx, query,
			r.sig.ActivityID,
			r.sport,
			len(r.raw)/2,
			r.sig.Distance,
			r.sig.StartRegionHash,
			r.sig.EndRegionHash,
			boolToInt(r.sig.IsLoop),
			r.sig.TraceDigest,
			string(sigJSON),
			now,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert activity %s: %w", r.sig.ActivityID, err)
		}

		_, err = tx.ExecContext(ctx,
			`INSERT INTO tracks (activity_id, coords) VALUES (?, ?)
			 ON CONFLICT(activity_id) DO UPDATE SET coords = excluded.coords`,
			r.sig.ActivityID, encodeCoords(r.raw))
		if err != nil {
			return fmt.Errorf("failed to upsert track %s: %w", r.sig.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activities: %w", err)
	}

	e.logger.Debug("Activities ingested", "count", len(rows), "skipped", len(ids)-len(rows))
	return nil
}

// ActivityCount количество загруженных активностей
func (e *Engine) ActivityCount(ctx context.Context) (int, error) {
	var n int
	if err := e.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM activities`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count activities: %w", err)
	}
	return n, nil
}

// Track возвращает сохраненный исходный трек активности
func (e *Engine) Track(ctx context.Context, activityID string) (models.Polyline, error) {
	var blob []byte
	err := e.db.QueryRowContext(ctx, `SELECT coords FROM tracks WHERE activity_id = ?`, activityID).Scan(&blob)
	if err != nil {
		return nil, fmt.Errorf("failed to load track %s: %w", activityID, err)
	}
	return unflatten(decodeCoords(blob)), nil
}

// Signatures возвращает сигнатуры всех загруженных активностей
func (e *Engine) Signatures(ctx context.Context) ([]*models.RouteSignature, error) {
	rows, err := e.db.QueryContext(ctx, `SELECT signature FROM activities ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query signatures: %w", err)
	}
	defer rows.Close()

	var out []*models.RouteSignature
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, fmt.Errorf("failed to scan signature: %w", err)
		}
		var sig models.RouteSignature
		if err := json.Unmarshal([]byte(raw), &sig); err != nil {
			return nil, fmt.Errorf("failed to decode signature: %w", err)
		}
		out = append(out, &sig)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return out, nil
}

func validateBuffer(ids []string, flatCoords []float64, offsets []int, sportTypes []string) error {
	if len(ids) != len(offsets) || len(ids) != len(sportTypes) {
		return fmt.Errorf("%w: %d ids, %d offsets, %d sport types", ErrInvalidBuffer, len(ids), len(offsets), len(sportTypes))
	}
	if len(flatCoords)%2 != 0 {
		return fmt.Errorf("%w: odd coordinate count %d", ErrInvalidBuffer, len(flatCoords))
	}
	totalPairs := len(flatCoords) / 2
	prev := -1
	for i, off := range offsets {
		if off <= prev || off >= totalPairs {
			return fmt.Errorf("%w: offset %d at index %d", ErrInvalidBuffer, off, i)
		}
		prev = off
	}
	if len(offsets) > 0 && offsets[0] != 0 {
		return fmt.Errorf("%w: first offset must be 0, got %d", ErrInvalidBuffer, offsets[0])
	}
	return nil
}

func unflatten(coords []float64) models.Polyline {
	out := make(models.Polyline, 0, len(coords)/2)
	for i := 0; i+1 < len(coords); i += 2 {
		out = append(out, models.RoutePoint{Lat: coords[i], Lng: coords[i+1]})
	}
	return out
}

// encodeCoords little-endian float64 подряд
func encodeCoords(coords []float64) []byte {
	buf := make([]byte, 8*len(coords))
	for i, v := range coords {
		binary.LittleEndian.PutUint64(buf[i*8:], math.Float64bits(v))
	}
	return buf
}

func decodeCoords(buf []byte) []float64 {
	out := make([]float64, len(buf)/8)
	for i := range out {
		out[i] = math.Float64frombits(binary.LittleEndian.Uint64(buf[i*8:]))
	}
	return out
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
