package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/iudanet/routesync/internal/models"
)

// RecordMetrics сохраняет сводные показатели активностей (upsert по activity_id)
func (e *Engine) RecordMetrics(ctx context.Context, metrics []models.ActivityMetrics) error {
	tx, err := e.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	query := `
		INSERT INTO activity_metrics (
			activity_id, name, sport_type, date, moving_time,
			distance, elevation_gain, ftp
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(activity_id) DO UPDATE SET
			name = excluded.name,
			sport_type = excluded.sport_type,
			date = excluded.date,
			moving_time = excluded.moving_time,
			distance = excluded.distance,
			elevation_gain = excluded.elevation_gain,
			ftp = excluded.ftp
	`
	for _, m := range metrics {
		var ftp sql.NullInt64
		if m.FTP != nil {
			ftp = sql.NullInt64{Int64: int64(*m.FTP), Valid: true}
		}
		_, err := tx.ExecContext(ctx, query,
			m.ActivityID,
			m.Name,
			m.SportType,
			m.Date,
			m.MovingTime,
			m.Distance,
			m.ElevationGain,
			ftp,
		)
		if err != nil {
			return fmt.Errorf("failed to upsert metrics for %s: %w", m.ActivityID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit metrics: %w", err)
	}
	return nil
}

// GetPeriodStats агрегаты по активностям с датой в [start, end]
func (e *Engine) GetPeriodStats(ctx context.Context, startEpochSec, endEpochSec int64) (models.PeriodStats, error) {
	var stats models.PeriodStats

	query := `
		SELECT COUNT(*), COALESCE(SUM(moving_time), 0), COALESCE(SUM(distance), 0)
		FROM activity_metrics
		WHERE date >= ? AND date <= ?
	`
	err := e.db.QueryRowContext(ctx, query, startEpochSec, endEpochSec).
		Scan(&stats.Count, &stats.TotalDuration, &stats.TotalDistance)
	if err != nil {
		return models.PeriodStats{}, fmt.Errorf("failed to query period stats: %w", err)
	}

	return stats, nil
}

// GetFtpTrend последний известный FTP и предыдущее отличающееся значение
func (e *Engine) GetFtpTrend(ctx context.Context) (models.FtpTrend, error) {
	var trend models.FtpTrend

	var (
		latestFTP  int
		latestDate int64
	)
	err := e.db.QueryRowContext(ctx, `
		SELECT ftp, date FROM activity_metrics
		WHERE ftp IS NOT NULL
		ORDER BY date DESC, activity_id DESC
		LIMIT 1
	`).Scan(&latestFTP, &latestDate)
	if errors.Is(err, sql.ErrNoRows) {
		return trend, nil
	}
	if err != nil {
		return models.FtpTrend{}, fmt.Errorf("failed to query latest ftp: %w", err)
	}
	trend.LatestFTP = &latestFTP
	trend.LatestDate = &latestDate

	var (
		prevFTP  int
		prevDate int64
	)
	err = e.db.QueryRowContext(ctx, `
		SELECT ftp, date FROM activity_metrics
		WHERE ftp IS NOT NULL AND ftp != ? AND date <= ?
		ORDER BY date DESC, activity_id DESC
		LIMIT 1
	`, latestFTP, latestDate).Scan(&prevFTP, &prevDate)
	if errors.Is(err, sql.ErrNoRows) {
		return trend, nil
	}
	if err != nil {
		return models.FtpTrend{}, fmt.Errorf("failed to query previous ftp: %w", err)
	}
	trend.PreviousFTP = &prevFTP
	trend.PreviousDate = &prevDate

	return trend, nil
}
