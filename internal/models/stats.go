package models

// PeriodStats агрегированная статистика за период.
type PeriodStats struct {
	Count         int     `json:"count"`          // Count количество активностей
	TotalDuration int64   `json:"total_duration"` // TotalDuration суммарное время движения в секундах
	TotalDistance float64 `json:"total_distance"` // TotalDistance суммарная дистанция в метрах
}

// FtpTrend holds the latest FTP value and the previous different one.
type FtpTrend struct {
	LatestFTP    *int   `json:"latest_ftp,omitempty"`
	LatestDate   *int64 `json:"latest_date,omitempty"`
	PreviousFTP  *int   `json:"previous_ftp,omitempty"`
	PreviousDate *int64 `json:"previous_date,omitempty"`
}

// ActivityMetrics are the per-activity summary values used by aggregate queries.
type ActivityMetrics struct {
	FTP           *int    `json:"ftp,omitempty"`
	ActivityID    string  `json:"activity_id"`
	Name          string  `json:"name"`
	SportType     string  `json:"sport_type"`
	Date          int64   `json:"date"`        // Date unix seconds
	MovingTime    int64   `json:"moving_time"` // MovingTime seconds
	Distance      float64 `json:"distance"`
	ElevationGain float64 `json:"elevation_gain"`
}
