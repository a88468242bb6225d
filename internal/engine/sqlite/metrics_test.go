package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/routesync/internal/models"
)

func intPtr(v int) *int { return &v }

func TestGetPeriodStats(t *testing.T) {
	ctx := context.Background()
	e := setupTestEngine(t)

	require.NoError(t, e.RecordMetrics(ctx, []models.ActivityMetrics{
		{ActivityID: "a", Date: 1000, MovingTime: 3600, Distance: 30000},
		{ActivityID: "b", Date: 2000, MovingTime: 1800, Distance: 10000},
		{ActivityID: "c", Date: 3000, MovingTime: 600, Distance: 2000},
	}))

	tests := []struct {
		name       string
		start, end int64
		want       models.PeriodStats
	}{
		{name: "all", start: 0, end: 5000, want: models.PeriodStats{Count: 3, TotalDuration: 6000, TotalDistance: 42000}},
		{name: "bounds inclusive", start: 1000, end: 2000, want: models.PeriodStats{Count: 2, TotalDuration: 5400, TotalDistance: 40000}},
		{name: "empty period", start: 4000, end: 5000, want: models.PeriodStats{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := e.GetPeriodStats(ctx, tt.start, tt.end)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRecordMetrics_Upsert(t *testing.T) {
	ctx := context.Background()
	e := setupTestEngine(t)

	require.NoError(t, e.RecordMetrics(ctx, []models.ActivityMetrics{{ActivityID: "a", Date: 1000, Distance: 100}}))
	require.NoError(t, e.RecordMetrics(ctx, []models.ActivityMetrics{{ActivityID: "a", Date: 1000, Distance: 250}}))

	got, err := e.GetPeriodStats(ctx, 0, 2000)
	require.NoError(t, err)
	assert.Equal(t, 1, got.Count)
	assert.Equal(t, 250.0, got.TotalDistance)
}

func TestGetFtpTrend(t *testing.T) {
	ctx := context.Background()

	t.Run("no data", func(t *testing.T) {
		e := setupTestEngine(t)
		trend, err := e.GetFtpTrend(ctx)
		require.NoError(t, err)
		assert.Nil(t, trend.LatestFTP)
		assert.Nil(t, trend.PreviousFTP)
	})

	t.Run("single value", func(t *testing.T) {
		e := setupTestEngine(t)
		require.NoError(t, e.RecordMetrics(ctx, []models.ActivityMetrics{
			{ActivityID: "a", Date: 1000, FTP: intPtr(250)},
			{ActivityID: "b", Date: 2000, FTP: intPtr(250)},
			{ActivityID: "c", Date: 3000},
		}))

		trend, err := e.GetFtpTrend(ctx)
		require.NoError(t, err)
		require.NotNil(t, trend.LatestFTP)
		assert.Equal(t, 250, *trend.LatestFTP)
		assert.Equal(t, int64(2000), *trend.LatestDate)
		assert.Nil(t, trend.PreviousFTP)
	})

	t.Run("previous distinct value", func(t *testing.T) {
		e := setupTestEngine(t)
		require.NoError(t, e.RecordMetrics(ctx, []models.ActivityMetrics{
			{ActivityID: "a", Date: 1000, FTP: intPtr(230)},
			{ActivityID: "b", Date: 2000, FTP: intPtr(240)},
			{ActivityID: "c", Date: 3000, FTP: intPtr(255)},
			{ActivityID: "d", Date: 4000, FTP: intPtr(255)},
		}))

		trend, err := e.GetFtpTrend(ctx)
		require.NoError(t, err)
		assert.Equal(t, 255, *trend.LatestFTP)
		assert.Equal(t, int64(4000), *trend.LatestDate)
		require.NotNil(t, trend.PreviousFTP)
		assert.Equal(t, 240, *trend.PreviousFTP)
		assert.Equal(t, int64(2000), *trend.PreviousDate)
	})
}
