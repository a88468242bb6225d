package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/iudanet/routesync/internal/engine"
)

// defaultStatsPeriod период статистики по умолчанию
const defaultStatsPeriod = 30 * 24 * time.Hour

// StatsOptions параметры команды stats; даты в формате YYYY-MM-DD
type StatsOptions struct {
	From string
	To   string
}

// period разбирает границы. Конечная дата включается целиком.
func (o StatsOptions) period(now time.Time) (time.Time, time.Time, error) {
	end := now
	if o.To != "" {
		t, err := time.Parse(time.DateOnly, o.To)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --to date: %w", err)
		}
		end = t.Add(24*time.Hour - time.Second)
	}

	start := end.Add(-defaultStatsPeriod)
	if o.From != "" {
		t, err := time.Parse(time.DateOnly, o.From)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid --from date: %w", err)
		}
		start = t
	}

	if start.After(end) {
		return time.Time{}, time.Time{}, fmt.Errorf("--from must not be after --to")
	}
	return start, end, nil
}

func (c *Cli) runStats(ctx context.Context, opts StatsOptions) error {
	if c.engine == nil {
		return engine.ErrEngineUnavailable
	}

	start, end, err := opts.period(c.now())
	if err != nil {
		return err
	}

	stats, err := c.engine.GetPeriodStats(ctx, start.Unix(), end.Unix())
	if err != nil {
		return fmt.Errorf("failed to get period stats: %w", err)
	}

	c.io.Println("=== Statistics ===")
	c.io.Printf("Period:      %s .. %s\n", formatDate(start), formatDate(end))
	c.io.Printf("Activities:  %d\n", stats.Count)
	c.io.Printf("Moving time: %s\n", time.Duration(stats.TotalDuration)*time.Second)
	c.io.Printf("Distance:    %s\n", formatDistance(stats.TotalDistance))

	trend, err := c.engine.GetFtpTrend(ctx)
	if err != nil {
		return fmt.Errorf("failed to get FTP trend: %w", err)
	}
	c.io.Println()
	if trend.LatestFTP == nil {
		c.io.Println("FTP:         unknown")
		return nil
	}
	c.io.Printf("FTP:         %d W (%s)\n", *trend.LatestFTP, epochDate(trend.LatestDate))
	if trend.PreviousFTP != nil {
		c.io.Printf("Previous:    %d W (%s), change %+d W\n",
			*trend.PreviousFTP, epochDate(trend.PreviousDate), *trend.LatestFTP-*trend.PreviousFTP)
	}
	return nil
}

func epochDate(sec *int64) string {
	if sec == nil {
		return "unknown date"
	}
	return formatDate(time.Unix(*sec, 0))
}
