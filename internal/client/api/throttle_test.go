package api

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeClock виртуальное время: Sleep сдвигает часы без реального ожидания
type fakeClock struct {
	now      time.Time
	sleepErr error
	slept    []time.Duration
	mu       sync.Mutex
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Sleep(ctx context.Context, d time.Duration) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sleepErr != nil {
		return c.sleepErr
	}
	c.slept = append(c.slept, d)
	if d > 0 {
		c.now = c.now.Add(d)
	}
	return nil
}

func (c *fakeClock) Slept() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]time.Duration, len(c.slept))
	copy(out, c.slept)
	return out
}

// maxInWindow максимальное число меток в любом окне (ts-window, ts]
func maxInWindow(stamps []time.Time, window time.Duration) int {
	best := 0
	for i, ts := range stamps {
		n := 0
		for _, other := range stamps[:i+1] {
			if other.After(ts.Add(-window)) {
				n++
			}
		}
		if n > best {
			best = n
		}
	}
	return best
}

func TestNewThrottle_Validation(t *testing.T) {
	tests := []struct {
		name string
		cfg  ThrottleConfig
	}{
		{name: "zero max per window", cfg: ThrottleConfig{WindowSize: time.Second}},
		{name: "zero window", cfg: ThrottleConfig{MaxPerWindow: 1}},
		{name: "negative interval", cfg: ThrottleConfig{MaxPerWindow: 1, WindowSize: time.Second, MinInterval: -1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewThrottle(tt.cfg)
			assert.Error(t, err)
		})
	}
}

func TestDefaultThrottle_Singleton(t *testing.T) {
	assert.Same(t, DefaultThrottle(), DefaultThrottle())
}

// TestThrottle_BurstNeverExceedsWindow 100 мгновенных запросов с лимитами по умолчанию
func TestThrottle_BurstNeverExceedsWindow(t *testing.T) {
	clock := newFakeClock()
	cfg := DefaultThrottleConfig()
	th, err := NewThrottle(cfg, WithClock(clock))
	require.NoError(t, err)

	ctx := context.Background()
	starts := make([]time.Time, 0, 100)
	for i := 0; i < 100; i++ {
		require.NoError(t, th.Wait(ctx))
		starts = append(starts, clock.Now())
	}

	assert.LessOrEqual(t, maxInWindow(starts, cfg.WindowSize), cfg.MaxPerWindow)

	for i := 1; i < len(starts); i++ {
		gap := starts[i].Sub(starts[i-1])
		assert.GreaterOrEqual(t, gap, cfg.MinInterval-time.Microsecond, "request %d started too early", i)
	}

	// 81-й запрос ждет выхода первой метки из окна плюс запас
	first := starts[0]
	assert.False(t, starts[cfg.MaxPerWindow].Before(first.Add(cfg.WindowSize+cfg.SafetyMargin)))
	assert.True(t, starts[cfg.MaxPerWindow-1].Before(first.Add(cfg.WindowSize)))
}

func TestThrottle_HistoryIsCopy(t *testing.T) {
	clock := newFakeClock()
	th, err := NewThrottle(ThrottleConfig{WindowSize: time.Second, MaxPerWindow: 10}, WithClock(clock))
	require.NoError(t, err)

	require.NoError(t, th.Wait(context.Background()))
	h := th.History()
	require.Len(t, h, 1)

	h[0] = time.Time{}
	assert.Equal(t, clock.Now(), th.History()[0])
}

func TestThrottle_HistoryPrunedAfterWindow(t *testing.T) {
	clock := newFakeClock()
	th, err := NewThrottle(ThrottleConfig{WindowSize: time.Second, MaxPerWindow: 10}, WithClock(clock))
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, th.Wait(ctx))
	require.NoError(t, th.Wait(ctx))

	require.NoError(t, clock.Sleep(ctx, 2*time.Second))
	require.NoError(t, th.Wait(ctx))

	assert.Len(t, th.History(), 1)
}

func TestThrottle_ContextCancelled(t *testing.T) {
	clock := newFakeClock()
	th, err := NewThrottle(ThrottleConfig{WindowSize: time.Second, MaxPerWindow: 1}, WithClock(clock))
	require.NoError(t, err)

	require.NoError(t, th.Wait(context.Background()))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = th.Wait(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Len(t, th.History(), 1)
}

func TestThrottle_InterruptedSpacingReleasesSlot(t *testing.T) {
	clock := newFakeClock()
	th, err := NewThrottle(ThrottleConfig{
		MinInterval:  time.Second,
		WindowSize:   10 * time.Second,
		MaxPerWindow: 10,
	}, WithClock(clock))
	require.NoError(t, err)

	require.NoError(t, th.Wait(context.Background()))

	sleepErr := errors.New("interrupted")
	clock.sleepErr = sleepErr
	err = th.Wait(context.Background())
	assert.ErrorIs(t, err, sleepErr)
	assert.Len(t, th.History(), 1)
}

// TestThrottle_ConcurrentCallers проверяет лимит окна при параллельных вызовах с реальными часами
func TestThrottle_ConcurrentCallers(t *testing.T) {
	const window = 100 * time.Millisecond
	th, err := NewThrottle(ThrottleConfig{
		WindowSize:   window,
		SafetyMargin: 5 * time.Millisecond,
		MaxPerWindow: 4,
	})
	require.NoError(t, err)

	began := time.Now()
	var wg sync.WaitGroup
	errs := make(chan error, 10)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- th.Wait(context.Background())
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	// 10 запросов при 4 на окно требуют трех окон
	assert.GreaterOrEqual(t, time.Since(began), 2*window)
}
