package api

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/iudanet/routesync/internal/metrics"
)

// ThrottleConfig параметры ограничителя исходящих запросов.
type ThrottleConfig struct {
	MinInterval  time.Duration // минимальный интервал между стартами запросов
	WindowSize   time.Duration // длина скользящего окна
	SafetyMargin time.Duration // запас после выхода самой старой метки из окна
	MaxPerWindow int           // максимум запросов в окне
}

// DefaultThrottleConfig лимиты upstream API: 100 мс между запросами и не более 80 за 10 с.
func DefaultThrottleConfig() ThrottleConfig {
	return ThrottleConfig{
		MinInterval:  100 * time.Millisecond,
		WindowSize:   10 * time.Second,
		SafetyMargin: 50 * time.Millisecond,
		MaxPerWindow: 80,
	}
}

// Clock источник времени и ожидания; подменяется в тестах.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Throttle ограничивает частоту запросов к upstream API для всего процесса.
// Два условия проверяются вместе: минимальный интервал между стартами
// (rate.Limiter, burst 1) и не более MaxPerWindow стартов в скользящем окне.
type Throttle struct {
	clock   Clock
	logger  *slog.Logger
	spacing *rate.Limiter
	history []time.Time // метки стартов, отсортированы по возрастанию
	cfg     ThrottleConfig
	mu      sync.Mutex
}

// ThrottleOption настраивает Throttle.
type ThrottleOption func(*Throttle)

// WithClock подменяет источник времени.
func WithClock(c Clock) ThrottleOption {
	return func(t *Throttle) {
		t.clock = c
	}
}

// WithThrottleLogger задает логгер.
func WithThrottleLogger(l *slog.Logger) ThrottleOption {
	return func(t *Throttle) {
		t.logger = l
	}
}

// NewThrottle создает ограничитель. В процессе должен существовать один экземпляр,
// общий для всех клиентов; см. DefaultThrottle.
func NewThrottle(cfg ThrottleConfig, opts ...ThrottleOption) (*Throttle, error) {
	if cfg.MaxPerWindow <= 0 {
		return nil, fmt.Errorf("max per window must be positive, got %d", cfg.MaxPerWindow)
	}
	if cfg.WindowSize <= 0 {
		return nil, fmt.Errorf("window size must be positive, got %s", cfg.WindowSize)
	}
	if cfg.MinInterval < 0 || cfg.SafetyMargin < 0 {
		return nil, fmt.Errorf("min interval and safety margin must not be negative")
	}

	limit := rate.Inf
	if cfg.MinInterval > 0 {
		limit = rate.Every(cfg.MinInterval)
	}

	t := &Throttle{
		clock:   realClock{},
		logger:  slog.Default(),
		spacing: rate.NewLimiter(limit, 1),
		cfg:     cfg,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t, nil
}

var (
	defaultThrottleOnce sync.Once
	defaultThrottle     *Throttle
)

// DefaultThrottle возвращает общий для процесса ограничитель с лимитами по умолчанию.
func DefaultThrottle() *Throttle {
	defaultThrottleOnce.Do(func() {
		// конфигурация по умолчанию валидна, ошибка невозможна
		defaultThrottle, _ = NewThrottle(DefaultThrottleConfig())
	})
	return defaultThrottle
}

// Wait блокирует вызывающего, пока запрос не может быть отправлен без нарушения лимитов,
// и записывает метку старта. Возвращает ошибку контекста, если ожидание прервано.
func (t *Throttle) Wait(ctx context.Context) error {
	began := t.clock.Now()

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		t.mu.Lock()
		now := t.clock.Now()
		t.prune(now)

		if len(t.history) >= t.cfg.MaxPerWindow {
			// окно заполнено: ждем, пока самая старая метка выйдет из окна
			wait := t.history[0].Add(t.cfg.WindowSize).Sub(now) + t.cfg.SafetyMargin
			t.mu.Unlock()

			t.logger.Debug("Throttle window full, waiting",
				"wait", wait,
				"max_per_window", t.cfg.MaxPerWindow)
			if err := t.clock.Sleep(ctx, wait); err != nil {
				return err
			}
			continue
		}

		// слот в окне есть; резервируем старт с учетом минимального интервала
		r := t.spacing.ReserveN(now, 1)
		delay := r.DelayFrom(now)
		start := now.Add(delay)
		t.history = append(t.history, start)
		t.mu.Unlock()

		if delay > 0 {
			if err := t.clock.Sleep(ctx, delay); err != nil {
				t.release(r, start)
				return err
			}
		}

		metrics.ThrottleWaitSeconds.Observe(start.Sub(began).Seconds())
		return nil
	}
}

// History возвращает копию меток стартов, которые еще находятся в окне.
func (t *Throttle) History() []time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()

	out := make([]time.Time, len(t.history))
	copy(out, t.history)
	return out
}

// prune удаляет метки старше окна. Вызывается под mu.
func (t *Throttle) prune(now time.Time) {
	cutoff := now.Add(-t.cfg.WindowSize)
	i := 0
	for i < len(t.history) && !t.history[i].After(cutoff) {
		i++
	}
	if i > 0 {
		t.history = append(t.history[:0], t.history[i:]...)
	}
}

// release отменяет резерв прерванного запроса.
func (t *Throttle) release(r *rate.Reservation, start time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r.CancelAt(t.clock.Now())
	for i, ts := range t.history {
		if ts.Equal(start) {
			t.history = append(t.history[:i], t.history[i+1:]...)
			return
		}
	}
}
