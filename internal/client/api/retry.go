package api

import (
	"net/http"
	"strconv"
	"time"
)

// RetryConfig политика повторов для ответов 429.
type RetryConfig struct {
	MaxRetries     int           // число повторов после первой попытки
	InitialBackoff time.Duration // задержка перед первым повтором, далее удваивается
}

// DefaultRetryConfig 3 повтора с задержками 1s, 2s, 4s.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxRetries:     3,
		InitialBackoff: time.Second,
	}
}

// Backoff задержка перед повтором номер attempt (с нуля): InitialBackoff * 2^attempt.
func (c RetryConfig) Backoff(attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return c.InitialBackoff << uint(attempt)
}

// retryDelay выбирает задержку: экспоненциальную или Retry-After, если он больше.
func (c RetryConfig) retryDelay(attempt int, header http.Header, now time.Time) time.Duration {
	delay := c.Backoff(attempt)
	if ra := parseRetryAfter(header.Get("Retry-After"), now); ra > delay {
		delay = ra
	}
	return delay
}

// parseRetryAfter поддерживает оба формата заголовка: секунды и HTTP-дату.
func parseRetryAfter(v string, now time.Time) time.Duration {
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil {
		if secs < 0 {
			return 0
		}
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}
