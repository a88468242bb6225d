package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrTooManyRequests upstream продолжает отвечать 429 после всех повторов
	ErrTooManyRequests = errors.New("too many requests")
	// ErrUnauthorized ключ API или токен не приняты сервером
	ErrUnauthorized = errors.New("unauthorized")
	// ErrNotFound активность или атлет не найдены
	ErrNotFound = errors.New("not found")
)

// HTTPError неуспешный ответ upstream API.
type HTTPError struct {
	Message    string
	StatusCode int
}

func (e *HTTPError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Unwrap сопоставляет статус с sentinel ошибкой, чтобы работал errors.Is.
func (e *HTTPError) Unwrap() error {
	switch e.StatusCode {
	case http.StatusTooManyRequests:
		return ErrTooManyRequests
	case http.StatusUnauthorized, http.StatusForbidden:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		return nil
	}
}
