// Package engine описывает узкую границу с движком сопоставления маршрутов.
package engine

import (
	"context"
	"errors"

	"github.com/iudanet/routesync/internal/models"
)

//go:generate moq -out adapter_mock.go . Adapter

// ErrEngineUnavailable движок не инициализирован
var ErrEngineUnavailable = errors.New("route engine unavailable")

// DetectionStatus состояние фонового поиска секций.
type DetectionStatus string

const (
	StatusIdle     DetectionStatus = "idle"
	StatusRunning  DetectionStatus = "running"
	StatusComplete DetectionStatus = "complete"
	StatusError    DetectionStatus = "error"
)

// Done сообщает, что ждать больше нечего: поиск завершился или не запускался.
func (s DetectionStatus) Done() bool {
	return s != StatusRunning
}

// Adapter route matching engine.
//
// Координаты передаются плоским буфером: пары lat,lng подряд для всех активностей,
// offsets[i] индекс первой пары активности i. Число пар последней активности
// равно len(flatCoords)/2 - offsets[last].
type Adapter interface {
	// AddActivities загружает треки. Повторная загрузка id заменяет данные.
	AddActivities(ctx context.Context, ids []string, flatCoords []float64, offsets []int, sportTypes []string) error

	// StartSectionDetection запускает поиск в фоне и сразу возвращается.
	StartSectionDetection(ctx context.Context) error

	// PollSectionDetection возвращает состояние поиска. Завершенный запуск
	// сообщается как complete один раз, затем idle.
	PollSectionDetection(ctx context.Context) (DetectionStatus, error)

	// GetPeriodStats агрегаты по активностям с датой в [start, end] (unix секунды).
	GetPeriodStats(ctx context.Context, startEpochSec, endEpochSec int64) (models.PeriodStats, error)

	// GetFtpTrend последний и предыдущий отличающийся FTP.
	GetFtpTrend(ctx context.Context) (models.FtpTrend, error)
}
