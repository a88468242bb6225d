package sync

import (
	"sync/atomic"

	"github.com/iudanet/routesync/internal/metrics"
)

// Generation счетчик сбросов состояния синхронизации.
// Цикл запоминает значение при старте и применяет результаты только если
// значение не изменилось к моменту передачи данных в движок.
type Generation struct {
	v atomic.Uint64
}

// Current текущее значение
func (g *Generation) Current() uint64 {
	return g.v.Load()
}

// Bump увеличивает счетчик; вызывается ровно один раз на каждый явный сброс
func (g *Generation) Bump() uint64 {
	n := g.v.Add(1)
	metrics.Generation.Set(float64(n))
	return n
}

var processGeneration Generation

// ProcessGeneration общий для процесса счетчик
func ProcessGeneration() *Generation {
	return &processGeneration
}
