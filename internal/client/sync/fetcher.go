package sync

import (
	"context"

	"github.com/iudanet/routesync/internal/models"
)

// FetchProgressFunc прогресс загрузки треков: завершено completed из total.
type FetchProgressFunc func(completed, total int)

// TraceFetcher стратегия получения треков активностей.
// Результат содержит по одному элементу на каждый id в порядке ids;
// активность без GPS возвращается с пустым Points.
type TraceFetcher interface {
	FetchTraces(ctx context.Context, ids []string, onProgress FetchProgressFunc) ([]models.ActivityTrace, error)
}

func reportFetch(onProgress FetchProgressFunc, completed, total int) {
	if onProgress != nil {
		onProgress(completed, total)
	}
}
