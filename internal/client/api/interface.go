package api

import (
	"context"
	"time"

	"github.com/iudanet/routesync/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI операции upstream API, нужные синхронизации.
type ClientAPI interface {
	FetchActivityMaps(ctx context.Context, ids []string, onProgress ProgressFunc) ([]MapResult, error)
	ListActivities(ctx context.Context, athleteID string, oldest, newest time.Time) ([]api.Activity, error)
}

var _ ClientAPI = (*Client)(nil)
