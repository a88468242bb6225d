// Package cli содержит команды routesync.
package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/routesync/internal/client/auth"
	"github.com/iudanet/routesync/internal/client/iocli"
	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/client/sync"
	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/engine/sqlite"
)

// errNotAuthenticated подсказка пользователю, когда учетных данных нет
var errNotAuthenticated = errors.New("not authenticated. Please run 'routesync login' first")

// GroupLister источник найденных групп маршрутов
type GroupLister interface {
	Groups(ctx context.Context) ([]sqlite.RouteGroup, error)
}

// Cli выполняет команды поверх сервисов клиента.
type Cli struct {
	io           iocli.IO
	authService  auth.Service
	orchestrator sync.Orchestrator
	store        storage.SyncStorage
	engine       engine.Adapter
	groups       GroupLister
	live         sync.TraceFetcher
	now          func() time.Time
}

// Deps зависимости Cli. Engine и Groups могут быть nil, если движок не открылся.
type Deps struct {
	IO           iocli.IO
	AuthService  auth.Service
	Orchestrator sync.Orchestrator
	Store        storage.SyncStorage
	Engine       engine.Adapter
	Groups       GroupLister
	Live         sync.TraceFetcher
}

func New(d Deps) *Cli {
	return &Cli{
		io:           d.IO,
		authService:  d.AuthService,
		orchestrator: d.Orchestrator,
		store:        d.Store,
		engine:       d.Engine,
		groups:       d.Groups,
		live:         d.Live,
		now:          time.Now,
	}
}

// formatDate дата без времени или "never" для нулевого значения
func formatDate(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	return t.UTC().Format(time.DateOnly)
}

func formatDistance(meters float64) string {
	return fmt.Sprintf("%.1f km", meters/1000)
}
