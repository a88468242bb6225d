// Package sqlite reference route matching engine backed by SQLite.
package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sync"

	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite" // SQLite driver

	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/geo"
	"github.com/iudanet/routesync/internal/signature"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// DefaultGroupingThreshold минимальное взаимное перекрытие для объединения в группу
const DefaultGroupingThreshold = 0.65

// Engine реализует engine.Adapter поверх SQLite
type Engine struct {
	db      *sql.DB
	builder *signature.Builder
	logger  *slog.Logger

	// ctx живет до Close и отменяет фоновый поиск
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	groupingThreshold float64
	overlapMeters     float64

	mu        sync.Mutex
	status    engine.DetectionStatus
	lastErr   error
	lastRunID string
}

var _ engine.Adapter = (*Engine)(nil)

// Option настраивает Engine
type Option func(*Engine)

// WithLogger задает логгер
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// WithGroupingThreshold задает порог взаимного перекрытия (0..1)
func WithGroupingThreshold(t float64) Option {
	return func(e *Engine) {
		e.groupingThreshold = t
	}
}

// WithOverlapMeters задает радиус совпадения точек
func WithOverlapMeters(m float64) Option {
	return func(e *Engine) {
		e.overlapMeters = m
	}
}

// WithSignatureConfig задает параметры построения сигнатур
func WithSignatureConfig(cfg signature.Config) Option {
	return func(e *Engine) {
		e.builder = signature.NewBuilder(cfg)
	}
}

// New creates a new engine instance
// dbPath is the path to the SQLite database file
// Use ":memory:" for in-memory database (useful for testing)
func New(ctx context.Context, dbPath string, opts ...Option) (*Engine, error) {
	// Открываем соединение с БД
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Проверяем соединение
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// SQLite допускает одного писателя; фоновый поиск и ingest идут через одно соединение
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	// Включаем WAL mode и другие оптимизации
	pragmas := []string{
		"PRAGMA journal_mode = WAL;",
		"PRAGMA synchronous = NORMAL;",
		"PRAGMA foreign_keys = ON;",
		"PRAGMA busy_timeout = 5000;",
	}

	for _, pragma := range pragmas {
		if _, err := db.ExecContext(ctx, pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	runCtx, cancel := context.WithCancel(context.Background())
	e := &Engine{
		db:                db,
		builder:           signature.NewBuilder(signature.DefaultConfig()),
		logger:            slog.Default(),
		ctx:               runCtx,
		cancel:            cancel,
		groupingThreshold: DefaultGroupingThreshold,
		overlapMeters:     geo.DefaultOverlapThreshold,
		status:            engine.StatusIdle,
	}
	for _, opt := range opts {
		opt(e)
	}

	// Запускаем миграции
	if err := e.runMigrations(); err != nil {
		cancel()
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return e, nil
}

// Close останавливает фоновый поиск и закрывает БД
func (e *Engine) Close() error {
	e.cancel()
	e.wg.Wait()
	return e.db.Close()
}

// runMigrations выполняет миграции из embedded FS
func (e *Engine) runMigrations() error {
	// Устанавливаем dialect для SQLite
	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}

	// Устанавливаем источник миграций из embedded FS
	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	// Запускаем миграции
	if err := goose.Up(e.db, "migrations"); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	return nil
}

// DB returns the underlying database connection for testing purposes
func (e *Engine) DB() *sql.DB {
	return e.db
}
