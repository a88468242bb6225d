package boltdb

import (
	"context"
	"fmt"
	"log/slog"

	"go.etcd.io/bbolt"

	"github.com/iudanet/routesync/internal/client/storage"
)

var (
	// BoltDB bucket names
	bucketSignatures  = []byte("signatures")
	bucketBounds      = []byte("bounds")
	bucketMetadata    = []byte("metadata")
	bucketCredentials = []byte("credentials")
)

// Storage represents BoltDB storage implementation for client
type Storage struct {
	db     *bbolt.DB
	logger *slog.Logger
}

// Option настраивает Storage
type Option func(*Storage)

// WithLogger sets the logger used for warnings about unreadable records.
func WithLogger(l *slog.Logger) Option {
	return func(s *Storage) {
		if l != nil {
			s.logger = l
		}
	}
}

var (
	_ storage.SyncStorage        = (*Storage)(nil)
	_ storage.CredentialsStorage = (*Storage)(nil)
)

// New creates a new BoltDB storage instance
// dbPath is the path to the BoltDB database file
func New(ctx context.Context, dbPath string, opts ...Option) (*Storage, error) {
	// Открываем BoltDB
	db, err := bbolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open boltdb: %w", err)
	}

	storage := &Storage{db: db, logger: slog.Default()}
	for _, opt := range opts {
		opt(storage)
	}

	// Инициализируем buckets
	if err := storage.initBuckets(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize buckets: %w", err)
	}

	return storage, nil
}

// Close closes the database connection
func (s *Storage) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Clear removes cached signatures, bounds and sync metadata. Credentials survive a reset.
func (s *Storage) Clear(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSignatures, bucketBounds, bucketMetadata} {
			if tx.Bucket(name) != nil {
				if err := tx.DeleteBucket(name); err != nil {
					return fmt.Errorf("failed to delete %s bucket: %w", name, err)
				}
			}
			if _, err := tx.CreateBucket(name); err != nil {
				return fmt.Errorf("failed to recreate %s bucket: %w", name, err)
			}
		}
		return nil
	})
}

// initBuckets создает необходимые buckets если они не существуют
func (s *Storage) initBuckets() error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		for _, name := range [][]byte{bucketSignatures, bucketBounds, bucketMetadata, bucketCredentials} {
			if _, err := tx.CreateBucketIfNotExists(name); err != nil {
				return fmt.Errorf("failed to create %s bucket: %w", name, err)
			}
		}
		return nil
	})
}
