package boltdb

import (
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/routesync/internal/client/storage"
)

const (
	keyLastSyncTimestamp = "last_sync_timestamp"
	keySyncedRange       = "synced_range"
)

// SaveLastSyncTimestamp saves the timestamp of the last successful sync
func (s *Storage) SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Конвертируем int64 в bytes
		timestampBytes := make([]byte, 8)
		binary.BigEndian.PutUint64(timestampBytes, uint64(timestamp))

		// Сохраняем timestamp
		if err := bucket.Put([]byte(keyLastSyncTimestamp), timestampBytes); err != nil {
			return fmt.Errorf("failed to save last sync timestamp: %w", err)
		}

		return nil
	})
}

// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
// Returns 0 if no sync has been performed yet
func (s *Storage) GetLastSyncTimestamp(ctx context.Context) (int64, error) {
	if s.db == nil {
		return 0, storage.ErrStorageClosed
	}

	var timestamp int64

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		// Получаем timestamp
		timestampBytes := bucket.Get([]byte(keyLastSyncTimestamp))
		if len(timestampBytes) != 8 {
			// Нет записи или запись повреждена: считаем, что синхронизации не было
			timestamp = 0
			return nil
		}

		// Конвертируем bytes в int64
		timestamp = int64(binary.BigEndian.Uint64(timestampBytes))
		return nil
	})

	if err != nil {
		return 0, fmt.Errorf("failed to get last sync timestamp: %w", err)
	}

	return timestamp, nil
}

// UpdateSyncedRange extends the stored range: oldest = min, newest = max
func (s *Storage) UpdateSyncedRange(ctx context.Context, r storage.SyncRange) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if r.IsZero() {
		return nil
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		current := s.decodeRange(bucket.Get([]byte(keySyncedRange)))
		data, err := json.Marshal(current.Merge(r))
		if err != nil {
			return fmt.Errorf("failed to marshal synced range: %w", err)
		}

		if err := bucket.Put([]byte(keySyncedRange), data); err != nil {
			return fmt.Errorf("failed to save synced range: %w", err)
		}
		return nil
	})
}

// GetSyncedRange returns the stored synced range, zero range on missing or corrupt data
func (s *Storage) GetSyncedRange(ctx context.Context) (storage.SyncRange, error) {
	if s.db == nil {
		return storage.SyncRange{}, storage.ErrStorageClosed
	}

	var r storage.SyncRange

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketMetadata)
		if bucket == nil {
			return fmt.Errorf("metadata bucket not found")
		}

		r = s.decodeRange(bucket.Get([]byte(keySyncedRange)))
		return nil
	})
	if err != nil {
		return storage.SyncRange{}, fmt.Errorf("failed to get synced range: %w", err)
	}

	return r, nil
}

func (s *Storage) decodeRange(data []byte) storage.SyncRange {
	if data == nil {
		return storage.SyncRange{}
	}
	var r storage.SyncRange
	if err := json.Unmarshal(data, &r); err != nil {
		s.logger.Warn("Unreadable synced range, using empty range", "error", err)
		return storage.SyncRange{}
	}
	// диапазон с перепутанными границами не используем
	if !r.IsZero() && r.Newest.Before(r.Oldest) {
		s.logger.Warn("Inverted synced range, using empty range")
		return storage.SyncRange{}
	}
	return r
}
