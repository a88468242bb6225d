package boltdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/models"
)

// errCorrupt внутренний маркер нечитаемой записи
var errCorrupt = errors.New("corrupt record")

// SaveSignature stores or replaces a signature keyed by activity id
func (s *Storage) SaveSignature(ctx context.Context, sig *models.RouteSignature) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	if sig == nil || sig.ActivityID == "" {
		return fmt.Errorf("signature must have an activity id")
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSignatures)
		if bucket == nil {
			return fmt.Errorf("signatures bucket not found")
		}

		data, err := json.Marshal(sig)
		if err != nil {
			return fmt.Errorf("failed to marshal signature: %w", err)
		}

		if err := bucket.Put([]byte(sig.ActivityID), data); err != nil {
			return fmt.Errorf("failed to save signature: %w", err)
		}

		return nil
	})
}

// GetSignature retrieves a signature by activity id.
// Нечитаемая запись удаляется и считается отсутствующей.
func (s *Storage) GetSignature(ctx context.Context, activityID string) (*models.RouteSignature, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var sig *models.RouteSignature

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSignatures)
		if bucket == nil {
			return fmt.Errorf("signatures bucket not found")
		}

		data := bucket.Get([]byte(activityID))
		if data == nil {
			return storage.ErrSignatureNotFound
		}

		decoded, ok := decodeSignature(data, activityID)
		if !ok {
			return errCorrupt
		}
		sig = decoded
		return nil
	})

	if errors.Is(err, errCorrupt) {
		s.logger.Warn("Dropping unreadable cached signature", "activity_id", activityID)
		if delErr := s.deleteKey(bucketSignatures, activityID); delErr != nil {
			return nil, fmt.Errorf("failed to drop corrupt signature: %w", delErr)
		}
		return nil, storage.ErrSignatureNotFound
	}
	if err != nil {
		return nil, err
	}

	return sig, nil
}

// ListSignatures returns all readable signatures, unreadable records are skipped
func (s *Storage) ListSignatures(ctx context.Context) ([]*models.RouteSignature, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var out []*models.RouteSignature

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketSignatures)
		if bucket == nil {
			return fmt.Errorf("signatures bucket not found")
		}

		return bucket.ForEach(func(k, v []byte) error {
			sig, ok := decodeSignature(v, string(k))
			if !ok {
				s.logger.Warn("Skipping unreadable cached signature", "activity_id", string(k))
				return nil
			}
			out = append(out, sig)
			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list signatures: %w", err)
	}

	return out, nil
}

// SaveBounds stores bounds of an activity trace
func (s *Storage) SaveBounds(ctx context.Context, activityID string, b models.Bounds) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBounds)
		if bucket == nil {
			return fmt.Errorf("bounds bucket not found")
		}

		data, err := json.Marshal(b)
		if err != nil {
			return fmt.Errorf("failed to marshal bounds: %w", err)
		}

		if err := bucket.Put([]byte(activityID), data); err != nil {
			return fmt.Errorf("failed to save bounds: %w", err)
		}

		return nil
	})
}

// GetBounds retrieves bounds by activity id
func (s *Storage) GetBounds(ctx context.Context, activityID string) (models.Bounds, error) {
	if s.db == nil {
		return models.Bounds{}, storage.ErrStorageClosed
	}

	var b models.Bounds

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketBounds)
		if bucket == nil {
			return fmt.Errorf("bounds bucket not found")
		}

		data := bucket.Get([]byte(activityID))
		if data == nil {
			return storage.ErrBoundsNotFound
		}

		if err := json.Unmarshal(data, &b); err != nil {
			s.logger.Warn("Unreadable cached bounds", "activity_id", activityID, "error", err)
			return storage.ErrBoundsNotFound
		}
		return nil
	})
	if err != nil {
		return models.Bounds{}, err
	}

	return b, nil
}

// decodeSignature разбирает запись; пустой трек или чужой id считаются повреждением
func decodeSignature(data []byte, key string) (*models.RouteSignature, bool) {
	var sig models.RouteSignature
	if err := json.Unmarshal(data, &sig); err != nil {
		return nil, false
	}
	if sig.ActivityID != key || len(sig.Points) == 0 {
		return nil, false
	}
	return &sig, true
}

func (s *Storage) deleteKey(bucketName []byte, key string) error {
	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketName)
		if bucket == nil {
			return fmt.Errorf("%s bucket not found", bucketName)
		}
		return bucket.Delete([]byte(key))
	})
}
