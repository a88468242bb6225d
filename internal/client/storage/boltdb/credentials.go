package boltdb

import (
	"context"
	"encoding/json"
	"fmt"

	"go.etcd.io/bbolt"

	"github.com/iudanet/routesync/internal/client/storage"
)

var credentialsKey = []byte("current")

// SaveCredentials stores API credentials
func (s *Storage) SaveCredentials(ctx context.Context, creds *storage.Credentials) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		// Сериализуем данные в JSON
		data, err := json.Marshal(creds)
		if err != nil {
			return fmt.Errorf("failed to marshal credentials: %w", err)
		}

		// Сохраняем в bucket
		if err := bucket.Put(credentialsKey, data); err != nil {
			return fmt.Errorf("failed to save credentials: %w", err)
		}

		return nil
	})
}

// GetCredentials retrieves stored API credentials
func (s *Storage) GetCredentials(ctx context.Context) (*storage.Credentials, error) {
	if s.db == nil {
		return nil, storage.ErrStorageClosed
	}

	var creds *storage.Credentials

	err := s.db.View(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		// Получаем данные
		data := bucket.Get(credentialsKey)
		if data == nil {
			return storage.ErrCredentialsNotFound
		}

		// Десериализуем
		creds = &storage.Credentials{}
		if err := json.Unmarshal(data, creds); err != nil {
			return fmt.Errorf("failed to unmarshal credentials: %w", err)
		}

		return nil
	})

	if err != nil {
		return nil, err
	}

	return creds, nil
}

// DeleteCredentials removes stored credentials (logout)
func (s *Storage) DeleteCredentials(ctx context.Context) error {
	if s.db == nil {
		return storage.ErrStorageClosed
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		bucket := tx.Bucket(bucketCredentials)
		if bucket == nil {
			return fmt.Errorf("credentials bucket not found")
		}

		// Проверяем существование данных
		if bucket.Get(credentialsKey) == nil {
			return storage.ErrCredentialsNotFound
		}

		// Удаляем данные
		if err := bucket.Delete(credentialsKey); err != nil {
			return fmt.Errorf("failed to delete credentials: %w", err)
		}

		return nil
	})
}
