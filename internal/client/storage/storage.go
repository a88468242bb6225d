package storage

import "context"

//go:generate moq -out syncstorage_mock.go . SyncStorage

// SyncStorage is everything the sync cycle persists after a successful ingest.
type SyncStorage interface {
	SignatureStorage
	BoundsStorage
	MetadataStorage

	// Clear removes cached signatures, bounds and the synced range.
	// Credentials are kept.
	Clear(ctx context.Context) error
}
