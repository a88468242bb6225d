package storage

import (
	"context"
	"time"
)

// SyncRange is the span of activity start dates already ingested.
type SyncRange struct {
	Oldest time.Time `json:"oldest"`
	Newest time.Time `json:"newest"`
}

// IsZero reports whether nothing was synced yet.
func (r SyncRange) IsZero() bool {
	return r.Oldest.IsZero() && r.Newest.IsZero()
}

// Merge extends the range so it covers both r and other.
func (r SyncRange) Merge(other SyncRange) SyncRange {
	if other.IsZero() {
		return r
	}
	if r.IsZero() {
		return other
	}
	out := r
	if other.Oldest.Before(out.Oldest) {
		out.Oldest = other.Oldest
	}
	if other.Newest.After(out.Newest) {
		out.Newest = other.Newest
	}
	return out
}

// MetadataStorage defines interface for storing client metadata
type MetadataStorage interface {
	// SaveLastSyncTimestamp saves the timestamp of the last successful sync
	SaveLastSyncTimestamp(ctx context.Context, timestamp int64) error

	// GetLastSyncTimestamp retrieves the timestamp of the last successful sync
	// Returns 0 if no sync has been performed yet
	GetLastSyncTimestamp(ctx context.Context) (int64, error)

	// UpdateSyncedRange extends the stored synced range with r (min of oldest, max of newest)
	UpdateSyncedRange(ctx context.Context, r SyncRange) error

	// GetSyncedRange returns the stored synced range
	// Returns a zero range if nothing was synced or the record is unreadable
	GetSyncedRange(ctx context.Context) (SyncRange, error)
}
