package storage

import (
	"context"

	"github.com/iudanet/routesync/internal/models"
)

// SignatureStorage defines interface for caching route signatures on client
type SignatureStorage interface {
	// SaveSignature stores or replaces a signature keyed by activity id
	SaveSignature(ctx context.Context, sig *models.RouteSignature) error

	// GetSignature retrieves a signature by activity id
	// Returns ErrSignatureNotFound if missing; an unreadable record is removed
	// and reported as missing so the caller recomputes it
	GetSignature(ctx context.Context, activityID string) (*models.RouteSignature, error)

	// ListSignatures returns all readable signatures
	ListSignatures(ctx context.Context) ([]*models.RouteSignature, error)
}

// BoundsStorage defines interface for caching activity bounds on client
type BoundsStorage interface {
	// SaveBounds stores bounds of an activity trace
	SaveBounds(ctx context.Context, activityID string, b models.Bounds) error

	// GetBounds retrieves bounds by activity id
	// Returns ErrBoundsNotFound if missing or unreadable
	GetBounds(ctx context.Context, activityID string) (models.Bounds, error)
}
