package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/iudanet/routesync/internal/client/auth"
)

func (c *Cli) runStatus(ctx context.Context) error {
	c.io.Println("=== Status ===")
	c.io.Println()

	creds, err := c.authService.Resolve(ctx)
	switch {
	case errors.Is(err, auth.ErrNoCredentials):
		c.io.Println("Authentication: Not authenticated")
		c.io.Println("Run 'routesync login' to authenticate.")
	case errors.Is(err, auth.ErrTokenExpired):
		c.io.Println("Authentication: ⚠️  Access token has expired. Please login again.")
	case err != nil:
		return fmt.Errorf("failed to check authentication: %w", err)
	default:
		c.io.Printf("Authentication: %s (athlete %s)\n", creds.Kind(), creds.AthleteID)
	}
	c.io.Println()

	ts, err := c.store.GetLastSyncTimestamp(ctx)
	if err != nil {
		return fmt.Errorf("failed to get last sync time: %w", err)
	}
	if ts == 0 {
		c.io.Println("Last sync:        never")
	} else {
		c.io.Printf("Last sync:        %s\n", time.Unix(ts, 0).UTC().Format(time.RFC3339))
	}

	synced, err := c.store.GetSyncedRange(ctx)
	if err != nil {
		return fmt.Errorf("failed to get synced range: %w", err)
	}
	if synced.IsZero() {
		c.io.Println("Synced range:     nothing synced yet")
	} else {
		c.io.Printf("Synced range:     %s .. %s\n", formatDate(synced.Oldest), formatDate(synced.Newest))
	}

	sigs, err := c.store.ListSignatures(ctx)
	if err != nil {
		// Не прерываем выполнение, просто сообщаем
		c.io.Printf("\nWarning: Failed to list cached signatures: %v\n", err)
		return nil
	}
	c.io.Printf("Cached signatures: %d\n", len(sigs))

	if c.engine == nil {
		c.io.Println()
		c.io.Println("⚠️  Route engine is not available.")
	}
	return nil
}
