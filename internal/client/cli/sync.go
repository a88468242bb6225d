package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/iudanet/routesync/internal/client/auth"
	"github.com/iudanet/routesync/internal/client/sync"
	"github.com/iudanet/routesync/internal/models"
)

// SyncOptions параметры команды sync
type SyncOptions struct {
	Fixtures string // JSON файл с треками вместо upstream API
	IDs      []string
	Demo     bool // встроенный демонстрационный набор
}

func (c *Cli) fetcher(opts SyncOptions) (sync.TraceFetcher, error) {
	switch {
	case opts.Demo:
		return sync.DemoFixtureFetcher()
	case opts.Fixtures != "":
		return sync.LoadFixtureFile(opts.Fixtures)
	case c.live != nil:
		return c.live, nil
	default:
		return nil, errNotAuthenticated
	}
}

func (c *Cli) runSync(ctx context.Context, opts SyncOptions) error {
	c.io.Println("=== Synchronization ===")
	c.io.Println()

	fetcher, err := c.fetcher(opts)
	if err != nil {
		return err
	}

	var last models.SyncProgress
	result, err := c.orchestrator.Sync(ctx, sync.SyncRequest{
		IDs:     opts.IDs,
		Fetcher: fetcher,
		OnProgress: func(p models.SyncProgress) {
			if p == last {
				return
			}
			last = p
			c.printProgress(p)
		},
	})
	if err != nil {
		if errors.Is(err, auth.ErrNoCredentials) {
			return errNotAuthenticated
		}
		return fmt.Errorf("synchronization failed: %w", err)
	}

	c.io.Println()
	switch {
	case result.Cancelled:
		c.io.Println("Synchronization cancelled.")
		return nil
	case result.Discarded:
		c.io.Println("Results discarded: sync state was reset while this run was in progress.")
		return nil
	case result.Error != nil:
		return fmt.Errorf("synchronization failed: %w", result.Error)
	}

	c.io.Println("✓ Synchronization completed successfully!")
	c.io.Println()
	c.io.Printf("Synced activities:  %d\n", len(result.SyncedIDs))
	if result.Skipped > 0 {
		c.io.Printf("Skipped (no GPS):   %d\n", result.Skipped)
	}
	detection := string(result.DetectionStatus)
	if result.DetectionTimedOut {
		detection += " (timed out)"
	}
	c.io.Printf("Section detection:  %s\n", detection)

	return nil
}

func (c *Cli) printProgress(p models.SyncProgress) {
	if p.Total > 0 {
		c.io.Printf("[%s] %s %d/%d\n", p.Status, p.Message, p.Completed, p.Total)
		return
	}
	c.io.Printf("[%s] %s\n", p.Status, p.Message)
}

func (c *Cli) runReset(ctx context.Context) error {
	c.io.Println("=== Reset ===")

	if err := c.orchestrator.Reset(ctx); err != nil {
		return fmt.Errorf("reset failed: %w", err)
	}

	c.io.Println("✓ Cached signatures, bounds and sync range cleared.")
	return nil
}
