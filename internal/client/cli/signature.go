package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/engine"
	"github.com/iudanet/routesync/internal/validation"
)

func (c *Cli) runSignature(ctx context.Context, activityID string, asJSON bool) error {
	if err := validation.ValidateActivityID(activityID); err != nil {
		return fmt.Errorf("invalid activity id: %w", err)
	}

	sig, err := c.store.GetSignature(ctx, activityID)
	if err != nil {
		if errors.Is(err, storage.ErrSignatureNotFound) {
			return fmt.Errorf("no cached signature for activity %s. Run 'routesync sync' first", activityID)
		}
		return fmt.Errorf("failed to get signature: %w", err)
	}

	if asJSON {
		enc := json.NewEncoder(c.io)
		enc.SetIndent("", "  ")
		return enc.Encode(sig)
	}

	c.io.Printf("=== Signature %s ===\n", sig.ActivityID)
	c.io.Printf("Points:      %d\n", len(sig.Points))
	c.io.Printf("Distance:    %s\n", formatDistance(sig.Distance))
	c.io.Printf("Loop:        %t\n", sig.IsLoop)
	c.io.Printf("Start cell:  %s\n", sig.StartRegionHash)
	c.io.Printf("End cell:    %s\n", sig.EndRegionHash)
	c.io.Printf("Center:      %.5f, %.5f\n", sig.Center.Lat, sig.Center.Lng)
	c.io.Printf("Bounds:      %.5f..%.5f, %.5f..%.5f\n",
		sig.Bounds.MinLat, sig.Bounds.MaxLat, sig.Bounds.MinLng, sig.Bounds.MaxLng)
	if sig.ElevationGain != nil {
		c.io.Printf("Elevation:   %.0f m\n", *sig.ElevationGain)
	}
	c.io.Printf("Digest:      %s\n", sig.TraceDigest)
	return nil
}

func (c *Cli) runGroups(ctx context.Context) error {
	if c.groups == nil {
		return engine.ErrEngineUnavailable
	}

	groups, err := c.groups.Groups(ctx)
	if err != nil {
		return fmt.Errorf("failed to list route groups: %w", err)
	}

	c.io.Println("=== Route groups ===")
	if len(groups) == 0 {
		c.io.Println("No repeated routes found yet.")
		return nil
	}
	for _, g := range groups {
		c.io.Printf("%s  %d activities: %s\n", g.ID, len(g.ActivityIDs), strings.Join(g.ActivityIDs, ", "))
	}
	return nil
}
