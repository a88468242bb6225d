package cli

import (
	"context"
	"fmt"

	"github.com/iudanet/routesync/internal/client/storage"
)

// LoginOptions учетные данные из флагов; пустые значения запрашиваются интерактивно
type LoginOptions struct {
	APIKey      string
	AccessToken string
	AthleteID   string
}

func (c *Cli) runLogin(ctx context.Context, opts LoginOptions) error {
	c.io.Println("=== Login ===")
	c.io.Println()

	creds := storage.Credentials{
		APIKey:      opts.APIKey,
		AccessToken: opts.AccessToken,
		AthleteID:   opts.AthleteID,
	}

	if creds.APIKey == "" && creds.AccessToken == "" {
		key, err := c.io.ReadSecret("API key (empty to use an access token): ")
		if err != nil {
			return fmt.Errorf("failed to read API key: %w", err)
		}
		creds.APIKey = key

		if creds.APIKey == "" {
			token, err := c.io.ReadSecret("Access token: ")
			if err != nil {
				return fmt.Errorf("failed to read access token: %w", err)
			}
			creds.AccessToken = token
		}

		if creds.AthleteID == "" {
			athlete, err := c.io.ReadInput("Athlete ID (empty for the key owner): ")
			if err != nil {
				return fmt.Errorf("failed to read athlete id: %w", err)
			}
			creds.AthleteID = athlete
		}
	}

	saved, err := c.authService.Login(ctx, creds)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	c.io.Println()
	c.io.Println("✓ Login successful!")
	c.io.Printf("Auth method: %s\n", saved.Kind())
	c.io.Printf("Athlete:     %s\n", saved.AthleteID)

	return nil
}

func (c *Cli) runLogout(ctx context.Context) error {
	c.io.Println("=== Logout ===")

	if err := c.authService.Logout(ctx); err != nil {
		return fmt.Errorf("logout failed: %w", err)
	}

	c.io.Println("✓ Logout successful!")
	c.io.Println("Stored credentials have been deleted.")

	return nil
}
