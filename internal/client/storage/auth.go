package storage

import (
	"context"
)

// CredentialsStorage defines interface for storing upstream API credentials on client
type CredentialsStorage interface {
	// SaveCredentials stores credentials, replacing previous ones
	SaveCredentials(ctx context.Context, creds *Credentials) error

	// GetCredentials retrieves stored credentials
	// Returns ErrCredentialsNotFound if nothing was saved
	GetCredentials(ctx context.Context) (*Credentials, error)

	// DeleteCredentials removes stored credentials (logout)
	DeleteCredentials(ctx context.Context) error
}

// Credentials represents upstream API credentials in storage.
// Either APIKey or AccessToken is set; AthleteID "0" means the key owner.
type Credentials struct {
	APIKey      string `json:"api_key,omitempty"`
	AthleteID   string `json:"athlete_id"`
	AccessToken string `json:"access_token,omitempty"`
}
