package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/iudanet/routesync/internal/client/storage"
)

// Переменные окружения имеют приоритет над сохраненными данными.
const (
	EnvAPIKey      = "ROUTESYNC_API_KEY"
	EnvAccessToken = "ROUTESYNC_ACCESS_TOKEN"
	EnvAthleteID   = "ROUTESYNC_ATHLETE_ID"
)

// CredentialsService реализует Service поверх storage.CredentialsStorage
type CredentialsService struct {
	store     storage.CredentialsStorage
	lookupEnv func(string) (string, bool)
	logger    *slog.Logger
}

var _ Service = (*CredentialsService)(nil)

// NewService создает новый сервис авторизации
func NewService(store storage.CredentialsStorage, logger *slog.Logger) *CredentialsService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CredentialsService{
		store:     store,
		lookupEnv: os.LookupEnv,
		logger:    logger,
	}
}

// Resolve возвращает учетные данные: сначала окружение, затем хранилище
func (s *CredentialsService) Resolve(ctx context.Context) (*Credentials, error) {
	if creds, ok := s.fromEnv(); ok {
		c, err := NewCredentials(creds)
		if err != nil {
			return nil, fmt.Errorf("credentials from environment: %w", err)
		}
		s.logger.Debug("Using credentials from environment", "kind", c.Kind())
		return c, nil
	}

	if s.store == nil {
		return nil, ErrNoCredentials
	}

	stored, err := s.store.GetCredentials(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			return nil, ErrNoCredentials
		}
		return nil, fmt.Errorf("failed to load credentials: %w", err)
	}

	c, err := NewCredentials(*stored)
	if err != nil {
		return nil, fmt.Errorf("stored credentials: %w", err)
	}
	if err := c.CheckExpiry(); err != nil {
		return nil, err
	}
	return c, nil
}

// Login проверяет и сохраняет учетные данные
func (s *CredentialsService) Login(ctx context.Context, creds storage.Credentials) (*Credentials, error) {
	c, err := NewCredentials(creds)
	if err != nil {
		return nil, err
	}
	if err := c.CheckExpiry(); err != nil {
		return nil, err
	}

	if err := s.store.SaveCredentials(ctx, &c.Credentials); err != nil {
		return nil, fmt.Errorf("failed to save credentials: %w", err)
	}

	s.logger.Info("Credentials saved", "kind", c.Kind(), "athlete_id", c.AthleteID)
	return c, nil
}

// Logout удаляет сохраненные учетные данные. Отсутствие данных ошибкой не считается.
func (s *CredentialsService) Logout(ctx context.Context) error {
	if err := s.store.DeleteCredentials(ctx); err != nil {
		if errors.Is(err, storage.ErrCredentialsNotFound) {
			s.logger.Debug("No credentials to delete")
			return nil
		}
		return fmt.Errorf("failed to delete credentials: %w", err)
	}
	return nil
}

func (s *CredentialsService) fromEnv() (storage.Credentials, bool) {
	key, _ := s.lookupEnv(EnvAPIKey)
	token, _ := s.lookupEnv(EnvAccessToken)
	if key == "" && token == "" {
		return storage.Credentials{}, false
	}
	athlete, _ := s.lookupEnv(EnvAthleteID)
	return storage.Credentials{APIKey: key, AccessToken: token, AthleteID: athlete}, true
}
