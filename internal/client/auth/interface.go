package auth

import (
	"context"

	"github.com/iudanet/routesync/internal/client/storage"
)

//go:generate moq -out service_mock.go . Service

// Service resolves and persists upstream API credentials.
type Service interface {
	// Resolve возвращает учетные данные из окружения или хранилища.
	// Возвращает ErrNoCredentials, если их нет нигде.
	Resolve(ctx context.Context) (*Credentials, error)

	// Login проверяет и сохраняет учетные данные
	Login(ctx context.Context, creds storage.Credentials) (*Credentials, error)

	// Logout удаляет сохраненные учетные данные
	Logout(ctx context.Context) error
}
