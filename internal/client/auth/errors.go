package auth

import "errors"

var (
	// ErrNoCredentials нет ни ключа API, ни токена: синхронизация с сервером невозможна
	ErrNoCredentials = errors.New("no credentials available")
	// ErrTokenExpired срок действия bearer токена истек
	ErrTokenExpired = errors.New("access token expired")
	// ErrInvalidCredentials учетные данные заполнены некорректно
	ErrInvalidCredentials = errors.New("invalid credentials")
)
