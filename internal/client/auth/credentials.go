package auth

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/iudanet/routesync/internal/client/api"
	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/validation"
)

// apiKeyUser имя пользователя для Basic авторизации по ключу API
const apiKeyUser = "API_KEY"

// CurrentAthlete id атлета, которому принадлежит ключ
const CurrentAthlete = "0"

// Credentials учетные данные upstream API.
// Используется либо ключ API (Basic), либо bearer токен.
type Credentials struct {
	storage.Credentials
	now func() time.Time
}

var _ api.Authenticator = (*Credentials)(nil)

// NewCredentials нормализует и проверяет учетные данные.
func NewCredentials(c storage.Credentials) (*Credentials, error) {
	c.APIKey = strings.TrimSpace(c.APIKey)
	c.AccessToken = strings.TrimSpace(c.AccessToken)
	if c.AthleteID == "" {
		c.AthleteID = CurrentAthlete
	}

	if c.APIKey == "" && c.AccessToken == "" {
		return nil, ErrNoCredentials
	}
	if c.APIKey != "" && c.AccessToken != "" {
		return nil, fmt.Errorf("%w: api key and access token are mutually exclusive", ErrInvalidCredentials)
	}
	if err := validation.ValidateAthleteID(c.AthleteID); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCredentials, err)
	}

	return &Credentials{Credentials: c, now: time.Now}, nil
}

// Authenticate добавляет заголовок Authorization к запросу.
func (c *Credentials) Authenticate(req *http.Request) error {
	if c.APIKey != "" {
		token := base64.StdEncoding.EncodeToString([]byte(apiKeyUser + ":" + c.APIKey))
		req.Header.Set("Authorization", "Basic "+token)
		return nil
	}

	if err := c.CheckExpiry(); err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+c.AccessToken)
	return nil
}

// CheckExpiry проверяет exp claim, если токен является JWT.
// Подпись не проверяется: ее проверяет сервер, клиент только избегает заведомо
// отклоняемых запросов. Непрозрачные токены считаются действительными.
func (c *Credentials) CheckExpiry() error {
	if c.AccessToken == "" {
		return nil
	}

	claims := jwt.RegisteredClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(c.AccessToken, &claims); err != nil {
		return nil
	}
	if claims.ExpiresAt != nil && !c.now().Before(claims.ExpiresAt.Time) {
		return fmt.Errorf("%w at %s", ErrTokenExpired, claims.ExpiresAt.Time.Format(time.RFC3339))
	}
	return nil
}

// Kind описание способа авторизации для вывода пользователю
func (c *Credentials) Kind() string {
	if c.APIKey != "" {
		return "api key"
	}
	return "access token"
}
