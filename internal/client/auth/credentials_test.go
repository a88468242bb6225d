package auth

import (
	"encoding/base64"
	"net/http"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/routesync/internal/client/storage"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "i123",
		ExpiresAt: jwt.NewNumericDate(exp),
	})
	s, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestNewCredentials(t *testing.T) {
	tests := []struct {
		wantErr error
		name    string
		in      storage.Credentials
		athlete string
	}{
		{name: "api key defaults athlete", in: storage.Credentials{APIKey: " key "}, athlete: CurrentAthlete},
		{name: "token with athlete", in: storage.Credentials{AccessToken: "tok", AthleteID: "i42"}, athlete: "i42"},
		{name: "nothing", in: storage.Credentials{AthleteID: "i42"}, wantErr: ErrNoCredentials},
		{name: "both", in: storage.Credentials{APIKey: "k", AccessToken: "t"}, wantErr: ErrInvalidCredentials},
		{name: "bad athlete", in: storage.Credentials{APIKey: "k", AthleteID: "../x"}, wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewCredentials(tt.in)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, c)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.athlete, c.AthleteID)
		})
	}
}

func TestCredentials_AuthenticateAPIKey(t *testing.T) {
	c, err := NewCredentials(storage.Credentials{APIKey: "secret"})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	require.NoError(t, c.Authenticate(req))

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("API_KEY:secret"))
	assert.Equal(t, want, req.Header.Get("Authorization"))
	assert.Equal(t, "api key", c.Kind())

	user, pass, ok := req.BasicAuth()
	require.True(t, ok)
	assert.Equal(t, "API_KEY", user)
	assert.Equal(t, "secret", pass)
}

func TestCredentials_AuthenticateBearer(t *testing.T) {
	token := signedToken(t, time.Now().Add(time.Hour))
	c, err := NewCredentials(storage.Credentials{AccessToken: token})
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	require.NoError(t, c.Authenticate(req))

	assert.Equal(t, "Bearer "+token, req.Header.Get("Authorization"))
	assert.Equal(t, "access token", c.Kind())
}

func TestCredentials_ExpiredToken(t *testing.T) {
	token := signedToken(t, time.Now().Add(-time.Minute))
	c, err := NewCredentials(storage.Credentials{AccessToken: token})
	require.NoError(t, err)

	assert.ErrorIs(t, c.CheckExpiry(), ErrTokenExpired)

	req, err := http.NewRequest(http.MethodGet, "http://example.com", nil)
	require.NoError(t, err)
	assert.ErrorIs(t, c.Authenticate(req), ErrTokenExpired)
	assert.Empty(t, req.Header.Get("Authorization"))
}

func TestCredentials_ExpiryUsesClock(t *testing.T) {
	exp := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	c, err := NewCredentials(storage.Credentials{AccessToken: signedToken(t, exp)})
	require.NoError(t, err)

	c.now = func() time.Time { return exp.Add(-time.Second) }
	assert.NoError(t, c.CheckExpiry())

	c.now = func() time.Time { return exp }
	assert.ErrorIs(t, c.CheckExpiry(), ErrTokenExpired)
}

func TestCredentials_OpaqueTokenAccepted(t *testing.T) {
	c, err := NewCredentials(storage.Credentials{AccessToken: "opaque-oauth-token"})
	require.NoError(t, err)
	assert.NoError(t, c.CheckExpiry())
}
