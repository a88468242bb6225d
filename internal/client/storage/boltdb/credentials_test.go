package boltdb

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iudanet/routesync/internal/client/storage"
)

func TestCredentials_SaveGetDelete(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	_, err := store.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)

	creds := &storage.Credentials{APIKey: "secret-key", AthleteID: "i123"}
	require.NoError(t, store.SaveCredentials(ctx, creds))

	got, err := store.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, creds, got)

	// сохранение заменяет предыдущие данные
	require.NoError(t, store.SaveCredentials(ctx, &storage.Credentials{AccessToken: "tok", AthleteID: "0"}))
	got, err = store.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Empty(t, got.APIKey)
	assert.Equal(t, "tok", got.AccessToken)

	require.NoError(t, store.DeleteCredentials(ctx))
	_, err = store.GetCredentials(ctx)
	assert.ErrorIs(t, err, storage.ErrCredentialsNotFound)

	// повторное удаление
	assert.ErrorIs(t, store.DeleteCredentials(ctx), storage.ErrCredentialsNotFound)
}

func TestGetCredentials_Corrupt(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	putRaw(t, store, bucketCredentials, string(credentialsKey), []byte("{"))
	_, err := store.GetCredentials(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal credentials")
}
