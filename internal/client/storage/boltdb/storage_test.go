package boltdb

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.etcd.io/bbolt"

	"github.com/iudanet/routesync/internal/client/storage"
	"github.com/iudanet/routesync/internal/models"
)

// createTestStorage создает временное BoltDB хранилище и инициализирует buckets
func createTestStorage(t *testing.T) *Storage {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "routesync_test.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)

	t.Cleanup(func() {
		require.NoError(t, store.Close())
	})
	return store
}

var allBuckets = [][]byte{bucketSignatures, bucketBounds, bucketMetadata, bucketCredentials}

func TestNew_Success(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "testdb.db")

	ctx := context.Background()
	store, err := New(ctx, dbPath)
	require.NoError(t, err)
	require.NotNil(t, store)
	defer func() {
		require.NoError(t, store.Close())
	}()

	// Проверяем что файл БД действительно создан
	info, err := os.Stat(dbPath)
	require.NoError(t, err)
	assert.False(t, info.IsDir())

	// Проверяем, что бакеты существуют
	err = store.db.View(func(tx *bbolt.Tx) error {
		for _, b := range allBuckets {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	require.NoError(t, err)
}

func TestNew_InvalidPath(t *testing.T) {
	// Каталог, которого не существует
	invalidPath := filepath.Join(t.TempDir(), "missing", "dir", "db.db")
	store, err := New(context.Background(), invalidPath)
	assert.Error(t, err)
	assert.Nil(t, store)
}

func TestClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	store, err := New(context.Background(), dbPath)
	require.NoError(t, err)

	// Закрываем БД
	assert.NoError(t, store.Close())
	assert.Nil(t, store.db)

	// Второй вызов Close ничего не делает
	assert.NoError(t, store.Close())
}

func TestStorage_UseAfterClose(t *testing.T) {
	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "testdb.db"))
	require.NoError(t, err)
	require.NoError(t, store.Close())

	calls := map[string]func() error{
		"SaveSignature": func() error { return store.SaveSignature(ctx, testSignature("a1")) },
		"GetSignature": func() error {
			_, err := store.GetSignature(ctx, "a1")
			return err
		},
		"ListSignatures": func() error {
			_, err := store.ListSignatures(ctx)
			return err
		},
		"SaveBounds": func() error { return store.SaveBounds(ctx, "a1", models.Bounds{}) },
		"GetBounds": func() error {
			_, err := store.GetBounds(ctx, "a1")
			return err
		},
		"SaveLastSyncTimestamp": func() error { return store.SaveLastSyncTimestamp(ctx, 1) },
		"GetLastSyncTimestamp": func() error {
			_, err := store.GetLastSyncTimestamp(ctx)
			return err
		},
		"UpdateSyncedRange": func() error {
			now := time.Now()
			return store.UpdateSyncedRange(ctx, storage.SyncRange{Oldest: now, Newest: now})
		},
		"GetSyncedRange": func() error {
			_, err := store.GetSyncedRange(ctx)
			return err
		},
		"SaveCredentials": func() error { return store.SaveCredentials(ctx, &storage.Credentials{APIKey: "k"}) },
		"GetCredentials": func() error {
			_, err := store.GetCredentials(ctx)
			return err
		},
		"DeleteCredentials": func() error { return store.DeleteCredentials(ctx) },
		"Clear":             func() error { return store.Clear(ctx) },
	}

	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			var err error
			require.NotPanics(t, func() { err = call() })
			assert.ErrorIs(t, err, storage.ErrStorageClosed)
		})
	}
}

func TestWithLogger_CorruptRecordWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := context.Background()
	store, err := New(ctx, filepath.Join(t.TempDir(), "testdb.db"), WithLogger(logger))
	require.NoError(t, err)
	defer func() {
		require.NoError(t, store.Close())
	}()

	putRaw(t, store, bucketSignatures, "a1", []byte("{"))
	_, err = store.GetSignature(ctx, "a1")
	assert.ErrorIs(t, err, storage.ErrSignatureNotFound)
	assert.Contains(t, buf.String(), "Dropping unreadable cached signature")
	assert.Contains(t, buf.String(), "activity_id=a1")
}

func TestInitBuckets_CreatesBuckets(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "testdb.db")

	// Открываем БД вручную без создания бакетов
	db, err := bbolt.Open(dbPath, 0600, nil)
	require.NoError(t, err)
	defer db.Close()

	store := &Storage{db: db}
	require.NoError(t, store.initBuckets())

	err = db.View(func(tx *bbolt.Tx) error {
		for _, b := range allBuckets {
			if tx.Bucket(b) == nil {
				return os.ErrNotExist
			}
		}
		return nil
	})
	assert.NoError(t, err)
}

func TestClear_KeepsCredentials(t *testing.T) {
	ctx := context.Background()
	store := createTestStorage(t)

	sig := testSignature("a1")
	require.NoError(t, store.SaveSignature(ctx, sig))
	require.NoError(t, store.SaveBounds(ctx, "a1", sig.Bounds))
	require.NoError(t, store.UpdateSyncedRange(ctx, storage.SyncRange{
		Oldest: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Newest: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, store.SaveLastSyncTimestamp(ctx, 42))
	require.NoError(t, store.SaveCredentials(ctx, &storage.Credentials{APIKey: "k", AthleteID: "0"}))

	require.NoError(t, store.Clear(ctx))

	_, err := store.GetSignature(ctx, "a1")
	assert.ErrorIs(t, err, storage.ErrSignatureNotFound)
	_, err = store.GetBounds(ctx, "a1")
	assert.ErrorIs(t, err, storage.ErrBoundsNotFound)

	r, err := store.GetSyncedRange(ctx)
	require.NoError(t, err)
	assert.True(t, r.IsZero())

	ts, err := store.GetLastSyncTimestamp(ctx)
	require.NoError(t, err)
	assert.Zero(t, ts)

	creds, err := store.GetCredentials(ctx)
	require.NoError(t, err)
	assert.Equal(t, "k", creds.APIKey)
}

func testSignature(id string) *models.RouteSignature {
	gain := 120.5
	return &models.RouteSignature{
		ActivityID:      id,
		Points:          models.Polyline{{Lat: 46.0, Lng: 6.1}, {Lat: 46.01, Lng: 6.11}, {Lat: 46.02, Lng: 6.12}},
		Distance:        2700,
		Bounds:          models.Bounds{MinLat: 46.0, MaxLat: 46.02, MinLng: 6.1, MaxLng: 6.12},
		Center:          models.RoutePoint{Lat: 46.01, Lng: 6.11},
		StartRegionHash: "10227_1356",
		EndRegionHash:   "10231_1360",
		ElevationGain:   &gain,
		TraceDigest:     "abc",
	}
}
