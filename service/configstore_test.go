package service

import (
	"path/filepath"
	"testing"

	"lawmitra-backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryConfigStore_RoundTrip(t *testing.T) {
	store := NewMemoryConfigStore()

	cfg, err := store.Get()
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())

	want := models.BackendConfig{
		Kind:                 models.BackendSingleTurn,
		CredentialOrEndpoint: "pplx-secret-key-123",
		LastTestedStatus:     models.StatusUntested,
	}
	require.NoError(t, store.Set(want))

	got, err := store.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.Equal(t, "pplx-secret-key-123", got.CredentialOrEndpoint)
}

func TestMemoryConfigStore_ClearMakesUnconfigured(t *testing.T) {
	store := NewMemoryConfigStore()
	require.NoError(t, store.Set(models.BackendConfig{
		Kind:                 models.BackendWebhook,
		CredentialOrEndpoint: "http://localhost:5005",
	}))

	require.NoError(t, store.Clear())

	cfg, err := store.Get()
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
}

func TestFileConfigStore_RoundTripAcrossInstances(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend_config.json")

	store, err := NewFileConfigStore(path)
	require.NoError(t, err)

	want := models.BackendConfig{
		Kind:                 models.BackendMultiTurn,
		CredentialOrEndpoint: "ds-key-456",
		LastTestedStatus:     models.StatusSuccess,
	}
	require.NoError(t, store.Set(want))

	// A new store on the same path sees the persisted credential
	reopened, err := NewFileConfigStore(path)
	require.NoError(t, err)
	got, err := reopened.Get()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestFileConfigStore_MissingFileMeansUnconfigured(t *testing.T) {
	store, err := NewFileConfigStore(filepath.Join(t.TempDir(), "none.json"))
	require.NoError(t, err)

	cfg, err := store.Get()
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
}

func TestFileConfigStore_Clear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backend_config.json")
	store, err := NewFileConfigStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set(models.BackendConfig{
		Kind:                 models.BackendSingleTurn,
		CredentialOrEndpoint: "key",
	}))
	require.NoError(t, store.Clear())
	// Clearing twice is fine
	require.NoError(t, store.Clear())

	cfg, err := store.Get()
	require.NoError(t, err)
	assert.False(t, cfg.IsConfigured())
}
