package session

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	store := NewStore()
	userID := uuid.New()

	created, err := store.Create(userID, "u@example.com", "User", "")
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, "u@example.com", got.Email)
}

func TestStoreGetUnknownID(t *testing.T) {
	store := NewStore()

	got, err := store.Get("nope")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStoreExpiry(t *testing.T) {
	store := NewStore()

	created, err := store.Create(uuid.New(), "u@example.com", "User", "")
	require.NoError(t, err)
	created.ExpiresAt = time.Now().Add(-time.Minute)

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got, "expired sessions behave as unknown")

	store.CleanupExpired()
	store.mu.RLock()
	defer store.mu.RUnlock()
	assert.NotContains(t, store.sessions, created.ID)
}

func TestStoreDelete(t *testing.T) {
	store := NewStore()

	created, err := store.Create(uuid.New(), "u@example.com", "User", "")
	require.NoError(t, err)

	require.NoError(t, store.Delete(created.ID))

	got, err := store.Get(created.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is harmless
	require.NoError(t, store.Delete(created.ID))
}
