package session

import (
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtoserve/storefront/internal/models"
)

func TestManagerWriteThrough(t *testing.T) {
	store := NewMemoryStore()
	m, err := NewManager(store)
	require.NoError(t, err)
	assert.False(t, m.LoggedIn())

	profile := models.Profile{Email: "farmer@example.com", Role: "FARMER"}
	require.NoError(t, m.SetSession("token-123", profile))
	assert.True(t, m.LoggedIn())
	assert.Equal(t, "token-123", m.Token())

	// A fresh manager over the same store sees the persisted session.
	restored, err := NewManager(store)
	require.NoError(t, err)
	assert.True(t, restored.LoggedIn())
	assert.Equal(t, profile, restored.Current().Profile)

	require.NoError(t, m.ClearSession())
	assert.False(t, m.LoggedIn())
	assert.Empty(t, m.Token())

	cleared, err := NewManager(store)
	require.NoError(t, err)
	assert.False(t, cleared.LoggedIn())
}

func TestFileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "session.json")
	store := NewFileStore(path)

	// Missing file means logged out, not an error.
	sess, err := store.Load()
	require.NoError(t, err)
	assert.False(t, sess.LoggedIn)

	want := Session{
		LoggedIn: true,
		Token:    "abc",
		Profile:  models.Profile{Email: "a@b.com", Role: "BUYER"},
	}
	require.NoError(t, store.Save(want))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	require.NoError(t, store.Clear())
	sess, err = store.Load()
	require.NoError(t, err)
	assert.False(t, sess.LoggedIn)

	// Clearing twice is fine.
	require.NoError(t, store.Clear())
}

func TestProfileFromToken(t *testing.T) {
	claims := jwt.MapClaims{
		"email":     "farmer@example.com",
		"role":      "FARMER",
		"firstName": "Alice",
		"lastName":  "Greenfield",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)

	profile := ProfileFromToken(token)
	assert.Equal(t, "farmer@example.com", profile.Email)
	assert.Equal(t, "FARMER", profile.Role)
	assert.Equal(t, "Alice", profile.FirstName)
	assert.Equal(t, "Greenfield", profile.LastName)
}

func TestProfileFromGarbageToken(t *testing.T) {
	assert.Equal(t, models.Profile{}, ProfileFromToken("not-a-jwt"))
}
