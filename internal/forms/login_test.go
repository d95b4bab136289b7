package forms

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/session"
	"github.com/seedtoserve/storefront/internal/validation"
)

// newAPIServer fakes the backend with a fixed status and body, counting the
// requests it receives.
func newAPIServer(t *testing.T, status int, body any) (*api.Client, *int) {
	t.Helper()
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		require.NoError(t, json.NewEncoder(w).Encode(body))
	}))
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL, 5*time.Second), &calls
}

func newSessions(t *testing.T) *session.Manager {
	t.Helper()
	m, err := session.NewManager(session.NewMemoryStore())
	require.NoError(t, err)
	return m
}

func TestLoginBuyerDestination(t *testing.T) {
	client, _ := newAPIServer(t, http.StatusOK, map[string]string{
		"token":   "tok-1",
		"role":    "BUYER",
		"message": "Login successful",
	})
	sessions := newSessions(t)

	form := NewLoginForm(client, sessions)
	form.SetDraft(LoginDraft{Email: "buyer@example.com", Password: "secret1"})

	result, err := form.Submit(context.Background())
	require.NoError(t, err)
	assert.Equal(t, DestinationBuyer, result.Destination)
	assert.Equal(t, "Login successful", result.Message)

	assert.True(t, sessions.LoggedIn())
	assert.Equal(t, "tok-1", sessions.Token())
	assert.Equal(t, "BUYER", sessions.Current().Profile.Role)
}

func TestLoginAnyOtherRoleGoesToFarmerDestination(t *testing.T) {
	for _, role := range []string{"FARMER", "ADMIN", ""} {
		client, _ := newAPIServer(t, http.StatusOK, map[string]string{
			"token": "tok-2",
			"role":  role,
		})
		form := NewLoginForm(client, newSessions(t))
		form.SetDraft(LoginDraft{Email: "farmer@example.com", Password: "secret1"})

		result, err := form.Submit(context.Background())
		require.NoError(t, err)
		assert.Equal(t, DestinationFarmer, result.Destination, "role %q", role)
	}
}

func TestLoginFailureLeavesSessionLoggedOut(t *testing.T) {
	client, _ := newAPIServer(t, http.StatusUnauthorized, map[string]string{
		"message": "invalid email or password",
	})
	sessions := newSessions(t)

	form := NewLoginForm(client, sessions)
	form.SetDraft(LoginDraft{Email: "buyer@example.com", Password: "wrongpass"})

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "invalid email or password", api.UserMessage(err))
	assert.False(t, sessions.LoggedIn())
}

func TestLoginValidationBlocksNetwork(t *testing.T) {
	client, calls := newAPIServer(t, http.StatusOK, map[string]string{})

	form := NewLoginForm(client, newSessions(t))
	form.SetDraft(LoginDraft{Email: "not-an-email", Password: "short"})

	_, err := form.Submit(context.Background())
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs, "email")
	assert.Contains(t, verrs, "password")
	assert.Zero(t, *calls, "invalid draft must not reach the network")
}

func TestLoginTransportErrorIsGeneric(t *testing.T) {
	client := api.NewClient("http://127.0.0.1:1", 500*time.Millisecond)

	form := NewLoginForm(client, newSessions(t))
	form.SetDraft(LoginDraft{Email: "buyer@example.com", Password: "secret1"})

	_, err := form.Submit(context.Background())
	require.Error(t, err)
	assert.Equal(t, "Server error", api.UserMessage(err))
}
