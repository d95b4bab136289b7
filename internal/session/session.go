package session

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/seedtoserve/storefront/internal/models"
)

// Session is the logged-in flag plus the cached user profile. The zero value
// is the logged-out state.
type Session struct {
	LoggedIn bool           `json:"loggedIn"`
	Token    string         `json:"token,omitempty"`
	Profile  models.Profile `json:"profile"`
}

// Manager owns the current session and writes every change through to its
// Store, so the in-memory state and the persisted state never diverge.
type Manager struct {
	store   Store
	current Session
}

// NewManager restores the persisted session before first use.
func NewManager(store Store) (*Manager, error) {
	sess, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Manager{store: store, current: sess}, nil
}

func (m *Manager) Current() Session { return m.current }

func (m *Manager) LoggedIn() bool { return m.current.LoggedIn }

// Token returns the bearer token for authenticated API calls, empty when
// logged out.
func (m *Manager) Token() string { return m.current.Token }

// SetSession marks the user logged in and persists token and profile.
func (m *Manager) SetSession(token string, profile models.Profile) error {
	sess := Session{LoggedIn: true, Token: token, Profile: profile}
	if err := m.store.Save(sess); err != nil {
		return err
	}
	m.current = sess
	return nil
}

// ClearSession resets to the logged-out default.
func (m *Manager) ClearSession() error {
	if err := m.store.Clear(); err != nil {
		return err
	}
	m.current = Session{}
	return nil
}

// ProfileFromToken fills display fields from the token's claims without
// verifying the signature. The server remains the authority on every
// authenticated call; these values only label the UI.
func ProfileFromToken(token string) models.Profile {
	var profile models.Profile

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return profile
	}

	if v, ok := claims["email"].(string); ok {
		profile.Email = v
	}
	if v, ok := claims["role"].(string); ok {
		profile.Role = v
	}
	if v, ok := claims["firstName"].(string); ok {
		profile.FirstName = v
	}
	if v, ok := claims["lastName"].(string); ok {
		profile.LastName = v
	}
	return profile
}
