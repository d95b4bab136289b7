package forms

import (
	"context"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/logging"
	"github.com/seedtoserve/storefront/internal/session"
	"github.com/seedtoserve/storefront/internal/validation"
)

// Role-based landing destinations. The server decides the role; the client
// only routes on it.
const (
	DestinationBuyer  = "/buyer-popup"
	DestinationFarmer = "/farmer-popup"
)

type LoginDraft struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LoginForm drives the sign-in flow: validate, call the API, store the
// session, pick a destination from the returned role.
type LoginForm struct {
	client   *api.Client
	sessions *session.Manager
	draft    LoginDraft
	inFlight bool
}

func NewLoginForm(client *api.Client, sessions *session.Manager) *LoginForm {
	return &LoginForm{client: client, sessions: sessions}
}

func (f *LoginForm) Draft() LoginDraft { return f.draft }

func (f *LoginForm) SetDraft(d LoginDraft) { f.draft = d }

func (f *LoginForm) InFlight() bool { return f.inFlight }

// LoginResult is what the UI needs after a successful sign-in.
type LoginResult struct {
	Destination string
	Message     string
}

// Submit validates the draft and performs the login call. Validation failure
// returns validation.Errors and never reaches the network. On any failure the
// session is left untouched.
func (f *LoginForm) Submit(ctx context.Context) (*LoginResult, error) {
	if f.inFlight {
		return nil, ErrSubmitInFlight
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	if err := validation.Validate(f.draft); err != nil {
		return nil, err
	}

	resp, err := f.client.Login(ctx, api.LoginRequest{
		Email:    f.draft.Email,
		Password: f.draft.Password,
	})
	if err != nil {
		logging.FromContext(ctx).Warn("login rejected", "error", err)
		return nil, err
	}

	profile := session.ProfileFromToken(resp.Token)
	if profile.Email == "" {
		profile.Email = f.draft.Email
	}
	if resp.Role != "" {
		profile.Role = resp.Role
	}
	if err := f.sessions.SetSession(resp.Token, profile); err != nil {
		return nil, err
	}

	destination := DestinationFarmer
	if resp.Role == "BUYER" {
		destination = DestinationBuyer
	}

	message := resp.Message
	if message == "" {
		message = "Login successful!"
	}
	return &LoginResult{Destination: destination, Message: message}, nil
}
