package forms

import (
	"context"

	"github.com/seedtoserve/storefront/internal/api"
	"github.com/seedtoserve/storefront/internal/logging"
	"github.com/seedtoserve/storefront/internal/validation"
)

type RegisterDraft struct {
	RegistrationType string `json:"registrationType" validate:"required,oneof=Farmer Buyer"`
	FirstName        string `json:"firstName" validate:"required,min=3"`
	LastName         string `json:"lastName" validate:"required,min=3"`
	Email            string `json:"email" validate:"required,email"`
	Password         string `json:"password" validate:"required,min=6"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

// RegisterForm drives account creation. On success the draft resets to
// defaults and the user is pointed at the login screen.
type RegisterForm struct {
	client   *api.Client
	draft    RegisterDraft
	inFlight bool
}

func NewRegisterForm(client *api.Client) *RegisterForm {
	return &RegisterForm{client: client}
}

func (f *RegisterForm) Draft() RegisterDraft { return f.draft }

func (f *RegisterForm) SetDraft(d RegisterDraft) { f.draft = d }

func (f *RegisterForm) InFlight() bool { return f.inFlight }

// Submit validates and registers. A password/confirmation mismatch is caught
// locally; no network call is made for an invalid draft.
func (f *RegisterForm) Submit(ctx context.Context) (string, error) {
	if f.inFlight {
		return "", ErrSubmitInFlight
	}
	f.inFlight = true
	defer func() { f.inFlight = false }()

	if err := validation.Validate(f.draft); err != nil {
		return "", err
	}

	resp, err := f.client.Register(ctx, api.RegisterRequest{
		RegistrationType: f.draft.RegistrationType,
		FirstName:        f.draft.FirstName,
		LastName:         f.draft.LastName,
		Email:            f.draft.Email,
		Password:         f.draft.Password,
		ConfirmPassword:  f.draft.ConfirmPassword,
	})
	if err != nil {
		logging.FromContext(ctx).Warn("registration rejected", "error", err)
		return "", err
	}

	f.draft = RegisterDraft{}

	message := resp.Message
	if message == "" {
		message = "Registration successful!"
	}
	return message, nil
}
