package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginDraft struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerDraft struct {
	RegistrationType string `json:"registrationType" validate:"required,oneof=Farmer Buyer"`
	FirstName        string `json:"firstName" validate:"required,min=3"`
	Password         string `json:"password" validate:"required,min=6"`
	ConfirmPassword  string `json:"confirmPassword" validate:"required,eqfield=Password"`
}

func TestValidateLoginDraft(t *testing.T) {
	require.NoError(t, Validate(loginDraft{Email: "user@example.com", Password: "secret1"}))

	err := Validate(loginDraft{Email: "not-an-email", Password: "short"})
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Equal(t, "Invalid email address", errs["email"])
	assert.Equal(t, "Password must be at least 6 characters", errs["password"])
}

func TestValidatePasswordConfirmation(t *testing.T) {
	draft := registerDraft{
		RegistrationType: "Farmer",
		FirstName:        "Alice",
		Password:         "secret1",
		ConfirmPassword:  "secret2",
	}

	err := Validate(draft)
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Equal(t, "Passwords do not match", errs["confirmPassword"])
	assert.NotContains(t, errs, "password")
}

func TestValidateRegistrationType(t *testing.T) {
	draft := registerDraft{
		RegistrationType: "Admin",
		FirstName:        "Alice",
		Password:         "secret1",
		ConfirmPassword:  "secret1",
	}

	err := Validate(draft)
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Equal(t, "Select a registration type", errs["registrationType"])
}

func TestValidateNumericRules(t *testing.T) {
	type productRules struct {
		Price float64 `json:"price" validate:"gt=0"`
		Stock int     `json:"stock" validate:"gte=0"`
	}

	require.NoError(t, Validate(productRules{Price: 9.5, Stock: 0}))

	err := Validate(productRules{Price: 0, Stock: -1})
	require.Error(t, err)

	errs, ok := err.(Errors)
	require.True(t, ok)
	assert.Equal(t, "Price must be greater than 0", errs["price"])
	assert.Equal(t, "Stock cannot be negative", errs["stock"])
}

func TestErrorsMessageFormat(t *testing.T) {
	errs := Errors{"name": "Name is required"}
	assert.Contains(t, errs.Error(), "name: Name is required")
}
