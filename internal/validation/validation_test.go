package validation

import (
	"testing"

	domainerrors "ideabank/internal/domain/errors"
	"ideabank/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signupInput struct {
	Name     string `json:"name" validate:"required" msg:"Name is required"`
	Email    string `json:"email" validate:"required,email" msg:"Please include a valid email"`
	Password string `json:"password" validate:"min=6"`
}

func TestValidator_Struct_Valid(t *testing.T) {
	v := New()

	err := v.Struct(&signupInput{Name: "Ada", Email: "ada@example.com", Password: "secret1"})
	assert.NoError(t, err)
}

func TestValidator_Struct_ItemizesFailures(t *testing.T) {
	v := New()

	err := v.Struct(&signupInput{Email: "not-an-email", Password: "123"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	appErr, ok := errors.AsType[domainerrors.AppError](err)
	require.True(t, ok)

	details, ok := appErr.Details().([]FieldError)
	require.True(t, ok)
	assert.Equal(t, []FieldError{
		{Param: "name", Msg: "Name is required", Location: LocationBody},
		{Param: "email", Msg: "Please include a valid email", Location: LocationBody},
		{Param: "password", Msg: "password is invalid", Location: LocationBody},
	}, details)
}

func TestValidator_Validate_ImplementsEchoValidator(t *testing.T) {
	v := New()

	err := v.Validate(signupInput{Name: "Ada", Email: "ada@example.com", Password: "short"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}
