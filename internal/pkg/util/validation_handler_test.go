package util

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type signup struct {
	Username string `json:"username" validate:"required,max=5"`
	Email    string `json:"email" validate:"required,email"`
	Nickname string `json:"nickname,omitempty" validate:"omitempty,min=3"`
}

func TestFieldErrorsUsesJSONNames(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	err := v.Struct(&signup{Username: "toolongname", Email: "not-an-email", Nickname: "ab"})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := FieldErrors(verrs)
	assert.Equal(t, []string{"Ensure this field has no more than 5 characters."}, fields["username"])
	assert.Equal(t, []string{"Enter a valid email address."}, fields["email"])
	assert.Equal(t, []string{"Ensure this field has at least 3 characters."}, fields["nickname"])
}

func TestFieldErrorsRequired(t *testing.T) {
	v := validator.New()
	v.RegisterTagNameFunc(jsonTagName)

	err := v.Struct(&signup{})
	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := FieldErrors(verrs)
	assert.Equal(t, []string{"This field is required."}, fields["username"])
	assert.Equal(t, []string{"This field is required."}, fields["email"])
	assert.NotContains(t, fields, "nickname")
}
