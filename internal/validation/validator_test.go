package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "userauth/internal/errors"
)

type registerPayload struct {
	Name     string `json:"name" validate:"required,min=3"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func TestEchoValidator_Register(t *testing.T) {
	cv := NewEchoValidator()

	tests := []struct {
		name     string
		payload  registerPayload
		expected []apierrors.FieldError
	}{
		{
			name:     "valid payload",
			payload:  registerPayload{Name: "John Doe", Email: "john@example.com", Password: "secret123"},
			expected: nil,
		},
		{
			name:    "empty name",
			payload: registerPayload{Name: "", Email: "john@example.com", Password: "secret123"},
			expected: []apierrors.FieldError{
				{Field: "name", Message: "Name is required"},
			},
		},
		{
			name:    "short name",
			payload: registerPayload{Name: "Jo", Email: "john@example.com", Password: "secret123"},
			expected: []apierrors.FieldError{
				{Field: "name", Message: "Name must be at least 3 characters long"},
			},
		},
		{
			name:    "invalid email",
			payload: registerPayload{Name: "John Doe", Email: "not-an-email", Password: "secret123"},
			expected: []apierrors.FieldError{
				{Field: "email", Message: "Please provide a valid email address"},
			},
		},
		{
			name:    "short password",
			payload: registerPayload{Name: "John Doe", Email: "john@example.com", Password: "12345"},
			expected: []apierrors.FieldError{
				{Field: "password", Message: "Password must be at least 6 characters long"},
			},
		},
		{
			name:    "everything wrong, ordered by field",
			payload: registerPayload{Name: "J", Email: "nope", Password: "123"},
			expected: []apierrors.FieldError{
				{Field: "name", Message: "Name must be at least 3 characters long"},
				{Field: "email", Message: "Please provide a valid email address"},
				{Field: "password", Message: "Password must be at least 6 characters long"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := cv.Validate(&tt.payload)
			if tt.expected == nil {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.expected, Translate(err))
		})
	}
}

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		in  string
		out string
	}{
		{"John.Doe@Gmail.com", "johndoe@gmail.com"},
		{"j.o.h.n@googlemail.com", "john@googlemail.com"},
		{"john.doe@example.com", "john.doe@example.com"},
		{"  Upper@Example.COM ", "upper@example.com"},
		{"no-at-sign", "no-at-sign"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.out, NormalizeEmail(tt.in), "input %q", tt.in)
	}
}
