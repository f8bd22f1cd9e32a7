package validator

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type loginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password,omitempty" validate:"required"`
}

func TestValidate_ReportsJSONFieldNames(t *testing.T) {
	err := New().Validate(&loginRequest{Username: "admin"})

	var verrs validator.ValidationErrors
	require.True(t, errors.As(err, &verrs))
	require.Len(t, verrs, 1)
	assert.Equal(t, "password", verrs[0].Field())
	assert.Equal(t, "required", verrs[0].Tag())
}

func TestValidate_Passes(t *testing.T) {
	assert.NoError(t, New().Validate(&loginRequest{Username: "admin", Password: "admin123"}))
}
