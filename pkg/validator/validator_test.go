package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Email    string `validate:"required,email"`
	Name     string `validate:"required,min=2,max=10"`
	Severity int    `validate:"omitempty,gte=1,lte=10"`
}

func TestValidatePasses(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:    "user@clinic.test",
		Name:     "Ana",
		Severity: 5,
	})
	assert.NoError(t, err)
}

func TestValidateFails(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{
		Email:    "not-an-email",
		Name:     "A",
		Severity: 11,
	})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Contains(t, formatted["Email"], "valid email")
	assert.Contains(t, formatted["Name"], "at least 2")
	assert.Contains(t, formatted["Severity"], "less than or equal to 10")
}

func TestFormatValidationErrorsRequired(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&sampleRequest{})
	require.Error(t, err)

	formatted := cv.FormatValidationErrors(err)
	assert.Equal(t, "Email is required", formatted["Email"])
	assert.Equal(t, "Name is required", formatted["Name"])
}
