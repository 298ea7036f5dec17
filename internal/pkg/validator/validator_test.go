package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidEmail("alice@example.com"))
	assert.True(t, IsValidEmail("no-email@example.com"))
	assert.False(t, IsValidEmail("not-an-email"))
	assert.False(t, IsValidEmail("missing@tld"))
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	_, ok := IsValidDate("2025-06-15")
	assert.True(t, ok)

	_, ok = IsValidDate("15/06/2025")
	assert.False(t, ok)

	_, ok = IsValidDate("2025-6-1")
	assert.False(t, ok)
}

func TestIsValidPeriod(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPeriod("2025-06"))
	assert.True(t, IsValidPeriod("1999-12"))
	assert.False(t, IsValidPeriod("2025-13"))
	assert.False(t, IsValidPeriod("2025-00"))
	assert.False(t, IsValidPeriod("2025-06-01"))
}

func TestValidationErrors(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "invalid email format"},
	}

	assert.Contains(t, errs.Error(), "name: name is required")
	assert.Equal(t, "invalid email format", errs.ToMap()["email"])
}
