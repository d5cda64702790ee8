package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Name  string `validate:"required,min=3"`
	Email string `validate:"required,email"`
	Role  string `validate:"required,oneof=user admin"`
}

func TestValidateStructPasses(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Name:  "filmfan",
		Email: "fan@example.com",
		Role:  "user",
	})
	assert.Nil(t, errs)
}

func TestValidateStructCollectsFieldErrors(t *testing.T) {
	errs := ValidateStruct(sampleRequest{
		Name:  "ab",
		Email: "not-an-email",
		Role:  "root",
	})
	require.Len(t, errs, 3)
	assert.Contains(t, errs["Name"], "Minimum length")
	assert.Contains(t, errs["Email"], "Invalid email")
	assert.Contains(t, errs["Role"], "Must be one of")
}

func TestFormatValidationErrors(t *testing.T) {
	msg := FormatValidationErrors(map[string]string{"Name": "This field is required"})
	assert.Equal(t, "Name: This field is required", msg)
}

func TestPasswordHashRoundTrip(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", hash)

	assert.True(t, CheckPasswordHash("secret123", hash))
	assert.False(t, CheckPasswordHash("wrongpass", hash))
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 5, ParseInt("5", 1))
	assert.Equal(t, 1, ParseInt("", 1))
	assert.Equal(t, 1, ParseInt("abc", 1))
	assert.Equal(t, 1, ParseInt("0", 1))
	assert.Equal(t, 1, ParseInt("-4", 1))
}

func TestCalculateTotalPages(t *testing.T) {
	assert.Equal(t, 0, CalculateTotalPages(0, 10))
	assert.Equal(t, 1, CalculateTotalPages(10, 10))
	assert.Equal(t, 2, CalculateTotalPages(11, 10))
	assert.Equal(t, 0, CalculateTotalPages(5, 0))
}

func TestCalculateOffset(t *testing.T) {
	assert.Equal(t, 0, CalculateOffset(1, 10))
	assert.Equal(t, 10, CalculateOffset(2, 10))
	assert.Equal(t, 0, CalculateOffset(0, 10))
}
