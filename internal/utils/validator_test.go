// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

type mobileFixture struct {
	Mobile string `validate:"indian_mobile"`
}

func TestStrongPassword(t *testing.T) {
	valid := []string{
		"Passw0rd!",
		"Sup3r$ecret",
		"Aa1!aaaa",
	}
	for _, p := range valid {
		assert.NoError(t, ValidateStruct(&passwordFixture{Password: p}), p)
	}

	invalid := []string{
		"short1!",     // under 8 chars
		"alllower1!",  // no uppercase
		"ALLUPPER1!",  // no lowercase
		"NoNumbers!",  // no digit
		"NoSpecial12", // no special character
	}
	for _, p := range invalid {
		assert.Error(t, ValidateStruct(&passwordFixture{Password: p}), p)
	}
}

func TestIndianMobile(t *testing.T) {
	valid := []string{
		"9876543210",
		"6123456789",
		"+919876543210",
	}
	for _, m := range valid {
		assert.NoError(t, ValidateStruct(&mobileFixture{Mobile: m}), m)
	}

	invalid := []string{
		"1234567890",     // starts below 6
		"98765",          // too short
		"98765432101",    // too long
		"abcdefghij",     // not numeric
		"+9198765432101", // prefixed but too long
	}
	for _, m := range invalid {
		assert.Error(t, ValidateStruct(&mobileFixture{Mobile: m}), m)
	}
}

func TestGetValidationErrors(t *testing.T) {
	type form struct {
		Email string `validate:"required,email"`
		Name  string `validate:"required"`
	}

	err := ValidateStruct(&form{Email: "not-an-email"})
	errors := GetValidationErrors(err)

	assert.Len(t, errors, 2)

	fields := map[string]string{}
	for _, e := range errors {
		fields[e.Field] = e.Tag
	}
	assert.Equal(t, "email", fields["email"])
	assert.Equal(t, "required", fields["name"])
}

func TestGetValidationErrorsNonValidationError(t *testing.T) {
	assert.Empty(t, GetValidationErrors(nil))
	assert.Empty(t, GetValidationErrors(assert.AnError))
}
