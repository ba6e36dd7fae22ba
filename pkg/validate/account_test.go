package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUsername(t *testing.T) {
	assert.NoError(t, Username("alice"))
	assert.NoError(t, Username("a.b-c_d"))

	assert.Equal(t, "username_too_short", fieldCode(t, Username("ab")))
	assert.Equal(t, "invalid_username_chars", fieldCode(t, Username("bad name")))
	assert.Equal(t, "username_start_with_letter", fieldCode(t, Username("1alice")))
	assert.Equal(t, "reserved_username", fieldCode(t, Username("Admin")))
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("alice@example.com"))

	assert.Equal(t, "invalid_email", fieldCode(t, Email("not-an-email")))
	assert.Equal(t, "disposable_email", fieldCode(t, Email("x@mailinator.com")))
	assert.Equal(t, "disposable_email", fieldCode(t, Email("x@TempMail.com")))
}

func TestPassword(t *testing.T) {
	assert.NoError(t, Password("Str0ng!pass"))

	assert.Equal(t, "password_too_short", fieldCode(t, Password("Ab1!")))
	assert.Equal(t, "password_no_digit", fieldCode(t, Password("NoDigits!here")))
	assert.Equal(t, "password_no_uppercase", fieldCode(t, Password("lower1!case")))
	assert.Equal(t, "password_no_lowercase", fieldCode(t, Password("UPPER1!CASE")))
	assert.Equal(t, "password_no_special", fieldCode(t, Password("NoSpecial1char")))
	assert.Equal(t, "common_password_pattern", fieldCode(t, Password("MyPassword1!")))
	assert.Equal(t, "repeating_characters", fieldCode(t, Password("Goood1!morning")))
}
