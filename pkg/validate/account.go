package validate

import (
	"strings"
	"unicode"
)

var reservedUsernames = []string{
	"admin", "administrator", "root", "superuser", "system",
	"moderator", "support", "help", "info", "guest",
}

var disposableDomains = []string{"mailinator.com", "tempmail.com", "throwawaymail.com"}

var commonPasswordPatterns = []string{"123456", "password", "qwerty", "abc123", "admin"}

// Username 校验用户名格式
func Username(value string) error {
	n := len([]rune(value))
	if n < 3 {
		return NewFieldError("username", "username_too_short", "username must be at least 3 characters long")
	}
	if n > 30 {
		return NewFieldError("username", "username_too_long", "username cannot be more than 30 characters long")
	}
	if !usernamePattern.MatchString(value) {
		return NewFieldError("username", "invalid_username_chars",
			"username can only contain letters, numbers, and the characters: . _ -")
	}
	if !unicode.IsLetter([]rune(value)[0]) {
		return NewFieldError("username", "username_start_with_letter", "username must start with a letter")
	}
	lower := strings.ToLower(value)
	for _, reserved := range reservedUsernames {
		if lower == reserved {
			return NewFieldError("username", "reserved_username", "this username is reserved and cannot be used")
		}
	}
	return nil
}

// Email 校验邮箱格式并拒绝一次性邮箱域名
func Email(value string) error {
	if !emailPattern.MatchString(value) {
		return NewFieldError("email", "invalid_email", "please enter a valid email address")
	}
	domain := strings.ToLower(value[strings.LastIndex(value, "@")+1:])
	for _, d := range disposableDomains {
		if domain == d {
			return NewFieldError("email", "disposable_email", "disposable email addresses are not allowed")
		}
	}
	return nil
}

// Password 校验密码强度
func Password(value string) error {
	if len(value) < 8 {
		return NewFieldError("password", "password_too_short", "password must be at least 8 characters long")
	}

	var hasDigit, hasUpper, hasLower, hasSpecial bool
	for _, r := range value {
		switch {
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		}
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			hasSpecial = true
		}
	}
	if !hasDigit {
		return NewFieldError("password", "password_no_digit", "password must contain at least one digit")
	}
	if !hasUpper {
		return NewFieldError("password", "password_no_uppercase", "password must contain at least one uppercase letter")
	}
	if !hasLower {
		return NewFieldError("password", "password_no_lowercase", "password must contain at least one lowercase letter")
	}
	if !hasSpecial {
		return NewFieldError("password", "password_no_special", "password must contain at least one special character")
	}

	lower := strings.ToLower(value)
	for _, pattern := range commonPasswordPatterns {
		if strings.Contains(lower, pattern) {
			return NewFieldError("password", "common_password_pattern",
				"password contains a common pattern that is easily guessable")
		}
	}

	// 连续 3 个及以上相同字符
	runes := []rune(value)
	for i := 2; i < len(runes); i++ {
		if runes[i] == runes[i-1] && runes[i] == runes[i-2] {
			return NewFieldError("password", "repeating_characters", "password contains too many repeating characters")
		}
	}
	return nil
}
