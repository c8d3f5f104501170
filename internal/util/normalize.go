package util

import (
	"regexp"
	"strings"
)

// NormalizeEmail lowercases and trims an email address
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

var nonDigit = regexp.MustCompile(`\D+`)

// NormalizePhone keeps a leading + and the digits of a phone number
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}
	prefix := ""
	if strings.HasPrefix(phone, "+") {
		prefix = "+"
	}
	digits := nonDigit.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}
	return prefix + digits
}

// JoinName joins first and last name with a single space and trims the result
func JoinName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}

// NullableString trims s and returns nil when nothing is left
func NullableString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

// RedactEmail masks the local part of an email address for log output:
// jane@co.com becomes j***@co.com
func RedactEmail(email string) string {
	at := strings.LastIndex(email, "@")
	if at <= 0 {
		if email == "" {
			return ""
		}
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
