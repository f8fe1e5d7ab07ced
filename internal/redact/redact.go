// Package redact scrubs credentials and secrets from strings before they are
// logged or written to an HTTP response. Resolved settings carry database
// passwords, and error messages from the config or dotenv loaders can echo
// them back, so everything user-visible goes through this package first.
package redact

import (
	"regexp"
)

// Constants for redaction placeholders
const (
	RedactedCredentialPlaceholder = "[REDACTED_CREDENTIAL]"
	RedactedKeyPlaceholder        = "[REDACTED_KEY]"
)

// Precompiled regex patterns
var (
	// Database connection strings: scheme://user:pass@
	dbConnRegex = regexp.MustCompile(`(?i)(mysql|mariadb|pgsql|postgres|postgresql|sqlite|db|database)://[^@\s]+@`)

	// password=..., password: ..., 'password' => '...'
	passwordRegex = regexp.MustCompile(`(?i)(password|passwd|pwd)['"]?\s*(?:=>|=|:)\s*['"]?[^'"&\s,]+['"]?`)

	apiKeyRegex = regexp.MustCompile(
		`(?i)(api[_-]?key|token|secret)(['"\s:=]+)[A-Za-z0-9_\-.~+/]{8,}`,
	)

	jwtTokenRegex = regexp.MustCompile(`eyJ[a-zA-Z0-9_-]+\.eyJ[a-zA-Z0-9_-]+\.[a-zA-Z0-9_-]+`)

	emailRegex = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)

	// Applied in order; credentials first so the email pattern cannot eat
	// the user@host part of a connection string.
	rules = []struct {
		re          *regexp.Regexp
		placeholder string
	}{
		{dbConnRegex, RedactedCredentialPlaceholder},
		{passwordRegex, RedactedCredentialPlaceholder},
		{apiKeyRegex, RedactedKeyPlaceholder},
		{jwtTokenRegex, "[REDACTED_JWT]"},
		{emailRegex, "[REDACTED_EMAIL]"},
	}
)

// String redacts sensitive information from the input string
func String(input string) string {
	if input == "" {
		return input
	}

	result := input
	for _, rule := range rules {
		result = rule.re.ReplaceAllString(result, rule.placeholder)
	}

	return result
}

// Error redacts sensitive information from an error's Error() output
func Error(err error) string {
	if err == nil {
		return ""
	}

	return String(err.Error())
}

// Credential hides a credential value entirely. The empty string is returned
// unchanged so that "no password" stays distinguishable from "hidden password".
func Credential(value string) string {
	if value == "" {
		return ""
	}
	return RedactedCredentialPlaceholder
}
