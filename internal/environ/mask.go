package environ

import "strings"

// MaskSensitiveValue masks data that may carry credentials before it is
// logged: passwords inside database URLs, and long values whose variable
// name suggests a secret.
func MaskSensitiveValue(name, value string) string {
	if strings.Contains(value, "://") && strings.Contains(value, "@") {
		scheme, rest, _ := strings.Cut(value, "://")
		creds, host, _ := strings.Cut(rest, "@")
		if user, _, hasPass := strings.Cut(creds, ":"); hasPass {
			return scheme + "://" + user + ":****@" + host
		}
		return value
	}

	lower := strings.ToLower(name)
	if strings.Contains(lower, "pass") ||
		strings.Contains(lower, "secret") ||
		strings.Contains(lower, "token") ||
		strings.Contains(lower, "key") {
		if len(value) > 8 {
			return value[:2] + "****" + value[len(value)-2:]
		}
		if value != "" {
			return "****"
		}
	}

	return value
}
