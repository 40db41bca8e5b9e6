package types

import (
	"strings"
	"unicode"
)

var secretPatterns = []string{
	"secret", "key", "token", "password", "pass", "pwd",
	"auth", "credential", "private", "cert",
	"api_key", "apikey", "access_key", "client_secret",
	"oauth", "jwt", "session", "cookie", "salt",
	"signing", "signature", "encryption", "cipher",
	"webhook", "vault",
}

var connectionPatterns = []string{
	"database_url", "db_url", "dsn", "connection_string",
	"postgres_url", "mysql_url", "mongodb_url", "redis_url",
	"cache_url", "broker_url", "email_url", "sentry_dsn",
}

// IsSensitive reports whether a variable should be treated as a secret when
// its value is logged. Names are matched against common secret and
// connection-string patterns; defaults that look generated (uuids, tokens)
// are sensitive regardless of the name.
func IsSensitive(name, value string) bool {
	nameLower := strings.ToLower(name)

	for _, pattern := range connectionPatterns {
		if strings.Contains(nameLower, pattern) {
			return true
		}
	}

	for _, pattern := range secretPatterns {
		if strings.Contains(nameLower, pattern) {
			return true
		}
	}

	content := value
	if unquoted, ok := Unquote(value); ok {
		content = unquoted
	}
	return looksGenerated(content)
}

func looksGenerated(value string) bool {
	if len(value) < 16 {
		return false
	}

	// UUID
	if len(value) == 36 && strings.Count(value, "-") == 4 {
		return true
	}

	// JWT: three base64 segments
	if strings.Count(value, ".") == 2 && len(value) > 50 {
		return true
	}

	return len(value) >= 20 && isURLSafeBase64(value) && hasHighEntropy(value) && containsMixedCase(value)
}

func isURLSafeBase64(s string) bool {
	for _, r := range s {
		if !((r >= 'A' && r <= 'Z') || (r >= 'a' && r <= 'z') ||
			(r >= '0' && r <= '9') || r == '-' || r == '_') {
			return false
		}
	}
	return true
}

func hasHighEntropy(value string) bool {
	unique := make(map[rune]struct{})
	for _, r := range value {
		unique[r] = struct{}{}
	}
	return float64(len(unique))/float64(len(value)) > 0.5
}

func containsMixedCase(value string) bool {
	hasUpper, hasLower := false, false
	for _, r := range value {
		hasUpper = hasUpper || unicode.IsUpper(r)
		hasLower = hasLower || unicode.IsLower(r)
	}
	return hasUpper && hasLower
}
