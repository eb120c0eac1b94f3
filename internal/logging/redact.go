package logging

import (
	"net/url"
	"strings"
)

// secretKeyPatterns are substrings of attribute keys whose values are masked.
// Keys are matched case-insensitively.
var secretKeyPatterns = []string{
	"TOKEN",
	"SECRET",
	"PASSWORD",
	"AUTH",
	"CREDENTIAL",
	"API_KEY",
}

// tokenPrefixes mark values as secret regardless of key.
var tokenPrefixes = []string{
	"ghp_", // GitHub personal access token
	"gho_", // GitHub OAuth token
	"ghu_", // GitHub user-to-server token
	"ghs_", // GitHub server-to-server token
	"ghr_", // GitHub refresh token
	"github_pat_",
	"Bearer ",
}

// ShouldMask reports whether the key name suggests it holds sensitive data.
func ShouldMask(key string) bool {
	upper := strings.ToUpper(key)
	for _, pattern := range secretKeyPatterns {
		if strings.Contains(upper, pattern) {
			return true
		}
	}
	return false
}

// ContainsTokenPrefix reports whether the value starts with a known token prefix.
func ContainsTokenPrefix(value string) bool {
	for _, prefix := range tokenPrefixes {
		if strings.HasPrefix(value, prefix) {
			return true
		}
	}
	return false
}

// MaskValue masks a potentially sensitive string value.
// Values with 4 or fewer characters are fully masked as "********".
// Longer values show the last 4 characters: "****xxxx".
func MaskValue(value string) string {
	if len(value) <= 4 {
		return "********"
	}
	return "****" + value[len(value)-4:]
}

// MaskURL redacts the password of URLs with embedded credentials.
// If the URL cannot be parsed, it is returned unchanged.
func MaskURL(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.User == nil {
		return rawURL
	}
	password, ok := parsed.User.Password()
	if !ok || password == "" {
		return rawURL
	}
	parsed.User = url.UserPassword(parsed.User.Username(), MaskValue(password))
	return parsed.String()
}

func redact(key string, value any) any {
	if ShouldMask(key) {
		return MaskValue(stringify(value))
	}
	if s, ok := value.(string); ok && ContainsTokenPrefix(s) {
		return MaskValue(s)
	}
	return value
}
