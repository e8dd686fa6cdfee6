package form

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// SanitizeText strips markup from untrusted text headed for the rendering
// surface, which writes values through unescaped. Returns the trimmed
// remainder, possibly empty.
func SanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

// SanitizeOptionValues cleans a slice of candidate option values, dropping
// entries that are empty once sanitized. Intended for values derived from a
// result set before they become Select options.
func SanitizeOptionValues(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if cleaned := SanitizeText(v); cleaned != "" {
			out = append(out, cleaned)
		}
	}
	return out
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}
