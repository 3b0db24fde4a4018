package forms

import (
	"html"
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

// maxSanitizePasses bounds how many layers of entity encoding are unwrapped.
const maxSanitizePasses = 8

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

// plainText strips markup from free-text input. The policy output is decoded
// so a literal "&" is kept as typed, and the pass repeats until decoding
// yields no new markup, so entity-encoded tags are stripped too.
func plainText(raw string) string {
	value := strings.TrimSpace(raw)
	for range maxSanitizePasses {
		cleaned := textSanitizer().Sanitize(value)
		decoded := strings.TrimSpace(html.UnescapeString(cleaned))
		if decoded == value {
			return value
		}
		value = decoded
	}
	// Still changing: keep the encoded form, which holds no live markup.
	return strings.TrimSpace(textSanitizer().Sanitize(value))
}
