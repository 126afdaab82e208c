package meta

import (
	"os"
	"strings"
	"unicode"
)

// expandEnvExpr replaces every ${env.KEY} occurrence in text with the value
// of the environment variable KEY (empty when unset). Expressions without a
// closing brace or with an invalid key are left as literals.
func expandEnvExpr(text string) string {
	const prefix = "${env."
	var b strings.Builder
	for {
		idx := strings.Index(text, prefix)
		if idx == -1 {
			b.WriteString(text)
			break
		}
		b.WriteString(text[:idx])
		rest := text[idx+len(prefix):]
		end := strings.IndexByte(rest, '}')
		if end == -1 {
			b.WriteString(text[idx:])
			break
		}
		key := rest[:end]
		if !isEnvKey(key) {
			b.WriteString(prefix)
			text = rest
			continue
		}
		b.WriteString(os.Getenv(key))
		text = rest[end+1:]
	}
	return b.String()
}

// isEnvKey reports whether key consists solely of letters, digits or '_'
func isEnvKey(key string) bool {
	for _, r := range key {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '_' {
			return false
		}
	}
	return true
}
