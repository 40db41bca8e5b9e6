package types

import "strings"

type ValueKind int

const (
	KindString ValueKind = iota // Quoted literal, Text keeps the quotes
	KindBool                    // Native True/False token
	KindNumber
	KindName // Bare identifier or dotted name, never evaluated
	KindNone
	KindText       // Unquoted text read from an existing .env file
	KindExpression // Any other expression (list, call, operator), kept verbatim
)

// RawValue is a default exactly as written at the call site.
type RawValue struct {
	Text string
	Kind ValueKind
}

// Unquoted returns the literal's content without string prefix and quotes.
// Non-string values are returned unchanged.
func (v RawValue) Unquoted() string {
	if v.Kind != KindString {
		return v.Text
	}
	content, _ := Unquote(v.Text)
	return content
}

// EnvDeclaration is one recognized env-reader call site.
type EnvDeclaration struct {
	Key          string
	DeclaredType string    // Accessor suffix, empty for bare env(...)
	RawDefault   *RawValue // nil when no default was supplied
	Line         int
	Source       string // e.g., "python:settings.py"
}

// Unquote strips a Python string prefix (r, b, u, f in any case) and the
// surrounding quotes. ok is false when text is not a quoted literal.
func Unquote(text string) (content string, ok bool) {
	prefixLen := 0
	for prefixLen < len(text) && prefixLen < 2 && strings.ContainsRune("rRbBuUfF", rune(text[prefixLen])) {
		prefixLen++
	}
	body := text[prefixLen:]

	for _, quote := range []string{`"""`, `'''`, `"`, `'`} {
		if len(body) >= 2*len(quote) && strings.HasPrefix(body, quote) && strings.HasSuffix(body, quote) {
			return body[len(quote) : len(body)-len(quote)], true
		}
	}
	return text, false
}

// StringPrefix returns the prefix letters of a Python string literal.
func StringPrefix(text string) string {
	if i := strings.IndexAny(text, `"'`); i > 0 {
		return text[:i]
	}
	return ""
}
