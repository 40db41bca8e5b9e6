package types

import "strings"

// NormalizedDefault is either Boolean(bool) or Raw(text).
type NormalizedDefault struct {
	boolean bool
	value   bool
	text    string
}

func Boolean(value bool) NormalizedDefault {
	return NormalizedDefault{boolean: true, value: value}
}

func Raw(text string) NormalizedDefault {
	return NormalizedDefault{text: text}
}

func (d NormalizedDefault) IsBoolean() bool {
	return d.boolean
}

// Text is the canonical form written to the env file: "True"/"False" for
// booleans, the literal exactly as written otherwise.
func (d NormalizedDefault) Text() string {
	if !d.boolean {
		return d.text
	}
	if d.value {
		return "True"
	}
	return "False"
}

var (
	truthyWords = []string{"true", "1", "yes", "on"}
	falsyWords  = []string{"false", "0", "no", "off"}
)

// Normalize decides whether raw is boolean-like and renders it.
//
// A declared "bool" type forces boolean rendering; an absent type lets the
// value decide; any other declared type keeps the literal as written. Values
// that are not boolean keywords always pass through untouched.
func Normalize(raw *RawValue, declaredType string) NormalizedDefault {
	if raw == nil {
		return Raw("")
	}

	if declaredType == "" || declaredType == "bool" {
		if value, ok := booleanValue(*raw); ok {
			return Boolean(value)
		}
	}

	return Raw(raw.Text)
}

func booleanValue(raw RawValue) (value bool, ok bool) {
	var word string
	switch raw.Kind {
	case KindBool, KindNumber, KindString, KindText:
		word = strings.ToLower(raw.Unquoted())
	default:
		return false, false
	}

	for _, truthy := range truthyWords {
		if word == truthy {
			return true, true
		}
	}
	for _, falsy := range falsyWords {
		if word == falsy {
			return false, true
		}
	}
	return false, false
}
