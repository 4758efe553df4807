package validator

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

func required(f Field, _ string) bool {
	return f.Present
}

// notNull fails for missing, empty and whitespace-only values.
func notNull(f Field, _ string) bool {
	return f.Present && strings.TrimSpace(f.Value) != ""
}

// minLength counts runes, not bytes. A non-integer limit never passes.
func minLength(f Field, param string) bool {
	if !f.Present {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(f.Value) >= n
}

func maxLength(f Field, param string) bool {
	if !f.Present {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(param))
	if err != nil {
		return false
	}
	return utf8.RuneCountInString(f.Value) <= n
}

// The character classes below are ASCII only. Letters outside a-z/A-Z,
// such as "ç" or "ş", do not match.

func alpha(f Field, _ string) bool {
	return f.Present && asciiOnly(f.Value, isASCIILetter)
}

func alnum(f Field, _ string) bool {
	return f.Present && asciiOnly(f.Value, func(b byte) bool {
		return isASCIILetter(b) || isASCIIDigit(b)
	})
}

func upper(f Field, _ string) bool {
	return f.Present && asciiOnly(f.Value, func(b byte) bool { return b >= 'A' && b <= 'Z' })
}

func lower(f Field, _ string) bool {
	return f.Present && asciiOnly(f.Value, func(b byte) bool { return b >= 'a' && b <= 'z' })
}

// asciiOnly reports whether s is non-empty and every byte satisfies ok.
// Multi-byte runes always fail because their bytes are >= 0x80.
func asciiOnly(s string, ok func(byte) bool) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !ok(s[i]) {
			return false
		}
	}
	return true
}

func isASCIILetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

func isASCIIDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
