// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"strings"
	"unicode"

	"github.com/google/uuid"
)

// maxRequestIDLen caps client supplied request IDs
const maxRequestIDLen = 128

// NormalizeFullName lowercases name, replaces whitespace runs with "_" and
// keeps only a-z, 0-9 and "_"
func NormalizeFullName(name string) string {
	joined := strings.Join(strings.FieldsFunc(strings.ToLower(name), isSpace), "_")

	var b strings.Builder
	b.Grow(len(joined))
	for i := 0; i < len(joined); i++ {
		c := joined[i]
		if ('a' <= c && c <= 'z') || ('0' <= c && c <= '9') || c == '_' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isSpace also treats the ASCII file, group, record and unit separators
// (0x1c-0x1f) as whitespace
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (0x1c <= r && r <= 0x1f)
}

// UserID builds the user identifier from a display name and a date of birth
func UserID(fullName, dob string) string {
	return NormalizeFullName(fullName) + "_" + dob
}

// NewRequestID returns a random UUID string
func NewRequestID() string {
	return uuid.NewString()
}

// ValidRequestID reports whether a client supplied request ID is safe to
// echo back and log
func ValidRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		c := id[i]
		if c < 0x21 || c > 0x7e {
			return false
		}
	}
	return true
}
