// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"
)

// formatNumber renders a JSON number literal. Integer literals keep every
// digit, except that a negative zero collapses to "0". Anything with a
// fraction or exponent is read as a float64 and rendered by formatFloat.
func formatNumber(lit string) string {
	if IsInteger(lit) {
		if strings.Trim(lit, "-0") == "" {
			return "0"
		}
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		// not a number literal; keep the text
		return lit
	}
	return formatFloat(f)
}

// formatFloat renders f with the shortest digits that round-trip. Whole
// values get a ".0" suffix. Magnitudes at or above 1e16 or below 1e-4 use
// exponent form ("1e+16", "1.5e-05").
func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	exp, err := strconv.Atoi(sci[strings.IndexByte(sci, 'e')+1:])
	if err != nil {
		return sci
	}
	if f != 0 && (exp < -4 || exp >= 16) {
		return sci
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}

// formatBool renders booleans capitalised, matching how they appear inside
// rendered lists and objects.
func formatBool(b bool) string {
	if b {
		return "True"
	}
	return "False"
}

// formatNested renders an array or object as "[1, 'a']" / "{'k': None}".
// Object keys come out sorted because decoding into a map drops their order.
func formatNested(v any) string {
	var sb strings.Builder
	writeNested(&sb, v)
	return sb.String()
}

func writeNested(sb *strings.Builder, v any) {
	switch x := v.(type) {
	case nil:
		sb.WriteString("None")
	case string:
		sb.WriteString(quote(x))
	case bool:
		sb.WriteString(formatBool(x))
	case json.Number:
		sb.WriteString(formatNumber(x.String()))
	case float64:
		sb.WriteString(formatFloat(x))
	case []any:
		sb.WriteByte('[')
		for i, e := range x {
			if i > 0 {
				sb.WriteString(", ")
			}
			writeNested(sb, e)
		}
		sb.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(x))
		for k := range x {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		sb.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(quote(k))
			sb.WriteString(": ")
			writeNested(sb, x[k])
		}
		sb.WriteByte('}')
	default:
		fmt.Fprint(sb, x)
	}
}

// quote wraps s in single quotes, or double quotes when s contains a single
// quote and no double quote. Backslashes, the chosen quote and non-printable
// characters are escaped.
func quote(s string) string {
	q := byte('\'')
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		q = '"'
	}

	var sb strings.Builder
	sb.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			sb.WriteString(`\\`)
		case r == rune(q):
			sb.WriteByte('\\')
			sb.WriteByte(q)
		case r == '\n':
			sb.WriteString(`\n`)
		case r == '\r':
			sb.WriteString(`\r`)
		case r == '\t':
			sb.WriteString(`\t`)
		case r < 0x100 && !unicode.IsPrint(r):
			fmt.Fprintf(&sb, `\x%02x`, r)
		case r < 0x10000 && !unicode.IsPrint(r):
			fmt.Fprintf(&sb, `\u%04x`, r)
		case !unicode.IsPrint(r):
			fmt.Fprintf(&sb, `\U%08x`, r)
		default:
			sb.WriteRune(r)
		}
	}
	sb.WriteByte(q)
	return sb.String()
}
