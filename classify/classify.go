// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classify

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Bucket names, used as metric labels
const (
	BucketOdd     = "odd"
	BucketEven    = "even"
	BucketAlpha   = "alpha"
	BucketSpecial = "special"
)

// Result holds the classification of one input list
type Result struct {
	OddNumbers        []string
	EvenNumbers       []string
	Alphabets         []string
	SpecialCharacters []string
	Sum               *big.Int
	ConcatString      string
}

// SumString renders Sum in base 10
func (r Result) SumString() string {
	if r.Sum == nil {
		return "0"
	}
	return r.Sum.String()
}

// Total returns the number of tokens across all buckets
func (r Result) Total() int {
	return len(r.OddNumbers) + len(r.EvenNumbers) + len(r.Alphabets) + len(r.SpecialCharacters)
}

// Counts returns the bucket sizes keyed by bucket name
func (r Result) Counts() map[string]int {
	return map[string]int{
		BucketOdd:     len(r.OddNumbers),
		BucketEven:    len(r.EvenNumbers),
		BucketAlpha:   len(r.Alphabets),
		BucketSpecial: len(r.SpecialCharacters),
	}
}

// Classify assigns every item to exactly one bucket, preserving input order.
// Buckets are never nil so they encode as [] rather than null.
func Classify(items []any) Result {
	res := Result{
		OddNumbers:        []string{},
		EvenNumbers:       []string{},
		Alphabets:         []string{},
		SpecialCharacters: []string{},
		Sum:               new(big.Int),
	}

	var pool []byte
	for _, item := range items {
		tok := Normalize(item)

		switch {
		case tok == "":
			res.SpecialCharacters = append(res.SpecialCharacters, tok)

		case IsInteger(tok):
			n, ok := new(big.Int).SetString(tok, 10)
			if !ok {
				// unreachable: IsInteger only admits base 10 digits
				res.SpecialCharacters = append(res.SpecialCharacters, tok)
				continue
			}
			res.Sum.Add(res.Sum, n)
			if n.Abs(n).Bit(0) == 0 {
				res.EvenNumbers = append(res.EvenNumbers, tok)
			} else {
				res.OddNumbers = append(res.OddNumbers, tok)
			}

		case IsAlpha(tok):
			res.Alphabets = append(res.Alphabets, strings.ToUpper(tok))
			pool = append(pool, tok...)

		default:
			res.SpecialCharacters = append(res.SpecialCharacters, tok)
		}
	}

	res.ConcatString = ConcatString(pool)
	return res
}

// Normalize turns one input value into its token.
// nil maps to "", everything else to its plain string form with
// surrounding whitespace removed.
func Normalize(v any) string {
	var s string
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		s = x
	case json.Number:
		s = formatNumber(x.String())
	case bool:
		s = formatBool(x)
	case float64:
		s = formatFloat(x)
	case float32:
		s = formatFloat(float64(x))
	case []any, map[string]any:
		s = formatNested(x)
	default:
		s = fmt.Sprint(x)
	}
	return strings.TrimSpace(s)
}

// IsInteger reports whether tok is an optional single '-' followed by one or
// more ASCII digits and nothing else. "+5", "1.5", "1e3", "--1" and "-" are
// not integers.
func IsInteger(tok string) bool {
	digits := strings.TrimPrefix(tok, "-")
	if digits == "" {
		return false
	}
	for i := 0; i < len(digits); i++ {
		if digits[i] < '0' || digits[i] > '9' {
			return false
		}
	}
	return true
}

// IsAlpha reports whether tok is non-empty and made only of ASCII letters
func IsAlpha(tok string) bool {
	if tok == "" {
		return false
	}
	for i := 0; i < len(tok); i++ {
		if !isLetter(tok[i]) {
			return false
		}
	}
	return true
}

// ConcatString reverses pool and alternates case starting with upper case
func ConcatString(pool []byte) string {
	out := make([]byte, len(pool))
	for i := range pool {
		c := pool[len(pool)-1-i]
		if i%2 == 0 {
			out[i] = toUpper(c)
		} else {
			out[i] = toLower(c)
		}
	}
	return string(out)
}

func isLetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

func toUpper(c byte) byte {
	if 'a' <= c && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func toLower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
