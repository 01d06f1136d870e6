// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package classify sorts a list of arbitrary scalar values into buckets.

# Classification

Classify walks the input once, in order:

	res := classify.Classify([]any{"a", "1", "334", "4", "R", "$"})
	// res.OddNumbers        = ["1"]
	// res.EvenNumbers       = ["334", "4"]
	// res.Alphabets         = ["A", "R"]
	// res.SpecialCharacters = ["$"]
	// res.SumString()       = "339"
	// res.ConcatString      = "Ra"

Each item is first turned into a token by Normalize (nil becomes "", every
other value its plain string form, trimmed). The token then goes to exactly
one bucket:

  - "" goes to SpecialCharacters
  - IsInteger tokens are added to Sum and go to EvenNumbers or OddNumbers,
    stored as written ("007" stays "007")
  - IsAlpha tokens go to Alphabets uppercased, and their letters feed the
    character pool in original case
  - everything else goes to SpecialCharacters verbatim

# Rendering

Normalize renders decoded JSON values before classifying them:

	json.Number("-0")                 // "0"
	json.Number("2.50")               // "2.5"
	json.Number("1e2")                // "100.0"
	json.Number("1e20")               // "1e+20"
	json.Number("1E400")              // "inf", an alphabetic token
	true                              // "True"
	[]any{json.Number("1"), "a", nil} // "[1, 'a', None]"

# Integers

Sum is a math/big.Int, so digit strings of any length are summed exactly.
Parity is taken from the absolute value: "-4" is even, "-3" is odd.

# ASCII only

IsInteger accepts only 0-9 and IsAlpha only A-Z and a-z. Letters or digits
from other scripts ("é", "٣") fall through to SpecialCharacters.

# Concat String

ConcatString reverses the whole character pool once and alternates case,
upper first:

	ConcatString([]byte("abXY")) // "YxBa"
*/
package classify
