// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the BFHL API.

# BFHL Handler

BFHLHandler serves the classification endpoint. It is built from the
startup Config and an optional metrics recorder:

	bfhl := handlers.NewBFHLHandler(cfg, collector)

	POST /bfhl → Process
	GET  /bfhl → Instructions ({"operation_code": 1})

Process reads {"data": [...]}, runs classify.Classify over the list and
answers with the four buckets, the sum and concat_string, plus user_id,
email and roll_number from the Config.

Every malformed body gets 400 with the message "`data` must be a list":
invalid JSON, a missing data field, or data that is not an array. Bodies
over Config.MaxBodyBytes get 413.

# Data Decoding

DecodeData keeps JSON numbers as json.Number so the classifier sees their
literal text. 12345678901234567890 stays exact, -0 becomes "0" and 1.0 stays
"1.0", which is not an integer token. A body with anything but whitespace
after the JSON object is rejected.

# Auxiliary Pages

	GET /       → Root (usage message)
	GET /ready  → Ready
	GET /tester → Tester (embedded HTML form)
*/
package handlers
