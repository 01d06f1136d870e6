// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package testutil provides shared helpers for handler and router tests.

	cfg := testutil.GetTestConfig()
	req := testutil.MakeRequest("POST", "/bfhl", map[string]any{"data": []any{"a"}}, nil)
	testutil.AssertStatus(t, w, http.StatusOK)

GetTestConfig has rate limiting disabled so tests can send any number of
requests.
*/
package testutil
