// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity derives the caller-facing identity strings for the API.

# User ID

The user ID is the normalized full name joined to the date of birth:

	identity.UserID("John  Doe", "17091999") // "john_doe_17091999"

NormalizeFullName lowercases the name, collapses whitespace runs into a
single underscore and drops anything outside a-z, 0-9 and underscore:

	identity.NormalizeFullName(" Mary-Jane  O'Neil ") // "maryjane_oneil"

# Request IDs

Every request carries an ID for log correlation:

	id := identity.NewRequestID() // random UUIDv4

IDs supplied by clients in X-Request-ID are kept when ValidRequestID
accepts them.
*/
package identity
