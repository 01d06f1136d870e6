// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request and response types for the API.

# Request Types

  - ProcessRequest: data (raw JSON, must be a list)

# Response Types

  - ProcessResponse: is_success, status, user_id, email, roll_number,
    odd_numbers, even_numbers, alphabets, special_characters, sum,
    concat_string
  - OperationResponse: operation_code
  - MessageResponse: message
  - StatusResponse: status
  - ErrorResponse: error, message

The four bucket fields of ProcessResponse are always lists, never null.
sum is a decimal string so values beyond 64 bits survive JSON clients.
*/
package models
