// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "encoding/json"

// Fixed response values
const (
	OperationCode = 1
	RootMessage   = "BFHL API — POST /bfhl with JSON body { \"data\": [ ... ] }"
)

// Request types

// ProcessRequest is the POST /bfhl body. Data stays raw so the handler can
// tell a missing field from a non-list one and decode numbers losslessly.
type ProcessRequest struct {
	Data json.RawMessage `json:"data"`
}

// Response types

type ProcessResponse struct {
	IsSuccess         bool     `json:"is_success"`
	Status            int      `json:"status"`
	UserID            string   `json:"user_id"`
	Email             string   `json:"email"`
	RollNumber        string   `json:"roll_number"`
	OddNumbers        []string `json:"odd_numbers"`
	EvenNumbers       []string `json:"even_numbers"`
	Alphabets         []string `json:"alphabets"`
	SpecialCharacters []string `json:"special_characters"`
	Sum               string   `json:"sum"`
	ConcatString      string   `json:"concat_string"`
}

type OperationResponse struct {
	OperationCode int `json:"operation_code"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type StatusResponse struct {
	Status string `json:"status"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
