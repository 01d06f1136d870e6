// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/bfhl/classify"
	"github.com/danielhkuo/bfhl/cliparse"
	"github.com/danielhkuo/bfhl/middleware"
	"github.com/danielhkuo/bfhl/models"
)

// MsgDataNotList is returned for every malformed /bfhl body
const MsgDataNotList = "`data` must be a list"

var ErrDataNotList = errors.New(MsgDataNotList)

// ClassificationRecorder receives bucket sizes of every classified payload
type ClassificationRecorder interface {
	RecordClassification(counts map[string]int)
}

type BFHLHandler struct {
	cfg      cliparse.Config
	userID   string
	recorder ClassificationRecorder
}

// NewBFHLHandler creates the /bfhl handler. recorder may be nil.
func NewBFHLHandler(cfg cliparse.Config, recorder ClassificationRecorder) *BFHLHandler {
	return &BFHLHandler{
		cfg:      cfg,
		userID:   cfg.UserID(),
		recorder: recorder,
	}
}

// Process handles POST /bfhl
func (h *BFHLHandler) Process(w http.ResponseWriter, r *http.Request) {
	requestID := middleware.RequestIDFromContext(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, h.cfg.MaxBodyBytes)

	var req models.ProcessRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			slog.Warn("request body too large", "request_id", requestID, "limit", tooLarge.Limit)
			middleware.ErrorResponse(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request body exceeds %s", humanize.IBytes(uint64(tooLarge.Limit))))
			return
		}
		slog.Debug("invalid request body", "request_id", requestID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgDataNotList)
		return
	}

	items, err := DecodeData(req.Data)
	if err != nil {
		slog.Debug("invalid data field", "request_id", requestID, "error", err)
		middleware.ErrorResponse(w, http.StatusBadRequest, MsgDataNotList)
		return
	}

	res := classify.Classify(items)
	if h.recorder != nil {
		h.recorder.RecordClassification(res.Counts())
	}

	slog.Debug("payload classified",
		"request_id", requestID,
		"tokens", res.Total(),
		"sum", res.SumString(),
	)

	middleware.JSONResponse(w, http.StatusOK, h.buildResponse(res))
}

// Instructions handles GET /bfhl
func (h *BFHLHandler) Instructions(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.OperationResponse{
		OperationCode: models.OperationCode,
	})
}

func (h *BFHLHandler) buildResponse(res classify.Result) models.ProcessResponse {
	return models.ProcessResponse{
		IsSuccess:         true,
		Status:            http.StatusOK,
		UserID:            h.userID,
		Email:             h.cfg.Email,
		RollNumber:        h.cfg.RollNumber,
		OddNumbers:        res.OddNumbers,
		EvenNumbers:       res.EvenNumbers,
		Alphabets:         res.Alphabets,
		SpecialCharacters: res.SpecialCharacters,
		Sum:               res.SumString(),
		ConcatString:      res.ConcatString,
	}
}

// DecodeData decodes the raw data field, which must be a JSON array.
// Numbers are kept as json.Number so integers of any size reach the
// classifier exactly.
func DecodeData(raw json.RawMessage) ([]any, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, ErrDataNotList
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	items := []any{}
	if err := dec.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode data: %w", err)
	}
	return items, nil
}
