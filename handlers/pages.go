// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	_ "embed"
	"net/http"

	"github.com/danielhkuo/bfhl/middleware"
	"github.com/danielhkuo/bfhl/models"
)

//go:embed static/tester.html
var testerPage []byte

// Root handles GET /
func Root(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.MessageResponse{Message: models.RootMessage})
}

// Ready handles GET /ready. The service has no dependencies, so once the
// listener is up it is ready.
func Ready(w http.ResponseWriter, r *http.Request) {
	middleware.JSONResponse(w, http.StatusOK, models.StatusResponse{Status: "ready"})
}

// Tester handles GET /tester, a page for trying /bfhl from a browser
func Tester(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(testerPage)
}
