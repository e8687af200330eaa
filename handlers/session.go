// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/imbtrack/middleware"
	"github.com/danielhkuo/imbtrack/models"
	"github.com/danielhkuo/imbtrack/session"
)

type SessionHandler struct {
	session *session.Session
}

func NewSessionHandler(s *session.Session) *SessionHandler {
	return &SessionHandler{session: s}
}

// SetAdminKey handles POST /session/admin-key
// Either adopts the key from a batch link or stores an explicit key.
func (h *SessionHandler) SetAdminKey(w http.ResponseWriter, r *http.Request) {
	var req models.AdminKeyRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	var resp models.AdminKeyResponse
	switch {
	case req.URL != "":
		stripped, _, err := h.session.AdoptFromURL(r.Context(), req.URL)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
			return
		}
		resp.URL = stripped
	case req.Key != "":
		if err := h.session.SetAdminKey(r.Context(), req.Key); err != nil {
			slog.Error("failed to store admin key", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to store admin key")
			return
		}
	default:
		middleware.ErrorResponse(w, http.StatusBadRequest, "url or key is required")
		return
	}

	present, err := h.session.HasAdminKey(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read admin key")
		return
	}
	resp.Present = present
	middleware.JSONResponse(w, http.StatusOK, resp)
}

// GetAdminKey handles GET /session/admin-key
// Only reports presence; the key itself never leaves the session.
func (h *SessionHandler) GetAdminKey(w http.ResponseWriter, r *http.Request) {
	present, err := h.session.HasAdminKey(r.Context())
	if err != nil {
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to read admin key")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.AdminKeyResponse{Present: present})
}

// ClearAdminKey handles DELETE /session/admin-key
func (h *SessionHandler) ClearAdminKey(w http.ResponseWriter, r *http.Request) {
	if err := h.session.ClearAdminKey(r.Context()); err != nil {
		slog.Error("failed to clear admin key", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to clear admin key")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.AdminKeyResponse{Present: false})
}
