// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/danielhkuo/imbtrack/batchview"
	"github.com/danielhkuo/imbtrack/client"
	"github.com/danielhkuo/imbtrack/commands"
	"github.com/danielhkuo/imbtrack/middleware"
	"github.com/danielhkuo/imbtrack/models"
)

type BatchHandler struct {
	cmd *commands.Handler

	mu    sync.Mutex
	views map[string]*batchview.View
}

func NewBatchHandler(cmd *commands.Handler) *BatchHandler {
	return &BatchHandler{cmd: cmd, views: make(map[string]*batchview.View)}
}

// CreateBatch handles POST /batches
func (h *BatchHandler) CreateBatch(w http.ResponseWriter, r *http.Request) {
	var req models.ConsoleCreateRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	batchID, err := h.cmd.CreateBatch(r.Context(), commands.CreateRequest{
		IMBs:           req.IMBs,
		SourcePlatform: req.SourcePlatform,
		Note:           req.Note,
	})
	if err != nil {
		writeCommandError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.CreateBatchResponse{BatchID: batchID})
}

// GetBatch handles GET /batches/{id}?q=
// The batch is loaded from the tracking API on first access and served from
// the cached view afterwards; reload=1 forces a fresh load.
func (h *BatchHandler) GetBatch(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("id")
	if batchID == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Missing batch ID in URL.")
		return
	}

	v, err := h.view(r, batchID, r.URL.Query().Get("reload") == "1")
	if err != nil {
		writeCommandError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.render(r, v, r.URL.Query().Get("q"), ""))
}

// RefreshBatch handles POST /batches/{id}/refresh
func (h *BatchHandler) RefreshBatch(w http.ResponseWriter, r *http.Request) {
	v, err := h.view(r, r.PathValue("id"), false)
	if err != nil {
		writeCommandError(w, err)
		return
	}

	if err := h.cmd.Refresh(r.Context(), v); err != nil {
		writeCommandError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, h.render(r, v, r.URL.Query().Get("q"), "Refresh complete."))
}

// OverrideStatus handles POST /batches/{id}/items/{itemId}/status
func (h *BatchHandler) OverrideStatus(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	status, err := models.ParseStatus(string(req.Status))
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	v, err := h.view(r, r.PathValue("id"), false)
	if err != nil {
		writeCommandError(w, err)
		return
	}

	item, err := h.cmd.Override(r.Context(), v, r.PathValue("itemId"), status)
	if err != nil {
		writeCommandError(w, err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.OverrideResponse{
		Item:    models.NewItemRow(item),
		Message: "Status updated.",
	})
}

func (h *BatchHandler) view(r *http.Request, batchID string, reload bool) (*batchview.View, error) {
	h.mu.Lock()
	v, ok := h.views[batchID]
	h.mu.Unlock()
	if ok && !reload {
		return v, nil
	}

	v, err := h.cmd.Open(r.Context(), batchID)
	if err != nil {
		return nil, err
	}

	h.mu.Lock()
	h.views[batchID] = v
	h.mu.Unlock()
	return v, nil
}

func (h *BatchHandler) render(r *http.Request, v *batchview.View, query, message string) models.BatchViewResponse {
	admin, err := h.cmd.Session().HasAdminKey(r.Context())
	if err != nil {
		slog.Error("failed to read admin key", "error", err)
	}

	filtered := v.Filter(query)
	rows := make([]models.ItemRow, 0, len(filtered))
	for _, item := range filtered {
		rows = append(rows, models.NewItemRow(item))
	}

	return models.BatchViewResponse{
		BatchID:  v.BatchID(),
		Headline: v.Headline(),
		Meta:     v.MetaLine(),
		Query:    query,
		Total:    v.Len(),
		Admin:    admin,
		Items:    rows,
		Message:  message,
	}
}

// writeCommandError maps command errors onto console responses. Tracking API
// failures keep their message; client errors (4xx) keep their status too,
// anything else comes back as 502.
func writeCommandError(w http.ResponseWriter, err error) {
	var apiErr *client.APIError
	switch {
	case errors.Is(err, commands.ErrNothingToSubmit), errors.Is(err, commands.ErrUnknownStatus):
		middleware.ErrorResponse(w, http.StatusBadRequest, commands.Message(err))
	case errors.Is(err, commands.ErrInFlight):
		middleware.ErrorResponse(w, http.StatusConflict, commands.Message(err))
	case errors.As(err, &apiErr):
		status := http.StatusBadGateway
		if apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 {
			status = apiErr.StatusCode
		}
		middleware.ErrorResponse(w, status, apiErr.Message)
	default:
		slog.Error("command failed", "error", err)
		middleware.ErrorResponse(w, http.StatusBadGateway, commands.Message(err))
	}
}
