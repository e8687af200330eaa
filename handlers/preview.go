// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"

	"github.com/danielhkuo/imbtrack/commands"
	"github.com/danielhkuo/imbtrack/imb"
	"github.com/danielhkuo/imbtrack/middleware"
	"github.com/danielhkuo/imbtrack/models"
)

type PreviewHandler struct {
	cmd *commands.Handler
}

func NewPreviewHandler(cmd *commands.Handler) *PreviewHandler {
	return &PreviewHandler{cmd: cmd}
}

// Preview handles POST /preview
func (h *PreviewHandler) Preview(w http.ResponseWriter, r *http.Request) {
	var req models.PreviewRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	res := h.cmd.Preview(commands.PreviewRequest{Text: req.Text, FilePath: req.FilePath})
	c := res.Candidates

	middleware.JSONResponse(w, http.StatusOK, models.PreviewResponse{
		IMBs:          c.IMBs,
		Count:         len(c.IMBs),
		Ready:         c.Ready(),
		Summary:       c.Summary(),
		Warnings:      c.Warnings,
		WarningSample: c.WarningSample(imb.DefaultWarningSample),
		FileError:     res.FileError,
	})
}
