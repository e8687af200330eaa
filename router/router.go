// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/imbtrack/commands"
	"github.com/danielhkuo/imbtrack/handlers"
	"github.com/danielhkuo/imbtrack/middleware"
)

func NewRouter(cmd *commands.Handler) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	previewHandler := handlers.NewPreviewHandler(cmd)
	batchHandler := handlers.NewBatchHandler(cmd)
	sessionHandler := handlers.NewSessionHandler(cmd.Session())

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Edit session
	mux.HandleFunc("POST /preview", middleware.WithLogging(previewHandler.Preview))

	// Batches
	mux.HandleFunc("POST /batches", middleware.WithLogging(batchHandler.CreateBatch))
	mux.HandleFunc("GET /batches/{id}", middleware.WithLogging(batchHandler.GetBatch))
	mux.HandleFunc("POST /batches/{id}/refresh", middleware.WithLogging(batchHandler.RefreshBatch))
	mux.HandleFunc("POST /batches/{id}/items/{itemId}/status", middleware.WithLogging(batchHandler.OverrideStatus))

	// Admin key
	mux.HandleFunc("GET /session/admin-key", middleware.WithLogging(sessionHandler.GetAdminKey))
	mux.HandleFunc("POST /session/admin-key", middleware.WithLogging(sessionHandler.SetAdminKey))
	mux.HandleFunc("DELETE /session/admin-key", middleware.WithLogging(sessionHandler.ClearAdminKey))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("imbtrack console v1"))
	})

	return mux
}
