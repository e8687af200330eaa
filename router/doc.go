// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the local imbtrack console.

# Route Registration

NewRouter creates a configured http.ServeMux over one commands.Handler:

	mux := router.NewRouter(cmd)

# Endpoints

Health:

	GET /health

Edit session:

	POST /preview - Parse, deduplicate and check pasted text or a file

Batches:

	POST /batches                            - Submit a candidate list
	GET  /batches/{id}?q=                    - Batch view, optionally filtered
	POST /batches/{id}/refresh               - Re-poll and reload
	POST /batches/{id}/items/{itemId}/status - Manual status override

Admin key:

	GET    /session/admin-key - Whether a key is held
	POST   /session/admin-key - Adopt from a link or set directly
	DELETE /session/admin-key - Forget the key

Every route except health and root is wrapped in middleware.WithLogging.
CORS is applied by the caller around the whole mux.
*/
package router
