// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains the HTTP handlers of the local console service.

The console is a thin JSON layer over the commands package for a browser
front-end. It never talks to the tracking API itself.

# Handler Types

  - PreviewHandler: candidate list preview (parse, dedup, warnings)
  - BatchHandler: batch creation, batch view, refresh, status override
  - SessionHandler: admin key adoption and removal

# Batches

	POST /batches                              → CreateBatch (returns batchId)
	GET  /batches/{id}?q=                      → GetBatch (filtered view)
	POST /batches/{id}/refresh                 → RefreshBatch
	POST /batches/{id}/items/{itemId}/status   → OverrideStatus

BatchHandler caches one batchview.View per batch id for the life of the
process. Tracking API failures carry the API's message: 4xx statuses are
passed through, everything else is 502. A duplicate in-flight action
returns 409.

# Session

	POST   /session/admin-key   {url} or {key}
	GET    /session/admin-key   → {present}
	DELETE /session/admin-key
*/
package handlers
