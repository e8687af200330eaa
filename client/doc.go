// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package client is a JSON/HTTP client for the tracking API.

	c := client.New(cfg.APIBase, client.NewHTTPClient(cfg.HTTPTimeout))
	created, err := c.CreateBatch(ctx, models.CreateBatchRequest{IMBs: imbs})

# Endpoints

	POST /api/batches                                  → CreateBatch
	GET  /api/batches/{batchId}                        → GetBatch
	POST /api/batches/{batchId}/refresh                → RefreshBatch
	POST /api/batches/{batchId}/items/{itemId}/status  → UpdateItemStatus

UpdateItemStatus sends the x-admin-key header only when a key is given.

# Errors

Non-2xx responses become *APIError. Its message is the body's error field,
or "Request failed (<status>)" when there is none. Nothing is retried.
*/
package client
