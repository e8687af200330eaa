// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the wire and domain types of the tracking API.

# Request Types

Types sent to the tracking service:

  - CreateBatchRequest: imbs, optional meta (sourcePlatform, note)
  - UpdateStatusRequest: status

# Response Types

Types decoded from the tracking service:

  - CreateBatchResponse: batchId
  - GetBatchResponse: batch, items
  - RefreshBatchResponse: items
  - UpdateStatusResponse: item
  - ErrorResponse: error, message

# Domain Types

  - Batch: batch metadata (created_at, source platform, note)
  - BatchItem: one tracked IMB with its status and last update time

# Console Types

Types of the local console service (console.go): PreviewRequest and
PreviewResponse, ConsoleCreateRequest, BatchViewResponse with ItemRow rows,
OverrideResponse, AdminKeyRequest and AdminKeyResponse. NewItemRow adds
the display label and class to a BatchItem.

# Status

Item status is a closed set:

	StatusPending   = "PENDING"
	StatusInTransit = "IN_TRANSIT"
	StatusDelivered = "DELIVERED"
	StatusReturned  = "RETURNED"
	StatusError     = "ERROR"

Label returns the display name ("In Transit") and Class the lower-case
badge class ("in_transit").
*/
package models
