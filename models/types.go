package models

import (
	"fmt"
	"strings"
	"time"
)

// Status is the delivery state the tracking service reports for an item.
type Status string

// Item status constants
const (
	StatusPending   Status = "PENDING"
	StatusInTransit Status = "IN_TRANSIT"
	StatusDelivered Status = "DELIVERED"
	StatusReturned  Status = "RETURNED"
	StatusError     Status = "ERROR"
)

// AllStatuses lists every status in display order.
var AllStatuses = []Status{
	StatusPending,
	StatusInTransit,
	StatusDelivered,
	StatusReturned,
	StatusError,
}

var statusLabels = map[Status]string{
	StatusPending:   "Pending",
	StatusInTransit: "In Transit",
	StatusDelivered: "Delivered",
	StatusReturned:  "Returned",
	StatusError:     "Error",
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label returns the human readable name, or the raw value for unknown statuses.
func (s Status) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

// Class returns the badge class used by front-ends. Unknown statuses render as pending.
func (s Status) Class() string {
	if !s.Valid() {
		return "pending"
	}
	return strings.ToLower(string(s))
}

// ParseStatus accepts either the wire value or the label, case-insensitively.
func ParseStatus(v string) (Status, error) {
	v = strings.TrimSpace(v)
	for _, s := range AllStatuses {
		if strings.EqualFold(v, string(s)) || strings.EqualFold(v, s.Label()) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown status %q", v)
}

// Request types

type BatchMeta struct {
	SourcePlatform string `json:"sourcePlatform,omitempty"`
	Note           string `json:"note,omitempty"`
}

type CreateBatchRequest struct {
	IMBs []string   `json:"imbs"`
	Meta *BatchMeta `json:"meta,omitempty"`
}

type UpdateStatusRequest struct {
	Status Status `json:"status"`
}

// Response types

type CreateBatchResponse struct {
	BatchID string `json:"batchId"`
}

type GetBatchResponse struct {
	Batch Batch       `json:"batch"`
	Items []BatchItem `json:"items"`
}

type RefreshBatchResponse struct {
	Items []BatchItem `json:"items"`
}

type UpdateStatusResponse struct {
	Item BatchItem `json:"item"`
}

// Domain types

type Batch struct {
	ID             string    `json:"id,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	SourcePlatform string    `json:"source_platform,omitempty"`
	Note           string    `json:"note,omitempty"`
}

// BatchItem is owned by the tracking service; ID is its identity key.
type BatchItem struct {
	ID        string    `json:"id"`
	IMB       string    `json:"imb"`
	Status    Status    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
