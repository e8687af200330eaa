package models

import "time"

// Types served by the local console (imbtrack serve).

type PreviewRequest struct {
	Text     string `json:"text"`
	FilePath string `json:"file_path,omitempty"`
}

type PreviewResponse struct {
	IMBs          []string `json:"imbs"`
	Count         int      `json:"count"`
	Ready         bool     `json:"ready"`
	Summary       string   `json:"summary"`
	Warnings      []string `json:"warnings"`
	WarningSample string   `json:"warning_sample"`
	FileError     string   `json:"file_error,omitempty"`
}

type ConsoleCreateRequest struct {
	IMBs           []string `json:"imbs"`
	SourcePlatform string   `json:"source_platform"`
	Note           string   `json:"note"`
}

type ItemRow struct {
	ID        string    `json:"id"`
	IMB       string    `json:"imb"`
	Status    Status    `json:"status"`
	Label     string    `json:"label"`
	Class     string    `json:"class"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BatchViewResponse struct {
	BatchID  string    `json:"batch_id"`
	Headline string    `json:"headline"`
	Meta     string    `json:"meta"`
	Query    string    `json:"query,omitempty"`
	Total    int       `json:"total"`
	Admin    bool      `json:"admin"`
	Items    []ItemRow `json:"items"`
	Message  string    `json:"message,omitempty"`
}

type OverrideResponse struct {
	Item    ItemRow `json:"item"`
	Message string  `json:"message"`
}

type AdminKeyRequest struct {
	URL string `json:"url,omitempty"`
	Key string `json:"key,omitempty"`
}

type AdminKeyResponse struct {
	Present bool   `json:"present"`
	URL     string `json:"url,omitempty"`
}

// NewItemRow adds display fields to an item.
func NewItemRow(item BatchItem) ItemRow {
	return ItemRow{
		ID:        item.ID,
		IMB:       item.IMB,
		Status:    item.Status,
		Label:     item.Status.Label(),
		Class:     item.Status.Class(),
		UpdatedAt: item.UpdatedAt,
	}
}
