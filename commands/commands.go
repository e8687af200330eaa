// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/danielhkuo/imbtrack/batchview"
	"github.com/danielhkuo/imbtrack/client"
	"github.com/danielhkuo/imbtrack/imb"
	"github.com/danielhkuo/imbtrack/intake"
	"github.com/danielhkuo/imbtrack/models"
	"github.com/danielhkuo/imbtrack/session"
)

var (
	ErrNothingToSubmit = errors.New("no IMBs to submit")
	ErrUnknownStatus   = errors.New("unknown status")
)

// API is the part of the tracking API the commands use.
type API interface {
	CreateBatch(ctx context.Context, req models.CreateBatchRequest) (models.CreateBatchResponse, error)
	GetBatch(ctx context.Context, batchID string) (models.GetBatchResponse, error)
	RefreshBatch(ctx context.Context, batchID string) (models.RefreshBatchResponse, error)
	UpdateItemStatus(ctx context.Context, batchID, itemID string, status models.Status, adminKey string) (models.UpdateStatusResponse, error)
}

type Handler struct {
	api     API
	session *session.Session
	guard   *Guard
}

func New(api API, sess *session.Session) *Handler {
	return &Handler{api: api, session: sess, guard: NewGuard()}
}

func (h *Handler) Session() *session.Session {
	return h.session
}

type PreviewRequest struct {
	Text     string
	FilePath string
}

type PreviewResult struct {
	Candidates imb.Candidates
	// FileError is set when FilePath could not be read; the preview then
	// covers Text only.
	FileError string
}

// Preview prepares the candidate list of pasted text plus an optional file.
func (h *Handler) Preview(req PreviewRequest) PreviewResult {
	var res PreviewResult

	fileText := ""
	if req.FilePath != "" {
		text, err := intake.ReadFile(req.FilePath)
		if err != nil {
			slog.Warn("file read failed", "path", req.FilePath, "error", err)
			res.FileError = Message(err)
		} else {
			fileText = text
		}
	}

	res.Candidates = imb.Prepare(req.Text, fileText)
	return res
}

type CreateRequest struct {
	IMBs           []string
	SourcePlatform string
	Note           string
}

// CreateBatch submits the candidate list. Meta is only sent when one of its
// trimmed fields is non-empty.
func (h *Handler) CreateBatch(ctx context.Context, req CreateRequest) (string, error) {
	imbs := imb.Normalize(req.IMBs)
	if len(imbs) == 0 {
		return "", ErrNothingToSubmit
	}

	release, err := h.guard.Acquire("create")
	if err != nil {
		return "", err
	}
	defer release()

	payload := models.CreateBatchRequest{IMBs: imbs}
	meta := models.BatchMeta{
		SourcePlatform: strings.TrimSpace(req.SourcePlatform),
		Note:           strings.TrimSpace(req.Note),
	}
	if meta != (models.BatchMeta{}) {
		payload.Meta = &meta
	}

	resp, err := h.api.CreateBatch(ctx, payload)
	if err != nil {
		return "", err
	}

	slog.Info("batch created", "batch_id", resp.BatchID, "imbs", len(imbs))
	return resp.BatchID, nil
}

// Open loads a batch into a fresh view.
func (h *Handler) Open(ctx context.Context, batchID string) (*batchview.View, error) {
	release, err := h.guard.Acquire("open:" + batchID)
	if err != nil {
		return nil, err
	}
	defer release()

	resp, err := h.api.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}

	v := batchview.New(batchID)
	v.SetBatch(resp.Batch)
	v.Load(resp.Items)
	return v, nil
}

// Refresh asks the service to re-poll the batch and reloads the view. The
// view is left untouched on failure.
func (h *Handler) Refresh(ctx context.Context, v *batchview.View) error {
	release, err := h.guard.Acquire("refresh:" + v.BatchID())
	if err != nil {
		return err
	}
	defer release()

	resp, err := h.api.RefreshBatch(ctx, v.BatchID())
	if err != nil {
		return err
	}

	v.Load(resp.Items)
	slog.Info("batch refreshed", "batch_id", v.BatchID(), "items", len(resp.Items))
	return nil
}

// Override sets one item's status using the session admin key and patches
// the view with the item the service returns.
func (h *Handler) Override(ctx context.Context, v *batchview.View, itemID string, status models.Status) (models.BatchItem, error) {
	if !status.Valid() {
		return models.BatchItem{}, fmt.Errorf("%w %q", ErrUnknownStatus, status)
	}

	release, err := h.guard.Acquire("override:" + v.BatchID() + ":" + itemID)
	if err != nil {
		return models.BatchItem{}, err
	}
	defer release()

	adminKey, err := h.session.AdminKey(ctx)
	if err != nil {
		return models.BatchItem{}, fmt.Errorf("failed to read admin key: %w", err)
	}

	resp, err := h.api.UpdateItemStatus(ctx, v.BatchID(), itemID, status, adminKey)
	if err != nil {
		return models.BatchItem{}, err
	}

	if !v.ApplyOverride(resp.Item) {
		slog.Warn("override for unknown item dropped", "batch_id", v.BatchID(), "item_id", resp.Item.ID)
	}
	return resp.Item, nil
}

// Message renders any command error as the text shown to the user.
func Message(err error) string {
	var apiErr *client.APIError
	var readErr *intake.ReadError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &apiErr):
		return apiErr.Message
	case errors.As(err, &readErr):
		return readErr.Message()
	case errors.Is(err, ErrInFlight):
		return "Already in progress."
	case errors.Is(err, ErrNothingToSubmit):
		return "Add at least one IMB before creating a batch."
	}
	return err.Error()
}
