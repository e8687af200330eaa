// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/danielhkuo/imbtrack/auth"
	"github.com/danielhkuo/imbtrack/middleware"
	"github.com/danielhkuo/imbtrack/models"
)

// FakeAdminSalt derives admin keys on the fake tracking API.
const FakeAdminSalt = "test-admin-salt"

// RecordedRequest is one call the fake API received.
type RecordedRequest struct {
	Method   string
	Path     string
	AdminKey string
	HasKey   bool
}

type fakeBatch struct {
	batch   models.Batch
	items   []models.BatchItem
	pending map[string]models.Status // item id -> status visible after refresh
}

type failure struct {
	status  int
	message string
}

// FakeAPI is an in-process stand-in for the tracking service.
type FakeAPI struct {
	Server *httptest.Server

	mu       sync.Mutex
	batches  map[string]*fakeBatch
	requests []RecordedRequest
	failNext *failure
	now      func() time.Time
}

// NewFakeAPI starts a fake tracking API that is closed with the test.
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()

	f := &FakeAPI{
		batches: make(map[string]*fakeBatch),
		now:     func() time.Time { return time.Now().UTC().Truncate(time.Second) },
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/batches", f.createBatch)
	mux.HandleFunc("GET /api/batches/{id}", f.getBatch)
	mux.HandleFunc("POST /api/batches/{id}/refresh", f.refreshBatch)
	mux.HandleFunc("POST /api/batches/{id}/items/{itemId}/status", f.updateStatus)

	f.Server = httptest.NewServer(f.record(mux))
	t.Cleanup(f.Server.Close)
	return f
}

func (f *FakeAPI) URL() string {
	return f.Server.URL
}

// AdminKey returns the key the fake API accepts for batchID.
func (f *FakeAPI) AdminKey(batchID string) string {
	return auth.GenerateAdminKey(batchID, FakeAdminSalt)
}

// SeedBatch creates a batch directly and returns its ID and item IDs.
func (f *FakeAPI) SeedBatch(imbs ...string) (string, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b := f.newBatch(imbs, nil)
	ids := make([]string, len(b.items))
	for i, item := range b.items {
		ids[i] = item.ID
	}
	return b.batch.ID, ids
}

// StageUpdate sets the status an item will report after the next refresh.
func (f *FakeAPI) StageUpdate(batchID, itemID string, status models.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if b, ok := f.batches[batchID]; ok {
		b.pending[itemID] = status
	}
}

// FailNext makes the next request fail. An empty message sends no body.
func (f *FakeAPI) FailNext(status int, message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failNext = &failure{status: status, message: message}
}

// Items returns the server-side items of a batch.
func (f *FakeAPI) Items(batchID string) []models.BatchItem {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[batchID]
	if !ok {
		return nil
	}
	return append([]models.BatchItem(nil), b.items...)
}

// Batch returns the server-side metadata of a batch.
func (f *FakeAPI) Batch(batchID string) (models.Batch, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	b, ok := f.batches[batchID]
	if !ok {
		return models.Batch{}, false
	}
	return b.batch, true
}

// Requests returns every request received so far.
func (f *FakeAPI) Requests() []RecordedRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]RecordedRequest(nil), f.requests...)
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key, has := r.Header[http.CanonicalHeaderKey(auth.HeaderAdminKey)]
		rec := RecordedRequest{Method: r.Method, Path: r.URL.Path, HasKey: has}
		if has && len(key) > 0 {
			rec.AdminKey = key[0]
		}

		f.mu.Lock()
		f.requests = append(f.requests, rec)
		fail := f.failNext
		f.failNext = nil
		f.mu.Unlock()

		if fail != nil {
			if fail.message == "" {
				w.WriteHeader(fail.status)
				return
			}
			middleware.ErrorResponse(w, fail.status, fail.message)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// newBatch must be called with f.mu held.
func (f *FakeAPI) newBatch(imbs []string, meta *models.BatchMeta) *fakeBatch {
	now := f.now()
	b := &fakeBatch{
		batch:   models.Batch{ID: uuid.NewString(), CreatedAt: now},
		pending: make(map[string]models.Status),
	}
	if meta != nil {
		b.batch.SourcePlatform = meta.SourcePlatform
		b.batch.Note = meta.Note
	}
	for _, v := range imbs {
		b.items = append(b.items, models.BatchItem{
			ID:        uuid.NewString(),
			IMB:       v,
			Status:    models.StatusPending,
			UpdatedAt: now,
		})
	}
	f.batches[b.batch.ID] = b
	return b
}

func (f *FakeAPI) createBatch(w http.ResponseWriter, r *http.Request) {
	var req models.CreateBatchRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if len(req.IMBs) == 0 {
		middleware.ErrorResponse(w, http.StatusBadRequest, "imbs is required")
		return
	}

	f.mu.Lock()
	b := f.newBatch(req.IMBs, req.Meta)
	f.mu.Unlock()

	middleware.JSONResponse(w, http.StatusCreated, models.CreateBatchResponse{BatchID: b.batch.ID})
}

func (f *FakeAPI) getBatch(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.batches[r.PathValue("id")]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Batch not found")
		return
	}
	middleware.JSONResponse(w, http.StatusOK, models.GetBatchResponse{
		Batch: b.batch,
		Items: append([]models.BatchItem{}, b.items...),
	})
}

func (f *FakeAPI) refreshBatch(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.batches[r.PathValue("id")]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Batch not found")
		return
	}

	now := f.now()
	for i := range b.items {
		if status, staged := b.pending[b.items[i].ID]; staged {
			b.items[i].Status = status
			b.items[i].UpdatedAt = now
		}
	}
	b.pending = make(map[string]models.Status)

	middleware.JSONResponse(w, http.StatusOK, models.RefreshBatchResponse{
		Items: append([]models.BatchItem{}, b.items...),
	})
}

func (f *FakeAPI) updateStatus(w http.ResponseWriter, r *http.Request) {
	batchID := r.PathValue("id")
	itemID := r.PathValue("itemId")

	adminKey := r.Header.Get(auth.HeaderAdminKey)
	if err := auth.ValidateAdminKey(batchID, adminKey, FakeAdminSalt); err != nil {
		middleware.ErrorResponse(w, http.StatusUnauthorized, "Invalid admin key")
		return
	}

	var req models.UpdateStatusRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}
	if !req.Status.Valid() {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid status")
		return
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	b, ok := f.batches[batchID]
	if !ok {
		middleware.ErrorResponse(w, http.StatusNotFound, "Batch not found")
		return
	}
	for i := range b.items {
		if b.items[i].ID == itemID {
			b.items[i].Status = req.Status
			b.items[i].UpdatedAt = f.now()
			middleware.JSONResponse(w, http.StatusOK, models.UpdateStatusResponse{Item: b.items[i]})
			return
		}
	}
	middleware.ErrorResponse(w, http.StatusNotFound, "Item not found")
}
