// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package batchview

import (
	"fmt"
	"strings"
	"sync"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/imbtrack/models"
)

// View mirrors the items of one batch. The tracking service is the
// authority; View only changes through Load and ApplyOverride.
type View struct {
	mu      sync.RWMutex
	batchID string
	batch   models.Batch
	items   []models.BatchItem
}

func New(batchID string) *View {
	return &View{batchID: batchID}
}

func (v *View) BatchID() string {
	return v.batchID
}

// SetBatch records batch metadata from GET /api/batches/{id}.
func (v *View) SetBatch(b models.Batch) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.batch = b
}

func (v *View) Batch() models.Batch {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.batch
}

// Load replaces every item with the server's list, keeping its order.
func (v *View) Load(items []models.BatchItem) {
	next := make([]models.BatchItem, len(items))
	copy(next, items)

	v.mu.Lock()
	defer v.mu.Unlock()
	v.items = next
}

// ApplyOverride replaces the item with the same ID in place. Unknown IDs are
// dropped, since an override always targets an existing row.
func (v *View) ApplyOverride(item models.BatchItem) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	for i := range v.items {
		if v.items[i].ID == item.ID {
			v.items[i] = item
			return true
		}
	}
	return false
}

// Items returns a copy of the cached items in server order.
func (v *View) Items() []models.BatchItem {
	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]models.BatchItem, len(v.items))
	copy(out, v.items)
	return out
}

func (v *View) Len() int {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return len(v.items)
}

// Filter returns the items whose identifier or status contains query,
// ignoring case. A blank query returns every item.
func (v *View) Filter(query string) []models.BatchItem {
	q := strings.ToLower(strings.TrimSpace(query))

	v.mu.RLock()
	defer v.mu.RUnlock()

	out := make([]models.BatchItem, 0, len(v.items))
	for _, item := range v.items {
		if q == "" ||
			strings.Contains(strings.ToLower(item.IMB), q) ||
			strings.Contains(strings.ToLower(string(item.Status)), q) {
			out = append(out, item)
		}
	}
	return out
}

func (v *View) Headline() string {
	return "Batch " + v.batchID
}

// MetaLine renders e.g. "Created 3 hours ago · 12 items".
func (v *View) MetaLine() string {
	v.mu.RLock()
	defer v.mu.RUnlock()

	created := "unknown"
	if !v.batch.CreatedAt.IsZero() {
		created = humanize.Time(v.batch.CreatedAt)
	}
	return fmt.Sprintf("Created %s · %d items", created, len(v.items))
}
