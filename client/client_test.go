// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package client

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/imbtrack/models"
	"github.com/danielhkuo/imbtrack/testutil"
)

func newTestClient(t *testing.T) (*Client, *testutil.FakeAPI) {
	t.Helper()
	api := testutil.NewFakeAPI(t)
	return New(api.URL()+"/", NewHTTPClient(5*time.Second)), api
}

func TestCreateAndGetBatch(t *testing.T) {
	c, api := newTestClient(t)
	ctx := context.Background()

	created, err := c.CreateBatch(ctx, models.CreateBatchRequest{
		IMBs: []string{"00123456789012345678", "00123456789012345679"},
		Meta: &models.BatchMeta{SourcePlatform: "csv", Note: "march mailing"},
	})
	require.NoError(t, err)
	require.NotEmpty(t, created.BatchID)

	batch, ok := api.Batch(created.BatchID)
	require.True(t, ok)
	assert.Equal(t, "csv", batch.SourcePlatform)
	assert.Equal(t, "march mailing", batch.Note)

	got, err := c.GetBatch(ctx, created.BatchID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, "00123456789012345678", got.Items[0].IMB)
	assert.Equal(t, models.StatusPending, got.Items[0].Status)
	assert.False(t, got.Batch.CreatedAt.IsZero())
}

func TestRefreshBatch(t *testing.T) {
	c, api := newTestClient(t)
	batchID, itemIDs := api.SeedBatch("00123456789012345678", "00123456789012345679")
	api.StageUpdate(batchID, itemIDs[1], models.StatusDelivered)

	got, err := c.RefreshBatch(context.Background(), batchID)
	require.NoError(t, err)
	require.Len(t, got.Items, 2)
	assert.Equal(t, models.StatusPending, got.Items[0].Status)
	assert.Equal(t, models.StatusDelivered, got.Items[1].Status)

	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, http.MethodPost, reqs[0].Method)
	assert.Equal(t, "/api/batches/"+batchID+"/refresh", reqs[0].Path)
}

func TestUpdateItemStatus_SendsAdminKey(t *testing.T) {
	c, api := newTestClient(t)
	batchID, itemIDs := api.SeedBatch("00123456789012345678")

	got, err := c.UpdateItemStatus(context.Background(), batchID, itemIDs[0], models.StatusReturned, api.AdminKey(batchID))
	require.NoError(t, err)
	assert.Equal(t, itemIDs[0], got.Item.ID)
	assert.Equal(t, models.StatusReturned, got.Item.Status)

	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.True(t, reqs[0].HasKey)
	assert.Equal(t, api.AdminKey(batchID), reqs[0].AdminKey)
}

func TestUpdateItemStatus_NoKeyNoHeader(t *testing.T) {
	c, api := newTestClient(t)
	batchID, itemIDs := api.SeedBatch("00123456789012345678")

	_, err := c.UpdateItemStatus(context.Background(), batchID, itemIDs[0], models.StatusReturned, "")
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Equal(t, "Invalid admin key", apiErr.Message)
	assert.True(t, IsStatus(err, http.StatusUnauthorized))

	reqs := api.Requests()
	require.Len(t, reqs, 1)
	assert.False(t, reqs[0].HasKey, "header must be omitted without a key")
}

func TestErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		message string
		want    string
	}{
		{"error field surfaced", http.StatusBadRequest, "imbs is required", "imbs is required"},
		{"no body falls back", http.StatusBadGateway, "", "Request failed (502)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, api := newTestClient(t)
			api.FailNext(tt.status, tt.message)

			_, err := c.CreateBatch(context.Background(), models.CreateBatchRequest{IMBs: []string{"x"}})
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())
			assert.True(t, IsStatus(err, tt.status))
		})
	}
}

func TestErrors_NonJSONBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "<html>oops</html>", http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).GetBatch(context.Background(), "b1")
	require.Error(t, err)
	assert.Equal(t, "Request failed (500)", err.Error())
}

func TestGetBatch_NotFound(t *testing.T) {
	c, _ := newTestClient(t)

	_, err := c.GetBatch(context.Background(), "missing")
	require.Error(t, err)
	assert.Equal(t, "Batch not found", err.Error())
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := New(url, nil).RefreshBatch(context.Background(), "b1")
	require.Error(t, err)

	var apiErr *APIError
	assert.False(t, errors.As(err, &apiErr), "transport errors are not API errors")
}

func TestPathEscaping(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		w.Write([]byte(`{"items":[]}`))
	}))
	defer srv.Close()

	_, err := New(srv.URL, nil).RefreshBatch(context.Background(), "a/b c")
	require.NoError(t, err)
	assert.Equal(t, "/api/batches/a%2Fb%20c/refresh", gotPath)
}
