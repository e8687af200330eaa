// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/danielhkuo/imbtrack/commands"
	"github.com/danielhkuo/imbtrack/models"
	"github.com/danielhkuo/imbtrack/session"
	"github.com/danielhkuo/imbtrack/testutil"
)

func TestPreview(t *testing.T) {
	h := NewPreviewHandler(commands.New(nil, session.New(session.NewMemoryStore())))

	dir := t.TempDir()
	path := filepath.Join(dir, "imbs.csv")
	if err := os.WriteFile(path, []byte("00123456789012345678\n00999999999999999999;short"), 0o644); err != nil {
		t.Fatal(err)
	}

	testCases := []struct {
		name        string
		req         models.PreviewRequest
		wantCount   int
		wantSummary string
		wantSample  string
		wantFileErr string
	}{
		{
			name:        "empty",
			req:         models.PreviewRequest{},
			wantCount:   0,
			wantSummary: "0 unique IMBs ready",
			wantSample:  "No format warnings detected.",
		},
		{
			name:        "pasted text deduplicated",
			req:         models.PreviewRequest{Text: "00123456789012345678, 00123456789012345678"},
			wantCount:   1,
			wantSummary: "1 unique IMB ready",
			wantSample:  "No format warnings detected.",
		},
		{
			name:        "text plus file",
			req:         models.PreviewRequest{Text: "00123456789012345678", FilePath: path},
			wantCount:   3,
			wantSummary: "3 unique IMBs ready",
			wantSample:  "Warnings: short (length 5)",
		},
		{
			name:        "unreadable file",
			req:         models.PreviewRequest{Text: "00123456789012345678", FilePath: filepath.Join(dir, "missing.txt")},
			wantCount:   1,
			wantSummary: "1 unique IMB ready",
			wantSample:  "No format warnings detected.",
			wantFileErr: "Failed to read file.",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			h.Preview(w, testutil.MakeRequest("POST", "/preview", tc.req, nil))

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.PreviewResponse
			testutil.AssertJSON(t, w, &resp)

			if resp.Count != tc.wantCount || len(resp.IMBs) != tc.wantCount {
				t.Errorf("Expected %d IMBs, got count=%d len=%d", tc.wantCount, resp.Count, len(resp.IMBs))
			}
			if resp.Ready != (tc.wantCount > 0) {
				t.Errorf("Expected ready=%v", tc.wantCount > 0)
			}
			if resp.Summary != tc.wantSummary {
				t.Errorf("Expected summary %q, got %q", tc.wantSummary, resp.Summary)
			}
			if resp.WarningSample != tc.wantSample {
				t.Errorf("Expected sample %q, got %q", tc.wantSample, resp.WarningSample)
			}
			if resp.FileError != tc.wantFileErr {
				t.Errorf("Expected file error %q, got %q", tc.wantFileErr, resp.FileError)
			}
		})
	}
}

func TestPreview_InvalidJSON(t *testing.T) {
	h := NewPreviewHandler(commands.New(nil, session.New(session.NewMemoryStore())))

	w := httptest.NewRecorder()
	h.Preview(w, testutil.MakeRequest("POST", "/preview", "nope", nil))

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}
