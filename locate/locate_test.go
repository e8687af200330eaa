// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package locate

import (
	"errors"
	"testing"
)

func TestBatchID(t *testing.T) {
	tests := []struct {
		ref     string
		want    string
		wantErr bool
	}{
		{"abc123", "abc123", false},
		{"https://track.example/batch.html?id=abc123", "abc123", false},
		{"https://track.example/app/b/abc123", "abc123", false},
		{"https://track.example/b/abc123?adminKey=k", "abc123", false},
		{"/b/abc123", "abc123", false},
		{"https://track.example/batch.html", "", true},
		{"https://track.example/b/", "", true},
		{"  ", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.ref, func(t *testing.T) {
			got, err := BatchID(tt.ref)
			if (err != nil) != tt.wantErr {
				t.Fatalf("BatchID(%q) error = %v, wantErr %v", tt.ref, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrNoBatchID) {
				t.Errorf("expected ErrNoBatchID, got %v", err)
			}
			if got != tt.want {
				t.Errorf("BatchID(%q) = %q, want %q", tt.ref, got, tt.want)
			}
		})
	}
}

func TestBasePath(t *testing.T) {
	tests := map[string]string{
		"/b/abc":              "/",
		"/tracker/b/abc":      "/tracker/",
		"/tracker/batch.html": "/tracker/",
		"/tracker/":           "/tracker/",
		"/tracker/index.html": "/tracker/",
		"":                    "/",
	}

	for in, want := range tests {
		if got := BasePath(in); got != want {
			t.Errorf("BasePath(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShareLink(t *testing.T) {
	got := ShareLink("https://track.example", "/tracker/batch.html", "abc123")
	if got != "https://track.example/tracker/b/abc123" {
		t.Errorf("ShareLink = %q", got)
	}
}
