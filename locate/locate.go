// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package locate finds batch ids in links and builds share links.
package locate

import (
	"errors"
	"net/url"
	"strings"
)

var ErrNoBatchID = errors.New("missing batch ID in URL")

// BatchID accepts a bare id, a batch.html?id=<id> link or a .../b/<id> link.
func BatchID(ref string) (string, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return "", ErrNoBatchID
	}
	if !strings.Contains(ref, "/") && !strings.Contains(ref, "?") {
		return ref, nil
	}

	u, err := url.Parse(ref)
	if err != nil {
		return "", ErrNoBatchID
	}
	if id := u.Query().Get("id"); id != "" {
		return id, nil
	}

	parts := strings.FieldsFunc(u.Path, func(r rune) bool { return r == '/' })
	for i, p := range parts {
		if p == "b" && i+1 < len(parts) {
			return parts[i+1], nil
		}
	}
	return "", ErrNoBatchID
}

// BasePath returns the directory a front-end is served from, ending in "/".
func BasePath(pathname string) string {
	if prefix, _, found := strings.Cut(pathname, "/b/"); found {
		if strings.HasSuffix(prefix, "/") {
			return prefix
		}
		return prefix + "/"
	}
	if strings.HasSuffix(pathname, "/batch.html") {
		return strings.TrimSuffix(pathname, "batch.html")
	}
	if strings.HasSuffix(pathname, "/") {
		return pathname
	}
	if i := strings.LastIndex(pathname, "/"); i >= 0 {
		return pathname[:i+1]
	}
	return "/"
}

// ShareLink builds <origin><base>b/<id> for the page at pathname.
func ShareLink(origin, pathname, batchID string) string {
	return strings.TrimRight(origin, "/") + BasePath(pathname) + "b/" + url.PathEscape(batchID)
}
