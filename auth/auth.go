// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// HeaderAdminKey carries the admin key on status override requests.
const HeaderAdminKey = "x-admin-key"

// QueryAdminKey is the link parameter an admin key arrives in.
const QueryAdminKey = "adminKey"

var ErrInvalidAdminKey = errors.New("invalid admin key")

// GenerateAdminKey derives the admin key of a batch from a service secret.
// The tracking service owns this; the client only uses it to stand in for
// the service in tests and local demos.
func GenerateAdminKey(batchID, salt string) string {
	h := hmac.New(sha256.New, []byte(salt))
	h.Write([]byte(batchID))
	sum := h.Sum(nil)
	return strings.TrimRight(base64.URLEncoding.EncodeToString(sum), "=")
}

// ValidateAdminKey checks adminKey against the key derived for batchID.
func ValidateAdminKey(batchID, adminKey, salt string) error {
	expected := GenerateAdminKey(batchID, salt)
	if !hmac.Equal([]byte(adminKey), []byte(expected)) {
		return ErrInvalidAdminKey
	}
	return nil
}

// Mask hides all but the edges of a key so it can be logged.
func Mask(key string) string {
	switch {
	case key == "":
		return ""
	case len(key) <= 8:
		return strings.Repeat("*", len(key))
	}
	return key[:4] + strings.Repeat("*", len(key)-8) + key[len(key)-4:]
}
