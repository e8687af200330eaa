// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth holds the admin key conventions shared by the client and the
fake tracking service used in tests.

# Admin Keys

The tracking service validates admin keys; the client only attaches them:

	req.Header.Set(auth.HeaderAdminKey, key)

Keys reach the client as the adminKey parameter of a batch link
(QueryAdminKey) and are kept by the session package.

Keys are derived with HMAC-SHA256 and URL-safe base64 without padding:

	adminKey := auth.GenerateAdminKey(batchID, salt)
	err := auth.ValidateAdminKey(batchID, adminKey, salt)

# Logging

Never log a key in full:

	slog.Info("admin key stored", "key", auth.Mask(key))
*/
package auth
