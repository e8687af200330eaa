// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"

	"github.com/danielhkuo/imbtrack/auth"
)

const adminKeyName = "adminKey"

// Session is the per-user state handed to command handlers. It replaces
// browser-local storage with an explicit Store.
type Session struct {
	store Store
}

func New(store Store) *Session {
	return &Session{store: store}
}

// AdminKey returns the stored key, or "" when there is none.
func (s *Session) AdminKey(ctx context.Context) (string, error) {
	key, err := s.store.Get(ctx, adminKeyName)
	if errors.Is(err, ErrNotFound) {
		return "", nil
	}
	return key, err
}

func (s *Session) HasAdminKey(ctx context.Context) (bool, error) {
	key, err := s.AdminKey(ctx)
	return key != "", err
}

func (s *Session) SetAdminKey(ctx context.Context, key string) error {
	if key == "" {
		return s.ClearAdminKey(ctx)
	}
	if err := s.store.Set(ctx, adminKeyName, key); err != nil {
		return err
	}
	slog.Info("admin key stored", "key", auth.Mask(key))
	return nil
}

func (s *Session) ClearAdminKey(ctx context.Context) error {
	if err := s.store.Delete(ctx, adminKeyName); err != nil {
		return err
	}
	slog.Info("admin key cleared")
	return nil
}

// AdoptFromURL stores the adminKey query parameter of a batch link, if any,
// and returns the link without it. adopted is false when the link had no key.
func (s *Session) AdoptFromURL(ctx context.Context, rawURL string) (stripped string, adopted bool, err error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL, false, fmt.Errorf("invalid link: %w", err)
	}

	q := u.Query()
	key := q.Get(auth.QueryAdminKey)
	if key == "" {
		return rawURL, false, nil
	}

	if err := s.SetAdminKey(ctx, key); err != nil {
		return rawURL, false, err
	}

	q.Del(auth.QueryAdminKey)
	u.RawQuery = q.Encode()
	return u.String(), true, nil
}
