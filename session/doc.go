// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package session keeps the user's admin key between runs.

A Session wraps a Store (MemoryStore, or SQLStore on the db package's kv
table). Batch links may carry the key as ?adminKey=...; AdoptFromURL stores
it and hands back the link without it. The key stays until ClearAdminKey.

The tracking service validates keys. The session never inspects them.
*/
package session
