// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package batchview keeps the local item list of one batch in sync with the
tracking service.

	v := batchview.New(batchID)
	v.Load(resp.Items)          // full reload, server order
	v.ApplyOverride(updated)    // in-place patch by item ID
	rows := v.Filter("deliv")   // derived display list

Callers only invoke Load and ApplyOverride after a successful API call, so a
failed request leaves the cache at its last good value. Overrides for
different items commute; two overrides of the same item resolve to whichever
response arrives last.
*/
package batchview
