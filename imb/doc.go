// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package imb prepares Intelligent Mail Barcode identifiers for submission.

Everything here is pure: no I/O, no shared state.

# Pipeline

	tokens := imb.ParseTokens(raw)   // split on newline, ',' and ';'
	imbs := imb.Normalize(tokens)    // trim, drop empty, first-seen dedup
	warnings := imb.SummarizeWarnings(imbs)

Prepare runs all three over pasted text plus uploaded file text.

# Validation

ValidateOne applies the rules in order and stops at the first failure:

  - empty after trim
  - length outside [MinLength, MaxLength]
  - characters other than ASCII letters, digits, '.', '_', '-', '/' and whitespace

Warnings are informational only. The tracking service decides what it
accepts; an empty candidate list is the only thing that blocks submission.
*/
package imb
