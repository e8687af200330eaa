// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imb

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Inclusive length bounds for an identifier, in characters.
const (
	MinLength = 10
	MaxLength = 80
)

// Reason names the first validation rule an identifier failed.
type Reason string

const (
	ReasonEmpty   Reason = "empty"
	ReasonLength  Reason = "length"
	ReasonCharset Reason = "charset"
)

// Outcome is the result of ValidateOne. Reason is empty when OK is true.
type Outcome struct {
	OK     bool
	Reason Reason
}

// Valid is the outcome of an identifier that passed every check.
var Valid = Outcome{OK: true}

// Invalid builds a failed outcome.
func Invalid(r Reason) Outcome {
	return Outcome{Reason: r}
}

func (o Outcome) String() string {
	if o.OK {
		return "valid"
	}
	return "invalid(" + string(o.Reason) + ")"
}

// ParseTokens splits raw text on line breaks, commas and semicolons.
// Fragments are trimmed and empty ones dropped; duplicates are kept.
func ParseTokens(raw string) []string {
	tokens := []string{}
	if raw == "" {
		return tokens
	}
	for _, line := range strings.Split(raw, "\n") {
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || r == ';'
		})
		for _, f := range fields {
			if v := strings.TrimSpace(f); v != "" {
				tokens = append(tokens, v)
			}
		}
	}
	return tokens
}

// Normalize trims tokens, drops empty ones and removes exact duplicates,
// keeping the first occurrence in its original position.
func Normalize(tokens []string) []string {
	seen := make(map[string]struct{}, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		v := strings.TrimSpace(t)
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// ValidateOne checks a single identifier. Rules run in order (empty, length,
// charset) and only the first failure is reported.
func ValidateOne(token string) Outcome {
	v := strings.TrimSpace(token)
	if v == "" {
		return Invalid(ReasonEmpty)
	}
	if n := utf8.RuneCountInString(v); n < MinLength || n > MaxLength {
		return Invalid(ReasonLength)
	}
	for _, r := range v {
		if !allowed(r) {
			return Invalid(ReasonCharset)
		}
	}
	return Valid
}

func allowed(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '.', r == '_', r == '-', r == '/':
		return true
	}
	return unicode.IsSpace(r)
}

// SummarizeWarnings renders a message for every length or charset failure,
// in input order.
func SummarizeWarnings(tokens []string) []string {
	warnings := []string{}
	for _, t := range tokens {
		switch ValidateOne(t).Reason {
		case ReasonLength:
			warnings = append(warnings, fmt.Sprintf("%s (length %d)", t, utf8.RuneCountInString(t)))
		case ReasonCharset:
			warnings = append(warnings, t+" (unsupported characters)")
		}
	}
	return warnings
}
