// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package imb

import (
	"fmt"
	"strings"
)

// DefaultWarningSample is how many warnings a summary line shows.
const DefaultWarningSample = 5

// Candidates is the deduplicated identifier list of one edit session
// together with its format warnings.
type Candidates struct {
	IMBs     []string
	Warnings []string
}

// Prepare joins the non-empty sources (pasted text, file text) with line
// breaks and runs them through ParseTokens, Normalize and SummarizeWarnings.
func Prepare(sources ...string) Candidates {
	parts := make([]string, 0, len(sources))
	for _, s := range sources {
		if s != "" {
			parts = append(parts, s)
		}
	}
	imbs := Normalize(ParseTokens(strings.Join(parts, "\n")))
	return Candidates{
		IMBs:     imbs,
		Warnings: SummarizeWarnings(imbs),
	}
}

// Ready reports whether there is anything to submit. Warnings never block.
func (c Candidates) Ready() bool {
	return len(c.IMBs) > 0
}

// Summary returns e.g. "3 unique IMBs ready".
func (c Candidates) Summary() string {
	n := len(c.IMBs)
	if n == 1 {
		return "1 unique IMB ready"
	}
	return fmt.Sprintf("%d unique IMBs ready", n)
}

// WarningSample joins at most limit warnings. A limit below one means
// DefaultWarningSample.
func (c Candidates) WarningSample(limit int) string {
	if len(c.Warnings) == 0 {
		return "No format warnings detected."
	}
	if limit < 1 {
		limit = DefaultWarningSample
	}
	shown := c.Warnings
	suffix := ""
	if len(shown) > limit {
		shown = shown[:limit]
		suffix = "..."
	}
	return "Warnings: " + strings.Join(shown, " · ") + suffix
}
