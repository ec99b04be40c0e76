// Package match implements case-insensitive keyword scanning over extracted
// document text. Matching is plain substring containment, not word-boundary
// aware: the term "tax" matches "taxation".
package match

import (
	"strings"
	"unicode/utf8"

	"GazetteWatch/internal/domain"
)

const snippetRadius = 120

// Keywords returns the subset of terms contained in text, in terms order,
// each at most once regardless of how often it occurs. Duplicate terms in
// the input behave as a no-op.
func Keywords(text string, terms []string) []string {
	lowered := strings.ToLower(text)

	var matched []string
	found := map[string]struct{}{}
	for _, term := range terms {
		key := strings.ToLower(term)
		if key == "" {
			continue
		}
		if _, ok := found[key]; ok {
			continue
		}
		if strings.Contains(lowered, key) {
			found[key] = struct{}{}
			matched = append(matched, term)
		}
	}

	return matched
}

// Occurrences scans each page for every term and returns all hits with a
// 1-based page number and a short context snippet. Pages are scanned in
// order, terms in configuration order within a page.
func Occurrences(pages []string, terms []string) []domain.Occurrence {
	var results []domain.Occurrence
	for i, page := range pages {
		lowered := strings.ToLower(page)
		for _, term := range terms {
			key := strings.ToLower(term)
			if key == "" {
				continue
			}
			offset := 0
			for {
				idx := strings.Index(lowered[offset:], key)
				if idx < 0 {
					break
				}
				at := offset + idx
				results = append(results, domain.Occurrence{
					Term:    term,
					Page:    i + 1,
					Snippet: snippet(page, at, at+len(key)),
				})
				offset = at + len(key)
			}
		}
	}
	return results
}

// snippet cuts the surrounding context of one hit, flattening newlines.
// Offsets come from the lowercased page and may drift on non-ASCII input,
// so they are clamped before slicing.
func snippet(text string, start, end int) string {
	if start > len(text) {
		start = len(text)
	}
	if end > len(text) {
		end = len(text)
	}

	lo := start - snippetRadius
	if lo < 0 {
		lo = 0
	}
	hi := end + snippetRadius
	if hi > len(text) {
		hi = len(text)
	}

	// back off to rune boundaries so the cut never splits a character
	for lo > 0 && !utf8.RuneStart(text[lo]) {
		lo--
	}
	for hi < len(text) && !utf8.RuneStart(text[hi]) {
		hi++
	}

	cut := strings.ReplaceAll(text[lo:hi], "\n", " ")
	return strings.TrimSpace(cut)
}
