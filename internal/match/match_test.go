package match

import (
	"strings"
	"testing"
)

func TestKeywordsCaseInsensitive(t *testing.T) {
	t.Parallel()

	got := Keywords("Taxation Notice issued under the Act", []string{"TAX"})
	if len(got) != 1 || got[0] != "TAX" {
		t.Fatalf("expected [TAX], got %v", got)
	}
}

func TestKeywordsPreservesConfigOrder(t *testing.T) {
	t.Parallel()

	terms := []string{"rezoning", "acquisition", "stratum"}
	text := "Notice of acquisition follows the rezoning application"

	got := Keywords(text, terms)
	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %v", got)
	}
	if got[0] != "rezoning" || got[1] != "acquisition" {
		t.Fatalf("expected config order [rezoning acquisition], got %v", got)
	}
}

func TestKeywordsUniqueResult(t *testing.T) {
	t.Parallel()

	text := "acquisition here, acquisition there, acquisition everywhere"
	got := Keywords(text, []string{"acquisition", "Acquisition"})
	if len(got) != 1 {
		t.Fatalf("expected single match despite repeats, got %v", got)
	}
}

func TestKeywordsSubsetOfTerms(t *testing.T) {
	t.Parallel()

	terms := []string{"alpha", "beta", "gamma"}
	got := Keywords("only beta appears", terms)

	allowed := map[string]bool{}
	for _, term := range terms {
		allowed[term] = true
	}
	for _, m := range got {
		if !allowed[m] {
			t.Fatalf("matcher invented term %q", m)
		}
	}
	if len(got) != 1 || got[0] != "beta" {
		t.Fatalf("expected [beta], got %v", got)
	}
}

func TestKeywordsEmptyText(t *testing.T) {
	t.Parallel()

	if got := Keywords("", []string{"acquisition"}); len(got) != 0 {
		t.Fatalf("expected no matches on empty text, got %v", got)
	}
}

func TestOccurrencesPageNumbersAndSnippets(t *testing.T) {
	t.Parallel()

	pages := []string{
		"nothing relevant on the first page",
		"Notice of intention to acquire land\nat 1 Example Street",
	}

	got := Occurrences(pages, []string{"intention to acquire"})
	if len(got) != 1 {
		t.Fatalf("expected 1 occurrence, got %d", len(got))
	}
	if got[0].Page != 2 {
		t.Fatalf("expected page 2, got %d", got[0].Page)
	}
	if !strings.Contains(got[0].Snippet, "intention to acquire land at 1 Example Street") {
		t.Fatalf("snippet missing flattened context: %q", got[0].Snippet)
	}
}

func TestOccurrencesCountsRepeats(t *testing.T) {
	t.Parallel()

	pages := []string{"acquisition first, then another acquisition"}
	got := Occurrences(pages, []string{"acquisition"})
	if len(got) != 2 {
		t.Fatalf("expected 2 occurrences, got %d", len(got))
	}
}

func TestSnippetBoundsClamped(t *testing.T) {
	t.Parallel()

	pages := []string{"tax"}
	got := Occurrences(pages, []string{"tax"})
	if len(got) != 1 || got[0].Snippet != "tax" {
		t.Fatalf("unexpected snippet for short page: %v", got)
	}
}
