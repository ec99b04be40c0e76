package mail

import (
	"context"
	"strings"
	"testing"

	"GazetteWatch/internal/config"
	"GazetteWatch/internal/domain"
)

func sampleFindings() []domain.Finding {
	return []domain.Finding{
		{
			Publication: domain.Publication{
				ID:    "G35-2025",
				Title: "General Gazette G35",
				URL:   "https://gazette.example.gov/pdfs/G35-2025.pdf",
			},
			Terms: []string{"acquisition"},
			Occurrences: []domain.Occurrence{
				{Term: "acquisition", Page: 12, Snippet: "notice of acquisition of land"},
			},
		},
	}
}

func TestNotifyEmptyFindingsIsNoop(t *testing.T) {
	t.Parallel()

	// deliberately unconfigured: must not even attempt to build a message
	n := NewNotifier(config.EmailConfig{}, "", nil)
	if err := n.Notify(context.Background(), nil); err != nil {
		t.Fatalf("expected no-op on empty findings, got %v", err)
	}
}

func TestBuildSubjectCountsFindings(t *testing.T) {
	t.Parallel()

	subject := buildSubject("Gazette Alert", sampleFindings())
	if !strings.HasPrefix(subject, "Gazette Alert: 1 gazette(s) matched") {
		t.Fatalf("unexpected subject: %s", subject)
	}
}

func TestBuildPlainBodyListsTermsAndPages(t *testing.T) {
	t.Parallel()

	body := buildPlainBody(sampleFindings())
	if !strings.Contains(body, "General Gazette G35") {
		t.Fatalf("plain body missing title:\n%s", body)
	}
	if !strings.Contains(body, "Found term: acquisition (page 12)") {
		t.Fatalf("plain body missing occurrence:\n%s", body)
	}
	if !strings.Contains(body, "notice of acquisition of land") {
		t.Fatalf("plain body missing snippet:\n%s", body)
	}
}

func TestBuildHTMLBodyEscapesContent(t *testing.T) {
	t.Parallel()

	findings := sampleFindings()
	findings[0].Publication.Title = `Gazette <script>alert("x")</script>`
	findings[0].Occurrences[0].Snippet = "a & b < c"

	body := buildHTMLBody(findings)
	if strings.Contains(body, "<script>") {
		t.Fatalf("html body did not escape title:\n%s", body)
	}
	if !strings.Contains(body, "a &amp; b &lt; c") {
		t.Fatalf("html body did not escape snippet:\n%s", body)
	}
	if !strings.Contains(body, `href="https://gazette.example.gov/pdfs/G35-2025.pdf"`) {
		t.Fatalf("html body missing link:\n%s", body)
	}
}
