package parser

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/PuerkitoBio/goquery"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/scanner"
)

func TestParseEntry(t *testing.T) {
	t.Parallel()

	html := `
	<table>
	  <tr>
	    <td>28 August 2025</td>
	    <td><a href="/gazettes/2025/G35-2025.pdf">General Gazette G35</a></td>
	  </tr>
	</table>`

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	base, _ := url.Parse("https://gazette.example.gov/gazette_bin/recent.cfm")
	pub, ok := parseEntry(doc.Find("a").First(), base)
	if !ok {
		t.Fatalf("expected entry to parse")
	}

	if pub.ID != "G35-2025" {
		t.Fatalf("unexpected id: %s", pub.ID)
	}
	if pub.Title != "General Gazette G35" {
		t.Fatalf("unexpected title: %s", pub.Title)
	}
	if pub.URL != "https://gazette.example.gov/gazettes/2025/G35-2025.pdf" {
		t.Fatalf("unexpected url: %s", pub.URL)
	}

	wantDate := time.Date(2025, time.August, 28, 0, 0, 0, 0, time.UTC)
	if !pub.PublishedAt.Equal(wantDate) {
		t.Fatalf("unexpected published date: %v", pub.PublishedAt)
	}
}

func TestParseEntrySkipsNonPDF(t *testing.T) {
	t.Parallel()

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(`<a href="/about.html">About</a>`))
	if err != nil {
		t.Fatalf("new document: %v", err)
	}

	base, _ := url.Parse("https://gazette.example.gov/")
	if _, ok := parseEntry(doc.Find("a").First(), base); ok {
		t.Fatalf("expected non-PDF anchor to be ignored")
	}
}

func TestScanSkipsMalformedEntry(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
		<table>
		  <tr><td>28 August 2025</td><td><a href="/pdfs/G35-2025.pdf">General Gazette G35</a></td></tr>
		  <tr><td>27 August 2025</td><td><a href="://broken/S401-2025.pdf">Special Gazette S401</a></td></tr>
		  <tr><td>21 August 2025</td><td><a href="/pdfs/G34-2025.pdf">General Gazette G34</a></td></tr>
		</table>`))
	}))
	defer server.Close()

	sc := NewGazetteScanner(server.Client(), "")
	pubs, err := sc.Scan(context.Background(), scanner.Request{SiteName: "vic", URL: server.URL + "/recent.cfm"})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(pubs) != 2 {
		t.Fatalf("expected malformed entry skipped, got %d publications", len(pubs))
	}
	if pubs[0].ID != "G35-2025" || pubs[1].ID != "G34-2025" {
		t.Fatalf("unexpected ids in listing order: %s, %s", pubs[0].ID, pubs[1].ID)
	}
}

func TestScanPreservesListingOrderAndDedupes(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`
		<a href="/pdfs/G35-2025.pdf">General Gazette G35</a>
		<a href="/pdfs/G35-2025.pdf">General Gazette G35 (again)</a>
		<a href="/pdfs/S400-2025.pdf">Special Gazette S400</a>`))
	}))
	defer server.Close()

	sc := NewGazetteScanner(server.Client(), "")
	pubs, err := sc.Scan(context.Background(), scanner.Request{SiteName: "vic", URL: server.URL})
	if err != nil {
		t.Fatalf("Scan error: %v", err)
	}

	if len(pubs) != 2 {
		t.Fatalf("expected duplicate link collapsed, got %d", len(pubs))
	}
	if pubs[0].ID != "G35-2025" || pubs[1].ID != "S400-2025" {
		t.Fatalf("unexpected order: %s, %s", pubs[0].ID, pubs[1].ID)
	}
}

func TestScanHTTPErrorIsFetchError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	sc := NewGazetteScanner(server.Client(), "")
	_, err := sc.Scan(context.Background(), scanner.Request{SiteName: "vic", URL: server.URL})
	if !errors.Is(err, domain.ErrFetch) {
		t.Fatalf("expected ErrFetch, got %v", err)
	}
}

func TestScanMissingMarkupIsParseError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html><body><p>maintenance page</p></body></html>`))
	}))
	defer server.Close()

	sc := NewGazetteScanner(server.Client(), "")
	_, err := sc.Scan(context.Background(), scanner.Request{SiteName: "vic", URL: server.URL})
	if !errors.Is(err, domain.ErrParse) {
		t.Fatalf("expected ErrParse, got %v", err)
	}
}
