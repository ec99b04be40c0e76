package parser

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/scanner"
)

var dateExpr = regexp.MustCompile(`\d{1,2} [A-Za-z]{3,9} \d{4}`)

// GazetteScanner crawls a gazette listing page and extracts the PDF
// publications it links to, in page order.
type GazetteScanner struct {
	client    *http.Client
	userAgent string
}

// NewGazetteScanner wires an HTTP client; a nil client gets a 20s timeout.
func NewGazetteScanner(client *http.Client, userAgent string) *GazetteScanner {
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	if userAgent == "" {
		userAgent = "GazetteWatch/1.0"
	}
	return &GazetteScanner{client: client, userAgent: userAgent}
}

// Name identifies the strategy inside the registry.
func (g *GazetteScanner) Name() string {
	return "gazette"
}

// Scan fetches the listing page and returns its publications. Entries with
// unresolvable links are skipped; a page without any anchor markup at all is
// a page-level parse failure.
func (g *GazetteScanner) Scan(ctx context.Context, req scanner.Request) ([]domain.Publication, error) {
	doc, err := g.fetchDocument(ctx, req.URL)
	if err != nil {
		return nil, fmt.Errorf("site %s: %w", req.SiteName, err)
	}

	anchors := doc.Find("a[href]")
	if anchors.Length() == 0 {
		return nil, fmt.Errorf("site %s: no anchors in listing page: %w", req.SiteName, domain.ErrParse)
	}

	base, err := url.Parse(req.URL)
	if err != nil {
		return nil, fmt.Errorf("site %s: listing url: %w", req.SiteName, domain.ErrParse)
	}

	results := make([]domain.Publication, 0)
	seen := map[string]struct{}{}

	anchors.Each(func(i int, a *goquery.Selection) {
		pub, ok := parseEntry(a, base)
		if !ok {
			return
		}
		if _, dup := seen[pub.ID]; dup {
			return
		}
		seen[pub.ID] = struct{}{}
		results = append(results, pub)
	})

	return results, nil
}

func (g *GazetteScanner) fetchDocument(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", domain.ErrFetch)
	}
	req.Header.Set("User-Agent", g.userAgent)

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request listing: %v: %w", err, domain.ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("listing returned %s: %w", resp.Status, domain.ErrFetch)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse listing: %v: %w", err, domain.ErrParse)
	}

	return doc, nil
}

// parseEntry turns one anchor into a publication. Anchors that do not point
// at a PDF are ignored; anchors that do but carry an unresolvable href count
// as malformed and are skipped.
func parseEntry(a *goquery.Selection, base *url.URL) (domain.Publication, bool) {
	href, exists := a.Attr("href")
	href = strings.TrimSpace(href)
	if !exists || href == "" {
		return domain.Publication{}, false
	}

	if !looksLikePDF(href) {
		return domain.Publication{}, false
	}

	ref, err := url.Parse(href)
	if err != nil {
		return domain.Publication{}, false
	}
	resolved := base.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return domain.Publication{}, false
	}
	full := resolved.String()

	id := domain.IdentifierFromURL(full)

	title := strings.TrimSpace(a.Text())
	if title == "" {
		title = id
	}

	return domain.Publication{
		ID:          id,
		Title:       title,
		URL:         full,
		PublishedAt: parseDate(a),
	}, true
}

func looksLikePDF(href string) bool {
	trimmed := href
	if at := strings.IndexAny(trimmed, "?#"); at >= 0 {
		trimmed = trimmed[:at]
	}
	return strings.HasSuffix(strings.ToLower(trimmed), ".pdf")
}

// parseDate pulls a publication date out of the anchor text or its enclosing
// table row; the listing prints dates like "28 August 2025". Missing dates
// are left zero rather than treated as malformation.
func parseDate(a *goquery.Selection) time.Time {
	text := a.Text()
	if row := a.Closest("tr"); row.Length() > 0 {
		text += " " + row.Text()
	} else {
		text += " " + a.Parent().Text()
	}

	found := dateExpr.FindString(text)
	if found == "" {
		return time.Time{}
	}

	for _, layout := range []string{"2 January 2006", "2 Jan 2006"} {
		if parsed, err := time.Parse(layout, found); err == nil {
			return parsed.UTC()
		}
	}
	return time.Time{}
}
