package mail

import (
	"fmt"
	"html"
	"strings"
	"time"

	"GazetteWatch/internal/domain"
)

func buildSubject(prefix string, findings []domain.Finding) string {
	if prefix == "" {
		prefix = "Gazette Alert"
	}
	stamp := time.Now().Format("2006-01-02 15:04")
	return fmt.Sprintf("%s: %d gazette(s) matched — %s", prefix, len(findings), stamp)
}

func buildPlainBody(findings []domain.Finding) string {
	var b strings.Builder
	b.WriteString("Automated alert: new gazette issue(s) matched your search terms.\n")

	for _, f := range findings {
		fmt.Fprintf(&b, "\n• %s (%s)\n", f.Publication.Title, f.Publication.URL)
		for _, occ := range f.Occurrences {
			fmt.Fprintf(&b, "  - Found term: %s (page %d)\n", occ.Term, occ.Page)
			fmt.Fprintf(&b, "    Context: …%s…\n", occ.Snippet)
		}
	}

	return b.String()
}

func buildHTMLBody(findings []domain.Finding) string {
	var b strings.Builder
	b.WriteString(`<html><body style="font-family: sans-serif;">`)
	b.WriteString(`<p>Automated alert: new gazette issue(s) matched your search terms.</p>`)
	b.WriteString(`<ul style="list-style-type: none; padding-left: 0;">`)

	for _, f := range findings {
		b.WriteString(`<li style="margin-bottom: 1em; border: 1px solid #ccc; padding: 10px; border-radius: 5px;">`)
		fmt.Fprintf(&b, `<p style="margin: 0;"><strong>%s</strong><br><small><a href="%s">%s</a></small></p>`,
			html.EscapeString(f.Publication.Title),
			html.EscapeString(f.Publication.URL),
			html.EscapeString(f.Publication.URL))
		b.WriteString(`<hr style="border: 0; border-top: 1px solid #eee;">`)

		for _, occ := range f.Occurrences {
			b.WriteString(`<div style="margin-top: 10px; padding-left: 15px;">`)
			fmt.Fprintf(&b, `<p style="margin: 0;">Found term: <strong>%s</strong> (page %d)</p>`,
				html.EscapeString(occ.Term), occ.Page)
			fmt.Fprintf(&b, `<p style="margin: 5px 0 0 0; font-size: 0.9em; color: #555; border-left: 3px solid #ddd; padding-left: 10px;"><em>…%s…</em></p>`,
				html.EscapeString(occ.Snippet))
			b.WriteString(`</div>`)
		}

		b.WriteString(`</li>`)
	}

	b.WriteString(`</ul></body></html>`)
	return b.String()
}
