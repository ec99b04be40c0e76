// Package pdftext extracts plain text from PDF bytes, page by page, using
// ledongthuc/pdf (pure Go, no CGO).
package pdftext

import (
	"bytes"
	"log/slog"
	"strings"

	"github.com/ledongthuc/pdf"

	"GazetteWatch/internal/ports"
)

// Extractor implements best-effort PDF text extraction. It never reports an
// error to the pipeline: malformed input yields zero pages and downstream
// keyword matching naturally finds nothing. Failures are still logged
// distinctly so an operator can tell a broken document from a clean miss.
type Extractor struct {
	logger *slog.Logger
}

var _ ports.TextExtractor = (*Extractor)(nil)

// NewExtractor builds the extractor with an optional logger.
func NewExtractor(log *slog.Logger) *Extractor {
	return &Extractor{logger: log}
}

// Extract returns the text of each page in order. Unreadable pages are
// skipped as empty; a document that cannot be opened at all returns nil.
func (e *Extractor) Extract(data []byte) (pages []string) {
	// the underlying reader panics on some truncated cross-reference tables
	defer func() {
		if r := recover(); r != nil {
			e.warn("pdf reader panicked", "panic", r)
			pages = nil
		}
	}()

	if len(data) == 0 {
		e.warn("empty document")
		return nil
	}

	reader, err := pdf.NewReader(bytes.NewReader(data), int64(len(data)))
	if err != nil {
		e.warn("open pdf", "error", err)
		return nil
	}

	for i := 1; i <= reader.NumPage(); i++ {
		page := reader.Page(i)
		if page.V.IsNull() {
			pages = append(pages, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			e.warn("extract page", "page", i, "error", err)
			pages = append(pages, "")
			continue
		}
		pages = append(pages, strings.TrimSpace(text))
	}

	return pages
}

func (e *Extractor) warn(msg string, args ...interface{}) {
	if e.logger != nil {
		e.logger.Warn(msg, args...)
	}
}
