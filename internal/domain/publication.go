package domain

import (
	"net/url"
	"path"
	"strings"
	"time"
)

// Publication is a single gazette issue discovered on a listing page.
type Publication struct {
	ID          string
	Title       string
	URL         string
	PublishedAt time.Time
}

// Occurrence locates one keyword hit inside an extracted document.
type Occurrence struct {
	Term    string
	Page    int
	Snippet string
}

// Finding groups everything matched within one publication. Terms preserves
// keyword configuration order with duplicates removed.
type Finding struct {
	Publication Publication
	Terms       []string
	Occurrences []Occurrence
}

// IdentifierFromURL derives a stable publication identifier from its download
// URL: the path basename without the .pdf extension, or the full URL when the
// basename is empty.
func IdentifierFromURL(raw string) string {
	parsed, err := url.Parse(raw)
	if err != nil {
		return raw
	}

	base := path.Base(parsed.Path)
	base = strings.TrimSuffix(base, path.Ext(base))
	if base == "" || base == "." || base == "/" {
		return raw
	}
	return base
}
