package ports

import (
	"context"

	"GazetteWatch/internal/domain"
)

// ListingSource pulls the current set of publications from configured sites.
type ListingSource interface {
	FetchListing(ctx context.Context) ([]domain.Publication, error)
}

// Downloader fetches the raw bytes of a single publication document.
type Downloader interface {
	Download(ctx context.Context, pub domain.Publication) ([]byte, error)
}

// TextExtractor converts raw document bytes to pages of plain text.
// Implementations never fail the run: malformed input yields zero pages.
type TextExtractor interface {
	Extract(data []byte) []string
}

// SeenStore tracks publication identifiers already processed across runs.
type SeenStore interface {
	Load(ctx context.Context) error
	IsSeen(id string) bool
	MarkSeen(id string)
	Save(ctx context.Context) error
}

// Notifier delivers an alert covering the findings of one run.
type Notifier interface {
	Notify(ctx context.Context, findings []domain.Finding) error
}

// SecretProvider resolves stored secrets by name from a platform credential
// store, so the pipeline never handles plaintext credentials itself.
type SecretProvider interface {
	GetSecret(name string) (string, error)
}
