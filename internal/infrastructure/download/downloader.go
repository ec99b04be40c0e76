package download

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/ports"
)

// HTTPDownloader fetches publication documents over plain HTTP GET.
type HTTPDownloader struct {
	client    *http.Client
	userAgent string
}

var _ ports.Downloader = (*HTTPDownloader)(nil)

// NewHTTPDownloader wires an HTTP client; a nil client gets a 60s timeout
// since gazette issues can run to hundreds of pages.
func NewHTTPDownloader(client *http.Client, userAgent string) *HTTPDownloader {
	if client == nil {
		client = &http.Client{Timeout: 60 * time.Second}
	}
	if userAgent == "" {
		userAgent = "GazetteWatch/1.0"
	}
	return &HTTPDownloader{client: client, userAgent: userAgent}
}

// Download retrieves the raw document bytes. Any transport or status failure
// is a fetch error; the caller treats it as fatal to the run.
func (d *HTTPDownloader) Download(ctx context.Context, pub domain.Publication) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pub.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", pub.ID, domain.ErrFetch)
	}
	req.Header.Set("User-Agent", d.userAgent)

	resp, err := d.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download %s: %v: %w", pub.ID, err, domain.ErrFetch)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return nil, fmt.Errorf("download %s returned %s: %w", pub.ID, resp.Status, domain.ErrFetch)
	}

	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if ct != "" && !strings.Contains(ct, "pdf") && !strings.Contains(ct, "octet-stream") {
		return nil, fmt.Errorf("download %s has content-type %s: %w", pub.ID, ct, domain.ErrFetch)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s: %v: %w", pub.ID, err, domain.ErrFetch)
	}

	return data, nil
}
