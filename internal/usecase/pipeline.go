package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/match"
	"GazetteWatch/internal/ports"
)

// PipelineDeps wires all driven adapters into the orchestration pipeline.
type PipelineDeps struct {
	Source     ports.ListingSource
	Store      ports.SeenStore
	Downloader ports.Downloader
	Extractor  ports.TextExtractor
	Notifier   ports.Notifier
	Keywords   []string
	Logger     *slog.Logger
}

// Pipeline implements the watch workflow: fetch listing, filter unseen,
// download, extract, match, notify, persist.
type Pipeline struct {
	source     ports.ListingSource
	store      ports.SeenStore
	downloader ports.Downloader
	extractor  ports.TextExtractor
	notifier   ports.Notifier
	keywords   []string
	logger     *slog.Logger
}

// NewPipeline constructs the orchestration component.
func NewPipeline(deps PipelineDeps) *Pipeline {
	return &Pipeline{
		source:     deps.Source,
		store:      deps.Store,
		downloader: deps.Downloader,
		extractor:  deps.Extractor,
		notifier:   deps.Notifier,
		keywords:   deps.Keywords,
		logger:     deps.Logger,
	}
}

// Run executes one full watch pass. Listing fetch, per-document download and
// final store save are fatal; a failed save or download leaves the persisted
// store untouched so the next scheduled run retries from the same point.
func (p *Pipeline) Run(ctx context.Context) error {
	if p.source == nil || p.store == nil {
		return fmt.Errorf("pipeline is missing a listing source or store")
	}

	listing, err := p.source.FetchListing(ctx)
	if err != nil {
		return fmt.Errorf("fetch listing: %w", err)
	}
	p.info("listing fetched", "publications", len(listing))

	if err := p.store.Load(ctx); err != nil {
		if !errors.Is(err, domain.ErrStoreUnavailable) {
			return fmt.Errorf("load seen store: %w", err)
		}
		p.warn("seen store unreadable, treating as empty", "error", err)
	}

	var findings []domain.Finding
	processed := 0

	for _, pub := range listing {
		if p.store.IsSeen(pub.ID) {
			continue
		}
		processed++

		data, err := p.downloader.Download(ctx, pub)
		if err != nil {
			return fmt.Errorf("download %s: %w", pub.ID, err)
		}

		pages := p.extractor.Extract(data)
		if len(pages) == 0 {
			// distinct from "zero keywords matched": the document produced
			// no text at all
			p.warn("extraction produced no text", "publication", pub.ID)
		}

		terms := match.Keywords(strings.Join(pages, "\n"), p.keywords)
		if len(terms) > 0 {
			p.info("keywords matched", "publication", pub.ID, "terms", terms)
			findings = append(findings, domain.Finding{
				Publication: pub,
				Terms:       terms,
				Occurrences: match.Occurrences(pages, terms),
			})
		}

		// marked seen whether or not it matched, so the set only grows
		p.store.MarkSeen(pub.ID)
	}

	p.info("run scanned", "new", processed, "matched", len(findings))

	if p.notifier != nil {
		if err := p.notifier.Notify(ctx, findings); err != nil {
			// the publication stays marked seen even though its alert was
			// lost; surfaced here for the operator
			p.error("notification failed", "findings", len(findings), "error", err)
		}
	}

	if err := p.store.Save(ctx); err != nil {
		return fmt.Errorf("save seen store: %w", err)
	}

	return nil
}

func (p *Pipeline) info(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Pipeline) warn(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Warn(msg, args...)
	}
}

func (p *Pipeline) error(msg string, args ...interface{}) {
	if p.logger != nil {
		p.logger.Error(msg, args...)
	}
}
