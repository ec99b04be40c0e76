package parser

import (
	"context"
	"fmt"
	"log/slog"

	"GazetteWatch/internal/config"
	"GazetteWatch/internal/domain"
	"GazetteWatch/internal/ports"
	"GazetteWatch/internal/scanner"
)

// StrategySource implements ListingSource via registered scanner strategies.
type StrategySource struct {
	registry *scanner.Registry
	sites    []config.SiteConfig
	logger   *slog.Logger
}

var _ ports.ListingSource = (*StrategySource)(nil)

// NewStrategySource wires the scanner registry with config-defined sites.
func NewStrategySource(reg *scanner.Registry, sites []config.SiteConfig, log *slog.Logger) *StrategySource {
	return &StrategySource{
		registry: reg,
		sites:    sites,
		logger:   log,
	}
}

// FetchListing iterates over configured sites in order and executes their
// scanners, preserving each site's listing order in the aggregate.
func (s *StrategySource) FetchListing(ctx context.Context) ([]domain.Publication, error) {
	if s.registry == nil {
		return nil, fmt.Errorf("scanner registry is not configured")
	}

	s.debug("fetch listing", "sites", len(s.sites))

	var aggregated []domain.Publication
	for _, site := range s.sites {
		strategy, err := s.registry.Resolve(site.Scanner)
		if err != nil {
			return nil, fmt.Errorf("site %s: %w", site.Name, err)
		}

		req := scanner.Request{
			SiteName: site.Name,
			URL:      site.URL,
			Options:  site.Options,
		}

		results, err := strategy.Scan(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("scan site %s: %w", site.Name, err)
		}

		s.debug("site produced publications", "site", site.Name, "count", len(results))
		aggregated = append(aggregated, results...)
	}

	s.debug("listing fetched", "total", len(aggregated))
	return aggregated, nil
}

func (s *StrategySource) debug(msg string, args ...interface{}) {
	if s.logger != nil {
		s.logger.Debug(msg, args...)
	}
}
