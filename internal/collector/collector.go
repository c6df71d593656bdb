package collector

import (
	"context"
	"fmt"
	"time"

	"restaurants-api/internal/models"

	"github.com/rs/zerolog/log"
)

// maxPagesPerQuery bounds pagination depth per query; the upstream
// serves at most 3 pages of 20 results anyway, and each page is billed.
const maxPagesPerQuery = 3

// PageSearcher is the slice of the places client the collector needs.
type PageSearcher interface {
	TextSearchPage(ctx context.Context, query, pageToken string) (*models.SearchPage, error)
	PageTokenDelay() time.Duration
}

// Collector runs an ordered list of query variants through the search
// API, deduplicating results by place id.
type Collector struct {
	client PageSearcher

	// interQueryDelay spaces out distinct queries to avoid burst
	// rate-limiting.
	interQueryDelay time.Duration
}

func New(client PageSearcher, interQueryDelay time.Duration) *Collector {
	return &Collector{client: client, interQueryDelay: interQueryDelay}
}

// Collect gathers up to maxTotal unique places across the given queries,
// first-seen wins. Each query paginates at most three pages, waiting out
// the token warm-up delay between pages. Once maxTotal unique places are
// held, no further page or query requests are issued.
//
// On an upstream failure Collect stops and returns the places gathered so
// far together with the error; the caller decides whether the partial
// sample is usable.
func (c *Collector) Collect(ctx context.Context, queries []string, maxTotal int) ([]models.Place, error) {
	if maxTotal <= 0 {
		return nil, fmt.Errorf("collector: maxTotal must be positive, got %d", maxTotal)
	}

	seen := make(map[string]struct{})
	collected := make([]models.Place, 0, maxTotal)

	for i, query := range queries {
		if len(collected) >= maxTotal {
			break
		}
		if i > 0 && c.interQueryDelay > 0 {
			time.Sleep(c.interQueryDelay)
		}

		pageToken := ""
		for page := 0; page < maxPagesPerQuery; page++ {
			if page > 0 {
				// The next-page token is only valid after the
				// upstream warm-up delay.
				time.Sleep(c.client.PageTokenDelay())
			}

			result, err := c.client.TextSearchPage(ctx, query, pageToken)
			if err != nil {
				return collected, fmt.Errorf("collector: query %q page %d: %w", query, page+1, err)
			}

			for _, place := range result.Places {
				if place.PlaceID == "" {
					continue
				}
				if _, dup := seen[place.PlaceID]; dup {
					continue
				}
				seen[place.PlaceID] = struct{}{}
				collected = append(collected, place)
				if len(collected) >= maxTotal {
					break
				}
			}

			log.Debug().
				Str("query", query).
				Int("page", page+1).
				Int("collected", len(collected)).
				Msg("search page processed")

			pageToken = result.NextPageToken
			if pageToken == "" || len(collected) >= maxTotal {
				break
			}
		}
	}

	return collected, nil
}
