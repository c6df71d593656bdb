package importer

import (
	"context"
	"fmt"
	"time"

	"restaurants-api/internal/models"
	"restaurants-api/internal/normalize"
	"restaurants-api/internal/validate"

	"github.com/rs/zerolog/log"
)

// PlaceCollector gathers deduplicated search results across query
// variants.
type PlaceCollector interface {
	Collect(ctx context.Context, queries []string, maxTotal int) ([]models.Place, error)
}

// DetailsFetcher resolves a place id to its fully populated record.
type DetailsFetcher interface {
	PlaceDetails(ctx context.Context, placeID string) (*models.Place, error)
}

// RecordWriter persists one normalized record.
type RecordWriter interface {
	Upsert(ctx context.Context, rec *models.Restaurant) (created bool, err error)
}

// PlaceIndex answers whether a place id is already persisted, used by
// the skip-existing fast path to avoid billed detail lookups.
type PlaceIndex interface {
	ExistsPlaceID(ctx context.Context, placeID string) (bool, error)
}

// Options tune one batch run.
type Options struct {
	// MaxPerDestination caps collected places per destination unless
	// the destination declares its own cap.
	MaxPerDestination int

	// SkipExisting skips places whose id is already persisted without
	// re-fetching details.
	SkipExisting bool

	// InterDestinationDelay smooths external call bursts between
	// destinations.
	InterDestinationDelay time.Duration
}

// DestinationResult holds the per-destination counters. Wrong-country
// rejections are a filter outcome and counted apart from true errors.
type DestinationResult struct {
	DestinationID   string
	Created         int
	Updated         int
	SkippedCountry  int
	SkippedExisting int
	Errors          int
}

// Summary aggregates a whole run.
type Summary struct {
	Destinations    []DestinationResult
	Created         int
	Updated         int
	SkippedCountry  int
	SkippedExisting int
	Errors          int
	Elapsed         time.Duration
}

// Orchestrator drives the per-destination pipeline:
// collect -> details -> validate -> normalize -> write.
type Orchestrator struct {
	collector PlaceCollector
	details   DetailsFetcher
	writer    RecordWriter
	index     PlaceIndex
	opts      Options
}

func NewOrchestrator(collector PlaceCollector, details DetailsFetcher, writer RecordWriter, index PlaceIndex, opts Options) *Orchestrator {
	if opts.MaxPerDestination <= 0 {
		opts.MaxPerDestination = 30
	}
	return &Orchestrator{
		collector: collector,
		details:   details,
		writer:    writer,
		index:     index,
		opts:      opts,
	}
}

// Run processes the destinations in order and returns the aggregated
// summary. Individual record failures are counted, logged and skipped;
// the batch always runs to completion.
func (o *Orchestrator) Run(ctx context.Context, destinations []models.Destination) *Summary {
	start := time.Now()
	summary := &Summary{}

	for i, dest := range destinations {
		if i > 0 && o.opts.InterDestinationDelay > 0 {
			time.Sleep(o.opts.InterDestinationDelay)
		}

		result := o.runDestination(ctx, dest)
		summary.Destinations = append(summary.Destinations, result)
		summary.Created += result.Created
		summary.Updated += result.Updated
		summary.SkippedCountry += result.SkippedCountry
		summary.SkippedExisting += result.SkippedExisting
		summary.Errors += result.Errors

		log.Info().
			Str("destination", dest.ID).
			Int("created", result.Created).
			Int("updated", result.Updated).
			Int("skipped_country", result.SkippedCountry).
			Int("skipped_existing", result.SkippedExisting).
			Int("errors", result.Errors).
			Msg("destination processed")
	}

	summary.Elapsed = time.Since(start)
	return summary
}

func (o *Orchestrator) runDestination(ctx context.Context, dest models.Destination) DestinationResult {
	result := DestinationResult{DestinationID: dest.ID}

	limit := dest.MaxRestaurants
	if limit <= 0 {
		limit = o.opts.MaxPerDestination
	}
	expectedISO := validate.CountryToISO(dest.Country)

	log.Info().Str("destination", dest.ID).Int("cap", limit).Msg("searching")

	found, err := o.collector.Collect(ctx, BuildQueries(dest), limit)
	if err != nil {
		// Keep whatever the collector managed to gather; the failed
		// call itself is one counted error.
		log.Error().Err(err).Str("destination", dest.ID).Msg("search failed partway")
		result.Errors++
	}

	for _, hit := range found {
		if o.opts.SkipExisting {
			exists, err := o.index.ExistsPlaceID(ctx, hit.PlaceID)
			if err != nil {
				log.Error().Err(err).Str("place_id", hit.PlaceID).Msg("existence check failed")
				result.Errors++
				continue
			}
			if exists {
				result.SkippedExisting++
				continue
			}
		}

		place, err := o.details.PlaceDetails(ctx, hit.PlaceID)
		if err != nil {
			log.Error().Err(err).Str("place_id", hit.PlaceID).Msg("details fetch failed")
			result.Errors++
			continue
		}

		if !validate.IsValidCountry(place, expectedISO) {
			log.Debug().
				Str("place_id", place.PlaceID).
				Str("expected", expectedISO).
				Msg("rejected: wrong country")
			result.SkippedCountry++
			continue
		}

		rec := normalize.Normalize(place, dest.ID)

		created, err := o.writer.Upsert(ctx, &rec)
		if err != nil {
			log.Error().Err(err).Str("place_id", place.PlaceID).Str("slug", rec.Slug).Msg("write failed")
			result.Errors++
			continue
		}
		if created {
			result.Created++
		} else {
			result.Updated++
		}
	}

	return result
}

// BuildQueries produces the search query variants for a destination:
// base phrasings over cuisine and meal-time angles, plus one query per
// curated area of the destination.
func BuildQueries(dest models.Destination) []string {
	name := dest.QueryName()
	queries := []string{
		fmt.Sprintf("best restaurants in %s", name),
		fmt.Sprintf("restaurants in %s", name),
		fmt.Sprintf("top rated restaurants %s", name),
		fmt.Sprintf("where to eat in %s", name),
		fmt.Sprintf("local food %s", name),
	}
	for _, area := range dest.Areas {
		queries = append(queries, fmt.Sprintf("restaurants %s %s", area, name))
	}
	return queries
}
