package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"restaurants-api/internal/collector"
	"restaurants-api/internal/config"
	"restaurants-api/internal/destinations"
	"restaurants-api/internal/importer"
	"restaurants-api/internal/places"
	"restaurants-api/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// testRunCap keeps --test runs cheap: one destination, a handful of
// places.
const testRunCap = 5

func main() {
	skipExisting := flag.Bool("skip-existing", false, "Skip places whose id is already persisted (no details re-fetch)")
	maxPer := flag.Int("max-per-destination", 0, "Cap collected places per destination (0 = config default)")
	limit := flag.Int("limit", 0, "Cap the number of destinations in this run (0 = all)")
	testRun := flag.Bool("test", false, "Dry run against a single destination with a low cap")
	flag.Parse()
	selector := flag.Arg(0)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if cfg.PlacesAPIKey == "" {
		log.Fatal().Msg("PLACES_API_KEY is not set")
	}

	dests, err := destinations.Load(cfg.DestinationsFile)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load destinations")
	}

	dests = destinations.Filter(dests, selector)
	if len(dests) == 0 {
		log.Fatal().Str("selector", selector).Msg("no destinations matched")
	}
	if *limit > 0 && len(dests) > *limit {
		dests = dests[:*limit]
	}
	if *testRun {
		dests = dests[:1]
		for i := range dests {
			dests[i].MaxRestaurants = testRunCap
		}
		log.Info().Str("destination", dests[0].ID).Msg("test mode: single destination")
	}

	ctx := context.Background()

	conn, err := pgxpool.New(ctx, cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	if err := createTableIfNotExists(ctx, conn); err != nil {
		log.Fatal().Err(err).Msg("cannot create table")
	}

	client := places.NewClient(places.ClientConfig{
		APIKey:         cfg.PlacesAPIKey,
		BaseURL:        cfg.PlacesBaseURL,
		Timeout:        cfg.PlacesTimeout,
		PageTokenDelay: cfg.PageTokenDelay,
	})

	repo := repository.NewRepository(conn)
	maxPerDestination := cfg.MaxPerDestination
	if *maxPer > 0 {
		maxPerDestination = *maxPer
	}

	orch := importer.NewOrchestrator(
		collector.New(client, cfg.InterQueryDelay),
		client,
		importer.NewUpsertWriter(repo),
		repo,
		importer.Options{
			MaxPerDestination:     maxPerDestination,
			SkipExisting:          *skipExisting,
			InterDestinationDelay: cfg.InterDestinationDelay,
		},
	)

	log.Info().Int("destinations", len(dests)).Msg("starting import run")
	summary := orch.Run(ctx, dests)
	printSummary(summary)

	// Per-record failures are reported in the summary, not via the exit
	// status; a completed batch exits 0.
}

func printSummary(s *importer.Summary) {
	fmt.Println("\n=== Import summary ===")
	for _, d := range s.Destinations {
		fmt.Printf("%-24s created=%-4d updated=%-4d skipped_country=%-4d skipped_existing=%-4d errors=%d\n",
			d.DestinationID, d.Created, d.Updated, d.SkippedCountry, d.SkippedExisting, d.Errors)
	}
	fmt.Printf("\nTotal: created=%d updated=%d skipped_country=%d skipped_existing=%d errors=%d elapsed=%s\n",
		s.Created, s.Updated, s.SkippedCountry, s.SkippedExisting, s.Errors, s.Elapsed.Round(time.Second))
}

func createTableIfNotExists(ctx context.Context, conn *pgxpool.Pool) error {
	query := `
	CREATE TABLE IF NOT EXISTS restaurants (
		id BIGSERIAL PRIMARY KEY,
		place_id TEXT NOT NULL UNIQUE,
		destination_id TEXT NOT NULL,
		slug TEXT NOT NULL,
		name TEXT NOT NULL,
		short_name TEXT NOT NULL DEFAULT '',
		description TEXT,
		summary TEXT,
		tagline TEXT,
		address TEXT,
		phone TEXT,
		website TEXT,
		latitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		longitude DOUBLE PRECISION NOT NULL DEFAULT 0,
		rating DOUBLE PRECISION,
		review_count INTEGER,
		cuisines TEXT[],
		price_level INTEGER NOT NULL DEFAULT 2,
		price_range TEXT NOT NULL DEFAULT '$$',
		price_range_label TEXT NOT NULL DEFAULT 'Moderately priced',
		hours JSONB,
		attributes JSONB,
		raw_payload JSONB,
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		data_updated_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
		UNIQUE (destination_id, slug)
	);
	CREATE INDEX IF NOT EXISTS restaurants_destination_idx ON restaurants (destination_id);
	`
	_, err := conn.Exec(ctx, query)
	return err
}
