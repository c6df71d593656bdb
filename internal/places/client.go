package places

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"restaurants-api/internal/models"

	"github.com/rs/zerolog/log"
)

const (
	statusOK          = "OK"
	statusZeroResults = "ZERO_RESULTS"

	// Transient transport failures are retried this many times before
	// the call is reported as failed.
	maxAttempts = 3
)

// Fields requested from the details endpoint. Every field the normalizer
// reads must be listed here, or the upstream omits it.
const detailsFields = "place_id,name,formatted_address,geometry,rating," +
	"user_ratings_total,types,price_level,business_status,address_components," +
	"opening_hours,editorial_summary,reviews,formatted_phone_number,website," +
	"serves_vegetarian_food,serves_beer,serves_wine,takeout,delivery,dine_in," +
	"reservable,wheelchair_accessible_entrance"

// ClientConfig configures a Client. The API key is passed in explicitly;
// the client holds no process-global state.
type ClientConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration

	// PageTokenDelay is how long a next-page token takes to become
	// valid upstream. The client does not sleep itself; callers that
	// paginate must wait this long before reusing a token.
	PageTokenDelay time.Duration
}

// Client talks to the legacy text-search/place-details HTTP API. Every
// call is billed upstream, so pagination depth is left to the caller.
type Client struct {
	apiKey         string
	baseURL        string
	pageTokenDelay time.Duration
	httpc          *http.Client
}

func NewClient(cfg ClientConfig) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	return &Client{
		apiKey:         cfg.APIKey,
		baseURL:        cfg.BaseURL,
		pageTokenDelay: cfg.PageTokenDelay,
		httpc:          &http.Client{Timeout: cfg.Timeout},
	}
}

// PageTokenDelay returns the warm-up delay callers must observe before
// reusing a next-page token.
func (c *Client) PageTokenDelay() time.Duration {
	return c.pageTokenDelay
}

type searchEnvelope struct {
	Status        string         `json:"status"`
	ErrorMessage  string         `json:"error_message"`
	Results       []models.Place `json:"results"`
	NextPageToken string         `json:"next_page_token"`
}

type detailsEnvelope struct {
	Status       string       `json:"status"`
	ErrorMessage string       `json:"error_message"`
	Result       models.Place `json:"result"`
}

// TextSearchPage fetches one page (at most 20 results) for the given
// query. pageToken must be empty for the first page, or a token returned
// by a prior call for the same query. A ZERO_RESULTS status is a valid
// empty terminal state; any other non-OK status is an error.
func (c *Client) TextSearchPage(ctx context.Context, query, pageToken string) (*models.SearchPage, error) {
	if query == "" {
		return nil, fmt.Errorf("places: query cannot be empty")
	}

	params := url.Values{}
	params.Set("query", query)
	params.Set("key", c.apiKey)
	if pageToken != "" {
		params.Set("pagetoken", pageToken)
	}

	body, err := c.get(ctx, c.baseURL+"/textsearch/json?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("places: text search %q: %w", query, err)
	}

	var env searchEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("places: text search %q: decode response: %w", query, err)
	}

	switch env.Status {
	case statusOK:
		return &models.SearchPage{Places: env.Results, NextPageToken: env.NextPageToken}, nil
	case statusZeroResults:
		return &models.SearchPage{}, nil
	default:
		return nil, fmt.Errorf("places: text search %q: status %s: %s", query, env.Status, env.ErrorMessage)
	}
}

// PlaceDetails fetches the fully populated place for the given id,
// including address components, hours and reviews.
func (c *Client) PlaceDetails(ctx context.Context, placeID string) (*models.Place, error) {
	if placeID == "" {
		return nil, fmt.Errorf("places: place id cannot be empty")
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", detailsFields)
	params.Set("key", c.apiKey)

	body, err := c.get(ctx, c.baseURL+"/details/json?"+params.Encode())
	if err != nil {
		return nil, fmt.Errorf("places: details %s: %w", placeID, err)
	}

	var env detailsEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, fmt.Errorf("places: details %s: decode response: %w", placeID, err)
	}

	if env.Status != statusOK {
		return nil, fmt.Errorf("places: details %s: status %s: %s", placeID, env.Status, env.ErrorMessage)
	}
	return &env.Result, nil
}

// get performs one GET with bounded retries on transport errors and 5xx
// responses. Upstream application-level errors (non-OK status in the JSON
// body) are not retried here.
func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	var lastErr error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			log.Warn().Err(lastErr).Int("attempt", attempt).Msg("retrying places request")
			time.Sleep(time.Duration(attempt-1) * 500 * time.Millisecond)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
		if err != nil {
			return nil, fmt.Errorf("build request: %w", err)
		}

		resp, err := c.httpc.Do(req)
		if err != nil {
			lastErr = err
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			lastErr = err
			continue
		}

		if resp.StatusCode >= 500 {
			lastErr = fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)
			continue
		}
		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("upstream returned HTTP %d", resp.StatusCode)
		}
		return body, nil
	}
	return nil, fmt.Errorf("after %d attempts: %w", maxAttempts, lastErr)
}
