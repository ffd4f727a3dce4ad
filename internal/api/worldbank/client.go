package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"econviz/internal/model"
	httpClient "econviz/internal/platform/http"
)

const defaultBaseURL = "https://api.worldbank.org/v2"

// Client is the World Bank Indicators API client
type Client struct {
	baseURL    string
	httpClient *httpClient.Client
	logger     zerolog.Logger
}

// ClientOptions holds options for creating a new World Bank client
type ClientOptions struct {
	BaseURL        string
	RequestTimeout time.Duration
	RequestsPerSec int
	MaxRetries     int
}

// NewClient creates a new World Bank API client
func NewClient(options ClientOptions) *Client {
	httpOpts := httpClient.ClientOptions{
		Timeout:        options.RequestTimeout,
		RequestsPerSec: options.RequestsPerSec,
		MaxRetries:     options.MaxRetries,
	}

	// Apply defaults if not set
	if httpOpts.Timeout == 0 {
		httpOpts.Timeout = 10 * time.Second
	}
	if httpOpts.RequestsPerSec == 0 {
		httpOpts.RequestsPerSec = 5
	}

	baseURL := options.BaseURL
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient.NewClient(httpOpts),
		logger:     log.With().Str("component", "worldbank_client").Logger(),
	}
}

// rawObservation is one element of the API's observation array. Country and
// indicator metadata is present on the wire but unused downstream.
type rawObservation struct {
	Date    string   `json:"date"`
	Value   *float64 `json:"value"`
	Country struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"country"`
	Indicator struct {
		ID    string `json:"id"`
		Value string `json:"value"`
	} `json:"indicator"`
}

// FetchSeries fetches the indicator time series for one query and reduces it
// to a clean ascending series. An empty result range is a successful empty
// series, not an error.
func (c *Client) FetchSeries(ctx context.Context, query model.IndicatorQuery) (model.Series, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query: %w", err)
	}

	requestURL := fmt.Sprintf(
		"%s/country/%s/indicator/%s?format=json&date=%s",
		c.baseURL,
		url.PathEscape(query.CountryCode),
		url.PathEscape(query.IndicatorCode),
		query.DateRange(),
	)

	c.logger.Debug().Str("url", requestURL).Msg("Fetching indicator series")

	// Create a new request with context
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.DoRequest(ctx, req)
	if err != nil {
		c.logger.Error().Err(err).Msg("World Bank request failed")
		return nil, &RetrievalError{CountryCode: query.CountryCode, IndicatorCode: query.IndicatorCode, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &RetrievalError{CountryCode: query.CountryCode, IndicatorCode: query.IndicatorCode, Err: fmt.Errorf("reading response body: %w", err)}
	}

	observations, err := decodeEnvelope(body)
	if err != nil {
		c.logger.Error().Err(err).Str("response", string(body)).Msg("Error parsing payload")
		return nil, &FormatError{CountryCode: query.CountryCode, IndicatorCode: query.IndicatorCode, Err: err}
	}

	series := normalize(observations)

	c.logger.Debug().
		Int("observations", len(observations)).
		Int("samples", len(series)).
		Msg("Fetched indicator series")
	return series, nil
}

// decodeEnvelope unpacks the API's [metadata, observations] envelope. A null
// observation array is the API's "no data for this range" answer and decodes
// to an empty slice.
func decodeEnvelope(body []byte) ([]rawObservation, error) {
	var envelope []json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	if len(envelope) < 2 {
		return nil, fmt.Errorf("expected [metadata, observations] envelope, got %d element(s)", len(envelope))
	}

	var observations []rawObservation
	if err := json.Unmarshal(envelope[1], &observations); err != nil {
		return nil, fmt.Errorf("parsing observation array: %w", err)
	}
	return observations, nil
}

// normalize drops null-valued and unparseable observations, sorts ascending
// by year and dedupes. The API conventionally returns most-recent-first, but
// input order is not relied on.
func normalize(observations []rawObservation) model.Series {
	samples := make(model.Series, 0, len(observations))
	for _, obs := range observations {
		if obs.Value == nil {
			continue
		}
		year, err := strconv.Atoi(strings.TrimSpace(obs.Date))
		if err != nil {
			// Malformed record, drop it without failing the series
			continue
		}
		samples = append(samples, model.Sample{Year: year, Value: *obs.Value})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Year < samples[j].Year
	})

	series := samples[:0]
	for _, s := range samples {
		if n := len(series); n > 0 && series[n-1].Year == s.Year {
			continue
		}
		series = append(series, s)
	}
	return series
}
