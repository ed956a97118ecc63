package config

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/swiftcab/api-go/types"
)

const mapboxBaseURL = "https://api.mapbox.com/geocoding/v5/mapbox.places"

// MapboxClient wraps the Mapbox geocoding API. Every query is scoped to the
// UK (country=gb, language=en); type filters, limits, bbox and proximity come
// from the caller. Outbound calls are rate limited and bounded by the HTTP
// client timeout.
type MapboxClient struct {
	Token   string
	BaseURL string

	httpClient *http.Client
	limiter    *rate.Limiter
}

func NewMapboxClient(token string) *MapboxClient {
	return &MapboxClient{
		Token:   token,
		BaseURL: mapboxBaseURL,
		httpClient: &http.Client{
			Timeout: 8 * time.Second,
		},
		limiter: rate.NewLimiter(rate.Limit(10), 20),
	}
}

func (m *MapboxClient) Search(ctx context.Context, query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
	if err := m.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("access_token", m.Token)
	params.Set("country", "gb")
	params.Set("language", "en")
	if opts.Autocomplete {
		params.Set("autocomplete", "true")
	}
	if opts.Limit > 0 {
		params.Set("limit", strconv.Itoa(opts.Limit))
	}
	if opts.Types != "" {
		params.Set("types", opts.Types)
	}
	if opts.BBox != "" {
		params.Set("bbox", opts.BBox)
	}
	if opts.Proximity != "" {
		params.Set("proximity", opts.Proximity)
	}

	endpoint := fmt.Sprintf("%s/%s.json?%s", m.BaseURL, url.PathEscape(query), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocoding request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("geocoding request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoding request returned status %d", resp.StatusCode)
	}

	var decoded types.MapboxGeocodingResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("failed to decode geocoding response: %v", err)
	}

	return decoded.Features, nil
}
