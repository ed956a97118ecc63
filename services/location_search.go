// Package services implements the UK location search engine: category
// fan-out against the geocoding provider, famous-place and general search,
// terminal resolution, and the shared cache/merge/dedupe/convert machinery.
package services

import (
	"context"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/swiftcab/api-go/data"
	"github.com/swiftcab/api-go/types"
)

const (
	// ukBoundingBox covers the UK territory (minLng,minLat,maxLng,maxLat).
	ukBoundingBox = "-8.2,49.9,1.8,60.9"
	cacheTimeout  = 10 * time.Minute

	maxCategoryResults = 20
	maxFamousResults   = 15
	maxTerminalResults = 10
	maxEnhancedResults = 20

	// maxConcurrentQueries caps the provider fan-out per operation.
	maxConcurrentQueries = 5
)

// Geocoder is the narrow provider contract the search engines depend on.
// config.MapboxClient implements it; tests substitute a mock.
type Geocoder interface {
	Search(ctx context.Context, query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error)
}

// LocationSearchService owns the result cache and orchestrates all provider
// queries. Construct one per process and share it; its state is the cache
// only, and that is safe under concurrent use.
type LocationSearchService struct {
	geocoder Geocoder
	token    string
	cache    *ExpiringCache[[]types.LocationSuggestion]
}

func NewLocationSearchService(token string, geocoder Geocoder) *LocationSearchService {
	return &LocationSearchService{
		geocoder: geocoder,
		token:    token,
		cache:    NewExpiringCache[[]types.LocationSuggestion](cacheTimeout),
	}
}

// categorySearchStrategies are tried in order for each seed string; the first
// strategy returning at least one feature wins and the rest are skipped for
// that seed.
var categorySearchStrategies = []types.GeocodeOptions{
	{Types: "poi", Limit: 5, Autocomplete: true, BBox: ukBoundingBox},
	{Types: "place", Limit: 5, Autocomplete: true, BBox: ukBoundingBox},
	{Limit: 5, Autocomplete: true, BBox: ukBoundingBox},
}

var landmarkKeywords = []string{
	"palace", "castle", "museum", "gallery", "park", "square",
	"bridge", "tower", "cathedral", "abbey", "stadium", "arena",
}

// typePriority orders enhanced-search results; unknown types sort last.
var typePriority = map[string]int{
	"poi":          1,
	"place":        2,
	"address":      3,
	"postcode":     4,
	"neighborhood": 5,
}

func successResponse(results []types.LocationSuggestion) types.LocationSearchResponse {
	if results == nil {
		results = []types.LocationSuggestion{}
	}
	return types.LocationSearchResponse{Success: true, Data: results}
}

func errorResponse(message, details string) types.LocationSearchResponse {
	return types.LocationSearchResponse{
		Success: false,
		Error:   &types.SearchError{Message: message, Details: details},
	}
}

// GetCategories returns the full static catalog. No I/O.
func (s *LocationSearchService) GetCategories() []types.UKLocationCategory {
	return data.UKLocationCategories
}

// SearchByCategory resolves a catalog category and fans out its seed queries
// against the provider. Individual seed failures degrade the result set but
// never fail the operation.
func (s *LocationSearchService) SearchByCategory(ctx context.Context, categoryID string) types.LocationSearchResponse {
	cacheKey := "category:" + categoryID
	if cached, ok := s.cache.Get(cacheKey); ok {
		return successResponse(cached)
	}

	category := data.FindCategoryByID(categoryID)
	if category == nil {
		return errorResponse("Category not found", fmt.Sprintf("Category %s does not exist", categoryID))
	}

	if s.token == "" {
		return errorResponse("Missing Mapbox token", "Mapbox access token is not configured")
	}

	seedResults := make([][]types.MapboxFeature, len(category.SearchQueries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)
	for i, seed := range category.SearchQueries {
		i, seed := i, seed
		g.Go(func() error {
			seedResults[i] = s.searchSeed(gctx, seed)
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return errorResponse("Search failed", err.Error())
	}

	var all []types.MapboxFeature
	for _, features := range seedResults {
		all = append(all, features...)
	}

	unique := dedupeByID(all)
	if len(unique) > maxCategoryResults {
		unique = unique[:maxCategoryResults]
	}

	results := make([]types.LocationSuggestion, 0, len(unique))
	for _, feature := range unique {
		results = append(results, convertFeature(feature, categoryID))
	}

	s.cache.Set(cacheKey, results)
	log.Printf("Found %d results for category %s", len(results), category.Name)

	return successResponse(results)
}

// searchSeed tries each search strategy for one seed string, stopping at the
// first that yields features. Provider errors are logged and skipped.
func (s *LocationSearchService) searchSeed(ctx context.Context, seed string) []types.MapboxFeature {
	for _, strategy := range categorySearchStrategies {
		features, err := s.geocoder.Search(ctx, seed, strategy)
		if err != nil {
			log.Printf("Error fetching %q: %v", seed, err)
			continue
		}
		if len(features) > 0 {
			return features
		}
	}
	return nil
}

// SearchFamousPlaces expands a free-text query into landmark-flavoured
// variants and keeps only results that look like famous landmarks.
func (s *LocationSearchService) SearchFamousPlaces(ctx context.Context, query string) types.LocationSearchResponse {
	if len(strings.TrimSpace(query)) < 2 {
		return successResponse(nil)
	}

	cacheKey := "famous:" + strings.ToLower(query)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return successResponse(cached)
	}

	if s.token == "" {
		return errorResponse("Missing Mapbox token", "Mapbox access token is not configured")
	}

	variants := []string{
		query,
		query + " landmark",
		query + " attraction",
		query + " tourist",
		query + " famous",
		query + " popular",
	}

	all, err := s.fanOutQueries(ctx, variants, types.GeocodeOptions{
		Types: "poi", Limit: 10, Autocomplete: true, BBox: ukBoundingBox,
	})
	if err != nil {
		return errorResponse("Search failed", err.Error())
	}

	queryLower := strings.ToLower(query)
	var famous []types.MapboxFeature
	for _, feature := range dedupeByID(all) {
		text := strings.ToLower(feature.Text)
		placeName := strings.ToLower(feature.PlaceName)

		containsQuery := strings.Contains(text, queryLower) || strings.Contains(placeName, queryLower)
		isLandmark := containsAny(text, landmarkKeywords) || containsAny(placeName, landmarkKeywords)
		if containsQuery && isLandmark {
			famous = append(famous, feature)
		}
	}
	if len(famous) > maxFamousResults {
		famous = famous[:maxFamousResults]
	}

	results := make([]types.LocationSuggestion, 0, len(famous))
	for _, feature := range famous {
		results = append(results, convertFeature(feature, "famous_place"))
	}

	s.cache.Set(cacheKey, results)
	log.Printf("Found %d famous places for %q", len(results), query)

	return successResponse(results)
}

// SearchTerminals resolves the terminals or platforms of an airport or
// railway station. Known locations are answered from the static dataset
// without touching the provider; everything else goes through a
// provider-based fallback. Only the static path caches its results.
func (s *LocationSearchService) SearchTerminals(ctx context.Context, locationID, category string) types.LocationSearchResponse {
	cacheKey := fmt.Sprintf("terminals:%s:%s", locationID, category)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return successResponse(cached)
	}

	if location := data.FindLocationByID(locationID); location != nil {
		terminals := data.TerminalsByLocationID(locationID)
		if len(terminals) > 0 {
			results := make([]types.LocationSuggestion, 0, len(terminals))
			for _, terminal := range terminals {
				results = append(results, convertTerminal(terminal, location))
			}
			s.cache.Set(cacheKey, results)
			log.Printf("Found %d terminals for %s", len(results), location.Name)
			return successResponse(results)
		}
	}

	return s.searchTerminalsViaProvider(ctx, locationID, category)
}

// searchTerminalsViaProvider is the fallback when the static dataset has no
// entry: resolve the parent to coordinates, then run proximity-biased
// terminal queries around it.
func (s *LocationSearchService) searchTerminalsViaProvider(ctx context.Context, locationID, category string) types.LocationSearchResponse {
	if s.token == "" {
		return errorResponse("Missing Mapbox token", "Mapbox access token is not configured")
	}

	parents, err := s.geocoder.Search(ctx, locationID, types.GeocodeOptions{Types: "poi"})
	if err != nil || len(parents) == 0 {
		return errorResponse("Location not found", "Could not find the specified location")
	}
	parent := parents[0]
	proximity := fmt.Sprintf("%f,%f", parent.Longitude(), parent.Latitude())

	var queries []string
	if category == "airport" {
		queries = []string{
			locationID + " terminal",
			locationID + " departure",
			locationID + " arrival",
			"airport terminal",
			"departure terminal",
			"arrival terminal",
		}
	} else {
		queries = []string{
			locationID + " platform",
			locationID + " railway platform",
			"station platform",
			"train platform",
			"railway platform",
		}
	}

	all, err := s.fanOutQueries(ctx, queries, types.GeocodeOptions{
		Types: "poi", Limit: 10, Autocomplete: true, Proximity: proximity,
	})
	if err != nil {
		return errorResponse("Failed to search terminals", err.Error())
	}

	keywords := []string{"terminal", "departure", "arrival"}
	resultCategory := "terminal"
	if category != "airport" {
		keywords = []string{"platform", "railway"}
		resultCategory = "platform"
	}

	locationName := strings.ToLower(locationID)
	var relevant []types.MapboxFeature
	for _, feature := range dedupeByID(all) {
		text := strings.ToLower(feature.Text)
		placeName := strings.ToLower(feature.PlaceName)

		matchesKeyword := containsAny(text, keywords) || containsAny(placeName, keywords)
		matchesLocation := strings.Contains(placeName, locationName) || strings.Contains(text, locationName)
		if matchesKeyword && matchesLocation {
			relevant = append(relevant, feature)
		}
	}
	if len(relevant) > maxTerminalResults {
		relevant = relevant[:maxTerminalResults]
	}

	results := make([]types.LocationSuggestion, 0, len(relevant))
	for _, feature := range relevant {
		results = append(results, convertFeature(feature, resultCategory))
	}

	// The fallback path does not cache; only static-dataset hits do.
	return successResponse(results)
}

// EnhancedSearch runs a free-text query across several type filters and
// orders the merged results by place-type priority.
func (s *LocationSearchService) EnhancedSearch(ctx context.Context, query string) types.LocationSearchResponse {
	if len(strings.TrimSpace(query)) < 2 {
		return successResponse(nil)
	}

	cacheKey := "enhanced:" + strings.ToLower(query)
	if cached, ok := s.cache.Get(cacheKey); ok {
		return successResponse(cached)
	}

	if s.token == "" {
		return errorResponse("Missing Mapbox token", "Mapbox access token is not configured")
	}

	variants := []types.GeocodeOptions{
		{Limit: 20, Autocomplete: true, BBox: ukBoundingBox},
		{Types: "poi", Limit: 15, Autocomplete: true, BBox: ukBoundingBox},
		{Types: "address", Limit: 10, Autocomplete: true, BBox: ukBoundingBox},
		{Types: "place", Limit: 10, Autocomplete: true, BBox: ukBoundingBox},
	}

	variantResults := make([][]types.MapboxFeature, len(variants))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)
	for i, opts := range variants {
		i, opts := i, opts
		g.Go(func() error {
			features, err := s.geocoder.Search(gctx, query, opts)
			if err != nil {
				log.Printf("Error in enhanced search for %q: %v", query, err)
				return gctx.Err()
			}
			variantResults[i] = features
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return errorResponse("Search failed", err.Error())
	}

	var all []types.MapboxFeature
	for _, features := range variantResults {
		all = append(all, features...)
	}

	unique := dedupeByID(all)
	sort.SliceStable(unique, func(i, j int) bool {
		return featurePriority(unique[i]) < featurePriority(unique[j])
	})
	if len(unique) > maxEnhancedResults {
		unique = unique[:maxEnhancedResults]
	}

	results := make([]types.LocationSuggestion, 0, len(unique))
	for _, feature := range unique {
		results = append(results, convertFeature(feature, "general"))
	}

	s.cache.Set(cacheKey, results)
	log.Printf("Enhanced search found %d results for %q", len(results), query)

	return successResponse(results)
}

// fanOutQueries issues one provider query per input string with shared
// options, collecting per-query results and concatenating them in input
// order. Individual query errors are logged and swallowed; only context
// cancellation fails the fan-out.
func (s *LocationSearchService) fanOutQueries(ctx context.Context, queries []string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
	slots := make([][]types.MapboxFeature, len(queries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentQueries)
	for i, query := range queries {
		i, query := i, query
		g.Go(func() error {
			features, err := s.geocoder.Search(gctx, query, opts)
			if err != nil {
				log.Printf("Error searching %q: %v", query, err)
				return gctx.Err()
			}
			slots[i] = features
			return gctx.Err()
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var all []types.MapboxFeature
	for _, features := range slots {
		all = append(all, features...)
	}
	return all, nil
}

// dedupeByID keeps the first occurrence of each feature id, preserving
// insertion order. Features without an id share the empty key and collapse
// to the first such feature.
func dedupeByID(features []types.MapboxFeature) []types.MapboxFeature {
	seen := make(map[string]struct{}, len(features))
	unique := make([]types.MapboxFeature, 0, len(features))
	for _, feature := range features {
		if _, ok := seen[feature.ID]; ok {
			continue
		}
		seen[feature.ID] = struct{}{}
		unique = append(unique, feature)
	}
	return unique
}

func containsAny(s string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// featurePriority ranks by the raw first place_type tag; a missing or
// unrecognised tag sorts last (it does not get the "poi" display default).
func featurePriority(feature types.MapboxFeature) int {
	if len(feature.PlaceType) == 0 {
		return 6
	}
	if priority, ok := typePriority[feature.PlaceType[0]]; ok {
		return priority
	}
	return 6
}
