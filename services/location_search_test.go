package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swiftcab/api-go/data"
	"github.com/swiftcab/api-go/types"
)

// mockGeocoder counts provider calls and answers via a configurable
// responder.
type mockGeocoder struct {
	mu      sync.Mutex
	calls   int
	queries []string
	respond func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error)
}

func (m *mockGeocoder) Search(_ context.Context, query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
	m.mu.Lock()
	m.calls++
	m.queries = append(m.queries, query)
	m.mu.Unlock()

	if m.respond == nil {
		return nil, nil
	}
	return m.respond(query, opts)
}

func (m *mockGeocoder) callCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.calls
}

func newTestService(mock *mockGeocoder) *LocationSearchService {
	return NewLocationSearchService("test-token", mock)
}

func poiFeature(id, text, placeName string) types.MapboxFeature {
	return types.MapboxFeature{
		ID:        id,
		Text:      text,
		PlaceName: placeName,
		Center:    []float64{-0.1, 51.5},
		PlaceType: []string{"poi"},
	}
}

func TestGetCategories(t *testing.T) {
	svc := newTestService(&mockGeocoder{})

	categories := svc.GetCategories()
	require.NotEmpty(t, categories)

	seen := make(map[string]bool)
	for _, category := range categories {
		assert.False(t, seen[category.ID], "duplicate category id %s", category.ID)
		seen[category.ID] = true
		assert.NotEmpty(t, category.Name)
		assert.NotEmpty(t, category.SearchQueries)
	}
}

func TestSearchByCategorySecondCallServedFromCache(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{poiFeature("poi."+query, query, query+", London")}, nil
		},
	}
	svc := newTestService(mock)

	first := svc.SearchByCategory(context.Background(), "hotels")
	require.True(t, first.Success)
	assert.NotEmpty(t, first.Data)

	seeds := len(data.FindCategoryByID("hotels").SearchQueries)
	assert.Equal(t, seeds, mock.callCount(), "one strategy call per seed")

	second := svc.SearchByCategory(context.Background(), "hotels")
	require.True(t, second.Success)
	assert.Equal(t, first.Data, second.Data)
	assert.Equal(t, seeds, mock.callCount(), "second call must not touch the provider")
}

func TestSearchByCategoryCacheExpiryTriggersFreshCalls(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{poiFeature("poi."+query, query, query+", London")}, nil
		},
	}
	svc := newTestService(mock)

	base := time.Now()
	now := base
	svc.cache.now = func() time.Time { return now }

	svc.SearchByCategory(context.Background(), "hotels")
	firstCalls := mock.callCount()

	now = base.Add(10 * time.Minute)
	svc.SearchByCategory(context.Background(), "hotels")
	assert.Equal(t, 2*firstCalls, mock.callCount(), "expired entry must trigger fresh provider calls")
}

func TestSearchByCategoryDeduplicatesAcrossSeeds(t *testing.T) {
	shared := poiFeature("poi.shared", "The Ritz London", "The Ritz London, Piccadilly")
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{shared}, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchByCategory(context.Background(), "hotels")
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "poi.shared", response.Data[0].ID)
	assert.Equal(t, "hotels", response.Data[0].Metadata.Category)
}

func TestSearchByCategoryStrategyShortCircuit(t *testing.T) {
	// First strategy (poi) returns nothing, the second (place) hits; the
	// broad third strategy must not run for that seed.
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			switch opts.Types {
			case "poi":
				return nil, nil
			case "place":
				return []types.MapboxFeature{poiFeature("place."+query, query, query)}, nil
			default:
				return []types.MapboxFeature{poiFeature("broad."+query, query, query)}, nil
			}
		},
	}
	svc := newTestService(mock)

	response := svc.SearchByCategory(context.Background(), "hotels")
	require.True(t, response.Success)

	seeds := len(data.FindCategoryByID("hotels").SearchQueries)
	assert.Equal(t, 2*seeds, mock.callCount(), "stop at first strategy with results")
	for _, suggestion := range response.Data {
		assert.Contains(t, suggestion.ID, "place.")
	}
}

func TestSearchByCategorySwallowsSeedFailures(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			if query == "The Ritz London" {
				return nil, errors.New("upstream blew up")
			}
			return []types.MapboxFeature{poiFeature("poi."+query, query, query)}, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchByCategory(context.Background(), "hotels")
	require.True(t, response.Success, "a failing seed must not fail the search")
	assert.NotEmpty(t, response.Data)
}

func TestSearchByCategoryUnknownCategory(t *testing.T) {
	mock := &mockGeocoder{}
	svc := newTestService(mock)

	response := svc.SearchByCategory(context.Background(), "volcanoes")
	require.False(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, "Category not found", response.Error.Message)
	assert.Zero(t, mock.callCount())
}

func TestSearchByCategoryMissingToken(t *testing.T) {
	mock := &mockGeocoder{}
	svc := NewLocationSearchService("", mock)

	response := svc.SearchByCategory(context.Background(), "hotels")
	require.False(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, "Missing Mapbox token", response.Error.Message)
	assert.Zero(t, mock.callCount())
}

func TestSearchByCategoryTruncatesToTwenty(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			var features []types.MapboxFeature
			for i := 0; i < 5; i++ {
				features = append(features, poiFeature("poi."+query+string(rune('a'+i)), query, query))
			}
			return features, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchByCategory(context.Background(), "hotels")
	require.True(t, response.Success)
	assert.Len(t, response.Data, 20)
}

func TestSearchFamousPlacesShortQueries(t *testing.T) {
	mock := &mockGeocoder{}
	svc := newTestService(mock)

	for _, query := range []string{"", "a", "  "} {
		response := svc.SearchFamousPlaces(context.Background(), query)
		require.True(t, response.Success)
		assert.Empty(t, response.Data)
	}
	assert.Zero(t, mock.callCount())
}

func TestSearchFamousPlacesLandmarkFilter(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{
				poiFeature("poi.1", "Hyde Park", "Hyde Park, London, United Kingdom"),
				poiFeature("poi.2", "Hyde Street", "Hyde Street, London, United Kingdom"),
				poiFeature("poi.3", "Regent's Park", "Regent's Park, London, United Kingdom"),
			}, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchFamousPlaces(context.Background(), "hyde")
	require.True(t, response.Success)

	// "Hyde Park" matches the query and a landmark keyword; "Hyde Street"
	// has no keyword and "Regent's Park" does not contain the query.
	require.Len(t, response.Data, 1)
	assert.Equal(t, "poi.1", response.Data[0].ID)
	assert.Equal(t, "famous_place", response.Data[0].Metadata.Category)
	assert.Equal(t, 6, mock.callCount(), "one call per query variant")
}

func TestSearchFamousPlacesCached(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{poiFeature("poi.1", "Tower Bridge", "Tower Bridge, London")}, nil
		},
	}
	svc := newTestService(mock)

	svc.SearchFamousPlaces(context.Background(), "tower")
	calls := mock.callCount()
	svc.SearchFamousPlaces(context.Background(), "tower")
	assert.Equal(t, calls, mock.callCount())

	// Same query in different case shares the cache entry.
	svc.SearchFamousPlaces(context.Background(), "TOWER")
	assert.Equal(t, calls, mock.callCount())
}

func TestSearchTerminalsStaticDataset(t *testing.T) {
	mock := &mockGeocoder{}
	svc := newTestService(mock)

	response := svc.SearchTerminals(context.Background(), "heathrow-airport", "airport")
	require.True(t, response.Success)
	require.Len(t, response.Data, 4)

	for _, terminal := range response.Data {
		assert.Equal(t, "heathrow-airport", terminal.Metadata.ParentPlaceID)
		assert.Equal(t, "TW6 1QG", terminal.Metadata.Postcode)
		assert.Equal(t, "terminal", terminal.Metadata.Category)
	}
	assert.Zero(t, mock.callCount(), "static dataset hits never call the provider")

	// The static path caches.
	svc.SearchTerminals(context.Background(), "heathrow-airport", "airport")
	assert.Zero(t, mock.callCount())
	assert.Equal(t, 1, svc.cache.Len())
}

func TestSearchTerminalsProviderFallback(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			if opts.Proximity == "" {
				// Parent resolution call.
				return []types.MapboxFeature{poiFeature("poi.parent", "Shoreham Airport", "Shoreham Airport, West Sussex")}, nil
			}
			return []types.MapboxFeature{
				poiFeature("poi.t1", "Shoreham Airport Terminal", "Shoreham Airport Terminal, West Sussex"),
				poiFeature("poi.cafe", "Runway Cafe", "Runway Cafe, Shoreham"),
			}, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchTerminals(context.Background(), "shoreham airport", "airport")
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "poi.t1", response.Data[0].ID)
	assert.Equal(t, "terminal", response.Data[0].Metadata.Category)

	// One resolve call plus six terminal queries.
	assert.Equal(t, 7, mock.callCount())

	// The fallback path does not cache: a second call repeats the queries.
	svc.SearchTerminals(context.Background(), "shoreham airport", "airport")
	assert.Equal(t, 14, mock.callCount())
}

func TestSearchTerminalsStationFallbackQueries(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			if opts.Proximity == "" {
				return []types.MapboxFeature{poiFeature("poi.parent", "Clapham Junction", "Clapham Junction, London")}, nil
			}
			return []types.MapboxFeature{
				poiFeature("poi.p1", "Clapham Junction Platform 1", "Clapham Junction Platform 1, London"),
			}, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchTerminals(context.Background(), "clapham junction", "train_station")
	require.True(t, response.Success)
	require.Len(t, response.Data, 1)
	assert.Equal(t, "platform", response.Data[0].Metadata.Category)

	// One resolve call plus five platform queries.
	assert.Equal(t, 6, mock.callCount())
}

func TestSearchTerminalsUnresolvableLocation(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return nil, nil
		},
	}
	svc := newTestService(mock)

	response := svc.SearchTerminals(context.Background(), "atlantis airport", "airport")
	require.False(t, response.Success)
	require.NotNil(t, response.Error)
	assert.Equal(t, "Location not found", response.Error.Message)
	assert.Equal(t, 1, mock.callCount(), "only the resolve call runs")
}

func TestEnhancedSearchOrdersByTypePriority(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{
				{ID: "f.place", Text: "London", PlaceType: []string{"place"}},
				{ID: "f.poi", Text: "London Eye", PlaceType: []string{"poi"}},
				{ID: "f.address", Text: "1 London Road", PlaceType: []string{"address"}},
			}, nil
		},
	}
	svc := newTestService(mock)

	response := svc.EnhancedSearch(context.Background(), "london")
	require.True(t, response.Success)
	require.Len(t, response.Data, 3)

	assert.Equal(t, "f.poi", response.Data[0].ID)
	assert.Equal(t, "f.place", response.Data[1].ID)
	assert.Equal(t, "f.address", response.Data[2].ID)
	for _, suggestion := range response.Data {
		assert.Equal(t, "general", suggestion.Metadata.Category)
	}

	assert.Equal(t, 4, mock.callCount(), "one call per type variant")
}

func TestEnhancedSearchShortQuery(t *testing.T) {
	mock := &mockGeocoder{}
	svc := newTestService(mock)

	response := svc.EnhancedSearch(context.Background(), "x")
	require.True(t, response.Success)
	assert.Empty(t, response.Data)
	assert.Zero(t, mock.callCount())
}

func TestEnhancedSearchEmptyResultIsSuccess(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return nil, nil
		},
	}
	svc := newTestService(mock)

	response := svc.EnhancedSearch(context.Background(), "nowhere interesting")
	require.True(t, response.Success)
	assert.NotNil(t, response.Data)
	assert.Empty(t, response.Data)
}

func TestConcurrentIdenticalSearches(t *testing.T) {
	mock := &mockGeocoder{
		respond: func(query string, opts types.GeocodeOptions) ([]types.MapboxFeature, error) {
			return []types.MapboxFeature{poiFeature("poi."+query, query, query)}, nil
		},
	}
	svc := newTestService(mock)

	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			response := svc.SearchByCategory(context.Background(), "parks")
			assert.True(t, response.Success)
		}()
	}
	wg.Wait()

	// Races before the first cache write may each hit the provider; the
	// cache must stay consistent and later calls are served from it.
	calls := mock.callCount()
	svc.SearchByCategory(context.Background(), "parks")
	assert.Equal(t, calls, mock.callCount())
}
