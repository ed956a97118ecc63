package types

// GeocodeOptions are the per-query parameters a search engine passes to the
// geocoding provider. Zero values mean "omit the parameter".
type GeocodeOptions struct {
	Types        string
	Limit        int
	Autocomplete bool
	BBox         string
	Proximity    string
}

type MapboxGeocodingResponse struct {
	Type        string          `json:"type"`
	Query       []string        `json:"query"`
	Features    []MapboxFeature `json:"features"`
	Attribution string          `json:"attribution"`
}

// MapboxFeature is the subset of a geocoding feature this service consumes.
// Every field is optional on the wire; readers fall back to defaults.
type MapboxFeature struct {
	ID        string               `json:"id,omitempty"`
	PlaceName string               `json:"place_name,omitempty"`
	Text      string               `json:"text,omitempty"`
	Center    []float64            `json:"center,omitempty"`
	PlaceType []string             `json:"place_type,omitempty"`
	Context   []MapboxContextEntry `json:"context,omitempty"`
}

type MapboxContextEntry struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Latitude returns center[1], or 0 when the provider omitted coordinates.
// Callers treat 0,0 as "unknown", not as a real position.
func (f MapboxFeature) Latitude() float64 {
	if len(f.Center) < 2 {
		return 0
	}
	return f.Center[1]
}

// Longitude returns center[0], or 0 when the provider omitted coordinates.
func (f MapboxFeature) Longitude() float64 {
	if len(f.Center) < 1 {
		return 0
	}
	return f.Center[0]
}

// PrimaryType returns the first place_type tag, defaulting to "poi".
func (f MapboxFeature) PrimaryType() string {
	if len(f.PlaceType) == 0 {
		return "poi"
	}
	return f.PlaceType[0]
}
