package types

import "encoding/json"

type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type SuggestionMetadata struct {
	PrimaryType   string `json:"primaryType"`
	Postcode      string `json:"postcode,omitempty"`
	City          string `json:"city,omitempty"`
	Region        string `json:"region"`
	Category      string `json:"category"`
	PlaceID       string `json:"placeId"`
	ParentPlaceID string `json:"parentPlaceId,omitempty"`
}

// LocationSuggestion is the canonical place record returned by every search
// operation. Latitude/Longitude are always populated; 0,0 means the provider
// gave no coordinates.
type LocationSuggestion struct {
	ID            string             `json:"id"`
	Address       string             `json:"address"`
	MainText      string             `json:"mainText"`
	SecondaryText string             `json:"secondaryText"`
	Name          string             `json:"name"`
	Latitude      float64            `json:"latitude"`
	Longitude     float64            `json:"longitude"`
	Coordinates   Coordinates        `json:"coordinates"`
	Metadata      SuggestionMetadata `json:"metadata"`
}

type SearchError struct {
	Message string `json:"message"`
	Details string `json:"details"`
}

// LocationSearchResponse is the uniform envelope for all search operations.
// Exactly one of Data or Error is populated.
type LocationSearchResponse struct {
	Success bool                 `json:"success"`
	Data    []LocationSuggestion `json:"data,omitempty"`
	Error   *SearchError         `json:"error,omitempty"`
}

// MarshalJSON keeps the wire envelope to exactly one shape: success
// responses always carry a data array (empty results serialize as []),
// error responses carry only the error.
func (r LocationSearchResponse) MarshalJSON() ([]byte, error) {
	if r.Success {
		data := r.Data
		if data == nil {
			data = []LocationSuggestion{}
		}
		return json.Marshal(struct {
			Success bool                 `json:"success"`
			Data    []LocationSuggestion `json:"data"`
		}{true, data})
	}
	return json.Marshal(struct {
		Success bool         `json:"success"`
		Error   *SearchError `json:"error"`
	}{false, r.Error})
}

// UKLocationCategory is a static catalog entry. SearchQueries is the ordered
// list of seed strings used to bootstrap provider queries for the category.
type UKLocationCategory struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Icon          string   `json:"icon"`
	SearchQueries []string `json:"searchQueries"`
	Types         []string `json:"types"`
	Description   string   `json:"description"`
}

// UKTransportLocation is a known airport or railway station from the static
// reference dataset.
type UKTransportLocation struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Postcode  string  `json:"postcode"`
	City      string  `json:"city"`
}

// Terminal is a terminal or platform belonging to a UKTransportLocation.
type Terminal struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	FullName    string  `json:"fullName"`
	Description string  `json:"description,omitempty"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Type        string  `json:"type"`
}
