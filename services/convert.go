package services

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/swiftcab/api-go/types"
)

const ukRegion = "UK"

// extractPostcode pulls the postcode from a feature's context hierarchy.
func extractPostcode(context []types.MapboxContextEntry) string {
	for _, entry := range context {
		if strings.HasPrefix(entry.ID, "postcode") {
			return entry.Text
		}
	}
	return ""
}

// extractCity pulls the city from a feature's context hierarchy.
func extractCity(context []types.MapboxContextEntry) string {
	for _, entry := range context {
		if strings.HasPrefix(entry.ID, "place") || strings.HasPrefix(entry.ID, "locality") {
			return entry.Text
		}
	}
	return ""
}

// convertFeature maps one provider feature to the canonical suggestion shape.
// Missing fields fall back to defaults; a feature without an id gets a
// synthesized one. Pure apart from the id synthesis - no I/O, no caching.
func convertFeature(feature types.MapboxFeature, category string) types.LocationSuggestion {
	id := feature.ID
	if id == "" {
		id = fmt.Sprintf("mapbox-%s", uuid.NewString())
	}

	address := feature.PlaceName
	if address == "" {
		address = "Unknown Location"
	}
	mainText := feature.Text
	if mainText == "" {
		mainText = "Unknown Location"
	}

	lat := feature.Latitude()
	lng := feature.Longitude()

	return types.LocationSuggestion{
		ID:            id,
		Address:       address,
		MainText:      mainText,
		SecondaryText: feature.PlaceName,
		Name:          mainText,
		Latitude:      lat,
		Longitude:     lng,
		Coordinates:   types.Coordinates{Lat: lat, Lng: lng},
		Metadata: types.SuggestionMetadata{
			PrimaryType: feature.PrimaryType(),
			Postcode:    extractPostcode(feature.Context),
			City:        extractCity(feature.Context),
			Region:      ukRegion,
			Category:    category,
			PlaceID:     feature.ID,
		},
	}
}

// convertTerminal maps a static-dataset terminal to the suggestion shape,
// inheriting postcode and city from the parent location.
func convertTerminal(terminal types.Terminal, parent *types.UKTransportLocation) types.LocationSuggestion {
	return types.LocationSuggestion{
		ID:            terminal.ID,
		Address:       terminal.FullName,
		MainText:      terminal.Name,
		SecondaryText: terminal.Description,
		Name:          terminal.Name,
		Latitude:      terminal.Latitude,
		Longitude:     terminal.Longitude,
		Coordinates:   types.Coordinates{Lat: terminal.Latitude, Lng: terminal.Longitude},
		Metadata: types.SuggestionMetadata{
			PrimaryType:   terminal.Type,
			Postcode:      parent.Postcode,
			City:          parent.City,
			Region:        ukRegion,
			Category:      terminal.Type,
			PlaceID:       terminal.ID,
			ParentPlaceID: parent.ID,
		},
	}
}
