package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocationSearchResponseMarshalSuccess(t *testing.T) {
	response := LocationSearchResponse{
		Success: true,
		Data: []LocationSuggestion{
			{ID: "poi.1", Name: "Big Ben"},
		},
	}

	body, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.Contains(t, decoded, "data")
	assert.NotContains(t, decoded, "error")
}

func TestLocationSearchResponseMarshalEmptySuccess(t *testing.T) {
	body, err := json.Marshal(LocationSearchResponse{Success: true})
	require.NoError(t, err)

	// Empty results still serialize an array, never null or a missing key.
	assert.JSONEq(t, `{"success":true,"data":[]}`, string(body))
}

func TestLocationSearchResponseMarshalError(t *testing.T) {
	response := LocationSearchResponse{
		Success: false,
		Error:   &SearchError{Message: "Category not found", Details: "Category volcanoes does not exist"},
	}

	body, err := json.Marshal(response)
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(body, &decoded))
	assert.NotContains(t, decoded, "data", "error envelope must not carry a data key")
	assert.Contains(t, decoded, "error")

	var roundTrip LocationSearchResponse
	require.NoError(t, json.Unmarshal(body, &roundTrip))
	assert.False(t, roundTrip.Success)
	require.NotNil(t, roundTrip.Error)
	assert.Equal(t, "Category not found", roundTrip.Error.Message)
}
