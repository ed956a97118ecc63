package data

import "github.com/swiftcab/api-go/types"

// ukTransportLocations is the static reference dataset of major UK airports
// and railway stations. Looked up by id, never searched.
var ukTransportLocations = []types.UKTransportLocation{
	{ID: "heathrow-airport", Name: "Heathrow Airport", Type: "airport", Latitude: 51.4700, Longitude: -0.4543, Postcode: "TW6 1QG", City: "London"},
	{ID: "gatwick-airport", Name: "Gatwick Airport", Type: "airport", Latitude: 51.1537, Longitude: -0.1821, Postcode: "RH6 0NP", City: "London"},
	{ID: "stansted-airport", Name: "Stansted Airport", Type: "airport", Latitude: 51.8860, Longitude: 0.2389, Postcode: "CM24 1QW", City: "London"},
	{ID: "luton-airport", Name: "Luton Airport", Type: "airport", Latitude: 51.8747, Longitude: -0.3683, Postcode: "LU2 9LY", City: "Luton"},
	{ID: "manchester-airport", Name: "Manchester Airport", Type: "airport", Latitude: 53.3537, Longitude: -2.2750, Postcode: "M90 1QX", City: "Manchester"},
	{ID: "birmingham-airport", Name: "Birmingham Airport", Type: "airport", Latitude: 52.4539, Longitude: -1.7480, Postcode: "B26 3QJ", City: "Birmingham"},
	{ID: "edinburgh-airport", Name: "Edinburgh Airport", Type: "airport", Latitude: 55.9500, Longitude: -3.3725, Postcode: "EH12 9DN", City: "Edinburgh"},
	{ID: "london-city-airport", Name: "London City Airport", Type: "airport", Latitude: 51.5048, Longitude: 0.0495, Postcode: "E16 2PX", City: "London"},
	{ID: "kings-cross-station", Name: "King's Cross Station", Type: "train_station", Latitude: 51.5308, Longitude: -0.1238, Postcode: "N1 9AL", City: "London"},
	{ID: "paddington-station", Name: "Paddington Station", Type: "train_station", Latitude: 51.5154, Longitude: -0.1755, Postcode: "W2 1HQ", City: "London"},
	{ID: "euston-station", Name: "Euston Station", Type: "train_station", Latitude: 51.5282, Longitude: -0.1337, Postcode: "NW1 2RT", City: "London"},
	{ID: "victoria-station", Name: "Victoria Station", Type: "train_station", Latitude: 51.4952, Longitude: -0.1441, Postcode: "SW1V 1JU", City: "London"},
	{ID: "waterloo-station", Name: "Waterloo Station", Type: "train_station", Latitude: 51.5031, Longitude: -0.1132, Postcode: "SE1 8SW", City: "London"},
	{ID: "st-pancras-station", Name: "St Pancras International", Type: "train_station", Latitude: 51.5310, Longitude: -0.1260, Postcode: "N1C 4QP", City: "London"},
	{ID: "manchester-piccadilly-station", Name: "Manchester Piccadilly Station", Type: "train_station", Latitude: 53.4774, Longitude: -2.2309, Postcode: "M60 7RA", City: "Manchester"},
	{ID: "birmingham-new-street-station", Name: "Birmingham New Street Station", Type: "train_station", Latitude: 52.4778, Longitude: -1.8988, Postcode: "B2 4QA", City: "Birmingham"},
	{ID: "edinburgh-waverley-station", Name: "Edinburgh Waverley Station", Type: "train_station", Latitude: 55.9521, Longitude: -3.1893, Postcode: "EH1 1BB", City: "Edinburgh"},
}

// ukTerminals maps a location id to its known terminals or platform groups.
var ukTerminals = map[string][]types.Terminal{
	"heathrow-airport": {
		{ID: "heathrow-terminal-2", Name: "Terminal 2", FullName: "Heathrow Airport Terminal 2", Description: "The Queen's Terminal", Latitude: 51.4700, Longitude: -0.4543, Type: "terminal"},
		{ID: "heathrow-terminal-3", Name: "Terminal 3", FullName: "Heathrow Airport Terminal 3", Latitude: 51.4713, Longitude: -0.4565, Type: "terminal"},
		{ID: "heathrow-terminal-4", Name: "Terminal 4", FullName: "Heathrow Airport Terminal 4", Latitude: 51.4594, Longitude: -0.4475, Type: "terminal"},
		{ID: "heathrow-terminal-5", Name: "Terminal 5", FullName: "Heathrow Airport Terminal 5", Latitude: 51.4723, Longitude: -0.4887, Type: "terminal"},
	},
	"gatwick-airport": {
		{ID: "gatwick-north-terminal", Name: "North Terminal", FullName: "Gatwick Airport North Terminal", Latitude: 51.1614, Longitude: -0.1770, Type: "terminal"},
		{ID: "gatwick-south-terminal", Name: "South Terminal", FullName: "Gatwick Airport South Terminal", Latitude: 51.1537, Longitude: -0.1616, Type: "terminal"},
	},
	"manchester-airport": {
		{ID: "manchester-terminal-1", Name: "Terminal 1", FullName: "Manchester Airport Terminal 1", Latitude: 53.3654, Longitude: -2.2728, Type: "terminal"},
		{ID: "manchester-terminal-2", Name: "Terminal 2", FullName: "Manchester Airport Terminal 2", Latitude: 53.3615, Longitude: -2.2788, Type: "terminal"},
		{ID: "manchester-terminal-3", Name: "Terminal 3", FullName: "Manchester Airport Terminal 3", Latitude: 53.3626, Longitude: -2.2695, Type: "terminal"},
	},
	"stansted-airport": {
		{ID: "stansted-main-terminal", Name: "Main Terminal", FullName: "Stansted Airport Main Terminal", Latitude: 51.8860, Longitude: 0.2389, Type: "terminal"},
	},
	"kings-cross-station": {
		{ID: "kings-cross-platforms-0-8", Name: "Platforms 0-8", FullName: "King's Cross Station Platforms 0-8", Description: "Main line departures", Latitude: 51.5308, Longitude: -0.1238, Type: "platform"},
		{ID: "kings-cross-platforms-9-11", Name: "Platforms 9-11", FullName: "King's Cross Station Platforms 9-11", Description: "Suburban services", Latitude: 51.5315, Longitude: -0.1245, Type: "platform"},
	},
	"paddington-station": {
		{ID: "paddington-platforms-1-8", Name: "Platforms 1-8", FullName: "Paddington Station Platforms 1-8", Description: "Main line departures", Latitude: 51.5154, Longitude: -0.1755, Type: "platform"},
		{ID: "paddington-platforms-9-14", Name: "Platforms 9-14", FullName: "Paddington Station Platforms 9-14", Description: "Elizabeth line and relief services", Latitude: 51.5160, Longitude: -0.1770, Type: "platform"},
	},
	"euston-station": {
		{ID: "euston-platforms-1-18", Name: "Platforms 1-18", FullName: "Euston Station Platforms 1-18", Latitude: 51.5282, Longitude: -0.1337, Type: "platform"},
	},
	"victoria-station": {
		{ID: "victoria-platforms-1-8", Name: "Platforms 1-8", FullName: "Victoria Station Platforms 1-8", Description: "Chatham side", Latitude: 51.4952, Longitude: -0.1441, Type: "platform"},
		{ID: "victoria-platforms-9-19", Name: "Platforms 9-19", FullName: "Victoria Station Platforms 9-19", Description: "Brighton side", Latitude: 51.4945, Longitude: -0.1452, Type: "platform"},
	},
}

// FindLocationByID looks up an airport or station in the static dataset.
// Returns nil when the id is unknown.
func FindLocationByID(id string) *types.UKTransportLocation {
	for i := range ukTransportLocations {
		if ukTransportLocations[i].ID == id {
			return &ukTransportLocations[i]
		}
	}
	return nil
}

// TerminalsByLocationID returns the known terminals or platform groups for a
// location id. Empty for locations without curated terminal data.
func TerminalsByLocationID(id string) []types.Terminal {
	return ukTerminals[id]
}
