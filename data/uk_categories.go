// Package data holds the static UK reference registries: the location
// category catalog and the airports/stations dataset. Everything here is
// package-level literal data, created at process start and never mutated.
package data

import "github.com/swiftcab/api-go/types"

// UKLocationCategories is the full category catalog. Seed order determines
// provider query order but not final ranking.
var UKLocationCategories = []types.UKLocationCategory{
	{
		ID:   "airports",
		Name: "Airports",
		Icon: "✈️",
		SearchQueries: []string{
			"Heathrow Airport",
			"Gatwick Airport",
			"Stansted Airport",
			"Luton Airport",
			"Manchester Airport",
			"Birmingham Airport",
			"Edinburgh Airport",
			"Glasgow Airport",
			"Bristol Airport",
			"Newcastle Airport",
			"Liverpool Airport",
			"Leeds Bradford Airport",
			"East Midlands Airport",
			"Doncaster Sheffield Airport",
			"Cardiff Airport",
			"Belfast International Airport",
			"Aberdeen Airport",
			"Southampton Airport",
			"Bournemouth Airport",
			"Exeter Airport",
			"London City Airport",
			"Southend Airport",
			"Norwich Airport",
			"Humberside Airport",
			"Durham Tees Valley Airport",
			"Blackpool Airport",
			"Prestwick Airport",
			"Inverness Airport",
			"Isle of Man Airport",
			"Jersey Airport",
			"Guernsey Airport",
		},
		Types:       []string{"poi"},
		Description: "UK airports and aerodromes",
	},
	{
		ID:   "train_stations",
		Name: "Train Stations",
		Icon: "🚆",
		SearchQueries: []string{
			"King's Cross Station",
			"Paddington Station",
			"Victoria Station",
			"Waterloo Station",
			"Euston Station",
			"Liverpool Street Station",
			"St Pancras Station",
			"Charing Cross Station",
			"London Bridge Station",
			"Manchester Piccadilly Station",
			"Birmingham New Street Station",
			"Edinburgh Waverley Station",
			"Glasgow Central Station",
			"Bristol Temple Meads Station",
			"Newcastle Central Station",
			"Liverpool Lime Street Station",
			"Leeds Station",
			"Sheffield Station",
			"Nottingham Station",
			"Cardiff Central Station",
			"Reading Station",
			"Brighton Station",
			"Bath Spa Station",
			"York Station",
			"Durham Station",
			"Cambridge Station",
			"Oxford Station",
			"Bristol Parkway Station",
			"Crewe Station",
			"Preston Station",
			"Carlisle Station",
			"Aberdeen Station",
			"Inverness Station",
		},
		Types:       []string{"poi"},
		Description: "UK railway stations",
	},
	{
		ID:   "tube_stations",
		Name: "Tube Stations",
		Icon: "🚇",
		SearchQueries: []string{
			"Leicester Square Underground",
			"Bank Underground",
			"Canary Wharf Underground",
			"Oxford Circus Underground",
			"Piccadilly Circus Underground",
			"Tottenham Court Road Underground",
			"Holborn Underground",
			"Covent Garden Underground",
			"Embankment Underground",
			"Westminster Underground",
			"Green Park Underground",
			"Hyde Park Corner Underground",
			"Knightsbridge Underground",
			"South Kensington Underground",
			"Earl's Court Underground",
			"Gloucester Road Underground",
			"Sloane Square Underground",
			"Victoria Underground",
			"Pimlico Underground",
			"Vauxhall Underground",
		},
		Types:       []string{"poi"},
		Description: "London Underground stations",
	},
	{
		ID:   "landmarks",
		Name: "Landmarks",
		Icon: "🏛️",
		SearchQueries: []string{
			"Big Ben",
			"Buckingham Palace",
			"Stonehenge",
			"London Eye",
			"Wembley Stadium",
			"O2 Arena",
			"Eden Project",
			"Natural History Museum",
			"Windsor Castle",
			"Tower of London",
			"Tower Bridge",
			"London Bridge",
			"Westminster Abbey",
			"St Paul's Cathedral",
			"Trafalgar Square",
			"Piccadilly Circus",
			"Covent Garden",
			"Camden Market",
			"Portobello Road Market",
			"Borough Market",
			"Hyde Park",
			"Regent's Park",
			"Kensington Palace",
			"Hampton Court Palace",
			"Chatsworth House",
			"Blenheim Palace",
			"Alnwick Castle",
			"Edinburgh Castle",
			"Stirling Castle",
			"Eilean Donan Castle",
			"Caernarfon Castle",
			"Warwick Castle",
			"Leeds Castle",
			"Dover Castle",
			"Bamburgh Castle",
			"Arundel Castle",
			"Highclere Castle",
			"Balmoral Castle",
			"Holyrood Palace",
			"Palace of Holyroodhouse",
			"Royal Mile Edinburgh",
			"Arthur's Seat",
			"Calton Hill",
			"Princes Street Gardens",
			"Royal Botanic Gardens Edinburgh",
			"Scott Monument",
			"National Gallery of Scotland",
			"Scottish National Gallery",
			"Royal Yacht Britannia",
			"Dynamic Earth",
			"Camera Obscura",
			"Edinburgh Zoo",
			"Royal Observatory Greenwich",
			"Cutty Sark",
			"Greenwich Park",
			"Old Royal Naval College",
			"Queen's House",
			"National Maritime Museum",
			"Royal Observatory",
			"Prime Meridian",
			"Greenwich Mean Time",
			"Canary Wharf",
			"Docklands",
			"London Docklands",
			"ExCeL London",
			"Olympic Park",
			"Queen Elizabeth Olympic Park",
			"Stratford",
			"Westfield Stratford",
			"Westfield London",
			"Bluewater",
			"Trafford Centre",
			"Meadowhall",
			"Metrocentre",
			"Brent Cross",
			"White Rose Centre",
			"Lakeside",
			"Intu Watford",
			"Intu Braehead",
			"Intu Victoria Centre",
			"Intu Eldon Square",
			"Intu Merry Hill",
			"Intu Derby",
			"Intu Potteries",
			"Intu Trafford Centre",
			"Intu Lakeside",
		},
		Types:       []string{"poi"},
		Description: "Famous UK landmarks and attractions",
	},
	{
		ID:   "hospitals",
		Name: "Hospitals",
		Icon: "🏥",
		SearchQueries: []string{
			"Guy's Hospital",
			"St Thomas' Hospital",
			"King's College Hospital",
			"University College Hospital",
			"Royal London Hospital",
			"Barts Hospital",
			"Manchester Royal Infirmary",
			"Birmingham Queen Elizabeth Hospital",
			"Edinburgh Royal Infirmary",
			"Glasgow Royal Infirmary",
			"Bristol Royal Infirmary",
			"Newcastle Royal Victoria Infirmary",
			"Liverpool Royal Hospital",
			"Leeds General Infirmary",
			"Sheffield Northern General Hospital",
			"Nottingham City Hospital",
			"Cardiff University Hospital",
			"Belfast Royal Victoria Hospital",
			"Aberdeen Royal Infirmary",
			"Southampton General Hospital",
		},
		Types:       []string{"poi"},
		Description: "UK hospitals and medical facilities",
	},
	{
		ID:   "universities",
		Name: "Universities",
		Icon: "🎓",
		SearchQueries: []string{
			"University College London",
			"University of Oxford",
			"University of Cambridge",
			"Imperial College London",
			"London School of Economics",
			"King's College London",
			"Queen Mary University of London",
			"University of Manchester",
			"University of Birmingham",
			"University of Edinburgh",
			"University of Glasgow",
			"University of Bristol",
			"University of Newcastle",
			"University of Liverpool",
			"University of Leeds",
			"University of Sheffield",
			"University of Nottingham",
			"Cardiff University",
			"Queen's University Belfast",
			"University of Aberdeen",
		},
		Types:       []string{"poi"},
		Description: "UK universities and colleges",
	},
	{
		ID:   "shopping_centres",
		Name: "Shopping Centres",
		Icon: "🛍️",
		SearchQueries: []string{
			"Westfield London",
			"Westfield Stratford",
			"Bluewater",
			"Trafford Centre",
			"Meadowhall",
			"Metrocentre",
			"Brent Cross",
			"White Rose Centre",
			"Lakeside",
			"Intu Watford",
			"Intu Braehead",
			"Intu Victoria Centre",
			"Intu Eldon Square",
			"Intu Merry Hill",
			"Intu Derby",
			"Intu Potteries",
			"Intu Trafford Centre",
			"Intu Lakeside",
		},
		Types:       []string{"poi"},
		Description: "UK shopping centres and malls",
	},
	{
		ID:   "hotels",
		Name: "Hotels",
		Icon: "🏨",
		SearchQueries: []string{
			"The Ritz London",
			"Claridge's Hotel",
			"The Savoy Hotel",
			"The Dorchester",
			"The Connaught",
			"Brown's Hotel",
			"The Berkeley",
			"The Goring",
			"The Langham",
			"The Lanesborough",
			"Mandarin Oriental Hyde Park",
			"Park Lane Hotel",
			"Grosvenor House Hotel",
			"The May Fair Hotel",
			"The Berkeley Hotel",
			"The Connaught Hotel",
			"The Goring Hotel",
			"The Langham Hotel",
			"The Lanesborough Hotel",
			"Mandarin Oriental Hotel",
		},
		Types:       []string{"poi"},
		Description: "UK hotels and accommodation",
	},
	{
		ID:   "restaurants",
		Name: "Restaurants",
		Icon: "🍽️",
		SearchQueries: []string{
			"Nando's",
			"Wagamama",
			"Dishoom",
			"The Ivy",
			"Gordon Ramsay Restaurants",
			"Hakkasan",
			"Zuma",
			"Nobu",
			"Sketch",
			"Gymkhana",
			"Heddon Street Kitchen",
			"Sexy Fish",
			"Chiltern Firehouse",
			"The Wolseley",
			"The Delaunay",
			"The Ritz Restaurant",
			"Claridge's Restaurant",
			"The Savoy Grill",
			"The Dorchester Grill",
			"The Connaught Grill",
		},
		Types:       []string{"poi"},
		Description: "UK restaurants and dining",
	},
	{
		ID:   "parks",
		Name: "Parks",
		Icon: "🌳",
		SearchQueries: []string{
			"Hyde Park",
			"Richmond Park",
			"Hampstead Heath",
			"Regent's Park",
			"Green Park",
			"St James's Park",
			"Kensington Gardens",
			"Battersea Park",
			"Victoria Park",
			"Clapham Common",
			"Wimbledon Common",
			"Putney Heath",
			"Wormwood Scrubs",
			"Holland Park",
			"Kew Gardens",
			"Royal Botanic Gardens",
			"Crystal Palace Park",
			"Alexandra Palace Park",
			"Finsbury Park",
			"Brockwell Park",
		},
		Types:       []string{"poi"},
		Description: "UK parks and green spaces",
	},
	{
		ID:   "museums",
		Name: "Museums",
		Icon: "🏛️",
		SearchQueries: []string{
			"British Museum",
			"Natural History Museum",
			"Science Museum",
			"Victoria and Albert Museum",
			"Tate Modern",
			"Tate Britain",
			"National Gallery",
			"National Portrait Gallery",
			"Imperial War Museum",
			"Museum of London",
			"Design Museum",
			"Horniman Museum",
			"Dulwich Picture Gallery",
			"Wallace Collection",
			"Sir John Soane's Museum",
			"Geffrye Museum",
			"Museum of the Home",
			"Garden Museum",
			"Fashion and Textile Museum",
			"Cartoon Museum",
			"Ashmolean Museum",
			"Pitt Rivers Museum",
			"Fitzwilliam Museum",
			"Scottish National Gallery",
			"Scottish National Portrait Gallery",
			"Scottish National Museum",
			"Kelvingrove Art Gallery",
			"Hunterian Museum",
			"National Museum of Scotland",
			"Royal Museum",
			"Museum of Edinburgh",
			"Museum of Transport",
			"Riverside Museum",
			"People's Palace",
			"Tenement House",
			"Provand's Lordship",
			"St Mungo Museum",
			"Gallery of Modern Art",
			"Museum of Religious Life",
			"Museum of Piping",
			"Museum of Childhood",
		},
		Types:       []string{"poi"},
		Description: "UK museums and galleries",
	},
	{
		ID:   "famous_places",
		Name: "Famous Places",
		Icon: "⭐",
		SearchQueries: []string{
			"Big Ben",
			"Buckingham Palace",
			"Stonehenge",
			"London Eye",
			"Wembley Stadium",
			"O2 Arena",
			"Eden Project",
			"Windsor Castle",
			"Tower of London",
			"Tower Bridge",
			"London Bridge",
			"Westminster Abbey",
			"St Paul's Cathedral",
			"Trafalgar Square",
			"Piccadilly Circus",
			"Covent Garden",
			"Camden Market",
			"Portobello Road Market",
			"Borough Market",
			"Hyde Park",
			"Regent's Park",
			"Kensington Palace",
			"Hampton Court Palace",
			"Chatsworth House",
			"Blenheim Palace",
			"Alnwick Castle",
			"Edinburgh Castle",
			"Stirling Castle",
			"Eilean Donan Castle",
			"Caernarfon Castle",
			"Warwick Castle",
			"Leeds Castle",
			"Dover Castle",
			"Bamburgh Castle",
			"Arundel Castle",
			"Highclere Castle",
			"Balmoral Castle",
			"Holyrood Palace",
			"Palace of Holyroodhouse",
			"Royal Mile Edinburgh",
			"Arthur's Seat",
			"Calton Hill",
			"Princes Street Gardens",
			"Royal Botanic Gardens Edinburgh",
			"Scott Monument",
			"National Gallery of Scotland",
			"Scottish National Gallery",
			"Royal Yacht Britannia",
			"Dynamic Earth",
			"Camera Obscura",
			"Edinburgh Zoo",
			"Royal Observatory Greenwich",
			"Cutty Sark",
			"Greenwich Park",
			"Old Royal Naval College",
			"Queen's House",
			"National Maritime Museum",
			"Royal Observatory",
			"Prime Meridian",
			"Greenwich Mean Time",
			"Canary Wharf",
			"Docklands",
			"London Docklands",
			"ExCeL London",
			"Olympic Park",
			"Queen Elizabeth Olympic Park",
			"Stratford",
			"Westfield Stratford",
			"Westfield London",
			"Bluewater",
			"Trafford Centre",
			"Meadowhall",
			"Metrocentre",
			"Brent Cross",
			"White Rose Centre",
			"Lakeside",
			"Intu Watford",
			"Intu Braehead",
			"Intu Victoria Centre",
			"Intu Eldon Square",
			"Intu Merry Hill",
			"Intu Derby",
			"Intu Potteries",
			"Intu Trafford Centre",
			"Intu Lakeside",
		},
		Types:       []string{"poi"},
		Description: "Famous UK landmarks and popular places",
	},
}

// FindCategoryByID resolves a catalog entry, or nil if the id is unknown.
func FindCategoryByID(id string) *types.UKLocationCategory {
	for i := range UKLocationCategories {
		if UKLocationCategories[i].ID == id {
			return &UKLocationCategories[i]
		}
	}
	return nil
}
