package places

// RestaurantCandidate is one nearby restaurant as surfaced to the menu
// pipeline and the UI. Not persisted beyond the current request.
type RestaurantCandidate struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	Rating   string `json:"rating"`
	Price    string `json:"price"`
	Cuisine  string `json:"cuisine"`
	PlaceID  string `json:"place_id,omitempty"`
	MapsURL  string `json:"maps_url,omitempty"`
}

// Place is a raw nearby-search hit from the places service.
type Place struct {
	Name       string
	Vicinity   string
	PlaceID    string
	Rating     float32
	PriceLevel int
	Types      []string
}

// Details is the subset of place details the menu pipeline needs.
type Details struct {
	Name    string
	Website string
}
