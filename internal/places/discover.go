package places

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// MaxRadiusMeters is the practical UI cap on the search radius.
const MaxRadiusMeters = 20000

var (
	ErrInvalidLocation = errors.New("coordinates out of valid range: latitude must be between -90 and 90, longitude between -180 and 180")
	ErrInvalidRadius   = errors.New("radius must be positive and at most 20000 meters")
)

type Service struct {
	api API
}

func NewService(api API) *Service {
	return &Service{api: api}
}

// ValidateCoordinates checks lat/lng bounds.
func ValidateCoordinates(lat, lng float64) error {
	if lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return ErrInvalidLocation
	}
	return nil
}

// Discover finds nearby restaurants matching the requested cuisines.
// Invalid input is an error; zero results or a service failure is NOT — it
// comes back as an empty slice plus a human-readable reason, so the search
// surface stays usable.
func (s *Service) Discover(
	ctx context.Context,
	lat, lng float64,
	radiusMeters int,
	cuisines []string,
) ([]RestaurantCandidate, string, error) {

	if err := ValidateCoordinates(lat, lng); err != nil {
		return nil, "", err
	}
	if radiusMeters <= 0 || radiusMeters > MaxRadiusMeters {
		return nil, "", ErrInvalidRadius
	}

	keyword := strings.Join(cuisines, " OR ")

	results, err := s.api.Nearby(ctx, lat, lng, uint(radiusMeters), keyword)
	if err != nil {
		log.Printf("DISCOVER_FAILED lat=%f lng=%f err=%v", lat, lng, err)
		return []RestaurantCandidate{}, fmt.Sprintf("Restaurant search failed: %v", err), nil
	}

	if len(results) == 0 {
		return []RestaurantCandidate{}, "No restaurants found in this area. Try a different location or increasing the radius.", nil
	}

	candidates := make([]RestaurantCandidate, 0, len(results))
	for _, place := range results {
		candidates = append(candidates, toCandidate(place))
	}

	log.Printf("DISCOVER_DONE count=%d radius=%d", len(candidates), radiusMeters)
	return candidates, "", nil
}

func toCandidate(place Place) RestaurantCandidate {
	rating := "N/A"
	if place.Rating > 0 {
		rating = fmt.Sprintf("%.1f", place.Rating)
	}

	level := place.PriceLevel
	if level < 1 {
		level = 1
	}

	address := place.Vicinity
	if address == "" {
		address = "Address unavailable"
	}

	mapsURL := ""
	if place.PlaceID != "" {
		mapsURL = "https://www.google.com/maps/place/?q=place_id:" + place.PlaceID
	}

	return RestaurantCandidate{
		Name:    place.Name,
		Address: address,
		Rating:  rating,
		Price:   strings.Repeat("$", level),
		Cuisine: cuisineFromTypes(place.Types),
		PlaceID: place.PlaceID,
		MapsURL: mapsURL,
	}
}

// cuisineFromTypes picks the first place type that is more specific than
// "restaurant" and turns it into a display label.
func cuisineFromTypes(types []string) string {
	for _, t := range types {
		if t == "restaurant" || strings.HasPrefix(t, "point_of_interest") {
			continue
		}
		label := strings.ReplaceAll(t, "_", " ")
		return toTitle(label)
	}
	return "Restaurant"
}

func toTitle(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
