package places

import (
	"context"
	"errors"
	"os"

	"googlemaps.github.io/maps"
)

// API is the narrow places-service contract the rest of the system depends
// on. Tests use a canned implementation.
type API interface {
	Nearby(ctx context.Context, lat, lng float64, radiusMeters uint, keyword string) ([]Place, error)
	Details(ctx context.Context, placeID string) (*Details, error)
}

// GoogleClient backs API with the Google Places web service.
type GoogleClient struct {
	client *maps.Client
}

func NewGoogleClient() (*GoogleClient, error) {
	key := os.Getenv("GOOGLE_API_KEY")
	if key == "" {
		return nil, errors.New("missing GOOGLE_API_KEY")
	}

	c, err := maps.NewClient(maps.WithAPIKey(key))
	if err != nil {
		return nil, err
	}

	return &GoogleClient{client: c}, nil
}

func (g *GoogleClient) Nearby(
	ctx context.Context,
	lat, lng float64,
	radiusMeters uint,
	keyword string,
) ([]Place, error) {

	resp, err := g.client.NearbySearch(ctx, &maps.NearbySearchRequest{
		Location: &maps.LatLng{Lat: lat, Lng: lng},
		Radius:   radiusMeters,
		Type:     maps.PlaceTypeRestaurant,
		Keyword:  keyword,
	})
	if err != nil {
		return nil, err
	}

	results := make([]Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		results = append(results, Place{
			Name:       r.Name,
			Vicinity:   r.Vicinity,
			PlaceID:    r.PlaceID,
			Rating:     r.Rating,
			PriceLevel: r.PriceLevel,
			Types:      r.Types,
		})
	}

	return results, nil
}

func (g *GoogleClient) Details(ctx context.Context, placeID string) (*Details, error) {
	resp, err := g.client.PlaceDetails(ctx, &maps.PlaceDetailsRequest{
		PlaceID: placeID,
		Fields: []maps.PlaceDetailsFieldMask{
			maps.PlaceDetailsFieldMaskName,
			maps.PlaceDetailsFieldMaskWebsite,
		},
	})
	if err != nil {
		return nil, err
	}

	return &Details{
		Name:    resp.Name,
		Website: resp.Website,
	}, nil
}
