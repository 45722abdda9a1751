package menu

import (
	"context"
	"errors"

	"github.com/shrvya4/Glucose-Guardian/internal/places"
)

// WebsiteStrategy resolves the place identifier to the restaurant's own
// website and extracts menu content from it: structured markup first,
// heuristics second.
type WebsiteStrategy struct {
	api   places.API
	fetch *Fetcher
}

func NewWebsiteStrategy(api places.API, fetch *Fetcher) *WebsiteStrategy {
	return &WebsiteStrategy{api: api, fetch: fetch}
}

func (s *WebsiteStrategy) Name() string { return "official-website" }

func (s *WebsiteStrategy) Attempt(ctx context.Context, req Request) (*Result, error) {
	if req.PlaceID == "" {
		return nil, errors.New("no place identifier available")
	}

	details, err := s.api.Details(ctx, req.PlaceID)
	if err != nil {
		return nil, err
	}
	if details.Website == "" {
		return nil, errors.New("place has no website")
	}

	doc, err := s.fetch.Get(ctx, details.Website)
	if err != nil {
		return nil, err
	}

	dishes, categories := extractDishes(doc)
	if len(dishes) == 0 {
		return nil, errors.New("no menu content on official website")
	}

	return &Result{
		Dishes:     dishes,
		Categories: categories,
		Source:     SourceWebSearch,
		URL:        details.Website,
	}, nil
}
