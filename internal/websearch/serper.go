package websearch

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

// Result is one organic search hit.
type Result struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Searcher is the contract the menu strategies depend on, so tests can use
// a canned implementation.
type Searcher interface {
	Search(ctx context.Context, query string) ([]Result, error)
}

// SerperClient queries the Serper search API (a Google Search frontend).
type SerperClient struct {
	apiKey string
	apiURL string
	client *http.Client
}

func NewSerperClient() *SerperClient {
	return &SerperClient{
		apiKey: os.Getenv("SERPER_API_KEY"),
		apiURL: "https://google.serper.dev/search",
		client: &http.Client{Timeout: 30 * time.Second},
	}
}

func (s *SerperClient) Search(ctx context.Context, query string) ([]Result, error) {
	if s.apiKey == "" {
		return nil, errors.New("missing SERPER_API_KEY")
	}

	payload, err := json.Marshal(map[string]any{
		"q":   query,
		"gl":  "us",
		"hl":  "en",
		"num": 10,
	})
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		s.apiURL,
		bytes.NewBuffer(payload),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-API-KEY", s.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("serper api error: status %d: %s", resp.StatusCode, string(raw))
	}

	var parsed struct {
		Organic []Result `json:"organic"`
	}
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return nil, err
	}

	return parsed.Organic, nil
}
