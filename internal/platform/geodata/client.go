package geodata

import (
	"context"
	"encoding/json"

	"countryapi/internal/platform/fetch"
)

const defaultBaseURL = "https://raw.githubusercontent.com/johan/world.geo.json/master"

type Client struct {
	fetch   *fetch.Client
	baseURL string
}

func NewClient(f *fetch.Client, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{fetch: f, baseURL: baseURL}
}

// FeatureCollection is the static world boundary dataset. Geometry is kept
// raw: this service matches on properties and hands the shape through
// untouched.
type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

type Feature struct {
	Type       string          `json:"type"`
	Properties map[string]any  `json:"properties"`
	Geometry   json.RawMessage `json:"geometry"`
}

// Countries fetches the full boundary dataset in one request.
func (c *Client) Countries(ctx context.Context) (*FeatureCollection, error) {
	var out FeatureCollection
	if err := c.fetch.GetJSON(ctx, c.baseURL+"/countries.geo.json", &out); err != nil {
		return nil, err
	}
	return &out, nil
}
