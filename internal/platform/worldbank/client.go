package worldbank

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"countryapi/internal/platform/fetch"
)

const defaultBaseURL = "https://api.worldbank.org/v2"

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

// Row is one yearly observation. The API orders rows most-recent-first.
// Value stays nil for years with no reported figure.
type Row struct {
	Date  string   `json:"date"`
	Value *float64 `json:"value"`
}

// Series fetches the time series for one indicator of one country. The
// payload is a 2-element array [metadata, rows]; anything short of that
// shape (error envelopes, metadata-only answers) decodes to no rows rather
// than an error, since upstream uses it for "indicator unknown here" too.
func (c *Client) Series(ctx context.Context, countryCode, indicatorID string) ([]Row, error) {
	u := fmt.Sprintf("%s/country/%s/indicator/%s?format=json",
		c.baseURL, url.PathEscape(countryCode), url.PathEscape(indicatorID))

	var payload []json.RawMessage
	if err := c.fetch.GetJSON(ctx, u, &payload); err != nil {
		return nil, err
	}
	if len(payload) < 2 {
		return nil, nil
	}

	var rows []Row
	if err := json.Unmarshal(payload[1], &rows); err != nil {
		return nil, nil
	}
	return rows, nil
}
