package restcountries

import (
	"context"
	"encoding/json"
	"fmt"

	"countryapi/internal/platform/fetch"
)

const defaultBaseURL = "https://restcountries.com/v3.1"

// catalogFields keeps the catalog payload small; it mirrors the fields the
// normalizer reads.
const catalogFields = "name,cca3,capital,flags,region,subregion,population,area,currencies,languages"

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

// RawCountry matches one record of the /all response.
type RawCountry struct {
	Name struct {
		Common   string `json:"common"`
		Official string `json:"official"`
	} `json:"name"`
	CCA3    string   `json:"cca3"`
	Capital []string `json:"capital"`
	Flags   struct {
		PNG string `json:"png"`
		SVG string `json:"svg"`
	} `json:"flags"`
	Region     string              `json:"region"`
	Subregion  string              `json:"subregion"`
	Population int64               `json:"population"`
	Area       float64             `json:"area"`
	Currencies map[string]Currency `json:"currencies"`
	Languages  map[string]string   `json:"languages"`
}

type Currency struct {
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// AlphaResponse matches the single-country detail payload; only the
// coordinate fields are consumed.
type AlphaResponse struct {
	CapitalInfo struct {
		LatLng []float64 `json:"latlng"`
	} `json:"capitalInfo"`
	LatLng []float64 `json:"latlng"`
}

// All fetches the full country catalog in one request.
func (c *Client) All(ctx context.Context) ([]RawCountry, error) {
	u := fmt.Sprintf("%s/all?fields=%s", c.baseURL, catalogFields)
	var out []RawCountry
	if err := c.fetch.GetJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Alpha fetches coordinates for one country by its cca3 code. The endpoint
// answers with either a single object or a one-element array depending on
// deployment, so both are accepted.
func (c *Client) Alpha(ctx context.Context, code string) (*AlphaResponse, error) {
	u := fmt.Sprintf("%s/alpha/%s?fields=latlng,capitalInfo", c.baseURL, code)
	var raw json.RawMessage
	if err := c.fetch.GetJSON(ctx, u, &raw); err != nil {
		return nil, err
	}

	if len(raw) > 0 && raw[0] == '[' {
		var list []AlphaResponse
		if err := json.Unmarshal(raw, &list); err != nil {
			return nil, err
		}
		if len(list) == 0 {
			return &AlphaResponse{}, nil
		}
		return &list[0], nil
	}

	var single AlphaResponse
	if err := json.Unmarshal(raw, &single); err != nil {
		return nil, err
	}
	return &single, nil
}
