package hipolabs

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"

	"countryapi/internal/platform/fetch"
)

const defaultBaseURL = "http://universities.hipolabs.com"

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

// StringList accepts both a JSON array of strings and a bare string; the
// directory has returned either shape for domains and web_pages.
type StringList []string

func (s *StringList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var one string
		if err := json.Unmarshal(data, &one); err != nil {
			return err
		}
		*s = StringList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return err
	}
	*s = many
	return nil
}

// RawInstitution matches one record of the directory search response.
type RawInstitution struct {
	Name          string     `json:"name"`
	Domains       StringList `json:"domains"`
	WebPages      StringList `json:"web_pages"`
	StateProvince *string    `json:"state-province"`
}

// Search lists institutions registered under the given country display name.
func (c *Client) Search(ctx context.Context, countryName string) ([]RawInstitution, error) {
	u := fmt.Sprintf("%s/search?country=%s", c.baseURL, url.QueryEscape(countryName))
	var out []RawInstitution
	if err := c.fetch.GetJSON(ctx, u, &out); err != nil {
		return nil, err
	}
	return out, nil
}
