package fetch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// ErrUnavailable marks transport-level failures (DNS, refused connection,
// timeout). Callers that tolerate a missing upstream match on this.
var ErrUnavailable = errors.New("upstream unavailable")

// HTTPError is returned when the upstream answered with a non-2xx status.
type HTTPError struct {
	Status int
	URL    string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("unexpected status code %d for %s", e.Status, e.URL)
}

// Client issues JSON GET requests against public data APIs. It does not
// retry: every upstream here feeds an independently degradable section, so
// the caller decides what a failure means.
type Client struct {
	httpClient *http.Client
	userAgent  string
	limiter    *rate.Limiter
}

// NewClient builds a client with a request timeout and, when rps > 0, a
// politeness limiter shared by all requests through it.
func NewClient(userAgent string, rps int) *Client {
	c := &Client{
		httpClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		userAgent: userAgent,
	}
	if rps > 0 {
		c.limiter = rate.NewLimiter(rate.Every(time.Second/time.Duration(rps)), 1)
	}
	return c
}

// GetJSON fetches url and decodes the response body into target.
func (c *Client) GetJSON(ctx context.Context, url string, target any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return &HTTPError{Status: resp.StatusCode, URL: url}
	}

	return json.NewDecoder(resp.Body).Decode(target)
}
