package gallery

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timmy/photofeed/internal/domain"
)

// APIClient fetches the feed from the proxy's JSON routes.
type APIClient struct {
	client *resty.Client
}

// apiError is the error body written by the proxy.
type apiError struct {
	Error string `json:"error"`
}

// NewAPIClient creates a client for the proxy at baseURL.
// Parameters:
//   - baseURL: proxy origin, e.g. http://localhost:3001.
//   - timeout: HTTP client timeout; zero leaves it to the request context.
// Returns:
//   - *APIClient: initialized client.
func NewAPIClient(baseURL string, timeout time.Duration) *APIClient {
	client := resty.New()
	client.SetBaseURL(strings.TrimRight(baseURL, "/"))
	client.SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &APIClient{client: client}
}

// Fetch issues one GET to the route matching the selection.
// Parameters:
//   - ctx: request context; cancellation aborts the request.
//   - sel: active filter.
// Returns:
//   - []domain.PhotoItem: feed items, never nil on success.
//   - error: non-nil on transport failure or a non-2xx answer.
func (c *APIClient) Fetch(ctx context.Context, sel domain.Selection) ([]domain.PhotoItem, error) {
	var items []domain.PhotoItem
	var apiErr apiError

	route := Route(sel)
	resp, err := c.client.R().
		SetContext(ctx).
		SetResult(&items).
		SetError(&apiErr).
		Get(route)
	if err != nil {
		return nil, fmt.Errorf("failed to call %s: %w", route, err)
	}

	if resp.IsError() {
		if apiErr.Error != "" {
			return nil, fmt.Errorf("%s: %s (status %d)", route, apiErr.Error, resp.StatusCode())
		}
		return nil, fmt.Errorf("%s: status %d", route, resp.StatusCode())
	}

	if items == nil {
		items = []domain.PhotoItem{}
	}
	return items, nil
}
