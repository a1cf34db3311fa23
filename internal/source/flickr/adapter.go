package flickr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/timmy/photofeed/internal/domain"
	"github.com/timmy/photofeed/internal/source"
)

const (
	// DefaultFeedURL is the Flickr public photo feed endpoint.
	DefaultFeedURL = "https://www.flickr.com/services/feeds/photos_public.gne"

	// SourceID identifies this adapter in logs.
	SourceID = "flickr"
)

// Config holds configuration for the Flickr feed adapter.
type Config struct {
	FeedURL  string
	Timeout  time.Duration
	PageSize int
}

// Adapter implements the Source interface for the Flickr public photo feed.
type Adapter struct {
	client   *resty.Client
	feedURL  string
	timeout  time.Duration
	pageSize int
}

// NewAdapter creates a new Flickr feed adapter.
// Parameters:
//   - cfg: adapter configuration; zero values fall back to defaults.
// Returns:
//   - *Adapter: initialized adapter.
func NewAdapter(cfg *Config) *Adapter {
	if cfg == nil {
		cfg = &Config{}
	}

	feedURL := cfg.FeedURL
	if feedURL == "" {
		feedURL = DefaultFeedURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = domain.DefaultPageSize
	}

	client := resty.New()
	client.SetHeader("Accept", "application/json")
	client.SetRetryCount(0)

	return &Adapter{
		client:   client,
		feedURL:  feedURL,
		timeout:  timeout,
		pageSize: pageSize,
	}
}

// GetSourceID returns the unique identifier for this source.
func (a *Adapter) GetSourceID() string {
	return SourceID
}

// GetDisplayName returns a human-readable name for this source.
func (a *Adapter) GetDisplayName() string {
	return "Flickr public feed"
}

// Query builds the upstream query parameters for a selection.
// The feed is always requested as raw JSON without the jsonFlickrFeed wrapper.
func Query(sel domain.Selection) map[string]string {
	params := map[string]string{
		"format":         "json",
		"nojsoncallback": "1",
	}
	switch sel.Kind() {
	case domain.FilterAuthor:
		params["id"] = sel.AuthorID
	case domain.FilterTag:
		params["tags"] = sel.Tag
	}
	return params
}

// FetchFeed fetches one page of the feed scoped to the given selection.
// Parameters:
//   - ctx: context for cancellation and deadlines.
//   - sel: active filter.
// Returns:
//   - []domain.PhotoItem: feed items, never nil on success.
//   - error: one of source.ErrTimeout, source.ErrUnavailable, source.ErrMalformed
//     or a *source.StatusError.
func (a *Adapter) FetchFeed(ctx context.Context, sel domain.Selection) ([]domain.PhotoItem, error) {
	ctx, cancel := context.WithTimeout(ctx, a.timeout)
	defer cancel()

	resp, err := a.client.R().
		SetContext(ctx).
		SetQueryParams(Query(sel)).
		Get(a.feedURL)
	if err != nil {
		if isTimeout(ctx, err) {
			return nil, fmt.Errorf("%w: %v", source.ErrTimeout, err)
		}
		return nil, fmt.Errorf("%w: %v", source.ErrUnavailable, err)
	}

	if resp.IsError() || resp.StatusCode() < 200 || resp.StatusCode() > 299 {
		return nil, &source.StatusError{StatusCode: resp.StatusCode()}
	}

	var feed domain.Feed
	if err := json.Unmarshal(unescapeQuotes(resp.Body()), &feed); err != nil {
		return nil, fmt.Errorf("%w: %v", source.ErrMalformed, err)
	}

	items := feed.Items
	if items == nil {
		items = []domain.PhotoItem{}
	}
	if len(items) > a.pageSize {
		items = items[:a.pageSize]
	}
	return items, nil
}

func isTimeout(ctx context.Context, err error) bool {
	if errors.Is(err, context.DeadlineExceeded) || errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

// unescapeQuotes rewrites the \' escape the Flickr JSON feed emits, which is
// not valid JSON. Other escapes are copied through untouched.
func unescapeQuotes(body []byte) []byte {
	out := make([]byte, 0, len(body))
	for i := 0; i < len(body); i++ {
		if body[i] == '\\' && i+1 < len(body) {
			if body[i+1] == '\'' {
				out = append(out, '\'')
			} else {
				out = append(out, body[i], body[i+1])
			}
			i++
			continue
		}
		out = append(out, body[i])
	}
	return out
}
