package source

import (
	"context"

	"github.com/timmy/photofeed/internal/domain"
)

// Source defines the interface for photo feed providers.
type Source interface {
	// GetSourceID returns the unique identifier for this source.
	// Parameters: none.
	// Returns:
	//   - string: stable source identifier.
	GetSourceID() string

	// GetDisplayName returns a human-readable name for this source.
	// Parameters: none.
	// Returns:
	//   - string: display-friendly source name.
	GetDisplayName() string

	// FetchFeed fetches one page of the feed scoped to the given selection.
	// Parameters:
	//   - ctx: context for cancellation and deadlines.
	//   - sel: active filter; an empty selection fetches the unfiltered feed.
	// Returns:
	//   - items: feed items in upstream order, at most one page.
	//   - err: non-nil if the upstream call fails or returns an unusable body.
	FetchFeed(ctx context.Context, sel domain.Selection) (items []domain.PhotoItem, err error)
}
