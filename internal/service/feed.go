package service

import (
	"context"
	"time"

	"github.com/timmy/photofeed/internal/domain"
	"github.com/timmy/photofeed/internal/logger"
	"github.com/timmy/photofeed/internal/source"
)

// FeedService forwards feed requests to a photo source.
// It keeps no state between calls.
type FeedService struct {
	source source.Source
	logger *logger.Logger
}

// NewFeedService creates a new feed service.
// Parameters:
//   - src: upstream photo source.
//   - log: logger instance; nil uses the default logger.
// Returns:
//   - *FeedService: initialized service.
func NewFeedService(src source.Source, log *logger.Logger) *FeedService {
	if log == nil {
		log = logger.GetDefault()
	}
	return &FeedService{
		source: src,
		logger: log,
	}
}

// log returns the request-scoped logger if ctx carries one, otherwise the service logger
func (s *FeedService) log(ctx context.Context) *logger.Logger {
	l := s.logger
	if logger.GetRequestID(ctx) != "" {
		l = logger.FromContext(ctx)
	}
	return l.WithField(logger.FieldSource, s.source.GetSourceID())
}

// Fetch issues exactly one upstream request for the given selection.
// Parameters:
//   - ctx: request context; cancellation aborts the upstream call.
//   - sel: active filter.
// Returns:
//   - []domain.PhotoItem: feed items.
//   - error: upstream failure, see the source package errors.
func (s *FeedService) Fetch(ctx context.Context, sel domain.Selection) ([]domain.PhotoItem, error) {
	start := time.Now()

	items, err := s.source.FetchFeed(ctx, sel)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		s.log(ctx).WithError(err).WithFields(logger.Fields{
			logger.FieldFilter:     string(sel.Kind()),
			logger.FieldDurationMs: elapsed,
		}).Error("Upstream feed request failed")
		return nil, err
	}

	s.log(ctx).WithFields(logger.Fields{
		logger.FieldFilter:     string(sel.Kind()),
		logger.FieldCount:      len(items),
		logger.FieldDurationMs: elapsed,
	}).Debugf("Fetched feed from %s", s.source.GetDisplayName())

	return items, nil
}

// FetchAll fetches the unfiltered feed.
func (s *FeedService) FetchAll(ctx context.Context) ([]domain.PhotoItem, error) {
	return s.Fetch(ctx, domain.Selection{})
}

// FetchByAuthor fetches the feed scoped to an author id.
func (s *FeedService) FetchByAuthor(ctx context.Context, authorID string) ([]domain.PhotoItem, error) {
	return s.Fetch(ctx, domain.AuthorSelection(authorID))
}

// FetchByTag fetches the feed scoped to a tag.
func (s *FeedService) FetchByTag(ctx context.Context, tag string) ([]domain.PhotoItem, error) {
	return s.Fetch(ctx, domain.TagSelection(tag))
}
