package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/timmy/photofeed/internal/api/middleware"
	"github.com/timmy/photofeed/internal/domain"
	"github.com/timmy/photofeed/internal/logger"
	"github.com/timmy/photofeed/internal/source"
)

// FeedFetcher loads one page of the feed for a selection.
type FeedFetcher interface {
	Fetch(ctx context.Context, sel domain.Selection) ([]domain.PhotoItem, error)
}

// PhotoHandler exposes the upstream feed as same-origin JSON routes.
type PhotoHandler struct {
	feed FeedFetcher
}

// NewPhotoHandler creates a new photo handler.
// Parameters:
//   - feed: feed service instance.
// Returns:
//   - *PhotoHandler: initialized handler.
func NewPhotoHandler(feed FeedFetcher) *PhotoHandler {
	return &PhotoHandler{
		feed: feed,
	}
}

// GetPhotos handles GET /api/getPhotos.
func (h *PhotoHandler) GetPhotos(c *gin.Context) {
	h.serve(c, domain.Selection{})
}

// GetAuthorPhotos handles GET /api/author/:id.
// The id is forwarded as-is; it is not validated.
func (h *PhotoHandler) GetAuthorPhotos(c *gin.Context) {
	h.serve(c, domain.AuthorSelection(c.Param("id")))
}

// GetTagPhotos handles GET /api/tag/:tag.
// The tag is forwarded as-is; it is not validated.
func (h *PhotoHandler) GetTagPhotos(c *gin.Context) {
	h.serve(c, domain.TagSelection(c.Param("tag")))
}

func (h *PhotoHandler) serve(c *gin.Context, sel domain.Selection) {
	ctx := logger.SetFilter(c.Request.Context(), string(sel.Kind()))

	items, err := h.feed.Fetch(ctx, sel)
	if err != nil {
		status, message := UpstreamErrorStatus(err)
		middleware.GetLogger(c).WithError(err).WithField(logger.FieldStatus, status).
			Warnf("Feed request failed: filter=%s", sel.Kind())
		c.JSON(status, gin.H{
			"error": message,
		})
		return
	}

	if items == nil {
		items = []domain.PhotoItem{}
	}
	c.JSON(http.StatusOK, items)
}

// UpstreamErrorStatus maps an upstream failure to a response status and a
// short message: timeouts become 504, everything else 502.
func UpstreamErrorStatus(err error) (int, string) {
	var statusErr *source.StatusError
	switch {
	case errors.Is(err, source.ErrTimeout), errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout, "Upstream feed timed out"
	case errors.As(err, &statusErr):
		return http.StatusBadGateway, statusErr.Error()
	case errors.Is(err, source.ErrMalformed):
		return http.StatusBadGateway, "Upstream feed returned an invalid response"
	default:
		return http.StatusBadGateway, "Upstream feed unavailable"
	}
}
