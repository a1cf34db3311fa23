package handler

import (
	"errors"
	"net/http"

	"github.com/dustin/go-humanize/english"
	"github.com/gin-gonic/gin"
	"github.com/timmy/photofeed/internal/api/middleware"
	"github.com/timmy/photofeed/internal/domain"
	"github.com/timmy/photofeed/internal/gallery"
	"github.com/timmy/photofeed/internal/logger"
)

// feedPage is the data passed to feed.tmpl.
type feedPage struct {
	Title   string
	Heading string
	State   gallery.State
	Cards   []gallery.Card
	Summary string
	Failed  bool
}

// GalleryHandler renders the feed view as HTML pages. The page path is the
// selection: /author/:id and /tag/:tag are the filter-scoped views.
type GalleryHandler struct {
	feed FeedFetcher
}

// NewGalleryHandler creates a new gallery page handler.
// Parameters:
//   - feed: feed service instance.
// Returns:
//   - *GalleryHandler: initialized handler.
func NewGalleryHandler(feed FeedFetcher) *GalleryHandler {
	return &GalleryHandler{
		feed: feed,
	}
}

// Home handles GET /.
func (h *GalleryHandler) Home(c *gin.Context) {
	h.render(c, gallery.NewState())
}

// Author handles GET /author/:id.
func (h *GalleryHandler) Author(c *gin.Context) {
	h.render(c, gallery.NewState().SelectAuthor("", c.Param("id")))
}

// Tag handles GET /tag/:tag.
func (h *GalleryHandler) Tag(c *gin.Context) {
	h.render(c, gallery.NewState().SelectTag(c.Param("tag")))
}

// About handles GET /about.
func (h *GalleryHandler) About(c *gin.Context) {
	c.HTML(http.StatusOK, "about.tmpl", gin.H{
		"Title": "About",
	})
}

// NotFound renders the 404 page for unknown paths.
func (h *GalleryHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "notfound.tmpl", gin.H{
		"Title": "Not found",
		"Path":  c.Request.URL.Path,
	})
}

func (h *GalleryHandler) render(c *gin.Context, state gallery.State) {
	ctx := logger.SetFilter(c.Request.Context(), string(state.Selection.Kind()))

	status := http.StatusOK
	items, err := h.feed.Fetch(ctx, state.Selection)
	if err != nil {
		var message string
		status, message = UpstreamErrorStatus(err)
		middleware.GetLogger(c).WithError(err).Warn("Feed page could not load photos")
		state = state.Failed(errors.New(message))
	} else {
		state = state.Loaded(items)
	}

	// The author page is reached by URL, so the display name comes from the feed.
	if state.Selection.Kind() == domain.FilterAuthor && state.AuthorName == "" && len(state.Photos) > 0 {
		state = state.SelectAuthor(gallery.ParseAuthorDisplayName(state.Photos[0].Author), state.Selection.AuthorID)
	}

	cards := gallery.BuildCards(state.Photos)
	c.HTML(status, "feed.tmpl", feedPage{
		Title:   "Photo Gallery",
		Heading: state.Heading(),
		State:   state,
		Cards:   cards,
		Summary: english.Plural(len(cards), "photo", "photos"),
		Failed:  state.Status == gallery.StatusFailed,
	})
}
