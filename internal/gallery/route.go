package gallery

import (
	"net/url"

	"github.com/timmy/photofeed/internal/domain"
)

// Proxy routes served by the API.
const (
	RouteAllPhotos = "/api/getPhotos"
	RouteAuthor    = "/api/author/"
	RouteTag       = "/api/tag/"
)

// Route returns the proxy route that serves the given selection.
// Path parameters are escaped so they stay a single path segment.
func Route(sel domain.Selection) string {
	switch sel.Kind() {
	case domain.FilterAuthor:
		return RouteAuthor + url.PathEscape(sel.AuthorID)
	case domain.FilterTag:
		return RouteTag + url.PathEscape(sel.Tag)
	default:
		return RouteAllPhotos
	}
}

// Path returns the filter-scoped page path that reflects the selection.
func Path(sel domain.Selection) string {
	switch sel.Kind() {
	case domain.FilterAuthor:
		return AuthorPath(sel.AuthorID)
	case domain.FilterTag:
		return TagPath(sel.Tag)
	default:
		return "/"
	}
}

// AuthorPath returns the page path for an author id.
func AuthorPath(id string) string {
	return "/author/" + url.PathEscape(id)
}

// TagPath returns the page path for a tag.
func TagPath(tag string) string {
	return "/tag/" + url.PathEscape(tag)
}
