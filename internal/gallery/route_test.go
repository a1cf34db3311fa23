package gallery

import (
	"testing"

	"github.com/timmy/photofeed/internal/domain"
)

func TestRouteAndPath(t *testing.T) {
	tests := []struct {
		name      string
		sel       domain.Selection
		wantRoute string
		wantPath  string
	}{
		{name: "all", sel: domain.Selection{}, wantRoute: "/api/getPhotos", wantPath: "/"},
		{name: "author", sel: domain.AuthorSelection("123@N01"), wantRoute: "/api/author/123@N01", wantPath: "/author/123@N01"},
		{name: "tag", sel: domain.TagSelection("sunset"), wantRoute: "/api/tag/sunset", wantPath: "/tag/sunset"},
		{name: "tag needing escape", sel: domain.TagSelection("a/b c"), wantRoute: "/api/tag/a%2Fb%20c", wantPath: "/tag/a%2Fb%20c"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := Route(tc.sel); got != tc.wantRoute {
				t.Errorf("Route() = %q, want %q", got, tc.wantRoute)
			}
			if got := Path(tc.sel); got != tc.wantPath {
				t.Errorf("Path() = %q, want %q", got, tc.wantPath)
			}
		})
	}
}
