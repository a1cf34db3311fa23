package gallery

import (
	"fmt"

	"github.com/timmy/photofeed/internal/domain"
)

// Status is the load status of the feed view.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusFailed  Status = "failed"
)

// State is an immutable snapshot of the feed view.
// Every transition returns a new State; the receiver is never modified.
type State struct {
	Selection  domain.Selection
	AuthorName string
	Photos     []domain.PhotoItem
	Status     Status
	Err        string
}

// NewState returns the initial, unfiltered view state.
func NewState() State {
	return State{Status: StatusIdle}
}

// SelectAuthor returns a state filtered to one author. The tag filter is cleared.
func (s State) SelectAuthor(displayName, id string) State {
	s.Selection = domain.AuthorSelection(id)
	s.AuthorName = displayName
	return s
}

// SelectTag returns a state filtered to one tag. The author filter is cleared.
func (s State) SelectTag(tag string) State {
	s.Selection = domain.TagSelection(tag)
	s.AuthorName = ""
	return s
}

// ClearSelection returns an unfiltered state.
func (s State) ClearSelection() State {
	s.Selection = domain.Selection{}
	s.AuthorName = ""
	return s
}

// Loading marks a fetch for the current selection as in flight.
// Photos from the previous result stay visible until the new one arrives.
func (s State) Loading() State {
	s.Status = StatusLoading
	s.Err = ""
	return s
}

// Loaded replaces the photo list wholesale with a fetch result.
func (s State) Loaded(items []domain.PhotoItem) State {
	photos := make([]domain.PhotoItem, len(items))
	copy(photos, items)
	s.Photos = photos
	s.Status = StatusReady
	s.Err = ""
	return s
}

// Failed records a fetch failure. The stale photo list is dropped so a
// failure is never shown as if it were current data.
func (s State) Failed(err error) State {
	s.Photos = nil
	s.Status = StatusFailed
	s.Err = "failed to load photos"
	if err != nil {
		s.Err = fmt.Sprintf("failed to load photos: %v", err)
	}
	return s
}

// Heading returns the banner shown above the feed for the current selection.
func (s State) Heading() string {
	switch s.Selection.Kind() {
	case domain.FilterAuthor:
		name := s.AuthorName
		if name == "" {
			name = s.Selection.AuthorID
		}
		return fmt.Sprintf("Showing up to %d Flickr posts from %s!", domain.DefaultPageSize, name)
	case domain.FilterTag:
		return fmt.Sprintf("Showing up to %d Flickr posts containing the %q tag!", domain.DefaultPageSize, s.Selection.Tag)
	default:
		return fmt.Sprintf("Showing %d recent posts retrieved from Flickr!", domain.DefaultPageSize)
	}
}
