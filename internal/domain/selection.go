package domain

// FilterKind identifies which feed a selection maps to.
// Values include FilterAll, FilterAuthor, and FilterTag.
type FilterKind string

const (
	FilterAll    FilterKind = "all"
	FilterAuthor FilterKind = "author"
	FilterTag    FilterKind = "tag"
)

// Selection is the active feed filter. At most one of AuthorID and Tag is set.
type Selection struct {
	AuthorID string `json:"author_id,omitempty"`
	Tag      string `json:"tag,omitempty"`
}

// AuthorSelection returns a selection scoped to a single author.
func AuthorSelection(id string) Selection {
	return Selection{AuthorID: id}
}

// TagSelection returns a selection scoped to a single tag.
func TagSelection(tag string) Selection {
	return Selection{Tag: tag}
}

// Kind reports which feed the selection maps to.
// An author id takes precedence so a malformed value still maps to one feed.
func (s Selection) Kind() FilterKind {
	switch {
	case s.AuthorID != "":
		return FilterAuthor
	case s.Tag != "":
		return FilterTag
	default:
		return FilterAll
	}
}

// IsEmpty reports whether no filter is set.
func (s Selection) IsEmpty() bool {
	return s.Kind() == FilterAll
}
