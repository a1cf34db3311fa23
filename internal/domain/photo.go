package domain

// DefaultPageSize is the number of items the public feed returns per request.
const DefaultPageSize = 20

// Media holds the image references of a feed item.
type Media struct {
	M string `json:"m"`
}

// PhotoItem represents a single entry of the Flickr public photo feed.
// Field names follow the upstream JSON so items can be forwarded verbatim.
type PhotoItem struct {
	Title       string `json:"title"`
	Link        string `json:"link"`
	Media       Media  `json:"media"`
	DateTaken   string `json:"date_taken"`
	Description string `json:"description"`
	Published   string `json:"published"`
	Author      string `json:"author"`
	AuthorID    string `json:"author_id"`
	Tags        string `json:"tags"`
}

// ImageURL returns the URL of the item's image.
func (p PhotoItem) ImageURL() string {
	return p.Media.M
}

// Feed is the envelope returned by the upstream feed endpoint.
type Feed struct {
	Title       string      `json:"title"`
	Link        string      `json:"link"`
	Description string      `json:"description"`
	Modified    string      `json:"modified"`
	Generator   string      `json:"generator"`
	Items       []PhotoItem `json:"items"`
}
