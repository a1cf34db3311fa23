package gallery

import (
	"html/template"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"
	"github.com/microcosm-cc/bluemonday"
	"github.com/timmy/photofeed/internal/domain"
)

// descriptionPolicy is the allowlist applied to feed descriptions.
var descriptionPolicy = newDescriptionPolicy()

func newDescriptionPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.AddTargetBlankToFullyQualifiedLinks(true)
	return p
}

// TagLink is a clickable tag on a card.
type TagLink struct {
	Name string
	Path string
}

// Card is the rendered form of one feed item.
type Card struct {
	Title           string
	Link            string
	ImageURL        string
	DescriptionHTML template.HTML
	DescriptionText string
	AuthorName      string
	AuthorID        string
	AuthorPath      string
	Tags            []TagLink
	Published       string
	TakenAt         string
}

// HasTags reports whether the card carries at least one tag.
func (c Card) HasTags() bool {
	return len(c.Tags) > 0
}

// BuildCards renders feed items into cards, one per item, in order.
func BuildCards(items []domain.PhotoItem) []Card {
	cards := make([]Card, 0, len(items))
	for _, item := range items {
		cards = append(cards, BuildCard(item))
	}
	return cards
}

// BuildCard renders a single feed item.
func BuildCard(item domain.PhotoItem) Card {
	descHTML, descText := renderDescription(item.Description, item.ImageURL())

	tags := SplitTags(item.Tags)
	links := make([]TagLink, 0, len(tags))
	for _, tag := range tags {
		links = append(links, TagLink{Name: tag, Path: TagPath(tag)})
	}

	return Card{
		Title:           strings.TrimSpace(item.Title),
		Link:            item.Link,
		ImageURL:        item.ImageURL(),
		DescriptionHTML: descHTML,
		DescriptionText: descText,
		AuthorName:      ParseAuthorDisplayName(item.Author),
		AuthorID:        item.AuthorID,
		AuthorPath:      AuthorPath(item.AuthorID),
		Tags:            links,
		Published:       humanizeTimestamp(item.Published),
		TakenAt:         humanizeTimestamp(item.DateTaken),
	}
}

// renderDescription sanitizes a description fragment and drops the embedded
// copy of the card's own image, along with wrappers left empty by that.
func renderDescription(fragment, imageURL string) (template.HTML, string) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return template.HTML(template.HTMLEscapeString(fragment)), fragment
	}

	doc.Find("script, style").Remove()
	doc.Find("img").Each(func(_ int, img *goquery.Selection) {
		if src, ok := img.Attr("src"); ok && sameImage(src, imageURL) {
			img.Remove()
		}
	})
	// anchors first, so paragraphs that only wrapped the image end up empty too
	for _, selector := range []string{"a", "p"} {
		doc.Find(selector).Each(func(_ int, el *goquery.Selection) {
			if el.Children().Length() == 0 && strings.TrimSpace(el.Text()) == "" {
				el.Remove()
			}
		})
	}

	body := doc.Find("body")
	raw, err := body.Html()
	if err != nil {
		raw = ""
	}

	text := strings.Join(strings.Fields(body.Text()), " ")
	return template.HTML(descriptionPolicy.Sanitize(raw)), text
}

// sameImage compares image URLs ignoring the scheme.
func sameImage(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	return stripScheme(a) == stripScheme(b)
}

func stripScheme(u string) string {
	for _, prefix := range []string{"https:", "http:"} {
		if strings.HasPrefix(u, prefix) {
			return u[len(prefix):]
		}
	}
	return u
}

// humanizeTimestamp turns an RFC 3339 feed timestamp into relative time.
// Unparseable values are returned as-is.
func humanizeTimestamp(ts string) string {
	if ts == "" {
		return ""
	}
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		return ts
	}
	return humanize.Time(t)
}
