package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize/english"
	"github.com/timmy/photofeed/internal/gallery"
)

// DefaultWidth is used when the terminal size is unknown.
const DefaultWidth = 80

const minWidth = 40

// RenderState renders the whole feed view for a terminal of the given width.
func RenderState(st gallery.State, width int) string {
	width = clampWidth(width)

	var b strings.Builder
	b.WriteString(HeaderStyle.Render(st.Heading()))
	b.WriteString("\n")

	switch st.Status {
	case gallery.StatusIdle, gallery.StatusLoading:
		b.WriteString(DimStyle.Render("Loading photos..."))
		b.WriteString("\n")
	case gallery.StatusFailed:
		b.WriteString(ErrorStyle.Render(st.Err))
		b.WriteString("\n")
	case gallery.StatusReady:
		cards := gallery.BuildCards(st.Photos)
		b.WriteString(DimStyle.Render(english.Plural(len(cards), "photo", "photos")))
		b.WriteString("\n")
		for i, card := range cards {
			b.WriteString(RenderCard(i+1, card, width))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// RenderCard renders one card inside a bordered box. n is the number the
// user types to pick the card's author.
func RenderCard(n int, c gallery.Card, width int) string {
	width = clampWidth(width)
	inner := width - 4

	lines := []string{
		IndexStyle.Render(fmt.Sprintf("#%d", n)) + TitleStyle.Render(titleOrPlaceholder(c.Title)),
		LinkStyle.Render(c.ImageURL),
	}
	if c.DescriptionText != "" {
		lines = append(lines, TextStyle.Width(inner).Render(c.DescriptionText))
	}
	lines = append(lines, "Author: "+AuthorStyle.Render(c.AuthorName)+DimStyle.Render(" ("+c.AuthorID+")"))

	tags := "None"
	if c.HasTags() {
		names := make([]string, 0, len(c.Tags))
		for _, tag := range c.Tags {
			names = append(names, TagStyle.Render(tag.Name))
		}
		tags = strings.Join(names, " ")
	}
	lines = append(lines, lipgloss.NewStyle().Width(inner).Render("Tags: "+tags))

	if c.Published != "" {
		lines = append(lines, DateStyle.Render("Published "+c.Published))
	}

	return BoxStyle.Width(width - 2).Render(strings.Join(lines, "\n"))
}

// Help lists the interactive commands.
func Help() string {
	rows := [][2]string{
		{"a <n>", "show photos by the author of card n"},
		{"t <tag>", "show photos with a tag"},
		{"h", "back to recent photos"},
		{"r", "reload the current view"},
		{"?", "show this help"},
		{"q", "quit"},
	}

	var b strings.Builder
	for _, row := range rows {
		b.WriteString(CommandStyle.Render(fmt.Sprintf("%-8s", row[0])))
		b.WriteString(DimStyle.Render(row[1]))
		b.WriteString("\n")
	}
	return b.String()
}

func titleOrPlaceholder(title string) string {
	if title == "" {
		return "(untitled)"
	}
	return title
}

func clampWidth(width int) int {
	if width <= 0 {
		return DefaultWidth
	}
	if width < minWidth {
		return minWidth
	}
	return width
}
