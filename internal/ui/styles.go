package ui

import "github.com/charmbracelet/lipgloss"

var (
	// Palette shared with the HTML pages
	primaryColor   = lipgloss.Color("#0969DA") // blue
	secondaryColor = lipgloss.Color("#8250DF") // purple
	accentColor    = lipgloss.Color("#2DA44E") // green
	errorColor     = lipgloss.Color("#CF222E") // red
	textColor      = lipgloss.Color("#FFFFFF") // white
	dimColor       = lipgloss.Color("#6E7681") // gray
	linkColor      = lipgloss.Color("#58A6FF") // light blue
	tagColor       = lipgloss.Color("#F778BA") // pink
	dateColor      = lipgloss.Color("#A371F7") // light purple
	authorColor    = lipgloss.Color("#FFA657") // light orange

	HeaderStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Padding(0, 1).
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)

	CommandStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)

	TextStyle = lipgloss.NewStyle().
			Foreground(textColor)

	DimStyle = lipgloss.NewStyle().
			Foreground(dimColor)

	LinkStyle = lipgloss.NewStyle().
			Foreground(linkColor).
			Underline(true)

	TitleStyle = lipgloss.NewStyle().
			Foreground(accentColor).
			Bold(true)

	DateStyle = lipgloss.NewStyle().
			Foreground(dateColor).
			Italic(true)

	AuthorStyle = lipgloss.NewStyle().
			Foreground(authorColor).
			Bold(true)

	TagStyle = lipgloss.NewStyle().
			Foreground(tagColor)

	IndexStyle = lipgloss.NewStyle().
			Foreground(secondaryColor).
			Bold(true).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(accentColor).
			Padding(0, 1)
)
