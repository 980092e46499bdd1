package ui

import (
	"folio/internal/chart"
	"folio/internal/config"
	"folio/internal/markup"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
)

// Styles contains shared style definitions used across pages.
type Styles struct {
	// Chrome
	Brand     lipgloss.Style // Owner name in the header
	Tab       lipgloss.Style // Inactive header tab
	TabActive lipgloss.Style // Active header tab
	Rule      lipgloss.Style // Header/footer separators
	Footer    lipgloss.Style // Copyright line

	// Page content
	Title    lipgloss.Style // Page titles ("About Me")
	Headline lipgloss.Style // Home headline
	Tagline  lipgloss.Style
	Section  lipgloss.Style // "Education:" style labels
	Normal   lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Link     lipgloss.Style
	Empty    lipgloss.Style // Empty state text (muted, italic)
	Button   lipgloss.Style // "Back to Blog"

	// Leader help popup
	HelpBox lipgloss.Style
	HelpKey lipgloss.Style

	theme config.ThemeConfig
}

// NewStyles builds the style set from theme colours.
func NewStyles(t config.ThemeConfig) Styles {
	accent := lipgloss.Color(t.Accent)
	highlight := lipgloss.Color(t.Highlight)
	muted := lipgloss.Color(t.Muted)
	text := lipgloss.Color(t.Text)

	return Styles{
		Brand:     lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tab:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		TabActive: lipgloss.NewStyle().Foreground(highlight).Bold(true).Underline(true).Padding(0, 1),
		Rule:      lipgloss.NewStyle().Foreground(muted),
		Footer:    lipgloss.NewStyle().Foreground(muted),

		Title:    lipgloss.NewStyle().Bold(true).Foreground(accent),
		Headline: lipgloss.NewStyle().Bold(true).Foreground(accent),
		Tagline:  lipgloss.NewStyle().Foreground(text),
		Section:  lipgloss.NewStyle().Foreground(highlight),
		Normal:   lipgloss.NewStyle().Foreground(text),
		Muted:    lipgloss.NewStyle().Foreground(muted),
		Selected: lipgloss.NewStyle().Foreground(highlight).Bold(true),
		Link:     lipgloss.NewStyle().Foreground(accent).Underline(true),
		Empty:    lipgloss.NewStyle().Foreground(muted).Italic(true),
		Button: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(highlight).
			Foreground(highlight).
			Padding(0, 1),

		HelpBox: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 1).
			MarginTop(1),
		HelpKey: lipgloss.NewStyle().Foreground(highlight).Bold(true),

		theme: t,
	}
}

// Markdown returns the post body theme.
func (s Styles) Markdown() markup.Theme {
	return markup.Theme{
		Heading:  s.Title,
		Emphasis: s.Normal.Italic(true),
		Strong:   s.Normal.Bold(true),
		Code:     lipgloss.NewStyle().Foreground(lipgloss.Color(s.theme.Highlight)),
		Link:     s.Link,
		Quote:    s.Muted.Italic(true),
		Muted:    s.Muted,
	}
}

// Chart returns the Data page chart style.
func (s Styles) Chart() chart.Style {
	return chart.Style{
		Title:        s.Title,
		Axis:         s.Muted,
		Legend:       s.Normal,
		DefaultColor: s.theme.Accent,
	}
}

// newPostDelegate returns the blog listing delegate: title plus date line.
func newPostDelegate(s Styles) list.DefaultDelegate {
	d := list.NewDefaultDelegate()
	d.SetSpacing(1)
	d.Styles.SelectedTitle = s.Selected.PaddingLeft(1).
		Border(lipgloss.NormalBorder(), false, false, false, true).
		BorderForeground(lipgloss.Color(s.theme.Highlight))
	d.Styles.SelectedDesc = d.Styles.SelectedTitle.Bold(false).Foreground(lipgloss.Color(s.theme.Muted))
	d.Styles.NormalTitle = s.Normal.PaddingLeft(2)
	d.Styles.NormalDesc = s.Muted.PaddingLeft(2)
	return d
}
