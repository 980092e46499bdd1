package ui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// PageView shows rendered page content in a scrollable viewport. Every page
// except the blog listing goes through it.
type PageView struct {
	vp  viewport.Model
	key string
}

// Ensure PageView implements View.
var _ View = (*PageView)(nil)

// NewPageView creates a viewport sized for an 80x20 body until the first
// WindowSizeMsg arrives.
func NewPageView() *PageView {
	return &PageView{vp: viewport.New(80, 20)}
}

// SetContent replaces the viewport text. key identifies what is shown; the
// scroll position resets only when it changes, so a re-render of the same
// page keeps the reader's place.
func (p *PageView) SetContent(key, content string) {
	p.vp.SetContent(content)
	if key != p.key {
		p.vp.GotoTop()
		p.key = key
	}
}

// Key returns the identity of the content last set.
func (p *PageView) Key() string { return p.key }

// ScrollPercent is the viewport's scroll position in [0, 1].
func (p *PageView) ScrollPercent() float64 { return p.vp.ScrollPercent() }

// Init implements View.
func (p *PageView) Init() tea.Cmd { return nil }

// SetSize implements View.
func (p *PageView) SetSize(width, height int) {
	p.vp.Width = width
	p.vp.Height = max(height, 1)
}

// Update implements View.
func (p *PageView) Update(msg tea.Msg) (View, tea.Cmd) {
	var cmd tea.Cmd
	p.vp, cmd = p.vp.Update(msg)
	return p, cmd
}

// View implements View.
func (p *PageView) View() string {
	return p.vp.View()
}
