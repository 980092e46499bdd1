package ui

import (
	"fmt"
	"strings"

	"folio/internal/site"
	"folio/internal/ui/textutil"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// Lines taken by the header (brand+tabs, rule) and footer (rule, copyright+hints).
const (
	headerHeight = 2
	footerHeight = 2
)

func tabZone(p site.Page) string { return "tab:" + p.String() }

// renderHeader draws the owner's name followed by one tab per page, the
// active one highlighted, then a rule across the full width.
func (m *AppModel) renderHeader(active site.Page) string {
	tabs := make([]string, 0, len(site.Pages()))
	for _, p := range site.Pages() {
		st := m.Styles.Tab
		if p == active {
			st = m.Styles.TabActive
		}
		tabs = append(tabs, mark(m.Zones, tabZone(p), st.Render(p.String())))
	}
	brand := m.Styles.Brand.Render(m.Controller.Catalog().Profile.Name)
	line := lipgloss.JoinHorizontal(lipgloss.Top, brand, "  ", strings.Join(tabs, ""))
	return line + "\n" + m.Styles.Rule.Render(strings.Repeat("─", m.width))
}

// renderFooter draws the copyright line with context-dependent key hints.
func (m *AppModel) renderFooter(c site.Content) string {
	cat := m.Controller.Catalog()
	copyright := m.Styles.Footer.Render(fmt.Sprintf("© %d %s. All rights reserved.", cat.Year, cat.Profile.Name))

	hm := help.New()
	hm.Styles.ShortKey = m.Styles.HelpKey
	hm.Styles.ShortDesc = m.Styles.Muted
	hm.Styles.ShortSeparator = m.Styles.Muted
	hm.Width = max(m.width-textutil.VisualWidth(copyright)-2, 0)
	hints := hm.View(footerKeys(c))

	line := copyright
	if hints != "" {
		gap := max(m.width-textutil.VisualWidth(copyright)-textutil.VisualWidth(hints), 2)
		line += strings.Repeat(" ", gap) + hints
	}
	return m.Styles.Rule.Render(strings.Repeat("─", m.width)) + "\n" + line
}

// footerKeyMap is the help.KeyMap for the footer. Which bindings show
// depends on what is on screen.
type footerKeyMap struct {
	bindings []key.Binding
}

func (k footerKeyMap) ShortHelp() []key.Binding  { return k.bindings }
func (k footerKeyMap) FullHelp() [][]key.Binding { return [][]key.Binding{k.bindings} }

var (
	keyPages = key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "pages"))
	keyJump  = key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump"))
	keyOpen  = key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open"))
	keyBack  = key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back"))
	keyMenu  = key.NewBinding(key.WithKeys(" "), key.WithHelp("SPC", "menu"))
	keyQuit  = key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit"))
)

func footerKeys(c site.Content) footerKeyMap {
	b := []key.Binding{keyPages, keyJump}
	switch c.(type) {
	case site.PostListContent:
		b = append(b, keyOpen)
	case site.PostDetailContent:
		b = append(b, keyBack)
	}
	return footerKeyMap{bindings: append(b, keyMenu, keyQuit)}
}
