package ui

import (
	"log"
	"strconv"
	"strings"

	"folio/internal/config"
	"folio/internal/markup"
	"folio/internal/site"
	"folio/internal/telemetry"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
)

// Options configure NewAppModel. The zero value is usable: default config,
// no telemetry, no mouse zones.
type Options struct {
	Config    *config.Config
	Telemetry *telemetry.Provider
	// Zones enables clickable tabs and buttons. Leave nil when mouse
	// support is off.
	Zones     *zone.Manager
}

// AppModel is the root model. It forwards user intents to the site
// controller and, after every update, re-resolves what is on screen.
type AppModel struct {
	Controller *site.Controller
	Blog       *BlogListView
	Page       *PageView
	KeyHandler *KeyHandler
	Styles     Styles
	Markdown   *markup.Renderer
	Telemetry  *telemetry.Provider
	Zones      *zone.Manager

	width       int
	height      int
	chartHeight int
	content     site.Content
	body        pageBody
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	return tea.SetWindowTitle(a.Controller.Catalog().Profile.Name)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := a.update(msg)
	a.refresh()
	return a, cmd
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	return a.AppModel.View()
}

// NewAppModel creates the root application model over cat, starting on Home.
func NewAppModel(cat *site.Catalog, opts Options) *AppModel {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	st := NewStyles(cfg.Theme)
	m := &AppModel{
		Controller:  site.NewController(cat, site.WithSelectionPolicy(cfg.SelectionPolicy())),
		Blog:        NewBlogListView(st),
		Page:        NewPageView(),
		KeyHandler:  NewKeyHandler(newRegistry()),
		Styles:      st,
		Markdown:    markup.New(st.Markdown()),
		Telemetry:   opts.Telemetry,
		Zones:       opts.Zones,
		chartHeight: cfg.UI.ChartHeight,
	}
	m.resize(80, 24)
	m.refresh()
	return m
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (m *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: m}
}

func navigateCmd(p site.Page) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{Page: p} }
}

func clearPostCmd() tea.Msg { return ClearPostMsg{} }

func newRegistry() *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	for i, p := range site.Pages() {
		name := p.String()
		reg.BindWithDesc(strconv.Itoa(i+1), navigateCmd(p), name)
		reg.BindWithDesc("SPC g "+strings.ToLower(name[:1]), navigateCmd(p), name)
	}
	reg.BindWithDesc("tab", func() tea.Msg { return NextPageMsg{} }, "Next page")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return PrevPageMsg{} }, "Previous page")
	reg.BindForPages("SPC b", clearPostCmd, "Back to blog", []site.Page{site.PageBlog})
	return reg
}

// Open sets the starting view: page, and optionally a post by ID, which
// implies the Blog page. It reports false when postID names no post; the
// Blog listing is shown instead.
func (m *AppModel) Open(page site.Page, postID string) bool {
	if page.Valid() {
		m.Controller.Navigate(page)
	}
	ok := true
	if postID != "" {
		m.Controller.Navigate(site.PageBlog)
		if ok = m.Controller.SelectPostByID(postID); !ok {
			log.Printf("ui.Open: no post with id %q", postID)
		}
	}
	m.refresh()
	if ok && postID != "" {
		// Put the listing cursor on the post so "back" lands on it.
		m.Blog.SetPosts(m.Controller.Catalog().Posts)
		m.Blog.SelectByID(postID)
	}
	return ok
}

// Content returns what is currently on screen.
func (m *AppModel) Content() site.Content { return m.content }

func (m *AppModel) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return nil
	case NavigateMsg:
		m.navigate(func() { m.Controller.Navigate(msg.Page) })
		return nil
	case NextPageMsg:
		m.navigate(m.Controller.Next)
		return nil
	case PrevPageMsg:
		m.navigate(m.Controller.Prev)
		return nil
	case SelectPostMsg:
		m.Controller.SelectPost(msg.Post)
		m.Telemetry.SelectedPost(msg.Post)
		return nil
	case ClearPostMsg:
		prev := m.Controller.State().Selected
		m.Controller.ClearSelectedPost()
		m.Telemetry.ClearedPost(prev)
		return nil
	case tea.MouseMsg:
		if cmd := m.click(msg); cmd != nil {
			return cmd
		}
	case tea.KeyMsg:
		// Keybind system (leader key, page shortcuts)
		if m.KeyHandler != nil {
			if consumed, cmd := m.KeyHandler.Handle(msg); consumed {
				return cmd
			}
		}
		// Blog listing and detail keys
		switch m.content.(type) {
		case site.PostDetailContent:
			if s := msg.String(); s == "esc" || s == "backspace" {
				return clearPostCmd
			}
		case site.PostListContent:
			if msg.String() == "enter" {
				p, ok := m.Blog.Selected()
				if !ok {
					return nil
				}
				return func() tea.Msg { return SelectPostMsg{Post: p} }
			}
		}
	}
	return m.forward(msg)
}

// navigate applies a page change and records it.
func (m *AppModel) navigate(apply func()) {
	from := m.Controller.State().Active
	apply()
	m.Telemetry.Navigated(from, m.Controller.State().Active)
}

// click maps a left-button release on a tab or the back button to its
// command.
func (m *AppModel) click(msg tea.MouseMsg) tea.Cmd {
	if m.Zones == nil || msg.Action != tea.MouseActionRelease || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	for _, p := range site.Pages() {
		if m.inZone(tabZone(p), msg) {
			return navigateCmd(p)
		}
	}
	if _, ok := m.content.(site.PostDetailContent); ok && m.inZone(zoneBack, msg) {
		return clearPostCmd
	}
	return nil
}

func (m *AppModel) inZone(id string, msg tea.MouseMsg) bool {
	z := m.Zones.Get(id)
	return z != nil && z.InBounds(msg)
}

// forward passes msg to the view drawing the body.
func (m *AppModel) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	if m.body.list {
		_, cmd = m.Blog.Update(msg)
	} else {
		_, cmd = m.Page.Update(msg)
	}
	return cmd
}

func (m *AppModel) resize(width, height int) {
	m.width, m.height = width, height
	body := max(height-headerHeight-footerHeight, 1)
	m.Blog.SetSize(width, body)
	m.Page.SetSize(width, body)
}

// refresh re-resolves the controller state and pushes the result into the
// body views.
func (m *AppModel) refresh() {
	m.content = m.Controller.Resolve()
	r := pageRenderer{
		width:       m.width,
		chartHeight: m.chartHeight,
		styles:      m.Styles,
		md:          m.Markdown,
		zones:       m.Zones,
	}
	m.body = site.Visit[pageBody](m.content, r)
	if m.body.list {
		m.Blog.SetPosts(m.body.posts)
	} else {
		m.Page.SetContent(m.body.key, m.body.text)
	}
}

// View renders header, body, optional leader popup and footer.
func (m *AppModel) View() string {
	page := m.content.Page()
	body := m.Page.View()
	if m.body.list {
		body = m.Blog.View()
	}
	parts := []string{m.renderHeader(page), body}
	if h := RenderKeybindHelp(m.KeyHandler, page, m.Styles); h != "" {
		parts = append(parts, h)
	}
	parts = append(parts, m.renderFooter(m.content))
	out := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if m.Zones != nil {
		return m.Zones.Scan(out)
	}
	return out
}
