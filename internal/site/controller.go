package site

import "slices"

// SelectionPolicy decides what happens to the selected post when the user
// leaves the Blog page.
type SelectionPolicy int

const (
	// KeepSelection leaves the selection in place; returning to Blog shows
	// the same post again.
	KeepSelection SelectionPolicy = iota
	// ResetOnLeave clears the selection when navigating away from Blog.
	ResetOnLeave
)

func (p SelectionPolicy) String() string {
	switch p {
	case KeepSelection:
		return "keep"
	case ResetOnLeave:
		return "reset-on-leave"
	default:
		return "unknown"
	}
}

// ViewState is the active page plus the optional selected post.
// Selected only matters while Active is PageBlog.
type ViewState struct {
	Active   Page
	Selected *Post
}

// Equal compares two states by value, including the selected post's fields.
func (s ViewState) Equal(o ViewState) bool {
	if s.Active != o.Active {
		return false
	}
	if s.Selected == nil || o.Selected == nil {
		return s.Selected == nil && o.Selected == nil
	}
	a, b := *s.Selected, *o.Selected
	return a.ID == b.ID && a.Title == b.Title && a.Date.Equal(b.Date) &&
		a.Body == b.Body && a.CoverImage == b.CoverImage
}

// Controller owns the ViewState and resolves it to Content.
// It is not safe for concurrent use; the UI event loop is its only caller.
type Controller struct {
	catalog *Catalog
	policy  SelectionPolicy
	state   ViewState
}

// Option configures a Controller.
type Option func(*Controller)

// WithSelectionPolicy sets how the selection behaves when leaving Blog.
func WithSelectionPolicy(p SelectionPolicy) Option {
	return func(c *Controller) { c.policy = p }
}

// NewController starts on Home with nothing selected.
// A nil catalog behaves like an empty one.
func NewController(catalog *Catalog, opts ...Option) *Controller {
	if catalog == nil {
		catalog = &Catalog{}
	}
	c := &Controller{
		catalog: catalog,
		state:   ViewState{Active: PageHome},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Catalog returns the content the controller resolves against.
func (c *Controller) Catalog() *Catalog { return c.catalog }

// Policy returns the configured selection policy.
func (c *Controller) Policy() SelectionPolicy { return c.policy }

// State returns a snapshot of the current ViewState.
func (c *Controller) State() ViewState {
	s := c.state
	if s.Selected != nil {
		p := *s.Selected
		s.Selected = &p
	}
	return s
}

// Navigate makes target the active page. The selection is untouched unless
// the policy is ResetOnLeave and the user is leaving Blog.
func (c *Controller) Navigate(target Page) {
	if c.policy == ResetOnLeave && c.state.Active == PageBlog && target != PageBlog {
		c.state.Selected = nil
	}
	c.state.Active = target
}

// Next navigates to the page after the active one in header order, wrapping.
func (c *Controller) Next() { c.step(1) }

// Prev navigates to the page before the active one in header order, wrapping.
func (c *Controller) Prev() { c.step(-1) }

func (c *Controller) step(delta int) {
	pages := Pages()
	i := c.state.Active.index()
	if i < 0 {
		c.Navigate(PageHome)
		return
	}
	n := len(pages)
	c.Navigate(pages[((i+delta)%n+n)%n])
}

// SelectPost records post as the selection. It does not check the active
// page; outside Blog the selection is simply not shown.
func (c *Controller) SelectPost(post Post) {
	p := post
	c.state.Selected = &p
}

// SelectPostByID selects the catalog post with the given ID. An unknown ID
// clears the selection so Blog falls back to the listing, and returns false.
func (c *Controller) SelectPostByID(id string) bool {
	p, ok := c.catalog.Post(id)
	if !ok {
		c.state.Selected = nil
		return false
	}
	c.SelectPost(p)
	return true
}

// ClearSelectedPost drops the selection, returning Blog to the listing.
func (c *Controller) ClearSelectedPost() {
	c.state.Selected = nil
}

// Resolve maps the current state to the content to render.
func (c *Controller) Resolve() Content {
	return Resolve(c.state, c.catalog)
}

// Resolve is the routing table. It has no side effects and is total:
// unknown pages resolve to Home.
func Resolve(s ViewState, catalog *Catalog) Content {
	if catalog == nil {
		catalog = &Catalog{}
	}
	switch s.Active {
	case PageHome:
		return HomeContent{Profile: catalog.Profile}
	case PageAbout:
		return AboutContent{About: catalog.About}
	case PageContact:
		return ContactContent{Contact: catalog.Contact}
	case PageData:
		return DataContent{Dataset: catalog.Dataset}
	case PageBlog:
		if s.Selected != nil {
			return PostDetailContent{Post: *s.Selected}
		}
		return PostListContent{Posts: slices.Clone(catalog.Posts)}
	default:
		return HomeContent{Profile: catalog.Profile}
	}
}
