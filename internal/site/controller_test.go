package site

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() *Catalog {
	return &Catalog{
		Profile: Profile{Name: "Ada", Headline: "Welcome", Tagline: "Numbers"},
		About:   About{Title: "About Me", Intro: "Hi"},
		Contact: Contact{Email: "ada@example.com"},
		Dataset: Dataset{
			Title:  "Growth",
			Labels: []string{"Jan", "Feb"},
			Series: []Series{{Label: "g", Values: []float64{1, 2}}},
		},
		Posts: []Post{
			{ID: "first", Title: "First", Date: time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), Body: "one", CoverImage: "/a.jpg"},
			{ID: "second", Title: "Second", Date: time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC), Body: "two"},
		},
	}
}

func TestNewController_StartsOnHome(t *testing.T) {
	c := NewController(testCatalog())

	s := c.State()
	assert.Equal(t, PageHome, s.Active)
	assert.Nil(t, s.Selected)
	assert.IsType(t, HomeContent{}, c.Resolve())
}

func TestNavigate_ResolvesEveryPage(t *testing.T) {
	cat := testCatalog()
	tests := []struct {
		page Page
		want Content
	}{
		{PageHome, HomeContent{Profile: cat.Profile}},
		{PageAbout, AboutContent{About: cat.About}},
		{PageContact, ContactContent{Contact: cat.Contact}},
		{PageData, DataContent{Dataset: cat.Dataset}},
		{PageBlog, PostListContent{Posts: cat.Posts}},
	}
	for _, tt := range tests {
		t.Run(tt.page.String(), func(t *testing.T) {
			c := NewController(cat)
			// Start somewhere else so the transition is observable.
			c.Navigate(PageData)
			c.SelectPost(cat.Posts[1])
			c.ClearSelectedPost()

			c.Navigate(tt.page)
			got := c.Resolve()
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.page, got.Page())
		})
	}
}

func TestResolve_BlogWithSelectionShowsDetail(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat)
	c.Navigate(PageBlog)
	c.SelectPost(cat.Posts[0])

	got, ok := c.Resolve().(PostDetailContent)
	require.True(t, ok, "expected PostDetailContent, got %T", c.Resolve())
	assert.Equal(t, cat.Posts[0], got.Post)
}

func TestClearSelectedPost_ReturnsToListing(t *testing.T) {
	cat := testCatalog()
	for _, p := range append([]Post{{}}, cat.Posts...) {
		c := NewController(cat)
		c.Navigate(PageBlog)
		if p.ID != "" {
			c.SelectPost(p)
		}
		c.ClearSelectedPost()

		assert.IsType(t, PostListContent{}, c.Resolve())
		assert.Equal(t, PageBlog, c.State().Active)
	}
}

func TestNavigate_Idempotent(t *testing.T) {
	cat := testCatalog()
	for _, policy := range []SelectionPolicy{KeepSelection, ResetOnLeave} {
		for _, page := range Pages() {
			c := NewController(cat, WithSelectionPolicy(policy))
			c.Navigate(PageBlog)
			c.SelectPost(cat.Posts[0])

			c.Navigate(page)
			first := c.State()
			c.Navigate(page)
			assert.True(t, first.Equal(c.State()), "policy=%s page=%s", policy, page)
		}
	}
}

func TestScenario_SelectionSurvivesDetour(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat)

	assert.IsType(t, HomeContent{}, c.Resolve())

	c.Navigate(PageBlog)
	assert.IsType(t, PostListContent{}, c.Resolve())

	c.SelectPost(cat.Posts[0])
	assert.Equal(t, PostDetailContent{Post: cat.Posts[0]}, c.Resolve())

	c.Navigate(PageHome)
	assert.IsType(t, HomeContent{}, c.Resolve())
	require.NotNil(t, c.State().Selected, "selection should be kept while away from Blog")

	c.Navigate(PageBlog)
	assert.Equal(t, PostDetailContent{Post: cat.Posts[0]}, c.Resolve())
}

func TestScenario_ResetOnLeave(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat, WithSelectionPolicy(ResetOnLeave))

	c.Navigate(PageBlog)
	c.SelectPost(cat.Posts[0])
	c.Navigate(PageBlog)
	assert.IsType(t, PostDetailContent{}, c.Resolve(), "staying on Blog keeps the post")

	c.Navigate(PageContact)
	assert.Nil(t, c.State().Selected)

	c.Navigate(PageBlog)
	assert.IsType(t, PostListContent{}, c.Resolve())
}

func TestSelectPost_OutsideBlogIsHidden(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat)
	c.Navigate(PageAbout)
	c.SelectPost(cat.Posts[1])

	assert.IsType(t, AboutContent{}, c.Resolve())

	c.Navigate(PageBlog)
	assert.Equal(t, PostDetailContent{Post: cat.Posts[1]}, c.Resolve())
}

func TestSelectPostByID(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat)
	c.Navigate(PageBlog)

	require.True(t, c.SelectPostByID("second"))
	assert.Equal(t, PostDetailContent{Post: cat.Posts[1]}, c.Resolve())

	assert.False(t, c.SelectPostByID("missing"))
	assert.IsType(t, PostListContent{}, c.Resolve(), "unknown id falls back to the listing")
}

func TestResolve_UnknownPageFallsBackToHome(t *testing.T) {
	cat := testCatalog()
	for _, p := range []Page{0, -3, PageData + 1} {
		got := Resolve(ViewState{Active: p}, cat)
		assert.Equal(t, HomeContent{Profile: cat.Profile}, got, "page %d", p)
	}

	c := NewController(cat)
	c.Navigate(Page(42))
	assert.IsType(t, HomeContent{}, c.Resolve())
}

func TestResolve_NilCatalog(t *testing.T) {
	c := NewController(nil)
	c.Navigate(PageBlog)
	got, ok := c.Resolve().(PostListContent)
	require.True(t, ok)
	assert.Empty(t, got.Posts)
}

func TestResolve_ListingIsACopy(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat)
	c.Navigate(PageBlog)

	list := c.Resolve().(PostListContent)
	list.Posts[0].Title = "mutated"
	assert.Equal(t, "First", cat.Posts[0].Title)
}

func TestState_ReturnsSnapshot(t *testing.T) {
	cat := testCatalog()
	c := NewController(cat)
	c.SelectPost(cat.Posts[0])

	s := c.State()
	s.Selected.Title = "mutated"
	s.Active = PageData

	assert.Equal(t, "First", c.State().Selected.Title)
	assert.Equal(t, PageHome, c.State().Active)
}

func TestNextPrev_Wrap(t *testing.T) {
	c := NewController(testCatalog())

	var seen []Page
	for range Pages() {
		c.Next()
		seen = append(seen, c.State().Active)
	}
	assert.Equal(t, []Page{PageAbout, PageBlog, PageContact, PageData, PageHome}, seen)

	c.Prev()
	assert.Equal(t, PageData, c.State().Active)

	c.Navigate(0)
	c.Next()
	assert.Equal(t, PageHome, c.State().Active, "stepping from an unknown page lands on Home")
}

func TestViewState_Equal(t *testing.T) {
	a := Post{ID: "x", Date: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
	b := a
	b.Date = a.Date.In(time.FixedZone("x", 3600))

	assert.True(t, ViewState{Active: PageBlog, Selected: &a}.Equal(ViewState{Active: PageBlog, Selected: &b}))
	assert.False(t, ViewState{Active: PageBlog, Selected: &a}.Equal(ViewState{Active: PageBlog}))
	assert.False(t, ViewState{Active: PageBlog}.Equal(ViewState{Active: PageHome}))
	assert.True(t, ViewState{}.Equal(ViewState{}))
}
