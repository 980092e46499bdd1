package ui

import (
	"fmt"
	"slices"
	"strings"

	"folio/internal/site"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
)

// postItem implements list.Item for site.Post.
type postItem struct {
	post site.Post
}

func (p postItem) FilterValue() string { return p.post.Title }
func (p postItem) Title() string       { return p.post.Title }
func (p postItem) Description() string {
	d := p.post.Date.Format(dateLayout)
	if p.post.HasCover() {
		d += "  ▣ cover"
	}
	return d
}

// BlogListView is the Blog page's listing state: every post, one selectable
// row each.
type BlogListView struct {
	list   list.Model
	styles Styles
	ids    []string
}

// Ensure BlogListView implements View.
var _ View = (*BlogListView)(nil)

// NewBlogListView creates an empty listing. Posts arrive via SetPosts.
func NewBlogListView(st Styles) *BlogListView {
	l := list.New(nil, newPostDelegate(st), 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = st.Empty.PaddingLeft(2)
	l.SetStatusBarItemName("post", "posts")

	return &BlogListView{list: l, styles: st}
}

// SetPosts replaces the listing. The cursor is kept when the post IDs are
// unchanged so re-resolving the Blog page does not jump back to the top.
func (b *BlogListView) SetPosts(posts []site.Post) {
	ids := make([]string, len(posts))
	for i, p := range posts {
		ids[i] = p.ID
	}
	if slices.Equal(ids, b.ids) && len(b.list.Items()) == len(posts) {
		return
	}
	items := make([]list.Item, len(posts))
	for i, p := range posts {
		items[i] = postItem{post: p}
	}
	b.list.SetItems(items)
	b.list.ResetSelected()
	b.ids = ids
}

// Len returns the number of posts listed.
func (b *BlogListView) Len() int { return len(b.list.Items()) }

// Index returns the cursor position.
func (b *BlogListView) Index() int { return b.list.Index() }

// Selected returns the post under the cursor.
func (b *BlogListView) Selected() (site.Post, bool) {
	it, ok := b.list.SelectedItem().(postItem)
	if !ok {
		return site.Post{}, false
	}
	return it.post, true
}

// SelectByID moves the cursor to the post with id. It reports whether the
// post is listed.
func (b *BlogListView) SelectByID(id string) bool {
	i := slices.Index(b.ids, id)
	if i < 0 {
		return false
	}
	b.list.Select(i)
	return true
}

// Init implements View.
func (b *BlogListView) Init() tea.Cmd { return nil }

// SetSize implements View.
func (b *BlogListView) SetSize(width, height int) {
	b.list.SetSize(width, max(height-headerLines, 1))
}

// Update implements View.
func (b *BlogListView) Update(msg tea.Msg) (View, tea.Cmd) {
	// list.Model handles j/k/g/G and paging natively.
	// Enter is handled by the app so the selection goes through the controller.
	var cmd tea.Cmd
	b.list, cmd = b.list.Update(msg)
	return b, cmd
}

// headerLines is the height of the listing heading written by View.
const headerLines = 2

// View implements View.
func (b *BlogListView) View() string {
	if b.list.Width() == 0 {
		b.list.SetWidth(80)
	}
	if b.list.Height() == 0 {
		b.list.SetHeight(20)
	}

	var sb strings.Builder
	sb.WriteString(b.styles.Title.Render(fmt.Sprintf("Blog Posts (%d)", b.Len())) + "\n")
	if b.Len() == 0 {
		sb.WriteString("\n" + b.styles.Empty.Render("No posts yet."))
		return sb.String()
	}
	sb.WriteString(b.styles.Muted.Render("enter to read · j/k to move") + "\n")
	sb.WriteString(b.list.View())
	return sb.String()
}
