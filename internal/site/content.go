package site

// Content is what to show right now, derived from ViewState by Resolve.
// The set of implementations is closed: the marker method is unexported.
type Content interface {
	// Page is the header tab the content belongs to.
	Page() Page
	isContent()
}

// HomeContent is the landing page.
type HomeContent struct {
	Profile Profile
}

// AboutContent is the biography page.
type AboutContent struct {
	About About
}

// ContactContent is the contact details page.
type ContactContent struct {
	Contact Contact
}

// DataContent is the chart page.
type DataContent struct {
	Dataset Dataset
}

// PostListContent is the blog index.
type PostListContent struct {
	Posts []Post
}

// PostDetailContent is a single selected post.
type PostDetailContent struct {
	Post Post
}

func (HomeContent) Page() Page       { return PageHome }
func (AboutContent) Page() Page      { return PageAbout }
func (ContactContent) Page() Page    { return PageContact }
func (DataContent) Page() Page       { return PageData }
func (PostListContent) Page() Page   { return PageBlog }
func (PostDetailContent) Page() Page { return PageBlog }

func (HomeContent) isContent()       {}
func (AboutContent) isContent()      {}
func (ContactContent) isContent()    {}
func (DataContent) isContent()       {}
func (PostListContent) isContent()   {}
func (PostDetailContent) isContent() {}

// ContentVisitor has one method per Content variant. A renderer that
// implements it handles every page; adding a variant breaks the build of
// every visitor until it is handled.
type ContentVisitor[T any] interface {
	Home(HomeContent) T
	About(AboutContent) T
	Contact(ContactContent) T
	Data(DataContent) T
	PostList(PostListContent) T
	PostDetail(PostDetailContent) T
}

// Visit dispatches c to the matching visitor method.
// A nil Content is visited as an empty HomeContent.
func Visit[T any](c Content, v ContentVisitor[T]) T {
	switch c := c.(type) {
	case AboutContent:
		return v.About(c)
	case ContactContent:
		return v.Contact(c)
	case DataContent:
		return v.Data(c)
	case PostListContent:
		return v.PostList(c)
	case PostDetailContent:
		return v.PostDetail(c)
	case HomeContent:
		return v.Home(c)
	default:
		return v.Home(HomeContent{})
	}
}
