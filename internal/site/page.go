package site

// Page is a top-level navigation target shown in the header.
// The zero value is not a page; Resolve treats it as Home.
type Page int

const (
	PageHome Page = iota + 1
	PageAbout
	PageBlog
	PageContact
	PageData
)

// Pages returns every page in header order.
func Pages() []Page {
	return []Page{PageHome, PageAbout, PageBlog, PageContact, PageData}
}

func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageAbout:
		return "About"
	case PageBlog:
		return "Blog"
	case PageContact:
		return "Contact"
	case PageData:
		return "Data"
	default:
		return "Unknown"
	}
}

// Valid reports whether p is one of the declared pages.
func (p Page) Valid() bool {
	return p >= PageHome && p <= PageData
}

// ParsePage maps a header label ("Blog", case-sensitive) back to its Page.
func ParsePage(s string) (Page, bool) {
	for _, p := range Pages() {
		if p.String() == s {
			return p, true
		}
	}
	return 0, false
}

// index returns p's position in header order, or -1.
func (p Page) index() int {
	for i, q := range Pages() {
		if q == p {
			return i
		}
	}
	return -1
}
