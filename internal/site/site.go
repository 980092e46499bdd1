// Package site models the portfolio: its static profile, the blog catalog, and
// the view state machine that decides which page is on screen.
//
// Controller owns the only mutable state (active page and selected post).
// Everything a renderer needs comes out of Controller.Resolve as a Content
// value; renderers never touch the controller's state directly.
package site

import "time"

// Post is one blog entry. Posts are immutable once loaded.
type Post struct {
	ID         string
	Title      string
	Date       time.Time
	Body       string // markdown
	CoverImage string // empty when the post has no cover
}

// HasCover reports whether the post carries a cover image reference.
func (p Post) HasCover() bool { return p.CoverImage != "" }

// Link is a labelled external reference on the contact page.
type Link struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

// Profile is the owner's static information shown across pages.
type Profile struct {
	Name     string `yaml:"name"`
	Headline string `yaml:"headline"`
	Tagline  string `yaml:"tagline"`
}

// About is the content of the About page.
type About struct {
	Title        string   `yaml:"title"`
	Intro        string   `yaml:"intro"`
	Education    string   `yaml:"education"`
	Achievements []string `yaml:"achievements"`
	Experience   string   `yaml:"experience"`
	Skills       string   `yaml:"skills"`
	Languages    string   `yaml:"languages"`
	Interests    string   `yaml:"interests"`
}

// Contact is the content of the Contact page.
type Contact struct {
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
	Links   []Link `yaml:"links"`
}

// Series is one labelled line of a Dataset.
type Series struct {
	Label  string    `yaml:"label"`
	Values []float64 `yaml:"values"`
	Color  string    `yaml:"color"`
}

// Dataset is the static chart shown on the Data page.
type Dataset struct {
	Title  string   `yaml:"title"`
	Labels []string `yaml:"labels"`
	Series []Series `yaml:"series"`
}

// Catalog is the compiled-in content the controller resolves against.
type Catalog struct {
	Profile Profile
	About   About
	Contact Contact
	Dataset Dataset
	Posts   []Post
	// Year printed in the footer copyright line.
	Year int
}

// Post looks up a post by ID.
func (c *Catalog) Post(id string) (Post, bool) {
	for _, p := range c.Posts {
		if p.ID == id {
			return p, true
		}
	}
	return Post{}, false
}
