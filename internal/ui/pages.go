package ui

import (
	"fmt"
	"strings"

	"folio/internal/chart"
	"folio/internal/markup"
	"folio/internal/site"
	"folio/internal/ui/textutil"

	zone "github.com/lrstanley/bubblezone"
)

const dateLayout = "2006-01-02"

// zoneBack marks the "Back to Blog" button for mouse clicks.
const zoneBack = "back"

// pageBody is one resolved page ready for the body area.
type pageBody struct {
	key   string // identity for scroll reset, e.g. "About" or "post:kant"
	text  string
	list  bool // true when the blog listing view draws the body itself
	posts []site.Post
}

// pageRenderer turns resolved Content into text for the body area. It
// implements site.ContentVisitor, so a new page kind fails to compile until
// it is rendered here.
type pageRenderer struct {
	width       int
	chartHeight int
	styles      Styles
	md          *markup.Renderer
	zones       *zone.Manager
}

var _ site.ContentVisitor[pageBody] = pageRenderer{}

func (r pageRenderer) Home(c site.HomeContent) pageBody {
	var b strings.Builder
	b.WriteString("\n\n")
	b.WriteString(textutil.Center(r.styles.Headline.Render(c.Profile.Headline), r.width))
	b.WriteString("\n\n")
	b.WriteString(textutil.Center(r.styles.Tagline.Render(c.Profile.Tagline), r.width))
	return pageBody{key: site.PageHome.String(), text: b.String()}
}

func (r pageRenderer) About(c site.AboutContent) pageBody {
	a := c.About
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(a.Title) + "\n\n")
	if a.Intro != "" {
		b.WriteString(r.paragraph(a.Intro) + "\n\n")
	}
	r.section(&b, "Education", a.Education)
	if len(a.Achievements) > 0 {
		b.WriteString(r.styles.Section.Render("Achievements:") + "\n")
		for _, item := range a.Achievements {
			b.WriteString(r.styles.Normal.Render(markup.Wrap("• "+item, r.width)) + "\n")
		}
		b.WriteString("\n")
	}
	r.section(&b, "Experience", a.Experience)
	r.section(&b, "Skills", a.Skills)
	r.section(&b, "Languages", a.Languages)
	r.section(&b, "Interests", a.Interests)
	return pageBody{key: site.PageAbout.String(), text: strings.TrimRight(b.String(), "\n")}
}

func (r pageRenderer) Contact(c site.ContactContent) pageBody {
	ct := c.Contact
	var b strings.Builder
	b.WriteString(r.styles.Title.Render("Contact") + "\n\n")
	field := func(label, value string) {
		if value == "" {
			return
		}
		b.WriteString(r.styles.Section.Render(fmt.Sprintf("%-9s", label+":")) + " " + r.styles.Normal.Render(value) + "\n")
	}
	field("Email", ct.Email)
	field("Phone", ct.Phone)
	field("Address", ct.Address)
	if len(ct.Links) > 0 {
		b.WriteString("\n")
		for _, l := range ct.Links {
			b.WriteString(r.styles.Normal.Render(l.Label) + "  " + r.styles.Link.Render(l.URL) + "\n")
		}
	}
	return pageBody{key: site.PageContact.String(), text: strings.TrimRight(b.String(), "\n")}
}

func (r pageRenderer) Data(c site.DataContent) pageBody {
	ds := c.Dataset
	var b strings.Builder
	b.WriteString(chart.Line(ds, r.width, r.chartHeight, r.styles.Chart()))
	if len(ds.Series) > 0 {
		b.WriteString("\n\n")
		for _, s := range ds.Series {
			color := s.Color
			if color == "" {
				color = r.styles.theme.Accent
			}
			label := textutil.PadRightVisual(s.Label, 20)
			b.WriteString(r.styles.Normal.Render(label) + " " + chart.Sparkline(s.Values, color) + "\n")
		}
	}
	return pageBody{key: site.PageData.String(), text: strings.TrimRight(b.String(), "\n")}
}

func (r pageRenderer) PostList(c site.PostListContent) pageBody {
	return pageBody{key: site.PageBlog.String(), list: true, posts: c.Posts}
}

func (r pageRenderer) PostDetail(c site.PostDetailContent) pageBody {
	p := c.Post
	var b strings.Builder
	b.WriteString(r.styles.Title.Render(p.Title) + "\n")
	b.WriteString(r.styles.Muted.Render(p.Date.Format(dateLayout)) + "\n")
	if p.HasCover() {
		b.WriteString(r.styles.Muted.Render("[cover: "+p.CoverImage+"]") + "\n")
	}
	b.WriteString("\n")
	if body := r.md.Render(p.Body, r.width); body != "" {
		b.WriteString(body + "\n\n")
	}
	b.WriteString(mark(r.zones, zoneBack, r.styles.Button.Render("← Back to Blog")))
	return pageBody{key: "post:" + p.ID, text: b.String()}
}

func (r pageRenderer) section(b *strings.Builder, label, value string) {
	if value == "" {
		return
	}
	b.WriteString(r.styles.Section.Render(label+":") + "\n")
	b.WriteString(r.paragraph(value) + "\n\n")
}

func (r pageRenderer) paragraph(s string) string {
	return r.styles.Normal.Render(markup.Wrap(s, r.width))
}

// mark wraps s in a clickable zone when mouse support is on.
func mark(z *zone.Manager, id, s string) string {
	if z == nil {
		return s
	}
	return z.Mark(id, s)
}
