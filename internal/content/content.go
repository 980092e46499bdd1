// Package content loads the portfolio catalog: site.yaml for the profile pages
// and chart, posts/*.md (frontmatter + markdown) for the blog.
//
// The default catalog is compiled into the binary; LoadDir reads the same
// layout from disk so the content can be edited without rebuilding.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"folio/internal/site"

	"github.com/adrg/frontmatter"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	siteFile = "site.yaml"
	postsDir = "posts"
	// DateLayout is the frontmatter date format.
	DateLayout = "2006-01-02"
)

//go:embed data
var embedded embed.FS

// Default loads the compiled-in catalog.
func Default() (*site.Catalog, error) {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// LoadDir loads a catalog from a directory on disk.
func LoadDir(dir string) (*site.Catalog, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("content dir %q: %w", dir, err)
	}
	return Load(os.DirFS(dir))
}

// Load reads site.yaml and posts/ from fsys.
func Load(fsys fs.FS) (*site.Catalog, error) {
	f, err := fsys.Open(siteFile)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", siteFile, err)
	}
	defer f.Close()

	cat, err := LoadSite(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", siteFile, err)
	}
	posts, err := LoadPosts(fsys)
	if err != nil {
		return nil, err
	}
	cat.Posts = posts
	return cat, nil
}

// siteDoc mirrors site.yaml.
type siteDoc struct {
	Year    int          `yaml:"year"`
	Profile site.Profile `yaml:"profile"`
	About   site.About   `yaml:"about"`
	Contact site.Contact `yaml:"contact"`
	Dataset site.Dataset `yaml:"dataset"`
}

// LoadSite decodes a site.yaml document. Unknown keys are rejected so typos
// surface instead of silently blanking a page.
func LoadSite(r io.Reader) (*site.Catalog, error) {
	var doc siteDoc
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	if err := validateDataset(doc.Dataset); err != nil {
		return nil, err
	}
	if doc.Year == 0 {
		doc.Year = time.Now().Year()
	}
	return &site.Catalog{
		Profile: doc.Profile,
		About:   doc.About,
		Contact: doc.Contact,
		Dataset: doc.Dataset,
		Year:    doc.Year,
	}, nil
}

func validateDataset(d site.Dataset) error {
	for _, s := range d.Series {
		if len(s.Values) != len(d.Labels) {
			return fmt.Errorf("dataset series %q has %d values for %d labels", s.Label, len(s.Values), len(d.Labels))
		}
	}
	return nil
}

// postMeta is the frontmatter block of a post file.
type postMeta struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	Date  string `yaml:"date"`
	Cover string `yaml:"cover"`
}

// LoadPosts reads every posts/*.md file, newest first. A missing posts
// directory is an empty blog, not an error.
func LoadPosts(fsys fs.FS) ([]site.Post, error) {
	entries, err := fs.ReadDir(fsys, postsDir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", postsDir, err)
	}

	var posts []site.Post
	seen := make(map[string]string)
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(strings.ToLower(e.Name()), ".md") {
			continue
		}
		name := path.Join(postsDir, e.Name())
		f, err := fsys.Open(name)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", name, err)
		}
		p, err := ParsePost(strings.TrimSuffix(e.Name(), path.Ext(e.Name())), f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if prev, dup := seen[p.ID]; dup {
			return nil, fmt.Errorf("%s: duplicate post id %q (also in %s)", name, p.ID, prev)
		}
		seen[p.ID] = name
		posts = append(posts, p)
	}

	sort.SliceStable(posts, func(i, j int) bool {
		if !posts[i].Date.Equal(posts[j].Date) {
			return posts[i].Date.After(posts[j].Date)
		}
		return posts[i].ID < posts[j].ID
	})
	return posts, nil
}

// ParsePost reads one post. slug is the file name without extension; it is
// the ID when the frontmatter has none, and the title source when the
// frontmatter has no title.
func ParsePost(slug string, r io.Reader) (site.Post, error) {
	var meta postMeta
	body, err := frontmatter.Parse(r, &meta)
	if err != nil {
		return site.Post{}, fmt.Errorf("frontmatter: %w", err)
	}
	if meta.Date == "" {
		return site.Post{}, errors.New("missing date")
	}
	date, err := time.Parse(DateLayout, meta.Date)
	if err != nil {
		return site.Post{}, fmt.Errorf("date %q: %w", meta.Date, err)
	}

	id := meta.ID
	if id == "" {
		id = slug
	}
	title := meta.Title
	if title == "" {
		title = titleFromSlug(slug)
		log.Printf("content.ParsePost: %s has no title, using %q", slug, title)
	}
	return site.Post{
		ID:         id,
		Title:      title,
		Date:       date,
		Body:       strings.TrimSpace(string(body)),
		CoverImage: meta.Cover,
	}, nil
}

func titleFromSlug(slug string) string {
	words := strings.NewReplacer("-", " ", "_", " ").Replace(slug)
	return cases.Title(language.English).String(words)
}
