// Package markup renders markdown post bodies as styled terminal text.
package markup

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	extast "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"
)

// Theme styles the rendered elements.
type Theme struct {
	Heading  lipgloss.Style
	Emphasis lipgloss.Style
	Strong   lipgloss.Style
	Code     lipgloss.Style
	Link     lipgloss.Style
	Quote    lipgloss.Style
	Muted    lipgloss.Style
}

// DefaultTheme is a plain theme; the ui package supplies a coloured one.
func DefaultTheme() Theme {
	return Theme{
		Heading:  lipgloss.NewStyle().Bold(true),
		Emphasis: lipgloss.NewStyle().Italic(true),
		Strong:   lipgloss.NewStyle().Bold(true),
		Code:     lipgloss.NewStyle(),
		Link:     lipgloss.NewStyle().Underline(true),
		Quote:    lipgloss.NewStyle(),
		Muted:    lipgloss.NewStyle(),
	}
}

// Renderer converts markdown to terminal text. A Renderer is reusable.
type Renderer struct {
	md    goldmark.Markdown
	theme Theme
}

// New returns a renderer with GFM enabled.
func New(theme Theme) *Renderer {
	return &Renderer{
		md:    goldmark.New(goldmark.WithExtensions(extension.GFM)),
		theme: theme,
	}
}

// Render returns src laid out for a terminal width columns wide.
// width <= 0 disables wrapping.
func (r *Renderer) Render(src string, width int) string {
	source := []byte(src)
	doc := r.md.Parser().Parse(text.NewReader(source))
	w := &walker{src: source, theme: r.theme}
	return strings.TrimRight(w.blocks(doc, width), "\n")
}

type walker struct {
	src   []byte
	theme Theme
}

// blocks renders the block children of n separated by blank lines.
func (w *walker) blocks(n ast.Node, width int) string {
	var parts []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		if s := w.block(c, width); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "\n\n")
}

func (w *walker) block(n ast.Node, width int) string {
	switch n := n.(type) {
	case *ast.Heading:
		return Wrap(w.theme.Heading.Render(w.inline(n)), width)
	case *ast.Paragraph, *ast.TextBlock:
		return Wrap(w.inline(n), width)
	case *ast.List:
		return w.list(n, width)
	case *ast.Blockquote:
		inner := w.blocks(n, width-2)
		lines := strings.Split(inner, "\n")
		for i, l := range lines {
			lines[i] = w.theme.Quote.Render("│") + " " + w.theme.Quote.Render(l)
		}
		return strings.Join(lines, "\n")
	case *ast.FencedCodeBlock, *ast.CodeBlock:
		lines := n.Lines()
		out := make([]string, 0, lines.Len())
		for i := 0; i < lines.Len(); i++ {
			seg := lines.At(i)
			out = append(out, "    "+w.theme.Code.Render(strings.TrimRight(string(seg.Value(w.src)), "\n")))
		}
		return strings.Join(out, "\n")
	case *ast.ThematicBreak:
		if width <= 0 {
			width = 40
		}
		return w.theme.Muted.Render(strings.Repeat("─", width))
	case *ast.HTMLBlock:
		return ""
	case *extast.Table:
		return w.table(n)
	default:
		if n.Type() == ast.TypeBlock && n.FirstChild() != nil && n.FirstChild().Type() == ast.TypeBlock {
			return w.blocks(n, width)
		}
		return Wrap(w.inline(n), width)
	}
}

func (w *walker) list(l *ast.List, width int) string {
	var items []string
	num := l.Start
	if num == 0 {
		num = 1
	}
	for c := l.FirstChild(); c != nil; c = c.NextSibling() {
		marker := "• "
		if l.IsOrdered() {
			marker = fmt.Sprintf("%d. ", num)
			num++
		}
		indent := strings.Repeat(" ", len(marker))
		body := w.blocks(c, width-len(marker))
		if l.IsTight {
			body = strings.ReplaceAll(body, "\n\n", "\n")
		}
		lines := strings.Split(body, "\n")
		for i := range lines {
			if i == 0 {
				lines[i] = marker + lines[i]
			} else if lines[i] != "" {
				lines[i] = indent + lines[i]
			}
		}
		items = append(items, strings.Join(lines, "\n"))
	}
	sep := "\n"
	if !l.IsTight {
		sep = "\n\n"
	}
	return strings.Join(items, sep)
}

func (w *walker) table(t *extast.Table) string {
	var rows []string
	for r := t.FirstChild(); r != nil; r = r.NextSibling() {
		var cells []string
		for c := r.FirstChild(); c != nil; c = c.NextSibling() {
			cells = append(cells, w.inline(c))
		}
		row := strings.Join(cells, " │ ")
		if _, header := r.(*extast.TableHeader); header {
			row = w.theme.Strong.Render(row)
		}
		rows = append(rows, row)
	}
	return strings.Join(rows, "\n")
}

// inline flattens the inline children of n to a single styled string.
func (w *walker) inline(n ast.Node) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch c := c.(type) {
		case *ast.Text:
			b.Write(c.Segment.Value(w.src))
			switch {
			case c.HardLineBreak():
				b.WriteString("\n")
			case c.SoftLineBreak():
				b.WriteString(" ")
			}
		case *ast.String:
			b.Write(c.Value)
		case *ast.Emphasis:
			if c.Level >= 2 {
				b.WriteString(w.theme.Strong.Render(w.inline(c)))
			} else {
				b.WriteString(w.theme.Emphasis.Render(w.inline(c)))
			}
		case *ast.CodeSpan:
			b.WriteString(w.theme.Code.Render(w.inline(c)))
		case *ast.Link:
			label := w.inline(c)
			b.WriteString(w.theme.Link.Render(label))
			if dest := string(c.Destination); dest != "" && dest != label {
				b.WriteString(w.theme.Muted.Render(" <" + dest + ">"))
			}
		case *ast.AutoLink:
			b.WriteString(w.theme.Link.Render(string(c.URL(w.src))))
		case *ast.Image:
			alt := w.inline(c)
			if alt == "" {
				alt = "image"
			}
			b.WriteString(w.theme.Muted.Render(fmt.Sprintf("[%s: %s]", alt, c.Destination)))
		case *ast.RawHTML:
			// Inline HTML has no terminal rendering.
		case *extast.Strikethrough:
			b.WriteString(w.theme.Muted.Render("~" + w.inline(c) + "~"))
		default:
			b.WriteString(w.inline(c))
		}
	}
	return b.String()
}

// Wrap word-wraps s to width columns, leaving ANSI styling intact. A
// non-positive width disables wrapping.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Wordwrap(s, width, "")
}
