package markup

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Heading is a section anchor collected from a rendered document.
type Heading struct {
	Level int
	ID    string
	Text  string
}

// Document is the rendered form of a markdown body.
type Document struct {
	HTML     template.HTML
	Text     string
	Headings []Heading
	Words    int
}

// Renderer converts markdown to sanitized HTML.
type Renderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewRenderer builds a renderer with GFM, heading anchors and class-based code highlighting.
func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
				highlighting.WithFormatOptions(chromahtml.WithClasses(true)),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithUnsafe(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.AllowStyling()
	policy.AllowAttrs("loading").Matching(bluemonday.SpaceSeparatedTokens).OnElements("img")

	return &Renderer{md: md, policy: policy}
}

// Render converts src and returns the sanitized HTML along with its outline and plain text.
func (r *Renderer) Render(src []byte) (Document, error) {
	var buf bytes.Buffer
	if err := r.md.Convert(src, &buf); err != nil {
		return Document{}, fmt.Errorf("markup: convert: %w", err)
	}
	clean := r.policy.SanitizeBytes(buf.Bytes())

	doc := Document{HTML: template.HTML(clean)}
	root, err := html.Parse(bytes.NewReader(clean))
	if err != nil {
		return Document{}, fmt.Errorf("markup: parse rendered html: %w", err)
	}
	doc.Headings = collectHeadings(root)
	doc.Text = collapseSpace(textContent(root))
	doc.Words = len(strings.Fields(doc.Text))
	return doc, nil
}

// PlainText strips markup from an HTML fragment.
func PlainText(fragment string) string {
	root, err := html.Parse(strings.NewReader(fragment))
	if err != nil {
		return ""
	}
	return collapseSpace(textContent(root))
}

func collectHeadings(n *html.Node) []Heading {
	var out []Heading
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			level := 0
			switch n.DataAtom {
			case atom.H2:
				level = 2
			case atom.H3:
				level = 3
			}
			if level > 0 {
				if id := attr(n, "id"); id != "" {
					out = append(out, Heading{Level: level, ID: id, Text: collapseSpace(textContent(n))})
				}
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func textContent(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			sb.WriteString(n.Data)
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
		if n.Type == html.ElementNode && isBlock(n.DataAtom) {
			sb.WriteByte(' ')
		}
	}
	walk(n)
	return sb.String()
}

func isBlock(a atom.Atom) bool {
	switch a {
	case atom.P, atom.Div, atom.Li, atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6,
		atom.Pre, atom.Blockquote, atom.Tr, atom.Td, atom.Th, atom.Br:
		return true
	}
	return false
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func collapseSpace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
