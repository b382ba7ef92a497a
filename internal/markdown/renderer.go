// Package markdown converts stored Markdown into HTML for post pages and
// listing previews, and derives plain-text excerpts for cards and
// metadata descriptions.
package markdown

import (
	"bytes"
	"fmt"

	highlighting "github.com/yuin/goldmark-highlighting/v2"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

const DefaultPreviewLength = 200

type Renderer struct {
	md goldmark.Markdown
}

// externalLinks marks absolute links for new-tab opening without
// referrer leakage.
type externalLinks struct{}

func (externalLinks) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		link, ok := n.(*ast.Link)
		if !ok {
			return ast.WalkContinue, nil
		}
		if bytes.HasPrefix(link.Destination, []byte("http://")) || bytes.HasPrefix(link.Destination, []byte("https://")) {
			link.SetAttributeString("target", []byte("_blank"))
			link.SetAttributeString("rel", []byte("noopener noreferrer"))
		}
		return ast.WalkContinue, nil
	})
}

func NewRenderer() *Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithASTTransformers(
				util.Prioritized(externalLinks{}, 999),
			),
		),
		// Raw HTML embedded in Markdown stays escaped (goldmark default,
		// no html.WithUnsafe here).
	)
	return &Renderer{md: md}
}

// Render converts the full Markdown source into HTML.
func (r *Renderer) Render(content string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(content), &buf); err != nil {
		return "", fmt.Errorf("error rendering markdown: %w", err)
	}
	return buf.String(), nil
}

// RenderPreview truncates the raw Markdown source at a word boundary
// before maxLength and renders the truncated source. Truncating in the
// middle of markup is tolerated since previews are display-only.
func (r *Renderer) RenderPreview(content string, maxLength int) (string, error) {
	if maxLength <= 0 {
		maxLength = DefaultPreviewLength
	}
	return r.Render(TruncateAtWord(content, maxLength))
}
