// Package markdown turns generated review markdown into display markup.
//
// Parsing and escaping are goldmark's. This package only overrides how
// headings, list items and paragraphs are written so that section headers
// and bullet points carry the report's icon markers:
//
//	##  heading  -> award icon       (emoji_events)
//	### heading  -> achievement icon (stars)
//	- item       -> completed icon   (check_circle)
//
// Raw HTML in the input is dropped, never passed through.
package markdown

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/util"
)

// marker is an icon tag attached to a rendered element.
type marker struct {
	name  string // CSS modifier, e.g. "award"
	glyph string // Material Symbols ligature, e.g. "emoji_events"
}

var (
	markerAchievement = marker{name: "achievement", glyph: "stars"}
	markerAward       = marker{name: "award", glyph: "emoji_events"}
	markerCompleted   = marker{name: "completed", glyph: "check_circle"}
)

const (
	headingClass   = "report-heading"
	itemClass      = "report-item"
	paragraphClass = "report-paragraph"
)

// reportRendererPriority places the report renderer ahead of goldmark's
// default HTML renderer (priority 1000).
const reportRendererPriority = 100

// Renderer converts markdown to report markup. It is safe for concurrent use.
type Renderer struct {
	md goldmark.Markdown
}

func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithRendererOptions(
				renderer.WithNodeRenderers(util.Prioritized(&reportNodeRenderer{}, reportRendererPriority)),
			),
		),
	}
}

// Render converts src to markup.
func (r *Renderer) Render(src string) (string, error) {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(src), &buf); err != nil {
		return "", fmt.Errorf("rendering markdown: %w", err)
	}
	return buf.String(), nil
}

var defaultRenderer = New()

// Render converts src with a shared Renderer.
func Render(src string) (string, error) {
	return defaultRenderer.Render(src)
}

type reportNodeRenderer struct{}

func (r *reportNodeRenderer) RegisterFuncs(reg renderer.NodeRendererFuncRegisterer) {
	reg.Register(ast.KindHeading, r.renderHeading)
	reg.Register(ast.KindListItem, r.renderListItem)
	reg.Register(ast.KindParagraph, r.renderParagraph)
}

func headingMarker(level int) (marker, bool) {
	switch level {
	case 2:
		return markerAward, true
	case 3:
		return markerAchievement, true
	}
	return marker{}, false
}

func writeMarker(w util.BufWriter, m marker) {
	_, _ = fmt.Fprintf(w, `<span class="report-icon report-icon-%s">%s</span>`, m.name, m.glyph)
}

func (r *reportNodeRenderer) renderHeading(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	n := node.(*ast.Heading)
	m, tagged := headingMarker(n.Level)

	if !entering {
		_, _ = fmt.Fprintf(w, "</h%d>\n", n.Level)
		return ast.WalkContinue, nil
	}

	if !tagged {
		_, _ = fmt.Fprintf(w, "<h%d>", n.Level)
		return ast.WalkContinue, nil
	}
	_, _ = fmt.Fprintf(w, `<h%d class="%s">`, n.Level, headingClass)
	writeMarker(w, m)
	return ast.WalkContinue, nil
}

// dashItem reports whether n is an item of a "-" bullet list.
func dashItem(n ast.Node) bool {
	list, ok := n.Parent().(*ast.List)
	return ok && !list.IsOrdered() && list.Marker == '-'
}

func (r *reportNodeRenderer) renderListItem(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	tagged := dashItem(node)
	// Loose items hold block children, which cannot sit inside an inline span.
	tight := true
	if fc := node.FirstChild(); fc != nil {
		_, tight = fc.(*ast.TextBlock)
	}

	if !entering {
		if tagged && tight {
			_, _ = w.WriteString("</span>")
		}
		_, _ = w.WriteString("</li>\n")
		return ast.WalkContinue, nil
	}

	if !tagged {
		_, _ = w.WriteString("<li>")
	} else {
		_, _ = fmt.Fprintf(w, `<li class="%s">`, itemClass)
		writeMarker(w, markerCompleted)
		if tight {
			_, _ = w.WriteString("<span>")
		}
	}
	if !tight {
		_ = w.WriteByte('\n')
	}
	return ast.WalkContinue, nil
}

func (r *reportNodeRenderer) renderParagraph(w util.BufWriter, _ []byte, node ast.Node, entering bool) (ast.WalkStatus, error) {
	if !node.HasChildren() {
		return ast.WalkSkipChildren, nil
	}
	if entering {
		_, _ = fmt.Fprintf(w, `<p class="%s">`, paragraphClass)
	} else {
		_, _ = w.WriteString("</p>\n")
	}
	return ast.WalkContinue, nil
}
