package spans

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html"

	"github.com/tsawler/contour/model"
)

// htmlSizes maps heading and body tags to the conventional point sizes the
// classifier's default font table expects. HTML carries no typography of its
// own here; the tag structure stands in for it.
var htmlSizes = map[string]float64{
	"h1": 20.04,
	"h2": 15.96,
	"h3": 12.0,
	"p":  10.5,
	"li": 10.5,
}

// htmlTitleSize places the <title>, or the first <h1> when no <title> exists,
// above the h1 band so title detection picks it up.
const htmlTitleSize = 24.0

// htmlLineSpacing is the vertical advance per synthesized span.
const htmlLineSpacing = 1.5

// HTMLProvider synthesizes spans from an HTML document so HTML input can flow
// through the same classification pipeline as paginated documents. The whole
// document becomes page 1, elements in document order from top to bottom.
type HTMLProvider struct {
	spans []model.Span
}

// OpenHTML opens and parses an HTML file.
func OpenHTML(filename string) (*HTMLProvider, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	p, err := ReadHTML(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// ReadHTML parses HTML from an io.Reader and synthesizes its spans.
func ReadHTML(r io.Reader) (*HTMLProvider, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing HTML: %w", err)
	}

	p := &HTMLProvider{}
	y := 0.0

	title := findTitle(doc)
	var promoted *html.Node
	if title == "" {
		if h1 := findFirst(doc, "h1"); h1 != nil {
			if text := strings.TrimSpace(textContent(h1)); text != "" {
				title = text
				promoted = h1
			}
		}
	}
	if title != "" {
		p.appendSpan(title, "title", htmlTitleSize, &y)
	}
	p.walkBody(doc, promoted, &y)

	return p, nil
}

// Spans returns the synthesized span list in document order.
func (p *HTMLProvider) Spans() ([]model.Span, error) {
	return p.spans, nil
}

func (p *HTMLProvider) appendSpan(text, tag string, size float64, y *float64) {
	bbox := model.NewBBox(0, *y, float64(len(text))*size*0.5, size)
	p.spans = append(p.spans, model.Span{
		Text:   strings.TrimSpace(text),
		Font:   "html/" + tag,
		Size:   size,
		BBox:   bbox,
		Page:   1,
		Origin: bbox.TopLeft(),
	})
	*y += size * htmlLineSpacing
}

// walkBody visits element nodes in document order, emitting a span for each
// recognized tag with non-empty text content. The skip node, if any, is the
// heading already promoted to the title and is not emitted again.
func (p *HTMLProvider) walkBody(n *html.Node, skip *html.Node, y *float64) {
	if skip != nil && n == skip {
		return
	}
	if n.Type == html.ElementNode {
		if size, ok := htmlSizes[n.Data]; ok {
			text := strings.TrimSpace(textContent(n))
			if text != "" {
				p.appendSpan(text, n.Data, size, y)
			}
			return // do not descend into emitted elements
		}
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		p.walkBody(c, skip, y)
	}
}

// findFirst returns the first element node with the given tag in document
// order, or nil.
func findFirst(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, tag); found != nil {
			return found
		}
	}
	return nil
}

// findTitle returns the text of the <title> element, if any.
func findTitle(n *html.Node) string {
	if n.Type == html.ElementNode && n.Data == "title" {
		return strings.TrimSpace(textContent(n))
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if title := findTitle(c); title != "" {
			return title
		}
	}
	return ""
}

// textContent extracts all text content from a node and its children.
func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}

	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
