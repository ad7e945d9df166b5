package model

import "strings"

// Span represents one run of text sharing uniform styling. Spans arrive in
// document reading order per page; ordering between spans on the same page is
// preserved as given by the producer, never recomputed here.
type Span struct {
	// Text is the span content with surrounding whitespace trimmed. May be empty.
	Text string

	// Font is the font family/variant name
	Font string

	// Size is the font size in points
	Size float64

	// Flags is a bitmask of style attributes (bold, italic, etc.).
	// It is carried through for callers but not interpreted by classification.
	Flags int

	// BBox is the span's bounding box in page coordinates
	BBox BBox

	// Page is the 1-based page index
	Page int

	// Origin is the span's top-left point, used only for ordering
	Origin Point
}

// PageSpans returns the spans on the given 1-based page that have non-empty text.
func PageSpans(spans []Span, page int) []Span {
	var result []Span
	for _, s := range spans {
		if s.Page == page && s.Text != "" {
			result = append(result, s)
		}
	}
	return result
}

// MaxSize returns the largest font size among the spans, or 0 if empty.
func MaxSize(spans []Span) float64 {
	max := 0.0
	for _, s := range spans {
		if s.Size > max {
			max = s.Size
		}
	}
	return max
}

// SampleText joins the text of up to limit non-empty spans with single spaces.
// It is used to build the sample handed to language identification.
func SampleText(spans []Span, limit int) string {
	var parts []string
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		parts = append(parts, s.Text)
		if len(parts) >= limit {
			break
		}
	}
	return strings.Join(parts, " ")
}
