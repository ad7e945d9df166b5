package outline

import (
	"sort"
	"strings"

	"github.com/tsawler/contour/model"
)

// TitleBandTolerance is the size window below the first page's maximum font
// size within which spans are considered part of the title.
const TitleBandTolerance = 0.5

// TitleDetector selects and cleans the document title from first-page spans.
type TitleDetector struct {
	tolerance float64
}

// NewTitleDetector creates a title detector with the default band tolerance.
func NewTitleDetector() *TitleDetector {
	return &TitleDetector{tolerance: TitleBandTolerance}
}

// NewTitleDetectorWithTolerance creates a title detector with a custom band
// tolerance.
func NewTitleDetectorWithTolerance(tolerance float64) *TitleDetector {
	return &TitleDetector{tolerance: tolerance}
}

// Detect returns the document title: the first-page spans within the title
// band of the page's largest font size, ordered top of page first, joined,
// and cleaned of repetition artifacts. Returns the empty string when the
// first page has no text.
//
// Sorting considers only the vertical position. Spans at the same height stay
// in span-list order; no left-to-right ordering is inferred.
func (d *TitleDetector) Detect(spans []model.Span) string {
	firstPage := model.PageSpans(spans, 1)
	if len(firstPage) == 0 {
		return ""
	}

	maxSize := model.MaxSize(firstPage)

	var band []model.Span
	for _, s := range firstPage {
		if diff := s.Size - maxSize; diff < d.tolerance && diff > -d.tolerance {
			band = append(band, s)
		}
	}

	sort.SliceStable(band, func(i, j int) bool {
		return band[i].Origin.Y < band[j].Origin.Y
	})

	parts := make([]string, 0, len(band))
	for _, s := range band {
		parts = append(parts, s.Text)
	}

	title := CleanRepetitions(strings.Join(parts, " "))
	return strings.TrimSpace(title)
}
