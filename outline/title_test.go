package outline

import (
	"testing"

	"github.com/tsawler/contour/model"
)

// makeSpan creates a span for title tests
func makeSpan(text string, size float64, page int, y float64) model.Span {
	return model.Span{
		Text:   text,
		Size:   size,
		Page:   page,
		BBox:   model.NewBBox(0, y, 100, size),
		Origin: model.Point{X: 0, Y: y},
	}
}

func TestTitleDetectorBasic(t *testing.T) {
	spans := []model.Span{
		makeSpan("TITLE OF PAPER", 24.0, 1, 10),
		makeSpan("Introduction", 20.04, 1, 50),
		makeSpan("Body text here.", 12.0, 1, 80),
	}

	title := NewTitleDetector().Detect(spans)
	if title != "TITLE OF PAPER" {
		t.Errorf("Detect = %q, want %q", title, "TITLE OF PAPER")
	}
}

func TestTitleDetectorBandTolerance(t *testing.T) {
	spans := []model.Span{
		makeSpan("Request for", 24.0, 1, 10),
		makeSpan("Proposal", 23.7, 1, 25), // within 0.5 of max
		makeSpan("Appendix", 23.4, 1, 40), // outside the band
	}

	title := NewTitleDetector().Detect(spans)
	if title != "Request for Proposal" {
		t.Errorf("Detect = %q, want %q", title, "Request for Proposal")
	}
}

func TestTitleDetectorSortsByY(t *testing.T) {
	spans := []model.Span{
		makeSpan("Second Line", 24.0, 1, 40),
		makeSpan("First Line", 24.0, 1, 10),
	}

	title := NewTitleDetector().Detect(spans)
	if title != "First Line Second" {
		// "Line" appears twice; the cleaner keeps only the first occurrence
		t.Errorf("Detect = %q, want %q", title, "First Line Second")
	}
}

func TestTitleDetectorSameHeightKeepsListOrder(t *testing.T) {
	// Two spans at identical Y: no left-to-right inference, original span
	// order wins even when the second sits further left on the page.
	left := makeSpan("Alpha", 24.0, 1, 10)
	right := makeSpan("Beta", 24.0, 1, 10)
	right.Origin.X = 200
	left.Origin.X = 300

	title := NewTitleDetector().Detect([]model.Span{left, right})
	if title != "Alpha Beta" {
		t.Errorf("Detect = %q, want %q", title, "Alpha Beta")
	}
}

func TestTitleDetectorIgnoresOtherPages(t *testing.T) {
	spans := []model.Span{
		makeSpan("Huge Page Two Banner", 40.0, 2, 10),
		makeSpan("Modest Title", 14.0, 1, 10),
	}

	title := NewTitleDetector().Detect(spans)
	if title != "Modest Title" {
		t.Errorf("Detect = %q, want %q", title, "Modest Title")
	}
}

func TestTitleDetectorCleansRepetitions(t *testing.T) {
	spans := []model.Span{
		makeSpan("RFP: Reeeequest", 24.0, 1, 10),
		makeSpan("for Proposal Proposal", 24.0, 1, 25),
	}

	title := NewTitleDetector().Detect(spans)
	if title != "RFP: Request for Proposal" {
		t.Errorf("Detect = %q, want %q", title, "RFP: Request for Proposal")
	}
}

func TestTitleDetectorEmptyFirstPage(t *testing.T) {
	tests := []struct {
		name  string
		spans []model.Span
	}{
		{"no spans", nil},
		{"only empty texts", []model.Span{makeSpan("", 24.0, 1, 10)}},
		{"no first page", []model.Span{makeSpan("text", 12.0, 2, 10)}},
	}

	detector := NewTitleDetector()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := detector.Detect(tt.spans); got != "" {
				t.Errorf("Detect = %q, want empty string", got)
			}
		})
	}
}
