package spans

import (
	"strings"
	"testing"
)

func TestReadJSON(t *testing.T) {
	input := `[
		{"text": "  TITLE OF PAPER  ", "font": "Helvetica-Bold", "size": 24.0, "flags": 16, "bbox": [72, 36, 400, 60], "page": 1, "origin": [72, 36]},
		{"text": "Introduction", "font": "Helvetica", "size": 20.04, "flags": 0, "bbox": [72, 100, 200, 120], "page": 1}
	]`

	p, err := ReadJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}

	spans, err := p.Spans()
	if err != nil {
		t.Fatalf("Spans: %v", err)
	}
	if len(spans) != 2 {
		t.Fatalf("expected 2 spans, got %d", len(spans))
	}

	first := spans[0]
	if first.Text != "TITLE OF PAPER" {
		t.Errorf("text should be trimmed: %q", first.Text)
	}
	if first.Font != "Helvetica-Bold" || first.Size != 24.0 || first.Flags != 16 {
		t.Errorf("unexpected font metadata: %+v", first)
	}
	if first.BBox.X != 72 || first.BBox.Y != 36 || first.BBox.Width != 328 || first.BBox.Height != 24 {
		t.Errorf("unexpected bbox: %+v", first.BBox)
	}
	if first.Origin.X != 72 || first.Origin.Y != 36 {
		t.Errorf("unexpected origin: %+v", first.Origin)
	}

	// Omitted origin falls back to the bbox top-left corner
	second := spans[1]
	if second.Origin.X != 72 || second.Origin.Y != 100 {
		t.Errorf("default origin = %+v, want bbox top-left", second.Origin)
	}
}

func TestReadJSONRejectsBadPages(t *testing.T) {
	inputs := []string{
		`[{"text": "x", "size": 12, "bbox": [0,0,1,1], "page": 0}]`,
		`[{"text": "x", "size": 12, "bbox": [0,0,1,1], "page": -2}]`,
	}

	for _, input := range inputs {
		if _, err := ReadJSON(strings.NewReader(input)); err == nil {
			t.Errorf("expected error for %s", input)
		}
	}
}

func TestReadJSONMalformed(t *testing.T) {
	if _, err := ReadJSON(strings.NewReader(`{"not": "an array"`)); err == nil {
		t.Error("expected error for malformed JSON")
	}
}

func TestOpenJSONMissingFile(t *testing.T) {
	if _, err := OpenJSON("testdata/does-not-exist.json"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestStaticProvider(t *testing.T) {
	p := Static{{Text: "hello", Page: 1}}
	spans, err := p.Spans()
	if err != nil {
		t.Fatalf("Spans: %v", err)
	}
	if len(spans) != 1 || spans[0].Text != "hello" {
		t.Errorf("unexpected spans: %+v", spans)
	}
}
