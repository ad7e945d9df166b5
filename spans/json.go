package spans

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tsawler/contour/model"
)

// spanRecord is the wire form of one span as emitted by span extractors:
// bbox as (x0,y0,x1,y1) corners, origin as an optional (x,y) pair.
type spanRecord struct {
	Text   string      `json:"text"`
	Font   string      `json:"font"`
	Size   float64     `json:"size"`
	Flags  int         `json:"flags"`
	BBox   [4]float64  `json:"bbox"`
	Page   int         `json:"page"`
	Origin *[2]float64 `json:"origin"`
}

// JSONProvider reads spans from a JSON span file (an array of span records).
type JSONProvider struct {
	spans []model.Span
}

// OpenJSON opens and parses a JSON span file.
func OpenJSON(filename string) (*JSONProvider, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	p, err := ReadJSON(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	return p, nil
}

// ReadJSON parses spans from an io.Reader.
func ReadJSON(r io.Reader) (*JSONProvider, error) {
	var records []spanRecord
	dec := json.NewDecoder(r)
	if err := dec.Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing span JSON: %w", err)
	}

	spans := make([]model.Span, 0, len(records))
	for i, rec := range records {
		if rec.Page < 1 {
			return nil, fmt.Errorf("span %d: page %d is not 1-based", i, rec.Page)
		}

		bbox := model.NewBBoxFromCorners(rec.BBox[0], rec.BBox[1], rec.BBox[2], rec.BBox[3])
		origin := bbox.TopLeft()
		if rec.Origin != nil {
			origin = model.Point{X: rec.Origin[0], Y: rec.Origin[1]}
		}

		spans = append(spans, model.Span{
			Text:   strings.TrimSpace(rec.Text),
			Font:   rec.Font,
			Size:   rec.Size,
			Flags:  rec.Flags,
			BBox:   bbox,
			Page:   rec.Page,
			Origin: origin,
		})
	}

	return &JSONProvider{spans: spans}, nil
}

// Spans returns the parsed span list in file order.
func (p *JSONProvider) Spans() ([]model.Span, error) {
	return p.spans, nil
}
