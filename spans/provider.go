package spans

import "github.com/tsawler/contour/model"

// Provider produces the ordered span list for one document. It is the
// interface boundary to the document-parsing layer: implementations own
// whatever binary-format knowledge is needed, and the classification pipeline
// consumes only the spans.
//
// A hard failure (unreadable document) must surface as an error from Spans,
// never as a fabricated empty span list.
type Provider interface {
	Spans() ([]model.Span, error)
}

// Static wraps an in-memory span list as a Provider.
type Static []model.Span

// Spans returns the wrapped span list.
func (s Static) Spans() ([]model.Span, error) {
	return []model.Span(s), nil
}
