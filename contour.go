// Package contour extracts a structured outline (a document title plus a
// flat list of leveled headings) from paginated documents represented as
// font-annotated text spans.
//
// Basic usage:
//
//	result, warnings, err := contour.OpenJSON("paper.spans.json").Result()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", contour.FormatWarnings(warnings))
//	}
//
// With options:
//
//	result, _, err := contour.OpenJSON("paper.spans.json").
//	    Language("ja").
//	    Calibrate().
//	    Result()
//
// Spans can also be supplied directly, or through any spans.Provider:
//
//	result, _, err := contour.FromSpans(mySpans).Result()
package contour

import (
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/spans"
)

// OpenJSON creates an Extractor over a JSON span file. The file is not read
// until a terminal operation runs.
//
// Example:
//
//	result, warnings, err := contour.OpenJSON("paper.spans.json").Result()
func OpenJSON(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		kind:     sourceJSON,
		options:  defaultOptions(),
	}
}

// OpenHTML creates an Extractor over an HTML file, synthesizing spans from
// its heading structure.
func OpenHTML(filename string) *Extractor {
	return &Extractor{
		filename: filename,
		kind:     sourceHTML,
		options:  defaultOptions(),
	}
}

// FromSpans creates an Extractor over an in-memory span list.
func FromSpans(spanList []model.Span) *Extractor {
	return FromProvider(spans.Static(spanList))
}

// FromProvider creates an Extractor over any span provider. This is the hook
// for callers that own their document-parsing layer.
func FromProvider(p spans.Provider) *Extractor {
	return &Extractor{
		provider: p,
		kind:     sourceProvider,
		options:  defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a terminal call such as Result(), discards warnings, and
// panics on error.
//
// Example:
//
//	result := contour.MustResult(contour.OpenJSON("paper.spans.json").Result())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
