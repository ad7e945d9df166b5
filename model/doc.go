// Package model provides the data types shared across the classification
// pipeline.
//
// The input side is the [Span]: one styled run of text with font, size, style
// flags, bounding box, and page metadata, produced in reading order by a span
// provider. Spans are created once per document and read-only afterward.
//
// The output side is the [DocumentResult]: the document title, a flat ordered
// list of [HeadingEntry] values, and the resolved language code. Its JSON
// field names are contractual for interoperability with downstream indexers:
//
//	{"title": ..., "outline": [{"level": "H1", "text": ..., "page": 0}], "language": "en"}
//
// Note the page convention: spans are 1-based, outline entries are 0-based.
//
// Geometric primitives ([Point], [BBox]) use top-left-origin page coordinates,
// matching what span extractors emit: Y grows toward the bottom of the page.
package model
