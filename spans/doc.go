// Package spans defines the span-provider boundary: the interface through
// which the classification pipeline receives the ordered list of styled text
// spans for one document.
//
// Binary document parsing is out of scope for this module; a [Provider]
// wraps whatever layer does that work. Two concrete providers ship here:
//
//   - [JSONProvider] reads span-list JSON files as emitted by external span
//     extractors (text, font, size, flags, corner-form bbox, 1-based page)
//   - [HTMLProvider] synthesizes spans from HTML structure, assigning
//     conventional point sizes to h1/h2/h3/p so HTML documents can flow
//     through the same pipeline
//
// [Static] adapts an in-memory span slice for tests and embedding callers.
//
// Providers must report unreadable input as an error. Returning an empty span
// list means "the document really has no text", which the pipeline treats as
// a valid degenerate case, not a failure.
package spans
