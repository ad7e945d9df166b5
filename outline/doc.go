// Package outline classifies font-annotated text spans into a document title
// and a flat, leveled list of headings.
//
// # Components
//
//   - [TitleDetector] - picks the title from the first page's largest-type
//     spans (the "title band") and cleans extraction artifacts out of it
//   - [FontLevelMap] - maps font sizes to H1/H2/H3 with tolerance matching;
//     [DefaultFontLevels] is the fixed fallback table, [Calibrate] derives a
//     per-document table from the size distribution
//   - [Engine] - combines the font-level verdict with the linguistic gate
//     from package nlp to accept or reject each span as a heading
//   - [CleanRepetitions] - idempotent repair of stutter and duplicate-word
//     artifacts in merged text
//
// # Classification contract
//
// The outline pass is single-pass and span-at-a-time. It does not merge
// multi-span headings, deduplicate repeats, or enforce that levels nest in
// order. Degenerate inputs produce empty results, never errors: a document
// with no matching spans has an empty outline, and a document with an empty
// first page has an empty title.
package outline
