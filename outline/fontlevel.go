package outline

import (
	"sort"

	"github.com/tsawler/contour/model"
)

// LevelTolerance is the maximum distance between a span's size and a table
// entry for the span to classify at that level.
const LevelTolerance = 0.1

// FontLevelMap maps heading levels to expected point sizes.
type FontLevelMap map[model.HeadingLevel]float64

// DefaultFontLevels returns the fixed font-size table.
//
// The constants encode a corpus-wide font convention rather than anything
// derived from the document at hand, which makes them a fallback default, not
// a rule. Prefer [Calibrate] when the document's own size distribution is
// trustworthy.
func DefaultFontLevels() FontLevelMap {
	return FontLevelMap{
		model.LevelH1: 20.04,
		model.LevelH2: 15.96,
		model.LevelH3: 12.0,
	}
}

// LevelFor returns the first level whose expected size matches within
// [LevelTolerance], checking H1, then H2, then H3. Spans matching no entry
// get [model.LevelNone] and are not heading candidates.
func (m FontLevelMap) LevelFor(size float64) model.HeadingLevel {
	for _, level := range []model.HeadingLevel{model.LevelH1, model.LevelH2, model.LevelH3} {
		expected, ok := m[level]
		if !ok {
			continue
		}
		if diff := size - expected; diff < LevelTolerance && diff > -LevelTolerance {
			return level
		}
	}
	return model.LevelNone
}

// sizeBucket buckets a font size at 0.1pt precision, enough to treat
// near-identical sizes as one.
func sizeBucket(size float64) int {
	return int(size*10 + 0.5)
}

// Calibrate derives a per-document font-level map from the document's own
// font-size distribution: the distinct sizes of non-empty spans, descending,
// mapped to H1, H2, H3. When four or more distinct sizes exist, the largest
// is assumed to be the title band and skipped.
//
// Returns nil when the document has no sized text, in which case callers
// should fall back to [DefaultFontLevels].
func Calibrate(spans []model.Span) FontLevelMap {
	seen := make(map[int]bool)
	var sizes []float64
	for _, s := range spans {
		if s.Text == "" || s.Size <= 0 {
			continue
		}
		bucket := sizeBucket(s.Size)
		if !seen[bucket] {
			seen[bucket] = true
			sizes = append(sizes, s.Size)
		}
	}
	if len(sizes) == 0 {
		return nil
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(sizes)))

	if len(sizes) >= 4 {
		sizes = sizes[1:]
	}

	levels := FontLevelMap{}
	for i, level := range []model.HeadingLevel{model.LevelH1, model.LevelH2, model.LevelH3} {
		if i >= len(sizes) {
			break
		}
		levels[level] = sizes[i]
	}
	return levels
}

// SizeSample pairs a font size with example texts set in that size.
type SizeSample struct {
	Size  float64
	Texts []string
}

// SurveySizes reports the distinct font sizes in a document, largest first,
// with up to three sample texts each. This is diagnostic output for tuning
// font-level tables against a new corpus.
func SurveySizes(spans []model.Span) []SizeSample {
	const maxSamples = 3

	byBucket := make(map[int]*SizeSample)
	for _, s := range spans {
		if s.Text == "" {
			continue
		}
		bucket := sizeBucket(s.Size)
		sample, ok := byBucket[bucket]
		if !ok {
			sample = &SizeSample{Size: s.Size}
			byBucket[bucket] = sample
		}
		if len(sample.Texts) < maxSamples {
			sample.Texts = append(sample.Texts, s.Text)
		}
	}

	samples := make([]SizeSample, 0, len(byBucket))
	for _, sample := range byBucket {
		samples = append(samples, *sample)
	}
	sort.Slice(samples, func(i, j int) bool {
		return samples[i].Size > samples[j].Size
	})
	return samples
}
