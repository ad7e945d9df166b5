package contour

import (
	"github.com/tsawler/contour/nlp"
	"github.com/tsawler/contour/outline"
)

// languageSampleSpans is the number of non-empty spans joined into the
// language-identification sample.
const languageSampleSpans = 20

// ExtractOptions holds configuration for outline extraction.
type ExtractOptions struct {
	// language, when set, skips identification and forces a language code
	language string

	// calibrate derives the font-level table from the document's own
	// size distribution instead of the fixed default table
	calibrate bool

	// levels is the font-size-to-level table used when calibration is off
	// or yields nothing
	levels outline.FontLevelMap

	// titleTolerance is the title band size window
	titleTolerance float64

	// identifier performs language identification; nil means the shared
	// default identifier
	identifier nlp.Identifier

	// resolver caches language engines; shared across extractors by default
	resolver *nlp.Resolver
}

// sharedResolver is the process-wide engine cache used unless a caller
// installs its own. Safe for concurrent use across documents.
var sharedResolver = nlp.NewResolver()

// sharedIdentifier is built once; the statistical models behind it are
// expensive to initialize.
var sharedIdentifier = nlp.DefaultIdentifier()

// defaultOptions returns the default extraction options.
func defaultOptions() ExtractOptions {
	return ExtractOptions{
		language:       "", // auto-detect
		calibrate:      false,
		levels:         outline.DefaultFontLevels(),
		titleTolerance: outline.TitleBandTolerance,
		identifier:     sharedIdentifier,
		resolver:       sharedResolver,
	}
}

// clone creates a deep copy of ExtractOptions.
func (o ExtractOptions) clone() ExtractOptions {
	newOpts := ExtractOptions{
		language:       o.language,
		calibrate:      o.calibrate,
		titleTolerance: o.titleTolerance,
		identifier:     o.identifier,
		resolver:       o.resolver,
	}

	// Deep copy the level table
	if o.levels != nil {
		newOpts.levels = make(outline.FontLevelMap, len(o.levels))
		for level, size := range o.levels {
			newOpts.levels[level] = size
		}
	}

	return newOpts
}
