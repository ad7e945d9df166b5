package outline

import (
	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/nlp"
)

// Config holds configuration for heading candidate classification.
type Config struct {
	// MaxWords is the word bound for the shortness check.
	// Default: 14 (looser than the nlp default, headings tolerate more)
	MaxWords int

	// MaxChars is the character bound for the shortness check
	// Default: 80
	MaxChars int

	// MinUppercaseRatio admits spans that are neither all-caps nor
	// title-case when their uppercase ratio exceeds this value
	// Default: 0.5
	MinUppercaseRatio float64

	// Levels is the font-size-to-level table
	Levels FontLevelMap
}

// DefaultConfig returns the default classification configuration.
func DefaultConfig() Config {
	return Config{
		MaxWords:          14,
		MaxChars:          80,
		MinUppercaseRatio: 0.5,
		Levels:            DefaultFontLevels(),
	}
}

// Engine classifies spans into outline headings by combining the font-level
// table's verdict with the linguistic predicates.
type Engine struct {
	config Config
}

// NewEngine creates a heading engine with default configuration.
func NewEngine() *Engine {
	return &Engine{config: DefaultConfig()}
}

// NewEngineWithConfig creates a heading engine with custom configuration.
func NewEngineWithConfig(config Config) *Engine {
	if config.Levels == nil {
		config.Levels = DefaultFontLevels()
	}
	return &Engine{config: config}
}

// IsCandidate reports whether a span passes the linguistic heading gate,
// independent of its font level. A candidate must be non-empty, not a bullet
// item, short, not a complete sentence, and visibly emphasized by case:
// all-caps, strict title case, or a majority of uppercase letters.
func (e *Engine) IsCandidate(span model.Span, lang *nlp.Engine) bool {
	text := span.Text
	if text == "" {
		return false
	}
	if nlp.StartsWithBullet(text) {
		return false
	}
	if !lang.IsShort(text, e.config.MaxWords, e.config.MaxChars) {
		return false
	}
	if lang.IsFullSentence(text) {
		return false
	}
	return lang.IsAllCaps(text) ||
		lang.IsTitleCase(text) ||
		lang.UppercaseRatio(text) > e.config.MinUppercaseRatio
}

// Extract performs the single classification pass over the span list and
// returns the outline. Result pages are 0-based (span pages are 1-based).
//
// Adjacent identical headings are not deduplicated, multi-span heading lines
// are not merged, and level ordering is not enforced (an H3 can appear with
// no preceding H1).
func (e *Engine) Extract(spans []model.Span, lang *nlp.Engine) []model.HeadingEntry {
	outline := []model.HeadingEntry{}
	for _, span := range spans {
		level := e.config.Levels.LevelFor(span.Size)
		if level == model.LevelNone {
			continue
		}
		if !e.IsCandidate(span, lang) {
			continue
		}
		outline = append(outline, model.HeadingEntry{
			Level: level,
			Text:  span.Text,
			Page:  span.Page - 1,
		})
	}
	return outline
}
