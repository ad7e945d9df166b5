package nlp

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Engine bundles the script profile and segmentation behavior for one
// language. Engines are stateless after construction and safe for concurrent
// use; obtain them through a [Resolver] rather than constructing per call.
type Engine struct {
	profile Profile
}

// NewEngine creates an engine for a supported language code. Unsupported
// codes return an error; callers that want fallback-to-default behavior
// should go through a [Resolver] instead.
func NewEngine(code string) (*Engine, error) {
	normalized := Normalize(code)
	p, ok := profiles[normalized]
	if !ok {
		return nil, fmt.Errorf("no language profile for %q", code)
	}
	return &Engine{profile: p}, nil
}

// Code returns the canonical language code the engine was built for.
func (e *Engine) Code() string {
	return e.profile.Code
}

// Profile returns the engine's script profile.
func (e *Engine) Profile() Profile {
	return e.profile
}

// IsFullSentence reports whether text contains a segmented sentence with more
// than 2 non-space tokens ending in a sentence terminator.
func (e *Engine) IsFullSentence(text string) bool {
	for _, sentence := range SplitSentences(text) {
		if sentence.TokenCount > 2 && EndsWithTerminator(sentence.Text) {
			return true
		}
	}
	return false
}

// IsAllCaps reports whether text has at least one letter and no letter that
// is not uppercase. Vacuously false for caseless scripts.
func (e *Engine) IsAllCaps(text string) bool {
	if !e.profile.HasCase {
		return false
	}

	hasLetter := false
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		hasLetter = true
		if !unicode.IsUpper(r) {
			return false
		}
	}
	return hasLetter
}

// IsTitleCase reports whether every alphabetic word is capitalized with a
// lowercase remainder. Words containing non-letters are ignored; if no
// alphabetic words remain the result is false. Vacuously false for caseless
// scripts.
func (e *Engine) IsTitleCase(text string) bool {
	if !e.profile.HasCase {
		return false
	}

	checked := false
	for _, word := range strings.Fields(text) {
		if !isAlphabeticWord(word) {
			continue
		}
		checked = true

		first, size := utf8.DecodeRuneInString(word)
		if !unicode.IsUpper(first) {
			return false
		}
		// Single-letter words have an empty remainder and pass.
		for _, r := range word[size:] {
			if !unicode.IsLower(r) {
				return false
			}
		}
	}
	return checked
}

// IsShort reports whether text fits the given bounds. Character count always
// applies; the word bound applies only to languages with whitespace-delimited
// words.
func (e *Engine) IsShort(text string, maxWords, maxChars int) bool {
	if utf8.RuneCountInString(text) > maxChars {
		return false
	}
	if !e.profile.CountWords {
		return true
	}
	return len(strings.Fields(text)) <= maxWords
}

// UppercaseRatio returns the fraction of letters that are uppercase, or 0 for
// caseless scripts or letterless text.
func (e *Engine) UppercaseRatio(text string) float64 {
	if !e.profile.HasCase {
		return 0
	}

	letters := 0
	upper := 0
	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		letters++
		if unicode.IsUpper(r) {
			upper++
		}
	}
	if letters == 0 {
		return 0
	}
	return float64(upper) / float64(letters)
}
