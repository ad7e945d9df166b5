package nlp

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

// bulletRunes is the fixed set of glyphs treated as list bullets.
var bulletRunes = map[rune]bool{
	'•': true,
	'●': true,
	'-': true,
	'*': true,
	'▪': true,
	'‣': true,
	'–': true,
	'—': true,
}

// numberingPatterns match heading numbering schemes at the start of text:
// digit groups (1, 1.1, 1.2.3), Roman numerals with a period (IV.), and
// capital letters with a closing parenthesis (A)).
var numberingPatterns = []*regexp.Regexp{
	regexp.MustCompile(`^\d+(\.\d+)*`),
	regexp.MustCompile(`^[IVXLCDM]+\.`),
	regexp.MustCompile(`^[A-Z]\)`),
}

// Default shortness bounds. The heading candidate engine loosens these.
const (
	DefaultMaxWords = 12
	DefaultMaxChars = 70
)

// IsFullSentence reports whether text contains at least one segmented
// sentence with more than 2 non-space tokens that ends in a sentence
// terminator. Spans containing a complete sentence are presumed to be body
// text, so this is used as a heading disqualifier.
func IsFullSentence(text, lang string) bool {
	return EngineFor(lang).IsFullSentence(text)
}

// IsAllCaps reports whether text contains at least one letter and every
// letter is uppercase. Always false for caseless scripts.
func IsAllCaps(text, lang string) bool {
	return EngineFor(lang).IsAllCaps(text)
}

// IsTitleCase reports whether every whitespace-delimited alphabetic word in
// text starts with an uppercase letter followed only by lowercase letters.
// False if there are no alphabetic words, and always false for caseless
// scripts. Single-letter words qualify trivially.
func IsTitleCase(text, lang string) bool {
	return EngineFor(lang).IsTitleCase(text)
}

// StartsWithBullet reports whether the first character of text is a bullet
// glyph. Language-independent.
func StartsWithBullet(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	return size > 0 && bulletRunes[r]
}

// IsShort reports whether text is short enough to be a heading candidate: at
// most maxChars characters and, for languages with whitespace-delimited
// words, at most maxWords words.
func IsShort(text, lang string, maxWords, maxChars int) bool {
	return EngineFor(lang).IsShort(text, maxWords, maxChars)
}

// UppercaseRatio returns the fraction of letters in text that are uppercase,
// in [0,1]. Zero when text has no letters or the script is caseless.
func UppercaseRatio(text, lang string) float64 {
	return EngineFor(lang).UppercaseRatio(text)
}

// StartsWithNumbering reports whether the trimmed text starts with a heading
// numbering scheme such as "1.2.3", "IV.", or "A)". This is a pattern match
// only; numeral values are not evaluated. Language-independent.
func StartsWithNumbering(text string) bool {
	trimmed := strings.TrimSpace(text)
	for _, pattern := range numberingPatterns {
		if pattern.MatchString(trimmed) {
			return true
		}
	}
	return false
}

// isAlphabeticWord reports whether every rune in word is a letter.
func isAlphabeticWord(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}
