package nlp

import "unicode"

// Script identifies the dominant writing system of a text sample.
// It drives the caseless-script handling in the heuristic predicates and the
// fallback path of language identification.
type Script int

const (
	// ScriptUnknown for text with no recognizable letters
	ScriptUnknown Script = iota
	// ScriptLatin for Latin-alphabet text (English, Spanish, etc.)
	ScriptLatin
	// ScriptCJK for Chinese, Japanese, and Korean text
	ScriptCJK
)

// String returns a string representation of the script ("Latin", "CJK", or "Unknown").
func (s Script) String() string {
	switch s {
	case ScriptLatin:
		return "Latin"
	case ScriptCJK:
		return "CJK"
	default:
		return "Unknown"
	}
}

// DetectScript analyzes a string and returns its dominant script based on
// Unicode character properties. It counts Latin and CJK letters and returns
// the script with the higher count, or ScriptUnknown if neither is present.
func DetectScript(text string) Script {
	if text == "" {
		return ScriptUnknown
	}

	latinCount := 0
	cjkCount := 0

	for _, r := range text {
		if unicode.IsDigit(r) || unicode.IsPunct(r) || unicode.IsSpace(r) || unicode.IsSymbol(r) {
			continue
		}
		switch {
		case isCJK(r):
			cjkCount++
		case isLatin(r):
			latinCount++
		}
	}

	if latinCount == 0 && cjkCount == 0 {
		return ScriptUnknown
	}
	if cjkCount > latinCount {
		return ScriptCJK
	}
	return ScriptLatin
}

// isLatin reports whether r is in a Latin Unicode block.
// This includes:
//   - Basic Latin: U+0000–U+007F
//   - Latin-1 Supplement: U+0080–U+00FF
//   - Latin Extended-A: U+0100–U+017F
//   - Latin Extended-B: U+0180–U+024F
func isLatin(r rune) bool {
	return (r >= 0x0000 && r <= 0x007F) ||
		(r >= 0x0080 && r <= 0x00FF) ||
		(r >= 0x0100 && r <= 0x017F) ||
		(r >= 0x0180 && r <= 0x024F)
}

// isCJK reports whether r is in a CJK (Chinese, Japanese, Korean) Unicode block.
// This includes:
//   - CJK Unified Ideographs: U+4E00–U+9FFF
//   - CJK Extension A: U+3400–U+4DBF
//   - Hiragana: U+3040–U+309F
//   - Katakana: U+30A0–U+30FF
//   - Hangul: U+AC00–U+D7AF
func isCJK(r rune) bool {
	return (r >= 0x4E00 && r <= 0x9FFF) ||
		(r >= 0x3400 && r <= 0x4DBF) ||
		(r >= 0x3040 && r <= 0x309F) ||
		(r >= 0x30A0 && r <= 0x30FF) ||
		(r >= 0xAC00 && r <= 0xD7AF)
}
