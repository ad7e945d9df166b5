package outline

import (
	"strings"
	"unicode"
)

// CleanRepetitions removes the repetition artifacts that span extraction
// introduces into merged title text:
//
//  1. runs of 3 or more identical characters collapse to one ("Reeeequest"
//     becomes "Request"),
//  2. runs of whitespace collapse to a single space,
//  3. duplicate words are dropped, keeping the first occurrence of each
//     exact word (case-sensitive) in first-seen order.
//
// The transform is idempotent: applying it to its own output changes nothing.
func CleanRepetitions(text string) string {
	text = collapseRuns(text)
	text = collapseWhitespace(text)
	return dedupeWords(text)
}

// collapseRuns reduces each maximal run of 3+ identical runes to a single
// instance. Runs of exactly 2 are left alone: doubled letters are ordinary
// spelling, triples and longer are glyph-duplication artifacts.
func collapseRuns(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	runes := []rune(text)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && runes[j] == runes[i] {
			j++
		}
		runLen := j - i
		if runLen >= 3 {
			sb.WriteRune(runes[i])
		} else {
			for k := 0; k < runLen; k++ {
				sb.WriteRune(runes[i])
			}
		}
		i = j
	}
	return sb.String()
}

// collapseWhitespace replaces each run of 2+ whitespace characters with a
// single space.
func collapseWhitespace(text string) string {
	var sb strings.Builder
	sb.Grow(len(text))

	inRun := false
	runLen := 0
	var pending rune
	for _, r := range text {
		if unicode.IsSpace(r) {
			if !inRun {
				inRun = true
				runLen = 1
				pending = r
			} else {
				runLen++
			}
			continue
		}
		if inRun {
			if runLen >= 2 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(pending)
			}
			inRun = false
		}
		sb.WriteRune(r)
	}
	if inRun {
		if runLen >= 2 {
			sb.WriteRune(' ')
		} else {
			sb.WriteRune(pending)
		}
	}
	return sb.String()
}

// dedupeWords keeps the first occurrence of each exact word, preserving
// order. Comparison is case-sensitive: "Proposal" and "proposal" are
// distinct.
func dedupeWords(text string) string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	seen := make(map[string]bool, len(words))
	result := words[:0]
	for _, w := range words {
		if seen[w] {
			continue
		}
		seen[w] = true
		result = append(result, w)
	}
	return strings.Join(result, " ")
}
