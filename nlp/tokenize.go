package nlp

import (
	"strings"

	"github.com/blevesearch/segment"
)

// sentence terminators recognized by the segmenter, covering both Latin
// punctuation and CJK full-width forms.
const sentenceTerminators = ".!?。！？"

// Sentence is one segmented sentence with its token count.
type Sentence struct {
	// Text is the sentence including its terminator, not trimmed
	Text string

	// TokenCount is the number of non-space tokens in the sentence
	TokenCount int
}

// Tokens splits text into non-space tokens using Unicode word segmentation.
// Punctuation marks count as tokens; whitespace does not.
func Tokens(text string) []string {
	var tokens []string
	segmenter := segment.NewWordSegmenterDirect([]byte(text))
	for segmenter.Segment() {
		tok := segmenter.Text()
		if strings.TrimSpace(tok) == "" {
			continue
		}
		tokens = append(tokens, tok)
	}
	if err := segmenter.Err(); err != nil {
		// Segmentation over an in-memory string cannot fail on IO; a malformed
		// byte sequence yields replacement runes upstream. Treat as no tokens.
		return nil
	}
	return tokens
}

// CountTokens returns the number of non-space tokens in text.
func CountTokens(text string) int {
	return len(Tokens(text))
}

// SplitSentences segments text into sentences. A sentence ends at a
// terminator character; trailing text without a terminator forms a final
// sentence of its own.
func SplitSentences(text string) []Sentence {
	var sentences []Sentence
	var current strings.Builder

	flush := func() {
		s := current.String()
		current.Reset()
		if strings.TrimSpace(s) == "" {
			return
		}
		sentences = append(sentences, Sentence{
			Text:       s,
			TokenCount: CountTokens(s),
		})
	}

	for _, r := range text {
		current.WriteRune(r)
		if strings.ContainsRune(sentenceTerminators, r) {
			flush()
		}
	}
	flush()

	return sentences
}

// EndsWithTerminator reports whether the trimmed text ends in a sentence
// terminator.
func EndsWithTerminator(text string) bool {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}
	runes := []rune(trimmed)
	return strings.ContainsRune(sentenceTerminators, runes[len(runes)-1])
}
