package nlp

import "testing"

func TestTokens(t *testing.T) {
	tests := []struct {
		text     string
		expected int
	}{
		{"hello world", 2},
		{"hello, world.", 4}, // punctuation counts as tokens
		{"Go now.", 3},
		{"", 0},
		{"   ", 0},
		{"one", 1},
	}

	for _, tt := range tests {
		if got := CountTokens(tt.text); got != tt.expected {
			t.Errorf("CountTokens(%q) = %d, want %d (tokens: %v)", tt.text, got, tt.expected, Tokens(tt.text))
		}
	}
}

func TestSplitSentences(t *testing.T) {
	sentences := SplitSentences("First sentence here. Second one follows! Trailing fragment")
	if len(sentences) != 3 {
		t.Fatalf("expected 3 sentences, got %d: %+v", len(sentences), sentences)
	}

	if !EndsWithTerminator(sentences[0].Text) {
		t.Errorf("first sentence should end with terminator: %q", sentences[0].Text)
	}
	if !EndsWithTerminator(sentences[1].Text) {
		t.Errorf("second sentence should end with terminator: %q", sentences[1].Text)
	}
	if EndsWithTerminator(sentences[2].Text) {
		t.Errorf("fragment should not end with terminator: %q", sentences[2].Text)
	}

	if sentences[0].TokenCount < 3 {
		t.Errorf("first sentence token count = %d, want >= 3", sentences[0].TokenCount)
	}
}

func TestSplitSentencesCJKTerminators(t *testing.T) {
	sentences := SplitSentences("最初の文です。次の文です。")
	if len(sentences) != 2 {
		t.Fatalf("expected 2 sentences, got %d", len(sentences))
	}
	for _, s := range sentences {
		if !EndsWithTerminator(s.Text) {
			t.Errorf("sentence should end with terminator: %q", s.Text)
		}
	}
}

func TestSplitSentencesEmpty(t *testing.T) {
	if got := SplitSentences(""); got != nil {
		t.Errorf("SplitSentences(\"\") = %+v, want nil", got)
	}
	if got := SplitSentences("   "); got != nil {
		t.Errorf("SplitSentences(whitespace) = %+v, want nil", got)
	}
}

func TestEndsWithTerminator(t *testing.T) {
	tests := []struct {
		text     string
		expected bool
	}{
		{"Done.", true},
		{"Done!  ", true},
		{"Really?", true},
		{"終わり。", true},
		{"終わり！", true},
		{"終わり？", true},
		{"Not done", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := EndsWithTerminator(tt.text); got != tt.expected {
			t.Errorf("EndsWithTerminator(%q) = %v, want %v", tt.text, got, tt.expected)
		}
	}
}
