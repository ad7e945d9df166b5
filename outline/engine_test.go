package outline

import (
	"strings"
	"testing"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/nlp"
)

// headingSpan creates a span for candidate tests
func headingSpan(text string, size float64, page int) model.Span {
	return model.Span{Text: text, Size: size, Page: page}
}

func TestIsCandidate(t *testing.T) {
	engine := NewEngine()
	en := nlp.EngineFor("en")

	tests := []struct {
		name     string
		text     string
		expected bool
	}{
		{"all caps", "INTRODUCTION", true},
		{"title case", "Related Work", true},
		{"majority uppercase", "PDF HOWTO Guide", true},
		{"full sentence excluded", "This is a complete sentence about something.", false},
		{"bullet excluded", "• INTRODUCTION", false},
		{"lowercase excluded", "just some lowercase text", false},
		{"empty excluded", "", false},
		{"too long excluded", strings.Repeat("WORD ", 17), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			span := headingSpan(tt.text, 20.04, 1)
			if got := engine.IsCandidate(span, en); got != tt.expected {
				t.Errorf("IsCandidate(%q) = %v, want %v", tt.text, got, tt.expected)
			}
		})
	}
}

func TestIsCandidateSentenceExcludedRegardlessOfCase(t *testing.T) {
	engine := NewEngine()
	en := nlp.EngineFor("en")

	// All caps would otherwise qualify; the sentence check wins
	span := headingSpan("THIS IS A COMPLETE SENTENCE ABOUT SOMETHING.", 20.04, 1)
	if engine.IsCandidate(span, en) {
		t.Error("a complete sentence must never be a heading candidate")
	}
}

func TestExtractOutline(t *testing.T) {
	engine := NewEngine()
	en := nlp.EngineFor("en")

	spans := []model.Span{
		headingSpan("INTRODUCTION", 20.04, 1),
		headingSpan("Background And Context", 15.96, 2),
		headingSpan("Details", 12.0, 2),
		headingSpan("This paragraph explains the approach in detail.", 12.0, 2),
		headingSpan("unrelated body text", 10.0, 3),
		headingSpan("CONCLUSION", 20.04, 4),
	}

	outline := engine.Extract(spans, en)
	if len(outline) != 4 {
		t.Fatalf("expected 4 entries, got %d: %+v", len(outline), outline)
	}

	expected := []model.HeadingEntry{
		{Level: model.LevelH1, Text: "INTRODUCTION", Page: 0},
		{Level: model.LevelH2, Text: "Background And Context", Page: 1},
		{Level: model.LevelH3, Text: "Details", Page: 1},
		{Level: model.LevelH1, Text: "CONCLUSION", Page: 3},
	}
	for i, want := range expected {
		if outline[i] != want {
			t.Errorf("entry %d = %+v, want %+v", i, outline[i], want)
		}
	}
}

func TestExtractPagesAreZeroBased(t *testing.T) {
	engine := NewEngine()
	en := nlp.EngineFor("en")

	outline := engine.Extract([]model.Span{headingSpan("INTRODUCTION", 20.04, 1)}, en)
	if len(outline) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(outline))
	}
	if outline[0].Page != 0 {
		t.Errorf("page = %d, want 0", outline[0].Page)
	}
}

func TestExtractNoMatchingLevels(t *testing.T) {
	engine := NewEngine()
	en := nlp.EngineFor("en")

	spans := []model.Span{
		headingSpan("PERFECTLY GOOD HEADING", 13.4, 1), // no table entry
	}

	outline := engine.Extract(spans, en)
	if len(outline) != 0 {
		t.Errorf("expected empty outline, got %+v", outline)
	}
	if outline == nil {
		t.Error("empty outline should be a non-nil slice")
	}
}

func TestExtractKeepsDuplicatesAndLevelGaps(t *testing.T) {
	engine := NewEngine()
	en := nlp.EngineFor("en")

	spans := []model.Span{
		headingSpan("Appendix", 12.0, 5), // H3 with no preceding H1/H2
		headingSpan("NOTES", 20.04, 6),
		headingSpan("NOTES", 20.04, 6), // adjacent duplicate survives
	}

	outline := engine.Extract(spans, en)
	if len(outline) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(outline))
	}
	if outline[0].Level != model.LevelH3 {
		t.Errorf("leading H3 should survive without preceding H1/H2, got %v", outline[0].Level)
	}
	if outline[1] != outline[2] {
		t.Error("adjacent duplicate headings must both survive")
	}
}

func TestExtractCaselessScript(t *testing.T) {
	engine := NewEngine()
	ja := nlp.EngineFor("ja")

	spans := []model.Span{
		headingSpan("はじめに", 20.04, 1),
		headingSpan("この文書は第一四半期の業績をまとめたものです。", 12.0, 1),
	}

	outline := engine.Extract(spans, ja)

	// Case heuristics are vacuously false for Japanese, so even the real
	// heading fails the emphasis clause. The sentence is excluded twice over.
	if len(outline) != 0 {
		t.Errorf("expected empty outline for caseless-script gate, got %+v", outline)
	}
}

func TestExtractWithCalibratedLevels(t *testing.T) {
	spans := []model.Span{
		headingSpan("Grand Title", 30.0, 1),
		headingSpan("OVERVIEW", 22.0, 1),
		headingSpan("Part One", 17.0, 2),
		headingSpan("body text in the usual size, set as a full sentence it is not.", 11.0, 2),
	}

	config := DefaultConfig()
	config.Levels = Calibrate(spans)
	engine := NewEngineWithConfig(config)
	en := nlp.EngineFor("en")

	outline := engine.Extract(spans, en)
	if len(outline) != 2 {
		t.Fatalf("expected 2 entries, got %d: %+v", len(outline), outline)
	}
	if outline[0].Level != model.LevelH1 || outline[0].Text != "OVERVIEW" {
		t.Errorf("entry 0 = %+v", outline[0])
	}
	if outline[1].Level != model.LevelH2 || outline[1].Text != "Part One" {
		t.Errorf("entry 1 = %+v", outline[1])
	}
}
