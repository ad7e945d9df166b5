package model

import (
	"encoding/json"
	"fmt"
	"strings"
)

// HeadingLevel represents the hierarchical level of a heading (H1-H3)
type HeadingLevel int

const (
	LevelNone HeadingLevel = iota
	LevelH1                // H1 - Main section
	LevelH2                // H2 - Subsection
	LevelH3                // H3 - Sub-subsection
)

// String returns a string representation of the heading level
func (l HeadingLevel) String() string {
	switch l {
	case LevelH1:
		return "H1"
	case LevelH2:
		return "H2"
	case LevelH3:
		return "H3"
	default:
		return "none"
	}
}

// Depth returns the numeric depth of the level (1 for H1), or 0 for LevelNone.
func (l HeadingLevel) Depth() int {
	if l >= LevelH1 && l <= LevelH3 {
		return int(l)
	}
	return 0
}

// MarshalJSON encodes the level as its string form ("H1", "H2", "H3").
func (l HeadingLevel) MarshalJSON() ([]byte, error) {
	return json.Marshal(l.String())
}

// UnmarshalJSON decodes a level from its string form.
func (l *HeadingLevel) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	switch s {
	case "H1":
		*l = LevelH1
	case "H2":
		*l = LevelH2
	case "H3":
		*l = LevelH3
	case "none", "":
		*l = LevelNone
	default:
		return fmt.Errorf("unknown heading level %q", s)
	}
	return nil
}

// HeadingEntry is one classified heading in a document outline.
//
// Page is 0-based by contract: spans carry 1-based page numbers, and the
// classifier stores span.Page - 1 here. Callers must not shift it again.
type HeadingEntry struct {
	Level HeadingLevel `json:"level"`
	Text  string       `json:"text"`
	Page  int          `json:"page"`
}

// DocumentResult is the sole externally visible artifact produced for one
// input document. It is write-once: construct it, serialize it, never mutate it.
type DocumentResult struct {
	Title    string         `json:"title"`
	Outline  []HeadingEntry `json:"outline"`
	Language string         `json:"language"`
}

// MarkdownTOC returns the outline as a markdown list, indented by level.
func (r *DocumentResult) MarkdownTOC() string {
	if r == nil || len(r.Outline) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, entry := range r.Outline {
		depth := entry.Level.Depth()
		if depth < 1 {
			depth = 1
		}
		sb.WriteString(strings.Repeat("  ", depth-1))
		sb.WriteString("- ")
		sb.WriteString(entry.Text)
		sb.WriteString("\n")
	}

	return sb.String()
}

// HeadingsAtLevel returns the outline entries at a specific level
func (r *DocumentResult) HeadingsAtLevel(level HeadingLevel) []HeadingEntry {
	if r == nil {
		return nil
	}

	var result []HeadingEntry
	for _, entry := range r.Outline {
		if entry.Level == level {
			result = append(result, entry)
		}
	}
	return result
}
