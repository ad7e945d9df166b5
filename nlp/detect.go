package nlp

import (
	"fmt"
	"strings"
	"sync"

	"github.com/pemistahl/lingua-go"
)

// Identifier maps a text sample to an ISO 639-1 language code. Implementations
// may fail on degenerate samples; callers recover by defaulting, never by
// propagating the error per-document.
type Identifier interface {
	Identify(sample string) (string, error)
}

// DetectLanguage runs an identifier over a sample and applies the recovery
// contract: any failure, including an empty sample, yields the default
// language code. The second return value reports whether the default was
// substituted.
func DetectLanguage(id Identifier, sample string) (string, bool) {
	if id == nil {
		return DefaultLanguage, true
	}
	code, err := id.Identify(sample)
	if err != nil || code == "" {
		return DefaultLanguage, true
	}
	return code, false
}

// StatisticalIdentifier identifies languages with lingua's n-gram models,
// restricted to the supported-language set. Detection is comparatively
// expensive to initialize, so the model is built once, lazily.
type StatisticalIdentifier struct {
	once     sync.Once
	detector lingua.LanguageDetector
}

// NewStatisticalIdentifier creates an identifier backed by lingua.
func NewStatisticalIdentifier() *StatisticalIdentifier {
	return &StatisticalIdentifier{}
}

// Identify returns the ISO 639-1 code for the sample's most likely language.
func (s *StatisticalIdentifier) Identify(sample string) (string, error) {
	if strings.TrimSpace(sample) == "" {
		return "", fmt.Errorf("empty language sample")
	}

	s.once.Do(func() {
		s.detector = lingua.NewLanguageDetectorBuilder().
			FromLanguages(lingua.English, lingua.Spanish, lingua.Japanese).
			Build()
	})

	detected, ok := s.detector.DetectLanguageOf(sample)
	if !ok {
		return "", fmt.Errorf("language detection inconclusive")
	}
	return strings.ToLower(detected.IsoCode639_1().String()), nil
}

// ScriptIdentifier identifies languages purely from Unicode script membership.
// It cannot distinguish languages sharing a script (English vs Spanish both
// resolve to the default), but it needs no models and never misfires on CJK
// text. It serves as the cheap fallback behind the statistical identifier.
type ScriptIdentifier struct{}

// Identify maps the sample's dominant script to a language code.
func (ScriptIdentifier) Identify(sample string) (string, error) {
	switch DetectScript(sample) {
	case ScriptCJK:
		return "ja", nil
	case ScriptLatin:
		return DefaultLanguage, nil
	default:
		return "", fmt.Errorf("no recognizable script in sample")
	}
}

// ChainIdentifier tries identifiers in order, returning the first success.
type ChainIdentifier []Identifier

// Identify returns the first successful identification, or the last error.
func (c ChainIdentifier) Identify(sample string) (string, error) {
	var lastErr error
	for _, id := range c {
		code, err := id.Identify(sample)
		if err == nil {
			return code, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = fmt.Errorf("no identifiers configured")
	}
	return "", lastErr
}

// DefaultIdentifier returns the identifier used when callers do not supply
// one: statistical detection with a script-based fallback.
func DefaultIdentifier() Identifier {
	return ChainIdentifier{NewStatisticalIdentifier(), ScriptIdentifier{}}
}
