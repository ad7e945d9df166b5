package nlp

import "golang.org/x/text/language"

// DefaultLanguage is the code substituted whenever identification fails or a
// language has no registered profile.
const DefaultLanguage = "en"

// Profile describes the orthographic capabilities of a language's script.
// It is the single point of extension for new languages: predicates consult
// the profile instead of branching on language codes.
type Profile struct {
	// Code is the canonical ISO 639-1 code
	Code string

	// Tag is the BCP 47 language tag
	Tag language.Tag

	// HasCase is true for scripts with an uppercase/lowercase distinction.
	// Case-based heuristics are defined to be vacuously false without it.
	HasCase bool

	// CountWords is true when shortness checks should count
	// whitespace-delimited words in addition to characters. Word counting is
	// meaningless for scripts written without word separators.
	CountWords bool
}

// profiles holds the supported language set. Keyed by canonical base code.
var profiles = map[string]Profile{
	"en": {Code: "en", Tag: language.English, HasCase: true, CountWords: true},
	"es": {Code: "es", Tag: language.Spanish, HasCase: true, CountWords: true},
	"ja": {Code: "ja", Tag: language.Japanese, HasCase: false, CountWords: false},
}

// Supported returns the set of language codes with registered profiles.
func Supported() []string {
	codes := make([]string, 0, len(profiles))
	for code := range profiles {
		codes = append(codes, code)
	}
	return codes
}

// IsSupported reports whether code resolves to a registered profile.
func IsSupported(code string) bool {
	_, ok := profiles[Normalize(code)]
	return ok
}

// Normalize reduces a language code or BCP 47 tag to its canonical base code
// ("jpn" and "ja-JP" both become "ja"). Unparseable input is returned as-is so
// the caller's fallback logic still sees the original code.
func Normalize(code string) string {
	tag, err := language.Parse(code)
	if err != nil {
		return code
	}
	base, conf := tag.Base()
	if conf == language.No {
		return code
	}
	return base.String()
}

// ProfileFor returns the profile for a language code, falling back to the
// default (English) profile for unsupported codes.
func ProfileFor(code string) Profile {
	if p, ok := profiles[Normalize(code)]; ok {
		return p
	}
	return profiles[DefaultLanguage]
}
