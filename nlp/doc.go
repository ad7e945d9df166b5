// Package nlp provides the linguistic heuristics behind heading
// classification: narrow, stateless predicates over text strings,
// parameterized by language.
//
// # Predicates
//
// The package-level functions answer single questions about a span of text:
//
//   - [IsFullSentence] - does the text contain a complete sentence?
//   - [IsAllCaps] - is every letter uppercase?
//   - [IsTitleCase] - is every alphabetic word capitalized?
//   - [StartsWithBullet] - does the text open with a list bullet glyph?
//   - [IsShort] - is the text within heading-sized bounds?
//   - [UppercaseRatio] - what fraction of letters are uppercase?
//   - [StartsWithNumbering] - does the text open with "1.2", "IV.", "A)"?
//
// All case-based predicates degrade gracefully for caseless scripts (CJK):
// they return false or zero rather than erroring.
//
// # Script profiles and engines
//
// Per-language behavior lives in a [Profile] (has case? count words?) carried
// by an [Engine]. Engines are cached by a [Resolver]; unsupported codes and
// construction failures fall back to the English engine. The package-level
// predicates use a process-wide resolver.
//
// # Language identification
//
// The [Identifier] interface maps a text sample to a language code.
// [DefaultIdentifier] chains lingua's statistical detector with a
// Unicode-script fallback; [DetectLanguage] applies the never-fail recovery
// contract on top of any identifier.
package nlp
