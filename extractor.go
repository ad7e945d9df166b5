package contour

import (
	"fmt"

	"github.com/tsawler/contour/model"
	"github.com/tsawler/contour/nlp"
	"github.com/tsawler/contour/outline"
	"github.com/tsawler/contour/spans"
)

// sourceKind identifies how an Extractor obtains its spans.
type sourceKind int

const (
	sourceProvider sourceKind = iota
	sourceJSON
	sourceHTML
)

// Extractor provides a fluent interface for extracting a document outline
// from spans. Each configuration method returns a new Extractor instance,
// making it safe for concurrent use and allowing method chaining.
type Extractor struct {
	// Source
	filename string
	kind     sourceKind
	provider spans.Provider

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
// This ensures immutability - each chain method returns a new instance.
func (e *Extractor) clone() *Extractor {
	return &Extractor{
		filename: e.filename,
		kind:     e.kind,
		provider: e.provider,
		options:  e.options.clone(),
		err:      e.err,
		warnings: append([]Warning(nil), e.warnings...),
	}
}

// warn records a non-fatal issue.
func (e *Extractor) warn(code WarningCode, format string, args ...any) {
	e.warnings = append(e.warnings, Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	})
}

// Language forces a language code, skipping identification. Codes are
// normalized ("jpn" becomes "ja"); unsupported codes still classify with the
// default engine but are reported as given.
func (e *Extractor) Language(code string) *Extractor {
	newExt := e.clone()
	newExt.options.language = code
	return newExt
}

// Calibrate derives the font-level table from the document's own font-size
// distribution instead of the fixed default table. Documents without usable
// sizes fall back to the configured table with a warning.
func (e *Extractor) Calibrate() *Extractor {
	newExt := e.clone()
	newExt.options.calibrate = true
	return newExt
}

// FontLevels replaces the font-size-to-level table.
func (e *Extractor) FontLevels(levels outline.FontLevelMap) *Extractor {
	newExt := e.clone()
	newExt.options.levels = levels
	return newExt
}

// TitleTolerance overrides the title band size window.
func (e *Extractor) TitleTolerance(tolerance float64) *Extractor {
	newExt := e.clone()
	newExt.options.titleTolerance = tolerance
	return newExt
}

// Identifier installs a custom language identifier.
func (e *Extractor) Identifier(id nlp.Identifier) *Extractor {
	newExt := e.clone()
	newExt.options.identifier = id
	return newExt
}

// Resolver installs a custom language-engine resolver. Useful when a caller
// wants cache isolation; the shared default is otherwise fine to reuse
// across concurrent documents.
func (e *Extractor) Resolver(r *nlp.Resolver) *Extractor {
	newExt := e.clone()
	newExt.options.resolver = r
	return newExt
}

// ensureProvider materializes the span provider for file-backed sources.
func (e *Extractor) ensureProvider() error {
	if e.err != nil {
		return e.err
	}
	if e.provider != nil {
		return nil
	}
	if e.filename == "" {
		return fmt.Errorf("no span source specified")
	}

	var err error
	switch e.kind {
	case sourceJSON:
		e.provider, err = spans.OpenJSON(e.filename)
	case sourceHTML:
		e.provider, err = spans.OpenHTML(e.filename)
	default:
		err = fmt.Errorf("no span source specified")
	}
	return err
}

// Spans returns the raw span list from the configured source.
func (e *Extractor) Spans() ([]model.Span, error) {
	ext := e.clone()
	if err := ext.ensureProvider(); err != nil {
		return nil, err
	}
	return ext.provider.Spans()
}

// Result runs the full pipeline - load spans, resolve language, detect the
// title, classify the outline - and returns the document result. Warnings
// indicate non-fatal issues such as a defaulted language; an error means the
// span source itself was unusable.
//
// Degenerate documents produce valid results: an empty first page yields an
// empty title, and spans matching no font level yield an empty outline.
func (e *Extractor) Result() (*model.DocumentResult, []Warning, error) {
	ext := e.clone()

	if err := ext.ensureProvider(); err != nil {
		return nil, ext.warnings, err
	}
	spanList, err := ext.provider.Spans()
	if err != nil {
		return nil, ext.warnings, fmt.Errorf("loading spans: %w", err)
	}

	lang := ext.options.language
	if lang == "" {
		sample := model.SampleText(spanList, languageSampleSpans)
		var defaulted bool
		lang, defaulted = nlp.DetectLanguage(ext.options.identifier, sample)
		if defaulted {
			ext.warn(WarnLanguageDefaulted, "language identification failed, using %q", lang)
		}
	}
	lang = nlp.Normalize(lang)
	engine := ext.options.resolver.Engine(lang)

	title := outline.NewTitleDetectorWithTolerance(ext.options.titleTolerance).Detect(spanList)

	config := outline.DefaultConfig()
	config.Levels = ext.options.levels
	if ext.options.calibrate {
		if derived := outline.Calibrate(spanList); derived != nil {
			config.Levels = derived
		} else {
			ext.warn(WarnCalibrationFallback, "no usable font sizes, using configured table")
		}
	}

	entries := outline.NewEngineWithConfig(config).Extract(spanList, engine)

	result := &model.DocumentResult{
		Title:    title,
		Outline:  entries,
		Language: lang,
	}
	return result, ext.warnings, nil
}

// Title runs the pipeline and returns only the document title.
func (e *Extractor) Title() (string, []Warning, error) {
	result, warnings, err := e.Result()
	if err != nil {
		return "", warnings, err
	}
	return result.Title, warnings, nil
}

// Outline runs the pipeline and returns only the heading list.
func (e *Extractor) Outline() ([]model.HeadingEntry, []Warning, error) {
	result, warnings, err := e.Result()
	if err != nil {
		return nil, warnings, err
	}
	return result.Outline, warnings, nil
}
