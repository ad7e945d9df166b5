package contour

import "strings"

// WarningCode identifies a class of non-fatal processing issue.
type WarningCode int

const (
	// WarnLanguageDefaulted means language identification failed or was
	// inconclusive and the default language was substituted
	WarnLanguageDefaulted WarningCode = iota + 1

	// WarnCalibrationFallback means per-document font calibration found no
	// usable size distribution and the fixed font table was used instead
	WarnCalibrationFallback
)

// String returns a short identifier for the warning code.
func (c WarningCode) String() string {
	switch c {
	case WarnLanguageDefaulted:
		return "language-defaulted"
	case WarnCalibrationFallback:
		return "calibration-fallback"
	default:
		return "unknown"
	}
}

// Warning describes a non-fatal issue encountered during extraction.
// Warnings never abort a document; they accompany an otherwise valid result.
type Warning struct {
	Code    WarningCode
	Message string
}

// String returns the warning as "code: message".
func (w Warning) String() string {
	return w.Code.String() + ": " + w.Message
}

// FormatWarnings renders a warning list as a single semicolon-separated
// string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, 0, len(warnings))
	for _, w := range warnings {
		parts = append(parts, w.String())
	}
	return strings.Join(parts, "; ")
}
