// Package translator implements the four-stage translation pipeline:
// detect the source dialect, parse the string into canonical pairs, map the
// pairs onto a target dialect, and generate the target's textual form.
// Everything is a pure function of the input plus the static registry, so
// concurrent callers need no coordination.
package translator

import "fmt"

// ErrorCode identifies a fatal parse failure. Any error short-circuits
// translation: no output string is fabricated for input we cannot read.
type ErrorCode string

const (
	ErrEmptyInput         ErrorCode = "EMPTY_INPUT"
	ErrInputTooLarge      ErrorCode = "INPUT_TOO_LARGE"
	ErrUnmatchedQuote     ErrorCode = "UNMATCHED_QUOTE"
	ErrUnmatchedBrace     ErrorCode = "UNMATCHED_BRACE"
	ErrInvalidSyntax      ErrorCode = "INVALID_SYNTAX"
	ErrUnrecognizedFormat ErrorCode = "UNRECOGNIZED_FORMAT"
)

// WarningCode identifies a non-fatal diagnostic. Warnings never block
// output; they ride along on a successful result.
type WarningCode string

const (
	WarnUnknownKeyword      WarningCode = "UNKNOWN_KEYWORD"
	WarnDuplicateKeyword    WarningCode = "DUPLICATE_KEYWORD"
	WarnMissingRequired     WarningCode = "MISSING_REQUIRED"
	WarnDeprecatedKeyword   WarningCode = "DEPRECATED_KEYWORD"
	WarnConflictingKeywords WarningCode = "CONFLICTING_KEYWORDS"
	WarnKeywordOmitted      WarningCode = "KEYWORD_OMITTED"
	WarnValueNormalized     WarningCode = "VALUE_NORMALIZED"
	WarnDefaultDiffers      WarningCode = "DEFAULT_DIFFERS"
	WarnBehaviorDiffers     WarningCode = "BEHAVIOR_DIFFERS"
	WarnPythonBlocked       WarningCode = "PYTHON_BLOCKED"
)

// ParseError is a fatal diagnostic with enough position data to point at
// the offending character.
type ParseError struct {
	Code       ErrorCode `json:"code" yaml:"code"`
	Message    string    `json:"message" yaml:"message"`
	Position   int       `json:"position,omitempty" yaml:"position,omitempty"`
	Suggestion string    `json:"suggestion,omitempty" yaml:"suggestion,omitempty"`
}

func (e ParseError) String() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Suggestion)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Warning is a non-fatal diagnostic attached to a parse or mapping result.
type Warning struct {
	Code    WarningCode `json:"code" yaml:"code"`
	Keyword string      `json:"keyword,omitempty" yaml:"keyword,omitempty"`
	Message string      `json:"message" yaml:"message"`
}

func (w Warning) String() string {
	if w.Keyword != "" {
		return fmt.Sprintf("%s (%s): %s", w.Code, w.Keyword, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// UntranslatableReason classifies why a keyword could not be carried over.
type UntranslatableReason string

const (
	// ReasonNotSupported: the target driver has no representation at all.
	ReasonNotSupported UntranslatableReason = "NOT_SUPPORTED"
	// ReasonDriverSpecific: only the source driver can express the keyword.
	ReasonDriverSpecific UntranslatableReason = "DRIVER_SPECIFIC"
	// ReasonUnknown: the keyword never resolved to a registry entry.
	ReasonUnknown UntranslatableReason = "UNKNOWN"
	// ReasonDeprecated: the target representation exists but is deprecated.
	ReasonDeprecated UntranslatableReason = "DEPRECATED"
	// ReasonBlockedAllowlist: pyodbc's restriction list forbids the keyword.
	ReasonBlockedAllowlist UntranslatableReason = "BLOCKED_ALLOWLIST"
)
