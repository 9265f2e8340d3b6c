package translator

import "github.com/connstr/connstr-cli/internal/driver"

// Confidence grades a detection outcome.
type Confidence string

const (
	ConfidenceHigh   Confidence = "high"
	ConfidenceMedium Confidence = "medium"
	ConfidenceLow    Confidence = "low"
	// ConfidenceManual marks a caller-forced source driver.
	ConfidenceManual Confidence = "manual"
)

// Detection is the detector's verdict on a raw input.
type Detection struct {
	Driver         driver.ID  `json:"driver" yaml:"driver"`
	Confidence     Confidence `json:"confidence" yaml:"confidence"`
	MatchedPattern string     `json:"matchedPattern,omitempty" yaml:"matchedPattern,omitempty"`
}

// ParsedValue is one keyword occurrence as it appeared in the input.
type ParsedValue struct {
	// Raw is the value substring exactly as typed, quoting included.
	Raw string `json:"raw" yaml:"raw"`
	// Normalized is the trimmed, de-escaped value used for mapping.
	Normalized string `json:"normalized" yaml:"normalized"`
	// Position is the byte offset of the key within the input.
	Position int `json:"position" yaml:"position"`
	// WasQuoted records whether the value arrived quoted or braced.
	WasQuoted bool `json:"wasQuoted" yaml:"wasQuoted"`
	// OriginalKeyword preserves the exact user-typed key for diagnostics
	// and for passing unknown keys through untouched.
	OriginalKeyword string `json:"originalKeyword" yaml:"originalKeyword"`
}

// JDBCURL holds the pieces pre-extracted from a jdbc:sqlserver:// prefix.
type JDBCURL struct {
	Host     string `json:"host" yaml:"host"`
	Port     int    `json:"port" yaml:"port"`
	Instance string `json:"instance,omitempty" yaml:"instance,omitempty"`
}

// ParsedConnectionString is the parser's output: an insertion-ordered map
// of canonical id to first-occurrence value, plus diagnostics.
type ParsedConnectionString struct {
	Driver        driver.ID              `json:"driver" yaml:"driver"`
	Confidence    Confidence             `json:"confidence" yaml:"confidence"`
	Order         []string               `json:"order" yaml:"order"`
	Pairs         map[string]ParsedValue `json:"pairs" yaml:"pairs"`
	OriginalInput string                 `json:"originalInput" yaml:"originalInput"`
	Errors        []ParseError           `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings      []Warning              `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	JDBC          *JDBCURL               `json:"jdbcUrl,omitempty" yaml:"jdbcUrl,omitempty"`
}

// Get returns the parsed value for a canonical id.
func (p *ParsedConnectionString) Get(id string) (ParsedValue, bool) {
	v, ok := p.Pairs[id]
	return v, ok
}

// set records a pair unless the id was already seen; it reports whether the
// pair was inserted. First occurrence wins.
func (p *ParsedConnectionString) set(id string, v ParsedValue) bool {
	if p.Pairs == nil {
		p.Pairs = make(map[string]ParsedValue)
	}
	if _, dup := p.Pairs[id]; dup {
		return false
	}
	p.Pairs[id] = v
	p.Order = append(p.Order, id)
	return true
}

// HasErrors reports whether any fatal error was recorded.
func (p *ParsedConnectionString) HasErrors() bool {
	return len(p.Errors) > 0
}

// TranslatedKeyword records one source pair carried into the target.
type TranslatedKeyword struct {
	CanonicalID      string `json:"canonicalId" yaml:"canonicalId"`
	SourceKeyword    string `json:"sourceKeyword" yaml:"sourceKeyword"`
	SourceValue      string `json:"sourceValue" yaml:"sourceValue"`
	TargetKeyword    string `json:"targetKeyword" yaml:"targetKeyword"`
	TargetValue      string `json:"targetValue" yaml:"targetValue"`
	ValueTransformed bool   `json:"valueTransformed" yaml:"valueTransformed"`
	// FromDefault marks pairs injected by the IncludeDefaults option.
	FromDefault bool `json:"fromDefault,omitempty" yaml:"fromDefault,omitempty"`
}

// UntranslatableKeyword records one source pair that could not be carried.
type UntranslatableKeyword struct {
	Keyword string               `json:"keyword" yaml:"keyword"`
	Value   string               `json:"value" yaml:"value"`
	Reason  UntranslatableReason `json:"reason" yaml:"reason"`
	Detail  string               `json:"detail,omitempty" yaml:"detail,omitempty"`
}

// MappingResult is the mapper's output for one target driver.
type MappingResult struct {
	Target         driver.ID               `json:"target" yaml:"target"`
	Translated     []TranslatedKeyword     `json:"translated" yaml:"translated"`
	Untranslatable []UntranslatableKeyword `json:"untranslatable,omitempty" yaml:"untranslatable,omitempty"`
	Warnings       []Warning               `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	// KeywordOrder lists canonical ids in source order for downstream
	// ordering policies.
	KeywordOrder []string `json:"keywordOrder" yaml:"keywordOrder"`
}

// TranslationResult is the public outcome handed to callers.
type TranslationResult struct {
	Success          bool                    `json:"success" yaml:"success"`
	SourceDriver     driver.ID               `json:"sourceDriver" yaml:"sourceDriver"`
	TargetDriver     driver.ID               `json:"targetDriver" yaml:"targetDriver"`
	Confidence       Confidence              `json:"confidence" yaml:"confidence"`
	ConnectionString string                  `json:"connectionString" yaml:"connectionString"`
	Translated       []TranslatedKeyword     `json:"translated,omitempty" yaml:"translated,omitempty"`
	Untranslatable   []UntranslatableKeyword `json:"untranslatable,omitempty" yaml:"untranslatable,omitempty"`
	Warnings         []Warning               `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Errors           []ParseError            `json:"errors,omitempty" yaml:"errors,omitempty"`
}

// ValidationResult is the outcome of ValidateSyntax or Validate.
type ValidationResult struct {
	IsValid  bool         `json:"isValid" yaml:"isValid"`
	Errors   []ParseError `json:"errors,omitempty" yaml:"errors,omitempty"`
	Warnings []Warning    `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}
