package translator

import (
	"sync"

	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/registry"
)

var (
	defaultOnce sync.Once
	defaultTr   *Translator
)

// Default returns the translator bound to the built-in registry.
func Default() *Translator {
	defaultOnce.Do(func() {
		defaultTr = New(registry.Default())
	})
	return defaultTr
}

// Translate runs the full detect-parse-map-generate pipeline. A parse error
// yields a failed result with diagnostics and no connection string; nothing
// partial is fabricated.
func (t *Translator) Translate(input string, target driver.ID, opts Options) TranslationResult {
	parsed := t.Parse(input, opts)
	res := TranslationResult{
		SourceDriver: parsed.Driver,
		TargetDriver: target,
		Confidence:   parsed.Confidence,
		Errors:       parsed.Errors,
		Warnings:     parsed.Warnings,
	}
	if parsed.HasErrors() {
		return res
	}

	mr := t.MapKeywords(parsed, target, opts)
	res.Success = true
	res.ConnectionString = t.Generate(mr, opts)
	res.Translated = mr.Translated
	res.Untranslatable = mr.Untranslatable
	res.Warnings = append(res.Warnings, mr.Warnings...)
	return res
}

// TranslateAll fans the pipeline out across every supported driver. The
// source is detected (or forced) once so all seven results agree on it.
func (t *Translator) TranslateAll(input string, opts Options) []TranslationResult {
	parsed := t.Parse(input, opts)
	results := make([]TranslationResult, 0, len(driver.All))

	for _, target := range driver.All {
		res := TranslationResult{
			SourceDriver: parsed.Driver,
			TargetDriver: target,
			Confidence:   parsed.Confidence,
			Errors:       parsed.Errors,
			Warnings:     append([]Warning(nil), parsed.Warnings...),
		}
		if !parsed.HasErrors() {
			mr := t.MapKeywords(parsed, target, opts)
			res.Success = true
			res.ConnectionString = t.Generate(mr, opts)
			res.Translated = mr.Translated
			res.Untranslatable = mr.Untranslatable
			res.Warnings = append(res.Warnings, mr.Warnings...)
		}
		results = append(results, res)
	}
	return results
}

// Translate is the package-level convenience over the default registry.
func Translate(input string, target driver.ID, opts Options) TranslationResult {
	return Default().Translate(input, target, opts)
}

// TranslateAll is the package-level convenience over the default registry.
func TranslateAll(input string, opts Options) []TranslationResult {
	return Default().TranslateAll(input, opts)
}

// Parse is the package-level convenience over the default registry.
func Parse(input string, opts Options) *ParsedConnectionString {
	return Default().Parse(input, opts)
}
