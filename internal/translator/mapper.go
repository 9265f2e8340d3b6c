package translator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/registry"
)

// MapKeywords rewrites a parsed pair set into target-driver keywords,
// classifying everything that cannot cross over.
func (t *Translator) MapKeywords(p *ParsedConnectionString, target driver.ID, opts Options) *MappingResult {
	mr := &MappingResult{
		Target:       target,
		KeywordOrder: append([]string(nil), p.Order...),
	}

	for _, id := range p.Order {
		pv := p.Pairs[id]
		kw, known := t.reg.KeywordByID(id)

		if !known {
			if opts.PreserveUnknown {
				mr.Translated = append(mr.Translated, TranslatedKeyword{
					CanonicalID:   id,
					SourceKeyword: pv.OriginalKeyword,
					SourceValue:   pv.Normalized,
					TargetKeyword: pv.OriginalKeyword,
					TargetValue:   pv.Normalized,
				})
			} else {
				mr.Untranslatable = append(mr.Untranslatable, UntranslatableKeyword{
					Keyword: pv.OriginalKeyword,
					Value:   pv.Normalized,
					Reason:  ReasonUnknown,
					Detail:  "not a recognized keyword in any driver",
				})
				mr.Warnings = append(mr.Warnings, omittedWarning(pv.OriginalKeyword, target, "it is not a recognized keyword"))
			}
			continue
		}

		rep, hasRep := kw.Rep(target)

		// Keywords that live in the target's URL or prefix rather than its
		// property list still translate; the generator places them.
		if target == driver.JDBC && id == "server" {
			mr.Translated = append(mr.Translated, TranslatedKeyword{
				CanonicalID:   id,
				SourceKeyword: pv.OriginalKeyword,
				SourceValue:   pv.Normalized,
				TargetKeyword: "serverName",
				TargetValue:   pv.Normalized,
			})
			continue
		}
		if target == driver.OLEDB && id == "provider" {
			mr.Translated = append(mr.Translated, TranslatedKeyword{
				CanonicalID:   id,
				SourceKeyword: pv.OriginalKeyword,
				SourceValue:   pv.Normalized,
				TargetKeyword: "Provider",
				TargetValue:   pv.Normalized,
			})
			continue
		}

		if !hasRep || rep.Name == "" || rep.Deprecated {
			reason, detail := t.classify(p.Driver, target, id, kw, rep, hasRep)
			mr.Untranslatable = append(mr.Untranslatable, UntranslatableKeyword{
				Keyword: pv.OriginalKeyword,
				Value:   pv.Normalized,
				Reason:  reason,
				Detail:  detail,
			})
			if reason == ReasonBlockedAllowlist {
				mr.Warnings = append(mr.Warnings, Warning{
					Code:    WarnPythonBlocked,
					Keyword: pv.OriginalKeyword,
					Message: fmt.Sprintf("%q is a client-side setting pyodbc cannot forward; configure it in Python instead", pv.OriginalKeyword),
				})
			}
			mr.Warnings = append(mr.Warnings, omittedWarning(pv.OriginalKeyword, target, detail))
			continue
		}

		name := rep.Name
		if opts.PreferShortNames && rep.ShortName != "" {
			name = rep.ShortName
		}

		value, transformed := coerceValue(pv.Normalized, rep, target)
		mr.Translated = append(mr.Translated, TranslatedKeyword{
			CanonicalID:      id,
			SourceKeyword:    pv.OriginalKeyword,
			SourceValue:      pv.Normalized,
			TargetKeyword:    name,
			TargetValue:      value,
			ValueTransformed: transformed,
		})
		if transformed {
			mr.Warnings = append(mr.Warnings, Warning{
				Code:    WarnValueNormalized,
				Keyword: pv.OriginalKeyword,
				Message: fmt.Sprintf("value %q was rewritten as %q for %s", pv.Normalized, value, target.DisplayName()),
			})
		}
		if target == driver.ODBC && id == "encrypt" {
			if b, ok := driver.ParseBool(pv.Normalized); ok && !b {
				mr.Warnings = append(mr.Warnings, Warning{
					Code:    WarnBehaviorDiffers,
					Keyword: pv.OriginalKeyword,
					Message: "ODBC Driver 18 still encrypts the login sequence even with Encrypt=No",
				})
			}
		}
	}

	t.warnDivergingDefaults(p, target, mr)

	if opts.IncludeDefaults {
		t.appendDefaults(p, target, opts, mr)
	}

	switch opts.order() {
	case OrderAlphabetical:
		sort.SliceStable(mr.Translated, func(i, j int) bool {
			return strings.ToLower(mr.Translated[i].TargetKeyword) < strings.ToLower(mr.Translated[j].TargetKeyword)
		})
	case OrderCanonical:
		sort.SliceStable(mr.Translated, func(i, j int) bool {
			return t.reg.CanonicalOrder(mr.Translated[i].CanonicalID) < t.reg.CanonicalOrder(mr.Translated[j].CanonicalID)
		})
	}
	return mr
}

// classify picks the most specific reason a keyword cannot reach the target,
// checked in priority order.
func (t *Translator) classify(source, target driver.ID, id string, kw *registry.Keyword, rep registry.Representation, hasRep bool) (UntranslatableReason, string) {
	if target == driver.Python && registry.IsPythonBlocked(id) {
		return ReasonBlockedAllowlist, "pyodbc does not forward client-side pool and failover settings to the driver"
	}
	if hasRep && rep.Deprecated {
		detail := rep.Deprecation
		if detail == "" {
			detail = fmt.Sprintf("deprecated in %s", target.DisplayName())
		}
		return ReasonDeprecated, detail
	}
	supported := kw.SupportedBy()
	if len(supported) == 1 && supported[0] == source {
		return ReasonDriverSpecific, fmt.Sprintf("only %s understands this keyword", source.DisplayName())
	}
	return ReasonNotSupported, fmt.Sprintf("%s has no equivalent setting", target.DisplayName())
}

// coerceValue rewrites a source value into the target's spelling. Booleans
// take the target's vocabulary; enum-typed targets coerce a true-ish source
// to the representation's primary variant (Integrated Security=True becomes
// SSPI on OLEDB).
func coerceValue(src string, rep registry.Representation, target driver.ID) (string, bool) {
	out := src
	switch rep.Type {
	case registry.TypeEnum:
		if b, ok := driver.ParseBool(src); ok && b && len(rep.EnumValues) > 0 {
			out = rep.EnumValues[0]
		}
	case registry.TypeBoolean:
		if b, ok := driver.ParseBool(src); ok {
			out = target.FormatBool(b)
		}
	}
	return out, !strings.EqualFold(out, src)
}

func omittedWarning(keyword string, target driver.ID, detail string) Warning {
	return Warning{
		Code:    WarnKeywordOmitted,
		Keyword: keyword,
		Message: fmt.Sprintf("%q was omitted from the %s output: %s", keyword, target.DisplayName(), detail),
	}
}

// warnDivergingDefaults flags keywords the input leaves unspecified whose
// silent default changes meaning between source and target.
func (t *Translator) warnDivergingDefaults(p *ParsedConnectionString, target driver.ID, mr *MappingResult) {
	if p.Driver == target {
		return
	}
	for _, kw := range t.reg.Keywords() {
		if _, present := p.Pairs[kw.ID]; present {
			continue
		}
		if !t.reg.IsSupported(kw.ID, p.Driver) || !t.reg.IsSupported(kw.ID, target) {
			continue
		}
		if !t.reg.DoDefaultsDiffer(kw.ID, p.Driver, target) {
			continue
		}
		srcDefault, ok := t.reg.DefaultValue(kw.ID, p.Driver)
		if !ok || srcDefault == "" {
			srcDefault = "unset"
		}
		tgtDefault, ok := t.reg.DefaultValue(kw.ID, target)
		if !ok || tgtDefault == "" {
			tgtDefault = "unset"
		}
		mr.Warnings = append(mr.Warnings, Warning{
			Code:    WarnDefaultDiffers,
			Keyword: kw.Display,
			Message: fmt.Sprintf("%s defaults to %q in %s but %q in %s; leaving it unspecified changes behavior", kw.Display, srcDefault, p.Driver.DisplayName(), tgtDefault, target.DisplayName()),
		})
	}
}

// appendDefaults adds every target-supported keyword the input did not set,
// carrying the target's own default, in canonical order.
func (t *Translator) appendDefaults(p *ParsedConnectionString, target driver.ID, opts Options, mr *MappingResult) {
	for _, kw := range t.reg.Keywords() {
		if _, present := p.Pairs[kw.ID]; present {
			continue
		}
		rep, ok := kw.Rep(target)
		if !ok || rep.Name == "" || rep.Deprecated || rep.Default == "" {
			continue
		}
		name := rep.Name
		if opts.PreferShortNames && rep.ShortName != "" {
			name = rep.ShortName
		}
		mr.Translated = append(mr.Translated, TranslatedKeyword{
			CanonicalID:   kw.ID,
			TargetKeyword: name,
			TargetValue:   rep.Default,
			FromDefault:   true,
		})
	}
}
