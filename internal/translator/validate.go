package translator

import (
	"fmt"
	"strings"

	"github.com/connstr/connstr-cli/internal/driver"
)

// ValidateSyntax checks delimiter balance and input guards without touching
// the registry. It reuses the tokenizer so the two agree on escape rules.
func ValidateSyntax(input string) ValidationResult {
	var res ValidationResult
	if len(input) > MaxInputBytes {
		res.Errors = append(res.Errors, ParseError{
			Code:    ErrInputTooLarge,
			Message: fmt.Sprintf("input is %d bytes; the limit is %d", len(input), MaxInputBytes),
		})
		return res
	}
	if strings.TrimSpace(input) == "" {
		res.Errors = append(res.Errors, ParseError{
			Code:    ErrEmptyInput,
			Message: "input is empty",
		})
		return res
	}
	_, errs := tokenize(strings.TrimSpace(input), 0)
	res.Errors = errs
	res.IsValid = len(errs) == 0
	return res
}

// Validate layers semantic checks over a parse: required keywords that are
// missing and combinations that contradict each other.
func (t *Translator) Validate(p *ParsedConnectionString) ValidationResult {
	res := ValidationResult{
		Errors:   append([]ParseError(nil), p.Errors...),
		Warnings: append([]Warning(nil), p.Warnings...),
	}

	for _, kw := range t.reg.Keywords() {
		rep, ok := kw.Rep(p.Driver)
		if !ok || !rep.Required {
			continue
		}
		if _, present := p.Pairs[kw.ID]; present {
			continue
		}
		// ODBC and OLEDB can reach a server through a DSN instead.
		if kw.ID == "server" {
			if _, viaDSN := p.Pairs["dsn"]; viaDSN {
				continue
			}
			if _, viaFileDSN := p.Pairs["filedsn"]; viaFileDSN {
				continue
			}
		}
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnMissingRequired,
			Keyword: kw.Display,
			Message: fmt.Sprintf("%s sets no %s; the string cannot open a connection without it", p.Driver.DisplayName(), kw.Display),
		})
	}

	if sec, ok := p.Get("integratedsecurity"); ok {
		if b, parsed := driver.ParseBool(sec.Normalized); parsed && b {
			for _, credential := range []string{"user", "password"} {
				if pv, present := p.Pairs[credential]; present {
					res.Warnings = append(res.Warnings, Warning{
						Code:    WarnConflictingKeywords,
						Keyword: pv.OriginalKeyword,
						Message: fmt.Sprintf("%q conflicts with integrated security; the credential will be ignored", pv.OriginalKeyword),
					})
				}
			}
		}
	}
	if _, viaDSN := p.Pairs["dsn"]; viaDSN {
		if pv, present := p.Pairs["server"]; present {
			res.Warnings = append(res.Warnings, Warning{
				Code:    WarnConflictingKeywords,
				Keyword: pv.OriginalKeyword,
				Message: fmt.Sprintf("%q conflicts with DSN; the DSN's server wins", pv.OriginalKeyword),
			})
		}
	}

	res.IsValid = len(res.Errors) == 0
	return res
}
