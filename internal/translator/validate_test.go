package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connstr/connstr-cli/internal/driver"
)

func TestValidateSyntaxBalance(t *testing.T) {
	cases := []struct {
		name  string
		input string
		code  ErrorCode
	}{
		{"unmatched double quote", `Server=x;Password="oops;`, ErrUnmatchedQuote},
		{"unmatched single quote", `Server=x;Password='oops;`, ErrUnmatchedQuote},
		{"unmatched brace", `Driver={SQL Server;`, ErrUnmatchedBrace},
		{"empty", "", ErrEmptyInput},
		{"oversized", "Server=" + strings.Repeat("a", MaxInputBytes), ErrInputTooLarge},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := ValidateSyntax(tc.input)
			assert.False(t, res.IsValid)
			require.NotEmpty(t, res.Errors)
			assert.Equal(t, tc.code, res.Errors[0].Code)
		})
	}

	res := ValidateSyntax(`Server=x;Password="p;w";Driver={ODBC Driver 18 for SQL Server};`)
	assert.True(t, res.IsValid)
	assert.Empty(t, res.Errors)
}

func TestValidateMissingServer(t *testing.T) {
	p := Default().Parse("Database=db;User Id=sa;Password=pw;", Options{SourceDriver: driver.SqlClient})
	res := Default().Validate(p)
	assert.True(t, res.IsValid)
	assert.True(t, hasWarning(res.Warnings, WarnMissingRequired), "warnings: %v", res.Warnings)
}

func TestValidateDSNSatisfiesServer(t *testing.T) {
	p := Default().Parse("DSN=proddb;UID=sa;PWD=pw;", Options{})
	require.Equal(t, driver.ODBC, p.Driver)
	res := Default().Validate(p)
	assert.False(t, hasWarning(res.Warnings, WarnMissingRequired), "warnings: %v", res.Warnings)
}

func TestValidateDSNConflictsWithServer(t *testing.T) {
	p := Default().Parse("DSN=proddb;Server=alsohere;", Options{})
	res := Default().Validate(p)
	assert.True(t, hasWarning(res.Warnings, WarnConflictingKeywords))
}

func TestValidateCredentialConflict(t *testing.T) {
	p := Default().Parse("Server=x;Integrated Security=True;User Id=sa;Password=pw;", Options{})
	res := Default().Validate(p)

	var conflicts int
	for _, w := range res.Warnings {
		if w.Code == WarnConflictingKeywords {
			conflicts++
		}
	}
	assert.Equal(t, 2, conflicts, "warnings: %v", res.Warnings)
}

func TestValidateCarriesParseErrors(t *testing.T) {
	p := Default().Parse(`Server=x;Password="broken`, Options{})
	res := Default().Validate(p)
	assert.False(t, res.IsValid)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, ErrUnmatchedQuote, res.Errors[0].Code)
}
