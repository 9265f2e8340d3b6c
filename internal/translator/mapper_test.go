package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connstr/connstr-cli/internal/driver"
)

func mustParse(t *testing.T, input string, opts Options) *ParsedConnectionString {
	t.Helper()
	p := Default().Parse(input, opts)
	require.False(t, p.HasErrors(), "parse errors: %v", p.Errors)
	return p
}

func findTranslated(mr *MappingResult, id string) (TranslatedKeyword, bool) {
	for _, tk := range mr.Translated {
		if tk.CanonicalID == id {
			return tk, true
		}
	}
	return TranslatedKeyword{}, false
}

func findUntranslatable(mr *MappingResult, keyword string) (UntranslatableKeyword, bool) {
	for _, u := range mr.Untranslatable {
		if u.Keyword == keyword {
			return u, true
		}
	}
	return UntranslatableKeyword{}, false
}

func hasWarning(warnings []Warning, code WarningCode) bool {
	for _, w := range warnings {
		if w.Code == code {
			return true
		}
	}
	return false
}

func TestMapBooleanSpellingPerTarget(t *testing.T) {
	p := mustParse(t, "Server=x;Encrypt=yes;", Options{SourceDriver: driver.SqlClient})
	cases := []struct {
		target driver.ID
		want   string
	}{
		{driver.SqlClient, "True"},
		{driver.ODBC, "Yes"},
		{driver.JDBC, "true"},
		{driver.PHP, "true"},
		{driver.Python, "True"},
	}
	for _, tc := range cases {
		mr := Default().MapKeywords(p, tc.target, Options{})
		enc, ok := findTranslated(mr, "encrypt")
		require.True(t, ok, "encrypt missing for %s", tc.target)
		assert.Equal(t, tc.want, enc.TargetValue, string(tc.target))
	}
}

func TestMapEnumCoercionToSSPI(t *testing.T) {
	p := mustParse(t, "Server=x;Integrated Security=True;", Options{})
	mr := Default().MapKeywords(p, driver.OLEDB, Options{})

	sec, ok := findTranslated(mr, "integratedsecurity")
	require.True(t, ok)
	assert.Equal(t, "Integrated Security", sec.TargetKeyword)
	assert.Equal(t, "SSPI", sec.TargetValue)
	assert.True(t, sec.ValueTransformed)
}

func TestMapSSPIReadsAsTrue(t *testing.T) {
	p := mustParse(t, "Provider=MSOLEDBSQL;Data Source=x;Integrated Security=SSPI;", Options{})
	require.Equal(t, driver.OLEDB, p.Driver)
	mr := Default().MapKeywords(p, driver.JDBC, Options{})

	sec, ok := findTranslated(mr, "integratedsecurity")
	require.True(t, ok)
	assert.Equal(t, "true", sec.TargetValue)
}

func TestMapPythonBlockedAllowlist(t *testing.T) {
	p := mustParse(t, "Driver={ODBC Driver 18 for SQL Server};Server=x;MultiSubnetFailover=Yes;", Options{})
	require.Equal(t, driver.ODBC, p.Driver)
	mr := Default().MapKeywords(p, driver.Python, Options{})

	u, ok := findUntranslatable(mr, "MultiSubnetFailover")
	require.True(t, ok)
	assert.Equal(t, ReasonBlockedAllowlist, u.Reason)
	assert.True(t, hasWarning(mr.Warnings, WarnPythonBlocked))
	assert.True(t, hasWarning(mr.Warnings, WarnKeywordOmitted))
}

func TestMapBlockedOutranksOtherReasons(t *testing.T) {
	// Pool sizing is SqlClient-only AND python-blocked; the allowlist reason
	// must win the classification.
	p := mustParse(t, "Server=x;Max Pool Size=50;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.Python, Options{})

	u, ok := findUntranslatable(mr, "Max Pool Size")
	require.True(t, ok)
	assert.Equal(t, ReasonBlockedAllowlist, u.Reason)
}

func TestMapDriverSpecific(t *testing.T) {
	p := mustParse(t, "Server=x;User Instance=True;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.JDBC, Options{})

	u, ok := findUntranslatable(mr, "User Instance")
	require.True(t, ok)
	assert.Equal(t, ReasonDriverSpecific, u.Reason)
}

func TestMapDeprecatedTarget(t *testing.T) {
	// Network Library still parses on SqlClient but is deprecated there, so
	// a round trip back to SqlClient refuses to emit it.
	p := mustParse(t, "Server=x;Network Library=dbmssocn;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.SqlClient, Options{})

	u, ok := findUntranslatable(mr, "Network Library")
	require.True(t, ok)
	assert.Equal(t, ReasonDeprecated, u.Reason)
}

func TestMapUnknownKeyword(t *testing.T) {
	p := Default().Parse("Server=x;Frobnicate=7;", Options{})
	mr := Default().MapKeywords(p, driver.ODBC, Options{})
	u, ok := findUntranslatable(mr, "Frobnicate")
	require.True(t, ok)
	assert.Equal(t, ReasonUnknown, u.Reason)

	mr = Default().MapKeywords(p, driver.ODBC, Options{PreserveUnknown: true})
	tk, ok := findTranslated(mr, "frobnicate")
	require.True(t, ok)
	assert.Equal(t, "Frobnicate", tk.TargetKeyword)
	assert.Equal(t, "7", tk.TargetValue)
	assert.Empty(t, mr.Untranslatable)
}

func TestMapJDBCServerRoutesToURL(t *testing.T) {
	p := mustParse(t, "Server=myhost;Database=db;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.JDBC, Options{})

	server, ok := findTranslated(mr, "server")
	require.True(t, ok)
	assert.Equal(t, "serverName", server.TargetKeyword)
	assert.Equal(t, "myhost", server.TargetValue)
	assert.Empty(t, mr.Untranslatable)
}

func TestMapDefaultDivergenceWarning(t *testing.T) {
	// Encrypt is unspecified; SqlClient defaults it off, JDBC defaults it on.
	p := mustParse(t, "Server=x;Database=db;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.JDBC, Options{})
	assert.True(t, hasWarning(mr.Warnings, WarnDefaultDiffers), "warnings: %v", mr.Warnings)

	// Specifying Encrypt silences that particular warning.
	p = mustParse(t, "Server=x;Database=db;Encrypt=True;", Options{SourceDriver: driver.SqlClient})
	mr = Default().MapKeywords(p, driver.JDBC, Options{})
	for _, w := range mr.Warnings {
		if w.Code == WarnDefaultDiffers {
			assert.NotEqual(t, "Encrypt", w.Keyword)
		}
	}
}

func TestMapNoDivergenceWarningsForSameDriver(t *testing.T) {
	p := mustParse(t, "Server=x;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.SqlClient, Options{})
	assert.False(t, hasWarning(mr.Warnings, WarnDefaultDiffers))
}

func TestMapIncludeDefaults(t *testing.T) {
	p := mustParse(t, "Server=x;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.SqlClient, Options{IncludeDefaults: true})

	enc, ok := findTranslated(mr, "encrypt")
	require.True(t, ok)
	assert.True(t, enc.FromDefault)
	assert.Equal(t, "False", enc.TargetValue)

	timeout, ok := findTranslated(mr, "connecttimeout")
	require.True(t, ok)
	assert.Equal(t, "15", timeout.TargetValue)
}

func TestMapPreferShortNames(t *testing.T) {
	p := mustParse(t, "Server=x;User Id=sa;Application Name=app;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.SqlClient, Options{PreferShortNames: true})

	user, ok := findTranslated(mr, "user")
	require.True(t, ok)
	assert.Equal(t, "UID", user.TargetKeyword)
}

func TestMapOrderingPolicies(t *testing.T) {
	p := mustParse(t, "Database=db;Server=x;Application Name=app;", Options{SourceDriver: driver.SqlClient})

	mr := Default().MapKeywords(p, driver.SqlClient, Options{})
	require.Len(t, mr.Translated, 3)
	assert.Equal(t, "database", mr.Translated[0].CanonicalID)

	mr = Default().MapKeywords(p, driver.SqlClient, Options{KeywordOrder: OrderCanonical})
	assert.Equal(t, "server", mr.Translated[0].CanonicalID)

	mr = Default().MapKeywords(p, driver.SqlClient, Options{KeywordOrder: OrderAlphabetical})
	assert.Equal(t, "Application Name", mr.Translated[0].TargetKeyword)
}
