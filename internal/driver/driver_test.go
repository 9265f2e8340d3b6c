package driver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseIDAliases(t *testing.T) {
	cases := map[string]ID{
		"sqlclient": SqlClient,
		"ado.net":   SqlClient,
		"ODBC":      ODBC,
		"oledb":     OLEDB,
		"jdbc":      JDBC,
		"php":       PHP,
		"pyodbc":    Python,
		"python":    Python,
		"tiberius":  Rust,
		"rust":      Rust,
	}
	for name, want := range cases {
		got, ok := ParseID(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := ParseID("mysql")
	assert.False(t, ok)
}

func TestAllDriversAreValid(t *testing.T) {
	require.Len(t, All, 7)
	for _, d := range All {
		assert.True(t, d.IsValid(), string(d))
		assert.NotEmpty(t, d.DisplayName(), string(d))
	}
	assert.False(t, ID("mysql").IsValid())
}

func TestFormatBoolSpelling(t *testing.T) {
	cases := []struct {
		d       ID
		yes, no string
	}{
		{SqlClient, "True", "False"},
		{OLEDB, "True", "False"},
		{Python, "True", "False"},
		{ODBC, "Yes", "No"},
		{JDBC, "true", "false"},
		{PHP, "true", "false"},
		{Rust, "true", "false"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.yes, tc.d.FormatBool(true), string(tc.d))
		assert.Equal(t, tc.no, tc.d.FormatBool(false), string(tc.d))
	}
}

func TestParseBoolVocabulary(t *testing.T) {
	for _, raw := range []string{"true", "True", "YES", "1", "on", "SSPI", " sspi "} {
		v, ok := ParseBool(raw)
		require.True(t, ok, raw)
		assert.True(t, v, raw)
	}
	for _, raw := range []string{"false", "No", "0", "OFF"} {
		v, ok := ParseBool(raw)
		require.True(t, ok, raw)
		assert.False(t, v, raw)
	}
	for _, raw := range []string{"", "maybe", "2", "truthy"} {
		_, ok := ParseBool(raw)
		assert.False(t, ok, raw)
	}
}

func TestParseBoolClosedUnderFormatBool(t *testing.T) {
	// Every driver's own spelling must parse back to the same value.
	for _, d := range All {
		for _, v := range []bool{true, false} {
			got, ok := ParseBool(d.FormatBool(v))
			require.True(t, ok, "%s %v", d, v)
			assert.Equal(t, v, got, "%s", d)
		}
	}
}

func TestEscapingStyles(t *testing.T) {
	assert.Equal(t, EscapeBraces, ODBC.Escaping())
	assert.Equal(t, EscapeBraces, JDBC.Escaping())
	for _, d := range []ID{SqlClient, OLEDB, PHP, Python, Rust} {
		assert.Equal(t, EscapeDoubleQuote, d.Escaping(), string(d))
	}
}
