// Package driver defines the closed set of connection-string dialects the
// translator understands, together with the per-dialect syntax facts
// (escaping convention, boolean spelling, delimiters) that the parser,
// mapper and generator dispatch on.
package driver

import "strings"

// ID is the canonical identifier for a connection-string dialect.
type ID string

const (
	SqlClient ID = "sqlclient"
	ODBC      ID = "odbc"
	OLEDB     ID = "oledb"
	JDBC      ID = "jdbc"
	PHP       ID = "php"
	Python    ID = "python"
	Rust      ID = "rust"
)

// All lists every supported driver in the fixed order used by TranslateAll
// and by the registry's per-driver tables.
var All = []ID{SqlClient, ODBC, OLEDB, JDBC, PHP, Python, Rust}

// displayNames maps each driver to its human-facing product name.
var displayNames = map[ID]string{
	SqlClient: "ADO.NET (SqlClient)",
	ODBC:      "ODBC",
	OLEDB:     "OLE DB",
	JDBC:      "JDBC",
	PHP:       "PHP (sqlsrv)",
	Python:    "Python (pyodbc)",
	Rust:      "Rust (tiberius)",
}

// DisplayName returns the human-facing name for id, or the raw tag when the
// id is not one of the seven known drivers.
func (id ID) DisplayName() string {
	if name, ok := displayNames[id]; ok {
		return name
	}
	return string(id)
}

// IsValid reports whether id is one of the seven supported drivers.
func (id ID) IsValid() bool {
	switch id {
	case SqlClient, ODBC, OLEDB, JDBC, PHP, Python, Rust:
		return true
	}
	return false
}

// ParseID normalizes user-facing spellings ("ado.net", "mssql-jdbc", "pdo")
// into a canonical driver ID.
func ParseID(name string) (ID, bool) {
	v := strings.ToLower(strings.TrimSpace(name))
	v = strings.ReplaceAll(v, " ", "")
	switch v {
	case "sqlclient", "ado.net", "adonet", "dotnet", ".net", "mssqlclient":
		return SqlClient, true
	case "odbc", "msodbc", "msodbcsql":
		return ODBC, true
	case "oledb", "ole-db", "msoledb", "msoledbsql":
		return OLEDB, true
	case "jdbc", "java", "mssql-jdbc":
		return JDBC, true
	case "php", "sqlsrv", "pdo", "pdo_sqlsrv":
		return PHP, true
	case "python", "pyodbc", "sqlalchemy":
		return Python, true
	case "rust", "tiberius":
		return Rust, true
	}
	return "", false
}

// EscapeStyle is the quoting convention a driver uses for values containing
// delimiters.
type EscapeStyle int

const (
	// EscapeDoubleQuote wraps the value in double quotes and doubles any
	// embedded double quote ("" -> ").
	EscapeDoubleQuote EscapeStyle = iota
	// EscapeBraces wraps the value in braces and doubles any embedded
	// closing brace (}} -> }).
	EscapeBraces
)

// Escaping returns the escape convention used when rendering values for id.
func (id ID) Escaping() EscapeStyle {
	switch id {
	case ODBC, JDBC:
		return EscapeBraces
	case SqlClient, OLEDB, PHP, Python, Rust:
		return EscapeDoubleQuote
	default:
		return EscapeDoubleQuote
	}
}

// FormatBool renders a normalized boolean in the driver's canonical spelling.
func (id ID) FormatBool(v bool) string {
	switch id {
	case SqlClient, Python, OLEDB:
		if v {
			return "True"
		}
		return "False"
	case ODBC:
		if v {
			return "Yes"
		}
		return "No"
	case JDBC, PHP, Rust:
		if v {
			return "true"
		}
		return "false"
	default:
		if v {
			return "true"
		}
		return "false"
	}
}

// trueTokens and falseTokens form the shared boolean vocabulary accepted
// from any source driver. SSPI counts as true because OLE DB spells
// Integrated Security that way.
var trueTokens = map[string]struct{}{
	"true": {}, "yes": {}, "1": {}, "on": {}, "sspi": {},
}

var falseTokens = map[string]struct{}{
	"false": {}, "no": {}, "0": {}, "off": {},
}

// ParseBool interprets raw through the shared boolean vocabulary.
// The second result is false when raw is not boolean-like at all.
func ParseBool(raw string) (value bool, ok bool) {
	v := strings.ToLower(strings.TrimSpace(raw))
	if _, yes := trueTokens[v]; yes {
		return true, true
	}
	if _, no := falseTokens[v]; no {
		return false, true
	}
	return false, false
}
