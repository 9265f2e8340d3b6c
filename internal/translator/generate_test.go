package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connstr/connstr-cli/internal/driver"
)

func TestGenerateODBCInjectsDriverToken(t *testing.T) {
	p := mustParse(t, "Server=x;Database=db;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.ODBC, Options{})
	out := Default().Generate(mr, Options{})
	assert.True(t, strings.HasPrefix(out, "Driver={ODBC Driver 18 for SQL Server};"), out)
}

func TestGenerateODBCKeepsExplicitDriver(t *testing.T) {
	p := mustParse(t, "Driver={ODBC Driver 17 for SQL Server};Server=x;", Options{})
	mr := Default().MapKeywords(p, driver.ODBC, Options{})
	out := Default().Generate(mr, Options{})
	assert.True(t, strings.HasPrefix(out, "Driver={ODBC Driver 17 for SQL Server};"), out)
	assert.Equal(t, 1, strings.Count(out, "Driver="), out)
}

func TestGenerateOLEDBInjectsProvider(t *testing.T) {
	p := mustParse(t, "Server=x;Integrated Security=True;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.OLEDB, Options{})
	out := Default().Generate(mr, Options{})
	assert.True(t, strings.HasPrefix(out, "Provider=MSOLEDBSQL;"), out)
	assert.Contains(t, out, "Integrated Security=SSPI;")
}

func TestGeneratePHPPrefix(t *testing.T) {
	p := mustParse(t, "Server=x;Database=db;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.PHP, Options{})
	out := Default().Generate(mr, Options{})
	assert.Equal(t, "sqlsrv:Server=x;Database=db;", out)
}

func TestGenerateReadableFormatting(t *testing.T) {
	p := mustParse(t, "Server=x;Database=db;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.SqlClient, Options{Formatting: FormatReadable})
	out := Default().Generate(mr, Options{Formatting: FormatReadable})
	assert.Equal(t, "Server=x; Database=db;", out)
}

func TestGenerateEscapesSpecialValues(t *testing.T) {
	p := mustParse(t, `Server=x;Password="p;a=s";`, Options{SourceDriver: driver.SqlClient})

	mr := Default().MapKeywords(p, driver.SqlClient, Options{})
	out := Default().Generate(mr, Options{})
	assert.Contains(t, out, `Password="p;a=s";`)

	mr = Default().MapKeywords(p, driver.ODBC, Options{})
	out = Default().Generate(mr, Options{})
	assert.Contains(t, out, "PWD={p;a=s};")
}

func TestGenerateEscapeRoundTrip(t *testing.T) {
	awkward := []string{
		`p;a=s`,
		`he said "hi"`,
		`tail}brace`,
		`open{brace`,
		` leading and trailing `,
		`quote'inside`,
	}
	for _, secret := range awkward {
		for _, target := range []driver.ID{driver.SqlClient, driver.ODBC, driver.OLEDB, driver.PHP, driver.Python} {
			style := target.Escaping()
			escaped := escapeValue(secret, style)
			input := "Server=x;Password=" + escaped + ";"
			p := Default().Parse(input, Options{SourceDriver: target})
			require.False(t, p.HasErrors(), "target %s secret %q: %v", target, secret, p.Errors)
			pw, ok := p.Get("password")
			require.True(t, ok, "target %s secret %q", target, secret)
			assert.Equal(t, secret, pw.Normalized, "target %s", target)
		}
	}
}

func TestGenerateJDBCNamedInstance(t *testing.T) {
	p := mustParse(t, `Server=myhost\SQLEXPRESS;Database=db;`, Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.JDBC, Options{})
	out := Default().Generate(mr, Options{})
	assert.True(t, strings.HasPrefix(out, "jdbc:sqlserver://myhost:1433;instanceName=SQLEXPRESS;"), out)
}

func TestGenerateJDBCCommaPort(t *testing.T) {
	p := mustParse(t, "Server=tcp:myhost,1500;Database=db;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.JDBC, Options{})
	out := Default().Generate(mr, Options{})
	assert.True(t, strings.HasPrefix(out, "jdbc:sqlserver://myhost:1500;"), out)
}

func TestGenerateRustStructLiteral(t *testing.T) {
	p := mustParse(t, "Server=myhost;Database=db;User Id=sa;Password=pw;Encrypt=True;TrustServerCertificate=True;Connect Timeout=30;", Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.Rust, Options{})
	out := Default().Generate(mr, Options{})

	assert.True(t, strings.HasPrefix(out, "Config {"), out)
	assert.Contains(t, out, "server: Server {")
	assert.Contains(t, out, `host: "myhost".to_string(),`)
	assert.Contains(t, out, `database: "db".to_string(),`)
	assert.Contains(t, out, "auth: Auth {")
	assert.Contains(t, out, `username: "sa".to_string(),`)
	assert.Contains(t, out, "encryption_options: EncryptionOptions {")
	assert.Contains(t, out, "mode: EncryptionLevel::On,")
	assert.Contains(t, out, "trust_server_certificate: true,")
	assert.Contains(t, out, "..Default::default()")
	assert.True(t, strings.HasSuffix(out, "}"), out)

	// Every opened group closes with a default spread.
	assert.Equal(t, strings.Count(out, "{"), strings.Count(out, "}"))
}

func TestGenerateRustSplitsServerSubSyntax(t *testing.T) {
	p := mustParse(t, `Server=tcp:myhost\SQLEXPRESS,1500;`, Options{SourceDriver: driver.SqlClient})
	mr := Default().MapKeywords(p, driver.Rust, Options{})
	out := Default().Generate(mr, Options{})
	assert.Contains(t, out, `host: "myhost".to_string(),`)
	assert.Contains(t, out, "port: 1500,")
	assert.Contains(t, out, `instance: "SQLEXPRESS".to_string(),`)
}
