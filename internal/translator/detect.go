package translator

import (
	"regexp"
	"strings"

	"github.com/connstr/connstr-cli/internal/driver"
)

// signatureRule is a syntactic marker that is definitive for one driver.
// Rules are evaluated in order and the first match wins, so the specific
// ones (Provider=, Driver={) must sit above anything a generic SqlClient
// string could also contain.
type signatureRule struct {
	driver     driver.ID
	confidence Confidence
	name       string
	pattern    *regexp.Regexp
}

var signatureRules = []signatureRule{
	{driver.JDBC, ConfidenceHigh, "jdbc-url-prefix", regexp.MustCompile(`(?i)^\s*jdbc:sqlserver://`)},
	{driver.Python, ConfidenceHigh, "sqlalchemy-url-prefix", regexp.MustCompile(`(?i)^\s*mssql\+pyodbc://`)},
	{driver.Rust, ConfidenceHigh, "rust-config-literal", regexp.MustCompile(`Config\s*\{|\.\.Default::default\(\)|\.to_string\(\)|encryption_options`)},
	{driver.ODBC, ConfidenceHigh, "odbc-driver-token", regexp.MustCompile(`(?i)driver\s*=\s*\{[^}]*sql\s*server`)},
	{driver.ODBC, ConfidenceHigh, "odbc-driver-versioned", regexp.MustCompile(`(?i)driver\s*=\s*\{odbc driver \d+`)},
	{driver.OLEDB, ConfidenceHigh, "oledb-provider-token", regexp.MustCompile(`(?i)provider\s*=\s*(msoledbsql|sqloledb|sqlncli)`)},
	{driver.PHP, ConfidenceHigh, "php-sqlsrv-prefix", regexp.MustCompile(`(?i)^\s*sqlsrv:`)},
	{driver.ODBC, ConfidenceMedium, "odbc-dsn-token", regexp.MustCompile(`(?i)(^|;)\s*(dsn|filedsn)\s*=`)},
	{driver.SqlClient, ConfidenceHigh, "sqlclient-integrated-security", regexp.MustCompile(`(?i)(^|;)\s*integrated security\s*=`)},
	{driver.SqlClient, ConfidenceHigh, "sqlclient-mars", regexp.MustCompile(`(?i)(^|;)\s*multipleactiveresultsets\s*=`)},
	{driver.SqlClient, ConfidenceMedium, "sqlclient-initial-catalog", regexp.MustCompile(`(?i)(^|;)\s*initial catalog\s*=`)},
}

// frequencyHints scores driver-suggestive tokens when no signature matched.
type frequencyHint struct {
	driver  driver.ID
	weight  int
	pattern *regexp.Regexp
}

var frequencyHints = []frequencyHint{
	{driver.ODBC, 3, regexp.MustCompile(`(?i)(^|;)\s*dsn\s*=`)},
	{driver.ODBC, 2, regexp.MustCompile(`(?i)(^|;)\s*uid\s*=`)},
	{driver.ODBC, 2, regexp.MustCompile(`(?i)(^|;)\s*pwd\s*=`)},
	{driver.ODBC, 2, regexp.MustCompile(`(?i)(^|;)\s*trusted_connection\s*=`)},
	{driver.ODBC, 2, regexp.MustCompile(`(?i)(^|;)\s*mars_connection\s*=`)},
	{driver.ODBC, 1, regexp.MustCompile(`(?i)(^|;)\s*app\s*=`)},
	{driver.ODBC, 1, regexp.MustCompile(`(?i)(^|;)\s*wsid\s*=`)},
	{driver.SqlClient, 2, regexp.MustCompile(`(?i)(^|;)\s*persist security info\s*=`)},
	{driver.SqlClient, 2, regexp.MustCompile(`(?i)(^|;)\s*user id\s*=`)},
	{driver.SqlClient, 2, regexp.MustCompile(`(?i)(^|;)\s*data source\s*=`)},
	{driver.SqlClient, 2, regexp.MustCompile(`(?i)(^|;)\s*trustservercertificate\s*=`)},
	{driver.SqlClient, 1, regexp.MustCompile(`(?i)(^|;)\s*server\s*=`)},
	{driver.SqlClient, 1, regexp.MustCompile(`(?i)(^|;)\s*database\s*=`)},
	{driver.SqlClient, 1, regexp.MustCompile(`(?i)(^|;)\s*encrypt\s*=`)},
	{driver.SqlClient, 1, regexp.MustCompile(`(?i)(^|;)\s*application name\s*=`)},
	{driver.OLEDB, 2, regexp.MustCompile(`(?i)(^|;)\s*use encryption for data\s*=`)},
	{driver.OLEDB, 1, regexp.MustCompile(`(?i)(^|;)\s*initial catalog\s*=`)},
	{driver.JDBC, 2, regexp.MustCompile(`(?i)(^|;)\s*databasename\s*=`)},
	{driver.JDBC, 2, regexp.MustCompile(`(?i)(^|;)\s*logintimeout\s*=`)},
}

// Detect classifies raw input into one of the seven driver formats.
// Signature rules run first in priority order; when none fires, a weighted
// keyword-frequency scan decides, with ties going to SqlClient since plain
// key=value strings are most often ADO.NET.
func Detect(input string) Detection {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return Detection{Driver: driver.SqlClient, Confidence: ConfidenceLow}
	}

	for _, rule := range signatureRules {
		if rule.pattern.MatchString(trimmed) {
			return Detection{Driver: rule.driver, Confidence: rule.confidence, MatchedPattern: rule.name}
		}
	}

	scores := make(map[driver.ID]int)
	for _, hint := range frequencyHints {
		if hint.pattern.MatchString(trimmed) {
			scores[hint.driver] += hint.weight
		}
	}

	best := driver.SqlClient
	bestScore := scores[driver.SqlClient]
	for _, d := range driver.All {
		if scores[d] > bestScore {
			best, bestScore = d, scores[d]
		}
	}

	conf := ConfidenceLow
	switch {
	case bestScore >= 5:
		conf = ConfidenceHigh
	case bestScore >= 3:
		conf = ConfidenceMedium
	}
	return Detection{Driver: best, Confidence: conf}
}
