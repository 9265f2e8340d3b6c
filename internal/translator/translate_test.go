package translator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connstr/connstr-cli/internal/driver"
)

func TestTranslateSqlClientToJDBC(t *testing.T) {
	input := "Server=myserver.database.windows.net;Database=mydb;User Id=myuser;Password=mypass;Encrypt=True;TrustServerCertificate=False;"
	res := Translate(input, driver.JDBC, Options{})

	require.True(t, res.Success, "errors: %v", res.Errors)
	assert.Equal(t, driver.SqlClient, res.SourceDriver)
	assert.Equal(t, driver.JDBC, res.TargetDriver)
	assert.Equal(t,
		"jdbc:sqlserver://myserver.database.windows.net:1433;databaseName=mydb;user=myuser;password=mypass;encrypt=true;trustServerCertificate=false;",
		res.ConnectionString)
	assert.Empty(t, res.Untranslatable)
}

func TestTranslateODBCToPython(t *testing.T) {
	input := "Driver={ODBC Driver 18 for SQL Server};Server=srv;Database=db;Trusted_Connection=Yes;MultiSubnetFailover=Yes;"
	res := Translate(input, driver.Python, Options{})

	require.True(t, res.Success)
	assert.Equal(t, driver.ODBC, res.SourceDriver)

	require.Len(t, res.Untranslatable, 1)
	assert.Equal(t, "MultiSubnetFailover", res.Untranslatable[0].Keyword)
	assert.Equal(t, ReasonBlockedAllowlist, res.Untranslatable[0].Reason)

	assert.Contains(t, res.ConnectionString, "DRIVER={ODBC Driver 18 for SQL Server};")
	assert.Contains(t, res.ConnectionString, "SERVER=srv;")
	assert.Contains(t, res.ConnectionString, "Trusted_Connection=True;")
	assert.NotContains(t, res.ConnectionString, "MultiSubnetFailover")
}

func TestTranslateFailureShortCircuits(t *testing.T) {
	res := Translate(`Server=x;Password="broken`, driver.ODBC, Options{})
	assert.False(t, res.Success)
	assert.Empty(t, res.ConnectionString)
	require.NotEmpty(t, res.Errors)
	assert.Equal(t, ErrUnmatchedQuote, res.Errors[0].Code)
}

func TestTranslateAllCoversEveryDriver(t *testing.T) {
	results := TranslateAll("Server=srv;Database=db;Integrated Security=True;", Options{})
	require.Len(t, results, len(driver.All))

	seen := make(map[driver.ID]bool)
	for i, res := range results {
		assert.Equal(t, driver.All[i], res.TargetDriver)
		assert.Equal(t, driver.SqlClient, res.SourceDriver)
		assert.True(t, res.Success, "target %s: %v", res.TargetDriver, res.Errors)
		assert.NotEmpty(t, res.ConnectionString, string(res.TargetDriver))
		seen[res.TargetDriver] = true
	}
	assert.Len(t, seen, 7)
}

func TestTranslateAllFailureIsUniform(t *testing.T) {
	results := TranslateAll("", Options{})
	require.Len(t, results, len(driver.All))
	for _, res := range results {
		assert.False(t, res.Success)
		assert.Empty(t, res.ConnectionString)
		require.NotEmpty(t, res.Errors)
		assert.Equal(t, ErrEmptyInput, res.Errors[0].Code)
	}
}

func TestTranslateRoundTripKeepsMeaning(t *testing.T) {
	input := "Server=srv;Database=db;User Id=sa;Password=pw;Encrypt=True;"
	odbc := Translate(input, driver.ODBC, Options{})
	require.True(t, odbc.Success)

	back := Translate(odbc.ConnectionString, driver.SqlClient, Options{})
	require.True(t, back.Success)
	assert.Contains(t, back.ConnectionString, "Server=srv;")
	assert.Contains(t, back.ConnectionString, "Database=db;")
	assert.Contains(t, back.ConnectionString, "User ID=sa;")
	assert.Contains(t, back.ConnectionString, "Encrypt=True;")
}
