package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/connstr/connstr-cli/internal/driver"
)

func TestRegistryHasFullKeywordSurface(t *testing.T) {
	r := Default()
	assert.GreaterOrEqual(t, len(r.Keywords()), 128)
}

func TestRegistryIDsAreUniqueAndNormalized(t *testing.T) {
	r := Default()
	seen := make(map[string]bool)
	for _, kw := range r.Keywords() {
		assert.Equal(t, NormalizeName(kw.ID), kw.ID, "id %q must be its own normal form", kw.ID)
		assert.False(t, seen[kw.ID], "duplicate id %q", kw.ID)
		seen[kw.ID] = true
		assert.NotEmpty(t, kw.Display, kw.ID)
		assert.NotEmpty(t, kw.Reps, kw.ID)
	}
}

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "integratedsecurity", NormalizeName("Integrated Security"))
	assert.Equal(t, "trustservercertificate", NormalizeName("  Trust Server\tCertificate "))
	assert.Equal(t, "uid", NormalizeName("UID"))
}

func TestResolvePerDriverBeforeGlobal(t *testing.T) {
	r := Default()

	// "Database" means the database name on SqlClient...
	id, ok := r.Resolve(driver.SqlClient, "Initial Catalog")
	require.True(t, ok)
	assert.Equal(t, "database", id)

	// ...and short ODBC spellings resolve without driver context too.
	id, ok = r.Resolve(driver.SqlClient, "UID")
	require.True(t, ok)
	assert.Equal(t, "user", id)

	id, ok = r.Resolve(driver.ODBC, "Trusted_Connection")
	require.True(t, ok)
	assert.Equal(t, "integratedsecurity", id)

	// Canonical ids always resolve, whatever the driver.
	id, ok = r.Resolve(driver.Rust, "trustservercertificate")
	require.True(t, ok)
	assert.Equal(t, "trustservercertificate", id)

	_, ok = r.Resolve(driver.SqlClient, "No Such Keyword")
	assert.False(t, ok)
}

func TestSupportedKeywordsPerDriver(t *testing.T) {
	r := Default()
	for _, d := range driver.All {
		supported := r.SupportedKeywords(d)
		assert.NotEmpty(t, supported, string(d))
		for _, id := range supported {
			assert.True(t, r.IsSupported(id, d), "%s should support %s", d, id)
		}
	}

	// JDBC's server lives in the URL, not the property list.
	assert.False(t, r.IsSupported("server", driver.JDBC))
	assert.True(t, r.IsSupported("server", driver.SqlClient))
}

func TestDefaultValue(t *testing.T) {
	r := Default()

	v, ok := r.DefaultValue("connecttimeout", driver.SqlClient)
	require.True(t, ok)
	assert.Equal(t, "15", v)

	v, ok = r.DefaultValue("connecttimeout", driver.JDBC)
	require.True(t, ok)
	assert.Equal(t, "30", v)

	_, ok = r.DefaultValue("password", driver.SqlClient)
	assert.False(t, ok)
}

func TestDoDefaultsDiffer(t *testing.T) {
	r := Default()

	// False vs true: a real divergence.
	assert.True(t, r.DoDefaultsDiffer("encrypt", driver.SqlClient, driver.JDBC))
	// Yes vs true: same boolean class, no divergence.
	assert.False(t, r.DoDefaultsDiffer("encrypt", driver.ODBC, driver.JDBC))
	// False vs False, different spelling conventions.
	assert.False(t, r.DoDefaultsDiffer("trustservercertificate", driver.SqlClient, driver.OLEDB))
	// Boolean-likes treat a missing default as false.
	assert.False(t, r.DoDefaultsDiffer("integratedsecurity", driver.SqlClient, driver.OLEDB))
	// PHP flips MARS on by default; everyone else leaves it off.
	assert.True(t, r.DoDefaultsDiffer("multipleactiveresultsets", driver.PHP, driver.SqlClient))
	// 15 vs 30 seconds.
	assert.True(t, r.DoDefaultsDiffer("connecttimeout", driver.SqlClient, driver.JDBC))
	// 8000 vs 4096 bytes.
	assert.True(t, r.DoDefaultsDiffer("packetsize", driver.SqlClient, driver.OLEDB))
}

func TestPythonBlockedSet(t *testing.T) {
	r := Default()
	blocked := []string{
		"multisubnetfailover",
		"transparentnetworkipresolution",
		"pooling",
		"minpoolsize",
		"maxpoolsize",
		"connectionlifetime",
		"poolblockingperiod",
		"enlist",
	}
	for _, id := range blocked {
		assert.True(t, IsPythonBlocked(id), id)
		_, ok := r.KeywordByID(id)
		assert.True(t, ok, "blocked id %q must exist in the registry", id)
	}
	assert.False(t, IsPythonBlocked("encrypt"))
	assert.False(t, IsPythonBlocked("server"))
}

func TestCanonicalOrderIsStable(t *testing.T) {
	r := Default()
	assert.Less(t, r.CanonicalOrder("server"), r.CanonicalOrder("database"))
	assert.Less(t, r.CanonicalOrder("database"), r.CanonicalOrder("encrypt"))
	// Unknown ids sort last.
	assert.Greater(t, r.CanonicalOrder("zzz-not-real"), r.CanonicalOrder("readonly"))
}

func TestEnumRepresentationShape(t *testing.T) {
	r := Default()
	kw, ok := r.KeywordByID("integratedsecurity")
	require.True(t, ok)

	rep, ok := kw.Rep(driver.OLEDB)
	require.True(t, ok)
	assert.Equal(t, TypeEnum, rep.Type)
	require.NotEmpty(t, rep.EnumValues)
	assert.Equal(t, "SSPI", rep.EnumValues[0])
}

func TestSupportedByExcludesURLOnlyReps(t *testing.T) {
	r := Default()
	kw, ok := r.KeywordByID("server")
	require.True(t, ok)
	supported := kw.SupportedBy()
	assert.NotContains(t, supported, driver.JDBC)
	assert.Contains(t, supported, driver.SqlClient)
}

func TestRustPathsAreWellFormed(t *testing.T) {
	r := Default()
	for _, kw := range r.Keywords() {
		if kw.RustPath == "" {
			continue
		}
		_, hasRust := kw.Rep(driver.Rust)
		assert.True(t, hasRust, "%s has a struct path but no Rust spelling", kw.ID)
	}
}
