package registry

import "github.com/connstr/connstr-cli/internal/driver"

// allKeywords assembles the authored table. Concatenation order is the
// canonical definition order used by the "canonical" keyword ordering.
func allKeywords() []Keyword {
	var out []Keyword
	out = append(out, coreKeywords...)
	out = append(out, securityKeywords...)
	out = append(out, poolingKeywords...)
	out = append(out, odbcOledbKeywords...)
	out = append(out, jdbcKeywords...)
	out = append(out, miscKeywords...)
	return out
}

// coreKeywords are the settings nearly every driver can express: endpoint,
// database, credentials, the common behavior toggles.
var coreKeywords = []Keyword{
	{
		ID: "server", Display: "Server", Category: CatNetwork,
		Description: "Network address of the SQL Server instance.",
		RustPath:    "server.host",
		Reps: reps{
			driver.SqlClient: {Name: "Server", Synonyms: []string{"Data Source", "Address", "Addr", "Network Address"}, Type: TypeString, Required: true},
			driver.ODBC:      {Name: "Server", Synonyms: []string{"Address", "Addr", "Network Address"}, Type: TypeString, Required: true},
			driver.OLEDB:     {Name: "Data Source", Synonyms: []string{"Server", "Address", "Network Address"}, Type: TypeString, Required: true},
			// JDBC carries the server in the URL authority, not as a property.
			driver.JDBC:   {Synonyms: []string{"serverName", "server"}, Type: TypeString, Required: true},
			driver.PHP:    {Name: "Server", Type: TypeString, Required: true},
			driver.Python: {Name: "SERVER", Type: TypeString, Required: true},
			driver.Rust:   {Name: "host", Type: TypeString, Required: true},
		},
	},
	{
		ID: "port", Display: "Port", Category: CatNetwork,
		Description: "TCP port of the server endpoint.",
		RustPath:    "server.port",
		Reps: reps{
			driver.JDBC:   {Name: "portNumber", Synonyms: []string{"port"}, Type: TypeInteger, Default: "1433"},
			driver.Python: {Name: "PORT", Type: TypeInteger, Default: "1433"},
			driver.Rust:   {Name: "port", Type: TypeInteger, Default: "1433"},
		},
	},
	{
		ID: "instancename", Display: "Instance Name", Category: CatNetwork,
		Description: "Named instance to connect to instead of the default instance.",
		RustPath:    "server.instance",
		Reps: reps{
			driver.JDBC: {Name: "instanceName", Type: TypeString},
			driver.Rust: {Name: "instance", Type: TypeString},
		},
	},
	{
		ID: "database", Display: "Database", Category: CatGeneral,
		Description: "Initial database for the session.",
		RustPath:    "database",
		Reps: reps{
			driver.SqlClient: {Name: "Database", Synonyms: []string{"Initial Catalog"}, Type: TypeString},
			driver.ODBC:      {Name: "Database", Type: TypeString},
			driver.OLEDB:     {Name: "Initial Catalog", Synonyms: []string{"Database"}, Type: TypeString},
			driver.JDBC:      {Name: "databaseName", Synonyms: []string{"database"}, Type: TypeString},
			driver.PHP:       {Name: "Database", Type: TypeString},
			driver.Python:    {Name: "DATABASE", Type: TypeString},
			driver.Rust:      {Name: "database", Type: TypeString},
		},
	},
	{
		ID: "user", Display: "User ID", Category: CatSecurity,
		Description: "SQL login name for SQL authentication.",
		RustPath:    "auth.username",
		Reps: reps{
			driver.SqlClient: {Name: "User ID", ShortName: "UID", Synonyms: []string{"User"}, Type: TypeString},
			driver.ODBC:      {Name: "UID", Synonyms: []string{"User ID"}, Type: TypeString},
			driver.OLEDB:     {Name: "User ID", Synonyms: []string{"UID"}, Type: TypeString},
			driver.JDBC:      {Name: "user", Synonyms: []string{"userName"}, Type: TypeString},
			driver.PHP:       {Name: "UID", Synonyms: []string{"User ID"}, Type: TypeString},
			driver.Python:    {Name: "UID", Type: TypeString},
			driver.Rust:      {Name: "username", Type: TypeString},
		},
	},
	{
		ID: "password", Display: "Password", Category: CatSecurity,
		Description: "Password for SQL authentication.",
		RustPath:    "auth.password",
		Reps: reps{
			driver.SqlClient: {Name: "Password", ShortName: "PWD", Type: TypeString},
			driver.ODBC:      {Name: "PWD", Synonyms: []string{"Password"}, Type: TypeString},
			driver.OLEDB:     {Name: "Password", Synonyms: []string{"PWD"}, Type: TypeString},
			driver.JDBC:      {Name: "password", Type: TypeString},
			driver.PHP:       {Name: "PWD", Synonyms: []string{"Password"}, Type: TypeString},
			driver.Python:    {Name: "PWD", Type: TypeString},
			driver.Rust:      {Name: "password", Type: TypeString},
		},
	},
	{
		ID: "integratedsecurity", Display: "Integrated Security", Category: CatSecurity,
		Description: "Use the operating-system identity instead of a SQL login.",
		RustPath:    "auth.integrated",
		Reps: reps{
			driver.SqlClient: {Name: "Integrated Security", Synonyms: []string{"Trusted_Connection"}, Type: TypeBoolean, Default: "False"},
			driver.ODBC:      {Name: "Trusted_Connection", Type: TypeBoolean, Default: "No"},
			// OLE DB spells boolean-true as the SSPI enum token.
			driver.OLEDB:  {Name: "Integrated Security", Type: TypeEnum, EnumValues: []string{"SSPI"}},
			driver.JDBC:   {Name: "integratedSecurity", Type: TypeBoolean, Default: "false"},
			driver.Python: {Name: "Trusted_Connection", Type: TypeBoolean, Default: "No"},
			driver.Rust:   {Name: "integrated", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "encrypt", Display: "Encrypt", Category: CatSecurity,
		Description: "Whether TLS encryption is required for the channel.",
		RustPath:    "encryption_options.mode",
		Reps: reps{
			driver.SqlClient: {Name: "Encrypt", Type: TypeBoolean, Default: "False"},
			driver.ODBC:      {Name: "Encrypt", Type: TypeBoolean, Default: "Yes"},
			driver.OLEDB:     {Name: "Use Encryption for Data", Type: TypeBoolean, Default: "False"},
			driver.JDBC:      {Name: "encrypt", Type: TypeBoolean, Default: "true"},
			driver.PHP:       {Name: "Encrypt", Type: TypeBoolean, Default: "false"},
			driver.Python:    {Name: "Encrypt", Type: TypeBoolean, Default: "Yes"},
			driver.Rust:      {Name: "encryption", Type: TypeEnum, EnumValues: []string{"On", "Required", "Off", "NotSupported"}, Default: "Off"},
		},
	},
	{
		ID: "trustservercertificate", Display: "Trust Server Certificate", Category: CatSecurity,
		Description: "Skip certificate chain validation when encrypting.",
		RustPath:    "encryption_options.trust_server_certificate",
		Reps: reps{
			driver.SqlClient: {Name: "TrustServerCertificate", Synonyms: []string{"Trust Server Certificate"}, Type: TypeBoolean, Default: "False"},
			driver.ODBC:      {Name: "TrustServerCertificate", Type: TypeBoolean, Default: "No"},
			driver.OLEDB:     {Name: "Trust Server Certificate", Type: TypeBoolean, Default: "False"},
			driver.JDBC:      {Name: "trustServerCertificate", Type: TypeBoolean, Default: "false"},
			driver.PHP:       {Name: "TrustServerCertificate", Type: TypeBoolean, Default: "false"},
			driver.Python:    {Name: "TrustServerCertificate", Type: TypeBoolean, Default: "No"},
			driver.Rust:      {Name: "trust_server_certificate", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "authentication", Display: "Authentication", Category: CatSecurity,
		Description: "Authentication mode, including Microsoft Entra ID flows.",
		Reps: reps{
			driver.SqlClient: {Name: "Authentication", Type: TypeEnum, EnumValues: []string{"Sql Password", "Active Directory Password", "Active Directory Integrated", "Active Directory Interactive", "Active Directory Managed Identity", "Active Directory Default"}},
			driver.ODBC:      {Name: "Authentication", Type: TypeEnum, EnumValues: []string{"SqlPassword", "ActiveDirectoryPassword", "ActiveDirectoryIntegrated", "ActiveDirectoryInteractive", "ActiveDirectoryMsi"}},
			driver.OLEDB:     {Name: "Authentication", Type: TypeEnum, EnumValues: []string{"SqlPassword", "ActiveDirectoryPassword", "ActiveDirectoryIntegrated", "ActiveDirectoryInteractive"}},
			driver.JDBC:      {Name: "authentication", Type: TypeEnum, EnumValues: []string{"SqlPassword", "ActiveDirectoryPassword", "ActiveDirectoryIntegrated", "ActiveDirectoryInteractive", "ActiveDirectoryManagedIdentity"}, Default: "NotSpecified"},
			driver.PHP:       {Name: "Authentication", Type: TypeEnum, EnumValues: []string{"SqlPassword", "ActiveDirectoryPassword", "ActiveDirectoryMsi", "ActiveDirectoryServicePrincipal"}},
			driver.Python:    {Name: "Authentication", Type: TypeEnum, EnumValues: []string{"SqlPassword", "ActiveDirectoryPassword", "ActiveDirectoryIntegrated", "ActiveDirectoryInteractive"}},
		},
	},
	{
		ID: "applicationname", Display: "Application Name", Category: CatGeneral,
		Description: "Client application name reported to the server.",
		RustPath:    "application_name",
		Reps: reps{
			driver.SqlClient: {Name: "Application Name", ShortName: "App", Type: TypeString},
			driver.ODBC:      {Name: "APP", Synonyms: []string{"Application Name"}, Type: TypeString},
			driver.OLEDB:     {Name: "Application Name", Type: TypeString},
			driver.JDBC:      {Name: "applicationName", Type: TypeString},
			driver.PHP:       {Name: "APP", Type: TypeString},
			driver.Python:    {Name: "APP", Type: TypeString},
			driver.Rust:      {Name: "application_name", Type: TypeString},
		},
	},
	{
		ID: "workstationid", Display: "Workstation ID", Category: CatGeneral,
		Description: "Client workstation name reported to the server.",
		Reps: reps{
			driver.SqlClient: {Name: "Workstation ID", ShortName: "WSID", Type: TypeString},
			driver.ODBC:      {Name: "WSID", Synonyms: []string{"Workstation ID"}, Type: TypeString},
			driver.OLEDB:     {Name: "Workstation ID", Type: TypeString},
			driver.JDBC:      {Name: "workstationID", Type: TypeString},
			driver.PHP:       {Name: "WSID", Type: TypeString},
			driver.Python:    {Name: "WSID", Type: TypeString},
		},
	},
	{
		ID: "connecttimeout", Display: "Connect Timeout", Category: CatResilience,
		Description: "Seconds to wait while establishing a connection.",
		Reps: reps{
			driver.SqlClient: {Name: "Connect Timeout", Synonyms: []string{"Connection Timeout", "Timeout"}, Type: TypeInteger, Default: "15"},
			driver.ODBC:      {Name: "LoginTimeout", Type: TypeInteger, Default: "15"},
			driver.OLEDB:     {Name: "Connect Timeout", Type: TypeInteger, Default: "15"},
			driver.JDBC:      {Name: "loginTimeout", Type: TypeInteger, Default: "30"},
			driver.PHP:       {Name: "LoginTimeout", Type: TypeInteger, Default: "15"},
		},
	},
	{
		ID: "currentlanguage", Display: "Current Language", Category: CatBehavior,
		Description: "SQL Server language for this session's messages.",
		Reps: reps{
			driver.SqlClient: {Name: "Current Language", ShortName: "Language", Type: TypeString},
			driver.ODBC:      {Name: "Language", Type: TypeString},
			driver.OLEDB:     {Name: "Current Language", Type: TypeString},
			driver.Python:    {Name: "Language", Type: TypeString},
		},
	},
	{
		ID: "applicationintent", Display: "Application Intent", Category: CatResilience,
		Description: "Declares read-write or read-only workload for AG routing.",
		Reps: reps{
			driver.SqlClient: {Name: "ApplicationIntent", Synonyms: []string{"Application Intent"}, Type: TypeEnum, EnumValues: []string{"ReadWrite", "ReadOnly"}, Default: "ReadWrite"},
			driver.ODBC:      {Name: "ApplicationIntent", Type: TypeEnum, EnumValues: []string{"ReadWrite", "ReadOnly"}, Default: "ReadWrite"},
			driver.OLEDB:     {Name: "Application Intent", Type: TypeEnum, EnumValues: []string{"ReadWrite", "ReadOnly"}, Default: "ReadWrite"},
			driver.JDBC:      {Name: "applicationIntent", Type: TypeEnum, EnumValues: []string{"ReadWrite", "ReadOnly"}, Default: "ReadWrite"},
			driver.PHP:       {Name: "ApplicationIntent", Type: TypeEnum, EnumValues: []string{"ReadWrite", "ReadOnly"}, Default: "ReadWrite"},
			driver.Python:    {Name: "ApplicationIntent", Type: TypeEnum, EnumValues: []string{"ReadWrite", "ReadOnly"}, Default: "ReadWrite"},
		},
	},
	{
		ID: "multisubnetfailover", Display: "Multi Subnet Failover", Category: CatResilience,
		Description: "Race connection attempts across AG listener subnets.",
		Reps: reps{
			driver.SqlClient: {Name: "MultiSubnetFailover", Synonyms: []string{"Multi Subnet Failover"}, Type: TypeBoolean, Default: "False"},
			driver.ODBC:      {Name: "MultiSubnetFailover", Type: TypeBoolean, Default: "No"},
			driver.OLEDB:     {Name: "MultiSubnetFailover", Type: TypeBoolean, Default: "False"},
			driver.JDBC:      {Name: "multiSubnetFailover", Type: TypeBoolean, Default: "false"},
			driver.PHP:       {Name: "MultiSubnetFailover", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "failoverpartner", Display: "Failover Partner", Category: CatResilience,
		Description: "Mirroring partner server for legacy database mirroring.",
		Reps: reps{
			driver.SqlClient: {Name: "Failover Partner", Type: TypeString},
			driver.ODBC:      {Name: "Failover_Partner", Type: TypeString},
			driver.OLEDB:     {Name: "Failover Partner", Type: TypeString},
			driver.JDBC:      {Name: "failoverPartner", Type: TypeString},
			driver.PHP:       {Name: "Failover_Partner", Type: TypeString},
			driver.Python:    {Name: "Failover_Partner", Type: TypeString},
		},
	},
	{
		ID: "multipleactiveresultsets", Display: "Multiple Active Result Sets", Category: CatBehavior,
		Description: "Allow several pending result sets on one connection (MARS).",
		Reps: reps{
			driver.SqlClient: {Name: "MultipleActiveResultSets", Synonyms: []string{"Multiple Active Result Sets"}, Type: TypeBoolean, Default: "False"},
			driver.ODBC:      {Name: "MARS_Connection", Type: TypeBoolean, Default: "No"},
			driver.OLEDB:     {Name: "MARS Connection", Type: TypeBoolean, Default: "False"},
			driver.PHP:       {Name: "MultipleActiveResultSets", Type: TypeBoolean, Default: "true"},
			driver.Python:    {Name: "MARS_Connection", Type: TypeBoolean, Default: "No"},
		},
	},
	{
		ID: "packetsize", Display: "Packet Size", Category: CatNetwork,
		Description: "TDS packet size in bytes.",
		Reps: reps{
			driver.SqlClient: {Name: "Packet Size", Type: TypeInteger, Default: "8000"},
			driver.OLEDB:     {Name: "Packet Size", Type: TypeInteger, Default: "4096"},
			driver.JDBC:      {Name: "packetSize", Type: TypeInteger, Default: "8000"},
		},
	},
	{
		ID: "persistsecurityinfo", Display: "Persist Security Info", Category: CatSecurity,
		Description: "Keep the password readable on the open connection object.",
		Reps: reps{
			driver.SqlClient: {Name: "Persist Security Info", Synonyms: []string{"PersistSecurityInfo"}, Type: TypeBoolean, Default: "False"},
			driver.OLEDB:     {Name: "Persist Security Info", Type: TypeBoolean, Default: "False"},
		},
	},
	{
		ID: "columnencryption", Display: "Column Encryption", Category: CatSecurity,
		Description: "Enable Always Encrypted for this connection.",
		Reps: reps{
			driver.SqlClient: {Name: "Column Encryption Setting", Type: TypeEnum, EnumValues: []string{"Enabled", "Disabled"}, Default: "Disabled"},
			driver.ODBC:      {Name: "ColumnEncryption", Type: TypeEnum, EnumValues: []string{"Enabled", "Disabled"}, Default: "Disabled"},
			driver.JDBC:      {Name: "columnEncryptionSetting", Type: TypeEnum, EnumValues: []string{"Enabled", "Disabled"}, Default: "Disabled"},
			driver.PHP:       {Name: "ColumnEncryption", Type: TypeEnum, EnumValues: []string{"Enabled", "Disabled"}, Default: "Disabled"},
			driver.Python:    {Name: "ColumnEncryption", Type: TypeEnum, EnumValues: []string{"Enabled", "Disabled"}, Default: "Disabled"},
		},
	},
	{
		ID: "attachdbfilename", Display: "AttachDbFilename", Category: CatGeneral,
		Description: "Attach a database file on connect (LocalDB scenarios).",
		Reps: reps{
			driver.SqlClient: {Name: "AttachDbFilename", Synonyms: []string{"Initial File Name", "Extended Properties"}, Type: TypeString},
			driver.ODBC:      {Name: "AttachDBFileName", Type: TypeString},
			driver.OLEDB:     {Name: "Initial File Name", Type: TypeString},
		},
	},
	{
		ID: "replication", Display: "Replication", Category: CatAdvanced,
		Description: "Open the connection for replication agent use.",
		Reps: reps{
			driver.SqlClient: {Name: "Replication", Type: TypeBoolean, Default: "False"},
			driver.JDBC:      {Name: "replication", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "networklibrary", Display: "Network Library", Category: CatNetwork,
		Description: "Legacy network protocol DLL selector.",
		Reps: reps{
			driver.SqlClient: {Name: "Network Library", ShortName: "Net", Synonyms: []string{"Network"}, Type: TypeString, Deprecated: true, Deprecation: "prefix the server name with tcp:, np: or lpc: instead"},
			driver.ODBC:      {Name: "Network", Synonyms: []string{"Net"}, Type: TypeString},
		},
	},
}
