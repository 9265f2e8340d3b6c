package registry

import "github.com/connstr/connstr-cli/internal/driver"

// miscKeywords are the PHP, Python, Rust and legacy SqlClient tails.
var miscKeywords = []Keyword{
	{
		ID: "characterset", Display: "Character Set", Category: CatBehavior,
		Description: "Encoding used for character data exchanged with PHP.",
		Reps: reps{
			driver.PHP: {Name: "CharacterSet", Type: TypeEnum, EnumValues: []string{"SQLSRV_ENC_CHAR", "UTF-8"}, Default: "SQLSRV_ENC_CHAR"},
		},
	},
	{
		ID: "returndatesasstrings", Display: "Return Dates As Strings", Category: CatBehavior,
		Description: "Return date/time columns as strings instead of objects.",
		Reps: reps{
			driver.PHP: {Name: "ReturnDatesAsStrings", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "scrollable", Display: "Scrollable", Category: CatBehavior,
		Description: "Default cursor scrollability for sqlsrv statements.",
		Reps: reps{
			driver.PHP: {Name: "Scrollable", Type: TypeEnum, EnumValues: []string{"forward", "static", "dynamic", "keyset", "buffered"}, Default: "forward"},
		},
	},
	{
		ID: "traceon", Display: "Trace On", Category: CatAdvanced,
		Description: "Enable ODBC trace logging for the sqlsrv driver.",
		Reps: reps{
			driver.PHP: {Name: "TraceOn", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "tracefile", Display: "Trace File", Category: CatAdvanced,
		Description: "Destination file for ODBC trace output.",
		Reps: reps{
			driver.PHP: {Name: "TraceFile", Type: TypeString},
		},
	},
	{
		ID: "transactionisolation", Display: "Transaction Isolation", Category: CatBehavior,
		Description: "Default isolation level for the PHP connection.",
		Reps: reps{
			driver.PHP: {Name: "TransactionIsolation", Type: TypeEnum, EnumValues: []string{"READ_COMMITTED", "READ_UNCOMMITTED", "REPEATABLE_READ", "SNAPSHOT", "SERIALIZABLE"}, Default: "READ_COMMITTED"},
		},
	},
	{
		ID: "formatdecimals", Display: "Format Decimals", Category: CatBehavior,
		Description: "Pad fetched decimals with trailing zeroes in PHP.",
		Reps: reps{
			driver.PHP: {Name: "FormatDecimals", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "decimalplaces", Display: "Decimal Places", Category: CatBehavior,
		Description: "Decimal places shown for formatted money types.",
		Reps: reps{
			driver.PHP: {Name: "DecimalPlaces", Type: TypeInteger},
		},
	},
	{
		ID: "autocommit", Display: "Autocommit", Category: CatBehavior,
		Description: "Whether pyodbc opens the connection in autocommit mode.",
		Reps: reps{
			driver.Python: {Name: "autocommit", Type: TypeBoolean, Default: "False"},
		},
	},
	{
		ID: "tdsversion", Display: "TDS Version", Category: CatAdvanced,
		Description: "TDS protocol version for FreeTDS-based connections.",
		Reps: reps{
			driver.Python: {Name: "TDS_Version", Type: TypeString},
		},
	},
	{
		ID: "readonly", Display: "Read Only", Category: CatBehavior,
		Description: "Open the tiberius connection in read-only mode.",
		RustPath:    "readonly",
		Reps: reps{
			driver.Rust: {Name: "readonly", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "userinstance", Display: "User Instance", Category: CatAdvanced,
		Description: "Spawn a per-user SQL Server Express instance.",
		Reps: reps{
			driver.SqlClient: {Name: "User Instance", Type: TypeBoolean, Default: "False"},
		},
	},
	{
		ID: "typesystemversion", Display: "Type System Version", Category: CatAdvanced,
		Description: "Type system the server should expose to the client.",
		Reps: reps{
			driver.SqlClient: {Name: "Type System Version", Type: TypeEnum, EnumValues: []string{"Latest", "SQL Server 2012", "SQL Server 2008", "SQL Server 2005"}, Default: "Latest"},
		},
	},
	{
		ID: "contextconnection", Display: "Context Connection", Category: CatAdvanced,
		Description: "In-process connection from SQLCLR code.",
		Reps: reps{
			driver.SqlClient: {Name: "Context Connection", Type: TypeBoolean, Default: "False", Deprecated: true, Deprecation: "in-process SQLCLR connections are not supported by Microsoft.Data.SqlClient"},
		},
	},
	{
		ID: "transactionbinding", Display: "Transaction Binding", Category: CatAdvanced,
		Description: "Connection association with System.Transactions scopes.",
		Reps: reps{
			driver.SqlClient: {Name: "Transaction Binding", Type: TypeEnum, EnumValues: []string{"Implicit Unbind", "Explicit Unbind"}, Default: "Implicit Unbind"},
		},
	},
	{
		ID: "asynchronousprocessing", Display: "Asynchronous Processing", Category: CatAdvanced,
		Description: "Legacy opt-in for async command execution.",
		Reps: reps{
			driver.SqlClient: {Name: "Asynchronous Processing", ShortName: "Async", Type: TypeBoolean, Default: "False", Deprecated: true, Deprecation: "ignored since .NET 4.5; all execution paths are asynchronous"},
		},
	},
}
