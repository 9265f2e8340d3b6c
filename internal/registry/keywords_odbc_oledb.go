package registry

import "github.com/connstr/connstr-cli/internal/driver"

// odbcOledbKeywords are the driver-manager and provider-level settings of
// the two native Windows stacks.
var odbcOledbKeywords = []Keyword{
	{
		ID: "driver", Display: "Driver", Category: CatGeneral,
		Description: "ODBC driver name, in braces when it contains spaces.",
		Reps: reps{
			driver.ODBC:   {Name: "Driver", Type: TypeString, Default: "{ODBC Driver 18 for SQL Server}"},
			driver.PHP:    {Name: "Driver", Type: TypeString},
			driver.Python: {Name: "DRIVER", Synonyms: []string{"Driver"}, Type: TypeString, Default: "{ODBC Driver 18 for SQL Server}"},
		},
	},
	{
		ID: "provider", Display: "Provider", Category: CatGeneral,
		Description: "OLE DB provider ProgID; a syntax-level token rather than an ordinary setting.",
		Reps: reps{
			// No flat name: the generator injects/passes Provider itself.
			driver.OLEDB: {Synonyms: []string{"Provider"}, Type: TypeString, Default: "MSOLEDBSQL"},
		},
	},
	{
		ID: "dsn", Display: "DSN", Category: CatGeneral,
		Description: "Pre-configured ODBC data source name.",
		Reps: reps{
			driver.ODBC: {Name: "DSN", Type: TypeString},
		},
	},
	{
		ID: "filedsn", Display: "File DSN", Category: CatGeneral,
		Description: "Path to a file data source.",
		Reps: reps{
			driver.ODBC: {Name: "FileDSN", Type: TypeString},
		},
	},
	{
		ID: "savefile", Display: "Save File", Category: CatGeneral,
		Description: "File data source to persist this connection into.",
		Reps: reps{
			driver.ODBC: {Name: "SaveFile", Type: TypeString},
		},
	},
	{
		ID: "description", Display: "Description", Category: CatGeneral,
		Description: "Free-text description stored with the data source.",
		Reps: reps{
			driver.ODBC: {Name: "Description", Type: TypeString},
		},
	},
	{
		ID: "quotedid", Display: "Quoted Identifiers", Category: CatBehavior,
		Description: "Whether QUOTED_IDENTIFIER is ON for the session.",
		Reps: reps{
			driver.ODBC: {Name: "QuotedId", Type: TypeBoolean, Default: "Yes"},
		},
	},
	{
		ID: "ansinpw", Display: "ANSI NPW", Category: CatBehavior,
		Description: "ANSI null, padding and warning semantics.",
		Reps: reps{
			driver.ODBC: {Name: "AnsiNPW", Type: TypeBoolean, Default: "Yes"},
		},
	},
	{
		ID: "regional", Display: "Regional", Category: CatBehavior,
		Description: "Use client regional settings for currency and dates.",
		Reps: reps{
			driver.ODBC: {Name: "Regional", Type: TypeBoolean, Default: "No"},
		},
	},
	{
		ID: "autotranslate", Display: "Auto Translate", Category: CatBehavior,
		Description: "Translate ANSI character data between code pages.",
		Reps: reps{
			driver.ODBC:  {Name: "AutoTranslate", Type: TypeBoolean, Default: "Yes"},
			driver.OLEDB: {Name: "Auto Translate", Synonyms: []string{"AutoTranslate"}, Type: TypeBoolean, Default: "True"},
		},
	},
	{
		ID: "longasmax", Display: "Long As Max", Category: CatBehavior,
		Description: "Send legacy long types as varchar(max) family types.",
		Reps: reps{
			driver.ODBC: {Name: "LongAsMax", Type: TypeBoolean, Default: "No"},
		},
	},
	{
		ID: "usefmtonly", Display: "Use FMTONLY", Category: CatBehavior,
		Description: "Use SET FMTONLY for metadata discovery on old servers.",
		Reps: reps{
			driver.ODBC: {Name: "UseFMTONLY", Type: TypeBoolean, Default: "No"},
			driver.JDBC: {Name: "useFmtOnly", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "oledbservices", Display: "OLE DB Services", Category: CatAdvanced,
		Description: "Bitmask enabling provider-side pooling and enlistment.",
		Reps: reps{
			driver.OLEDB: {Name: "OLE DB Services", Type: TypeInteger},
		},
	},
	{
		ID: "datatypecompatibility", Display: "Data Type Compatibility", Category: CatAdvanced,
		Description: "Expose new types in SQL Server 2000 compatible shapes.",
		Reps: reps{
			driver.OLEDB: {Name: "DataTypeCompatibility", Type: TypeEnum, EnumValues: []string{"0", "80"}, Default: "0"},
		},
	},
	{
		ID: "useprocedureforprepare", Display: "Use Procedure For Prepare", Category: CatAdvanced,
		Description: "Legacy temporary stored procedure strategy for prepares.",
		Reps: reps{
			driver.OLEDB: {Name: "Use Procedure for Prepare", Type: TypeInteger, Default: "1", Deprecated: true, Deprecation: "ignored by MSOLEDBSQL; prepares no longer create procedures"},
		},
	},
	{
		ID: "tagwithcolumncollation", Display: "Tag With Column Collation", Category: CatAdvanced,
		Description: "Tag character data with the column collation when possible.",
		Reps: reps{
			driver.OLEDB: {Name: "Tag with column collation when possible", Type: TypeBoolean, Default: "False"},
		},
	},
	{
		ID: "mode", Display: "Mode", Category: CatAdvanced,
		Description: "Access mode requested from the OLE DB provider.",
		Reps: reps{
			driver.OLEDB: {Name: "Mode", Type: TypeEnum, EnumValues: []string{"ReadWrite", "Read", "Share Deny None", "Share Exclusive"}, Default: "ReadWrite"},
		},
	},
	{
		ID: "localeidentifier", Display: "Locale Identifier", Category: CatBehavior,
		Description: "Windows LCID used for locale-sensitive conversions.",
		Reps: reps{
			driver.OLEDB: {Name: "Locale Identifier", Type: TypeInteger},
		},
	},
}
