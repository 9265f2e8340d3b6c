package registry

import "github.com/connstr/connstr-cli/internal/driver"

// jdbcKeywords are mssql-jdbc properties with no equivalent elsewhere.
var jdbcKeywords = []Keyword{
	{
		ID: "sendstringparametersasunicode", Display: "Send String Parameters As Unicode", Category: CatBehavior,
		Description: "Send string parameters as UTF-16 instead of the collation code page.",
		Reps: reps{
			driver.JDBC: {Name: "sendStringParametersAsUnicode", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "selectmethod", Display: "Select Method", Category: CatBehavior,
		Description: "Server cursor strategy for forward-only result sets.",
		Reps: reps{
			driver.JDBC: {Name: "selectMethod", Type: TypeEnum, EnumValues: []string{"direct", "cursor"}, Default: "direct"},
		},
	},
	{
		ID: "responsebuffering", Display: "Response Buffering", Category: CatBehavior,
		Description: "Stream or fully buffer server responses.",
		Reps: reps{
			driver.JDBC: {Name: "responseBuffering", Type: TypeEnum, EnumValues: []string{"adaptive", "full"}, Default: "adaptive"},
		},
	},
	{
		ID: "statementpoolingcachesize", Display: "Statement Pooling Cache Size", Category: CatPooling,
		Description: "Size of the prepared statement handle cache.",
		Reps: reps{
			driver.JDBC: {Name: "statementPoolingCacheSize", Type: TypeInteger, Default: "0"},
		},
	},
	{
		ID: "disablestatementpooling", Display: "Disable Statement Pooling", Category: CatPooling,
		Description: "Turn off prepared statement handle caching.",
		Reps: reps{
			driver.JDBC: {Name: "disableStatementPooling", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "lastupdatecount", Display: "Last Update Count", Category: CatBehavior,
		Description: "Report only the last update count from a batch.",
		Reps: reps{
			driver.JDBC: {Name: "lastUpdateCount", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "xopenstates", Display: "XOPEN States", Category: CatBehavior,
		Description: "Return XOPEN-compliant SQL states instead of SQL99.",
		Reps: reps{
			driver.JDBC: {Name: "xopenStates", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "sendtimeasdatetime", Display: "Send Time As Datetime", Category: CatBehavior,
		Description: "Send java.sql.Time values as datetime for old servers.",
		Reps: reps{
			driver.JDBC: {Name: "sendTimeAsDatetime", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "servernameasace", Display: "Server Name As ACE", Category: CatNetwork,
		Description: "Send the server name punycode-encoded for IDN hosts.",
		Reps: reps{
			driver.JDBC: {Name: "serverNameAsACE", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "usebulkcopyforbatchinsert", Display: "Use Bulk Copy For Batch Insert", Category: CatAdvanced,
		Description: "Route batched inserts through the bulk copy protocol.",
		Reps: reps{
			driver.JDBC: {Name: "useBulkCopyForBatchInsert", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "delayloadinglobs", Display: "Delay Loading LOBs", Category: CatBehavior,
		Description: "Stream LOB columns lazily instead of materializing them.",
		Reps: reps{
			driver.JDBC: {Name: "delayLoadingLobs", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "preparemethod", Display: "Prepare Method", Category: CatAdvanced,
		Description: "How statements are prepared on the server.",
		Reps: reps{
			driver.JDBC: {Name: "prepareMethod", Type: TypeEnum, EnumValues: []string{"prepexec", "prepare"}, Default: "prepexec"},
		},
	},
	{
		ID: "socketfactoryclass", Display: "Socket Factory Class", Category: CatAdvanced,
		Description: "Custom socket factory implementation class.",
		Reps: reps{
			driver.JDBC: {Name: "socketFactoryClass", Type: TypeString},
		},
	},
	{
		ID: "socketfactoryconstructorarg", Display: "Socket Factory Constructor Arg", Category: CatAdvanced,
		Description: "Constructor argument for the custom socket factory.",
		Reps: reps{
			driver.JDBC: {Name: "socketFactoryConstructorArg", Type: TypeString},
		},
	},
	{
		ID: "datetimeparametertype", Display: "Datetime Parameter Type", Category: CatBehavior,
		Description: "SQL type used when binding java.sql.Timestamp values.",
		Reps: reps{
			driver.JDBC: {Name: "datetimeParameterType", Type: TypeEnum, EnumValues: []string{"datetime2", "datetime", "datetimeoffset"}, Default: "datetime2"},
		},
	},
	{
		ID: "sendtemporalastringforbulkcopy", Display: "Send Temporal As String For Bulk Copy", Category: CatAdvanced,
		Description: "Serialize temporal types as strings during bulk copy.",
		Reps: reps{
			driver.JDBC: {Name: "sendTemporalDataTypesAsStringForBulkCopy", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "enableprepareonfirstcall", Display: "Enable Prepare On First Call", Category: CatAdvanced,
		Description: "Prepare on first execution instead of the second.",
		Reps: reps{
			driver.JDBC: {Name: "enablePrepareOnFirstPreparedStatementCall", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "preparediscardthreshold", Display: "Prepared Statement Discard Threshold", Category: CatAdvanced,
		Description: "Outstanding discard actions batched before unprepare.",
		Reps: reps{
			driver.JDBC: {Name: "serverPreparedStatementDiscardThreshold", Type: TypeInteger, Default: "10"},
		},
	},
	{
		ID: "maxresultbuffer", Display: "Max Result Buffer", Category: CatBehavior,
		Description: "Cap on bytes read from a server response.",
		Reps: reps{
			driver.JDBC: {Name: "maxResultBuffer", Type: TypeString, Default: "-1"},
		},
	},
	{
		ID: "calcbigdecimalprecision", Display: "Calc BigDecimal Precision", Category: CatBehavior,
		Description: "Compute exact precision for BigDecimal parameters.",
		Reps: reps{
			driver.JDBC: {Name: "calcBigDecimalPrecision", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "cachebulkcopymetadata", Display: "Cache Bulk Copy Metadata", Category: CatAdvanced,
		Description: "Reuse destination metadata across bulk copy batches.",
		Reps: reps{
			driver.JDBC: {Name: "cacheBulkCopyMetadata", Type: TypeBoolean, Default: "false"},
		},
	},
}
