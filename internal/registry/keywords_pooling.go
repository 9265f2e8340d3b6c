package registry

import "github.com/connstr/connstr-cli/internal/driver"

// poolingKeywords cover client-side pool management and connection
// resilience knobs. Most pool settings exist only in SqlClient, which is why
// they dominate the DRIVER_SPECIFIC classifications.
var poolingKeywords = []Keyword{
	{
		ID: "pooling", Display: "Pooling", Category: CatPooling,
		Description: "Enable client-side connection pooling.",
		Reps: reps{
			driver.SqlClient: {Name: "Pooling", Type: TypeBoolean, Default: "True"},
			driver.PHP:       {Name: "ConnectionPooling", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "minpoolsize", Display: "Min Pool Size", Category: CatPooling,
		Description: "Minimum number of pooled connections kept alive.",
		Reps: reps{
			driver.SqlClient: {Name: "Min Pool Size", Type: TypeInteger, Default: "0"},
		},
	},
	{
		ID: "maxpoolsize", Display: "Max Pool Size", Category: CatPooling,
		Description: "Maximum number of pooled connections.",
		Reps: reps{
			driver.SqlClient: {Name: "Max Pool Size", Type: TypeInteger, Default: "100"},
		},
	},
	{
		ID: "connectionlifetime", Display: "Connection Lifetime", Category: CatPooling,
		Description: "Seconds after which a pooled connection is retired.",
		Reps: reps{
			driver.SqlClient: {Name: "Connection Lifetime", Synonyms: []string{"Load Balance Timeout"}, Type: TypeInteger, Default: "0"},
		},
	},
	{
		ID: "poolblockingperiod", Display: "Pool Blocking Period", Category: CatPooling,
		Description: "Pool behavior after a connection failure.",
		Reps: reps{
			driver.SqlClient: {Name: "Pool Blocking Period", Synonyms: []string{"PoolBlockingPeriod"}, Type: TypeEnum, EnumValues: []string{"Auto", "AlwaysBlock", "NeverBlock"}, Default: "Auto"},
		},
	},
	{
		ID: "connectionreset", Display: "Connection Reset", Category: CatPooling,
		Description: "Reset session state when a pooled connection is reused.",
		Reps: reps{
			driver.SqlClient: {Name: "Connection Reset", Type: TypeBoolean, Default: "True", Deprecated: true, Deprecation: "removed from modern SqlClient; pooled connections are always reset"},
		},
	},
	{
		ID: "enlist", Display: "Enlist", Category: CatPooling,
		Description: "Auto-enlist in the ambient distributed transaction.",
		Reps: reps{
			driver.SqlClient: {Name: "Enlist", Type: TypeBoolean, Default: "True"},
		},
	},
	{
		ID: "connectretrycount", Display: "Connect Retry Count", Category: CatResilience,
		Description: "Idle-connection resiliency retry attempts.",
		Reps: reps{
			driver.SqlClient: {Name: "Connect Retry Count", Synonyms: []string{"ConnectRetryCount"}, Type: TypeInteger, Default: "1"},
			driver.ODBC:      {Name: "ConnectRetryCount", Type: TypeInteger, Default: "1"},
			driver.JDBC:      {Name: "connectRetryCount", Type: TypeInteger, Default: "1"},
		},
	},
	{
		ID: "connectretryinterval", Display: "Connect Retry Interval", Category: CatResilience,
		Description: "Seconds between idle-connection resiliency retries.",
		Reps: reps{
			driver.SqlClient: {Name: "Connect Retry Interval", Synonyms: []string{"ConnectRetryInterval"}, Type: TypeInteger, Default: "10"},
			driver.ODBC:      {Name: "ConnectRetryInterval", Type: TypeInteger, Default: "10"},
			driver.JDBC:      {Name: "connectRetryInterval", Type: TypeInteger, Default: "10"},
		},
	},
	{
		ID: "keepalive", Display: "Keep Alive", Category: CatNetwork,
		Description: "Seconds of inactivity before TCP keep-alive probes start.",
		Reps: reps{
			driver.ODBC: {Name: "KeepAlive", Type: TypeInteger, Default: "30"},
		},
	},
	{
		ID: "keepaliveinterval", Display: "Keep Alive Interval", Category: CatNetwork,
		Description: "Seconds between unanswered TCP keep-alive probes.",
		Reps: reps{
			driver.ODBC: {Name: "KeepAliveInterval", Type: TypeInteger, Default: "1"},
		},
	},
	{
		ID: "transparentnetworkipresolution", Display: "Transparent Network IP Resolution", Category: CatResilience,
		Description: "Try all resolved addresses with a short first timeout.",
		Reps: reps{
			driver.SqlClient: {Name: "TransparentNetworkIPResolution", Synonyms: []string{"Transparent Network IP Resolution"}, Type: TypeBoolean, Default: "True"},
			driver.ODBC:      {Name: "TransparentNetworkIPResolution", Type: TypeBoolean, Default: "Yes"},
			driver.JDBC:      {Name: "transparentNetworkIPResolution", Type: TypeBoolean, Default: "true"},
		},
	},
	{
		ID: "ipaddresspreference", Display: "IP Address Preference", Category: CatNetwork,
		Description: "Address family preference when resolving the host.",
		Reps: reps{
			driver.SqlClient: {Name: "IPAddressPreference", Type: TypeEnum, EnumValues: []string{"IPv4First", "IPv6First", "UsePlatformDefault"}, Default: "IPv4First"},
			driver.ODBC:      {Name: "IpAddressPreference", Type: TypeEnum, EnumValues: []string{"IPv4First", "IPv6First", "UsePlatformDefault"}, Default: "IPv4First"},
			driver.JDBC:      {Name: "iPAddressPreference", Type: TypeEnum, EnumValues: []string{"IPv4First", "IPv6First", "UsePlatformDefault"}, Default: "IPv4First"},
		},
	},
	{
		ID: "sockettimeout", Display: "Socket Timeout", Category: CatResilience,
		Description: "Milliseconds to wait on socket reads before failing.",
		Reps: reps{
			driver.JDBC: {Name: "socketTimeout", Type: TypeInteger, Default: "0"},
		},
	},
	{
		ID: "locktimeout", Display: "Lock Timeout", Category: CatResilience,
		Description: "Milliseconds the server waits on a lock before erroring.",
		Reps: reps{
			driver.JDBC: {Name: "lockTimeout", Type: TypeInteger, Default: "-1"},
		},
	},
	{
		ID: "querytimeout", Display: "Query Timeout", Category: CatResilience,
		Description: "Seconds before a running statement is cancelled.",
		Reps: reps{
			driver.JDBC: {Name: "queryTimeout", Type: TypeInteger, Default: "-1"},
		},
	},
	{
		ID: "cancelquerytimeout", Display: "Cancel Query Timeout", Category: CatResilience,
		Description: "Seconds to wait for a cancel request to take effect.",
		Reps: reps{
			driver.JDBC: {Name: "cancelQueryTimeout", Type: TypeInteger, Default: "-1"},
		},
	},
	{
		ID: "generaltimeout", Display: "General Timeout", Category: CatResilience,
		Description: "Command timeout applied by the OLE DB provider.",
		Reps: reps{
			driver.OLEDB: {Name: "General Timeout", Type: TypeInteger, Default: "0"},
		},
	},
	{
		ID: "commandtimeout", Display: "Command Timeout", Category: CatResilience,
		Description: "Default seconds before a command attempt is abandoned.",
		Reps: reps{
			driver.SqlClient: {Name: "Command Timeout", Type: TypeInteger, Default: "30"},
		},
	},
}
