package registry

import "github.com/connstr/connstr-cli/internal/driver"

// securityKeywords cover TLS validation, SPNs, Always Encrypted key stores
// and the Entra ID credential plumbing.
var securityKeywords = []Keyword{
	{
		ID: "hostnameincertificate", Display: "Host Name In Certificate", Category: CatSecurity,
		Description: "Expected host name in the server TLS certificate.",
		Reps: reps{
			driver.SqlClient: {Name: "HostNameInCertificate", Synonyms: []string{"Host Name In Certificate"}, Type: TypeString},
			driver.ODBC:      {Name: "HostnameInCertificate", Type: TypeString},
			driver.JDBC:      {Name: "hostNameInCertificate", Type: TypeString},
		},
	},
	{
		ID: "servercertificate", Display: "Server Certificate", Category: CatSecurity,
		Description: "Path to the server certificate used for strict encryption.",
		Reps: reps{
			driver.SqlClient: {Name: "ServerCertificate", Synonyms: []string{"Server Certificate"}, Type: TypeString},
			driver.ODBC:      {Name: "ServerCertificate", Type: TypeString},
			driver.JDBC:      {Name: "serverCertificate", Type: TypeString},
		},
	},
	{
		ID: "serverspn", Display: "Server SPN", Category: CatSecurity,
		Description: "Service principal name of the server for Kerberos.",
		Reps: reps{
			driver.SqlClient: {Name: "Server SPN", Synonyms: []string{"ServerSPN"}, Type: TypeString},
			driver.ODBC:      {Name: "ServerSPN", Type: TypeString},
			driver.OLEDB:     {Name: "Server SPN", Type: TypeString},
			driver.JDBC:      {Name: "serverSpn", Type: TypeString},
		},
	},
	{
		ID: "failoverpartnerspn", Display: "Failover Partner SPN", Category: CatSecurity,
		Description: "Service principal name of the mirroring partner.",
		Reps: reps{
			driver.SqlClient: {Name: "Failover Partner SPN", Synonyms: []string{"FailoverPartnerSPN"}, Type: TypeString},
			driver.ODBC:      {Name: "FailoverPartnerSPN", Type: TypeString},
			driver.OLEDB:     {Name: "Failover Partner SPN", Type: TypeString},
		},
	},
	{
		ID: "enclaveattestationurl", Display: "Enclave Attestation URL", Category: CatSecurity,
		Description: "Attestation service endpoint for secure enclaves.",
		Reps: reps{
			driver.SqlClient: {Name: "Enclave Attestation Url", Type: TypeString},
			driver.JDBC:      {Name: "enclaveAttestationUrl", Type: TypeString},
		},
	},
	{
		ID: "attestationprotocol", Display: "Attestation Protocol", Category: CatSecurity,
		Description: "Protocol used to attest the server-side enclave.",
		Reps: reps{
			driver.SqlClient: {Name: "Attestation Protocol", Type: TypeEnum, EnumValues: []string{"AAS", "HGS", "None"}},
			driver.JDBC:      {Name: "enclaveAttestationProtocol", Type: TypeEnum, EnumValues: []string{"AAS", "HGS", "None"}},
		},
	},
	{
		ID: "accesstoken", Display: "Access Token", Category: CatSecurity,
		Description: "Entra ID access token presented instead of credentials.",
		Reps: reps{
			driver.PHP: {Name: "AccessToken", Type: TypeString},
		},
	},
	{
		ID: "keystoreauthentication", Display: "Key Store Authentication", Category: CatSecurity,
		Description: "How to authenticate to the column master key store.",
		Reps: reps{
			driver.JDBC: {Name: "keyStoreAuthentication", Type: TypeEnum, EnumValues: []string{"JavaKeyStorePassword", "KeyVaultClientSecret", "KeyVaultManagedIdentity"}},
			driver.PHP:  {Name: "KeyStoreAuthentication", Type: TypeEnum, EnumValues: []string{"KeyVaultPassword", "KeyVaultClientSecret"}},
		},
	},
	{
		ID: "keystoresecret", Display: "Key Store Secret", Category: CatSecurity,
		Description: "Secret for the configured key store authentication.",
		Reps: reps{
			driver.JDBC: {Name: "keyStoreSecret", Type: TypeString},
			driver.PHP:  {Name: "KeyStoreSecret", Type: TypeString},
		},
	},
	{
		ID: "keystoreprincipalid", Display: "Key Store Principal ID", Category: CatSecurity,
		Description: "Client principal used against Azure Key Vault.",
		Reps: reps{
			driver.JDBC: {Name: "keyStorePrincipalId", Type: TypeString},
			driver.PHP:  {Name: "KeyStorePrincipalId", Type: TypeString},
		},
	},
	{
		ID: "keystorelocation", Display: "Key Store Location", Category: CatSecurity,
		Description: "Path to the Java keystore holding column master keys.",
		Reps: reps{
			driver.JDBC: {Name: "keyStoreLocation", Type: TypeString},
		},
	},
	{
		ID: "truststore", Display: "Trust Store", Category: CatSecurity,
		Description: "Path to the certificate trust store file.",
		Reps: reps{
			driver.JDBC: {Name: "trustStore", Type: TypeString},
		},
	},
	{
		ID: "truststorepassword", Display: "Trust Store Password", Category: CatSecurity,
		Description: "Password protecting the trust store.",
		Reps: reps{
			driver.JDBC: {Name: "trustStorePassword", Type: TypeString},
		},
	},
	{
		ID: "truststoretype", Display: "Trust Store Type", Category: CatSecurity,
		Description: "Format of the trust store file.",
		Reps: reps{
			driver.JDBC: {Name: "trustStoreType", Type: TypeString, Default: "JKS"},
		},
	},
	{
		ID: "trustmanagerclass", Display: "Trust Manager Class", Category: CatAdvanced,
		Description: "Custom TrustManager implementation class.",
		Reps: reps{
			driver.JDBC: {Name: "trustManagerClass", Type: TypeString},
		},
	},
	{
		ID: "trustmanagerconstructorarg", Display: "Trust Manager Constructor Arg", Category: CatAdvanced,
		Description: "Constructor argument for the custom TrustManager.",
		Reps: reps{
			driver.JDBC: {Name: "trustManagerConstructorArg", Type: TypeString},
		},
	},
	{
		ID: "sslprotocol", Display: "SSL Protocol", Category: CatSecurity,
		Description: "TLS protocol versions the client may negotiate.",
		Reps: reps{
			driver.JDBC: {Name: "sslProtocol", Type: TypeEnum, EnumValues: []string{"TLS", "TLSv1", "TLSv1.1", "TLSv1.2"}, Default: "TLS"},
		},
	},
	{
		ID: "fips", Display: "FIPS Mode", Category: CatSecurity,
		Description: "Restrict cryptography to FIPS-approved providers.",
		Reps: reps{
			driver.JDBC: {Name: "fips", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "msiclientid", Display: "MSI Client ID", Category: CatSecurity,
		Description: "User-assigned managed identity to authenticate with.",
		Reps: reps{
			driver.JDBC: {Name: "msiClientId", Type: TypeString},
		},
	},
	{
		ID: "clientcertificate", Display: "Client Certificate", Category: CatSecurity,
		Description: "Client certificate for mutual TLS authentication.",
		Reps: reps{
			driver.ODBC: {Name: "ClientCertificate", Type: TypeString},
			driver.JDBC: {Name: "clientCertificate", Type: TypeString},
		},
	},
	{
		ID: "clientkey", Display: "Client Key", Category: CatSecurity,
		Description: "Private key matching the client certificate.",
		Reps: reps{
			driver.ODBC: {Name: "ClientKey", Type: TypeString},
			driver.JDBC: {Name: "clientKey", Type: TypeString},
		},
	},
	{
		ID: "clientkeypassword", Display: "Client Key Password", Category: CatSecurity,
		Description: "Passphrase for the client private key.",
		Reps: reps{
			driver.JDBC: {Name: "clientKeyPassword", Type: TypeString},
		},
	},
	{
		ID: "authenticationscheme", Display: "Authentication Scheme", Category: CatSecurity,
		Description: "Kerberos/NTLM scheme used for integrated security.",
		Reps: reps{
			driver.JDBC: {Name: "authenticationScheme", Type: TypeEnum, EnumValues: []string{"nativeAuthentication", "ntlm", "javaKerberos"}, Default: "nativeAuthentication"},
		},
	},
	{
		ID: "domain", Display: "Domain", Category: CatSecurity,
		Description: "Windows domain for NTLM authentication.",
		Reps: reps{
			driver.JDBC: {Name: "domain", Type: TypeString},
		},
	},
	{
		ID: "realm", Display: "Realm", Category: CatSecurity,
		Description: "Kerberos realm override.",
		Reps: reps{
			driver.JDBC: {Name: "realm", Type: TypeString},
		},
	},
	{
		ID: "jaasconfigurationname", Display: "JAAS Configuration Name", Category: CatAdvanced,
		Description: "JAAS login configuration entry to use for Kerberos.",
		Reps: reps{
			driver.JDBC: {Name: "jaasConfigurationName", Type: TypeString, Default: "SQLJDBCDriver"},
		},
	},
	{
		ID: "usedefaultjaasconfig", Display: "Use Default JAAS Config", Category: CatAdvanced,
		Description: "Build the Kerberos JAAS configuration internally.",
		Reps: reps{
			driver.JDBC: {Name: "useDefaultJaasConfig", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "usedefaultgsscredential", Display: "Use Default GSS Credential", Category: CatAdvanced,
		Description: "Use the native GSS credential of the process.",
		Reps: reps{
			driver.JDBC: {Name: "useDefaultGSSCredential", Type: TypeBoolean, Default: "false"},
		},
	},
	{
		ID: "aadsecureprincipalid", Display: "AAD Secure Principal ID", Category: CatSecurity,
		Description: "Service principal id for Entra ID authentication.",
		Reps: reps{
			driver.JDBC: {Name: "AADSecurePrincipalId", Type: TypeString, Deprecated: true, Deprecation: "use user with authentication=ActiveDirectoryServicePrincipal"},
		},
	},
	{
		ID: "aadsecureprincipalsecret", Display: "AAD Secure Principal Secret", Category: CatSecurity,
		Description: "Service principal secret for Entra ID authentication.",
		Reps: reps{
			driver.JDBC: {Name: "AADSecurePrincipalSecret", Type: TypeString, Deprecated: true, Deprecation: "use password with authentication=ActiveDirectoryServicePrincipal"},
		},
	},
	{
		ID: "trustcertca", Display: "Trust Certificate CA", Category: CatSecurity,
		Description: "PEM file whose certificates are trusted as roots.",
		RustPath:    "encryption_options.trust_cert_ca",
		Reps: reps{
			driver.Rust: {Name: "trust_cert_ca", Type: TypeString},
		},
	},
}
