package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "connstr",
	Short: "connstr translates SQL Server connection strings between driver formats",
	Long: `A translator for SQL Server connection strings: paste a string from any
of the seven supported drivers (SqlClient, ODBC, OLE DB, JDBC, PHP, Python,
Rust) and get the equivalent string for any other, with warnings for
everything that cannot cross over.

Run with no arguments to enter the interactive prompt.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRepl(cmd)
	},
}

func Execute() error {
	// .env can carry CONNSTR_CONFIG_DIR and friends; absence is fine.
	_ = godotenv.Load()
	return rootCmd.Execute()
}

// loadedConfig is read once per invocation; flags override it.
var loadedConfig *config.Config

func cliConfig() *config.Config {
	if loadedConfig == nil {
		cfg, err := config.LoadConfig()
		if err != nil || cfg == nil {
			cfg = &config.Config{}
			cfg.OutputFormat = "text"
			cfg.Formatting = "compact"
			cfg.KeywordOrder = "source"
			cfg.History.Limit = 20
		}
		loadedConfig = cfg
	}
	return loadedConfig
}

func init() {
	rootCmd.PersistentFlags().StringP(
		"output", "o", "",
		"Output format: text, json, or yaml.",
	)
	rootCmd.PersistentFlags().Bool(
		"plain", false,
		"Use plain ASCII output instead of Unicode box-drawing characters.",
	)
	rootCmd.PersistentFlags().Bool(
		"no-color", false,
		"Disable colored output.",
	)
}
