package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/history"
	"github.com/connstr/connstr-cli/internal/translator"
	"github.com/connstr/connstr-cli/internal/ui"
)

var translateCmd = &cobra.Command{
	Use:   "translate [connection-string]",
	Short: "Translate a connection string to another driver's format",
	Long: `Translate a connection string into the format of another driver.

The source format is auto-detected unless --from is given. Input comes from
the argument, from a pipe, or from an interactive prompt (--hidden reads it
without echoing, for strings that carry a password).`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts, err := translateOptions(cmd)
		if err != nil {
			return err
		}

		all, _ := cmd.Flags().GetBool("all")
		targetName, _ := cmd.Flags().GetString("to")
		if !all && targetName == "" {
			targetName = cliConfig().DefaultTarget
		}
		if !all && targetName == "" {
			return fmt.Errorf("no target driver: pass --to <driver> or --all")
		}

		format := outputFormat(cmd)

		if all {
			results := translator.TranslateAll(input, opts)
			recordHistory(cmd, input, results...)
			if format != "text" {
				return renderStructured(format, results)
			}
			for _, res := range results {
				okColor.Printf("-- %s\n", res.TargetDriver.DisplayName())
				renderTranslation(cmd, res)
				fmt.Println()
			}
			return exitError(results...)
		}

		target, ok := driver.ParseID(targetName)
		if !ok {
			return fmt.Errorf("unknown target driver %q (one of: %s)", targetName, driverNames())
		}
		res := translator.Translate(input, target, opts)
		recordHistory(cmd, input, res)
		if format != "text" {
			return renderStructured(format, res)
		}
		renderTranslation(cmd, res)
		return exitError(res)
	},
}

// readInput takes the connection string from the argument, a pipe, or a
// prompt, in that order.
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && strings.TrimSpace(args[0]) != "" {
		return args[0], nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(string(data)), nil
	}
	if hidden, _ := cmd.Flags().GetBool("hidden"); hidden {
		return ui.PromptHiddenConnectionString()
	}
	return ui.PromptConnectionString()
}

// translateOptions folds config defaults and flags into pipeline options.
func translateOptions(cmd *cobra.Command) (translator.Options, error) {
	cfg := cliConfig()
	opts := translator.Options{
		IncludeDefaults:  cfg.IncludeDefaults,
		PreserveUnknown:  cfg.PreserveUnknown,
		PreferShortNames: cfg.PreferShortNames,
		Formatting:       translator.Formatting(cfg.Formatting),
		KeywordOrder:     translator.KeywordOrder(cfg.KeywordOrder),
	}

	if v, _ := cmd.Flags().GetBool("include-defaults"); v {
		opts.IncludeDefaults = true
	}
	if v, _ := cmd.Flags().GetBool("preserve-unknown"); v {
		opts.PreserveUnknown = true
	}
	if v, _ := cmd.Flags().GetBool("short-names"); v {
		opts.PreferShortNames = true
	}
	if v, _ := cmd.Flags().GetBool("readable"); v {
		opts.Formatting = translator.FormatReadable
	}
	if order, _ := cmd.Flags().GetString("order"); order != "" {
		switch translator.KeywordOrder(order) {
		case translator.OrderSource, translator.OrderCanonical, translator.OrderAlphabetical:
			opts.KeywordOrder = translator.KeywordOrder(order)
		default:
			return opts, fmt.Errorf("unknown keyword order %q", order)
		}
	}
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		src, ok := driver.ParseID(from)
		if !ok {
			return opts, fmt.Errorf("unknown source driver %q (one of: %s)", from, driverNames())
		}
		opts.SourceDriver = src
	}
	return opts, nil
}

// recordHistory appends masked entries unless --no-history is set.
func recordHistory(cmd *cobra.Command, input string, results ...translator.TranslationResult) {
	if skip, _ := cmd.Flags().GetBool("no-history"); skip {
		return
	}
	store, err := history.Load()
	if err != nil {
		return
	}
	limit := cliConfig().History.Limit
	for _, res := range results {
		store.Add(input, string(res.SourceDriver), string(res.TargetDriver), res.ConnectionString, res.Success, limit)
	}
	if err := history.Save(store); err != nil {
		faintColor.Fprintf(os.Stderr, "note: could not save history: %v\n", err)
	}
}

// exitError surfaces a failed translation as a command error after the
// diagnostics have already been printed.
func exitError(results ...translator.TranslationResult) error {
	for _, res := range results {
		if !res.Success {
			return fmt.Errorf("translation failed")
		}
	}
	return nil
}

func driverNames() string {
	names := make([]string, 0, len(driver.All))
	for _, d := range driver.All {
		names = append(names, string(d))
	}
	return strings.Join(names, ", ")
}

func init() {
	translateCmd.Flags().StringP("to", "t", "", "Target driver format.")
	translateCmd.Flags().String("from", "", "Source driver, overriding auto-detection.")
	translateCmd.Flags().Bool("all", false, "Translate to every supported driver.")
	translateCmd.Flags().Bool("include-defaults", false, "Append the target's defaults for unspecified keywords.")
	translateCmd.Flags().Bool("preserve-unknown", false, "Pass unrecognized keywords through verbatim.")
	translateCmd.Flags().Bool("short-names", false, "Prefer abbreviated keyword spellings (UID, App, WSID).")
	translateCmd.Flags().Bool("readable", false, "Insert spacing between pairs in the output.")
	translateCmd.Flags().String("order", "", "Keyword order: source, canonical, or alphabetical.")
	translateCmd.Flags().Bool("hidden", false, "Prompt for the input without echoing it.")
	translateCmd.Flags().Bool("no-history", false, "Do not record this translation in the history log.")
	rootCmd.AddCommand(translateCmd)
}
