package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/connstr/connstr-cli/internal/translator"
)

var (
	warnColor  = color.New(color.FgYellow)
	errColor   = color.New(color.FgRed)
	okColor    = color.New(color.FgGreen)
	faintColor = color.New(color.Faint)
)

// outputFormat resolves the effective output format: flag, then config.
func outputFormat(cmd *cobra.Command) string {
	if f, _ := cmd.Flags().GetString("output"); f != "" {
		switch f {
		case "json", "yaml":
			return f
		default:
			return "text"
		}
	}
	return cliConfig().OutputFormat
}

// configureColor disables color for pipes and for --no-color.
func configureColor(cmd *cobra.Command) {
	noColor, _ := cmd.Flags().GetBool("no-color")
	if noColor || !isatty.IsTerminal(os.Stdout.Fd()) {
		color.NoColor = true
	}
}

// newTable builds a tablewriter in the house style: headers kept exactly as
// given, ASCII symbols under --plain.
func newTable(cmd *cobra.Command, w io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(w)
	table.Options(tablewriter.WithConfig(tablewriter.Config{
		Header: tw.CellConfig{
			Formatting: tw.CellFormatting{AutoFormat: tw.Off},
		},
	}))
	plain, _ := cmd.Flags().GetBool("plain")
	if plain || cliConfig().Plain {
		table.Options(tablewriter.WithSymbols(&tw.SymbolASCII{}))
	}
	return table
}

// renderStructured marshals v as JSON or YAML to stdout.
func renderStructured(format string, v any) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(data))
	case "yaml":
		data, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Print(string(data))
	default:
		return fmt.Errorf("unsupported output format %q", format)
	}
	return nil
}

func printWarnings(warnings []translator.Warning) {
	for _, w := range warnings {
		warnColor.Fprintf(os.Stderr, "warning: %s\n", w.String())
	}
}

func printErrors(errs []translator.ParseError) {
	for _, e := range errs {
		errColor.Fprintf(os.Stderr, "error: %s\n", e.String())
	}
}

// renderTranslation prints one result in text mode: the string on stdout,
// diagnostics on stderr, untranslatable keywords as a short table.
func renderTranslation(cmd *cobra.Command, res translator.TranslationResult) {
	if !res.Success {
		printErrors(res.Errors)
		printWarnings(res.Warnings)
		return
	}

	fmt.Println(res.ConnectionString)

	if len(res.Untranslatable) > 0 {
		faintColor.Fprintf(os.Stderr, "\nnot translatable to %s:\n", res.TargetDriver.DisplayName())
		table := newTable(cmd, os.Stderr)
		table.Header("Keyword", "Value", "Reason", "Detail")
		for _, u := range res.Untranslatable {
			table.Append(u.Keyword, u.Value, string(u.Reason), u.Detail)
		}
		table.Render()
	}
	printWarnings(res.Warnings)
}
