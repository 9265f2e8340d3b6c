package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/translator"
)

var validateCmd = &cobra.Command{
	Use:   "validate [connection-string]",
	Short: "Check a connection string for syntax and semantic problems",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		opts := translator.Options{}
		if from, _ := cmd.Flags().GetString("from"); from != "" {
			src, ok := driver.ParseID(from)
			if !ok {
				return fmt.Errorf("unknown source driver %q (one of: %s)", from, driverNames())
			}
			opts.SourceDriver = src
		}

		syntax := translator.ValidateSyntax(input)
		res := syntax
		if syntax.IsValid {
			parsed := translator.Parse(input, opts)
			res = translator.Default().Validate(parsed)
		}

		if format := outputFormat(cmd); format != "text" {
			return renderStructured(format, res)
		}

		printErrors(res.Errors)
		printWarnings(res.Warnings)
		if res.IsValid {
			okColor.Println("valid")
			return nil
		}
		return fmt.Errorf("validation failed")
	},
}

func init() {
	validateCmd.Flags().String("from", "", "Source driver, overriding auto-detection.")
	validateCmd.Flags().Bool("hidden", false, "Prompt for the input without echoing it.")
	rootCmd.AddCommand(validateCmd)
}
