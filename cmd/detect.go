package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/translator"
)

var detectCmd = &cobra.Command{
	Use:   "detect [connection-string]",
	Short: "Detect which driver format a connection string is written in",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		input, err := readInput(cmd, args)
		if err != nil {
			return err
		}

		det := translator.Detect(input)
		if format := outputFormat(cmd); format != "text" {
			return renderStructured(format, det)
		}

		fmt.Printf("driver:     %s\n", det.Driver.DisplayName())
		fmt.Printf("confidence: %s\n", det.Confidence)
		if det.MatchedPattern != "" {
			fmt.Printf("matched:    %s\n", det.MatchedPattern)
		}
		return nil
	},
}

func init() {
	detectCmd.Flags().Bool("hidden", false, "Prompt for the input without echoing it.")
	rootCmd.AddCommand(detectCmd)
}
