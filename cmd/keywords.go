package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/registry"
)

// keywordRow is the display/export shape of one registry entry.
type keywordRow struct {
	ID          string   `json:"id" yaml:"id"`
	Display     string   `json:"display" yaml:"display"`
	Category    string   `json:"category" yaml:"category"`
	Name        string   `json:"name,omitempty" yaml:"name,omitempty"`
	Type        string   `json:"type,omitempty" yaml:"type,omitempty"`
	Default     string   `json:"default,omitempty" yaml:"default,omitempty"`
	Synonyms    []string `json:"synonyms,omitempty" yaml:"synonyms,omitempty"`
	Deprecated  bool     `json:"deprecated,omitempty" yaml:"deprecated,omitempty"`
	Description string   `json:"description" yaml:"description"`
}

var keywordsCmd = &cobra.Command{
	Use:   "keywords",
	Short: "Browse the canonical keyword registry",
	Long: `List the canonical keywords the translator understands. With --driver the
listing narrows to that driver's supported keywords and shows its spelling,
type, default, and synonyms.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		var d driver.ID
		if name, _ := cmd.Flags().GetString("driver"); name != "" {
			id, ok := driver.ParseID(name)
			if !ok {
				return fmt.Errorf("unknown driver %q (one of: %s)", name, driverNames())
			}
			d = id
		}
		search, _ := cmd.Flags().GetString("search")
		search = strings.ToLower(search)

		rows := collectKeywordRows(d, search)
		if format := outputFormat(cmd); format != "text" {
			return renderStructured(format, rows)
		}

		table := newTable(cmd, os.Stdout)
		if d != "" {
			table.Header("Keyword", "Name", "Type", "Default", "Synonyms")
			for _, row := range rows {
				name := row.Name
				if row.Deprecated {
					name += " (deprecated)"
				}
				table.Append(row.Display, name, row.Type, row.Default, strings.Join(row.Synonyms, ", "))
			}
		} else {
			table.Header("Keyword", "Category", "Description")
			for _, row := range rows {
				table.Append(row.Display, row.Category, row.Description)
			}
		}
		table.Render()
		fmt.Printf("\n(%d keywords)\n", len(rows))
		return nil
	},
}

func collectKeywordRows(d driver.ID, search string) []keywordRow {
	reg := registry.Default()
	var rows []keywordRow
	for _, kw := range reg.Keywords() {
		row := keywordRow{
			ID:          kw.ID,
			Display:     kw.Display,
			Category:    string(kw.Category),
			Description: kw.Description,
		}
		if d != "" {
			rep, ok := kw.Rep(d)
			if !ok || rep.Name == "" {
				continue
			}
			row.Name = rep.Name
			row.Type = rep.Type.String()
			row.Default = rep.Default
			row.Synonyms = reg.SortedSynonyms(kw.ID, d)
			row.Deprecated = rep.Deprecated
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(row.Display), search) &&
			!strings.Contains(strings.ToLower(row.Name), search) &&
			!strings.Contains(strings.ToLower(row.Description), search) {
			continue
		}
		rows = append(rows, row)
	}
	return rows
}

func init() {
	keywordsCmd.Flags().StringP("driver", "d", "", "Show only keywords this driver supports, with its spellings.")
	keywordsCmd.Flags().String("search", "", "Filter keywords by substring.")
	rootCmd.AddCommand(keywordsCmd)
}
