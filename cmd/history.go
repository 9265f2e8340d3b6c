package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent translations (passwords are masked)",
	RunE: func(cmd *cobra.Command, args []string) error {
		configureColor(cmd)

		store, err := history.Load()
		if err != nil {
			return err
		}

		if format := outputFormat(cmd); format != "text" {
			return renderStructured(format, store.Entries)
		}

		if len(store.Entries) == 0 {
			fmt.Println("history is empty")
			return nil
		}
		table := newTable(cmd, os.Stdout)
		table.Header("ID", "When", "From", "To", "Input", "OK")
		for _, e := range store.Entries {
			ok := "yes"
			if !e.Success {
				ok = "no"
			}
			table.Append(shortID(e.ID), e.CreatedAt.Local().Format("2006-01-02 15:04"), e.SourceDriver, e.TargetDriver, truncate(e.Input, 48), ok)
		}
		table.Render()
		return nil
	},
}

var historyDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete one history entry by id (or id prefix)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Load()
		if err != nil {
			return err
		}

		kept := store.Entries[:0]
		removed := 0
		for _, e := range store.Entries {
			if e.ID == args[0] || shortID(e.ID) == args[0] {
				removed++
				continue
			}
			kept = append(kept, e)
		}
		if removed == 0 {
			return fmt.Errorf("no history entry matches %q", args[0])
		}
		store.Entries = kept
		if err := history.Save(store); err != nil {
			return err
		}
		fmt.Printf("deleted %d entry(ies)\n", removed)
		return nil
	},
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := history.Load()
		if err != nil {
			return err
		}
		store.Clear()
		if err := history.Save(store); err != nil {
			return err
		}
		fmt.Println("history cleared")
		return nil
	},
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	if width <= 3 {
		return string(r[:width])
	}
	return string(r[:width-3]) + "..."
}

func init() {
	historyCmd.AddCommand(historyDeleteCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}
