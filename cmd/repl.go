package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/peterh/liner"
	"github.com/spf13/cobra"

	"github.com/connstr/connstr-cli/internal/config"
	"github.com/connstr/connstr-cli/internal/driver"
	"github.com/connstr/connstr-cli/internal/translator"
	"github.com/connstr/connstr-cli/internal/ui"
)

// replState is the mutable session state of the interactive prompt.
type replState struct {
	target     driver.ID // empty means translate to all drivers
	opts       translator.Options
	lastOutput string
}

func runRepl(cmd *cobra.Command) error {
	configureColor(cmd)

	cfg := cliConfig()
	state := &replState{
		opts: translator.Options{
			IncludeDefaults:  cfg.IncludeDefaults,
			PreserveUnknown:  cfg.PreserveUnknown,
			PreferShortNames: cfg.PreferShortNames,
			Formatting:       translator.Formatting(cfg.Formatting),
			KeywordOrder:     translator.KeywordOrder(cfg.KeywordOrder),
		},
	}
	if cfg.DefaultTarget != "" {
		if d, ok := driver.ParseID(cfg.DefaultTarget); ok {
			state.target = d
		}
	}

	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(replCompleter)

	historyPath, _ := config.GetReplHistoryPath()
	if f, err := os.Open(historyPath); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Println("connstr interactive mode")
	fmt.Println("Paste a connection string to translate it. Type '\\help' for commands, 'exit' to leave.")

	for {
		prompt := "connstr> "
		if state.target != "" {
			prompt = fmt.Sprintf("connstr(%s)> ", state.target)
		}

		input, err := line.Prompt(prompt)
		if err != nil {
			if err == liner.ErrPromptAborted {
				fmt.Println("^C")
				continue
			}
			break
		}

		trimmed := strings.TrimSpace(input)
		if trimmed == "" {
			continue
		}
		line.AppendHistory(input)

		lower := strings.ToLower(trimmed)
		if lower == "exit" || lower == "quit" {
			break
		}
		if strings.HasPrefix(trimmed, "\\") {
			if replDispatch(cmd, state, trimmed) {
				break
			}
			continue
		}

		replTranslate(cmd, state, trimmed)
	}

	if f, err := os.Create(historyPath); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
	return nil
}

// replDispatch handles backslash commands; it reports whether the loop
// should terminate.
func replDispatch(cmd *cobra.Command, state *replState, input string) bool {
	fields := strings.Fields(input)
	name := strings.ToLower(fields[0])
	args := fields[1:]

	switch name {
	case "\\help", "\\h", "\\?":
		printReplHelp()
	case "\\q":
		return true
	case "\\to":
		if len(args) == 0 {
			state.target = ""
			fmt.Println("target cleared; pasted strings translate to all drivers")
			return false
		}
		d, ok := driver.ParseID(args[0])
		if !ok {
			errColor.Printf("unknown driver %q (one of: %s)\n", args[0], driverNames())
			return false
		}
		state.target = d
		fmt.Printf("target set to %s\n", d.DisplayName())
	case "\\detect":
		if len(args) == 0 {
			errColor.Println("usage: \\detect <connection-string>")
			return false
		}
		det := translator.Detect(strings.Join(args, " "))
		fmt.Printf("%s (%s)\n", det.Driver.DisplayName(), det.Confidence)
	case "\\keywords":
		d := driver.ID("")
		if len(args) > 0 {
			id, ok := driver.ParseID(args[0])
			if !ok {
				errColor.Printf("unknown driver %q\n", args[0])
				return false
			}
			d = id
		}
		rows := collectKeywordRows(d, "")
		for _, row := range rows {
			if d != "" {
				fmt.Printf("%-32s %-28s %s\n", row.Display, row.Name, row.Type)
			} else {
				fmt.Printf("%-32s %s\n", row.Display, row.Category)
			}
		}
		fmt.Printf("(%d keywords)\n", len(rows))
	case "\\history":
		_ = historyCmd.RunE(cmd, nil)
	case "\\set":
		replSet(state, args)
	case "\\copy":
		if state.lastOutput == "" {
			errColor.Println("nothing to copy yet")
			return false
		}
		if err := ui.CopyText(state.lastOutput); err != nil {
			errColor.Printf("copy failed: %v\n", err)
			return false
		}
		fmt.Println("copied")
	default:
		errColor.Printf("unknown command %s; try \\help\n", name)
	}
	return false
}

// replSet tweaks a translation option for the rest of the session.
func replSet(state *replState, args []string) {
	if len(args) < 2 {
		errColor.Println("usage: \\set <option> <value>  (options: readable, order, include-defaults, preserve-unknown, short-names)")
		return
	}
	value := strings.ToLower(args[1])
	on := value == "on" || value == "true" || value == "yes"

	switch strings.ToLower(args[0]) {
	case "readable":
		if on {
			state.opts.Formatting = translator.FormatReadable
		} else {
			state.opts.Formatting = translator.FormatCompact
		}
	case "order":
		switch translator.KeywordOrder(value) {
		case translator.OrderSource, translator.OrderCanonical, translator.OrderAlphabetical:
			state.opts.KeywordOrder = translator.KeywordOrder(value)
		default:
			errColor.Printf("unknown order %q\n", args[1])
			return
		}
	case "include-defaults":
		state.opts.IncludeDefaults = on
	case "preserve-unknown":
		state.opts.PreserveUnknown = on
	case "short-names":
		state.opts.PreferShortNames = on
	default:
		errColor.Printf("unknown option %q\n", args[0])
		return
	}
	fmt.Printf("%s set to %s\n", strings.ToLower(args[0]), value)
}

// replTranslate runs a pasted string through the pipeline against the
// session target (or all drivers) and remembers the last output for \copy.
func replTranslate(cmd *cobra.Command, state *replState, input string) {
	if state.target != "" {
		res := translator.Translate(input, state.target, state.opts)
		recordHistory(cmd, input, res)
		renderTranslation(cmd, res)
		if res.Success {
			state.lastOutput = res.ConnectionString
		}
		return
	}

	results := translator.TranslateAll(input, state.opts)
	recordHistory(cmd, input, results...)
	for _, res := range results {
		okColor.Printf("-- %s\n", res.TargetDriver.DisplayName())
		renderTranslation(cmd, res)
		fmt.Println()
		if res.Success {
			state.lastOutput = res.ConnectionString
		}
	}
}

func printReplHelp() {
	fmt.Println(`Commands:
  <connection string>   translate to the session target (or all drivers)
  \to <driver>          set the session target; \to with no argument clears it
  \detect <string>      show the detected driver without translating
  \keywords [driver]    list canonical keywords, optionally for one driver
  \history              show recent translations
  \set <option> <val>   readable, order, include-defaults, preserve-unknown, short-names
  \copy                 copy the last output to the clipboard
  \help                 this help
  exit                  leave`)
}

// replCompleter completes backslash commands and driver names.
func replCompleter(line string) []string {
	commands := []string{"\\to ", "\\detect ", "\\keywords", "\\history", "\\set ", "\\copy", "\\help", "exit", "quit"}
	var out []string
	lower := strings.ToLower(line)

	if rest, ok := strings.CutPrefix(lower, "\\to "); ok {
		for _, d := range driver.All {
			if strings.HasPrefix(string(d), rest) {
				out = append(out, "\\to "+string(d))
			}
		}
		return out
	}
	for _, c := range commands {
		if strings.HasPrefix(c, lower) {
			out = append(out, c)
		}
	}
	return out
}
