package cli

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"rowstore/internal"
	"rowstore/internal/command"
	"rowstore/internal/heap"
)

func defaultHistoryPath() string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return ".rowstore_history"
	}
	return filepath.Join(home, ".rowstore_history")
}

// runREPL drives the interactive prompt until .exit or EOF.
func runREPL(cfg *internal.RowstoreConfig, tbl *heap.Table, logger *slog.Logger) error {
	histPath := cfg.Repl.HistoryFile
	if histPath == "" {
		histPath = defaultHistoryPath()
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "db> ",
		HistoryFile:     histPath,
		InterruptPrompt: "^C",
		EOFPrompt:       ".exit",
	})
	if err != nil {
		return fmt.Errorf("readline: %w", err)
	}
	defer func() { _ = rl.Close() }()

	exec := command.NewExecutor(tbl, logger)

	fmt.Printf("rowstore version %s\n", Version)
	fmt.Println("Enter \".help\" for instructions")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			fmt.Println("^C")
			continue
		}
		if err != nil {
			// EOF
			fmt.Println()
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, ".") {
			if quit := runMetaCommand(line); quit {
				return nil
			}
			continue
		}

		stmt, err := command.Prepare(line)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		res, err := exec.Execute(stmt)
		if err != nil {
			fmt.Printf("error: %v\n", err)
			continue
		}
		printResult(res)
	}
}

// runMetaCommand handles dot commands; returns true on .exit.
func runMetaCommand(line string) bool {
	switch line {
	case ".exit":
		return true
	case ".help":
		fmt.Println(`meta commands:
  .exit                      quit
  .help                      show help

statements:
  insert <id> <username> <email>
  select`)
	default:
		fmt.Printf("unknown command or invalid arguments: %q. Enter \".help\" for help\n", line)
	}
	return false
}

func printResult(res *command.Result) {
	if len(res.Columns) == 0 {
		fmt.Printf("OK (%d affected)\n", res.AffectedRows)
		return
	}

	widths := make([]int, len(res.Columns))
	for i, c := range res.Columns {
		widths[i] = len(c)
	}
	cells := make([][]string, len(res.Rows))
	for r, row := range res.Rows {
		cells[r] = make([]string, len(res.Columns))
		for i := range res.Columns {
			s := fmt.Sprintf("%v", row[i])
			cells[r][i] = s
			if len(s) > widths[i] {
				widths[i] = len(s)
			}
		}
	}

	printRow := func(values []string) {
		for i := range values {
			if i > 0 {
				fmt.Print(" | ")
			}
			fmt.Print(padRight(values[i], widths[i]))
		}
		fmt.Println()
	}

	printRow(res.Columns)
	for i := range res.Columns {
		if i > 0 {
			fmt.Print("-+-")
		}
		fmt.Print(strings.Repeat("-", widths[i]))
	}
	fmt.Println()
	for _, row := range cells {
		printRow(row)
	}
	fmt.Printf("(%d rows)\n", len(res.Rows))
}

func padRight(s string, w int) string {
	if len(s) >= w {
		return s
	}
	return s + strings.Repeat(" ", w-len(s))
}
