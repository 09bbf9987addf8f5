package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Help lists the available commands, or describes one of them.
func Help(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "help [COMMAND]",
		Short: "List available commands.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) > 0 {
			entry, ok := Lookup(args[0])
			if !ok {
				fmt.Fprintf(p.Stderr, "help: %s: no such command\n", args[0])
				return 1
			}
			fmt.Fprintf(p.Stdout, "%s - %s\n", entry.Name, entry.Help)
			return 0
		}

		var category string
		var rows [][]string
		flush := func() {
			if len(rows) == 0 {
				return
			}
			fmt.Fprintf(p.Stdout, "%s:\n", category)
			p.Printer.Table(p.Stdout, nil, rows)
			rows = nil
		}

		for _, entry := range List() {
			if entry.Category != category {
				flush()
				category = entry.Category
			}
			rows = append(rows, []string{"  " + entry.Name, entry.Help})
		}
		flush()
		return 0
	})
}

func init() {
	register(Command{
		Name:     "help",
		Category: CategoryTarget,
		Help:     "List available commands.",
		Proc:     Help,
	})
}
