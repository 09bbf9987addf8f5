package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Clear wipes the terminal display.
func Clear(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "clear",
		Short: "Clear the terminal screen.",
	}

	return cmd.Run(p, func() int {
		fmt.Fprint(p.Stdout, "\033[2J\033[H")
		return 0
	})
}

func init() {
	register(Command{
		Name:     "clear",
		Category: CategoryTarget,
		Help:     "Clear the terminal screen.",
		Proc:     Clear,
	})
}
