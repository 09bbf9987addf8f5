package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Pwd prints the session's working directory.
func Pwd(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "pwd",
		Short: "Print the working directory on the target.",
	}

	return cmd.Run(p, func() int {
		fmt.Fprintln(p.Stdout, p.Session.Cwd)
		return 0
	})
}

func init() {
	register(Command{
		Name:     "pwd",
		Category: CategorySession,
		Help:     "Print the working directory on the target.",
		Proc:     Pwd,
	})
}
