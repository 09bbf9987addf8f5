package commands

import (
	"github.com/cascade-sh/cascade/core/shell"
)

// Exit is intercepted by the dispatcher before resolution; the registration
// exists so help lists it and Lookup finds it.
func Exit(p *shell.Proc) int {
	return 0
}

func init() {
	register(Command{
		Name:     "exit",
		Category: CategorySession,
		Help:     "Leave the shell (quit works too).",
		Proc:     Exit,
	})
}
