package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Env prints the session's environment overlay, or the values of the named
// variables.
func Env(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "env [NAME]...",
		Short: "Print session variables.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			for _, kv := range p.Session.Environ() {
				fmt.Fprintln(p.Stdout, kv)
			}
			return 0
		}

		exitCode := 0
		for _, name := range args {
			value := p.Session.Lookup(name)
			if value == "" {
				exitCode = 1
				continue
			}
			fmt.Fprintln(p.Stdout, value)
		}
		return exitCode
	})
}

func init() {
	register(Command{
		Name:     "env",
		Category: CategorySession,
		Help:     "Print session variables.",
		Proc:     Env,
	})
}
