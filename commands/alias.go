package commands

import (
	"fmt"
	"strings"

	"github.com/cascade-sh/cascade/core/shell"
)

// Alias defines or lists command aliases.
func Alias(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "alias [NAME[=EXPANSION]]...",
		Short: "Define or list command aliases.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			for _, a := range p.Aliases.List() {
				fmt.Fprintf(p.Stdout, "alias %s='%s'\n", a.Name, a.Expansion)
			}
			return 0
		}

		exitCode := 0
		for _, arg := range args {
			name, expansion, found := strings.Cut(arg, "=")
			if found {
				if name == "" {
					fmt.Fprintf(p.Stderr, "alias: invalid alias name\n")
					exitCode = 1
					continue
				}
				p.Aliases.Define(name, expansion)
				continue
			}
			if expansion, ok := p.Aliases.Lookup(arg); ok {
				fmt.Fprintf(p.Stdout, "alias %s='%s'\n", arg, expansion)
			} else {
				fmt.Fprintf(p.Stderr, "alias: %s: not found\n", arg)
				exitCode = 1
			}
		}
		return exitCode
	})
}

// Unalias removes aliases.
func Unalias(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "unalias NAME...",
		Short: "Remove command aliases.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "unalias: missing alias name")
			return 1
		}

		exitCode := 0
		for _, name := range args {
			if !p.Aliases.Remove(name) {
				fmt.Fprintf(p.Stderr, "unalias: %s: not found\n", name)
				exitCode = 1
			}
		}
		return exitCode
	})
}

func init() {
	register(Command{
		Name:     "alias",
		Category: CategorySession,
		Help:     "Define or list command aliases.",
		Proc:     Alias,
	})
	register(Command{
		Name:     "unalias",
		Category: CategorySession,
		Help:     "Remove command aliases.",
		Proc:     Unalias,
	})
}
