package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Rm removes files on the target via remote execution.
func Rm(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "rm [-rf] FILE...",
		Short: "Remove files on the target.",
	}

	recursive := cmd.Flags().Bool('r', "remove directories and their contents recursively")
	force := cmd.Flags().Bool('f', "ignore nonexistent files, never prompt")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "rm: missing operand")
			return 1
		}

		argv := []string{"rm"}
		if *recursive {
			argv = append(argv, "-r")
		}
		if *force {
			argv = append(argv, "-f")
		}
		for _, name := range args {
			argv = append(argv, p.Session.ResolvePath(name))
		}
		return execOnTarget(p, argv)
	})
}

func init() {
	register(Command{
		Name:     "rm",
		Category: CategoryFiles,
		Help:     "Remove files on the target.",
		Proc:     Rm,
	})
}
