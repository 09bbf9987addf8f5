package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Mkdir creates directories on the target via remote execution.
func Mkdir(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "mkdir [-p] DIR...",
		Short: "Create directories on the target.",
	}

	parents := cmd.Flags().Bool('p', "make parent directories as needed")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "mkdir: missing operand")
			return 1
		}

		argv := []string{"mkdir"}
		if *parents {
			argv = append(argv, "-p")
		}
		for _, dir := range args {
			argv = append(argv, p.Session.ResolvePath(dir))
		}
		return execOnTarget(p, argv)
	})
}

func init() {
	register(Command{
		Name:     "mkdir",
		Category: CategoryFiles,
		Help:     "Create directories on the target.",
		Proc:     Mkdir,
	})
}
