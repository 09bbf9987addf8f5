package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// Cd changes the session's working directory after checking the directory
// exists on the target.
func Cd(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "cd [DIR]",
		Short: "Change the working directory on the target.",
	}

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) > 1 {
			fmt.Fprintln(p.Stderr, "cd: too many arguments")
			return 1
		}

		dir := "~"
		if len(args) == 1 {
			dir = args[0]
		}

		resolved := p.Session.ResolvePath(dir)
		entries, err := p.Client.List(p.Ctx, resolved)
		if err != nil {
			fmt.Fprintf(p.Stderr, "cd: %s: %v\n", dir, err)
			return 1
		}
		// Listing a regular file yields a single entry for the file itself.
		if len(entries) == 1 && entries[0].Path == resolved && !entries[0].IsDir() {
			fmt.Fprintf(p.Stderr, "cd: %s: not a directory\n", dir)
			return 1
		}

		p.Session.Chdir(dir)
		return 0
	})
}

func init() {
	register(Command{
		Name:     "cd",
		Category: CategorySession,
		Help:     "Change the working directory on the target.",
		Proc:     Cd,
	})
}
