package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/shell"
)

// Run executes a program on the target and relays its output.
func Run(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "run PROGRAM [ARG]...",
		Short: "Execute a program on the target.",
	}

	return cmd.Run(p, func() int {
		argv := cmd.Flags().Args()
		if len(argv) == 0 {
			fmt.Fprintln(p.Stderr, "run: missing program name")
			return 1
		}
		return execOnTarget(p, argv)
	})
}

// execOnTarget runs argv on the target in the session's working directory
// with the session's variable overlay, relaying output and exit status.
func execOnTarget(p *shell.Proc, argv []string) int {
	res, err := p.Client.Exec(p.Ctx, argv, remote.ExecOptions{
		Dir:   p.Session.Cwd,
		Env:   p.Session.Environ(),
		Stdin: p.Stdin,
	})
	if err != nil {
		fmt.Fprintf(p.Stderr, "%s: %v\n", argv[0], err)
		return 1
	}
	p.Stdout.Write(res.Stdout)
	p.Stderr.Write(res.Stderr)
	return res.ExitCode
}

func init() {
	register(Command{
		Name:     "run",
		Category: CategoryTarget,
		Help:     "Execute a program on the target.",
		Proc:     Run,
	})
}
