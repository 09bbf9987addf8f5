package commands

import (
	"fmt"
	"time"

	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/shell"
)

// Watch re-executes a program on the target at an interval until the line is
// interrupted.
func Watch(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "watch [-n SECONDS] PROGRAM [ARG]...",
		Short: "Run a program on the target repeatedly.",
	}

	seconds := cmd.Flags().StringLong("interval", 'n', "2", "seconds to wait between updates")

	return cmd.Run(p, func() int {
		argv := cmd.Flags().Args()
		if len(argv) == 0 {
			fmt.Fprintln(p.Stderr, "watch: missing program name")
			return 1
		}

		interval, err := time.ParseDuration(*seconds + "s")
		if err != nil || interval <= 0 {
			fmt.Fprintf(p.Stderr, "watch: invalid interval %q\n", *seconds)
			return 1
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			res, err := p.Client.Exec(p.Ctx, argv, remote.ExecOptions{
				Dir: p.Session.Cwd,
				Env: p.Session.Environ(),
			})
			if err != nil {
				fmt.Fprintf(p.Stderr, "watch: %v\n", err)
				return 1
			}

			fmt.Fprintf(p.Stdout, "Every %s: %s\n\n", interval, argv[0])
			p.Stdout.Write(res.Stdout)
			p.Stderr.Write(res.Stderr)

			select {
			case <-p.Ctx.Done():
				return 130
			case <-ticker.C:
				// Cancellation wins if both are ready.
				if p.Ctx.Err() != nil {
					return 130
				}
			}
		}
	})
}

func init() {
	register(Command{
		Name:     "watch",
		Category: CategoryTarget,
		Help:     "Run a program on the target repeatedly.",
		Proc:     Watch,
	})
}
