package commands

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"strconv"

	"github.com/cascade-sh/cascade/core/shell"
)

// Push copies a local file, or the pipeline's stdin, to the target.
func Push(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "push [--mode OCTAL] LOCAL REMOTE",
		Short: "Copy a local file to the target.",
	}

	modeStr := cmd.Flags().StringLong("mode", 0, "644", "permissions for the created file, in octal")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) != 2 {
			fmt.Fprintln(p.Stderr, "push: expected LOCAL REMOTE")
			return 1
		}

		modeBits, err := strconv.ParseUint(*modeStr, 8, 32)
		if err != nil {
			fmt.Fprintf(p.Stderr, "push: invalid mode %q\n", *modeStr)
			return 1
		}

		var src io.Reader
		if args[0] == "-" {
			src = p.Stdin
		} else {
			fd, err := os.Open(args[0])
			if err != nil {
				fmt.Fprintf(p.Stderr, "push: %v\n", err)
				return 1
			}
			defer fd.Close()
			src = fd
		}

		remotePath := p.Session.ResolvePath(args[1])
		if err := p.Client.Push(p.Ctx, remotePath, src, fs.FileMode(modeBits)); err != nil {
			fmt.Fprintf(p.Stderr, "push: %v\n", err)
			return 1
		}

		fmt.Fprintf(p.Stdout, "pushed %s -> %s\n", args[0], remotePath)
		return 0
	})
}

func init() {
	register(Command{
		Name:     "push",
		Category: CategoryFiles,
		Help:     "Copy a local file to the target.",
		Proc:     Push,
	})
}
