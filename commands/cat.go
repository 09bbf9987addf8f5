package commands

import (
	"io"

	"github.com/cascade-sh/cascade/core/shell"
)

// Cat concatenates files from the target to standard output.
func Cat(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "cat [FILE]...",
		Short: "Concatenate files from the target to standard output.",
	}

	return cmd.Run(p, func() int {
		return cmd.RunEachFileOrStdin(p, cmd.Flags().Args(), func(name string, r io.Reader) error {
			_, err := io.Copy(p.Stdout, r)
			return err
		})
	})
}

func init() {
	register(Command{
		Name:     "cat",
		Category: CategoryFiles,
		Help:     "Concatenate files from the target to standard output.",
		Proc:     Cat,
	})
}
