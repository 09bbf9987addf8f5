package commands

import (
	"bufio"
	"fmt"
	"io"

	"github.com/cascade-sh/cascade/core/shell"
)

// Head prints the first lines of each input.
func Head(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "head [-n COUNT] [FILE]...",
		Short: "Print the first lines of each input.",
	}

	count := cmd.Flags().Int('n', 10, "print the first COUNT lines")

	return cmd.Run(p, func() int {
		files := cmd.Flags().Args()
		showFileName := len(files) > 1
		first := true

		return cmd.RunEachFileOrStdin(p, files, func(name string, fd io.Reader) error {
			if showFileName {
				if !first {
					fmt.Fprintln(p.Stdout)
				}
				fmt.Fprintf(p.Stdout, "==> %s <==\n", name)
			}
			first = false

			scanner := bufio.NewScanner(fd)
			for i := 0; i < *count && scanner.Scan(); i++ {
				fmt.Fprintln(p.Stdout, scanner.Text())
			}
			return scanner.Err()
		})
	})
}

func init() {
	register(Command{
		Name:     "head",
		Category: CategoryText,
		Help:     "Print the first lines of each input.",
		Proc:     Head,
	})
}
