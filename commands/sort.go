package commands

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/cascade-sh/cascade/core/shell"
)

// Sort orders lines of text.
func Sort(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "sort [-nru] [FILE]...",
		Short: "Sort lines of text.",
	}

	numeric := cmd.Flags().Bool('n', "compare according to numeric value")
	reverse := cmd.Flags().Bool('r', "reverse the result of comparisons")
	unique := cmd.Flags().Bool('u', "output only the first of equal lines")

	return cmd.Run(p, func() int {
		// All inputs merge into one ordered output.
		var lines []string
		exitCode := cmd.RunEachFileOrStdin(p, cmd.Flags().Args(), func(name string, fd io.Reader) error {
			scanner := bufio.NewScanner(fd)
			for scanner.Scan() {
				lines = append(lines, scanner.Text())
			}
			return scanner.Err()
		})

		less := func(a, b string) bool { return a < b }
		if *numeric {
			less = func(a, b string) bool {
				av, _ := strconv.ParseFloat(a, 64)
				bv, _ := strconv.ParseFloat(b, 64)
				if av != bv {
					return av < bv
				}
				return a < b
			}
		}
		sort.SliceStable(lines, func(i, j int) bool {
			if *reverse {
				return less(lines[j], lines[i])
			}
			return less(lines[i], lines[j])
		})

		var prev string
		for i, line := range lines {
			if *unique && i > 0 && line == prev {
				continue
			}
			fmt.Fprintln(p.Stdout, line)
			prev = line
		}
		return exitCode
	})
}

func init() {
	register(Command{
		Name:     "sort",
		Category: CategoryText,
		Help:     "Sort lines of text.",
		Proc:     Sort,
	})
}
