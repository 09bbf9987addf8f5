package commands

import (
	"bufio"
	"fmt"
	"io"
	"regexp"

	"github.com/cascade-sh/cascade/core/shell"
)

// Grep searches files on the target, or the pipeline's stdin, for lines
// matching a pattern.
func Grep(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "grep [-inv] PATTERN [FILE]...",
		Short: "Search for text matching a pattern.",
	}

	invert := cmd.Flags().Bool('v', "select lines not matching the pattern")
	ignoreCase := cmd.Flags().Bool('i', "match without regard to case")
	showLineNumbers := cmd.Flags().Bool('n', "show line numbers")

	return cmd.Run(p, func() int {
		args := cmd.Flags().Args()
		if len(args) == 0 {
			fmt.Fprintln(p.Stderr, "grep: missing argument PATTERN")
			return 1
		}

		pattern := args[0]
		if *ignoreCase {
			pattern = "(?i)" + pattern
		}
		regex, err := regexp.Compile(pattern)
		if err != nil {
			fmt.Fprintf(p.Stderr, "grep: %v\n", err)
			return 2
		}

		files := args[1:]
		showFileName := len(files) > 1
		matched := false
		exitCode := cmd.RunEachFileOrStdin(p, files, func(name string, fd io.Reader) error {
			scanner := bufio.NewScanner(fd)
			lineNo := 1
			for scanner.Scan() {
				line := scanner.Bytes()
				lineMatches := regex.Match(line)

				if lineMatches != *invert {
					matched = true
					if showFileName {
						fmt.Fprintf(p.Stdout, "%s:", name)
					}
					if *showLineNumbers {
						fmt.Fprintf(p.Stdout, "%d:", lineNo)
					}
					fmt.Fprintf(p.Stdout, "%s\n", line)
				}
				lineNo++
			}
			return scanner.Err()
		})

		if exitCode == 0 && !matched {
			return 1
		}
		return exitCode
	})
}

func init() {
	register(Command{
		Name:     "grep",
		Category: CategoryText,
		Help:     "Search for text matching a pattern.",
		Proc:     Grep,
	})
}
