package commands

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cascade-sh/cascade/core/shell"
)

// Wc counts lines, words, and bytes.
func Wc(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "wc [-clw] [FILE]...",
		Short: "Count lines, words, and bytes.",
	}

	countLines := cmd.Flags().Bool('l', "print the newline counts")
	countWords := cmd.Flags().Bool('w', "print the word counts")
	countBytes := cmd.Flags().Bool('c', "print the byte counts")

	return cmd.Run(p, func() int {
		// No selection means all three.
		if !*countLines && !*countWords && !*countBytes {
			*countLines, *countWords, *countBytes = true, true, true
		}

		printCounts := func(lines, words, bytes int64, name string) {
			var cols []string
			if *countLines {
				cols = append(cols, fmt.Sprintf("%7d", lines))
			}
			if *countWords {
				cols = append(cols, fmt.Sprintf("%7d", words))
			}
			if *countBytes {
				cols = append(cols, fmt.Sprintf("%7d", bytes))
			}
			if name != "-" {
				cols = append(cols, name)
			}
			fmt.Fprintln(p.Stdout, strings.Join(cols, " "))
		}

		files := cmd.Flags().Args()
		var totalLines, totalWords, totalBytes int64
		exitCode := cmd.RunEachFileOrStdin(p, files, func(name string, fd io.Reader) error {
			var lines, words, bytes int64
			reader := bufio.NewReader(fd)
			for {
				line, err := reader.ReadString('\n')
				bytes += int64(len(line))
				words += int64(len(strings.Fields(line)))
				if err != nil {
					if err == io.EOF {
						break
					}
					return err
				}
				lines++
			}

			printCounts(lines, words, bytes, name)
			totalLines += lines
			totalWords += words
			totalBytes += bytes
			return nil
		})

		if len(files) > 1 {
			printCounts(totalLines, totalWords, totalBytes, "total")
		}
		return exitCode
	})
}

func init() {
	register(Command{
		Name:     "wc",
		Category: CategoryText,
		Help:     "Count lines, words, and bytes.",
		Proc:     Wc,
	})
}
