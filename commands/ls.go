package commands

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/shell"
)

// Ls lists directory contents on the target.
func Ls(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "ls [-al] [FILE]...",
		Short: "List information about files on the target.",
	}

	listAll := cmd.Flags().Bool('a', "don't ignore entries starting with .")
	longListing := cmd.Flags().Bool('l', "use a long listing format")
	humanSize := cmd.Flags().BoolLong("human-readable", 0, "print human readable sizes")

	return cmd.Run(p, func() int {
		paths := cmd.Flags().Args()
		if len(paths) == 0 {
			paths = append(paths, ".")
		}
		sort.Strings(paths)
		showNames := len(paths) > 1

		sizeFmt := func(bytes int64) string {
			return fmt.Sprintf("%d", bytes)
		}
		if *humanSize {
			sizeFmt = BytesToHuman
		}

		exitCode := 0
		for i, dir := range paths {
			entries, err := p.Client.List(p.Ctx, p.Session.ResolvePath(dir))
			if err != nil {
				fmt.Fprintf(p.Stderr, "ls: %s: %v\n", dir, err)
				exitCode = 1
				continue
			}

			var kept []remote.Entry
			for _, e := range entries {
				if !*listAll && strings.HasPrefix(e.Name, ".") {
					continue
				}
				kept = append(kept, e)
			}
			sort.Slice(kept, func(i, j int) bool { return kept[i].Name < kept[j].Name })

			if showNames {
				if i > 0 {
					fmt.Fprintln(p.Stdout)
				}
				fmt.Fprintf(p.Stdout, "%s:\n", dir)
			}

			if *longListing {
				rows := make([][]string, 0, len(kept))
				for _, e := range kept {
					rows = append(rows, []string{
						e.Mode.String(),
						sizeFmt(e.Size),
						modTimeFmt(e.ModTime),
						e.Name,
					})
				}
				p.Printer.Table(p.Stdout, nil, rows)
			} else {
				for _, e := range kept {
					fmt.Fprintln(p.Stdout, e.Name)
				}
			}
		}
		return exitCode
	})
}

// modTimeFmt includes the time of day only for the current year, like ls.
func modTimeFmt(t time.Time) string {
	if t.Year() >= time.Now().Year() {
		return t.Format("Jan _2 15:04")
	}
	return t.Format("Jan _2 2006")
}

func init() {
	register(Command{
		Name:     "ls",
		Category: CategoryFiles,
		Help:     "List information about files on the target.",
		Proc:     Ls,
	})
}
