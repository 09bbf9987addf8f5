package commands

import (
	"fmt"

	"github.com/cascade-sh/cascade/core/shell"
)

// HistoryCmd lists, searches, and clears the session's command history.
func HistoryCmd(p *shell.Proc) int {
	cmd := &SimpleCommand{
		Use:   "history [-c] [-n COUNT] [--stats] [SEARCH]",
		Short: "Show the session command history.",
	}

	clear := cmd.Flags().Bool('c', "clear the history")
	count := cmd.Flags().Int('n', 0, "show only the last COUNT entries")
	stats := cmd.Flags().BoolLong("stats", 0, "show history statistics")

	return cmd.Run(p, func() int {
		switch {
		case *clear:
			p.History.Clear()
			return 0

		case *stats:
			st := p.History.Stats()
			fmt.Fprintf(p.Stdout, "entries: %d\n", st.Count)
			if st.Count > 0 {
				fmt.Fprintf(p.Stdout, "oldest:  %s\n", st.Oldest.Format("2006-01-02 15:04:05"))
				fmt.Fprintf(p.Stdout, "newest:  %s\n", st.Newest.Format("2006-01-02 15:04:05"))
			}
			return 0
		}

		var entries []shell.HistoryEntry
		switch args := cmd.Flags().Args(); {
		case len(args) > 0:
			entries = p.History.Search(args[0])
		case *count > 0:
			entries = p.History.Last(*count)
		default:
			entries = p.History.All()
		}

		for _, e := range entries {
			fmt.Fprintf(p.Stdout, "%5d  %s\n", e.Seq, e.Line)
		}
		return 0
	})
}

func init() {
	register(Command{
		Name:     "history",
		Category: CategorySession,
		Help:     "Show the session command history.",
		Proc:     HistoryCmd,
	})
}
