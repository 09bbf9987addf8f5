// Package console is the append-only text sink the interpreter and commands
// write to. It handles styling so callers never emit raw escape codes.
package console

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"golang.org/x/term"
)

var (
	errorColor  = color.New(color.FgRed, color.Bold)
	noticeColor = color.New(color.FgYellow)
	dimColor    = color.New(color.Faint)
	headerColor = color.New(color.FgCyan, color.Bold)

	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("12")).
			Padding(0, 1)

	panelTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
)

// Printer writes styled text to a pair of output streams.
type Printer struct {
	stdout io.Writer
	stderr io.Writer
	styled bool
}

// New returns a printer for the given streams. Styling is enabled only when
// stdout is a terminal.
func New(stdout, stderr io.Writer) *Printer {
	styled := false
	if f, ok := stdout.(*os.File); ok {
		styled = term.IsTerminal(int(f.Fd()))
	}
	return &Printer{stdout: stdout, stderr: stderr, styled: styled}
}

// NewStyled returns a printer with styling forced on or off, for sinks like
// SSH sessions where the fd check doesn't apply.
func NewStyled(stdout, stderr io.Writer, styled bool) *Printer {
	return &Printer{stdout: stdout, stderr: stderr, styled: styled}
}

func (p *Printer) Stdout() io.Writer { return p.stdout }
func (p *Printer) Stderr() io.Writer { return p.stderr }

// Errorf reports an error to the error stream.
func (p *Printer) Errorf(format string, a ...interface{}) {
	p.fprintf(p.stderr, errorColor, format, a...)
}

// Noticef reports a non-fatal notice to the error stream.
func (p *Printer) Noticef(format string, a ...interface{}) {
	p.fprintf(p.stderr, noticeColor, format, a...)
}

// Dimf prints de-emphasized informational text.
func (p *Printer) Dimf(format string, a ...interface{}) {
	p.fprintf(p.stdout, dimColor, format, a...)
}

// Printf prints unstyled text to the output stream.
func (p *Printer) Printf(format string, a ...interface{}) {
	fmt.Fprintf(p.stdout, format, a...)
}

func (p *Printer) fprintf(w io.Writer, c *color.Color, format string, a ...interface{}) {
	if p.styled {
		c.Fprintf(w, format, a...)
		return
	}
	fmt.Fprintf(w, format, a...)
}

// Panel prints body inside a titled box.
func (p *Printer) Panel(title, body string) {
	if !p.styled {
		fmt.Fprintf(p.stdout, "== %s ==\n%s\n", title, body)
		return
	}
	content := panelTitleStyle.Render(title) + "\n" + body
	fmt.Fprintln(p.stdout, panelStyle.Render(content))
}

// Table writes rows in aligned columns with a styled header, in the manner of
// ls -l output. An empty header slice omits the header line.
func (p *Printer) Table(w io.Writer, header []string, rows [][]string) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	defer tw.Flush()

	if len(header) > 0 {
		for i, h := range header {
			if p.styled {
				h = headerColor.Sprint(h)
			}
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, h)
		}
		fmt.Fprintln(tw)
	}
	for _, row := range rows {
		for i, cell := range row {
			if i > 0 {
				fmt.Fprint(tw, "\t")
			}
			fmt.Fprint(tw, cell)
		}
		fmt.Fprintln(tw)
	}
}

// Styled reports whether styling is enabled.
func (p *Printer) Styled() bool { return p.styled }

// StatusMark renders the prompt's last-exit-status indicator.
func (p *Printer) StatusMark(ok bool) string {
	if !p.styled {
		if ok {
			return "+"
		}
		return "!"
	}
	if ok {
		return color.GreenString("✔")
	}
	return color.RedString("✖")
}
