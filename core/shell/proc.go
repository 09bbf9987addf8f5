package shell

import (
	"context"
	"io"

	"github.com/cascade-sh/cascade/core/console"
	"github.com/cascade-sh/cascade/core/remote"
)

// Proc carries everything one command invocation needs. The dispatcher
// builds a fresh Proc per pipeline stage; commands never reach around it for
// ambient state.
type Proc struct {
	// Ctx is canceled when the user interrupts the running line. Long
	// running commands check it between units of work.
	Ctx context.Context

	// Client is the connection to the remote target.
	Client remote.Client

	// Session is the shared shell session state.
	Session *Session

	// Aliases and History are the interpreter subsystems that the alias and
	// history management commands mutate.
	Aliases *AliasTable
	History *History

	// Args holds the expanded words; Args[0] is the command name.
	Args []string

	// Stdin is the previous pipeline stage's output, or empty input for the
	// first stage.
	Stdin io.Reader
	// Stdout is the next stage's input, or the console for the last stage.
	Stdout io.Writer
	// Stderr always goes straight to the console.
	Stderr io.Writer

	// Printer styles output written to Stdout. Styling is disabled when the
	// stage's output feeds another command.
	Printer *console.Printer
}

// CommandFunc is the handler side of the dispatch contract.
type CommandFunc func(p *Proc) int

// Resolver maps a statement's first word to its handler. The dispatcher is
// built with a resolver instead of importing the command registry directly.
type Resolver func(name string) (CommandFunc, bool)
