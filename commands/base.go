// Package commands holds the registered shell commands. Each command is a
// thin wrapper that talks to the remote client or mutates session state; all
// parsing and expansion happens before dispatch.
package commands

import (
	"fmt"
	"io"
	"sort"

	getopt "github.com/pborman/getopt/v2"

	"github.com/cascade-sh/cascade/core/shell"
)

// Command is one registered shell command.
type Command struct {
	Name     string
	Category string
	Help     string
	Proc     shell.CommandFunc
}

// Category display order for help output.
var categories = []string{
	CategorySession,
	CategoryFiles,
	CategoryText,
	CategoryTarget,
}

const (
	CategorySession = "session"
	CategoryFiles   = "files"
	CategoryText    = "text"
	CategoryTarget  = "target"
)

var registry = make(map[string]Command)

func register(cmd Command) {
	if _, exists := registry[cmd.Name]; exists {
		panic("duplicate command registration: " + cmd.Name)
	}
	registry[cmd.Name] = cmd
}

// Resolver adapts the registry to the dispatcher's lookup contract.
func Resolver() shell.Resolver {
	return func(name string) (shell.CommandFunc, bool) {
		cmd, ok := registry[name]
		if !ok {
			return nil, false
		}
		return cmd.Proc, true
	}
}

// List returns every registered command ordered by category then name.
func List() []Command {
	out := make([]Command, 0, len(registry))
	for _, cmd := range registry {
		out = append(out, cmd)
	}
	rank := make(map[string]int, len(categories))
	for i, c := range categories {
		rank[c] = i
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return rank[out[i].Category] < rank[out[j].Category]
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// Lookup returns the registered command with the given name.
func Lookup(name string) (Command, bool) {
	cmd, ok := registry[name]
	return cmd, ok
}

// BytesToHuman renders a byte count with a metric suffix.
func BytesToHuman(bytes int64) string {
	for _, e := range []struct {
		unit  string
		power int64
	}{
		{"P", 1e15},
		{"T", 1e12},
		{"G", 1e9},
		{"M", 1e6},
		{"K", 1e3},
	} {
		quotient := bytes / e.power
		switch {
		case quotient == 0:
			continue
		case quotient > 10:
			return fmt.Sprintf("%d%s", quotient, e.unit)
		default:
			return fmt.Sprintf("%0.1f%s", float64(bytes)/float64(e.power), e.unit)
		}
	}

	return fmt.Sprintf("%d", bytes)
}

// SimpleCommand handles flag parsing and help output so individual commands
// only supply their callback.
type SimpleCommand struct {
	// Use holds a one line usage string.
	Use string
	// Short holds a one line description of the command.
	Short string
	// ShowHelp sets whether help is displayed or not. If this is non-nil
	// when Run() is called, then the default help flag isn't added.
	ShowHelp *bool

	flags *getopt.Set
}

// Flags gets the command's flag set.
func (s *SimpleCommand) Flags() *getopt.Set {
	if s.flags == nil {
		s.flags = getopt.New()
	}
	return s.flags
}

// PrintHelp writes help for the command to the given writer.
func (s *SimpleCommand) PrintHelp(w io.Writer) {
	fmt.Fprint(w, "usage: ")
	fmt.Fprintln(w, s.Use)
	fmt.Fprintln(w, s.Short)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Flags:")
	s.Flags().PrintOptions(w)
}

// Run parses flags and, on success, calls the callback.
func (s *SimpleCommand) Run(p *shell.Proc, callback func() int) int {
	opts := s.Flags()

	// Add help flag if not overridden.
	if s.ShowHelp == nil {
		s.ShowHelp = opts.BoolLong("help", 'h', "show this help and exit")
	}

	if err := opts.Getopt(p.Args, nil); err != nil {
		fmt.Fprintf(p.Stderr, "error: %s\n\n", err)
		s.PrintHelp(p.Stderr)
		return 1
	}

	if *s.ShowHelp {
		s.PrintHelp(p.Stdout)
		return 0
	}

	return callback()
}

// RunEachFileOrStdin calls fn once per named file pulled from the target, or
// once with the pipeline's stdin when no files are named. A pull failure is
// reported and skips to the next file.
func (s *SimpleCommand) RunEachFileOrStdin(p *shell.Proc, files []string, fn func(name string, r io.Reader) error) int {
	if len(files) == 0 {
		if err := fn("-", p.Stdin); err != nil {
			fmt.Fprintf(p.Stderr, "%s: %v\n", p.Args[0], err)
			return 1
		}
		return 0
	}

	exitCode := 0
	for _, name := range files {
		rc, err := p.Client.Pull(p.Ctx, p.Session.ResolvePath(name))
		if err != nil {
			fmt.Fprintf(p.Stderr, "%s: %s: %v\n", p.Args[0], name, err)
			exitCode = 1
			continue
		}
		err = fn(name, rc)
		rc.Close()
		if err != nil {
			fmt.Fprintf(p.Stderr, "%s: %s: %v\n", p.Args[0], name, err)
			exitCode = 1
		}
	}
	return exitCode
}
