// Package shell implements the command-line interpretation engine: the
// tokenizer, the expansion passes, the for-loop construct, pipelines, and
// the dispatcher that ties them to registered commands.
package shell

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"regexp"
	"strings"
	"time"

	"github.com/abiosoft/readline"
	"github.com/cascade-sh/cascade/core/config"
	"github.com/cascade-sh/cascade/core/console"
	"github.com/cascade-sh/cascade/core/logger"
	"github.com/cascade-sh/cascade/core/remote"
)

var assignmentRef = regexp.MustCompile(`^([A-Za-z_]\w*)=(.*)$`)

// Options configure the I/O of a shell session.
type Options struct {
	Stdin      io.ReadCloser
	Stdout     io.Writer
	Stderr     io.Writer
	IsTerminal bool
	// Width reports the terminal width for line editing. Optional.
	Width func() int
}

// Shell is one interactive or scripted session: the read-eval-print cycle
// plus the state that survives across input lines.
type Shell struct {
	Session *Session
	Aliases *AliasTable
	History *History
	Client  remote.Client
	Console *console.Printer

	resolve  Resolver
	expander *Expander
	log      *logger.SessionLogger
	rl       *readline.Instance
	exiting  bool
}

// New builds a session against the given target. The user, home directory,
// and initial working directory are detected from the target itself.
func New(ctx context.Context, client remote.Client, cfg *config.Configuration, resolve Resolver, log *logger.SessionLogger, opts Options) (*Shell, error) {
	session := NewSession()
	detectIdentity(ctx, client, session)

	if opts.Width == nil {
		opts.Width = func() int { return 80 }
	}

	rlConfig := &readline.Config{
		Stdin:          readline.NewCancelableStdin(opts.Stdin),
		Stdout:         opts.Stdout,
		Stderr:         opts.Stderr,
		FuncGetWidth:   opts.Width,
		FuncIsTerminal: func() bool { return opts.IsTerminal },
	}
	if err := rlConfig.Init(); err != nil {
		return nil, err
	}
	rl, err := readline.NewEx(rlConfig)
	if err != nil {
		return nil, err
	}

	sh := &Shell{
		Session: session,
		Aliases: NewAliasTable(cfg.Aliases),
		History: NewHistory(cfg.HistoryLimit),
		Client:  client,
		Console: console.NewStyled(opts.Stdout, opts.Stderr, opts.IsTerminal),
		resolve: resolve,
		log:     log,
		rl:      rl,
	}
	sh.expander = &Expander{Aliases: sh.Aliases, Session: sh.Session}

	if log != nil {
		log.Record(&logger.Entry{SessionStart: &logger.SessionStart{
			User: session.User,
			Home: session.Home,
		}})
	}

	return sh, nil
}

// detectIdentity reads the target's own records to find out who we are and
// where home is, falling back to root when the target won't say.
func detectIdentity(ctx context.Context, client remote.Client, session *Session) {
	uid := "0"
	if data, err := pullAll(ctx, client, "/proc/self/status"); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			if strings.HasPrefix(line, "Uid:") {
				if fields := strings.Fields(line); len(fields) > 1 {
					uid = fields[1]
				}
				break
			}
		}
	}

	var user, home string
	if data, err := pullAll(ctx, client, "/etc/passwd"); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			parts := strings.Split(line, ":")
			// name:x:uid:gid:gecos:home:shell
			if len(parts) >= 6 && parts[2] == uid {
				user, home = parts[0], parts[5]
				break
			}
		}
	}

	if user != "" {
		session.User = user
		session.Setenv("USER", user)
	}
	if home == "" {
		if uid == "0" {
			home = "/root"
		} else if user != "" {
			home = "/home/" + user
		}
	}
	if home != "" {
		session.Home = home
		session.Setenv("HOME", home)
		// Start in the home directory when it exists.
		if _, err := client.List(ctx, home); err == nil {
			session.Chdir(home)
		}
	}
}

func pullAll(ctx context.Context, client remote.Client, path string) ([]byte, error) {
	rc, err := client.Pull(ctx, path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// Close releases the line editor.
func (s *Shell) Close() error {
	return s.rl.Close()
}

func (s *Shell) prompt() string {
	mark := s.Console.StatusMark(s.Session.LastExit == 0)
	return fmt.Sprintf("%s cascade:%s> ", mark, s.Session.DisplayDir())
}

// Run drives the interactive read-eval-print loop until the user exits or
// input is closed. A keyboard interrupt cancels the in-flight line's
// context; the session itself survives.
func (s *Shell) Run(ctx context.Context) {
	for !s.exiting {
		s.rl.SetPrompt(s.prompt())
		line, err := s.rl.Readline()
		switch {
		case err == io.EOF:
			return
		case err == readline.ErrInterrupt:
			s.Console.Noticef("use 'exit' to quit\n")
			continue
		case err != nil:
			s.Console.Errorf("readline: %v\n", err)
			continue
		}

		lineCtx, stop := signal.NotifyContext(ctx, os.Interrupt)
		s.Interpret(lineCtx, line)
		stop()
	}
}

// RunScript executes lines from r, skipping blanks and # comments.
func (s *Shell) RunScript(ctx context.Context, r io.Reader) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() && !s.exiting {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		s.Interpret(ctx, line)
	}
	return scanner.Err()
}

// Exiting reports whether an exit directive has been seen.
func (s *Shell) Exiting() bool {
	return s.exiting
}

// Interpret runs one top-level input line to completion and returns its exit
// code. Exactly one history entry is appended per line, however many
// statements, stages, or iterations it contains.
func (s *Shell) Interpret(ctx context.Context, line string) int {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return s.Session.LastExit
	}

	expanded, err := s.History.Expand(trimmed)
	if err != nil {
		s.report(err)
		s.Session.LastExit = 1
		return 1
	}
	if expanded != trimmed {
		s.Console.Dimf("%s\n", expanded)
	}

	s.History.Append(expanded)

	start := time.Now()
	exit := s.run(ctx, expanded)
	s.Session.LastExit = exit

	if s.log != nil {
		s.log.Record(&logger.Entry{CommandRun: &logger.CommandRun{
			Line:           expanded,
			ExitCode:       exit,
			DurationMicros: time.Since(start).Microseconds(),
		}})
	}
	if d := time.Since(start); d >= 500*time.Millisecond {
		s.Console.Dimf("command executed in %.3fs\n", d.Seconds())
	}
	return exit
}

func (s *Shell) run(ctx context.Context, line string) int {
	tokens, err := Tokenize(line)
	if err != nil {
		s.report(err)
		return 1
	}
	if len(tokens) == 0 {
		return 0
	}

	if tokens[0].isWord("for") {
		loop, err := ParseForLoop(tokens)
		if err != nil {
			s.report(err)
			return 1
		}
		return s.runForLoop(ctx, loop)
	}
	return s.runLine(ctx, tokens)
}

// runLine executes the ;-separated statement chains of one line in order.
func (s *Shell) runLine(ctx context.Context, tokens []Token) int {
	chains, _ := splitOn(tokens, Semi)
	exit := 0
	for _, chain := range chains {
		if len(chain) == 0 || s.exiting {
			continue
		}
		exit = s.runChain(ctx, chain)
	}
	return exit
}

// runChain executes pipelines joined by && and || with short-circuit
// semantics.
func (s *Shell) runChain(ctx context.Context, tokens []Token) int {
	segments, ops := splitOn(tokens, AndIf, OrIf)
	exit := s.runPipeline(ctx, segments[0])
	for i, op := range ops {
		if s.exiting {
			break
		}
		if (op == AndIf && exit == 0) || (op == OrIf && exit != 0) {
			exit = s.runPipeline(ctx, segments[i+1])
		}
	}
	return exit
}

// runPipeline expands every stage up front, then executes them in sequence,
// buffering each stage's output as the next stage's input. Stages run
// one at a time: the single client connection is not safe for concurrent
// use. The pipeline's exit code is the last stage's.
func (s *Shell) runPipeline(ctx context.Context, tokens []Token) int {
	if exit, ok := s.tryAssignment(tokens); ok {
		s.Session.LastExit = exit
		return exit
	}

	stages, _ := splitOn(tokens, Pipe)
	statements := make([][]string, 0, len(stages))
	for _, stage := range stages {
		if len(stage) == 0 {
			s.report(&SyntaxError{Msg: "empty pipeline stage"})
			s.Session.LastExit = 1
			return 1
		}
		words, err := s.expander.ExpandStatement(stage)
		if err != nil {
			s.report(err)
			s.Session.LastExit = 1
			return 1
		}
		if len(words) == 0 {
			s.report(&SyntaxError{Msg: "empty command"})
			s.Session.LastExit = 1
			return 1
		}
		statements = append(statements, words)
	}

	var stdin io.Reader = strings.NewReader("")
	exit := 0
	last := len(statements) - 1
	for i, words := range statements {
		if s.exiting {
			break
		}
		var stdout io.Writer = s.Console.Stdout()
		var buf *bytes.Buffer
		if i < last {
			buf = &bytes.Buffer{}
			stdout = buf
		}
		exit = s.invoke(ctx, words, stdin, stdout, i == last)
		if buf != nil {
			stdin = buf
		}
	}
	s.Session.LastExit = exit
	return exit
}

// tryAssignment handles NAME=value statements, which set the shell-local
// environment overlay rather than dispatching a command.
func (s *Shell) tryAssignment(tokens []Token) (int, bool) {
	if len(tokens) == 0 || tokens[0].Kind != Word || tokens[0].Quoted {
		return 0, false
	}
	m := assignmentRef.FindStringSubmatch(tokens[0].Val)
	if m == nil {
		return 0, false
	}
	for _, tok := range tokens[1:] {
		if tok.Kind != Word {
			return 0, false
		}
	}

	// Words after the first join into the value, matching how an unquoted
	// `GREETING=hello world` reads. Values get variable substitution but no
	// other expansion.
	parts := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		val := tok.Val
		if !tok.Literal {
			val = s.expander.expandVars(val)
		}
		if i == 0 {
			val = strings.TrimPrefix(val, m[1]+"=")
		}
		parts = append(parts, val)
	}
	s.Session.Setenv(m[1], strings.Join(parts, " "))
	return 0, true
}

// runForLoop executes the loop fail-soft: every iteration runs regardless of
// earlier exit codes, and the loop's exit code is the last statement of the
// last iteration. The loop variable is dynamically scoped; its prior value
// comes back once the loop completes.
func (s *Shell) runForLoop(ctx context.Context, loop *ForLoop) int {
	items, err := loop.Items(s.expander)
	if err != nil {
		s.report(err)
		return 1
	}

	saved, had := s.Session.Getenv(loop.Var)
	defer func() {
		if had {
			s.Session.Setenv(loop.Var, saved)
		} else {
			s.Session.Unsetenv(loop.Var)
		}
	}()

	exit := 0
	for _, item := range items {
		if ctx.Err() != nil {
			s.Console.Noticef("interrupted\n")
			return 130
		}
		if s.exiting {
			break
		}
		s.Session.Setenv(loop.Var, item)
		for _, statement := range loop.Body {
			if s.exiting {
				break
			}
			exit = s.runChain(ctx, statement)
		}
	}
	return exit
}

// invoke resolves and runs one statement. Alias re-expansion never happens
// here; that pass already ran.
func (s *Shell) invoke(ctx context.Context, words []string, stdin io.Reader, stdout io.Writer, lastStage bool) int {
	name := words[0]
	switch name {
	case "exit", "quit":
		s.exiting = true
		return 0
	}

	fn, ok := s.resolve(name)
	if !ok {
		s.report(&CommandNotFoundError{Name: name})
		return 127
	}

	return fn(&Proc{
		Ctx:     ctx,
		Client:  s.Client,
		Session: s.Session,
		Aliases: s.Aliases,
		History: s.History,
		Args:    words,
		Stdin:   stdin,
		Stdout:  stdout,
		Stderr:  s.Console.Stderr(),
		Printer: console.NewStyled(stdout, s.Console.Stderr(), s.Console.Styled() && lastStage),
	})
}

func (s *Shell) report(err error) {
	s.Console.Errorf("cascade: %v\n", err)
}
