// Package remotetest provides an in-memory fake target and an exec.Cmd-like
// harness for testing commands without a real client connection.
package remotetest

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path"
	"sort"
	"time"

	"github.com/spf13/afero"

	"github.com/cascade-sh/cascade/core/console"
	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/shell"
)

// FixedTime is the timestamp every seeded file carries so golden output stays
// deterministic.
var FixedTime = time.Date(2006, 1, 2, 3, 4, 5, 0, time.UTC)

// Fake is an in-memory remote.Client backed by an afero MemMapFs. Exec calls
// are recorded and answered from a script the test installs.
type Fake struct {
	Fs afero.Fs

	// Host is returned by SysInfo.
	Host remote.SysInfo

	// ExecFn answers Exec calls. When nil every execution succeeds with no
	// output.
	ExecFn func(argv []string, opts remote.ExecOptions) (*remote.ExecResult, error)

	// Execs records the argv of every Exec call in order.
	Execs [][]string
}

var _ remote.Client = (*Fake)(nil)

// NewFake returns an empty fake target with a fixed identity.
func NewFake() *Fake {
	return &Fake{
		Fs: afero.NewMemMapFs(),
		Host: remote.SysInfo{
			Hostname: "target",
			OS:       "linux",
			Arch:     "amd64",
			Version:  "Linux version 5.15.0-generic",
		},
	}
}

// Seed writes a file with fixed timestamps, creating parents.
func (f *Fake) Seed(name, content string) error {
	if err := f.Fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	if err := afero.WriteFile(f.Fs, name, []byte(content), 0o644); err != nil {
		return err
	}
	return f.Fs.Chtimes(name, FixedTime, FixedTime)
}

func (f *Fake) Pull(ctx context.Context, name string) (io.ReadCloser, error) {
	return f.Fs.Open(name)
}

func (f *Fake) Push(ctx context.Context, name string, r io.Reader, mode fs.FileMode) error {
	if err := f.Fs.MkdirAll(path.Dir(name), 0o755); err != nil {
		return err
	}
	if err := afero.WriteReader(f.Fs, name, r); err != nil {
		return err
	}
	return f.Fs.Chmod(name, mode)
}

func (f *Fake) List(ctx context.Context, name string) ([]remote.Entry, error) {
	info, err := f.Fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []remote.Entry{entryFor(name, info)}, nil
	}

	infos, err := afero.ReadDir(f.Fs, name)
	if err != nil {
		return nil, err
	}
	out := make([]remote.Entry, 0, len(infos))
	for _, fi := range infos {
		out = append(out, entryFor(path.Join(name, fi.Name()), fi))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (f *Fake) Exec(ctx context.Context, argv []string, opts remote.ExecOptions) (*remote.ExecResult, error) {
	f.Execs = append(f.Execs, argv)
	if f.ExecFn == nil {
		return &remote.ExecResult{}, nil
	}
	return f.ExecFn(argv, opts)
}

func (f *Fake) SysInfo(ctx context.Context) (*remote.SysInfo, error) {
	info := f.Host
	return &info, nil
}

func entryFor(name string, fi os.FileInfo) remote.Entry {
	return remote.Entry{
		Name:    fi.Name(),
		Path:    name,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
	}
}

// Cmd runs a single command function the way the dispatcher would, against a
// fake target. It is shaped like exec.Cmd so tests read naturally.
type Cmd struct {
	Proc shell.CommandFunc
	// Argv holds the command arguments; Argv[0] is the command name.
	Argv []string

	// Ctx, when set, replaces the default background context.
	Ctx context.Context

	Client  *Fake
	Session *shell.Session
	Aliases *shell.AliasTable
	History *shell.History

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	ExitStatus int

	// Setup seeds the fake target before the command runs.
	Setup func(f *Fake) error
}

// Command builds a runnable Cmd with an empty fake target.
func Command(proc shell.CommandFunc, name string, arg ...string) *Cmd {
	return &Cmd{
		Proc:    proc,
		Argv:    append([]string{name}, arg...),
		Client:  NewFake(),
		Session: shell.NewSession(),
		Aliases: shell.NewAliasTable(nil),
		History: shell.NewHistory(100),
	}
}

// CombinedOutput runs the command and returns its interleaved stdout and
// stderr.
func (c *Cmd) CombinedOutput() ([]byte, error) {
	buf := &bytes.Buffer{}
	c.Stdout = buf
	c.Stderr = buf
	if err := c.Run(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Run invokes the command and records its exit status.
func (c *Cmd) Run() error {
	if c.Setup != nil {
		if err := c.Setup(c.Client); err != nil {
			return fmt.Errorf("setup: %w", err)
		}
	}
	if c.Stdin == nil {
		c.Stdin = bytes.NewReader(nil)
	}
	if c.Stdout == nil {
		c.Stdout = io.Discard
	}
	if c.Stderr == nil {
		c.Stderr = io.Discard
	}

	if c.Ctx == nil {
		c.Ctx = context.Background()
	}

	c.ExitStatus = c.Proc(&shell.Proc{
		Ctx:     c.Ctx,
		Client:  c.Client,
		Session: c.Session,
		Aliases: c.Aliases,
		History: c.History,
		Args:    c.Argv,
		Stdin:   c.Stdin,
		Stdout:  c.Stdout,
		Stderr:  c.Stderr,
		Printer: console.NewStyled(c.Stdout, c.Stderr, false),
	})
	return nil
}
