package shell

import (
	"os"
	"path"
	"sort"
	"strconv"
	"strings"
)

// Session is the mutable state shared by every command in a shell session:
// the working directory on the target, the shell-local environment overlay,
// and the last exit code. It is threaded explicitly through execution rather
// than living in globals.
type Session struct {
	// Cwd is the current working directory on the target.
	Cwd string
	// Home is the detected home directory of the target user.
	Home string
	// User is the detected target user name.
	User string
	// LastExit is the exit code of the most recent top-level command.
	LastExit int

	env map[string]string
}

// NewSession returns a session rooted at the target's filesystem root.
func NewSession() *Session {
	s := &Session{
		Cwd:  "/",
		Home: "/root",
		User: "root",
		env:  make(map[string]string),
	}
	s.env["PWD"] = s.Cwd
	s.env["HOME"] = s.Home
	s.env["USER"] = s.User
	s.env["SHELL"] = "/bin/cascade"
	return s
}

// Setenv sets a variable in the shell-local overlay.
func (s *Session) Setenv(name, value string) {
	s.env[name] = value
}

// Getenv looks a variable up in the overlay only.
func (s *Session) Getenv(name string) (string, bool) {
	v, ok := s.env[name]
	return v, ok
}

// Unsetenv removes a variable from the overlay.
func (s *Session) Unsetenv(name string) {
	delete(s.env, name)
}

// Environ returns the overlay as sorted NAME=value pairs.
func (s *Session) Environ() []string {
	out := make([]string, 0, len(s.env))
	for k, v := range s.env {
		out = append(out, k+"="+v)
	}
	sort.Strings(out)
	return out
}

// Lookup resolves a variable the way the expander sees it: the special "?"
// name yields the last exit code, then the overlay, then the shell process's
// own environment, then the empty string.
func (s *Session) Lookup(name string) string {
	if name == "?" {
		return strconv.Itoa(s.LastExit)
	}
	if v, ok := s.env[name]; ok {
		return v
	}
	return os.Getenv(name)
}

// Chdir updates the working directory. The caller is responsible for
// verifying the directory exists on the target.
func (s *Session) Chdir(dir string) {
	s.Cwd = s.ResolvePath(dir)
	s.env["PWD"] = s.Cwd
}

// ResolvePath turns a possibly relative, possibly ~-prefixed path into an
// absolute path on the target.
func (s *Session) ResolvePath(p string) string {
	switch {
	case p == "~":
		p = s.Home
	case strings.HasPrefix(p, "~/"):
		p = path.Join(s.Home, p[2:])
	case !path.IsAbs(p):
		p = path.Join(s.Cwd, p)
	}
	return path.Clean(p)
}

// DisplayDir abbreviates the working directory with ~ for the prompt.
func (s *Session) DisplayDir() string {
	switch {
	case s.Cwd == s.Home:
		return "~"
	case strings.HasPrefix(s.Cwd, s.Home+"/"):
		return "~" + strings.TrimPrefix(s.Cwd, s.Home)
	default:
		return s.Cwd
	}
}
