// Package remote defines the client abstraction for the single target the
// shell operates against. The interpreter core never touches the client
// directly; it threads the handle through to each invoked command.
package remote

import (
	"context"
	"io"
	"io/fs"
	"time"
)

// Entry describes a single directory entry on the target.
type Entry struct {
	Name    string
	Path    string
	Size    int64
	Mode    fs.FileMode
	ModTime time.Time
}

// IsDir reports whether the entry is a directory.
func (e Entry) IsDir() bool {
	return e.Mode.IsDir()
}

// ExecOptions control a remote process execution.
type ExecOptions struct {
	// Dir is the working directory for the process, relative to the
	// target's root.
	Dir string
	// Env holds NAME=value pairs layered over the target's environment.
	Env []string
	// Stdin, if set, is fed to the process.
	Stdin io.Reader
}

// ExecResult holds the outcome of a remote process execution.
type ExecResult struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// SysInfo is a structured snapshot of the target system.
type SysInfo struct {
	Hostname string `json:"hostname"`
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Version  string `json:"version"`
}

// Client is the connection to the remote target.
//
// Implementations are not assumed safe for concurrent use; callers that share
// a client across goroutines must wrap it with Serialized.
type Client interface {
	// Pull opens the file at path on the target for reading.
	Pull(ctx context.Context, path string) (io.ReadCloser, error)
	// Push writes the contents of r to path on the target, creating parent
	// directories as needed.
	Push(ctx context.Context, path string, r io.Reader, mode fs.FileMode) error
	// List returns the entries of the directory at path. Listing a regular
	// file returns a single entry for that file.
	List(ctx context.Context, path string) ([]Entry, error)
	// Exec runs argv on the target and waits for it to complete.
	Exec(ctx context.Context, argv []string, opts ExecOptions) (*ExecResult, error)
	// SysInfo fetches a structured description of the target.
	SysInfo(ctx context.Context) (*SysInfo, error)
}
