package remote

import (
	"context"
	"io"
	"io/fs"
	"sync"
)

// Serialized wraps a client with a mutex so it can be shared between
// concurrent shell sessions. The underlying connection handles one request at
// a time; callers block until the client is free.
func Serialized(c Client) Client {
	return &serialized{inner: c}
}

type serialized struct {
	mu    sync.Mutex
	inner Client
}

func (s *serialized) Pull(ctx context.Context, path string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Pull(ctx, path)
}

func (s *serialized) Push(ctx context.Context, path string, r io.Reader, mode fs.FileMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Push(ctx, path, r, mode)
}

func (s *serialized) List(ctx context.Context, path string) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.List(ctx, path)
}

func (s *serialized) Exec(ctx context.Context, argv []string, opts ExecOptions) (*ExecResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Exec(ctx, argv, opts)
}

func (s *serialized) SysInfo(ctx context.Context) (*SysInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SysInfo(ctx)
}
