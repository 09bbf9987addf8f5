package remote

import (
	"bytes"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"path"
	"runtime"

	"github.com/spf13/afero"
)

// Local is a Client rooted at a directory on the local machine. It exists for
// development and for debugging sandboxed filesystem trees; file operations
// never escape the root.
type Local struct {
	fs   afero.Fs
	root string
}

// NewLocal returns a client whose file operations are confined to root.
func NewLocal(root string) *Local {
	return &Local{
		fs:   afero.NewBasePathFs(afero.NewOsFs(), root),
		root: root,
	}
}

func (l *Local) Pull(ctx context.Context, name string) (io.ReadCloser, error) {
	return l.fs.Open(name)
}

func (l *Local) Push(ctx context.Context, name string, r io.Reader, mode fs.FileMode) error {
	if dir := path.Dir(name); dir != "" {
		if err := l.fs.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	if err := afero.WriteReader(l.fs, name, r); err != nil {
		return err
	}
	return l.fs.Chmod(name, mode)
}

func (l *Local) List(ctx context.Context, name string) ([]Entry, error) {
	info, err := l.fs.Stat(name)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return []Entry{entryFor(name, info)}, nil
	}

	infos, err := afero.ReadDir(l.fs, name)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, fi := range infos {
		out = append(out, entryFor(path.Join(name, fi.Name()), fi))
	}
	return out, nil
}

func entryFor(fullPath string, fi os.FileInfo) Entry {
	return Entry{
		Name:    fi.Name(),
		Path:    fullPath,
		Size:    fi.Size(),
		Mode:    fi.Mode(),
		ModTime: fi.ModTime(),
	}
}

func (l *Local) Exec(ctx context.Context, argv []string, opts ExecOptions) (*ExecResult, error) {
	if len(argv) == 0 {
		return nil, &fs.PathError{Op: "exec", Path: "", Err: fs.ErrInvalid}
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	if opts.Dir != "" {
		cmd.Dir = path.Join(l.root, opts.Dir)
	} else {
		cmd.Dir = l.root
	}
	cmd.Env = append(os.Environ(), opts.Env...)
	cmd.Stdin = opts.Stdin

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	result := &ExecResult{
		Stdout: stdout.Bytes(),
		Stderr: stderr.Bytes(),
	}
	var exitErr *exec.ExitError
	switch {
	case err == nil:
	case errors.As(err, &exitErr):
		result.ExitCode = exitErr.ExitCode()
	default:
		return nil, err
	}
	return result, nil
}

func (l *Local) SysInfo(ctx context.Context) (*SysInfo, error) {
	hostname, err := os.Hostname()
	if err != nil {
		hostname = "localhost"
	}
	version := readFirstLine(l.fs, "/proc/version")
	return &SysInfo{
		Hostname: hostname,
		OS:       runtime.GOOS,
		Arch:     runtime.GOARCH,
		Version:  version,
	}, nil
}

func readFirstLine(fsys afero.Fs, name string) string {
	data, err := afero.ReadFile(fsys, name)
	if err != nil {
		return ""
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		data = data[:i]
	}
	return string(data)
}
