package remote

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLocal(t *testing.T) (*Local, string) {
	t.Helper()
	root := t.TempDir()
	return NewLocal(root), root
}

func TestLocal_pushPull(t *testing.T) {
	client, _ := newTestLocal(t)
	ctx := context.Background()

	err := client.Push(ctx, "/srv/app/config.yaml", strings.NewReader("port: 8080\n"), 0o644)
	require.NoError(t, err)

	rc, err := client.Pull(ctx, "/srv/app/config.yaml")
	require.NoError(t, err)
	defer rc.Close()

	data, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "port: 8080\n", string(data))
}

func TestLocal_pushSetsMode(t *testing.T) {
	client, root := newTestLocal(t)

	err := client.Push(context.Background(), "/bin/run.sh", strings.NewReader("#!/bin/sh\n"), 0o755)
	require.NoError(t, err)

	info, err := os.Stat(filepath.Join(root, "bin", "run.sh"))
	require.NoError(t, err)
	assert.Equal(t, fs.FileMode(0o755), info.Mode().Perm())
}

func TestLocal_pullStaysInsideRoot(t *testing.T) {
	client, _ := newTestLocal(t)

	_, err := client.Pull(context.Background(), "/../../etc/passwd")
	assert.Error(t, err)
}

func TestLocal_list(t *testing.T) {
	client, _ := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, client.Push(ctx, "/data/a.txt", strings.NewReader("a"), 0o644))
	require.NoError(t, client.Push(ctx, "/data/b.txt", strings.NewReader("bb"), 0o644))

	entries, err := client.List(ctx, "/data")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a.txt", entries[0].Name)
	assert.Equal(t, "/data/a.txt", entries[0].Path)
	assert.Equal(t, int64(1), entries[0].Size)
	assert.False(t, entries[0].IsDir())
}

func TestLocal_listFile(t *testing.T) {
	client, _ := newTestLocal(t)
	ctx := context.Background()

	require.NoError(t, client.Push(ctx, "/data/a.txt", strings.NewReader("a"), 0o644))

	entries, err := client.List(ctx, "/data/a.txt")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "/data/a.txt", entries[0].Path)
}

func TestLocal_listMissing(t *testing.T) {
	client, _ := newTestLocal(t)

	_, err := client.List(context.Background(), "/nope")
	assert.Error(t, err)
}

func TestLocal_exec(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	client, _ := newTestLocal(t)

	res, err := client.Exec(context.Background(), []string{"sh", "-c", "echo out; echo err >&2; exit 4"}, ExecOptions{})
	require.NoError(t, err)
	assert.Equal(t, "out\n", string(res.Stdout))
	assert.Equal(t, "err\n", string(res.Stderr))
	assert.Equal(t, 4, res.ExitCode)
}

func TestLocal_execEnvAndStdin(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("requires a POSIX shell")
	}
	client, _ := newTestLocal(t)

	res, err := client.Exec(context.Background(), []string{"sh", "-c", `cat; echo "$CASCADE_MARKER"`}, ExecOptions{
		Env:   []string{"CASCADE_MARKER=set"},
		Stdin: strings.NewReader("piped\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "piped\nset\n", string(res.Stdout))
	assert.Equal(t, 0, res.ExitCode)
}

func TestLocal_execMissingProgram(t *testing.T) {
	client, _ := newTestLocal(t)

	_, err := client.Exec(context.Background(), []string{"cascade-no-such-binary-42"}, ExecOptions{})
	assert.Error(t, err)
}

func TestLocal_execEmptyArgv(t *testing.T) {
	client, _ := newTestLocal(t)

	_, err := client.Exec(context.Background(), nil, ExecOptions{})
	assert.Error(t, err)
}

func TestLocal_sysInfo(t *testing.T) {
	client, _ := newTestLocal(t)

	info, err := client.SysInfo(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, info.Hostname)
	assert.Equal(t, runtime.GOOS, info.OS)
	assert.Equal(t, runtime.GOARCH, info.Arch)
}
