package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func TestRun(t *testing.T) {
	cmd := remotetest.Command(Run, "run", "uname", "-a")
	cmd.Client.ExecFn = func(argv []string, opts remote.ExecOptions) (*remote.ExecResult, error) {
		return &remote.ExecResult{Stdout: []byte("Linux target 5.15.0\n")}, nil
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "Linux target 5.15.0\n", string(out))
	assert.Equal(t, [][]string{{"uname", "-a"}}, cmd.Client.Execs)
}

func TestRun_exitCodePropagates(t *testing.T) {
	cmd := remotetest.Command(Run, "run", "false")
	cmd.Client.ExecFn = func(argv []string, opts remote.ExecOptions) (*remote.ExecResult, error) {
		return &remote.ExecResult{ExitCode: 3, Stderr: []byte("boom\n")}, nil
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 3, cmd.ExitStatus)
	assert.Equal(t, "boom\n", string(out))
}

func TestRun_usesSessionState(t *testing.T) {
	cmd := remotetest.Command(Run, "run", "pwd")
	cmd.Session.Chdir("/srv")
	cmd.Session.Setenv("DEBUG", "1")

	var got remote.ExecOptions
	cmd.Client.ExecFn = func(argv []string, opts remote.ExecOptions) (*remote.ExecResult, error) {
		got = opts
		return &remote.ExecResult{}, nil
	}

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "/srv", got.Dir)
	assert.Contains(t, got.Env, "DEBUG=1")
}

func TestRun_missingProgram(t *testing.T) {
	cmd := remotetest.Command(Run, "run")

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, string(out), "run: missing program name")
}

func TestMkdir(t *testing.T) {
	cmd := remotetest.Command(Mkdir, "mkdir", "-p", "logs", "/var/cache")
	cmd.Session.Chdir("/srv")

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, [][]string{{"mkdir", "-p", "/srv/logs", "/var/cache"}}, cmd.Client.Execs)
}

func TestMkdir_noOperand(t *testing.T) {
	cmd := remotetest.Command(Mkdir, "mkdir")

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Empty(t, cmd.Client.Execs)
}

func TestRm(t *testing.T) {
	cmd := remotetest.Command(Rm, "rm", "-r", "-f", "old")
	cmd.Session.Chdir("/srv")

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"rm", "-r", "-f", "/srv/old"}}, cmd.Client.Execs)
}
