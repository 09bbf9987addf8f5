package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-sh/cascade/core/remote"
	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func TestWatch_stopsWhenInterrupted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	cmd := remotetest.Command(Watch, "watch", "-n", "0.01", "uptime")
	cmd.Ctx = ctx
	cmd.Client.ExecFn = func(argv []string, opts remote.ExecOptions) (*remote.ExecResult, error) {
		// Simulate the user pressing interrupt after the first update.
		cancel()
		return &remote.ExecResult{Stdout: []byte("up 3 days\n")}, nil
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 130, cmd.ExitStatus)
	assert.Contains(t, string(out), "Every 10ms: uptime")
	assert.Contains(t, string(out), "up 3 days")
	assert.Len(t, cmd.Client.Execs, 1)
}

func TestWatch_badInterval(t *testing.T) {
	cmd := remotetest.Command(Watch, "watch", "-n", "soon", "uptime")

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Empty(t, cmd.Client.Execs)
}

func TestWatch_missingProgram(t *testing.T) {
	cmd := remotetest.Command(Watch, "watch")

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
}
