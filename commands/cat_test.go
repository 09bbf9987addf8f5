package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func TestCat(t *testing.T) {
	cases := goldenTestSuite{
		"file": {
			Args: []string{"cat", "/etc/hostname"},
			Setup: func(f *remotetest.Fake) error {
				return f.Seed("/etc/hostname", "target\n")
			},
		},
		"stdin":   {Args: []string{"cat"}, Stdin: "piped through\n"},
		"missing": {Args: []string{"cat", "/nope"}},
	}

	cases.Run(t, Cat)
}

func TestCat_missingExitCode(t *testing.T) {
	cmd := remotetest.Command(Cat, "cat", "/nope")
	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestCat_relativePath(t *testing.T) {
	cmd := remotetest.Command(Cat, "cat", "motd")
	cmd.Session.Chdir("/etc")
	cmd.Setup = func(f *remotetest.Fake) error {
		return f.Seed("/etc/motd", "welcome\n")
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.True(t, strings.HasPrefix(string(out), "welcome"))
}
