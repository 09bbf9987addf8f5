package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func seedEtc(f *remotetest.Fake) error {
	for name, content := range map[string]string{
		"/etc/hostname": "target\n",
		"/etc/passwd":   "root:x:0:\n",
		"/etc/.secret":  "hidden\n",
	} {
		if err := f.Seed(name, content); err != nil {
			return err
		}
	}
	return nil
}

func TestLs(t *testing.T) {
	cmd := remotetest.Command(Ls, "ls", "/etc")
	cmd.Setup = seedEtc

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Equal(t, "hostname\npasswd\n", string(out))
}

func TestLs_all(t *testing.T) {
	cmd := remotetest.Command(Ls, "ls", "-a", "/etc")
	cmd.Setup = seedEtc

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, ".secret\nhostname\npasswd\n", string(out))
}

func TestLs_long(t *testing.T) {
	cmd := remotetest.Command(Ls, "ls", "-l", "/etc")
	cmd.Setup = seedEtc

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 0, cmd.ExitStatus)
	assert.Contains(t, string(out), "hostname")
	assert.Contains(t, string(out), "Jan  2 2006")
	assert.NotContains(t, string(out), ".secret")
}

func TestLs_cwdDefault(t *testing.T) {
	cmd := remotetest.Command(Ls, "ls")
	cmd.Session.Chdir("/etc")
	cmd.Setup = seedEtc

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "hostname\npasswd\n", string(out))
}

func TestLs_missing(t *testing.T) {
	cmd := remotetest.Command(Ls, "ls", "/nope")

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 1, cmd.ExitStatus)
	assert.Contains(t, string(out), "ls: /nope:")
}

func TestLs_multipleShowsNames(t *testing.T) {
	cmd := remotetest.Command(Ls, "ls", "/etc", "/srv")
	cmd.Setup = func(f *remotetest.Fake) error {
		if err := seedEtc(f); err != nil {
			return err
		}
		return f.Seed("/srv/app.bin", "\x7fELF")
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Contains(t, string(out), "/etc:\n")
	assert.Contains(t, string(out), "/srv:\n")
	assert.Contains(t, string(out), "app.bin")
}
