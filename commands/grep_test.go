package commands

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func TestGrep(t *testing.T) {
	cases := goldenTestSuite{
		"stdin":       {Args: []string{"grep", "a.*a"}, Stdin: "alpha\nbeta\ngamma\n"},
		"invert":      {Args: []string{"grep", "-v", "a"}, Stdin: "alpha\nbeta\nzzz\n"},
		"line-number": {Args: []string{"grep", "-n", "e"}, Stdin: "one\ntwo\nthree\n"},
		"ignore-case": {Args: []string{"grep", "-i", "ALPHA"}, Stdin: "alpha\nbeta\n"},
		"no-pattern":  {Args: []string{"grep"}},
	}

	cases.Run(t, Grep)
}

func TestGrep_noMatchExitCode(t *testing.T) {
	cmd := remotetest.Command(Grep, "grep", "zzz")
	cmd.Stdin = strings.NewReader("nothing here\n")

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Empty(t, string(out))
	assert.Equal(t, 1, cmd.ExitStatus)
}

func TestGrep_badPattern(t *testing.T) {
	cmd := remotetest.Command(Grep, "grep", "(unclosed")
	cmd.Stdin = strings.NewReader("text\n")

	_, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, 2, cmd.ExitStatus)
}

func TestGrep_multipleFilesShowNames(t *testing.T) {
	cmd := remotetest.Command(Grep, "grep", "x", "/a.txt", "/b.txt")
	cmd.Setup = func(f *remotetest.Fake) error {
		if err := f.Seed("/a.txt", "x marks\nnothing\n"); err != nil {
			return err
		}
		return f.Seed("/b.txt", "axe\n")
	}

	out, err := cmd.CombinedOutput()

	assert.NoError(t, err)
	assert.Equal(t, "/a.txt:x marks\n/b.txt:axe\n", string(out))
}
