package commands

import (
	"testing"

	"github.com/cascade-sh/cascade/core/remote/remotetest"
)

func TestHead(t *testing.T) {
	cases := goldenTestSuite{
		"count": {Args: []string{"head", "-n", "2"}, Stdin: "1\n2\n3\n"},
		"short": {Args: []string{"head", "-n", "10"}, Stdin: "only\n"},
		"multiple": {
			Args: []string{"head", "-n", "1", "/a.txt", "/b.txt"},
			Setup: func(f *remotetest.Fake) error {
				if err := f.Seed("/a.txt", "a1\na2\n"); err != nil {
					return err
				}
				return f.Seed("/b.txt", "b1\nb2\n")
			},
		},
	}

	cases.Run(t, Head)
}
