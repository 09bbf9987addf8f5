package commands

import (
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"

	"github.com/cascade-sh/cascade/core/remote/remotetest"
	"github.com/cascade-sh/cascade/core/shell"
)

func ExampleBytesToHuman() {

	// < 1k is presented directly
	fmt.Println(BytesToHuman(512))

	// Multiples > 10 are shown without decimal.
	fmt.Println(BytesToHuman(23 * 10e8))

	// Multiples < 10 are shown with decimal.
	fmt.Println(BytesToHuman(5 * 1024))

	// Output: 512
	// 23G
	// 5.1K
}

func TestRegistry(t *testing.T) {
	resolve := Resolver()
	for _, entry := range List() {
		t.Run(entry.Name, func(t *testing.T) {
			assert.NotNil(t, entry.Proc)
			assert.NotEmpty(t, entry.Help)
			assert.NotEmpty(t, entry.Category)

			proc, ok := resolve(entry.Name)
			assert.True(t, ok)
			assert.NotNil(t, proc)
		})
	}
}

func TestResolver_unknown(t *testing.T) {
	_, ok := Resolver()("no-such-command")
	assert.False(t, ok)
}

type goldenTestSuite map[string]goldenTest

type goldenTest struct {
	Args  []string
	Stdin string
	Setup func(f *remotetest.Fake) error
}

func (gts goldenTestSuite) Run(t *testing.T, proc shell.CommandFunc) {
	t.Helper()

	g := goldie.New(
		t,
		goldie.WithFixtureDir(filepath.Join("testdata", "golden")),
		goldie.WithDiffEngine(goldie.ColoredDiff),
		goldie.WithTestNameForDir(true),
	)

	for tn, tc := range gts {
		t.Run(tn, func(t *testing.T) {
			cmd := remotetest.Command(proc, tc.Args[0], tc.Args[1:]...)
			cmd.Setup = tc.Setup
			if tc.Stdin != "" {
				cmd.Stdin = strings.NewReader(tc.Stdin)
			}

			out, err := cmd.CombinedOutput()
			if err != nil {
				t.Fatal(err)
			}

			g.Assert(t, tn, out)
		})
	}
}
