package shell

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func parseLoop(t *testing.T, line string) (*ForLoop, error) {
	t.Helper()
	tokens, err := Tokenize(line)
	assert.NoError(t, err)
	return ParseForLoop(tokens)
}

func TestParseForLoop(t *testing.T) {
	loop, err := parseLoop(t, "for x in a b c; do echo $x; done")
	assert.NoError(t, err)
	assert.Equal(t, "x", loop.Var)
	assert.Len(t, loop.List, 3)
	assert.Len(t, loop.Body, 1)
}

func TestParseForLoop_multiStatementBody(t *testing.T) {
	loop, err := parseLoop(t, "for f in one two; do echo $f; cat $f; done")
	assert.NoError(t, err)
	assert.Len(t, loop.Body, 2)
}

func TestParseForLoop_emptyListAllowed(t *testing.T) {
	loop, err := parseLoop(t, "for x in ; do echo $x; done")
	assert.NoError(t, err)
	assert.Empty(t, loop.List)
}

func TestParseForLoop_errors(t *testing.T) {
	cases := []struct {
		name string
		line string
	}{
		{name: "missing in", line: "for x a b; do echo $x; done"},
		{name: "missing do", line: "for x in a b; echo $x; done"},
		{name: "missing done", line: "for x in a b; do echo $x"},
		{name: "missing semi before do", line: "for x in a b do echo $x; done"},
		{name: "missing semi before done", line: "for x in a b; do echo $x done"},
		{name: "empty body", line: "for x in a b; do ; done"},
		{name: "bad variable", line: "for 9x in a b; do echo hi; done"},
		{name: "truncated", line: "for x in"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := parseLoop(t, tc.line)
			assert.Error(t, err)
			assert.IsType(t, &SyntaxError{}, err)
		})
	}
}

// The three list spellings iterate over the same items.
func TestForLoop_itemsListForms(t *testing.T) {
	e := newExpander()
	want := []string{"a", "b", "c"}

	for _, line := range []string{
		`for x in a b c; do echo $x; done`,
		`for x in "a b c"; do echo $x; done`,
		`for x in (a b c); do echo $x; done`,
	} {
		t.Run(line, func(t *testing.T) {
			loop, err := parseLoop(t, line)
			assert.NoError(t, err)

			items, err := loop.Items(e)
			assert.NoError(t, err)
			if diff := cmp.Diff(want, items); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestForLoop_itemsExpandVariables(t *testing.T) {
	e := newExpander()
	e.Session.Setenv("DIRS", "/a /b")

	loop, err := parseLoop(t, `for d in "$DIRS"; do echo $d; done`)
	assert.NoError(t, err)

	items, err := loop.Items(e)
	assert.NoError(t, err)
	assert.Equal(t, []string{"/a", "/b"}, items)
}

func TestForLoop_itemsBraceList(t *testing.T) {
	e := newExpander()

	loop, err := parseLoop(t, "for f in file.{go,md}; do echo $f; done")
	assert.NoError(t, err)

	items, err := loop.Items(e)
	assert.NoError(t, err)
	assert.Equal(t, []string{"file.go", "file.md"}, items)
}
