package shell

import "sort"

// Alias is a name that expands to replacement text when it appears as a
// statement's first word.
type Alias struct {
	Name      string
	Expansion string
}

// AliasTable maps alias names to replacement text. Redefinition is
// last-write-wins; cycles are not detected here but caught at expansion time
// by the expander's recursion bound.
type AliasTable struct {
	aliases map[string]string
}

// defaultAliases is the fixed set seeded at shell startup. User aliases with
// the same name silently replace them.
var defaultAliases = map[string]string{
	"ll": "ls -la",
	"la": "ls -a",
	"l":  "ls",
	"h":  "history",
	"c":  "clear",
	"q":  "exit",
	"?":  "help",
}

// NewAliasTable returns a table seeded with the default aliases plus the
// given overrides.
func NewAliasTable(overrides map[string]string) *AliasTable {
	t := &AliasTable{aliases: make(map[string]string, len(defaultAliases)+len(overrides))}
	for name, expansion := range defaultAliases {
		t.aliases[name] = expansion
	}
	for name, expansion := range overrides {
		t.aliases[name] = expansion
	}
	return t
}

// Define adds or replaces an alias.
func (t *AliasTable) Define(name, expansion string) {
	t.aliases[name] = expansion
}

// Remove deletes an alias, reporting whether it existed.
func (t *AliasTable) Remove(name string) bool {
	_, ok := t.aliases[name]
	delete(t.aliases, name)
	return ok
}

// Lookup returns the expansion for name.
func (t *AliasTable) Lookup(name string) (string, bool) {
	expansion, ok := t.aliases[name]
	return expansion, ok
}

// List returns all aliases ordered by name.
func (t *AliasTable) List() []Alias {
	out := make([]Alias, 0, len(t.aliases))
	for name, expansion := range t.aliases {
		out = append(out, Alias{Name: name, Expansion: expansion})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
