package shell

import (
	"regexp"
	"strings"
)

// maxAliasDepth bounds alias substitution so that alias cycles fail instead
// of looping forever.
const maxAliasDepth = 10

var envRef = regexp.MustCompile(`\$\{\w*\}|\$\w+|\$\?`)

// Expander applies the expansion passes to a statement's words. The order of
// passes is fixed: alias substitution, variable substitution, brace
// expansion, then parenthesized-list expansion. A failure in any pass aborts
// the whole expansion; nothing is executed.
type Expander struct {
	Aliases *AliasTable
	Session *Session
}

type word struct {
	val     string
	quoted  bool
	literal bool
}

// ExpandStatement expands the words of one pipe-free statement.
func (e *Expander) ExpandStatement(tokens []Token) ([]string, error) {
	tokens, err := e.expandAliases(tokens)
	if err != nil {
		return nil, err
	}
	return e.expandWords(tokens)
}

// ExpandList expands a for-loop iteration list. Lists never undergo alias
// substitution.
func (e *Expander) ExpandList(tokens []Token) ([]string, error) {
	return e.expandWords(tokens)
}

func (e *Expander) expandWords(tokens []Token) ([]string, error) {
	words := make([]word, 0, len(tokens))
	for _, tok := range tokens {
		if tok.Kind != Word {
			return nil, &SyntaxError{Msg: "unexpected " + tok.String()}
		}
		words = append(words, word{val: tok.Val, quoted: tok.Quoted, literal: tok.Literal})
	}

	// Variable substitution. Each reference yields exactly one word; the
	// substituted value is never re-split.
	for i := range words {
		if words[i].literal {
			continue
		}
		words[i].val = e.expandVars(words[i].val)
	}

	// Brace expansion turns one word into several siblings.
	var braced []word
	for _, w := range words {
		if w.literal {
			braced = append(braced, w)
			continue
		}
		for _, v := range expandBrace(w.val, 0) {
			braced = append(braced, word{val: v, quoted: w.quoted})
		}
	}

	expanded := expandParens(braced)

	out := make([]string, 0, len(expanded))
	for _, w := range expanded {
		out = append(out, w.val)
	}
	return out, nil
}

// expandAliases substitutes the statement's first word while it names an
// alias, splicing in the re-tokenized expansion text. Quoted words are never
// treated as aliases.
func (e *Expander) expandAliases(tokens []Token) ([]Token, error) {
	for depth := 0; ; depth++ {
		if len(tokens) == 0 {
			return tokens, nil
		}
		first := tokens[0]
		if first.Kind != Word || first.Quoted {
			return tokens, nil
		}
		expansion, ok := e.Aliases.Lookup(first.Val)
		if !ok {
			return tokens, nil
		}
		if depth >= maxAliasDepth {
			return nil, &AliasExpansionError{Name: first.Val}
		}
		repl, err := Tokenize(expansion)
		if err != nil {
			return nil, err
		}
		for _, tok := range repl {
			if tok.Kind != Word {
				return nil, &SyntaxError{Msg: "alias expansion may not contain " + tok.String()}
			}
		}
		tokens = append(repl, tokens[1:]...)
	}
}

func (e *Expander) expandVars(s string) string {
	if !strings.Contains(s, "$") {
		return s
	}
	return envRef.ReplaceAllStringFunc(s, func(ref string) string {
		name := strings.TrimPrefix(ref, "$")
		name = strings.TrimPrefix(name, "{")
		name = strings.TrimSuffix(name, "}")
		return e.Session.Lookup(name)
	})
}

// expandBrace expands the first well-formed {a,b,c} group in s, recursing
// into each result. Braces without top-level commas, and unbalanced braces,
// are literal text.
func expandBrace(s string, depth int) []string {
	if depth > 8 {
		return []string{s}
	}
	open := strings.IndexByte(s, '{')
	if open < 0 {
		return []string{s}
	}

	level := 0
	closing := -1
	var commas []int
	for i := open; i < len(s) && closing < 0; i++ {
		switch s[i] {
		case '{':
			level++
		case '}':
			level--
			if level == 0 {
				closing = i
			}
		case ',':
			if level == 1 {
				commas = append(commas, i)
			}
		}
	}
	if closing < 0 || len(commas) == 0 {
		return []string{s}
	}

	prefix, suffix := s[:open], s[closing+1:]
	var alts []string
	start := open + 1
	for _, c := range commas {
		alts = append(alts, s[start:c])
		start = c + 1
	}
	alts = append(alts, s[start:closing])

	var out []string
	for _, alt := range alts {
		out = append(out, expandBrace(prefix+alt+suffix, depth+1)...)
	}
	return out
}

// expandParens rewrites a (x y z) group, which the tokenizer may have split
// across several words, into its member words. Groups that never close, or
// that mix in quoted words, are left untouched.
func expandParens(words []word) []word {
	var out []word
	for i := 0; i < len(words); i++ {
		w := words[i]
		if w.quoted || w.literal || !strings.HasPrefix(w.val, "(") {
			out = append(out, w)
			continue
		}

		end := -1
		for j := i; j < len(words); j++ {
			if words[j].quoted || words[j].literal {
				break
			}
			if strings.HasSuffix(words[j].val, ")") {
				end = j
				break
			}
		}
		if end < 0 {
			out = append(out, w)
			continue
		}

		parts := make([]string, 0, end-i+1)
		for j := i; j <= end; j++ {
			parts = append(parts, words[j].val)
		}
		inner := strings.Join(parts, " ")
		inner = strings.TrimSuffix(strings.TrimPrefix(inner, "("), ")")
		for _, member := range strings.Fields(inner) {
			out = append(out, word{val: member})
		}
		i = end
	}
	return out
}
