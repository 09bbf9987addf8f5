package shell

import "strings"

// TokenKind distinguishes word tokens from the operators that separate them.
type TokenKind int

const (
	// Word is a command name, argument, or keyword.
	Word TokenKind = iota
	// Pipe is an unquoted "|".
	Pipe
	// Semi is an unquoted ";".
	Semi
	// AndIf is an unquoted "&&".
	AndIf
	// OrIf is an unquoted "||".
	OrIf
)

// Token is one unit produced by the tokenizer.
type Token struct {
	Kind TokenKind
	Val  string

	// Quoted is set when any part of the word came from a quoted context.
	// Quoted words are never treated as keywords or aliases.
	Quoted bool

	// Literal is set when the word must be taken verbatim: it contained a
	// single-quoted region or an escaped expansion character. Literal words
	// are exempt from variable, brace, and list expansion.
	Literal bool
}

func opToken(kind TokenKind) Token {
	return Token{Kind: kind}
}

func (t Token) isWord(s string) bool {
	return t.Kind == Word && !t.Quoted && t.Val == s
}

// String renders the operator or word, for diagnostics.
func (t Token) String() string {
	switch t.Kind {
	case Pipe:
		return "|"
	case Semi:
		return ";"
	case AndIf:
		return "&&"
	case OrIf:
		return "||"
	default:
		return t.Val
	}
}

// Tokenize converts a raw input line into tokens, honoring single and double
// quotes, backslash escapes, and the |, ;, && and || separators. Whitespace
// outside quotes separates words. An empty or blank line yields no tokens.
func Tokenize(line string) ([]Token, error) {
	var (
		tokens  []Token
		cur     strings.Builder
		started bool // a word is in progress, possibly empty (e.g. "")
		quoted  bool
		literal bool
	)

	endWord := func() {
		if !started {
			return
		}
		tokens = append(tokens, Token{
			Kind:    Word,
			Val:     cur.String(),
			Quoted:  quoted,
			Literal: literal,
		})
		cur.Reset()
		started, quoted, literal = false, false, false
	}

	i := 0
	for i < len(line) {
		c := line[i]
		switch {
		case c == '\'':
			// Single quotes preserve everything literally.
			end := strings.IndexByte(line[i+1:], '\'')
			if end < 0 {
				return nil, &SyntaxError{Msg: "unterminated quote"}
			}
			cur.WriteString(line[i+1 : i+1+end])
			started, quoted, literal = true, true, true
			i += end + 2

		case c == '"':
			// Double quotes preserve whitespace; the content remains
			// eligible for expansion.
			i++
			closed := false
			for i < len(line) {
				d := line[i]
				if d == '\\' && i+1 < len(line) {
					next := line[i+1]
					if next == '"' || next == '\\' || next == '$' {
						cur.WriteByte(next)
						if next == '$' {
							literal = true
						}
						i += 2
						continue
					}
				}
				if d == '"' {
					closed = true
					i++
					break
				}
				cur.WriteByte(d)
				i++
			}
			if !closed {
				return nil, &SyntaxError{Msg: "unterminated quote"}
			}
			started, quoted = true, true

		case c == '\\':
			if i+1 >= len(line) {
				return nil, &SyntaxError{Msg: "trailing backslash"}
			}
			next := line[i+1]
			cur.WriteByte(next)
			// An escaped expansion character must survive to the output
			// untouched, so the whole word opts out of expansion.
			if next == '$' || next == '{' || next == '(' {
				literal = true
			}
			started = true
			i += 2

		case c == '|':
			endWord()
			if i+1 < len(line) && line[i+1] == '|' {
				tokens = append(tokens, opToken(OrIf))
				i += 2
			} else {
				tokens = append(tokens, opToken(Pipe))
				i++
			}

		case c == '&' && i+1 < len(line) && line[i+1] == '&':
			endWord()
			tokens = append(tokens, opToken(AndIf))
			i += 2

		case c == ';':
			endWord()
			tokens = append(tokens, opToken(Semi))
			i++

		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			endWord()
			i++

		default:
			cur.WriteByte(c)
			started = true
			i++
		}
	}
	endWord()

	return tokens, nil
}

// splitOn partitions tokens into runs separated by the given operator kinds,
// returning the runs and the operator preceding each run after the first.
func splitOn(tokens []Token, kinds ...TokenKind) (runs [][]Token, ops []TokenKind) {
	isSep := func(k TokenKind) bool {
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}

	start := 0
	for i, tok := range tokens {
		if tok.Kind != Word && isSep(tok.Kind) {
			runs = append(runs, tokens[start:i])
			ops = append(ops, tok.Kind)
			start = i + 1
		}
	}
	runs = append(runs, tokens[start:])
	return runs, ops
}
