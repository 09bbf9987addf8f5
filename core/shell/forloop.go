package shell

import (
	"regexp"
	"strings"

	"github.com/anmitsu/go-shlex"
)

var loopVarName = regexp.MustCompile(`^[A-Za-z_]\w*$`)

// ForLoop is one parsed `for VAR in LIST; do BODY; done` construct. The list
// and body are kept as unexpanded tokens so the loop variable expands fresh
// on every iteration.
type ForLoop struct {
	Var  string
	List []Token
	Body [][]Token
}

// ParseForLoop parses tokens as a for-loop. The caller has already checked
// that the first token is the `for` keyword; any other shape mismatch is a
// syntax error rather than a fallback to ordinary dispatch.
func ParseForLoop(tokens []Token) (*ForLoop, error) {
	if len(tokens) < 6 || !tokens[0].isWord("for") {
		return nil, forLoopSyntaxError()
	}
	if tokens[1].Kind != Word || !loopVarName.MatchString(tokens[1].Val) {
		return nil, &SyntaxError{Msg: "for: invalid loop variable"}
	}
	if !tokens[2].isWord("in") {
		return nil, forLoopSyntaxError()
	}

	listEnd := -1
	for i := 3; i < len(tokens); i++ {
		if tokens[i].Kind == Semi {
			listEnd = i
			break
		}
	}
	if listEnd < 0 || listEnd+1 >= len(tokens) || !tokens[listEnd+1].isWord("do") {
		return nil, forLoopSyntaxError()
	}

	last := len(tokens) - 1
	if !tokens[last].isWord("done") || tokens[last-1].Kind != Semi {
		return nil, forLoopSyntaxError()
	}

	bodyTokens := tokens[listEnd+2 : last-1]
	statements, _ := splitOn(bodyTokens, Semi)
	var body [][]Token
	for _, stmt := range statements {
		if len(stmt) == 0 {
			continue
		}
		body = append(body, stmt)
	}
	if len(body) == 0 {
		return nil, &SyntaxError{Msg: "for: empty loop body"}
	}

	return &ForLoop{
		Var:  tokens[1].Val,
		List: tokens[3:listEnd],
		Body: body,
	}, nil
}

func forLoopSyntaxError() error {
	return &SyntaxError{Msg: "invalid for loop, use: for VAR in LIST; do COMMANDS; done"}
}

// Items computes the iteration values. A single quoted token holding several
// words is split like a shell word list; everything else goes through the
// ordinary expansion passes, so brace expressions and parenthesized lists
// work the same here as in any statement.
func (f *ForLoop) Items(e *Expander) ([]string, error) {
	if len(f.List) == 1 && f.List[0].Quoted {
		val := f.List[0].Val
		if !f.List[0].Literal {
			val = e.expandVars(val)
		}
		if strings.ContainsAny(val, " \t") {
			items, err := shlex.Split(val, true)
			if err != nil {
				return nil, &SyntaxError{Msg: "for: bad iteration list: " + err.Error()}
			}
			return items, nil
		}
	}
	return e.ExpandList(f.List)
}
