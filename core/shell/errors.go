package shell

import "fmt"

// SyntaxError reports malformed quoting or control-flow grammar. The
// offending line is reported and never executed; the shell continues.
type SyntaxError struct {
	Msg string
}

func (e *SyntaxError) Error() string {
	return "syntax error: " + e.Msg
}

// AliasExpansionError reports that alias substitution exceeded its recursion
// bound, which happens when aliases form a cycle.
type AliasExpansionError struct {
	Name string
}

func (e *AliasExpansionError) Error() string {
	return fmt.Sprintf("alias loop detected while expanding %q", e.Name)
}

// CommandNotFoundError reports that a statement's first word resolved to
// neither a control construct nor a registered command.
type CommandNotFoundError struct {
	Name string
}

func (e *CommandNotFoundError) Error() string {
	return e.Name + ": command not found"
}

// ExpansionError reports a variable or brace reference too ambiguous to
// treat as literal text.
type ExpansionError struct {
	Msg string
}

func (e *ExpansionError) Error() string {
	return "expansion error: " + e.Msg
}

// HistoryExpansionError reports a failed !-style history reference.
type HistoryExpansionError struct {
	Msg string
}

func (e *HistoryExpansionError) Error() string {
	return "history expansion error: " + e.Msg
}
