package lexer

import "fmt"

type TokenType int

const (
	// TokEnd is the sentinel returned when the token stream is exhausted.
	// It is never stored in the stream itself.
	TokEnd TokenType = iota

	TokWord       // An unquoted word
	TokQuotedWord // A double-quoted word, quotes included

	TokLessThan    // The ‘<’ operator
	TokGreaterThan // The ‘>’ operator
	TokPipe        // The ‘|’ operator
)

type Token struct {
	Kind TokenType
	Val  string
}

func (t TokenType) String() string {
	switch t {
	case TokEnd:
		return "(end)"
	case TokWord:
		return "WORD"
	case TokQuotedWord:
		return "QUOTED_WORD"
	case TokLessThan:
		return "LESSTHAN"
	case TokGreaterThan:
		return "GREATERTHAN"
	case TokPipe:
		return "PIPE"
	}

	panic("unreachable")
}

func (t Token) String() string {
	switch t.Kind {
	case TokWord, TokQuotedWord:
		return fmt.Sprintf("%s %s", t.Kind, t.Val)
	}
	return t.Kind.String()
}
