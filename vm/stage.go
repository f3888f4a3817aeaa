package vm

import (
	"strings"

	"git.sr.ht/~plaid/plaidsh/ast"
)

// stage is one command of a flattened pipeline: its argv plus the optional
// input and output redirection targets.  Redirect nodes contribute no argv
// entries.
type stage struct {
	argv []string
	in   string // input redirection filename, empty for none
	out  string // output redirection filename, empty for none
}

// flatten walks the pipe spine left to right into the ordered list of
// stages.
func flatten(p *ast.Node) []stage {
	n := ast.Commands(p)
	stages := make([]stage, n)

	for i := n - 1; ; i-- {
		chain := p
		if p.Kind == ast.Pipe {
			chain = p.Right
		}
		stages[i] = buildStage(chain)

		if p.Kind != ast.Pipe {
			break
		}
		p = p.Left
	}
	return stages
}

func buildStage(chain *ast.Node) stage {
	st := stage{argv: make([]string, 0, 4)}

	it := chain
	for it != nil {
		switch {
		case it.Kind.IsWord():
			st.argv = append(st.argv, unquote(it.Kind, it.Value))
			it = it.Right
		case it.Kind == ast.RedirIn:
			st.in = unquote(it.Right.Kind, it.Right.Value)
			it = it.Right.Right
		case it.Kind == ast.RedirOut:
			st.out = unquote(it.Right.Kind, it.Right.Value)
			it = it.Right.Right
		default:
			it = it.Right
		}
	}
	return st
}

// unquote turns a node's raw lexeme into the string handed to the OS:
// surrounding quotes are stripped and two-character escape sequences are
// decoded.
func unquote(kind ast.NodeKind, s string) string {
	if kind == ast.QuotedWord && len(s) >= 2 {
		s = s[1 : len(s)-1]
	}
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	sb := strings.Builder{}
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 == len(s) {
			sb.WriteByte(s[i])
			continue
		}

		i++
		switch s[i] {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		default:
			// Space, quote, operator and backslash escapes stand for
			// themselves.
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}
