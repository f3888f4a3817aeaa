// Package parser consumes a token stream into a validated pipeline AST,
// expanding unquoted words through the pattern-matching service and
// enforcing the shell grammar.
package parser

import (
	"fmt"

	"git.sr.ht/~plaid/plaidsh/ast"
	"git.sr.ht/~plaid/plaidsh/glob"
	"git.sr.ht/~plaid/plaidsh/lexer"
)

type parser struct {
	toks *lexer.Stream
	exp  glob.Expander

	// At most one redirection per direction in the whole pipeline.
	redirIn, redirOut bool
}

// Parse consumes the stream destructively and returns the pipeline AST.  A
// blank line parses to a nil pipeline with no error; the caller treats that
// as a no-op.  On error the partially built AST is abandoned.
func Parse(toks *lexer.Stream, exp glob.Expander) (*ast.Node, error) {
	p := parser{toks: toks, exp: exp}

	var ret *ast.Node
	for {
		var err error

		switch tt := p.toks.NextType(); tt {
		case lexer.TokEnd:
			return ret, nil
		case lexer.TokWord, lexer.TokQuotedWord:
			err = p.parseWord(&ret, tt)
		case lexer.TokLessThan, lexer.TokGreaterThan:
			err = p.parseRedirect(&ret, tt)
		case lexer.TokPipe:
			err = p.parsePipe(&ret)
		default:
			err = fmt.Errorf("Unexpected token %s", tt)
		}

		if err != nil {
			return nil, err
		}
	}
}

func (p *parser) parseWord(ret **ast.Node, tt lexer.TokenType) error {
	t := p.toks.Peek()
	p.toks.Consume()

	// Quoted words are never pattern-expanded.
	if tt == lexer.TokQuotedWord {
		ast.Append(ret, ast.NewWord(ast.QuotedWord, nil, t.Val))
		return nil
	}

	xs, err := p.expand(t.Val)
	if err != nil {
		return err
	}
	for _, x := range xs {
		ast.Append(ret, ast.NewWord(ast.Word, nil, x))
	}
	return nil
}

func (p *parser) parseRedirect(ret **ast.Node, tt lexer.TokenType) error {
	p.toks.Consume()

	kind, seen := ast.RedirIn, &p.redirIn
	if tt == lexer.TokGreaterThan {
		kind, seen = ast.RedirOut, &p.redirOut
	}

	// The open chain always ends on a word, a redirect included: its
	// target chain carries at least the filename.  Only the per-direction
	// counts below can reject a redirect here.
	switch {
	case *ret == nil:
		return errNoCommand
	case *seen:
		return errMultipleRedir
	case p.toks.NextType() != lexer.TokWord:
		return errExpectFilename
	}

	t := p.toks.Peek()
	p.toks.Consume()

	xs, err := p.expand(t.Val)
	if err != nil {
		return err
	}
	if len(xs) == 0 {
		// Even under nullglob a redirect must keep its target.
		xs = []string{t.Val}
	}

	var target *ast.Node
	for _, x := range xs {
		ast.Append(&target, ast.NewWord(ast.Word, nil, x))
	}
	ast.Append(ret, ast.NewRedirect(kind, target))
	*seen = true
	return nil
}

func (p *parser) parsePipe(ret **ast.Node) error {
	p.toks.Consume()

	if *ret == nil {
		return errNoCommand
	}

	tt := p.toks.NextType()
	if tt != lexer.TokWord && tt != lexer.TokQuotedWord {
		return errNoCommand
	}

	t := p.toks.Peek()
	p.toks.Consume()

	var rhs *ast.Node
	if tt == lexer.TokQuotedWord {
		rhs = ast.NewWord(ast.QuotedWord, nil, t.Val)
	} else {
		xs, err := p.expand(t.Val)
		if err != nil {
			return err
		}
		if len(xs) == 0 {
			return errNoCommand
		}
		for _, x := range xs {
			ast.Append(&rhs, ast.NewWord(ast.Word, nil, x))
		}
	}

	*ret = ast.NewPipe(*ret, rhs)
	return nil
}

func (p *parser) expand(pattern string) ([]string, error) {
	xs, err := p.exp.Expand(pattern)
	if err != nil {
		return nil, errGlob
	}
	return xs, nil
}
