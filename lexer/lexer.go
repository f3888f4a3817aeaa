// Package lexer turns a raw line of input into a stream of typed tokens.
//
// Escape sequences and quote characters survive tokenization verbatim; it is
// up to the consumer to decode them.
package lexer

import (
	"fmt"
	"unicode/utf8"
)

const eof rune = -1

type lexer struct {
	input  string  // The input string to lex
	start  int     // The start of the current token in input
	pos    int     // The pos of the cursor in input
	width  int     // Width of the last rune lexed
	stream *Stream // Tokens lexed so far
	err    error   // The lexical error encountered, if any
}

// Tokenize scans input left to right into a token stream.  An empty input
// yields an empty stream, not an error.
func Tokenize(input string) (*Stream, error) {
	l := &lexer{input: input, stream: NewStream()}
	for state := lexDefault; state != nil; {
		state = state(l)
	}
	if l.err != nil {
		return nil, l.err
	}
	return l.stream, nil
}

func (l *lexer) emit(t TokenType) {
	tok := Token{Kind: t}
	if t == TokWord || t == TokQuotedWord {
		tok.Val = l.input[l.start:l.pos]
	}
	l.stream.Append(tok)
	l.start = l.pos
}

func (l *lexer) next() rune {
	var r rune

	if l.pos >= len(l.input) {
		l.width = 0
		return eof
	}
	r, l.width = utf8.DecodeRuneInString(l.input[l.pos:])
	l.pos += l.width
	return r
}

func (l *lexer) peek() rune {
	r := l.next()
	l.backup()
	return r
}

func (l *lexer) backup() {
	l.pos -= l.width
}

func (l *lexer) errorf(format string, args ...any) lexFn {
	l.err = fmt.Errorf(format, args...)
	return nil
}
