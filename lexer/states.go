package lexer

import "unicode"

type lexFn func(*lexer) lexFn

// IsMetaChar reports whether r terminates an unquoted word.
func IsMetaChar(r rune) bool {
	return r == '"' ||
		r == '|' ||
		r == '>' ||
		r == '<'
}

func isEscapable(r rune) bool {
	return r == 'n' || r == 'r' || r == 't' || r == ' ' ||
		r == '"' || r == '>' || r == '<' || r == '|' ||
		r == '\\'
}

func lexDefault(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == eof:
			return nil
		case r == '"':
			l.backup()
			return lexQuote
		case r == '<':
			l.emit(TokLessThan)
		case r == '>':
			l.emit(TokGreaterThan)
		case r == '|':
			l.emit(TokPipe)
		case unicode.IsSpace(r):
			l.start = l.pos
		default:
			l.backup()
			return lexWord
		}
	}
}

func lexWord(l *lexer) lexFn {
	for {
		switch r := l.next(); {
		case r == '\\':
			if !l.lexEscape() {
				return nil
			}
		case unicode.IsSpace(r) || IsMetaChar(r):
			l.backup()
			l.emit(TokWord)
			return lexDefault
		case r == eof:
			l.emit(TokWord)
			return nil
		}
	}
}

// lexEscape consumes the character following a backslash and reports
// whether it forms a valid escape sequence.
func (l *lexer) lexEscape() bool {
	switch e := l.next(); {
	case e == eof:
		l.errorf("Illegal escape character at end of input")
		return false
	case !isEscapable(e):
		l.errorf("Illegal escape character %c", e)
		return false
	}
	return true
}

func lexQuote(l *lexer) lexFn {
	l.next() // Consume opening quote

	for {
		switch r := l.next(); {
		case r == eof:
			return l.errorf("Unterminated quote")
		case r == '\\':
			if !l.lexEscape() {
				return nil
			}
		case r == '"':
			l.emit(TokQuotedWord)
			return lexDefault
		}
	}
}
