package lexer

import "git.sr.ht/~plaid/plaidsh/pkg/queue"

// Stream is an ordered sequence of tokens built once per input line by the
// tokenizer and consumed destructively from the front by the parser.
type Stream struct {
	toks queue.Queue[Token]
}

func NewStream() *Stream {
	return &Stream{queue.New[Token](8)}
}

// NextType returns the kind of the token at the front of the stream, or
// TokEnd when the stream is exhausted.
func (s *Stream) NextType() TokenType {
	t := s.toks.Peek()
	if t == nil {
		return TokEnd
	}
	return t.Kind
}

// Peek returns the token at the front of the stream without consuming it.
// Peeking an exhausted stream returns the TokEnd sentinel.
func (s *Stream) Peek() Token {
	t := s.toks.Peek()
	if t == nil {
		return Token{Kind: TokEnd}
	}
	return *t
}

func (s *Stream) Consume() {
	s.toks.Pop()
}

func (s *Stream) Append(t Token) {
	s.toks.Push(t)
}

func (s *Stream) Len() int {
	return s.toks.Len()
}
