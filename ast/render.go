package ast

import "strings"

// cursor tracks the write position while rendering into a fixed buffer so
// that no render state outlives the call.
type cursor struct {
	buf []byte
	n   int
}

func (c *cursor) writeString(s string) {
	if c.n >= len(c.buf) {
		return
	}
	c.n += copy(c.buf[c.n:], s)
}

func (c *cursor) render(p *Node) {
	if p == nil || c.n >= len(c.buf) {
		return
	}

	switch p.Kind {
	case Pipe:
		c.render(p.Left)
		c.writeString("| ")
		c.render(p.Right)
	case Word, QuotedWord:
		c.writeString(p.Value)
		c.writeString(" ")
		c.render(p.Right)
	case RedirIn:
		c.writeString("< ")
		c.render(p.Right)
	case RedirOut:
		c.writeString("> ")
		c.render(p.Right)
	}
}

// Render writes the canonical text of the pipeline into buf, tokens joined
// by single spaces with trailing whitespace trimmed.  The result is always
// NUL-terminated and never extends past the buffer; when the pipeline does
// not fit, the text is truncated and a single ‘$’ marks the truncation.
// Returns the number of bytes written, not counting the terminator.
func Render(p *Node, buf []byte) int {
	if len(buf) == 0 {
		return 0
	}

	c := cursor{buf: buf}
	c.render(p)
	for c.n > 0 && buf[c.n-1] == ' ' {
		c.n--
	}

	if c.n < len(buf) {
		buf[c.n] = 0
		return c.n
	}
	c.n--
	buf[c.n] = 0
	if c.n > 0 {
		buf[c.n-1] = '$'
	}
	return c.n
}

// String renders the pipeline without a buffer bound.
func (p *Node) String() string {
	if p == nil {
		return ""
	}

	sb := strings.Builder{}
	var walk func(*Node)
	walk = func(n *Node) {
		if n == nil {
			return
		}
		switch n.Kind {
		case Pipe:
			walk(n.Left)
			sb.WriteString("| ")
			walk(n.Right)
		case Word, QuotedWord:
			sb.WriteString(n.Value)
			sb.WriteString(" ")
			walk(n.Right)
		case RedirIn:
			sb.WriteString("< ")
			walk(n.Right)
		case RedirOut:
			sb.WriteString("> ")
			walk(n.Right)
		}
	}
	walk(p)

	return strings.TrimRight(sb.String(), " ")
}
