// Package ast defines the pipeline abstract syntax tree built by the parser
// and walked by the executor.
//
// A pipeline is a tree of nodes.  Word and quoted-word nodes chain through
// Right to form the flat argument list of one command.  A redirect node sits
// in that chain and holds its filename chain under Right.  A pipe node joins
// an arbitrary sub-pipeline on the Left with the argument chain of the next
// stage on the Right.  Every node exclusively owns its children.
package ast

type NodeKind int

const (
	Word NodeKind = iota
	QuotedWord
	RedirIn
	RedirOut
	Pipe
)

type Node struct {
	Kind  NodeKind
	Value string // Word and QuotedWord only, the exact lexeme
	Left  *Node  // Pipe only, the sub-pipeline to the left
	Right *Node  // Sibling chain, or the redirect target
}

func (k NodeKind) IsWord() bool {
	return k == Word || k == QuotedWord
}

func (k NodeKind) IsRedirect() bool {
	return k == RedirIn || k == RedirOut
}

// NewWord creates a Word or QuotedWord node chaining to right.
func NewWord(kind NodeKind, right *Node, value string) *Node {
	if !kind.IsWord() {
		panic("ast: NewWord called with a non-word kind")
	}
	return &Node{Kind: kind, Value: value, Right: right}
}

// NewRedirect creates a redirect node whose target chain must begin with a
// Word holding the filename.
func NewRedirect(kind NodeKind, target *Node) *Node {
	if !kind.IsRedirect() {
		panic("ast: NewRedirect called with a non-redirect kind")
	}
	if target == nil || target.Kind != Word {
		panic("ast: redirect target must be a word")
	}
	return &Node{Kind: kind, Right: target}
}

// NewPipe joins the pipeline left with the argument chain right of the next
// stage.
func NewPipe(left, right *Node) *Node {
	if left == nil || right == nil {
		panic("ast: pipe operands must be non-nil")
	}
	return &Node{Kind: Pipe, Left: left, Right: right}
}

// Append attaches n to the right end of the open chain of the pipeline
// rooted at *pp.  On an empty pipeline n becomes the root.
func Append(pp **Node, n *Node) {
	if n == nil {
		return
	}
	if *pp == nil {
		*pp = n
		return
	}

	it := *pp
	for it.Right != nil {
		it = it.Right
	}
	it.Right = n
}

// Last returns the final node of the open chain, or nil for an empty
// pipeline.  For a redirect this is the tail of its filename chain.
func Last(p *Node) *Node {
	if p == nil {
		return nil
	}
	for p.Right != nil {
		p = p.Right
	}
	return p
}

// Nodes counts every node in the pipeline.
func Nodes(p *Node) int {
	if p == nil {
		return 0
	}
	n := 1
	if p.Kind == Pipe {
		n += Nodes(p.Left)
	}
	return n + Nodes(p.Right)
}

// Pipes counts the pipe nodes in the pipeline.
func Pipes(p *Node) int {
	if p == nil || p.Kind != Pipe {
		return 0
	}
	return 1 + Pipes(p.Left)
}

// Commands counts the pipe-delimited command stages in the pipeline.
func Commands(p *Node) int {
	if p == nil {
		return 0
	}
	return 1 + Pipes(p)
}

// Redirects counts the redirect nodes of the given kind anywhere in the
// pipeline.
func Redirects(p *Node, kind NodeKind) int {
	if p == nil {
		return 0
	}
	n := 0
	if p.Kind == kind {
		n = 1
	}
	if p.Kind == Pipe {
		n += Redirects(p.Left, kind)
	}
	return n + Redirects(p.Right, kind)
}
