package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.sr.ht/~plaid/plaidsh/ast"
	"git.sr.ht/~plaid/plaidsh/lexer"
)

// fakeExpander maps patterns to fixed results, falling back to the literal
// pattern like the real expander does.
type fakeExpander map[string][]string

func (f fakeExpander) Expand(pattern string) ([]string, error) {
	if xs, ok := f[pattern]; ok {
		return xs, nil
	}
	return []string{pattern}, nil
}

type failExpander struct{}

func (failExpander) Expand(string) ([]string, error) {
	return nil, errors.New("underlying fault")
}

func parse(t *testing.T, input string, exp fakeExpander) (*ast.Node, error) {
	t.Helper()
	toks, err := lexer.Tokenize(input)
	require.NoError(t, err)
	return Parse(toks, exp)
}

func TestParseBlankLine(t *testing.T) {
	p, err := parse(t, "", nil)
	require.NoError(t, err)
	assert.Nil(t, p)

	p, err = parse(t, "   ", nil)
	require.NoError(t, err)
	assert.Nil(t, p)
}

func TestParseSimple(t *testing.T) {
	p, err := parse(t, "ls --color", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, ast.Nodes(p))
	assert.Equal(t, 1, ast.Commands(p))
	assert.Equal(t, "ls --color", p.String())
}

func TestParseConsumesStream(t *testing.T) {
	toks, err := lexer.Tokenize("ls --color")
	require.NoError(t, err)

	_, err = Parse(toks, fakeExpander(nil))
	require.NoError(t, err)
	assert.Equal(t, 0, toks.Len())
}

func TestParsePipeline(t *testing.T) {
	p, err := parse(t, `cat "best sitcoms.txt" | grep Seinfield | wc -l`, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, ast.Commands(p))
	assert.Equal(t, 2, ast.Pipes(p))
	assert.Equal(t, 8, ast.Nodes(p))
	assert.Equal(t, `cat "best sitcoms.txt" | grep Seinfield | wc -l`, p.String())
}

func TestParseRoundTrip(t *testing.T) {
	inputs := []string{
		"ls --color",
		`author | sed -e "s/^/Written by /"`,
		"sort < in.txt > out.txt",
		"a b c | d e | f",
	}

	for _, input := range inputs {
		p, err := parse(t, input, nil)
		require.NoError(t, err, input)
		assert.Equal(t, input, p.String(), input)

		// Re-tokenizing the rendering parses to an equivalent tree.
		q, err := parse(t, p.String(), nil)
		require.NoError(t, err, input)
		assert.Equal(t, ast.Nodes(p), ast.Nodes(q), input)
		assert.Equal(t, p.String(), q.String(), input)
	}
}

func TestParseExpansion(t *testing.T) {
	exp := fakeExpander{"*.txt": {"a.txt", "b.txt"}}

	p, err := parse(t, "cat *.txt", exp)
	require.NoError(t, err)
	assert.Equal(t, "cat a.txt b.txt", p.String())

	// Quoted words are never expanded.
	p, err = parse(t, `cat "*.txt"`, exp)
	require.NoError(t, err)
	assert.Equal(t, `cat "*.txt"`, p.String())
}

func TestParseRedirect(t *testing.T) {
	p, err := parse(t, "sort < in.txt > out.txt", nil)
	require.NoError(t, err)

	assert.Equal(t, 1, ast.Redirects(p, ast.RedirIn))
	assert.Equal(t, 1, ast.Redirects(p, ast.RedirOut))
	assert.Equal(t, "sort < in.txt > out.txt", p.String())

	// A redirect may directly follow another's target chain as long as the
	// directions differ.
	p, err = parse(t, "sort > out.txt < in.txt", nil)
	require.NoError(t, err)
	assert.Equal(t, "sort > out.txt < in.txt", p.String())
}

func TestParseRedirectTargetExpansion(t *testing.T) {
	exp := fakeExpander{"out*": {"out.1", "out.2"}}

	p, err := parse(t, "ls > out*", exp)
	require.NoError(t, err)
	assert.Equal(t, "ls > out.1 out.2", p.String())
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		input  string
		errmsg string
	}{
		{"|", "No command specified"},
		{"| ls", "No command specified"},
		{"ls |", "No command specified"},
		{"ls | <", "No command specified"},
		{"ls | >", "No command specified"},
		{"> file", "No command specified"},
		{"< file", "No command specified"},
		{"ls > file > file", "Multiple redirection"},
		{"ls < a < b", "Multiple redirection"},
		{"ls >", "Expect filename after redirection"},
		{"ls <", "Expect filename after redirection"},
		{`ls > "file"`, "Expect filename after redirection"},
		{"ls > | wc", "Expect filename after redirection"},
	}

	for _, tt := range tests {
		p, err := parse(t, tt.input, nil)
		require.Error(t, err, tt.input)
		assert.Nil(t, p, tt.input)
		assert.Equal(t, tt.errmsg, err.Error(), tt.input)
	}
}

func TestParseGlobFailure(t *testing.T) {
	toks, err := lexer.Tokenize("ls *")
	require.NoError(t, err)

	p, err := Parse(toks, failExpander{})
	require.Error(t, err)
	assert.Nil(t, p)
	assert.Equal(t, "Glob encountered an error", err.Error())
}
