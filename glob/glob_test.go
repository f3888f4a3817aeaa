package glob

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testFs(t *testing.T) afero.Fs {
	t.Helper()
	fsys := afero.NewMemMapFs()
	for _, name := range []string{
		"/work/notes.txt",
		"/work/todo.txt",
		"/work/main.go",
		"/home/plaid/sitcoms.txt",
	} {
		require.NoError(t, afero.WriteFile(fsys, name, []byte("x"), 0644))
	}
	return fsys
}

func TestExpandWildcard(t *testing.T) {
	e := New(testFs(t), Options{Home: "/home/plaid"})

	xs, err := e.Expand("/work/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/notes.txt", "/work/todo.txt"}, xs)

	xs, err = e.Expand("/work/?odo.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/todo.txt"}, xs)
}

func TestExpandLiteralFallback(t *testing.T) {
	e := New(testFs(t), Options{Home: "/home/plaid"})

	// No match falls back to the literal pattern, like GLOB_NOCHECK.
	xs, err := e.Expand("/work/*.nomatch")
	require.NoError(t, err)
	assert.Equal(t, []string{"/work/*.nomatch"}, xs)

	// Plain words never touch the filesystem.
	xs, err = e.Expand("--color")
	require.NoError(t, err)
	assert.Equal(t, []string{"--color"}, xs)
}

func TestExpandNullGlob(t *testing.T) {
	e := New(testFs(t), Options{Home: "/home/plaid", NullGlob: true})

	xs, err := e.Expand("/work/*.nomatch")
	require.NoError(t, err)
	assert.Empty(t, xs)

	xs, err = e.Expand("/work/*.txt")
	require.NoError(t, err)
	assert.Len(t, xs, 2)
}

func TestExpandTilde(t *testing.T) {
	e := New(testFs(t), Options{Home: "/home/plaid"})

	xs, err := e.Expand("~")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/plaid"}, xs)

	xs, err = e.Expand("~/sitcoms.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/plaid/sitcoms.txt"}, xs)

	xs, err = e.Expand("~/*.txt")
	require.NoError(t, err)
	assert.Equal(t, []string{"/home/plaid/sitcoms.txt"}, xs)

	// ‘~’ only expands as a prefix.
	xs, err = e.Expand("a~b")
	require.NoError(t, err)
	assert.Equal(t, []string{"a~b"}, xs)
}

func TestExpandBadPattern(t *testing.T) {
	e := New(testFs(t), Options{Home: "/home/plaid"})

	_, err := e.Expand("/work/[")
	assert.Error(t, err)
}
