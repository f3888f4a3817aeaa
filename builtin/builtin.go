// Package builtin implements the commands the shell runs without loading an
// external program.
package builtin

import (
	"fmt"
	"os/exec"
)

// Author is the fixed line printed by the ‘author’ builtin.
const Author = "The Plaid Shell authors"

type builtin func(cmd *exec.Cmd) uint8

// Commands maps names to builtins that run in the shell process.  The
// executor consults this map before spawning a child.
var Commands = map[string]builtin{
	"cd":  cd,
	"pwd": pwd,
}

// IsTerminate reports whether name requests immediate shell termination.
func IsTerminate(name string) bool {
	return name == "exit" || name == "quit"
}

func errorf(cmd *exec.Cmd, format string, args ...any) {
	format = fmt.Sprintf("%s: %s\n", cmd.Args[0], format)
	fmt.Fprintf(cmd.Stderr, format, args...)
}
