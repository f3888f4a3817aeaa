package builtin

import (
	"fmt"
	"os"
	"os/exec"
)

// cd changes the shell's own working directory; children forked afterwards
// inherit the new directory, already-forked ones do not.
func cd(cmd *exec.Cmd) uint8 {
	var dst string
	switch len(cmd.Args) {
	case 1:
		home, err := os.UserHomeDir()
		if err != nil {
			errorf(cmd, "%s", err)
			return 1
		}
		dst = home
	case 2:
		dst = cmd.Args[1]
	default:
		fmt.Fprintln(cmd.Stderr, "Usage: cd [directory]")
		return 1
	}

	if err := os.Chdir(dst); err != nil {
		errorf(cmd, "%s", err)
		return 1
	}
	return 0
}
