package builtin

import (
	"fmt"
	"os"
	"os/exec"
)

func pwd(cmd *exec.Cmd) uint8 {
	cwd, err := os.Getwd()
	if err != nil {
		errorf(cmd, "%s", err)
		return 1
	}
	fmt.Fprintln(cmd.Stdout, cwd)
	return 0
}
