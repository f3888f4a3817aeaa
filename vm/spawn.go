package vm

import (
	"errors"
	"io"
	"math"
	"os"
	"os/exec"
)

// pipePair is one OS pipe; exactly one stage owns each end.
type pipePair struct {
	r, w *os.File
}

func closePipes(pipes []pipePair) {
	for _, p := range pipes {
		p.r.Close()
		p.w.Close()
	}
}

// procSpec describes one process to spawn: its argv and the standard
// descriptors it inherits.  Descriptors not named here are not inherited.
type procSpec struct {
	argv   []string
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

// handle is a spawned process whose completion can be awaited.
type handle struct {
	cmd *exec.Cmd
}

func spawn(spec procSpec) (*handle, error) {
	c := exec.Command(spec.argv[0], spec.argv[1:]...)
	c.Stdin, c.Stdout, c.Stderr = spec.stdin, spec.stdout, spec.stderr

	if err := c.Start(); err != nil {
		return nil, err
	}
	return &handle{c}, nil
}

// wait blocks until the process terminates and returns its pid and exit
// status.
func (h *handle) wait() (pid int, status uint8) {
	pid = h.cmd.Process.Pid

	err := h.cmd.Wait()
	var ee *exec.ExitError
	switch {
	case err == nil:
		return pid, 0
	case errors.As(err, &ee) && ee.ExitCode() >= 0:
		return pid, uint8(ee.ExitCode())
	default:
		return pid, math.MaxUint8
	}
}
