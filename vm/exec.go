package vm

import (
	"fmt"
	"os"
	"os/exec"
	"sync"

	"git.sr.ht/~plaid/plaidsh/ast"
	"git.sr.ht/~plaid/plaidsh/builtin"
)

const outFlags = os.O_RDWR | os.O_CREATE | os.O_TRUNC

type reaped struct {
	pid    int
	status uint8
}

func (vm *Vm) execPipeline(p *ast.Node) commandResult {
	if p == nil {
		return errExitCode(0)
	}

	stages := flatten(p)
	n := len(stages)

	pipes := make([]pipePair, n-1)
	for i := range pipes {
		r, w, err := os.Pipe()
		if err != nil {
			closePipes(pipes[:i])
			return errInternal{err}
		}
		pipes[i] = pipePair{r, w}
	}

	var agg uint8
	handles := make([]*handle, 0, n)

	for i, st := range stages {
		if len(st.argv) == 0 {
			continue
		}
		name := st.argv[0]

		// Process-control builtins end the whole session, skipping any
		// later stage.
		if builtin.IsTerminate(name) {
			vm.Quit = true
			closePipes(pipes)
			return errExitCode(0)
		}

		// State-mutating builtins run in the shell process; a failure is
		// reported but never stops the remaining stages.
		if bi, ok := builtin.Commands[name]; ok {
			vm.runInProcess(bi, st, i, n, pipes)
			continue
		}

		if name == "author" {
			st.argv = []string{"echo", builtin.Author}
		}

		h, res := vm.spawnStage(st, i, n, pipes)
		if res != nil {
			fmt.Fprintf(vm.stderr, "plaidsh: %s\n", res)
			agg = res.ExitCode()
			continue
		}
		handles = append(handles, h)
	}

	// Every descriptor the parent holds must go before waiting, or a
	// reader stage would never see EOF.
	closePipes(pipes)

	c := make(chan reaped, len(handles))
	wg := sync.WaitGroup{}
	wg.Add(len(handles))

	for _, h := range handles {
		go func(h *handle) {
			pid, status := h.wait()
			c <- reaped{pid, status}
			wg.Done()
		}(h)
	}

	wg.Wait()
	close(c)

	for r := range c {
		if r.status != 0 {
			agg = r.status
			fmt.Fprintf(vm.stderr, "Child %d exited with status %d\n",
				r.pid, r.status)
		}
	}

	return errExitCode(agg)
}

// spawnStage wires up stage i of n and starts its process.  Redirections
// are bound first; adjacent pipe ends take precedence over them.
func (vm *Vm) spawnStage(st stage, i, n int, pipes []pipePair) (*handle, commandResult) {
	spec := procSpec{
		argv:   st.argv,
		stdin:  vm.stdin,
		stdout: vm.stdout,
		stderr: vm.stderr,
	}

	var files []*os.File
	defer func() {
		// The child owns its own copies once started.
		for _, fp := range files {
			fp.Close()
		}
	}()

	if st.in != "" {
		fp, err := os.Open(st.in)
		if err != nil {
			return nil, errFileOp{"open", st.in, err}
		}
		files = append(files, fp)
		spec.stdin = fp
	}
	if st.out != "" {
		fp, err := os.OpenFile(st.out, outFlags, 0644)
		if err != nil {
			return nil, errFileOp{"create", st.out, err}
		}
		files = append(files, fp)
		spec.stdout = fp
	}

	if i > 0 {
		spec.stdin = pipes[i-1].r
	}
	if i < n-1 {
		spec.stdout = pipes[i].w
	}

	h, err := spawn(spec)
	if err != nil {
		return nil, errNotFound{st.argv[0], err}
	}
	return h, nil
}

// runInProcess executes a builtin in the shell process with the stage's
// descriptor wiring, so that e.g. pwd still feeds its pipe.
func (vm *Vm) runInProcess(bi func(*exec.Cmd) uint8, st stage, i, n int, pipes []pipePair) {
	cmd := &exec.Cmd{
		Args:   st.argv,
		Stdin:  vm.stdin,
		Stdout: vm.stdout,
		Stderr: vm.stderr,
	}

	if st.out != "" {
		fp, err := os.OpenFile(st.out, outFlags, 0644)
		if err != nil {
			fmt.Fprintf(vm.stderr, "plaidsh: %s\n",
				errFileOp{"create", st.out, err})
			return
		}
		defer fp.Close()
		cmd.Stdout = fp
	}

	if i > 0 {
		cmd.Stdin = pipes[i-1].r
	}
	if i < n-1 {
		cmd.Stdout = pipes[i].w
	}

	bi(cmd)
}
