// Package vm executes pipeline ASTs, spawning one OS process per stage and
// wiring stages together through OS pipes.
package vm

import (
	"fmt"
	"io"
	"os"

	"git.sr.ht/~plaid/plaidsh/ast"
)

type Vm struct {
	// Interactive is set when the shell reads from a terminal.
	Interactive bool

	// Quit is set when a stage requested shell termination.
	Quit bool

	// Status holds the aggregate exit status of the last pipeline.
	Status uint8

	stdin          io.Reader
	stdout, stderr io.Writer
}

func New() *Vm {
	return &Vm{
		stdin:  os.Stdin,
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
}

// Run executes the pipeline and returns its aggregate exit status: the last
// non-zero child status, or 0 when every stage succeeded.  A nil pipeline is
// a no-op.
func (vm *Vm) Run(p *ast.Node) uint8 {
	res := vm.execPipeline(p)
	vm.Status = res.ExitCode()
	if msg := res.Error(); msg != "" {
		fmt.Fprintf(vm.stderr, "plaidsh: %s\n", msg)
	}
	return vm.Status
}
