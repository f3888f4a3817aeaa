package vm

import (
	"fmt"
	"math"
)

type commandResult interface {
	error
	ExitCode() uint8
}

type errExitCode uint8

func (e errExitCode) ExitCode() uint8 {
	return uint8(e)
}

func (_ errExitCode) Error() string {
	return ""
}

type errFileOp struct {
	desc string // Attempted action on file (‘open’, ‘create’, etc.)
	file string // File related to the error
	err  error  // Error that caused this
}

func (e errFileOp) ExitCode() uint8 {
	return math.MaxUint8
}

func (e errFileOp) Error() string {
	return fmt.Sprintf("Failed to %s file ‘%s’: %s", e.desc, e.file, e.err)
}

type errNotFound struct {
	name string
	err  error
}

func (e errNotFound) ExitCode() uint8 {
	return 127
}

func (e errNotFound) Error() string {
	return fmt.Sprintf("%s: %s", e.name, e.err)
}

type errInternal struct {
	err error
}

func (e errInternal) ExitCode() uint8 {
	return math.MaxUint8
}

func (e errInternal) Error() string {
	return e.err.Error()
}
