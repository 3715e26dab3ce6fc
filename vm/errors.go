package vm

import "fmt"

// RuntimeError reports a VM dispatch failure, adapted from the
// teacher's vm.RuntimeError (vm/errors.go) with the line of the failing
// instruction attached, since spec.md's diagnostic format requires it
// (§6/§4.5) and the teacher's original type carried no position.
type RuntimeError struct {
	Line    int
	Message string
}

func (e RuntimeError) Error() string {
	return fmt.Sprintf("[line %d] %s", e.Line, e.Message)
}
