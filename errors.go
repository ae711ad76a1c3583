package tinyclp

import (
	"fmt"
	"reflect"

	"github.com/pkg/errors"
)

// errEmptyArgs reports a usage rendering attempt against a parser that was
// given no argument vector at all. Built per call so it carries the
// offending call stack.
func errEmptyArgs() error {
	return errors.New("tinyclp: empty argument vector, cannot derive a program name")
}

// InvalidParamsError is returned by Load when params is not a non-nil
// pointer to a struct.
type InvalidParamsError struct {
	Type reflect.Type
}

func (e *InvalidParamsError) Error() string {
	const outputFmt = "flags load: got %s"
	if e.Type == nil {
		return fmt.Sprintf(outputFmt, "<nil>")
	}

	if e.Type.Kind() != reflect.Ptr {
		return fmt.Sprintf(outputFmt, "non-pointer "+e.Type.String())
	}
	return fmt.Sprintf(outputFmt, e.Type.String())
}
