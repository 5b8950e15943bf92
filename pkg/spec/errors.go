package spec

import (
	"fmt"
	"reflect"
)

// PanicError wraps a value recovered from a panic.
type PanicError struct {
	Value any
}

func newPanicError(r any) *PanicError {
	if pe, ok := r.(*PanicError); ok {
		return pe
	}
	return &PanicError{Value: r}
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

var errorType = reflect.TypeOf((*error)(nil)).Elem()

// Kind returns the type of E for use with Throw. Kind[error]() matches any
// raised condition.
func Kind[E error]() reflect.Type {
	return reflect.TypeOf((*E)(nil)).Elem()
}
