// Package errs declares the error types returned by View operations.
package errs

import "fmt"

// InvalidIdentifier is returned when a key that does not address a typed
// binding is used where one is required.
type InvalidIdentifier struct {
	Key string
}

func (e InvalidIdentifier) Error() string {
	return fmt.Sprintf("invalid identifier: %q does not address a typed binding", e.Key)
}

// TypeMismatch is returned when a value does not have the kind declared by the
// sigil of a key.
type TypeMismatch struct {
	Key    string
	Want   string
	Actual string
}

func (e TypeMismatch) Error() string {
	return fmt.Sprintf("type mismatch: %s must be bound to a %s, but value is %s",
		e.Key, e.Want, e.Actual)
}

// CorruptBinding is returned when enumeration finds a value of none of the
// bindable kinds.
type CorruptBinding struct {
	Ns     string
	Name   string
	Actual string
}

func (e CorruptBinding) Error() string {
	return fmt.Sprintf("corrupt binding: %s in namespace %s holds %s", e.Name, e.Ns, e.Actual)
}

// BadPattern is returned when a search pattern cannot be compiled.
type BadPattern struct {
	Pattern string
	Err     error
}

func (e BadPattern) Error() string {
	return fmt.Sprintf("bad pattern %q: %v", e.Pattern, e.Err)
}

func (e BadPattern) Unwrap() error { return e.Err }
