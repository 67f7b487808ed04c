package parse

import "fmt"

const defaultError = "Error"

// Result is the outcome of one parse attempt: either a value or an error
// message, together with the cursor following the attempt. A failed Result's
// rest is the cursor at which the attempt started.
type Result[T any] struct {
	value T
	ok    bool
	err   string
	rest  Cursor
}

// Success returns a valid Result holding value, continuing at rest.
func Success[T any](value T, rest Cursor) Result[T] {
	return Result[T]{value: value, ok: true, rest: rest}
}

// Failure returns an invalid Result with the given message.
func Failure[T any](message string, rest Cursor) Result[T] {
	return Result[T]{err: message, rest: rest}
}

// Valid reports whether the Result holds a value.
func (r Result[T]) Valid() bool {
	return r.ok
}

// Value returns the parsed value. Calling Value on an invalid Result panics
// with a ProgrammerError; check Valid first or use Get.
func (r Result[T]) Value() T {
	if !r.ok {
		panic(programmerError("Attempt to retrieve the value of an invalid parser result."))
	}
	return r.value
}

// Get returns the value and whether the Result is valid.
func (r Result[T]) Get() (T, bool) {
	return r.value, r.ok
}

// Error returns the failure message, or "Error" if none was given.
// It returns the empty string for a valid Result.
func (r Result[T]) Error() string {
	if r.ok {
		return ""
	}
	if r.err == "" {
		return defaultError
	}
	return r.err
}

// Rest returns the cursor following the attempt.
func (r Result[T]) Rest() Cursor {
	return r.rest
}

// Err returns nil for a valid Result and a *ParseError otherwise.
func (r Result[T]) Err() error {
	if r.ok {
		return nil
	}
	return &ParseError{Message: r.Error(), Pos: r.rest.Position()}
}

func (r Result[T]) String() string {
	if !r.ok {
		return fmt.Sprintf("(%s)", r.Error())
	}
	rest := r.rest.Rest()
	if rest == "" {
		rest = "<empty>"
	}
	return fmt.Sprintf("(%v, %s)", r.value, rest)
}

// failAt re-types a failed Result, keeping its message.
func failAt[T, F any](r Result[F], rest Cursor) Result[T] {
	return Failure[T](r.err, rest)
}
