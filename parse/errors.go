package parse

import "fmt"

// ProgrammerError is the panic value raised when the parser API is misused:
// invoking a Parser that has no computation, or reading the value of a
// failed Result. It is never recovered by any combinator.
type ProgrammerError struct {
	Message string
}

func (e ProgrammerError) Error() string {
	return "PARSER ERROR: " + e.Message
}

func programmerError(format string, args ...any) ProgrammerError {
	return ProgrammerError{Message: fmt.Sprintf(format, args...)}
}

// ParseError is the error form of a failed Result, for callers that want to
// leave the Result type at the edge of their program.
type ParseError struct {
	Message string
	Pos     Position
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s: %s", e.Pos, e.Message)
}
