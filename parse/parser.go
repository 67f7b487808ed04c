package parse

import "slices"

// Func is the computation wrapped by a Parser.
type Func[T any] func(Cursor) Result[T]

// Parser is a composable computation from a Cursor to a Result.
// The zero Parser has no computation; invoking it panics with a
// ProgrammerError.
type Parser[T any] struct {
	fn      Func[T]
	futures []*Future[T]
}

// New returns a Parser running fn.
func New[T any](fn Func[T]) Parser[T] {
	return Parser[T]{fn: fn}
}

// Parse runs the parser at c. On failure the Result's rest is c, whatever
// the computation consumed. Bound futures receive the Result before it is
// returned.
func (p Parser[T]) Parse(c Cursor) Result[T] {
	if p.fn == nil {
		panic(programmerError("No implementation defined!"))
	}
	r := p.fn(c)
	if !r.ok {
		r.rest = c
	}
	for _, f := range p.futures {
		f.resolve(r)
	}
	return r
}

// ParseString runs the parser at the start of input.
func (p Parser[T]) ParseString(input string, opts ...CursorOption) Result[T] {
	return p.Parse(NewCursor(input, opts...))
}

// Bind returns a copy of p that records every Result it produces in f.
// p itself is left unbound.
func (p Parser[T]) Bind(f *Future[T]) Parser[T] {
	return Parser[T]{
		fn:      p.fn,
		futures: append(slices.Clip(p.futures), f),
	}
}

// Future holds the most recent Result of the parsers bound to it.
// Every invocation overwrites the previous Result.
type Future[T any] struct {
	result   Result[T]
	resolved bool
}

func (f *Future[T]) resolve(r Result[T]) {
	f.result = r
	f.resolved = true
}

// Resolved reports whether a bound parser has run at least once.
func (f *Future[T]) Resolved() bool {
	return f.resolved
}

// Result returns the latest Result. Before any invocation it is an invalid
// Result with the message "unresolved future".
func (f *Future[T]) Result() Result[T] {
	if !f.resolved {
		return Failure[T]("unresolved future", Cursor{})
	}
	return f.result
}

// Get returns the latest value and whether it is valid.
func (f *Future[T]) Get() (T, bool) {
	return f.Result().Get()
}

// Lazy defers building a parser until it is first invoked, which allows
// rules to refer to themselves.
func Lazy[T any](build func() Parser[T]) Parser[T] {
	var p *Parser[T]
	return New(func(c Cursor) Result[T] {
		if p == nil {
			built := build()
			p = &built
		}
		return p.Parse(c)
	})
}
