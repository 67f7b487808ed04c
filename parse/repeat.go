package parse

import "fmt"

const noMatch = "Could not match anything."

// Many1 matches p one or more times. It fails only when the first attempt
// fails; a later failure ends the repetition and the values matched so far
// are returned. A match that consumes no input ends the repetition after it
// has been recorded, since repeating it could never make progress.
func Many1[T any](p Parser[T]) Parser[[]T] {
	return New(func(c Cursor) Result[[]T] {
		r := p.Parse(c)
		if !r.ok {
			return Failure[[]T](noMatch, c)
		}
		values := []T{r.value}
		rest := r.rest
		for rest.pos != c.pos {
			c = rest
			r = p.Parse(c)
			if !r.ok {
				break
			}
			values = append(values, r.value)
			rest = r.rest
		}
		return Success(values, rest)
	})
}

// Many matches p zero or more times. It never fails.
func Many[T any](p Parser[T]) Parser[[]T] {
	return Or(Many1(p), Const([]T{}))
}

// Count matches p exactly n times. A negative n always fails. Values are
// accumulated as they match, so n may come from untrusted input.
func Count[T any](n int, p Parser[T]) Parser[[]T] {
	if n < 0 {
		return Fail[[]T](fmt.Sprintf("negative repetition count %d", n))
	}
	return New(func(start Cursor) Result[[]T] {
		values := []T{}
		c := start
		for i := 0; i < n; i++ {
			r := p.Parse(c)
			if !r.ok {
				return Failure[[]T](fmt.Sprintf("got %d repetitions, expected %d: %s", i, n, r.Error()), start)
			}
			values = append(values, r.value)
			c = r.rest
		}
		return Success(values, c)
	})
}

// Optional is the value produced by Maybe.
type Optional[T any] struct {
	Value   T
	Present bool
}

// Some returns a present Optional.
func Some[T any](v T) Optional[T] {
	return Optional[T]{Value: v, Present: true}
}

// Maybe matches p zero or one time. It never fails.
func Maybe[T any](p Parser[T]) Parser[Optional[T]] {
	return Or(Map(p, Some[T]), Const(Optional[T]{}))
}

// Default unwraps an Optional, substituting fallback when it is absent.
func Default[T any](p Parser[Optional[T]], fallback T) Parser[T] {
	return Map(p, func(o Optional[T]) T {
		if o.Present {
			return o.Value
		}
		return fallback
	})
}
