package parse

import (
	"encoding"
	"fmt"
	"reflect"
	"strconv"

	"golang.org/x/exp/constraints"
)

const transformError = "Transform Error: "

// Map applies f to the value of p.
func Map[F, T any](p Parser[F], f func(F) T) Parser[T] {
	return New(func(c Cursor) Result[T] {
		r := p.Parse(c)
		if !r.ok {
			return failAt[T](r, c)
		}
		return Success(f(r.value), r.rest)
	})
}

// MapErr applies f to the value of p. An error from f turns the match into a
// failure whose message carries the error text.
func MapErr[F, T any](p Parser[F], f func(F) (T, error)) Parser[T] {
	return New(func(c Cursor) Result[T] {
		r := p.Parse(c)
		if !r.ok {
			return failAt[T](r, c)
		}
		v, err := f(r.value)
		if err != nil {
			return Failure[T](transformError+err.Error(), c)
		}
		return Success(v, r.rest)
	})
}

// Number is the set of types Cast converts between.
type Number interface {
	constraints.Integer | constraints.Float
}

// Cast converts the value of p with a Go numeric conversion.
func Cast[F, T Number](p Parser[F]) Parser[T] {
	return Map(p, func(v F) T { return T(v) })
}

// ConversionError reports text that has no representation in the target
// type of To.
type ConversionError struct {
	Text string
	Err  error
}

func (e *ConversionError) Error() string {
	return "could not convert from '" + e.Text + "'"
}

func (e *ConversionError) Unwrap() error { return e.Err }

// To converts the text matched by p into a T. Booleans, integers, unsigned
// integers, floats and strings use their strconv form; other types must
// implement encoding.TextUnmarshaler.
func To[T any](p Parser[string]) Parser[T] {
	return MapErr(p, func(text string) (T, error) {
		var v T
		if err := convert(text, &v); err != nil {
			return v, &ConversionError{Text: text, Err: err}
		}
		return v, nil
	})
}

func convert(text string, dst any) error {
	if u, ok := dst.(encoding.TextUnmarshaler); ok {
		return u.UnmarshalText([]byte(text))
	}
	v := reflect.ValueOf(dst).Elem()
	switch v.Kind() {
	case reflect.String:
		v.SetString(text)
	case reflect.Bool:
		b, err := strconv.ParseBool(text)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(text, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		n, err := strconv.ParseUint(text, 10, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(text, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported conversion target %s", v.Type())
	}
	return nil
}

// From converts the value of p into its textual form.
func From[F any](p Parser[F]) Parser[string] {
	return Map(p, func(v F) string { return fmt.Sprint(v) })
}

// Const succeeds with v without consuming input.
func Const[T any](v T) Parser[T] {
	return New(func(c Cursor) Result[T] {
		return Success(v, c)
	})
}

// Fail always fails with message.
func Fail[T any](message string) Parser[T] {
	return New(func(c Cursor) Result[T] {
		return Failure[T](message, c)
	})
}

// Satisfy returns a parser factory for LastWith: the parser built from a
// value succeeds with it, without consuming input, if pred holds.
func Satisfy[T any](pred func(T) bool) func(T) Parser[T] {
	return func(v T) Parser[T] {
		return New(func(c Cursor) Result[T] {
			if pred(v) {
				return Success(v, c)
			}
			return Failure[T]("Satisfies() Condition was not met.", c)
		})
	}
}

// EOF succeeds only at the end of the input.
func EOF() Parser[struct{}] {
	return New(func(c Cursor) Result[struct{}] {
		if c.AtEOF() {
			return Success(struct{}{}, c)
		}
		return Failure[struct{}](fmt.Sprintf("unexpected input %q at %s", snippet(c.Rest()), c.Position()), c)
	})
}

// Complete runs p and requires that it consumes the whole input.
func Complete[T any](p Parser[T]) Parser[T] {
	return First(p, EOF())
}

func snippet(s string) string {
	const limit = 16
	n := 0
	for i := range s {
		if n == limit {
			return s[:i] + "..."
		}
		n++
	}
	return s
}
