package parse

import "golang.org/x/exp/constraints"

// Pair is the value produced by Seq and SeqWith.
type Pair[A, B any] struct {
	First  A
	Second B
}

// Seq runs a, then b on a's remainder, and produces both values.
func Seq[A, B any](a Parser[A], b Parser[B]) Parser[Pair[A, B]] {
	return SeqWith(a, func(A) Parser[B] { return b })
}

// SeqWith runs a, builds the next parser from a's value and runs it on a's
// remainder. It is the way to express grammars whose shape depends on data
// parsed earlier, such as length-prefixed fields.
func SeqWith[A, B any](a Parser[A], next func(A) Parser[B]) Parser[Pair[A, B]] {
	return New(func(c Cursor) Result[Pair[A, B]] {
		r1 := a.Parse(c)
		if !r1.ok {
			return failAt[Pair[A, B]](r1, c)
		}
		r2 := next(r1.value).Parse(r1.rest)
		if !r2.ok {
			return failAt[Pair[A, B]](r2, c)
		}
		return Success(Pair[A, B]{First: r1.value, Second: r2.value}, r2.rest)
	})
}

// Last runs a then b and keeps only b's value.
func Last[A, B any](a Parser[A], b Parser[B]) Parser[B] {
	return LastWith(a, func(A) Parser[B] { return b })
}

// LastWith is SeqWith keeping only the second value.
func LastWith[A, B any](a Parser[A], next func(A) Parser[B]) Parser[B] {
	return New(func(c Cursor) Result[B] {
		r1 := a.Parse(c)
		if !r1.ok {
			return failAt[B](r1, c)
		}
		r2 := next(r1.value).Parse(r1.rest)
		if !r2.ok {
			return failAt[B](r2, c)
		}
		return r2
	})
}

// First runs a then b and keeps only a's value.
func First[A, B any](a Parser[A], b Parser[B]) Parser[A] {
	return New(func(c Cursor) Result[A] {
		r1 := a.Parse(c)
		if !r1.ok {
			return r1
		}
		r2 := b.Parse(r1.rest)
		if !r2.ok {
			return failAt[A](r2, c)
		}
		return Success(r1.value, r2.rest)
	})
}

// Both runs a then b and collects the two values in order.
func Both[T any](a, b Parser[T]) Parser[[]T] {
	return BothWith(a, func(T) Parser[T] { return b })
}

// BothWith runs a, then the parser built from a's value, and collects both
// values in order.
func BothWith[T any](a Parser[T], next func(T) Parser[T]) Parser[[]T] {
	return Map(SeqWith(a, next), func(p Pair[T, T]) []T {
		return []T{p.First, p.Second}
	})
}

// Or returns a's Result if a succeeds, without running b. Otherwise it runs
// b at the original position and returns b's Result as is; a's message is
// discarded.
func Or[T any](a, b Parser[T]) Parser[T] {
	return New(func(c Cursor) Result[T] {
		if r := a.Parse(c); r.ok {
			return r
		}
		return b.Parse(c)
	})
}

// Choice tries each parser in turn, as a chain of Or. When every
// alternative fails, the last one's message is reported.
func Choice[T any](ps ...Parser[T]) Parser[T] {
	if len(ps) == 0 {
		return Fail[T]("no alternatives")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Or(p, q)
	}
	return p
}

// Append runs list then elem and appends elem's value to the list.
func Append[T any](list Parser[[]T], elem Parser[T]) Parser[[]T] {
	return Map(Seq(list, elem), func(p Pair[[]T, T]) []T {
		out := make([]T, 0, len(p.First)+1)
		out = append(out, p.First...)
		return append(out, p.Second)
	})
}

// Prepend runs elem then list and puts elem's value in front of the list.
func Prepend[T any](elem Parser[T], list Parser[[]T]) Parser[[]T] {
	return Map(Seq(elem, list), func(p Pair[T, []T]) []T {
		out := make([]T, 0, len(p.Second)+1)
		out = append(out, p.First)
		return append(out, p.Second...)
	})
}

// Concat runs a then b and joins their lists in match order.
func Concat[T any](a, b Parser[[]T]) Parser[[]T] {
	return Map(Seq(a, b), func(p Pair[[]T, []T]) []T {
		out := make([]T, 0, len(p.First)+len(p.Second))
		out = append(out, p.First...)
		return append(out, p.Second...)
	})
}

// Addable is the set of types Sum can combine with +.
type Addable interface {
	constraints.Integer | constraints.Float | constraints.Complex | ~string
}

// Sum runs a then b and adds their values.
func Sum[T Addable](a, b Parser[T]) Parser[T] {
	return Map(Seq(a, b), func(p Pair[T, T]) T {
		return p.First + p.Second
	})
}
