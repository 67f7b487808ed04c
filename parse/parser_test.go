package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func anyRune() Parser[rune] {
	return New(func(c Cursor) Result[rune] {
		r, next, ok := c.Next()
		if !ok {
			return Failure[rune]("end of input", c)
		}
		return Success(r, next)
	})
}

func char(want rune) Parser[rune] {
	return Or(LastWith(anyRune(), Satisfy(func(r rune) bool { return r == want })),
		Fail[rune]("expected "+string(want)))
}

func word(s string) Parser[string] {
	ps := make([]Parser[rune], 0, len(s))
	for _, r := range s {
		ps = append(ps, char(r))
	}
	p := Const([]rune{})
	for _, q := range ps {
		p = Append(p, q)
	}
	return Map(p, func(rs []rune) string { return string(rs) })
}

// consuming returns a parser that reads n runes and then fails.
func consuming(n int) Parser[string] {
	return New(func(c Cursor) Result[string] {
		for i := 0; i < n; i++ {
			_, next, ok := c.Next()
			if !ok {
				break
			}
			c = next
		}
		return Failure[string]("gave up", c)
	})
}

func TestCursor(t *testing.T) {
	c := NewCursor("a\nβc", WithFilename("in.txt"))
	assert.Equal(t, Position{Filename: "in.txt", Offset: 0, Line: 1, Column: 1}, c.Position())

	r, c1, ok := c.Next()
	require.True(t, ok)
	assert.Equal(t, 'a', r)
	_, c2, _ := c1.Next()
	assert.Equal(t, 2, c2.Position().Line)
	assert.Equal(t, 1, c2.Position().Column)

	r, c3, _ := c2.Next()
	assert.Equal(t, 'β', r)
	assert.Equal(t, 4, c3.Offset())
	assert.Equal(t, "c", c3.Rest())
	assert.Equal(t, "in.txt:2:2", c3.Position().String())

	_, c4, _ := c3.Next()
	assert.True(t, c4.AtEOF())
	_, c5, ok := c4.Next()
	assert.False(t, ok)
	assert.Equal(t, c4, c5)

	assert.Equal(t, "a\nβc", c.Rest(), "advancing must not modify the original cursor")
}

func TestCursorNormalization(t *testing.T) {
	decomposed := "e\u0301"
	r, c, _ := NewCursor(decomposed, WithNormalization()).Next()
	assert.Equal(t, '\u00e9', r)
	assert.True(t, c.AtEOF())

	r, _, _ = NewCursor(decomposed).Next()
	assert.Equal(t, 'e', r)
}

func TestResult(t *testing.T) {
	c := NewCursor("xyz")

	ok := Success(42, c)
	assert.True(t, ok.Valid())
	assert.Equal(t, 42, ok.Value())
	assert.Equal(t, "", ok.Error())
	assert.NoError(t, ok.Err())
	assert.Equal(t, "(42, xyz)", ok.String())

	bad := Failure[int]("boom", c)
	assert.False(t, bad.Valid())
	assert.Equal(t, "boom", bad.Error())
	assert.Equal(t, c, bad.Rest())
	v, valid := bad.Get()
	assert.False(t, valid)
	assert.Zero(t, v)
	assert.Equal(t, "(boom)", bad.String())

	var perr *ParseError
	require.ErrorAs(t, bad.Err(), &perr)
	assert.Equal(t, "1:1: boom", perr.Error())

	assert.Equal(t, "Error", Failure[int]("", c).Error())
}

func TestResultValueOnFailurePanics(t *testing.T) {
	bad := Failure[int]("boom", NewCursor(""))
	assert.PanicsWithValue(t,
		ProgrammerError{Message: "Attempt to retrieve the value of an invalid parser result."},
		func() { bad.Value() })
}

func TestZeroParserPanics(t *testing.T) {
	var p Parser[int]
	assert.PanicsWithValue(t, ProgrammerError{Message: "No implementation defined!"}, func() {
		p.ParseString("abc")
	})
}

func TestParserRestoresCursorOnFailure(t *testing.T) {
	start := NewCursor("abcdef")
	r := consuming(3).Parse(start)
	require.False(t, r.Valid())
	assert.Equal(t, start, r.Rest())
}

func TestFutureRecordsLatestResult(t *testing.T) {
	var f Future[rune]
	assert.False(t, f.Resolved())
	assert.False(t, f.Result().Valid())

	letter := anyRune().Bind(&f)
	r := Many(letter).ParseString("ab")
	require.True(t, r.Valid())
	assert.Equal(t, []rune{'a', 'b'}, r.Value())

	// The final attempt at end of input failed, and that is the last write.
	assert.True(t, f.Resolved())
	_, ok := f.Get()
	assert.False(t, ok)

	letter.ParseString("z")
	v, ok := f.Get()
	assert.True(t, ok)
	assert.Equal(t, 'z', v)
}

func TestBindDoesNotModifyOriginal(t *testing.T) {
	var f, g Future[rune]
	base := anyRune()
	bound := base.Bind(&f)
	bound.Bind(&g)

	base.ParseString("a")
	assert.False(t, f.Resolved())

	bound.ParseString("b")
	assert.True(t, f.Resolved())
	assert.False(t, g.Resolved())
}

func TestLazyRecursion(t *testing.T) {
	// nested = "(" nested ")" | "x"
	var nested Parser[int]
	nested = Lazy(func() Parser[int] {
		return Or(
			Map(First(Last(char('('), nested), char(')')), func(n int) int { return n + 1 }),
			Map(char('x'), func(rune) int { return 0 }),
		)
	})

	r := nested.ParseString("(((x)))")
	require.True(t, r.Valid())
	assert.Equal(t, 3, r.Value())

	start := NewCursor("((x)")
	r = nested.Parse(start)
	assert.False(t, r.Valid())
	assert.Equal(t, start, r.Rest())
}
