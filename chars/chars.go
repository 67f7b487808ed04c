// Package chars provides character, literal and number parsers built from
// the combinators in package parse.
package chars

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/dhamidi/combinate/parse"
)

// Any matches any single character.
func Any() parse.Parser[rune] {
	return parse.New(func(c parse.Cursor) parse.Result[rune] {
		r, next, ok := c.Next()
		if !ok {
			return parse.Failure[rune]("Stream has no more characters to consume.", c)
		}
		return parse.Success(r, next)
	})
}

// Satisfies matches a single character for which pred holds, failing with
// message otherwise.
func Satisfies(pred func(rune) bool, message string) parse.Parser[rune] {
	return parse.Or(parse.LastWith(Any(), parse.Satisfy(pred)), parse.Fail[rune](message))
}

// Char matches the character want.
func Char(want rune) parse.Parser[rune] {
	return Satisfies(func(r rune) bool { return r == want },
		fmt.Sprintf("Expected character '%c'", want))
}

// OneOf matches any one of the characters in opts.
func OneOf(opts string) parse.Parser[rune] {
	if opts == "" {
		return parse.Fail[rune]("No options given to OneOf")
	}
	alts := make([]parse.Parser[rune], 0, utf8.RuneCountInString(opts))
	for _, r := range opts {
		alts = append(alts, Char(r))
	}
	return parse.Or(parse.Choice(alts...),
		parse.Fail[rune]("Could not match character with any of '"+opts+"'"))
}

// Alpha matches a letter.
func Alpha() parse.Parser[rune] {
	return Satisfies(unicode.IsLetter, "Expected an alphabetical character.")
}

// Numeric matches a decimal digit character.
func Numeric() parse.Parser[rune] {
	return Satisfies(func(r rune) bool { return r >= '0' && r <= '9' }, "Expected digit.")
}

// Digit matches a decimal digit and produces its value.
func Digit() parse.Parser[uint] {
	return parse.Map(Numeric(), func(r rune) uint { return uint(r - '0') })
}

// AlphaNumeric matches a letter or a decimal digit.
func AlphaNumeric() parse.Parser[rune] {
	return parse.Or(parse.Or(Alpha(), Numeric()), parse.Fail[rune]("Expected alphanumeric."))
}

// Space matches one white space character.
func Space() parse.Parser[rune] {
	return Satisfies(unicode.IsSpace, "Expected whitespace.")
}

// Whitespace matches a possibly empty run of white space.
func Whitespace() parse.Parser[string] {
	return Text(parse.Many(Space()))
}

// Text turns a parser of characters into a parser of the string they form.
func Text(p parse.Parser[[]rune]) parse.Parser[string] {
	return parse.Map(p, func(rs []rune) string { return string(rs) })
}

// String matches the literal s. Partial matches consume nothing.
func String(s string) parse.Parser[string] {
	if s == "" {
		return parse.Const("")
	}
	first, size := utf8.DecodeRuneInString(s)
	head := parse.Map(Char(first), func(r rune) string { return string(r) })
	return parse.Or(parse.Sum(head, String(s[size:])),
		parse.Fail[string]("Could not match string '"+s+"'"))
}

// OfLength matches p only if the text it produced is n characters long.
func OfLength(p parse.Parser[string], n int) parse.Parser[string] {
	long := func(s string) bool { return utf8.RuneCountInString(s) == n }
	return parse.Or(parse.LastWith(p, parse.Satisfy(long)),
		parse.Fail[string](fmt.Sprintf("Expected a match of length %d.", n)))
}

// Take matches exactly n characters of any kind.
func Take(n int) parse.Parser[string] {
	if n < 0 {
		return parse.Fail[string](fmt.Sprintf("Invalid character count %d.", n))
	}
	return parse.Or(Text(parse.Count(n, Any())),
		parse.Fail[string](fmt.Sprintf("Expected %d more characters.", n)))
}

// Ident matches a letter followed by letters, digits or underscores.
func Ident() parse.Parser[string] {
	head := parse.Map(Alpha(), func(r rune) string { return string(r) })
	tail := Text(parse.Many(parse.Or(AlphaNumeric(), Char('_'))))
	return parse.Or(parse.Sum(head, tail), parse.Fail[string]("Expected identifier."))
}

// Token runs p and skips the white space following it.
func Token[T any](p parse.Parser[T]) parse.Parser[T] {
	return parse.First(p, Whitespace())
}

// Symbol matches the literal s and skips the white space following it.
func Symbol(s string) parse.Parser[string] {
	return Token(String(s))
}
