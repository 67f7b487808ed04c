// Package parse provides composable backtracking parsers over an immutable
// character cursor.
//
// A Parser[T] is a value wrapping a function from Cursor to Result[T].
// Parsers are combined with the functions in this package (Seq, Or, Many,
// Map, ...) into larger parsers. Every parser restores its entry cursor when
// it fails, so alternation and repetition never see a partially consumed
// input.
package parse

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
)

// Position represents a location in the input.
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Cursor is an immutable read position in an input string.
// Advancing a cursor returns a new cursor; the receiver is never modified,
// so resetting to an earlier position is just reusing an earlier value.
type Cursor struct {
	input    string
	filename string
	pos      int
	line     int
	column   int
}

type CursorOption func(*Cursor)

// WithFilename attaches a filename to every Position reported by the cursor.
func WithFilename(name string) CursorOption {
	return func(c *Cursor) {
		c.filename = name
	}
}

// WithStartLine sets the line number reported for the first line of input.
func WithStartLine(line int) CursorOption {
	return func(c *Cursor) {
		c.line = line
	}
}

// WithNormalization converts the input to Unicode NFC before reading it, so
// that precomposed and decomposed forms of a character read as one rune.
func WithNormalization() CursorOption {
	return func(c *Cursor) {
		c.input = norm.NFC.String(c.input)
	}
}

// NewCursor returns a cursor at the start of input.
func NewCursor(input string, opts ...CursorOption) Cursor {
	c := Cursor{
		input:  input,
		line:   1,
		column: 1,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

// Next reads one rune and returns it with the cursor following it.
// At end of input it returns false and the receiver unchanged.
func (c Cursor) Next() (rune, Cursor, bool) {
	if c.pos >= len(c.input) {
		return 0, c, false
	}
	r, size := utf8.DecodeRuneInString(c.input[c.pos:])
	next := c
	next.pos += size
	if r == '\n' {
		next.line++
		next.column = 1
	} else {
		next.column++
	}
	return r, next, true
}

// Peek returns the rune at the cursor without advancing.
func (c Cursor) Peek() (rune, bool) {
	r, _, ok := c.Next()
	return r, ok
}

// AtEOF reports whether the whole input has been consumed.
func (c Cursor) AtEOF() bool {
	return c.pos >= len(c.input)
}

// Offset returns the byte offset of the cursor in the input.
func (c Cursor) Offset() int {
	return c.pos
}

func (c Cursor) Position() Position {
	return Position{
		Filename: c.filename,
		Offset:   c.pos,
		Line:     c.line,
		Column:   c.column,
	}
}

// Rest returns the unread part of the input.
func (c Cursor) Rest() string {
	return c.input[c.pos:]
}

// Input returns the complete input the cursor reads from.
func (c Cursor) Input() string {
	return c.input
}
