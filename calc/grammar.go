// Package calc implements a small line-oriented calculator language on top
// of the parse and chars packages, together with a workspace and language
// server reporting diagnostics for calculator documents.
package calc

import (
	"fmt"
	"math"
	"strings"

	"github.com/dhamidi/combinate/chars"
	"github.com/dhamidi/combinate/parse"
	"golang.org/x/exp/ebnf"
)

// Grammar is the EBNF description of the calculator language.
const Grammar = `program    = { line } .
line       = [ statement ] [ comment ] newline .
statement  = [ identifier "=" ] expression .
expression = term { ( "+" | "-" ) term } .
term       = unary { ( "*" | "/" | "%" ) unary } .
unary      = "-" unary | power .
power      = primary [ "^" unary ] .
primary    = number | call | identifier | "(" expression ")" .
call       = identifier "(" expression ")" .
number     = digits [ "." digits ] | "." digits .
digits     = digit { digit } .
identifier = letter { letter | digit | "_" } .
comment    = "#" { char } .
digit      = "0" … "9" .
letter     = "a" … "z" | "A" … "Z" .
char       = " " … "~" .
newline    = "\n" .
`

// VerifyGrammar checks that Grammar is well formed and that every
// production is reachable from program.
func VerifyGrammar() error {
	g, err := ebnf.Parse("calc.ebnf", strings.NewReader(Grammar))
	if err != nil {
		return fmt.Errorf("parse grammar: %w", err)
	}
	if err := ebnf.Verify(g, "program"); err != nil {
		return fmt.Errorf("verify grammar: %w", err)
	}
	return nil
}

// Env holds the variables of a program.
type Env map[string]float64

// Expr evaluates an expression against an environment.
type Expr func(Env) (float64, error)

// Statement is one parsed line. Name is empty for a bare expression.
type Statement struct {
	Name string
	Expr Expr
	Pos  parse.Position
}

var functions = map[string]func(float64) float64{
	"sqrt":  math.Sqrt,
	"abs":   math.Abs,
	"floor": math.Floor,
	"ceil":  math.Ceil,
}

func constant(v float64) Expr {
	return func(Env) (float64, error) { return v, nil }
}

func variable(name string) Expr {
	return func(env Env) (float64, error) {
		v, ok := env[name]
		if !ok {
			return 0, fmt.Errorf("undefined variable %q", name)
		}
		return v, nil
	}
}

func call(name string, arg Expr) Expr {
	return func(env Env) (float64, error) {
		fn, ok := functions[name]
		if !ok {
			return 0, fmt.Errorf("unknown function %q", name)
		}
		v, err := arg(env)
		if err != nil {
			return 0, err
		}
		return fn(v), nil
	}
}

func negate(e Expr) Expr {
	return func(env Env) (float64, error) {
		v, err := e(env)
		return -v, err
	}
}

func binary(op string, lhs, rhs Expr) Expr {
	return func(env Env) (float64, error) {
		a, err := lhs(env)
		if err != nil {
			return 0, err
		}
		b, err := rhs(env)
		if err != nil {
			return 0, err
		}
		switch op {
		case "+":
			return a + b, nil
		case "-":
			return a - b, nil
		case "*":
			return a * b, nil
		case "/":
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return a / b, nil
		case "%":
			if b == 0 {
				return 0, fmt.Errorf("division by zero")
			}
			return math.Mod(a, b), nil
		case "^":
			return math.Pow(a, b), nil
		}
		return 0, fmt.Errorf("unknown operator %q", op)
	}
}

// leftAssoc parses operand { op operand } and folds it to the left.
func leftAssoc(operand parse.Parser[Expr], op parse.Parser[string]) parse.Parser[Expr] {
	rest := parse.Many(parse.Seq(op, operand))
	return parse.Map(parse.Seq(operand, rest), func(p parse.Pair[Expr, []parse.Pair[string, Expr]]) Expr {
		e := p.First
		for _, next := range p.Second {
			e = binary(next.First, e, next.Second)
		}
		return e
	})
}

// identifier matches the identifier production of Grammar, which admits
// ASCII letters only.
func identifier() parse.Parser[string] {
	letter := chars.Satisfies(func(r rune) bool {
		return 'a' <= r && r <= 'z' || 'A' <= r && r <= 'Z'
	}, "Expected a letter.")
	head := parse.Map(letter, func(r rune) string { return string(r) })
	tail := chars.Text(parse.Many(parse.Choice(letter, chars.Numeric(), chars.Char('_'))))
	return parse.Or(parse.Sum(head, tail), parse.Fail[string]("Expected identifier."))
}

func operator(ops string) parse.Parser[string] {
	return chars.Token(parse.Map(chars.OneOf(ops), func(r rune) string { return string(r) }))
}

// Expression returns the parser for a calculator expression. White space
// after each token is skipped; leading white space is not.
func Expression() parse.Parser[Expr] {
	var expression, unary parse.Parser[Expr]

	number := parse.Map(chars.Token(chars.Number()), constant)
	name := chars.Token(identifier())
	parens := parse.Last(chars.Symbol("("), parse.First(parse.Lazy(func() parse.Parser[Expr] { return expression }), chars.Symbol(")")))
	callExpr := parse.Map(
		parse.Seq(name, parse.Last(chars.Symbol("("), parse.First(parse.Lazy(func() parse.Parser[Expr] { return expression }), chars.Symbol(")")))),
		func(p parse.Pair[string, Expr]) Expr { return call(p.First, p.Second) })
	primary := parse.Trace("primary", parse.Or(
		parse.Choice(number, callExpr, parse.Map(name, variable), parens),
		parse.Fail[Expr]("expected a number, variable, call or parenthesised expression"),
	))

	power := parse.Map(
		parse.Seq(primary, parse.Maybe(parse.Last(chars.Symbol("^"), parse.Lazy(func() parse.Parser[Expr] { return unary })))),
		func(p parse.Pair[Expr, parse.Optional[Expr]]) Expr {
			if !p.Second.Present {
				return p.First
			}
			return binary("^", p.First, p.Second.Value)
		})
	unary = parse.Or(
		parse.Map(parse.Last(chars.Symbol("-"), parse.Lazy(func() parse.Parser[Expr] { return unary })), negate),
		power,
	)
	term := leftAssoc(unary, operator("*/%"))
	expression = parse.Trace("expression", leftAssoc(term, operator("+-")))
	return expression
}

func comment() parse.Parser[string] {
	return parse.Sum(chars.String("#"), chars.Text(parse.Many(chars.Any())))
}

// statement parses [ identifier "=" ] expression, recording its position.
func statement() parse.Parser[*Statement] {
	target := parse.Maybe(parse.First(chars.Token(identifier()), chars.Symbol("=")))
	body := parse.Seq(target, Expression())
	return parse.New(func(c parse.Cursor) parse.Result[*Statement] {
		r := body.Parse(c)
		v, ok := r.Get()
		if !ok {
			return parse.Failure[*Statement](r.Error(), c)
		}
		return parse.Success(&Statement{Name: v.First.Value, Expr: v.Second, Pos: c.Position()}, r.Rest())
	})
}

// Line returns the parser for a single line of a program. It produces nil
// for a line holding only white space or a comment.
func Line() parse.Parser[*Statement] {
	blank := parse.Complete(parse.Last(chars.Whitespace(), parse.Maybe(comment())))
	stmt := parse.First(statement(), parse.Maybe(comment()))
	return parse.Or(
		parse.Map(blank, func(parse.Optional[string]) *Statement { return nil }),
		parse.Last(chars.Whitespace(), stmt),
	)
}
