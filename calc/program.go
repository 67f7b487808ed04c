package calc

import (
	"fmt"
	"strings"

	"github.com/dhamidi/combinate/parse"
)

// Diagnostic is a problem found in a calculator program.
type Diagnostic struct {
	Pos     parse.Position
	End     parse.Position
	Message string
}

func (d *Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Pos, d.Message)
}

// Output is the value of one evaluated statement.
type Output struct {
	Line  int
	Name  string
	Value float64
}

func (o Output) String() string {
	if o.Name != "" {
		return fmt.Sprintf("%s = %g", o.Name, o.Value)
	}
	return fmt.Sprintf("%g", o.Value)
}

type program struct {
	filename string
	line     parse.Parser[*Statement]
}

func newProgram(filename string) *program {
	return &program{
		filename: filename,
		line:     Line(),
	}
}

// parseLine parses the n-th line (1-based). It returns nil and no
// diagnostic for blank lines.
func (p *program) parseLine(n int, text string) (*Statement, *Diagnostic) {
	text = strings.TrimSuffix(text, "\r")
	start := parse.NewCursor(text, parse.WithFilename(p.filename), parse.WithStartLine(n))
	r := p.line.Parse(start)
	stmt, ok := r.Get()
	if !ok {
		return nil, &Diagnostic{Pos: start.Position(), End: endOf(start), Message: r.Error()}
	}
	if rest := r.Rest(); !rest.AtEOF() {
		return nil, &Diagnostic{
			Pos:     rest.Position(),
			End:     endOf(rest),
			Message: fmt.Sprintf("unexpected input %q", strings.TrimSpace(rest.Rest())),
		}
	}
	return stmt, nil
}

// endOf returns the position at the end of the cursor's line.
func endOf(c parse.Cursor) parse.Position {
	for !c.AtEOF() {
		_, c, _ = c.Next()
	}
	return c.Position()
}

func (p *program) evaluate(stmt *Statement, env Env) (Output, *Diagnostic) {
	v, err := stmt.Expr(env)
	if err != nil {
		return Output{}, &Diagnostic{Pos: stmt.Pos, End: stmt.Pos, Message: err.Error()}
	}
	if stmt.Name != "" {
		env[stmt.Name] = v
	}
	return Output{Line: stmt.Pos.Line, Name: stmt.Name, Value: v}, nil
}

// Eval runs a program and returns the value of every statement. It stops at
// the first syntax or evaluation error, which is returned as a *Diagnostic.
func Eval(src string, env Env) ([]Output, error) {
	if env == nil {
		env = Env{}
	}
	p := newProgram("")
	var outputs []Output
	for i, text := range strings.Split(src, "\n") {
		stmt, diag := p.parseLine(i+1, text)
		if diag != nil {
			return outputs, diag
		}
		if stmt == nil {
			continue
		}
		out, diag := p.evaluate(stmt, env)
		if diag != nil {
			return outputs, diag
		}
		outputs = append(outputs, out)
	}
	return outputs, nil
}

// Check parses and evaluates every line of a program and returns all
// problems found. A line that fails to evaluate does not stop the check;
// an assignment that fails leaves its variable undefined.
func Check(filename, src string) []Diagnostic {
	p := newProgram(filename)
	env := Env{}
	var diags []Diagnostic
	for i, text := range strings.Split(src, "\n") {
		stmt, diag := p.parseLine(i+1, text)
		if diag == nil && stmt != nil {
			_, diag = p.evaluate(stmt, env)
		}
		if diag != nil {
			diags = append(diags, *diag)
		}
	}
	return diags
}
