package calc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyGrammar(t *testing.T) {
	require.NoError(t, VerifyGrammar())
}

func TestEvalExpressions(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"42", 42},
		{"1 + 2 * 3", 7},
		{"(1 + 2) * 3", 9},
		{"10 - 4 - 3", 3},
		{"8 / 4 / 2", 1},
		{"7 % 4", 3},
		{"2^3^2", 512},
		{"-2^2", -4},
		{"2^-1", 0.5},
		{"--3", 3},
		{".5 + 1.25", 1.75},
		{"sqrt(16)", 4},
		{"abs(-3) + floor(2.7) + ceil(0.2)", 6},
		{"  2 * 3   # six", 6},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			out, err := Eval(tt.input, nil)
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.InDelta(t, tt.want, out[0].Value, 1e-9)
		})
	}
}

func TestEvalProgram(t *testing.T) {
	src := "# rates\nx = 4\n\ny=x * 2\r\ny + 1\n"
	env := Env{}
	out, err := Eval(src, env)
	require.NoError(t, err)
	assert.Equal(t, []Output{
		{Line: 2, Name: "x", Value: 4},
		{Line: 4, Name: "y", Value: 8},
		{Line: 5, Value: 9},
	}, out)
	assert.Equal(t, Env{"x": 4, "y": 8}, env)

	assert.Equal(t, "x = 4", out[0].String())
	assert.Equal(t, "9", out[2].String())
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1 / 0", "1:1: division by zero"},
		{"1 % 0", "1:1: division by zero"},
		{"a + 1", `1:1: undefined variable "a"`},
		{"foo(1)", `1:1: unknown function "foo"`},
		{"1 +", `1:3: unexpected input "+"`},
		{"* 2", "1:1: expected a number, variable, call or parenthesised expression"},
		{"1\n(2", "2:1: expected a number, variable, call or parenthesised expression"},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Eval(tt.input, nil)
			require.Error(t, err)
			var diag *Diagnostic
			require.ErrorAs(t, err, &diag)
			assert.Equal(t, tt.want, err.Error())
		})
	}
}

func TestEvalStopsAtFirstError(t *testing.T) {
	out, err := Eval("1\n2 / 0\n3", nil)
	require.Error(t, err)
	assert.Equal(t, []Output{{Line: 1, Value: 1}}, out)
}

func TestCheckCollectsAllDiagnostics(t *testing.T) {
	src := "x = 1\n* 2\ny = x / 0\ny\nx + 1 )\n"
	diags := Check("prog.calc", src)
	require.Len(t, diags, 4)

	assert.Equal(t, 2, diags[0].Pos.Line)
	assert.Equal(t, "prog.calc", diags[0].Pos.Filename)
	assert.Equal(t, 4, diags[0].End.Column)

	assert.Equal(t, "prog.calc:3:1: division by zero", diags[1].Error())
	assert.Equal(t, `prog.calc:4:1: undefined variable "y"`, diags[2].Error())
	assert.Equal(t, `prog.calc:5:7: unexpected input ")"`, diags[3].Error())

	assert.Empty(t, Check("ok.calc", "a = 1\nb = a + 1\n"))
}

func TestIdentifiersFollowGrammar(t *testing.T) {
	out, err := Eval("rate_2 = 3\nRate_2 = rate_2 + 1", nil)
	require.NoError(t, err)
	assert.Equal(t, []Output{{Line: 1, Name: "rate_2", Value: 3}, {Line: 2, Name: "Rate_2", Value: 4}}, out)

	_, err = Eval("\u00e9 = 1", nil)
	require.Error(t, err)
	assert.Equal(t, "1:1: expected a number, variable, call or parenthesised expression", err.Error())

	_, err = Eval("a\u00e9 = 1", nil)
	assert.EqualError(t, err, "1:2: unexpected input \"\u00e9 = 1\"")
}

func TestLineBlank(t *testing.T) {
	for _, in := range []string{"", "   ", "# comment", "  # indented comment"} {
		r := Line().ParseString(in)
		require.True(t, r.Valid(), in)
		assert.Nil(t, r.Value(), in)
	}
}

func TestLineAssignment(t *testing.T) {
	r := Line().ParseString("  total = 3 * 4 # note")
	require.True(t, r.Valid())
	stmt := r.Value()
	require.NotNil(t, stmt)
	assert.Equal(t, "total", stmt.Name)
	assert.Equal(t, 3, stmt.Pos.Column)
	v, err := stmt.Expr(Env{})
	require.NoError(t, err)
	assert.Equal(t, 12.0, v)
	assert.True(t, r.Rest().AtEOF())
}
