// File: parser_test.go
// Title: Parser Tests
// Description: Tests for parameters, values, coordinate vectors, expressions,
//              single lines and error diagnostics.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-12
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-12 v0.1.0: Initial tests
// - 2025-03-09 v0.1.1: Failure logging

package parser

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/token"
)

func newTestParser(t *testing.T, opts Options) *Parser {
	t.Helper()
	p, err := New(opts)
	require.NoError(t, err)
	return p
}

func TestNewRejectsNegativeLimits(t *testing.T) {
	_, err := New(Options{MaxDepth: -1})
	require.Error(t, err)
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeInvalidInput))

	p := newTestParser(t, Options{})
	assert.Equal(t, DefaultMaxDepth, p.Options().MaxDepth)
	assert.Equal(t, DefaultMaxInputLength, p.Options().MaxInputLength)
	assert.NotNil(t, p.Options().Logger)
}

func TestParseParameter(t *testing.T) {
	tests := []struct {
		input    string
		want     token.Parameter
		consumed int
	}{
		{"#1234", token.Numbered(1234), 5},
		{"#<_bar_baz>", token.Global("bar_baz"), 11},
		{"#<foo_bar>", token.Named("foo_bar"), 10},
		{"#<Tool2> = 1", token.Named("Tool2"), 8},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			param, n, err := ParseParameter(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, param)
			assert.Equal(t, tt.consumed, n)
		})
	}
}

func TestParseParameterRejects(t *testing.T) {
	for _, input := range []string{"1234", "#", "#<>", "#<foo", "#<foo bar>", "#99999999999"} {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseParameter(input)
			assert.Error(t, err)
		})
	}
}

func TestParseValue(t *testing.T) {
	p := newTestParser(t, Options{})

	v, n, err := p.ParseValue(FloatField, "-12.5 Y3")
	require.NoError(t, err)
	assert.Equal(t, token.Float(-12.5), v)
	assert.Equal(t, 5, n)

	v, n, err = p.ParseValue(UnsignedField, "12")
	require.NoError(t, err)
	assert.Equal(t, token.Unsigned(12), v)
	assert.Equal(t, 2, n)

	v, _, err = p.ParseValue(SignedField, "-7")
	require.NoError(t, err)
	assert.Equal(t, token.Signed(-7), v)

	v, n, err = p.ParseValue(FloatField, "#<_feed>")
	require.NoError(t, err)
	assert.Equal(t, token.ParameterValue(token.Global("feed")), v)
	assert.Equal(t, 8, n)

	v, _, err = p.ParseValue(UnsignedField, "[#1 + 1]")
	require.NoError(t, err)
	assert.Equal(t, token.ValueExpression, v.Kind)
	assert.Len(t, v.Expression, 3)

	_, _, err = p.ParseValue(UnsignedField, "-1")
	require.Error(t, err)
	assert.Equal(t, ngcerror.CodeLex, ngcerror.GetCode(err))
}

func TestParseCoordinatesStopsAtRepeatedAxis(t *testing.T) {
	p := newTestParser(t, Options{})
	input := "X10 Y20 X30 Y40"

	vec, n, err := p.ParseCoordinates(input)
	require.NoError(t, err)
	require.NotNil(t, vec.X)
	require.NotNil(t, vec.Y)
	assert.Equal(t, token.Float(10), *vec.X)
	assert.Equal(t, token.Float(20), *vec.Y)
	assert.Nil(t, vec.Z)
	assert.Equal(t, 2, vec.Count())
	assert.Equal(t, "X30 Y40", input[n:])
}

func TestParseCoordinatesAnyOrder(t *testing.T) {
	p := newTestParser(t, Options{})

	vec, n, err := p.ParseCoordinates("w1 Z-2.5 x#3")
	require.NoError(t, err)
	assert.Equal(t, 3, vec.Count())
	assert.Equal(t, 12, n)
	assert.Equal(t, token.Float(-2.5), *vec.Z)
	assert.Equal(t, token.ParameterValue(token.Numbered(3)), *vec.X)

	_, _, err = p.ParseCoordinates("F100")
	assert.Error(t, err)
}

func TestParseExpressionTokens(t *testing.T) {
	p := newTestParser(t, Options{})

	expr, err := p.ParseExpression("[1 + 2 * 3 / 4 - 5]")
	require.NoError(t, err)
	assert.Equal(t, token.Expression{
		token.Literal(1), token.Arithmetic(token.OpAdd),
		token.Literal(2), token.Arithmetic(token.OpMul),
		token.Literal(3), token.Arithmetic(token.OpDiv),
		token.Literal(4), token.Arithmetic(token.OpSub),
		token.Literal(5),
	}, expr)
}

func TestParseExpressionSigns(t *testing.T) {
	p := newTestParser(t, Options{})

	expr, err := p.ParseExpression("[-1 - -2]")
	require.NoError(t, err)
	assert.Equal(t, token.Expression{
		token.Literal(-1), token.Arithmetic(token.OpSub), token.Literal(-2),
	}, expr)

	expr, err = p.ParseExpression("[2-1]")
	require.NoError(t, err)
	assert.Equal(t, token.Expression{
		token.Literal(2), token.Arithmetic(token.OpSub), token.Literal(1),
	}, expr)
}

func TestParseExpressionKeywordsAndFunctions(t *testing.T) {
	p := newTestParser(t, Options{})

	expr, err := p.ParseExpression("[#1 gt 0 AND NOT [#<x> eq 2] or 7 mod 3 ** 2]")
	require.NoError(t, err)
	require.Len(t, expr, 12)
	assert.Equal(t, token.ParameterRef(token.Numbered(1)), expr[0])
	assert.Equal(t, token.Comparison(token.OpGT), expr[1])
	assert.Equal(t, token.Logical(token.OpAnd), expr[3])
	assert.Equal(t, token.Logical(token.OpNot), expr[4])
	assert.Equal(t, token.ExprNested, expr[5].Kind)
	assert.Equal(t, token.Logical(token.OpOr), expr[6])
	assert.Equal(t, token.Arithmetic(token.OpMod), expr[8])
	assert.Equal(t, token.Arithmetic(token.OpPow), expr[10])

	expr, err = p.ParseExpression("[ATAN[3+4]/[5] + sqrt[16] + EXISTS[#<_tool>] + floor[1.5]]")
	require.NoError(t, err)
	require.Len(t, expr, 7)

	atan := expr[0].Function
	require.NotNil(t, atan)
	assert.Equal(t, token.FuncAtan, atan.Name)
	require.Len(t, atan.Args, 2)

	assert.Equal(t, token.FuncSqrt, expr[2].Function.Name)
	assert.Equal(t, token.Global("tool"), expr[4].Function.Parameter)
	assert.Equal(t, token.FuncFix, expr[6].Function.Name)
}

func TestParseExpressionErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ngcerror.Code
	}{
		{"unbalanced", "[1 + 2", ngcerror.CodeUnbalancedExpression},
		{"unknown function", "[FOO[1]]", ngcerror.CodeUnknownFunction},
		{"unknown keyword", "[1 BAR 2]", ngcerror.CodeSyntax},
		{"empty", "[]", ngcerror.CodeSyntax},
		{"atan without divisor", "[ATAN[1]]", ngcerror.CodeSyntax},
		{"exists numbered", "[EXISTS[#1]]", ngcerror.CodeSyntax},
		{"trailing input", "[1] 2", ngcerror.CodeSyntax},
		{"not bracketed", "1 + 2", ngcerror.CodeSyntax},
	}

	p := newTestParser(t, Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseExpression(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, ngcerror.GetCode(err), err.Error())
		})
	}
}

func TestParseLine(t *testing.T) {
	p := newTestParser(t, Options{})

	line, err := p.ParseLine("N10 G1 X10 Y20 F100 (feed move)\n")
	require.NoError(t, err)
	require.Len(t, line.Tokens, 5)
	assert.Equal(t, &token.LineNumber{Number: 10}, line.Tokens[0])
	assert.Equal(t, &token.GCode{Code: "1"}, line.Tokens[1])
	assert.Equal(t, token.KindCoordinates, line.Tokens[2].Kind())
	assert.Equal(t, &token.Word{Letter: 'F', Value: token.Float(100)}, line.Tokens[3])
	assert.Equal(t, &token.Comment{Text: "feed move", Style: token.CommentInline}, line.Tokens[4])
	assert.Equal(t, token.EndingLF, line.Ending)
	assert.Equal(t, 1, line.Pos.Line)
}

func TestParseLineArcAndEndOfLineComment(t *testing.T) {
	p := newTestParser(t, Options{})

	line, err := p.ParseLine("g2 x1 y1 i0.5 j0.5 ; quarter arc\r\n")
	require.NoError(t, err)
	require.Len(t, line.Tokens, 4)
	arc, ok := line.Tokens[2].(*token.ArcOffsets)
	require.True(t, ok)
	assert.Equal(t, 2, arc.Count())
	assert.Equal(t, " quarter arc", line.Tokens[3].(*token.Comment).Text)
	assert.Equal(t, token.EndingCRLF, line.Ending)
}

func TestParseLineBlockDelete(t *testing.T) {
	p := newTestParser(t, Options{})

	line, err := p.ParseLine("/M3 S1000")
	require.NoError(t, err)
	require.Len(t, line.Tokens, 1)

	bd, ok := line.Tokens[0].(*token.BlockDelete)
	require.True(t, ok)
	require.Len(t, bd.Tokens, 2)
	assert.Equal(t, &token.MCode{Code: "3"}, bd.Tokens[0])
	assert.Equal(t, token.EndingEOF, line.Ending)
}

func TestParseLineAssignment(t *testing.T) {
	p := newTestParser(t, Options{})

	line, err := p.ParseLine("#<depth> = [#1 * 2]")
	require.NoError(t, err)
	require.Len(t, line.Tokens, 1)

	assign, ok := line.Tokens[0].(*token.ParameterAssignment)
	require.True(t, ok)
	assert.Equal(t, token.Named("depth"), assign.Parameter)
	assert.Equal(t, token.ValueExpression, assign.Value.Kind)
}

func TestParseLineBlank(t *testing.T) {
	p := newTestParser(t, Options{})

	line, err := p.ParseLine("   \n")
	require.NoError(t, err)
	assert.True(t, line.IsBlank())
}

func TestParseLineErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  ngcerror.Code
	}{
		{"line number mid-line", "G1 N5", ngcerror.CodeSyntax},
		{"unknown letter", "G1 K5 Z1 %", ngcerror.CodeSyntax},
		{"unclosed comment", "G1 (note", ngcerror.CodeSyntax},
		{"nested comment", "G1 (a (b) c)", ngcerror.CodeSyntax},
		{"bad word value", "G1 F", ngcerror.CodeLex},
		{"assignment without value", "#1 =", ngcerror.CodeLex},
	}

	p := newTestParser(t, Options{})
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := p.ParseLine(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, ngcerror.GetCode(err), err.Error())
		})
	}
}

func TestDiagnosticsPointAtFurthestFailure(t *testing.T) {
	p := newTestParser(t, Options{})

	_, err := p.ParseProgram("%\nG1 X10\nG1 Y[1 + 2\n%\n")
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, ngcerror.CodeUnbalancedExpression, perr.Code())
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 11, perr.Column)
	assert.Equal(t, "G1 Y[1 + 2", perr.Excerpt)
	assert.Contains(t, perr.Message, "column 5")
	assert.True(t, strings.HasPrefix(err.Error(), "line 3, column 11: "))
	assert.Equal(t, "G1 Y[1 + 2\n"+strings.Repeat(" ", 10)+"^", perr.Caret())
}

func TestExcerptIsTrimmed(t *testing.T) {
	p := newTestParser(t, Options{})
	long := "G1 " + strings.Repeat("X1 ", 40) + "K"

	_, err := p.ParseLine(long)
	require.Error(t, err)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.True(t, strings.HasPrefix(perr.Excerpt, "..."))
	assert.LessOrEqual(t, len(perr.Excerpt), maxExcerpt+2*len("..."))
	assert.True(t, strings.HasSuffix(perr.Caret(), "^"))
}

func TestNestingTooDeep(t *testing.T) {
	p := newTestParser(t, Options{MaxDepth: 3})

	_, err := p.ParseExpression("[[[1]]]")
	require.NoError(t, err)

	_, err = p.ParseExpression("[[[[1]]]]")
	require.Error(t, err)
	assert.Equal(t, ngcerror.CodeNestingTooDeep, ngcerror.GetCode(err))
}

func TestInputTooLong(t *testing.T) {
	p := newTestParser(t, Options{MaxInputLength: 4})

	_, err := p.ParseLine("G1 X10")
	require.Error(t, err)
	assert.Equal(t, ngcerror.CodeInputTooLong, ngcerror.GetCode(err))

	_, err = p.ParseProgram("G1 X10\nM2")
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeInputTooLong))
}

func TestParserIsReusable(t *testing.T) {
	p := newTestParser(t, Options{})

	_, err := p.ParseExpression("[FOO[1]]")
	require.Error(t, err)

	expr, err := p.ParseExpression("[1]")
	require.NoError(t, err)
	assert.Len(t, expr, 1)
}

func TestParseFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := ngclog.NewWithConfig(ngclog.Config{Level: ngclog.LevelWarn, Format: ngclog.FormatLogfmt, Output: &buf})
	p := newTestParser(t, Options{Logger: logger})

	_, err := p.ParseExpression("[1 +")
	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, `message="parse failed"`)
	assert.Contains(t, out, `what="expression"`)
	assert.Contains(t, out, `component="ngc-parser"`)
	assert.Contains(t, out, "error="+strconv.Quote(err.Error()))

	buf.Reset()
	_, err = p.ParseProgram("%\nG1 X[1\n%\n")
	require.Error(t, err)
	assert.Contains(t, buf.String(), `what="program"`)
	assert.Contains(t, buf.String(), "line=2")
}

