// File: token_test.go
// Title: Token Model Tests
// Description: Tests for canonical rendering, parameter identity, vector
//              accessors and tree walking.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-10 v0.1.0: Initial tests

package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParameterString(t *testing.T) {
	assert.Equal(t, "#1234", Numbered(1234).String())
	assert.Equal(t, "#<foo_bar>", Named("foo_bar").String())
	assert.Equal(t, "#<_bar_baz>", Global("bar_baz").String())
}

func TestParameterIsMapKey(t *testing.T) {
	params := map[Parameter]float64{
		Numbered(1):  1,
		Named("x"):   2,
		Global("x"):  3,
		Numbered(01): 4,
	}
	assert.Len(t, params, 3)
	assert.Equal(t, 4.0, params[Numbered(1)])
	assert.NotEqual(t, params[Named("x")], params[Global("x")])
}

func TestValueString(t *testing.T) {
	tests := []struct {
		value Value
		want  string
	}{
		{Unsigned(7), "7"},
		{Signed(-3), "-3"},
		{Float(1.5), "1.5"},
		{Float(0.1), "0.1"},
		{Float(-10), "-10"},
		{ParameterValue(Global("tool")), "#<_tool>"},
		{ExpressionValue(Expression{Literal(1), Arithmetic(OpAdd), ParameterRef(Numbered(2))}), "[1 + #2]"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
		})
	}
	assert.True(t, Float(1).IsLiteral())
	assert.False(t, ParameterValue(Numbered(1)).IsLiteral())
}

func TestExpressionString(t *testing.T) {
	expr := Expression{
		Call(&Function{Name: FuncAtan, Args: []Expression{
			{Literal(3), Arithmetic(OpAdd), Literal(4)},
			{Literal(5)},
		}}),
		Logical(OpAnd),
		Call(&Function{Name: FuncExists, Parameter: Named("foo")}),
		Comparison(OpGE),
		Nested(Expression{Call(&Function{Name: FuncFix, Args: []Expression{{Literal(-2.8)}}})}),
		Arithmetic(OpMod),
		Literal(2),
	}
	assert.Equal(t, "[ATAN[3 + 4]/[5] AND EXISTS[#<foo>] GE [FIX[-2.8]] MOD 2]", expr.String())
}

func TestLookupFunction(t *testing.T) {
	tests := []struct {
		name string
		want FunctionName
		ok   bool
	}{
		{"abs", FuncAbs, true},
		{"Floor", FuncFix, true},
		{"CEIL", FuncFup, true},
		{"fup", FuncFup, true},
		{"exists", FuncExists, true},
		{"MAX", 0, false},
	}
	for _, tt := range tests {
		got, ok := LookupFunction(tt.name)
		assert.Equal(t, tt.ok, ok, tt.name)
		if tt.ok {
			assert.Equal(t, tt.want, got, tt.name)
		}
	}
}

func TestVec9(t *testing.T) {
	var v Vec9
	assert.Equal(t, 0, v.Count())

	v.Set('y', Float(20))
	v.Set('X', Float(10))
	v.Set('q', Float(99))

	assert.Equal(t, 2, v.Count())
	require.NotNil(t, v.Get('x'))
	assert.Equal(t, float32(10), v.Get('X').Float)
	assert.Nil(t, v.Get('Z'))
	assert.Equal(t, "X10 Y20", v.String())

	arc := &ArcOffsets{}
	arc.Set('k', Float(-1))
	arc.Set('I', Float(2))
	assert.Equal(t, "I2 K-1", arc.String())
	assert.Equal(t, KindArcOffsets, arc.Kind())
}

func TestWordTokens(t *testing.T) {
	tokens := []Token{
		&LineNumber{Number: 10},
		&GCode{Code: "38.2"},
		&Coordinates{},
		&Word{Letter: 'F', Value: Float(100)},
		&MCode{Code: "30"},
		&Comment{Text: "touch off", Style: CommentInline},
	}
	tokens[2].(*Coordinates).Set('Z', Float(-5))

	line := Line{Tokens: tokens}
	assert.Equal(t, "N10 G38.2 Z-5 F100 M30 (touch off)", line.String())
	assert.True(t, tokens[4].(*MCode).IsProgramEnd())
	assert.False(t, (&MCode{Code: "3"}).IsProgramEnd())
	assert.True(t, Line{}.IsBlank())

	del := &BlockDelete{Tokens: []Token{&Comment{Text: " skip", Style: CommentEndOfLine}}}
	assert.Equal(t, "/; skip", del.String())

	assign := &ParameterAssignment{Parameter: Numbered(5), Value: Float(2)}
	assert.Equal(t, "#5 = 2", assign.String())
}

func TestBlockString(t *testing.T) {
	id := BlockID{Number: 1, Raw: "1"}
	stmt := &If{
		ID: id,
		Branches: []Branch{
			{
				Condition: Expression{Literal(1), Comparison(OpGT), Literal(0)},
				Body:      []Line{{Tokens: []Token{&GCode{Code: "0"}}}},
			},
		},
		Else: &Branch{Body: []Line{{Tokens: []Token{&GCode{Code: "1"}}}}},
	}
	want := "o1 if [1 GT 0]\nG0\no1 else\nG1\no1 endif"
	assert.Equal(t, want, stmt.String())

	sub := &SubroutineDefinition{ID: BlockID{Name: "touch", Raw: "<touch>"}, Return: Expression{Literal(1)}}
	assert.Equal(t, "o<touch> sub\no<touch> endsub [1]", sub.String())
	assert.True(t, sub.ID.IsNamed())

	call := &SubroutineCall{ID: BlockID{Number: 100, Raw: "0100"}, Args: []Expression{{Literal(1)}, {Literal(2)}}}
	assert.Equal(t, "o0100 call [1] [2]", call.String())
}

func TestWalk(t *testing.T) {
	inner := Line{Tokens: []Token{&GCode{Code: "1"}}}
	lines := []Line{
		{Tokens: []Token{&While{
			ID:   BlockID{Number: 2, Raw: "2"},
			Body: []Line{inner, {Tokens: []Token{&BlockDelete{Tokens: []Token{&MCode{Code: "5"}}}}}},
		}}},
		{Tokens: []Token{&MCode{Code: "2"}}},
	}

	var kinds []Kind
	Walk(lines, func(tok Token) bool {
		kinds = append(kinds, tok.Kind())
		return true
	})
	assert.Equal(t, []Kind{KindWhile, KindGCode, KindBlockDelete, KindMCode, KindMCode}, kinds)

	kinds = nil
	Walk(lines, func(tok Token) bool {
		kinds = append(kinds, tok.Kind())
		return tok.Kind() != KindWhile
	})
	assert.Equal(t, []Kind{KindWhile, KindMCode}, kinds)
}

func TestProgramString(t *testing.T) {
	p := &Program{
		Framing: FramingPercent,
		Lines: []Line{
			{Tokens: []Token{&GCode{Code: "21"}}},
			{},
			{Tokens: []Token{&MCode{Code: "2"}}},
		},
	}
	assert.Equal(t, "%\nG21\n\nM2\n%\n", p.String())
	assert.Equal(t, "percent", p.Framing.String())
	assert.Equal(t, "crlf", EndingCRLF.String())
	assert.Equal(t, "do_while", KindDoWhile.String())
}
