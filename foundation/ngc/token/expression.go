// File: expression.go
// Title: Expression Tokens
// Description: Defines the flat expression token sequence. Operator
//              precedence is not encoded here; the evaluator resolves it.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token model

package token

import (
	"strings"
)

// ArithmeticOperator is one of + - * / MOD **
type ArithmeticOperator int

const (
	OpAdd ArithmeticOperator = iota
	OpSub
	OpMul
	OpDiv
	OpMod
	OpPow
)

// String returns the operator in source form
func (o ArithmeticOperator) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpMod:
		return "MOD"
	case OpPow:
		return "**"
	default:
		return "?"
	}
}

// LogicalOperator is one of AND OR XOR NOT
type LogicalOperator int

const (
	OpAnd LogicalOperator = iota
	OpOr
	OpXor
	OpNot
)

// String returns the operator keyword
func (o LogicalOperator) String() string {
	switch o {
	case OpAnd:
		return "AND"
	case OpOr:
		return "OR"
	case OpXor:
		return "XOR"
	case OpNot:
		return "NOT"
	default:
		return "?"
	}
}

// ComparisonOperator is one of EQ NE GT GE LT LE
type ComparisonOperator int

const (
	OpEQ ComparisonOperator = iota
	OpNE
	OpGT
	OpGE
	OpLT
	OpLE
)

// String returns the operator keyword
func (o ComparisonOperator) String() string {
	switch o {
	case OpEQ:
		return "EQ"
	case OpNE:
		return "NE"
	case OpGT:
		return "GT"
	case OpGE:
		return "GE"
	case OpLT:
		return "LT"
	case OpLE:
		return "LE"
	default:
		return "?"
	}
}

// FunctionName identifies a built-in function
type FunctionName int

const (
	FuncAbs FunctionName = iota
	FuncAcos
	FuncAsin
	FuncAtan
	FuncCos
	FuncExists
	FuncExp
	FuncFix
	FuncFup
	FuncRound
	FuncLn
	FuncSin
	FuncSqrt
	FuncTan
)

var functionNames = [...]string{
	FuncAbs:    "ABS",
	FuncAcos:   "ACOS",
	FuncAsin:   "ASIN",
	FuncAtan:   "ATAN",
	FuncCos:    "COS",
	FuncExists: "EXISTS",
	FuncExp:    "EXP",
	FuncFix:    "FIX",
	FuncFup:    "FUP",
	FuncRound:  "ROUND",
	FuncLn:     "LN",
	FuncSin:    "SIN",
	FuncSqrt:   "SQRT",
	FuncTan:    "TAN",
}

// String returns the canonical function name. FLOOR and CEIL render as FIX
// and FUP.
func (f FunctionName) String() string {
	if f >= 0 && int(f) < len(functionNames) {
		return functionNames[f]
	}
	return "?"
}

// LookupFunction resolves a case-insensitive function name, including the
// FLOOR and CEIL aliases
func LookupFunction(name string) (FunctionName, bool) {
	switch strings.ToUpper(name) {
	case "FLOOR":
		return FuncFix, true
	case "CEIL":
		return FuncFup, true
	}
	upper := strings.ToUpper(name)
	for i, n := range functionNames {
		if n == upper {
			return FunctionName(i), true
		}
	}
	return 0, false
}

// Function is a call to a built-in. ATAN carries two Args, EXISTS carries no
// Args and a Parameter, every other function carries one Arg.
type Function struct {
	Name      FunctionName
	Args      []Expression
	Parameter Parameter
}

// String renders the call in source form
func (f *Function) String() string {
	switch f.Name {
	case FuncExists:
		return "EXISTS[" + f.Parameter.String() + "]"
	case FuncAtan:
		if len(f.Args) == 2 {
			return "ATAN" + f.Args[0].String() + "/" + f.Args[1].String()
		}
	}
	var b strings.Builder
	b.WriteString(f.Name.String())
	for _, a := range f.Args {
		b.WriteString(a.String())
	}
	return b.String()
}

// ExpressionTokenKind distinguishes the ExpressionToken variants
type ExpressionTokenKind int

const (
	ExprLiteral ExpressionTokenKind = iota
	ExprArithmetic
	ExprLogical
	ExprComparison
	ExprFunction
	ExprParameter
	ExprNested
)

// ExpressionToken is one element of a flat expression. Only the field
// selected by Kind is meaningful.
type ExpressionToken struct {
	Kind       ExpressionTokenKind
	Literal    float32
	Arithmetic ArithmeticOperator
	Logical    LogicalOperator
	Comparison ComparisonOperator
	Function   *Function
	Parameter  Parameter
	Nested     Expression
}

// Literal returns a literal expression token
func Literal(v float32) ExpressionToken {
	return ExpressionToken{Kind: ExprLiteral, Literal: v}
}

// Arithmetic returns an arithmetic operator token
func Arithmetic(op ArithmeticOperator) ExpressionToken {
	return ExpressionToken{Kind: ExprArithmetic, Arithmetic: op}
}

// Logical returns a logical operator token
func Logical(op LogicalOperator) ExpressionToken {
	return ExpressionToken{Kind: ExprLogical, Logical: op}
}

// Comparison returns a comparison operator token
func Comparison(op ComparisonOperator) ExpressionToken {
	return ExpressionToken{Kind: ExprComparison, Comparison: op}
}

// Call returns a function call token
func Call(f *Function) ExpressionToken {
	return ExpressionToken{Kind: ExprFunction, Function: f}
}

// ParameterRef returns a parameter reference token
func ParameterRef(p Parameter) ExpressionToken {
	return ExpressionToken{Kind: ExprParameter, Parameter: p}
}

// Nested returns a bracketed sub-expression token
func Nested(e Expression) ExpressionToken {
	return ExpressionToken{Kind: ExprNested, Nested: e}
}

// IsOperand reports whether the token yields a value, as opposed to an operator
func (t ExpressionToken) IsOperand() bool {
	switch t.Kind {
	case ExprLiteral, ExprFunction, ExprParameter, ExprNested:
		return true
	default:
		return false
	}
}

// String renders the token in source form
func (t ExpressionToken) String() string {
	switch t.Kind {
	case ExprLiteral:
		return FormatFloat(t.Literal)
	case ExprArithmetic:
		return t.Arithmetic.String()
	case ExprLogical:
		return t.Logical.String()
	case ExprComparison:
		return t.Comparison.String()
	case ExprFunction:
		return t.Function.String()
	case ExprParameter:
		return t.Parameter.String()
	case ExprNested:
		return t.Nested.String()
	default:
		return "?"
	}
}

// Expression is a bracketed, flat token sequence
type Expression []ExpressionToken

// String renders the expression with its brackets, tokens separated by a
// single space
func (e Expression) String() string {
	parts := make([]string, len(e))
	for i, t := range e {
		parts[i] = t.String()
	}
	return "[" + strings.Join(parts, " ") + "]"
}
