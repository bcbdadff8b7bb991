// File: operator.go
// Title: Operator Table
// Description: Maps expression tokens onto evaluator operators and defines
//              their precedence. Higher binds tighter; all binary operators
//              are left-associative.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-16
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-16 v0.1.0: Initial implementation

package eval

import (
	"math"

	"github.com/msto63/ngc/foundation/ngc/token"
)

type operator int

const (
	opOr operator = iota
	opXor
	opAnd
	opNot
	opEQ
	opNE
	opGT
	opGE
	opLT
	opLE
	opSub
	opAdd
	opMul
	opDiv
	opMod
	opPow
	opNeg
)

// precedence orders Div above Mul and Add above Sub, so a-b+c groups as
// a-(b+c).
var precedence = [...]int{
	opOr:  0,
	opXor: 0,
	opAnd: 1,
	opNot: 2,
	opEQ:  3,
	opNE:  3,
	opGT:  3,
	opGE:  3,
	opLT:  3,
	opLE:  3,
	opSub: 4,
	opAdd: 5,
	opMul: 6,
	opDiv: 7,
	opMod: 8,
	opPow: 9,
	opNeg: 10,
}

var operatorNames = [...]string{
	opOr:  "OR",
	opXor: "XOR",
	opAnd: "AND",
	opNot: "NOT",
	opEQ:  "EQ",
	opNE:  "NE",
	opGT:  "GT",
	opGE:  "GE",
	opLT:  "LT",
	opLE:  "LE",
	opSub: "-",
	opAdd: "+",
	opMul: "*",
	opDiv: "/",
	opMod: "MOD",
	opPow: "**",
	opNeg: "negate",
}

func (o operator) String() string {
	return operatorNames[o]
}

func (o operator) unary() bool {
	return o == opNot || o == opNeg
}

var arithmeticOps = map[token.ArithmeticOperator]operator{
	token.OpAdd: opAdd,
	token.OpSub: opSub,
	token.OpMul: opMul,
	token.OpDiv: opDiv,
	token.OpMod: opMod,
	token.OpPow: opPow,
}

var logicalOps = map[token.LogicalOperator]operator{
	token.OpAnd: opAnd,
	token.OpOr:  opOr,
	token.OpXor: opXor,
	token.OpNot: opNot,
}

var comparisonOps = map[token.ComparisonOperator]operator{
	token.OpEQ: opEQ,
	token.OpNE: opNE,
	token.OpGT: opGT,
	token.OpGE: opGE,
	token.OpLT: opLT,
	token.OpLE: opLE,
}

func truth(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

// applyUnary applies a prefix operator
func applyUnary(op operator, a float64) float64 {
	if op == opNot {
		return truth(a == 0)
	}
	return -a
}

// applyBinary applies a binary operator. The string result names the domain
// violation, if any.
func applyBinary(op operator, a, b float64) (float64, string) {
	switch op {
	case opOr:
		return truth(a != 0 || b != 0), ""
	case opXor:
		return truth((a != 0) != (b != 0)), ""
	case opAnd:
		return truth(a != 0 && b != 0), ""
	case opEQ:
		return truth(a == b), ""
	case opNE:
		return truth(a != b), ""
	case opGT:
		return truth(a > b), ""
	case opGE:
		return truth(a >= b), ""
	case opLT:
		return truth(a < b), ""
	case opLE:
		return truth(a <= b), ""
	case opSub:
		return a - b, ""
	case opAdd:
		return a + b, ""
	case opMul:
		return a * b, ""
	case opDiv:
		if b == 0 {
			return 0, "division by zero"
		}
		return a / b, ""
	case opMod:
		if b == 0 {
			return 0, "modulo by zero"
		}
		r := math.Mod(a, b)
		if r < 0 {
			r += math.Abs(b)
		}
		return r, ""
	case opPow:
		r := math.Pow(a, b)
		if math.IsNaN(r) || math.IsInf(r, 0) {
			return 0, "power result is not a finite number"
		}
		return r, ""
	}
	return 0, "unsupported operator " + op.String()
}
