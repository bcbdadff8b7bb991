// Package eval evaluates NGC expressions to float64 values.
//
// Package: eval
// Title: NGC Expression Evaluator
// Description: Computes the value of expressions produced by the parser
//              against a read-only parameter context. Evaluation happens
//              strictly after a successful parse; every failure is returned
//              as a coded foundation error and never defaulted.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-16
// Modified: 2025-03-02
//
// Operator precedence, highest first:
//
//	unary -      10
//	**           9
//	MOD          8
//	/            7
//	*            6
//	+            5
//	-            4
//	EQ NE GT GE LT LE  3
//	NOT          2
//	AND          1
//	OR XOR       0
//
// Binary operators are left-associative. Because + binds tighter than -,
// [10 - 2 + 3] evaluates to 5. Comparisons and logical operators yield 1 or
// 0; any non-zero operand counts as true.
//
// Error codes: NGC_UNRESOLVED_PARAMETER (detail "parameter"),
// NGC_DOMAIN (division by zero, SQRT of a negative number, ...),
// NGC_UNKNOWN_FUNCTION (detail "function") and NGC_MALFORMED_POSTFIX for
// operator/operand sequences that do not reduce to one value.
package eval
