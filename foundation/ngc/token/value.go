// File: value.go
// Title: Parameters and Values
// Description: Defines parameter references (numbered, named, global) and the
//              Value sum type used for word fields and assignments.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token model

package token

import (
	"strconv"
)

// ParameterKind distinguishes the three parameter forms
type ParameterKind int

const (
	// ParamNumbered is #1234
	ParamNumbered ParameterKind = iota

	// ParamNamed is #<name>, local to the current subroutine
	ParamNamed

	// ParamGlobal is #<_name>
	ParamGlobal
)

// String returns the name of the parameter kind
func (k ParameterKind) String() string {
	switch k {
	case ParamNumbered:
		return "numbered"
	case ParamNamed:
		return "named"
	case ParamGlobal:
		return "global"
	default:
		return "unknown"
	}
}

// Parameter is a reference to a parameter slot. It is comparable and usable
// as a map key. For globals Name excludes the leading underscore.
type Parameter struct {
	Kind   ParameterKind
	Number uint32
	Name   string
}

// Numbered returns a #n parameter
func Numbered(n uint32) Parameter {
	return Parameter{Kind: ParamNumbered, Number: n}
}

// Named returns a #<name> parameter
func Named(name string) Parameter {
	return Parameter{Kind: ParamNamed, Name: name}
}

// Global returns a #<_name> parameter; name is given without the underscore
func Global(name string) Parameter {
	return Parameter{Kind: ParamGlobal, Name: name}
}

// String renders the parameter in source form
func (p Parameter) String() string {
	switch p.Kind {
	case ParamNamed:
		return "#<" + p.Name + ">"
	case ParamGlobal:
		return "#<_" + p.Name + ">"
	default:
		return "#" + strconv.FormatUint(uint64(p.Number), 10)
	}
}

// ValueKind distinguishes the Value variants
type ValueKind int

const (
	ValueUnsigned ValueKind = iota
	ValueSigned
	ValueFloat
	ValueParameter
	ValueExpression
)

// String returns the name of the value kind
func (k ValueKind) String() string {
	switch k {
	case ValueUnsigned:
		return "unsigned"
	case ValueSigned:
		return "signed"
	case ValueFloat:
		return "float"
	case ValueParameter:
		return "parameter"
	case ValueExpression:
		return "expression"
	default:
		return "unknown"
	}
}

// Value is the content of a word field. Only the field selected by Kind is
// meaningful.
type Value struct {
	Kind       ValueKind
	Unsigned   uint32
	Signed     int32
	Float      float32
	Parameter  Parameter
	Expression Expression
}

// Unsigned returns an unsigned literal value
func Unsigned(v uint32) Value {
	return Value{Kind: ValueUnsigned, Unsigned: v}
}

// Signed returns a signed literal value
func Signed(v int32) Value {
	return Value{Kind: ValueSigned, Signed: v}
}

// Float returns a float literal value
func Float(v float32) Value {
	return Value{Kind: ValueFloat, Float: v}
}

// ParameterValue returns a value referring to a parameter
func ParameterValue(p Parameter) Value {
	return Value{Kind: ValueParameter, Parameter: p}
}

// ExpressionValue returns a value computed by an expression
func ExpressionValue(e Expression) Value {
	return Value{Kind: ValueExpression, Expression: e}
}

// IsLiteral reports whether the value needs no evaluation
func (v Value) IsLiteral() bool {
	return v.Kind == ValueUnsigned || v.Kind == ValueSigned || v.Kind == ValueFloat
}

// String renders the value in source form
func (v Value) String() string {
	switch v.Kind {
	case ValueUnsigned:
		return strconv.FormatUint(uint64(v.Unsigned), 10)
	case ValueSigned:
		return strconv.FormatInt(int64(v.Signed), 10)
	case ValueFloat:
		return FormatFloat(v.Float)
	case ValueParameter:
		return v.Parameter.String()
	case ValueExpression:
		return v.Expression.String()
	default:
		return "?"
	}
}

// FormatFloat renders a literal with the shortest representation that reads
// back to the same float32
func FormatFloat(f float32) string {
	return strconv.FormatFloat(float64(f), 'f', -1, 32)
}
