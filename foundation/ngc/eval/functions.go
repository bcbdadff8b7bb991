// File: functions.go
// Title: Built-in Functions
// Description: Implements the NGC built-in functions. Trigonometric functions
//              take and return angles in the configured unit.
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

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc/token"
)

func (e *Evaluator) call(fn *token.Function, ctx Context) (float64, error) {
	if fn == nil {
		return 0, malformed("nil function")
	}

	if fn.Name == token.FuncExists {
		if ctx == nil {
			return 0, nil
		}
		_, ok := ctx.Lookup(fn.Parameter)
		return truth(ok), nil
	}

	want := 1
	if fn.Name == token.FuncAtan {
		want = 2
	}
	if len(fn.Args) != want {
		return 0, malformed("%s takes %d argument(s), got %d", fn.Name, want, len(fn.Args))
	}

	args := make([]float64, len(fn.Args))
	for i, a := range fn.Args {
		v, err := e.evaluate(a, ctx)
		if err != nil {
			return 0, err
		}
		args[i] = v
	}
	x := args[0]

	switch fn.Name {
	case token.FuncAbs:
		return math.Abs(x), nil
	case token.FuncAcos:
		if x < -1 || x > 1 {
			return 0, domainArg(fn, x, "argument outside [-1, 1]")
		}
		return e.fromRadians(math.Acos(x)), nil
	case token.FuncAsin:
		if x < -1 || x > 1 {
			return 0, domainArg(fn, x, "argument outside [-1, 1]")
		}
		return e.fromRadians(math.Asin(x)), nil
	case token.FuncAtan:
		return e.fromRadians(math.Atan2(x, args[1])), nil
	case token.FuncCos:
		return math.Cos(e.toRadians(x)), nil
	case token.FuncSin:
		return math.Sin(e.toRadians(x)), nil
	case token.FuncTan:
		return math.Tan(e.toRadians(x)), nil
	case token.FuncExp:
		return math.Exp(x), nil
	case token.FuncFix:
		return math.Floor(x), nil
	case token.FuncFup:
		return math.Ceil(x), nil
	case token.FuncRound:
		return math.Round(x), nil
	case token.FuncLn:
		if x <= 0 {
			return 0, domainArg(fn, x, "argument must be positive")
		}
		return math.Log(x), nil
	case token.FuncSqrt:
		if x < 0 {
			return 0, domainArg(fn, x, "argument must not be negative")
		}
		return math.Sqrt(x), nil
	}

	return 0, ngcerror.Newf("unknown function %s", fn.Name).
		WithCode(ngcerror.CodeUnknownFunction).
		WithOperation("eval.Evaluate").
		WithDetail("function", fn.Name.String())
}

func domainArg(fn *token.Function, x float64, msg string) *ngcerror.Error {
	return domain(fn.Name.String()+": "+msg).
		WithDetail("function", fn.Name.String()).
		WithDetail("argument", x)
}

func (e *Evaluator) toRadians(x float64) float64 {
	if e.options.AngleUnit == Radians {
		return x
	}
	return x * math.Pi / 180
}

func (e *Evaluator) fromRadians(x float64) float64 {
	if e.options.AngleUnit == Radians {
		return x
	}
	return x * 180 / math.Pi
}
