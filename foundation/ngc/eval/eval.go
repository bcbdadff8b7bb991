// File: eval.go
// Title: Expression Evaluator
// Description: Evaluates flat expression token sequences. Operands are
//              resolved as they are met, operators are reordered into postfix
//              by the shunting-yard algorithm and the postfix sequence is
//              reduced on a value stack.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-16
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-16 v0.1.0: Initial implementation
// - 2025-03-02 v0.1.0: Domain errors, angle unit option
// - 2025-03-09 v0.1.1: Shared expression field on debug entries

package eval

import (
	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// Options configures evaluator behavior
type Options struct {
	// Logger for evaluation diagnostics (optional, defaults to a discarding logger)
	Logger *ngclog.Logger

	// AngleUnit for trigonometric functions (default: Degrees)
	AngleUnit AngleUnit
}

// Evaluator computes the value of expressions. It holds no per-call state
// and is safe for concurrent use.
type Evaluator struct {
	options Options
	logger  *ngclog.Logger
}

// New creates a new evaluator with the given options
func New(opts Options) (*Evaluator, error) {
	if opts.AngleUnit != Degrees && opts.AngleUnit != Radians {
		return nil, ngcerror.Newf("invalid angle unit %d", int(opts.AngleUnit)).
			WithCode(ngcerror.CodeInvalidInput).
			WithOperation("eval.New")
	}
	if opts.Logger == nil {
		opts.Logger = ngclog.Discard()
	}
	return &Evaluator{
		options: opts,
		logger:  opts.Logger.WithField("component", "ngc-eval"),
	}, nil
}

// Options returns the effective options
func (e *Evaluator) Options() Options {
	return e.options
}

// Evaluate computes the value of expr. Parameters are resolved through ctx,
// which may be nil when expr references none.
func (e *Evaluator) Evaluate(expr token.Expression, ctx Context) (float64, error) {
	v, err := e.evaluate(expr, ctx)
	fields := ngclog.Fields{"expression": expr.String()}
	if err != nil {
		e.logger.Debug("evaluation failed", fields.Merge(ngclog.Fields{
			"code":  ngcerror.GetCode(err),
			"error": err,
		}))
		return 0, err
	}
	e.logger.Trace("evaluated expression", fields.Merge(ngclog.Field("result", v)))
	return v, nil
}

// EvaluateValue computes the numeric value of a word field
func (e *Evaluator) EvaluateValue(v token.Value, ctx Context) (float64, error) {
	switch v.Kind {
	case token.ValueUnsigned:
		return float64(v.Unsigned), nil
	case token.ValueSigned:
		return float64(v.Signed), nil
	case token.ValueFloat:
		return float64(v.Float), nil
	case token.ValueParameter:
		return lookup(v.Parameter, ctx)
	case token.ValueExpression:
		return e.Evaluate(v.Expression, ctx)
	}
	return 0, malformed("unknown value kind %d", int(v.Kind))
}

// item is one element of a postfix sequence: a value or an operator
type item struct {
	isOp  bool
	op    operator
	value float64
}

func (e *Evaluator) evaluate(expr token.Expression, ctx Context) (float64, error) {
	postfix, err := e.toPostfix(expr, ctx)
	if err != nil {
		return 0, err
	}
	return reduce(postfix)
}

// toPostfix resolves operands and reorders operators. A + or - where an
// operand is expected is a prefix sign.
func (e *Evaluator) toPostfix(expr token.Expression, ctx Context) ([]item, error) {
	out := make([]item, 0, len(expr))
	var ops []operator
	expectOperand := true

	pushBinary := func(op operator) {
		for len(ops) > 0 {
			top := ops[len(ops)-1]
			if precedence[top] < precedence[op] {
				break
			}
			out = append(out, item{isOp: true, op: top})
			ops = ops[:len(ops)-1]
		}
		ops = append(ops, op)
		expectOperand = true
	}

	for _, t := range expr {
		var v float64
		var err error

		switch t.Kind {
		case token.ExprLiteral:
			v = float64(t.Literal)
		case token.ExprParameter:
			v, err = lookup(t.Parameter, ctx)
		case token.ExprNested:
			v, err = e.evaluate(t.Nested, ctx)
		case token.ExprFunction:
			v, err = e.call(t.Function, ctx)

		case token.ExprArithmetic:
			op := arithmeticOps[t.Arithmetic]
			if expectOperand && op == opSub {
				ops = append(ops, opNeg)
				continue
			}
			if expectOperand && op == opAdd {
				continue
			}
			pushBinary(op)
			continue

		case token.ExprLogical:
			op := logicalOps[t.Logical]
			if op == opNot {
				ops = append(ops, opNot)
				expectOperand = true
				continue
			}
			pushBinary(op)
			continue

		case token.ExprComparison:
			pushBinary(comparisonOps[t.Comparison])
			continue

		default:
			return nil, malformed("unknown expression token kind %d", int(t.Kind))
		}

		if err != nil {
			return nil, err
		}
		out = append(out, item{value: v})
		expectOperand = false
	}

	for i := len(ops) - 1; i >= 0; i-- {
		out = append(out, item{isOp: true, op: ops[i]})
	}
	return out, nil
}

func reduce(postfix []item) (float64, error) {
	stack := make([]float64, 0, len(postfix))

	for _, it := range postfix {
		if !it.isOp {
			stack = append(stack, it.value)
			continue
		}

		if it.op.unary() {
			if len(stack) < 1 {
				return 0, malformed("missing operand for %s", it.op)
			}
			stack[len(stack)-1] = applyUnary(it.op, stack[len(stack)-1])
			continue
		}

		if len(stack) < 2 {
			return 0, malformed("missing operand for %s", it.op)
		}
		a, b := stack[len(stack)-2], stack[len(stack)-1]
		stack = stack[:len(stack)-2]
		r, violation := applyBinary(it.op, a, b)
		if violation != "" {
			return 0, domain(violation).WithDetail("operator", it.op.String())
		}
		stack = append(stack, r)
	}

	if len(stack) != 1 {
		return 0, malformed("expression leaves %d values", len(stack))
	}
	return stack[0], nil
}

func lookup(param token.Parameter, ctx Context) (float64, error) {
	if ctx != nil {
		if v, ok := ctx.Lookup(param); ok {
			return v, nil
		}
	}
	return 0, ngcerror.Newf("unresolved parameter %s", param).
		WithCode(ngcerror.CodeUnresolvedParameter).
		WithOperation("eval.Evaluate").
		WithDetail("parameter", param.String())
}

func malformed(format string, args ...interface{}) *ngcerror.Error {
	return ngcerror.Newf("malformed expression: "+format, args...).
		WithCode(ngcerror.CodeMalformedPostfix).
		WithOperation("eval.Evaluate")
}

func domain(msg string) *ngcerror.Error {
	return ngcerror.New(msg).
		WithCode(ngcerror.CodeDomain).
		WithOperation("eval.Evaluate")
}
