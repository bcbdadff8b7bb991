// File: ngc.go
// Title: NGC Engine
// Description: Provides the high-level API for parsing NGC programs and
//              evaluating expressions. The engine combines parser and
//              evaluator behind one set of options and is safe for shared
//              use: every parse call gets its own parser state.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-18
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-18 v0.1.0: Initial engine implementation

package ngc

import (
	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/eval"
	"github.com/msto63/ngc/foundation/ngc/parser"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// Engine parses NGC source and evaluates expressions
type Engine struct {
	evaluator *eval.Evaluator
	logger    *ngclog.Logger
	options   Options
}

// Options configures the engine
type Options struct {
	// Logger for engine operations (optional, defaults to the default logger)
	Logger *ngclog.Logger

	// MaxDepth limits expression and block nesting (default: 64)
	MaxDepth int

	// MaxInputLength limits the source size in bytes (default: 4 MiB)
	MaxInputLength int

	// AllowUnterminated accepts programs without % or M2/M30 framing
	AllowUnterminated bool

	// AngleUnit for trigonometric functions (default: degrees)
	AngleUnit eval.AngleUnit
}

// NewEngine creates a new engine with the specified options
func NewEngine(opts ...Options) (*Engine, error) {
	options := Options{
		Logger:         ngclog.GetDefault(),
		MaxDepth:       parser.DefaultMaxDepth,
		MaxInputLength: parser.DefaultMaxInputLength,
		AngleUnit:      eval.Degrees,
	}

	if len(opts) > 0 {
		provided := opts[0]
		if provided.Logger != nil {
			options.Logger = provided.Logger
		}
		if provided.MaxDepth != 0 {
			options.MaxDepth = provided.MaxDepth
		}
		if provided.MaxInputLength != 0 {
			options.MaxInputLength = provided.MaxInputLength
		}
		options.AllowUnterminated = provided.AllowUnterminated
		options.AngleUnit = provided.AngleUnit
	}

	logger := options.Logger.WithField("component", "ngc-engine")

	if _, err := parser.New(parserOptions(options)); err != nil {
		return nil, ngcerror.Wrap(err, "failed to initialize NGC parser")
	}

	ev, err := eval.New(eval.Options{Logger: options.Logger, AngleUnit: options.AngleUnit})
	if err != nil {
		return nil, ngcerror.Wrap(err, "failed to initialize NGC evaluator")
	}

	engine := &Engine{
		evaluator: ev,
		logger:    logger,
		options:   options,
	}

	logger.Debug("NGC engine initialized", ngclog.Fields{
		"maxDepth":          options.MaxDepth,
		"maxInputLength":    options.MaxInputLength,
		"allowUnterminated": options.AllowUnterminated,
		"angleUnit":         options.AngleUnit.String(),
	})

	return engine, nil
}

func parserOptions(o Options) parser.Options {
	return parser.Options{
		Logger:            o.Logger,
		MaxDepth:          o.MaxDepth,
		MaxInputLength:    o.MaxInputLength,
		AllowUnterminated: o.AllowUnterminated,
	}
}

// Options returns the effective options
func (e *Engine) Options() Options {
	return e.options
}

func (e *Engine) newParser() *parser.Parser {
	p, err := parser.New(parserOptions(e.options))
	if err != nil {
		// NewEngine validated the same options
		panic(err)
	}
	return p
}

// ParseProgram parses a complete program
func (e *Engine) ParseProgram(src string) (*token.Program, error) {
	return e.newParser().ParseProgram(src)
}

// ParseLine parses a single line
func (e *Engine) ParseLine(src string) (token.Line, error) {
	return e.newParser().ParseLine(src)
}

// ParseExpression parses a single bracketed expression
func (e *Engine) ParseExpression(src string) (token.Expression, error) {
	return e.newParser().ParseExpression(src)
}

// Evaluate computes the value of a parsed expression
func (e *Engine) Evaluate(expr token.Expression, ctx eval.Context) (float64, error) {
	return e.evaluator.Evaluate(expr, ctx)
}

// EvaluateValue computes the value of a word field
func (e *Engine) EvaluateValue(v token.Value, ctx eval.Context) (float64, error) {
	return e.evaluator.EvaluateValue(v, ctx)
}

// EvaluateExpression parses src as an expression and evaluates it. Parse
// failures are returned as *parser.ParseError, evaluation failures as
// coded foundation errors.
func (e *Engine) EvaluateExpression(src string, ctx eval.Context) (float64, error) {
	expr, err := e.ParseExpression(src)
	if err != nil {
		return 0, err
	}
	return e.Evaluate(expr, ctx)
}
