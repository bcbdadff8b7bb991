// File: parser.go
// Title: NGC Recursive Descent Parser
// Description: Defines the Parser, its options and the public entry points.
//              Grammar functions work on byte offsets, backtrack locally and
//              record failures; an entry point reports the furthest failure
//              when no alternative succeeds.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-12
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-12 v0.1.0: Initial parser implementation
// - 2025-03-09 v0.1.1: Failures logged with the error attached

package parser

import (
	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/token"
)

const (
	// DefaultMaxDepth bounds expression and block nesting
	DefaultMaxDepth = 64

	// DefaultMaxInputLength bounds the source size in bytes
	DefaultMaxInputLength = 4 << 20
)

// Options configures parser behavior
type Options struct {
	// Logger for parser diagnostics (optional, defaults to a discarding logger)
	Logger *ngclog.Logger

	// MaxDepth limits nesting of expressions and blocks (default: 64)
	MaxDepth int

	// MaxInputLength limits the source size in bytes (default: 4 MiB)
	MaxInputLength int

	// AllowUnterminated accepts programs without % or M2/M30 framing
	AllowUnterminated bool
}

// ValueContext selects which literal form a word field accepts
type ValueContext int

const (
	// UnsignedField accepts an unsigned integer literal (T H D L N)
	UnsignedField ValueContext = iota

	// SignedField accepts an optionally signed integer literal
	SignedField

	// FloatField accepts a decimal literal (F S P Q R E and the axes)
	FloatField
)

// Parser parses NGC source. It holds per-call state and must not be used by
// several goroutines at once; calls may be made one after another.
type Parser struct {
	options Options
	logger  *ngclog.Logger

	src      *sourceMap
	depth    int
	inSub    bool
	furthest *ParseError
	fatal    *ParseError
}

// New creates a new parser with the given options
func New(opts Options) (*Parser, error) {
	if opts.MaxDepth < 0 || opts.MaxInputLength < 0 {
		return nil, ngcerror.New("parser limits must not be negative").
			WithCode(ngcerror.CodeInvalidInput).
			WithOperation("parser.New").
			WithDetail("maxDepth", opts.MaxDepth).
			WithDetail("maxInputLength", opts.MaxInputLength)
	}
	if opts.Logger == nil {
		opts.Logger = ngclog.Discard()
	}
	if opts.MaxDepth == 0 {
		opts.MaxDepth = DefaultMaxDepth
	}
	if opts.MaxInputLength == 0 {
		opts.MaxInputLength = DefaultMaxInputLength
	}

	return &Parser{
		options: opts,
		logger:  opts.Logger.WithField("component", "ngc-parser"),
	}, nil
}

// Options returns the effective options
func (p *Parser) Options() Options {
	return p.options
}

func (p *Parser) reset(src string) error {
	p.src = newSourceMap(src)
	p.depth = 0
	p.inSub = false
	p.furthest = nil
	p.fatal = nil

	if len(src) > p.options.MaxInputLength {
		return &ParseError{
			code:    ngcerror.CodeInputTooLong,
			Message: "input exceeds maximum length",
			Offset:  p.options.MaxInputLength,
		}
	}
	return nil
}

// enter increments the nesting depth; it aborts the parse past MaxDepth
func (p *Parser) enter(offset int) bool {
	p.depth++
	if p.depth > p.options.MaxDepth {
		p.abort(offset, ngcerror.CodeNestingTooDeep, "nesting deeper than %d levels", p.options.MaxDepth)
		return false
	}
	return true
}

func (p *Parser) leave() {
	p.depth--
}

// finish checks that only whitespace follows end and converts a failed parse
// into its error
func (p *Parser) finish(end int, ok bool, what string) error {
	if ok {
		if rest := skipSpace(p.src.src, end); rest < len(p.src.src) {
			p.fail(rest, ngcerror.CodeSyntax, "unexpected %q after %s", p.src.src[rest], what)
			ok = false
		}
	}
	if ok && p.fatal == nil {
		return nil
	}
	err := p.err()
	p.logFailure(what, err)
	return err
}

func (p *Parser) logFailure(what string, err *ParseError) {
	p.logger.WarnWithErr("parse failed", err, ngclog.Fields{
		"what":   what,
		"code":   err.Code(),
		"line":   err.Line,
		"column": err.Column,
	})
}

// ParseExpression parses a single bracketed expression. Only whitespace may
// surround it.
func (p *Parser) ParseExpression(input string) (token.Expression, error) {
	if err := p.reset(input); err != nil {
		return nil, err
	}
	start := skipSpace(input, 0)
	expr, end, ok := p.expression(start)
	if err := p.finish(end, ok, "expression"); err != nil {
		return nil, err
	}
	p.logger.Trace("parsed expression", ngclog.Fields{"tokens": len(expr)})
	return expr, nil
}

// ParseValue parses a word field in the given context and returns it with
// the number of bytes consumed
func (p *Parser) ParseValue(ctx ValueContext, input string) (token.Value, int, error) {
	if err := p.reset(input); err != nil {
		return token.Value{}, 0, err
	}
	v, end, ok := p.value(0, ctx)
	if !ok || p.fatal != nil {
		return token.Value{}, 0, p.err()
	}
	return v, end, nil
}

// ParseCoordinates parses axis words in any order and returns them with the
// number of bytes consumed. Parsing stops at the first repeated axis.
func (p *Parser) ParseCoordinates(input string) (token.Vec9, int, error) {
	if err := p.reset(input); err != nil {
		return token.Vec9{}, 0, err
	}
	var vec token.Vec9
	n, end := p.vector(0, token.Axes, vec.Set)
	if n == 0 || p.fatal != nil {
		return token.Vec9{}, 0, p.err()
	}
	return vec, end, nil
}

// ParseLine parses a single source line. A line opening a block must carry
// the lines up to its closing tag in input.
func (p *Parser) ParseLine(input string) (token.Line, error) {
	if err := p.reset(input); err != nil {
		return token.Line{}, err
	}
	line, end, ok := p.line(0)
	if err := p.finish(end, ok, "line"); err != nil {
		return token.Line{}, err
	}
	return line, nil
}
