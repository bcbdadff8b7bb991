// ============================================================================
// ngc - RS274/NGC Parser Toolkit
// ============================================================================
//
// Package:     repl
// Description: Evaluation session behind the interactive expression REPL
// Author:      Mike Stoffels
// Created:     2025-12-12
// License:     MIT
// ============================================================================

package repl

import (
	"fmt"
	"sort"
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc"
	"github.com/msto63/ngc/foundation/ngc/eval"
	"github.com/msto63/ngc/foundation/ngc/token"
	"github.com/msto63/ngc/internal/render"
)

// ResultKind tells the model how to present a Result
type ResultKind int

const (
	ResultValue ResultKind = iota
	ResultAssignment
	ResultCommand
	ResultQuit
	ResultClear
)

// Result is the outcome of one input line
type Result struct {
	Kind   ResultKind
	Output string
	Value  float64
}

// Session evaluates expressions against parameters assigned earlier in the
// same session. It is not safe for concurrent use.
type Session struct {
	engine *ngc.Engine
	params eval.MapContext
}

// NewSession creates a session with no parameters set
func NewSession(engine *ngc.Engine) *Session {
	return &Session{engine: engine, params: eval.MapContext{}}
}

// Params returns a copy of the assigned parameters
func (s *Session) Params() eval.MapContext {
	out := make(eval.MapContext, len(s.params))
	for k, v := range s.params {
		out[k] = v
	}
	return out
}

// Execute runs one input line: a :command, one or more #p = value
// assignments, or an expression. Expressions may omit the outer brackets.
func (s *Session) Execute(line string) (Result, error) {
	line = strings.TrimSpace(line)
	switch {
	case line == "":
		return Result{Kind: ResultCommand}, nil
	case strings.HasPrefix(line, ":"):
		return s.command(line)
	case strings.HasPrefix(line, "#") && strings.Contains(line, "="):
		return s.assign(line)
	}

	expr, err := s.expression(line)
	if err != nil {
		return Result{}, err
	}
	v, err := s.engine.Evaluate(expr, s.params)
	if err != nil {
		return Result{}, err
	}
	return Result{Kind: ResultValue, Output: render.FormatValue(v), Value: v}, nil
}

func (s *Session) expression(src string) (token.Expression, error) {
	if !strings.HasPrefix(src, "[") {
		return s.engine.ParseExpression("[" + src + "]")
	}
	expr, err := s.engine.ParseExpression(src)
	if err == nil {
		return expr, nil
	}
	if wrapped, werr := s.engine.ParseExpression("[" + src + "]"); werr == nil {
		return wrapped, nil
	}
	return nil, err
}

// assign evaluates every right-hand side before storing any of them, so
// #1 = 2 #2 = #1 reads the previous #1
func (s *Session) assign(line string) (Result, error) {
	parsed, err := s.engine.ParseLine(line)
	if err != nil {
		return Result{}, err
	}

	type pending struct {
		param token.Parameter
		value float64
	}
	var updates []pending
	for _, t := range parsed.Tokens {
		a, ok := t.(*token.ParameterAssignment)
		if !ok {
			return Result{}, ngcerror.Newf("unexpected %s in assignment line", t.Kind()).
				WithCode(ngcerror.CodeInvalidInput).
				WithOperation("repl.assign").
				WithDetail("token", t.String())
		}
		v, err := s.engine.EvaluateValue(a.Value, s.params)
		if err != nil {
			return Result{}, err
		}
		updates = append(updates, pending{a.Parameter, v})
	}

	parts := make([]string, 0, len(updates))
	for _, u := range updates {
		s.params[u.param] = u.value
		parts = append(parts, fmt.Sprintf("%s = %s", u.param, render.FormatValue(u.value)))
	}
	return Result{Kind: ResultAssignment, Output: strings.Join(parts, "  ")}, nil
}

func (s *Session) command(line string) (Result, error) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case ":q", ":quit", ":exit":
		return Result{Kind: ResultQuit}, nil
	case ":clear":
		s.params = eval.MapContext{}
		return Result{Kind: ResultClear, Output: "parameters cleared"}, nil
	case ":p", ":params":
		return Result{Kind: ResultCommand, Output: s.listParams()}, nil
	case ":h", ":help":
		return Result{Kind: ResultCommand, Output: helpText}, nil
	default:
		return Result{}, ngcerror.Newf("unknown command %s", fields[0]).
			WithCode(ngcerror.CodeInvalidInput).
			WithOperation("repl.command")
	}
}

func (s *Session) listParams() string {
	if len(s.params) == 0 {
		return "no parameters set"
	}
	lines := make([]string, 0, len(s.params))
	for p, v := range s.params {
		lines = append(lines, fmt.Sprintf("%s = %s", p, render.FormatValue(v)))
	}
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

const helpText = `[expr] or expr     evaluate, e.g. [1 + 2] or SIN[30]
#p = value         assign, e.g. #1 = 2 or #<depth> = [#1 * 3]
:params            list assigned parameters
:clear             forget all parameters
:quit              leave`
