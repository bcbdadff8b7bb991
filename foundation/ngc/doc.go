// Package ngc provides the entry point to the NGC parser core.
//
// Package: ngc
// Title: NGC Parser Core
// Description: Parses RS274/NGC programs (G-code with O-word control flow
//              and bracketed expressions) into a token tree and evaluates
//              expressions against a parameter context. The Engine bundles
//              parser and evaluator options and may be shared between
//              goroutines.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-18
// Modified: 2025-03-02
//
// Usage:
//
//	engine, err := ngc.NewEngine(ngc.Options{AllowUnterminated: true})
//	prog, err := engine.ParseProgram(src)
//	summary := ngc.Summarize(prog)
//
//	v, err := engine.EvaluateExpression("[#1 * 2]", eval.MapContext{
//		token.Numbered(1): 21,
//	})
//
// Subpackages:
//   - token: the token tree
//   - parser: the recursive descent parser
//   - eval: the expression evaluator
package ngc
