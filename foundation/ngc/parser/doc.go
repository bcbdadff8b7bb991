// Package parser implements the NGC recursive descent parser.
//
// Package: parser
// Title: NGC Parser
// Description: Turns NGC source text into the token tree of package token.
//              The grammar is written as one function per construct working
//              on byte offsets. Alternatives backtrack locally and the error
//              returned to the caller describes the furthest position any
//              alternative reached.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-03-02
//
// Entry points:
//
//	p, _ := parser.New(parser.Options{})
//	prog, err := p.ParseProgram(src)
//	expr, err := p.ParseExpression("[1 + #2]")
//	line, err := p.ParseLine("G1 X10 Y20 F300")
//
// LexNumber, MatchCode and ParseParameter are stateless helpers for the
// lexical level.
//
// Failures are *ParseError values. Their Code method makes them visible to
// the foundation error helpers:
//
//	if ngcerror.HasCode(err, ngcerror.CodeUnterminatedBlock) { ... }
//
// A Parser is not safe for concurrent use. Use one per goroutine or go
// through the ngc.Engine facade, which creates one per call.
package parser
