// File: errors.go
// Title: Parse Errors
// Description: Defines ParseError, the positional error returned by every
//              parser entry point, and the furthest-failure bookkeeping that
//              selects which failure is reported.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package parser

import (
	"fmt"
	"sort"
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// maxExcerpt bounds the excerpt width in bytes
const maxExcerpt = 60

// ParseError reports where and why parsing failed. Offset, Line and Column
// point at the furthest position any grammar alternative reached.
type ParseError struct {
	code    ngcerror.Code
	Message string
	Offset  int
	Line    int
	Column  int
	Excerpt string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

// Code returns the error code. It makes ParseError visible to
// ngcerror.GetCode and ngcerror.HasCode.
func (e *ParseError) Code() ngcerror.Code {
	return e.code
}

// Position returns the failure position
func (e *ParseError) Position() token.Position {
	return token.Position{Line: e.Line, Column: e.Column, Offset: e.Offset}
}

// Caret returns the excerpt followed by a line with a caret under the failing
// column, for terminal output
func (e *ParseError) Caret() string {
	if e.Excerpt == "" {
		return ""
	}
	col := e.Column - 1 - e.excerptShift()
	if col < 0 {
		col = 0
	}
	return e.Excerpt + "\n" + strings.Repeat(" ", col) + "^"
}

func (e *ParseError) excerptShift() int {
	if e.Column-1 <= maxExcerpt/2 {
		return 0
	}
	return e.Column - 1 - maxExcerpt/2 - len("...")
}

// sourceMap converts byte offsets into line and column numbers
type sourceMap struct {
	src        string
	lineStarts []int
}

func newSourceMap(src string) *sourceMap {
	starts := []int{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &sourceMap{src: src, lineStarts: starts}
}

func (m *sourceMap) position(offset int) token.Position {
	if offset > len(m.src) {
		offset = len(m.src)
	}
	idx := sort.Search(len(m.lineStarts), func(i int) bool { return m.lineStarts[i] > offset }) - 1
	return token.Position{Line: idx + 1, Column: offset - m.lineStarts[idx] + 1, Offset: offset}
}

func (m *sourceMap) excerpt(offset int) string {
	pos := m.position(offset)
	start := m.lineStarts[pos.Line-1]
	end := strings.IndexByte(m.src[start:], '\n')
	if end < 0 {
		end = len(m.src)
	} else {
		end += start
	}
	line := strings.TrimRight(m.src[start:end], "\r")

	col := pos.Column - 1
	if col > maxExcerpt/2 {
		line = "..." + line[col-maxExcerpt/2:]
	}
	if len(line) > maxExcerpt+len("...") {
		line = line[:maxExcerpt+len("...")] + "..."
	}
	return line
}

func (m *sourceMap) newError(offset int, code ngcerror.Code, msg string) *ParseError {
	pos := m.position(offset)
	return &ParseError{
		code:    code,
		Message: msg,
		Offset:  pos.Offset,
		Line:    pos.Line,
		Column:  pos.Column,
		Excerpt: m.excerpt(offset),
	}
}

// fail records a failure at offset. The furthest failure wins; at equal
// offsets a specific code replaces a generic syntax error.
func (p *Parser) fail(offset int, code ngcerror.Code, format string, args ...interface{}) {
	if p.furthest != nil {
		if offset < p.furthest.Offset {
			return
		}
		if offset == p.furthest.Offset && p.furthest.code != ngcerror.CodeSyntax {
			return
		}
	}
	p.furthest = p.src.newError(offset, code, fmt.Sprintf(format, args...))
}

// abort records a failure that ends the parse regardless of alternatives
func (p *Parser) abort(offset int, code ngcerror.Code, format string, args ...interface{}) {
	if p.fatal == nil {
		p.fatal = p.src.newError(offset, code, fmt.Sprintf(format, args...))
	}
}

func (p *Parser) err() *ParseError {
	if p.fatal != nil {
		return p.fatal
	}
	if p.furthest != nil {
		return p.furthest
	}
	return p.src.newError(0, ngcerror.CodeSyntax, "invalid input")
}
