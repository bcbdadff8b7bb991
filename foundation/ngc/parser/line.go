// File: line.go
// Title: Line Parser
// Description: Parses one source line: an optional block-delete slash, an
//              optional N word, then either an O-word statement or a sequence
//              of words and comments up to the line terminator.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package parser

import (
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// wordContexts maps the letters of plain words to their field context
var wordContexts = map[byte]ValueContext{
	'F': FloatField,
	'S': FloatField,
	'P': FloatField,
	'Q': FloatField,
	'R': FloatField,
	'E': FloatField,
	'T': UnsignedField,
	'H': UnsignedField,
	'D': UnsignedField,
	'L': UnsignedField,
}

func (p *Parser) line(offset int) (token.Line, int, bool) {
	s := p.src.src
	line := token.Line{Pos: p.src.position(offset)}

	i := skipSpace(s, offset)
	deleted := false
	if at(s, i) == '/' {
		deleted = true
		i = skipSpace(s, i+1)
	}

	var tokens []token.Token
	if upper(at(s, i)) == 'N' {
		n, end, ok := lexUnsigned(s, i+1)
		if !ok {
			p.fail(i+1, ngcerror.CodeLex, "expected line number after N")
			return line, offset, false
		}
		tokens = append(tokens, &token.LineNumber{Number: n})
		i = skipSpace(s, end)
	}

	if upper(at(s, i)) == 'O' {
		stmt, ending, end, ok := p.statement(i)
		if !ok {
			return line, offset, false
		}
		tokens = append(tokens, stmt)
		line.Tokens = wrapDeleted(tokens, deleted)
		line.Ending = ending
		return line, end, true
	}

	for {
		i = skipSpace(s, i)
		if atLineEnd(s, i) {
			ending, end, ok := p.lineEnding(i)
			if !ok {
				return line, offset, false
			}
			line.Tokens = wrapDeleted(tokens, deleted)
			line.Ending = ending
			return line, end, true
		}

		tok, end, ok := p.word(i)
		if !ok {
			return line, offset, false
		}
		tokens = append(tokens, tok)
		i = end
	}
}

func wrapDeleted(tokens []token.Token, deleted bool) []token.Token {
	if deleted {
		return []token.Token{&token.BlockDelete{Tokens: tokens}}
	}
	return tokens
}

// lineEnding consumes LF, CRLF or the end of input
func (p *Parser) lineEnding(offset int) (token.Ending, int, bool) {
	s := p.src.src
	switch {
	case offset >= len(s):
		return token.EndingEOF, offset, true
	case s[offset] == '\n':
		return token.EndingLF, offset + 1, true
	case s[offset] == '\r' && at(s, offset+1) == '\n':
		return token.EndingCRLF, offset + 2, true
	}
	p.fail(offset, ngcerror.CodeSyntax, "expected end of line")
	return 0, offset, false
}

// comment parses ( ... ) or ; ... at offset
func (p *Parser) comment(offset int) (*token.Comment, int, bool) {
	s := p.src.src
	switch at(s, offset) {
	case '(':
		eol := lineEnd(s, offset)
		closeIdx := strings.IndexByte(s[offset:eol], ')')
		if closeIdx < 0 {
			p.fail(eol, ngcerror.CodeSyntax, "missing ')' to close comment")
			return nil, offset, false
		}
		text := s[offset+1 : offset+closeIdx]
		if strings.IndexByte(text, '(') >= 0 {
			p.fail(offset+1+strings.IndexByte(text, '('), ngcerror.CodeSyntax, "nested comment")
			return nil, offset, false
		}
		return &token.Comment{Text: text, Style: token.CommentInline}, offset + closeIdx + 1, true
	case ';':
		eol := lineEnd(s, offset)
		return &token.Comment{Text: s[offset+1 : eol], Style: token.CommentEndOfLine}, eol, true
	}
	p.fail(offset, ngcerror.CodeSyntax, "expected comment")
	return nil, offset, false
}

func (p *Parser) word(offset int) (token.Token, int, bool) {
	s := p.src.src
	c := upper(at(s, offset))

	switch {
	case c == '(' || c == ';':
		cm, end, ok := p.comment(offset)
		if !ok {
			return nil, offset, false
		}
		return cm, end, true

	case c == '#':
		return p.assignment(offset)

	case c == 'G':
		code, end, ok := p.codeWord(offset, 'G', gCodes)
		if !ok {
			return nil, offset, false
		}
		return &token.GCode{Code: code}, end, true

	case c == 'M':
		code, end, ok := p.codeWord(offset, 'M', mCodes)
		if !ok {
			return nil, offset, false
		}
		return &token.MCode{Code: code}, end, true

	case strings.IndexByte(token.Axes, c) >= 0:
		coords := &token.Coordinates{}
		if n, end := p.vector(offset, token.Axes, coords.Set); n > 0 {
			return coords, end, true
		}
		return nil, offset, false

	case strings.IndexByte(token.ArcAxes, c) >= 0:
		arc := &token.ArcOffsets{}
		if n, end := p.vector(offset, token.ArcAxes, arc.Set); n > 0 {
			return arc, end, true
		}
		return nil, offset, false

	case c == 'N':
		p.fail(offset, ngcerror.CodeSyntax, "line number must start the line")
		return nil, offset, false

	case c == 'O':
		p.fail(offset, ngcerror.CodeSyntax, "O-word statement must start the line")
		return nil, offset, false
	}

	if ctx, ok := wordContexts[c]; ok {
		v, end, ok := p.value(offset+1, ctx)
		if !ok {
			return nil, offset, false
		}
		return &token.Word{Letter: c, Value: v}, end, true
	}

	p.fail(offset, ngcerror.CodeSyntax, "unexpected %q", at(s, offset))
	return nil, offset, false
}

// assignment parses #p = value
func (p *Parser) assignment(offset int) (token.Token, int, bool) {
	s := p.src.src
	param, end, ok := p.parameter(offset)
	if !ok {
		return nil, offset, false
	}
	i := skipSpace(s, end)
	if at(s, i) != '=' {
		p.fail(i, ngcerror.CodeSyntax, "expected '=' after %s", param)
		return nil, offset, false
	}
	v, end, ok := p.value(skipSpace(s, i+1), FloatField)
	if !ok {
		return nil, offset, false
	}
	return &token.ParameterAssignment{Parameter: param, Value: v}, end, true
}
