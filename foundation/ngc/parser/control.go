// File: control.go
// Title: Control-Flow Block Parser
// Description: Parses O-word statements. A block captures its tag when the
//              opening keyword is read and closes only on a closing keyword
//              carrying the same tag text; any other closing keyword ends the
//              parse with an unterminated block error.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-14
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation
// - 2025-03-02 v0.1.0: Named tags, do-while, break, continue
// - 2025-03-09 v0.1.1: Reject block delete on closing lines

package parser

import (
	"strconv"
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// closingKeywords can only end a block, never open one
var closingKeywords = map[string]bool{
	"endsub":    true,
	"endif":     true,
	"elseif":    true,
	"else":      true,
	"endwhile":  true,
	"endrepeat": true,
}

// scanBlockID reads the tag after the letter O without recording failures
func scanBlockID(s string, offset int) (token.BlockID, int, bool) {
	if upper(at(s, offset)) != 'O' {
		return token.BlockID{}, offset, false
	}
	i := offset + 1

	if isDigit(at(s, i)) {
		digits, end := readDigits(s, i)
		n, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return token.BlockID{}, offset, false
		}
		return token.BlockID{Number: uint32(n), Raw: digits}, end, true
	}

	if at(s, i) == '<' {
		end := i + 1
		for end < len(s) && isNameChar(s[end]) {
			end++
		}
		if end > i+1 && at(s, end) == '>' {
			return token.BlockID{Name: s[i+1 : end], Raw: s[i : end+1]}, end + 1, true
		}
	}
	return token.BlockID{}, offset, false
}

// scanHeader looks for "[N...] O<tag> keyword" at the start of the line at
// offset. It returns the tag, the lowercased keyword, the tag offset and the
// offset after the keyword.
func scanHeader(s string, offset int) (token.BlockID, string, int, int, bool) {
	i := skipSpace(s, offset)
	if upper(at(s, i)) == 'N' {
		_, end, ok := lexUnsigned(s, i+1)
		if !ok {
			return token.BlockID{}, "", 0, 0, false
		}
		i = skipSpace(s, end)
	}
	tagAt := i
	id, end, ok := scanBlockID(s, i)
	if !ok {
		return token.BlockID{}, "", 0, 0, false
	}
	kw, kwEnd := readWord(s, skipSpace(s, end))
	if kw == "" {
		return token.BlockID{}, "", 0, 0, false
	}
	return id, strings.ToLower(kw), tagAt, kwEnd, true
}

// statement parses the O-word statement at offset, including the body and
// closing line of a block. The returned ending is that of the last line
// consumed.
func (p *Parser) statement(offset int) (token.Token, token.Ending, int, bool) {
	s := p.src.src
	id, end, ok := scanBlockID(s, offset)
	if !ok {
		p.fail(offset+1, ngcerror.CodeSyntax, "expected block number or <name> after O")
		return nil, 0, offset, false
	}
	kwAt := skipSpace(s, end)
	kw, i := readWord(s, kwAt)
	kw = strings.ToLower(kw)

	var tok token.Token
	var ending token.Ending
	switch kw {
	case "sub":
		tok, ending, end, ok = p.subroutine(offset, id, i)
	case "if":
		tok, ending, end, ok = p.ifBlock(offset, id, i)
	case "while":
		tok, ending, end, ok = p.whileBlock(offset, id, i)
	case "do":
		tok, ending, end, ok = p.doBlock(offset, id, i)
	case "repeat":
		tok, ending, end, ok = p.repeatBlock(offset, id, i)
	case "call":
		tok, ending, end, ok = p.call(id, i)
	case "return":
		tok, ending, end, ok = p.returnStatement(id, i)
	case "break":
		var cm *token.Comment
		if cm, ending, end, ok = p.tail(i); ok {
			tok = &token.Break{ID: id, Comment: cm}
		}
	case "continue":
		var cm *token.Comment
		if cm, ending, end, ok = p.tail(i); ok {
			tok = &token.Continue{ID: id, Comment: cm}
		}
	case "":
		p.fail(kwAt, ngcerror.CodeSyntax, "expected keyword after %s", id)
		return nil, 0, offset, false
	default:
		if closingKeywords[kw] {
			p.fail(offset, ngcerror.CodeUnterminatedBlock, "%s %s without matching opening statement", id, kw)
		} else {
			p.fail(kwAt, ngcerror.CodeSyntax, "unknown O-word keyword %q", kw)
		}
		return nil, 0, offset, false
	}

	if !ok {
		return nil, 0, offset, false
	}
	return tok, ending, end, true
}

// tail parses an optional comment and the line terminator
func (p *Parser) tail(offset int) (*token.Comment, token.Ending, int, bool) {
	s := p.src.src
	i := skipSpace(s, offset)
	var cm *token.Comment
	if c := at(s, i); c == '(' || c == ';' {
		var ok bool
		if cm, i, ok = p.comment(i); !ok {
			return nil, 0, offset, false
		}
		i = skipSpace(s, i)
	}
	if !atLineEnd(s, i) {
		p.fail(i, ngcerror.CodeSyntax, "unexpected %q after statement", s[i])
		return nil, 0, offset, false
	}
	ending, end, ok := p.lineEnding(i)
	if !ok {
		return nil, 0, offset, false
	}
	return cm, ending, end, true
}

func (p *Parser) requiredExpr(offset int, keyword string) (token.Expression, int, bool) {
	s := p.src.src
	i := skipSpace(s, offset)
	if at(s, i) != '[' {
		p.fail(i, ngcerror.CodeSyntax, "expected [expression] after %s", keyword)
		return nil, offset, false
	}
	return p.expression(i)
}

func (p *Parser) optionalExpr(offset int) (token.Expression, int, bool) {
	s := p.src.src
	i := skipSpace(s, offset)
	if at(s, i) != '[' {
		return nil, offset, true
	}
	return p.expression(i)
}

// body parses lines until a closing keyword from closers carrying id. The
// last closer names the block end in error messages.
func (p *Parser) body(offset int, id token.BlockID, closers ...string) ([]token.Line, string, int, bool) {
	s := p.src.src
	expected := id.String() + " " + closers[len(closers)-1]

	var lines []token.Line
	pos := offset
	for {
		if pos >= len(s) {
			p.fail(pos, ngcerror.CodeUnterminatedBlock, "expected %s before end of input", expected)
			return nil, "", offset, false
		}

		if slash := skipSpace(s, pos); at(s, slash) == '/' {
			if hid, kw, _, _, ok := scanHeader(s, slash+1); ok && (closingKeywords[kw] || isCloserOf(kw, hid, id, closers)) {
				p.abort(slash, ngcerror.CodeSyntax, "block delete not allowed on %s %s", hid, kw)
				return nil, "", offset, false
			}
		}

		if hid, kw, tagAt, end, ok := scanHeader(s, pos); ok {
			isCloser := false
			for _, c := range closers {
				if kw == c {
					isCloser = true
				}
			}
			if isCloser && hid.Raw == id.Raw {
				return lines, kw, end, true
			}
			if closingKeywords[kw] {
				p.fail(tagAt, ngcerror.CodeUnterminatedBlock, "expected %s, found %s %s", expected, hid, kw)
				return nil, "", offset, false
			}
		}

		line, end, ok := p.line(pos)
		if !ok {
			return nil, "", offset, false
		}
		lines = append(lines, line)
		pos = end
	}
}

func isCloserOf(kw string, hid, id token.BlockID, closers []string) bool {
	if hid.Raw != id.Raw {
		return false
	}
	for _, c := range closers {
		if kw == c {
			return true
		}
	}
	return false
}

func (p *Parser) subroutine(offset int, id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	if p.inSub {
		p.fail(offset, ngcerror.CodeSyntax, "subroutine %s defined inside another subroutine", id)
		return nil, 0, offset, false
	}
	if !p.enter(offset) {
		return nil, 0, offset, false
	}
	defer p.leave()

	cm, _, pos, ok := p.tail(i)
	if !ok {
		return nil, 0, offset, false
	}

	p.inSub = true
	body, _, after, ok := p.body(pos, id, "endsub")
	p.inSub = false
	if !ok {
		return nil, 0, offset, false
	}

	ret, j, ok := p.optionalExpr(after)
	if !ok {
		return nil, 0, offset, false
	}
	endCm, ending, end, ok := p.tail(j)
	if !ok {
		return nil, 0, offset, false
	}

	p.logger.Trace("parsed subroutine", ngclog.Fields{"id": id.String(), "lines": len(body)})
	return &token.SubroutineDefinition{ID: id, Body: body, Return: ret, Comment: cm, EndComment: endCm}, ending, end, true
}

func (p *Parser) ifBlock(offset int, id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	if !p.enter(offset) {
		return nil, 0, offset, false
	}
	defer p.leave()

	cond, j, ok := p.requiredExpr(i, "if")
	if !ok {
		return nil, 0, offset, false
	}
	cm, _, pos, ok := p.tail(j)
	if !ok {
		return nil, 0, offset, false
	}

	stmt := &token.If{ID: id}
	branch := token.Branch{Condition: cond, Comment: cm}
	closers := []string{"elseif", "else", "endif"}
	inElse := false

	for {
		body, kw, after, ok := p.body(pos, id, closers...)
		if !ok {
			return nil, 0, offset, false
		}
		branch.Body = body

		switch kw {
		case "elseif":
			stmt.Branches = append(stmt.Branches, branch)
			cond, j, ok := p.requiredExpr(after, "elseif")
			if !ok {
				return nil, 0, offset, false
			}
			var cm *token.Comment
			if cm, _, pos, ok = p.tail(j); !ok {
				return nil, 0, offset, false
			}
			branch = token.Branch{Condition: cond, Comment: cm}

		case "else":
			stmt.Branches = append(stmt.Branches, branch)
			var cm *token.Comment
			if cm, _, pos, ok = p.tail(after); !ok {
				return nil, 0, offset, false
			}
			branch = token.Branch{Comment: cm}
			closers = []string{"endif"}
			inElse = true

		default:
			if inElse {
				elseBranch := branch
				stmt.Else = &elseBranch
			} else {
				stmt.Branches = append(stmt.Branches, branch)
			}
			endCm, ending, end, ok := p.tail(after)
			if !ok {
				return nil, 0, offset, false
			}
			stmt.EndComment = endCm
			p.logger.Trace("parsed if", ngclog.Fields{"id": id.String(), "branches": len(stmt.Branches)})
			return stmt, ending, end, true
		}
	}
}

func (p *Parser) whileBlock(offset int, id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	if !p.enter(offset) {
		return nil, 0, offset, false
	}
	defer p.leave()

	cond, j, ok := p.requiredExpr(i, "while")
	if !ok {
		return nil, 0, offset, false
	}
	cm, _, pos, ok := p.tail(j)
	if !ok {
		return nil, 0, offset, false
	}
	body, _, after, ok := p.body(pos, id, "endwhile")
	if !ok {
		return nil, 0, offset, false
	}
	endCm, ending, end, ok := p.tail(after)
	if !ok {
		return nil, 0, offset, false
	}
	return &token.While{ID: id, Condition: cond, Body: body, Comment: cm, EndComment: endCm}, ending, end, true
}

func (p *Parser) doBlock(offset int, id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	if !p.enter(offset) {
		return nil, 0, offset, false
	}
	defer p.leave()

	cm, _, pos, ok := p.tail(i)
	if !ok {
		return nil, 0, offset, false
	}
	body, _, after, ok := p.body(pos, id, "while")
	if !ok {
		return nil, 0, offset, false
	}
	cond, j, ok := p.requiredExpr(after, "while")
	if !ok {
		return nil, 0, offset, false
	}
	endCm, ending, end, ok := p.tail(j)
	if !ok {
		return nil, 0, offset, false
	}
	return &token.DoWhile{ID: id, Body: body, Condition: cond, Comment: cm, EndComment: endCm}, ending, end, true
}

func (p *Parser) repeatBlock(offset int, id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	if !p.enter(offset) {
		return nil, 0, offset, false
	}
	defer p.leave()

	count, j, ok := p.requiredExpr(i, "repeat")
	if !ok {
		return nil, 0, offset, false
	}
	cm, _, pos, ok := p.tail(j)
	if !ok {
		return nil, 0, offset, false
	}
	body, _, after, ok := p.body(pos, id, "endrepeat")
	if !ok {
		return nil, 0, offset, false
	}
	endCm, ending, end, ok := p.tail(after)
	if !ok {
		return nil, 0, offset, false
	}
	return &token.Repeat{ID: id, Count: count, Body: body, Comment: cm, EndComment: endCm}, ending, end, true
}

func (p *Parser) call(id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	s := p.src.src
	var args []token.Expression
	j := skipSpace(s, i)
	for at(s, j) == '[' {
		arg, end, ok := p.expression(j)
		if !ok {
			return nil, 0, i, false
		}
		args = append(args, arg)
		j = skipSpace(s, end)
	}
	cm, ending, end, ok := p.tail(j)
	if !ok {
		return nil, 0, i, false
	}
	return &token.SubroutineCall{ID: id, Args: args, Comment: cm}, ending, end, true
}

func (p *Parser) returnStatement(id token.BlockID, i int) (token.Token, token.Ending, int, bool) {
	v, j, ok := p.optionalExpr(i)
	if !ok {
		return nil, 0, i, false
	}
	cm, ending, end, ok := p.tail(j)
	if !ok {
		return nil, 0, i, false
	}
	return &token.Return{ID: id, Value: v, Comment: cm}, ending, end, true
}
