// File: value.go
// Title: Value and Parameter Resolver
// Description: Resolves word fields to a literal, a parameter reference or a
//              bracketed expression, in that order, and parses parameter
//              references trying numbered, then global, then named forms.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package parser

import (
	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// ParseParameter parses the parameter reference at the start of input and
// returns it with the number of bytes consumed
func ParseParameter(input string) (token.Parameter, int, error) {
	p := &Parser{src: newSourceMap(input)}
	param, end, ok := p.parameter(0)
	if !ok {
		return token.Parameter{}, 0, p.err()
	}
	return param, end, nil
}

func (p *Parser) parameter(offset int) (token.Parameter, int, bool) {
	s := p.src.src
	if at(s, offset) != '#' {
		p.fail(offset, ngcerror.CodeSyntax, "expected parameter")
		return token.Parameter{}, offset, false
	}
	i := offset + 1

	if isDigit(at(s, i)) {
		n, end, ok := lexUnsigned(s, i)
		if !ok {
			p.fail(i, ngcerror.CodeLex, "parameter number out of range")
			return token.Parameter{}, offset, false
		}
		return token.Numbered(n), end, true
	}

	if at(s, i) != '<' {
		p.fail(i, ngcerror.CodeSyntax, "expected parameter number or <name>")
		return token.Parameter{}, offset, false
	}
	i++

	if at(s, i) == '_' {
		if name, end, ok := p.parameterName(i + 1); ok {
			return token.Global(name), end, true
		}
		return token.Parameter{}, offset, false
	}
	if name, end, ok := p.parameterName(i); ok {
		return token.Named(name), end, true
	}
	return token.Parameter{}, offset, false
}

// parameterName reads [A-Za-z0-9_]+ followed by '>'
func (p *Parser) parameterName(offset int) (string, int, bool) {
	s := p.src.src
	end := offset
	for end < len(s) && isNameChar(s[end]) {
		end++
	}
	if end == offset {
		p.fail(offset, ngcerror.CodeSyntax, "expected parameter name")
		return "", offset, false
	}
	if at(s, end) != '>' {
		p.fail(end, ngcerror.CodeSyntax, "expected '>' to close parameter name")
		return "", offset, false
	}
	return s[offset:end], end + 1, true
}

func (p *Parser) value(offset int, ctx ValueContext) (token.Value, int, bool) {
	s := p.src.src

	switch ctx {
	case UnsignedField:
		if v, end, ok := lexUnsigned(s, offset); ok {
			return token.Unsigned(v), end, true
		}
	case SignedField:
		if v, end, ok := lexSigned(s, offset); ok {
			return token.Signed(v), end, true
		}
	default:
		if v, end, ok := lexNumber(s, offset); ok {
			return token.Float(v), end, true
		}
	}

	switch at(s, offset) {
	case '#':
		if param, end, ok := p.parameter(offset); ok {
			return token.ParameterValue(param), end, true
		}
	case '[':
		if expr, end, ok := p.expression(offset); ok {
			return token.ExpressionValue(expr), end, true
		}
	default:
		p.fail(offset, ngcerror.CodeLex, "expected number, parameter or expression")
	}
	return token.Value{}, offset, false
}
