// File: expression.go
// Title: Expression Parser
// Description: Parses '[' token+ ']' into a flat token sequence. Token
//              alternatives are tried in a fixed order: function call,
//              numeric literal, arithmetic operator, logical and comparison
//              keywords, parameter, nested expression.
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

var keywords = map[string]token.ExpressionToken{
	"MOD": token.Arithmetic(token.OpMod),
	"AND": token.Logical(token.OpAnd),
	"OR":  token.Logical(token.OpOr),
	"XOR": token.Logical(token.OpXor),
	"NOT": token.Logical(token.OpNot),
	"EQ":  token.Comparison(token.OpEQ),
	"NE":  token.Comparison(token.OpNE),
	"GT":  token.Comparison(token.OpGT),
	"GE":  token.Comparison(token.OpGE),
	"LT":  token.Comparison(token.OpLT),
	"LE":  token.Comparison(token.OpLE),
}

func (p *Parser) expression(offset int) (token.Expression, int, bool) {
	s := p.src.src
	if at(s, offset) != '[' {
		p.fail(offset, ngcerror.CodeSyntax, "expected '['")
		return nil, offset, false
	}
	if !p.enter(offset) {
		return nil, offset, false
	}
	defer p.leave()

	var expr token.Expression
	i := offset + 1
	for {
		i = skipSpace(s, i)
		if at(s, i) == ']' {
			if len(expr) == 0 {
				p.fail(i, ngcerror.CodeSyntax, "empty expression")
				return nil, offset, false
			}
			return expr, i + 1, true
		}
		if atLineEnd(s, i) {
			col := p.src.position(offset).Column
			p.fail(i, ngcerror.CodeUnbalancedExpression, "missing ']' for '[' at column %d", col)
			return nil, offset, false
		}

		prevOperand := len(expr) > 0 && expr[len(expr)-1].IsOperand()
		tok, end, ok := p.expressionToken(i, prevOperand)
		if !ok {
			return nil, offset, false
		}
		expr = append(expr, tok)
		i = end
	}
}

func (p *Parser) expressionToken(offset int, prevOperand bool) (token.ExpressionToken, int, bool) {
	s := p.src.src
	c := at(s, offset)

	// function call
	if isLetter(c) {
		word, wordEnd := readWord(s, offset)
		if fn, ok := token.LookupFunction(word); ok {
			return p.functionCall(offset, fn, wordEnd)
		}
		if _, isKeyword := keywords[strings.ToUpper(word)]; !isKeyword && at(s, skipSpace(s, wordEnd)) == '[' {
			p.fail(offset, ngcerror.CodeUnknownFunction, "unknown function %s", strings.ToUpper(word))
			return token.ExpressionToken{}, offset, false
		}
	}

	// numeric literal; after an operand a sign is an operator
	if !(prevOperand && (c == '+' || c == '-')) {
		if v, end, ok := lexNumber(s, offset); ok {
			return token.Literal(v), end, true
		}
	}

	// arithmetic operator
	switch c {
	case '*':
		if at(s, offset+1) == '*' {
			return token.Arithmetic(token.OpPow), offset + 2, true
		}
		return token.Arithmetic(token.OpMul), offset + 1, true
	case '/':
		return token.Arithmetic(token.OpDiv), offset + 1, true
	case '+':
		return token.Arithmetic(token.OpAdd), offset + 1, true
	case '-':
		return token.Arithmetic(token.OpSub), offset + 1, true
	}

	// MOD, logical and comparison keywords
	if isLetter(c) {
		word, end := readWord(s, offset)
		if tok, ok := keywords[strings.ToUpper(word)]; ok {
			return tok, end, true
		}
		p.fail(offset, ngcerror.CodeSyntax, "unknown keyword %s", strings.ToUpper(word))
		return token.ExpressionToken{}, offset, false
	}

	switch c {
	case '#':
		if param, end, ok := p.parameter(offset); ok {
			return token.ParameterRef(param), end, true
		}
		return token.ExpressionToken{}, offset, false
	case '[':
		if nested, end, ok := p.expression(offset); ok {
			return token.Nested(nested), end, true
		}
		return token.ExpressionToken{}, offset, false
	}

	p.fail(offset, ngcerror.CodeSyntax, "unexpected %q in expression", c)
	return token.ExpressionToken{}, offset, false
}

// functionCall parses the arguments of fn; nameEnd is the offset after the
// function name
func (p *Parser) functionCall(offset int, fn token.FunctionName, nameEnd int) (token.ExpressionToken, int, bool) {
	s := p.src.src
	i := skipSpace(s, nameEnd)
	if at(s, i) != '[' {
		p.fail(i, ngcerror.CodeSyntax, "expected '[' after %s", fn)
		return token.ExpressionToken{}, offset, false
	}

	switch fn {
	case token.FuncExists:
		j := skipSpace(s, i+1)
		param, end, ok := p.parameter(j)
		if !ok {
			return token.ExpressionToken{}, offset, false
		}
		if param.Kind == token.ParamNumbered {
			p.fail(j, ngcerror.CodeSyntax, "EXISTS takes a named or global parameter")
			return token.ExpressionToken{}, offset, false
		}
		end = skipSpace(s, end)
		if at(s, end) != ']' {
			p.fail(end, ngcerror.CodeUnbalancedExpression, "missing ']' after EXISTS parameter")
			return token.ExpressionToken{}, offset, false
		}
		return token.Call(&token.Function{Name: fn, Parameter: param}), end + 1, true

	case token.FuncAtan:
		y, end, ok := p.expression(i)
		if !ok {
			return token.ExpressionToken{}, offset, false
		}
		j := skipSpace(s, end)
		if at(s, j) != '/' {
			p.fail(j, ngcerror.CodeSyntax, "ATAN requires the form ATAN[y]/[x]")
			return token.ExpressionToken{}, offset, false
		}
		x, end, ok := p.expression(skipSpace(s, j+1))
		if !ok {
			return token.ExpressionToken{}, offset, false
		}
		return token.Call(&token.Function{Name: fn, Args: []token.Expression{y, x}}), end, true

	default:
		arg, end, ok := p.expression(i)
		if !ok {
			return token.ExpressionToken{}, offset, false
		}
		return token.Call(&token.Function{Name: fn, Args: []token.Expression{arg}}), end, true
	}
}
