// File: vector.go
// Title: Coordinate Vector Parser
// Description: Parses axis words in any order. Each axis is taken at most
//              once per vector; a repeated axis ends the vector and is left
//              for the next one.
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

	"github.com/msto63/ngc/foundation/ngc/token"
)

// vector parses words whose letters are in axes. Whitespace before each word
// is consumed, also before the word that ends the vector. It returns the
// number of axes set and the end offset.
func (p *Parser) vector(offset int, axes string, set func(byte, token.Value)) (int, int) {
	s := p.src.src
	var seen [9]bool
	count := 0
	pos := offset

	for count < len(axes) {
		i := skipSpace(s, pos)
		if count > 0 {
			pos = i
		}
		idx := strings.IndexByte(axes, upper(at(s, i)))
		if at(s, i) == 0 || idx < 0 || seen[idx] {
			break
		}

		v, end, ok := p.value(i+1, FloatField)
		if !ok {
			break
		}
		seen[idx] = true
		set(axes[idx], v)
		count++
		pos = end
	}
	return count, pos
}
