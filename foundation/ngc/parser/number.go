// File: number.go
// Title: Numeric Literal Lexer
// Description: Lexes signed decimal literals without exponent notation:
//              an optional sign, then digits with an optional fraction, or a
//              dot followed by digits. The longest valid prefix is consumed.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package parser

import (
	"strconv"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
)

// LexNumber lexes the numeric literal at the start of input and returns its
// value and the number of bytes consumed. "5.5.5" yields 5.5 and 3.
func LexNumber(input string) (float32, int, error) {
	v, end, ok := lexNumber(input, 0)
	if !ok {
		return 0, 0, newSourceMap(input).newError(0, ngcerror.CodeLex, "expected numeric literal")
	}
	return v, end, nil
}

func lexNumber(s string, offset int) (float32, int, bool) {
	i := offset
	if c := at(s, i); c == '+' || c == '-' {
		i++
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	intDigits := i - intStart

	fracDigits := 0
	if at(s, i) == '.' {
		j := i + 1
		for j < len(s) && isDigit(s[j]) {
			j++
		}
		fracDigits = j - i - 1
		if intDigits > 0 || fracDigits > 0 {
			i = j
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0, offset, false
	}

	text := s[offset:i]
	if intDigits == 0 {
		// ".5" and "-.5" need a leading zero for ParseFloat
		signLen := intStart - offset
		text = text[:signLen] + "0" + text[signLen:]
	}
	if fracDigits == 0 && text[len(text)-1] == '.' {
		text += "0"
	}

	f, err := strconv.ParseFloat(text, 32)
	if err != nil {
		return 0, offset, false
	}
	return float32(f), i, true
}

// lexUnsigned lexes an unsigned integer literal that fits 32 bits
func lexUnsigned(s string, offset int) (uint32, int, bool) {
	digits, end := readDigits(s, offset)
	if digits == "" {
		return 0, offset, false
	}
	v, err := strconv.ParseUint(digits, 10, 32)
	if err != nil {
		return 0, offset, false
	}
	return uint32(v), end, true
}

// lexSigned lexes an optionally signed integer literal that fits 32 bits
func lexSigned(s string, offset int) (int32, int, bool) {
	i := offset
	if c := at(s, i); c == '+' || c == '-' {
		i++
	}
	_, end := readDigits(s, i)
	if end == i {
		return 0, offset, false
	}
	v, err := strconv.ParseInt(s[offset:end], 10, 32)
	if err != nil {
		return 0, offset, false
	}
	return int32(v), end, true
}
