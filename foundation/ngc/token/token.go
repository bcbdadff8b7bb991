// File: token.go
// Title: Token Interface, Lines and Programs
// Description: Defines the Token interface with its Kind discriminant, the
//              Line and Program containers and source positions.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token model

package token

import (
	"strings"
)

// Kind identifies the concrete type behind a Token
type Kind int

const (
	KindGCode Kind = iota
	KindMCode
	KindLineNumber
	KindComment
	KindCoordinates
	KindArcOffsets
	KindWord
	KindParameterAssignment
	KindSubroutineDefinition
	KindSubroutineCall
	KindReturn
	KindIf
	KindWhile
	KindDoWhile
	KindRepeat
	KindBreak
	KindContinue
	KindBlockDelete
)

var kindNames = [...]string{
	KindGCode:                "gcode",
	KindMCode:                "mcode",
	KindLineNumber:           "line_number",
	KindComment:              "comment",
	KindCoordinates:          "coordinates",
	KindArcOffsets:           "arc_offsets",
	KindWord:                 "word",
	KindParameterAssignment:  "assignment",
	KindSubroutineDefinition: "sub",
	KindSubroutineCall:       "call",
	KindReturn:               "return",
	KindIf:                   "if",
	KindWhile:                "while",
	KindDoWhile:              "do_while",
	KindRepeat:               "repeat",
	KindBreak:                "break",
	KindContinue:             "continue",
	KindBlockDelete:          "block_delete",
}

// String returns the snake_case name of the kind
func (k Kind) String() string {
	if k >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// Token is one recognized construct on a line
type Token interface {
	// Kind returns the variant discriminant
	Kind() Kind

	// String renders the token as canonical NGC text
	String() string
}

// Position represents a position in the source text
type Position struct {
	Line   int // Line number (1-based)
	Column int // Column number (1-based, in bytes)
	Offset int // Byte offset (0-based)
}

// Ending is the terminator of a Line
type Ending int

const (
	EndingLF Ending = iota
	EndingCRLF
	EndingEOF
)

// String returns the name of the line ending
func (e Ending) String() string {
	switch e {
	case EndingLF:
		return "lf"
	case EndingCRLF:
		return "crlf"
	case EndingEOF:
		return "eof"
	default:
		return "unknown"
	}
}

// Line is an ordered token list plus its terminator. A line that opens a
// block also holds every line up to the block's closing tag, nested inside
// the block token; Ending is then the terminator of the closing line.
type Line struct {
	Tokens []Token
	Ending Ending
	Pos    Position
}

// IsBlank reports whether the line carries no tokens
func (l Line) IsBlank() bool {
	return len(l.Tokens) == 0
}

// String renders the tokens of the line separated by single spaces. Block
// tokens render over several lines.
func (l Line) String() string {
	parts := make([]string, len(l.Tokens))
	for i, t := range l.Tokens {
		parts[i] = t.String()
	}
	return strings.Join(parts, " ")
}

// Framing records how a program was delimited
type Framing int

const (
	// FramingNone marks a program accepted without terminator
	FramingNone Framing = iota

	// FramingPercent marks a program enclosed in % lines
	FramingPercent

	// FramingProgramEnd marks a program terminated by M2 or M30
	FramingProgramEnd
)

// String returns the name of the framing
func (f Framing) String() string {
	switch f {
	case FramingNone:
		return "none"
	case FramingPercent:
		return "percent"
	case FramingProgramEnd:
		return "program_end"
	default:
		return "unknown"
	}
}

// Program is the result of parsing one source text
type Program struct {
	Lines   []Line
	Framing Framing
}

// String renders the program one line per Line, framed by % when the source
// was percent-delimited.
func (p *Program) String() string {
	var b strings.Builder
	if p.Framing == FramingPercent {
		b.WriteString("%\n")
	}
	for _, l := range p.Lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	if p.Framing == FramingPercent {
		b.WriteString("%\n")
	}
	return b.String()
}

// Walk calls fn for every token in lines in source order, descending into
// block bodies and block-delete wrappers. Returning false from fn skips the
// children of that token.
func Walk(lines []Line, fn func(Token) bool) {
	for _, l := range lines {
		walkTokens(l.Tokens, fn)
	}
}

func walkTokens(tokens []Token, fn func(Token) bool) {
	for _, t := range tokens {
		if !fn(t) {
			continue
		}
		switch v := t.(type) {
		case *BlockDelete:
			walkTokens(v.Tokens, fn)
		case *SubroutineDefinition:
			Walk(v.Body, fn)
		case *If:
			for _, br := range v.Branches {
				Walk(br.Body, fn)
			}
			if v.Else != nil {
				Walk(v.Else.Body, fn)
			}
		case *While:
			Walk(v.Body, fn)
		case *DoWhile:
			Walk(v.Body, fn)
		case *Repeat:
			Walk(v.Body, fn)
		}
	}
}
