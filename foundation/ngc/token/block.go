// File: block.go
// Title: Control-Flow Tokens
// Description: Defines O-word statements: subroutine definitions and calls,
//              returns, if/elseif/else, while, do-while, repeat, break and
//              continue. Block bodies are nested Line lists.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token model
// - 2025-03-02 v0.1.0: Named block tags, do-while, break, continue

package token

import (
	"strconv"
	"strings"
)

// BlockID is the O tag of a control statement. Raw is the tag text after the
// letter O exactly as written, e.g. "100", "0100" or "<touch>"; closing tags
// are matched against Raw.
type BlockID struct {
	Number uint32
	Name   string
	Raw    string
}

// IsNamed reports whether the tag is o<name>
func (id BlockID) IsNamed() bool {
	return id.Name != ""
}

// String renders the tag with a lowercase o
func (id BlockID) String() string {
	if id.Raw != "" {
		return "o" + id.Raw
	}
	if id.Name != "" {
		return "o<" + id.Name + ">"
	}
	return "o" + strconv.FormatUint(uint64(id.Number), 10)
}

// SubroutineDefinition is o<id> sub ... o<id> endsub [expr]
type SubroutineDefinition struct {
	ID         BlockID
	Body       []Line
	Return     Expression // value given on endsub, nil if none
	Comment    *Comment
	EndComment *Comment
}

func (t *SubroutineDefinition) Kind() Kind { return KindSubroutineDefinition }
func (t *SubroutineDefinition) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "sub", nil, t.Comment)
	writeBody(&b, t.Body)
	writeStatement(&b, t.ID, "endsub", t.Return, t.EndComment)
	return strings.TrimSuffix(b.String(), "\n")
}

// SubroutineCall is o<id> call [arg]...
type SubroutineCall struct {
	ID      BlockID
	Args    []Expression
	Comment *Comment
}

func (t *SubroutineCall) Kind() Kind { return KindSubroutineCall }
func (t *SubroutineCall) String() string {
	var b strings.Builder
	b.WriteString(t.ID.String())
	b.WriteString(" call")
	for _, a := range t.Args {
		b.WriteByte(' ')
		b.WriteString(a.String())
	}
	writeComment(&b, t.Comment)
	return b.String()
}

// Return is o<id> return [expr]
type Return struct {
	ID      BlockID
	Value   Expression // nil if none
	Comment *Comment
}

func (t *Return) Kind() Kind { return KindReturn }
func (t *Return) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "return", t.Value, t.Comment)
	return strings.TrimSuffix(b.String(), "\n")
}

// Branch is one arm of an If. Condition is nil for the else arm.
type Branch struct {
	Condition Expression
	Body      []Line
	Comment   *Comment
}

// If is o<id> if ... [elseif ...]* [else ...] o<id> endif
type If struct {
	ID         BlockID
	Branches   []Branch
	Else       *Branch
	EndComment *Comment
}

func (t *If) Kind() Kind { return KindIf }
func (t *If) String() string {
	var b strings.Builder
	for i, br := range t.Branches {
		keyword := "elseif"
		if i == 0 {
			keyword = "if"
		}
		writeStatement(&b, t.ID, keyword, br.Condition, br.Comment)
		writeBody(&b, br.Body)
	}
	if t.Else != nil {
		writeStatement(&b, t.ID, "else", nil, t.Else.Comment)
		writeBody(&b, t.Else.Body)
	}
	writeStatement(&b, t.ID, "endif", nil, t.EndComment)
	return strings.TrimSuffix(b.String(), "\n")
}

// While is o<id> while [cond] ... o<id> endwhile
type While struct {
	ID         BlockID
	Condition  Expression
	Body       []Line
	Comment    *Comment
	EndComment *Comment
}

func (t *While) Kind() Kind { return KindWhile }
func (t *While) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "while", t.Condition, t.Comment)
	writeBody(&b, t.Body)
	writeStatement(&b, t.ID, "endwhile", nil, t.EndComment)
	return strings.TrimSuffix(b.String(), "\n")
}

// DoWhile is o<id> do ... o<id> while [cond]
type DoWhile struct {
	ID         BlockID
	Body       []Line
	Condition  Expression
	Comment    *Comment
	EndComment *Comment
}

func (t *DoWhile) Kind() Kind { return KindDoWhile }
func (t *DoWhile) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "do", nil, t.Comment)
	writeBody(&b, t.Body)
	writeStatement(&b, t.ID, "while", t.Condition, t.EndComment)
	return strings.TrimSuffix(b.String(), "\n")
}

// Repeat is o<id> repeat [count] ... o<id> endrepeat
type Repeat struct {
	ID         BlockID
	Count      Expression
	Body       []Line
	Comment    *Comment
	EndComment *Comment
}

func (t *Repeat) Kind() Kind { return KindRepeat }
func (t *Repeat) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "repeat", t.Count, t.Comment)
	writeBody(&b, t.Body)
	writeStatement(&b, t.ID, "endrepeat", nil, t.EndComment)
	return strings.TrimSuffix(b.String(), "\n")
}

// Break is o<id> break, leaving the loop tagged id
type Break struct {
	ID      BlockID
	Comment *Comment
}

func (t *Break) Kind() Kind { return KindBreak }
func (t *Break) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "break", nil, t.Comment)
	return strings.TrimSuffix(b.String(), "\n")
}

// Continue is o<id> continue
type Continue struct {
	ID      BlockID
	Comment *Comment
}

func (t *Continue) Kind() Kind { return KindContinue }
func (t *Continue) String() string {
	var b strings.Builder
	writeStatement(&b, t.ID, "continue", nil, t.Comment)
	return strings.TrimSuffix(b.String(), "\n")
}

func writeStatement(b *strings.Builder, id BlockID, keyword string, expr Expression, c *Comment) {
	b.WriteString(id.String())
	b.WriteByte(' ')
	b.WriteString(keyword)
	if expr != nil {
		b.WriteByte(' ')
		b.WriteString(expr.String())
	}
	writeComment(b, c)
	b.WriteByte('\n')
}

func writeComment(b *strings.Builder, c *Comment) {
	if c != nil {
		b.WriteByte(' ')
		b.WriteString(c.String())
	}
}

func writeBody(b *strings.Builder, body []Line) {
	for _, l := range body {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
}
