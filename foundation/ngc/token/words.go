// File: words.go
// Title: Word Tokens
// Description: Defines the single-line tokens: G and M codes, line numbers,
//              comments, coordinate and arc-offset vectors, letter words,
//              parameter assignments and the block-delete wrapper.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-10
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-10 v0.1.0: Initial token model

package token

import (
	"strconv"
	"strings"
)

// GCode is a preparatory command. Code is the canonical text, e.g. "1" or
// "38.2".
type GCode struct {
	Code string
}

func (t *GCode) Kind() Kind      { return KindGCode }
func (t *GCode) String() string { return "G" + t.Code }

// MCode is a miscellaneous command
type MCode struct {
	Code string
}

func (t *MCode) Kind() Kind      { return KindMCode }
func (t *MCode) String() string { return "M" + t.Code }

// IsProgramEnd reports whether the code ends the program (M2 or M30)
func (t *MCode) IsProgramEnd() bool {
	return t.Code == "2" || t.Code == "30"
}

// LineNumber is an N word
type LineNumber struct {
	Number uint32
}

func (t *LineNumber) Kind() Kind { return KindLineNumber }
func (t *LineNumber) String() string {
	return "N" + strconv.FormatUint(uint64(t.Number), 10)
}

// CommentStyle distinguishes ( ) comments from ; comments
type CommentStyle int

const (
	CommentInline CommentStyle = iota
	CommentEndOfLine
)

// Comment holds the comment text without its delimiters
type Comment struct {
	Text  string
	Style CommentStyle
}

func (t *Comment) Kind() Kind { return KindComment }
func (t *Comment) String() string {
	if t.Style == CommentEndOfLine {
		return ";" + t.Text
	}
	return "(" + t.Text + ")"
}

// Axis names the nine coordinate axes in canonical order
const Axes = "XYZABCUVW"

// Vec9 is a sparse set of axis values; nil means the axis is absent
type Vec9 struct {
	X, Y, Z, A, B, C, U, V, W *Value
}

func (v *Vec9) slot(axis byte) **Value {
	switch axis {
	case 'X', 'x':
		return &v.X
	case 'Y', 'y':
		return &v.Y
	case 'Z', 'z':
		return &v.Z
	case 'A', 'a':
		return &v.A
	case 'B', 'b':
		return &v.B
	case 'C', 'c':
		return &v.C
	case 'U', 'u':
		return &v.U
	case 'V', 'v':
		return &v.V
	case 'W', 'w':
		return &v.W
	default:
		return nil
	}
}

// Get returns the value for an axis letter, or nil
func (v *Vec9) Get(axis byte) *Value {
	if s := v.slot(axis); s != nil {
		return *s
	}
	return nil
}

// Set stores the value for an axis letter; unknown letters are ignored
func (v *Vec9) Set(axis byte, val Value) {
	if s := v.slot(axis); s != nil {
		*s = &val
	}
}

// Count returns the number of axes present
func (v *Vec9) Count() int {
	n := 0
	for i := 0; i < len(Axes); i++ {
		if v.Get(Axes[i]) != nil {
			n++
		}
	}
	return n
}

func (v *Vec9) String() string {
	return renderAxes(Axes, v.Get)
}

// Vec3 is a sparse set of arc centre offsets
type Vec3 struct {
	I, J, K *Value
}

// ArcAxes names the arc offset letters in canonical order
const ArcAxes = "IJK"

// Get returns the value for I, J or K, or nil
func (v *Vec3) Get(axis byte) *Value {
	switch axis {
	case 'I', 'i':
		return v.I
	case 'J', 'j':
		return v.J
	case 'K', 'k':
		return v.K
	default:
		return nil
	}
}

// Set stores the value for I, J or K
func (v *Vec3) Set(axis byte, val Value) {
	switch axis {
	case 'I', 'i':
		v.I = &val
	case 'J', 'j':
		v.J = &val
	case 'K', 'k':
		v.K = &val
	}
}

// Count returns the number of offsets present
func (v *Vec3) Count() int {
	n := 0
	for i := 0; i < len(ArcAxes); i++ {
		if v.Get(ArcAxes[i]) != nil {
			n++
		}
	}
	return n
}

func (v *Vec3) String() string {
	return renderAxes(ArcAxes, v.Get)
}

func renderAxes(axes string, get func(byte) *Value) string {
	var parts []string
	for i := 0; i < len(axes); i++ {
		if val := get(axes[i]); val != nil {
			parts = append(parts, string(axes[i])+val.String())
		}
	}
	return strings.Join(parts, " ")
}

// Coordinates is a set of axis words on one line
type Coordinates struct {
	Vec9
}

func (t *Coordinates) Kind() Kind      { return KindCoordinates }
func (t *Coordinates) String() string { return t.Vec9.String() }

// ArcOffsets is a set of I J K words on one line
type ArcOffsets struct {
	Vec3
}

func (t *ArcOffsets) Kind() Kind      { return KindArcOffsets }
func (t *ArcOffsets) String() string { return t.Vec3.String() }

// Word is a letter word other than G, M, N, O and the axes: F S T H D P Q R L E
type Word struct {
	Letter byte
	Value  Value
}

func (t *Word) Kind() Kind      { return KindWord }
func (t *Word) String() string { return string(t.Letter) + t.Value.String() }

// ParameterAssignment is #p = value. It is recorded, never executed.
type ParameterAssignment struct {
	Parameter Parameter
	Value     Value
}

func (t *ParameterAssignment) Kind() Kind { return KindParameterAssignment }
func (t *ParameterAssignment) String() string {
	return t.Parameter.String() + " = " + t.Value.String()
}

// BlockDelete wraps the tokens of a line starting with /
type BlockDelete struct {
	Tokens []Token
}

func (t *BlockDelete) Kind() Kind { return KindBlockDelete }
func (t *BlockDelete) String() string {
	return "/" + Line{Tokens: t.Tokens}.String()
}
