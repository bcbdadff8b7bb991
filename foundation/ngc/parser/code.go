// File: code.go
// Title: Code Word Matcher
// Description: Matches G and M code words against the supported code tables.
//              A match permits one leading zero and requires that no digit or
//              dot follows, so the ordered tables need no longest-match rule.
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
	"strings"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
)

// CodeInfo describes one supported code
type CodeInfo struct {
	Code        string
	Description string
}

// gCodes lists decimal-extended codes before their bare form
var gCodes = []CodeInfo{
	{"0", "rapid move"},
	{"1", "linear move"},
	{"2", "clockwise arc"},
	{"3", "counter-clockwise arc"},
	{"4", "dwell"},
	{"5.1", "quadratic spline"},
	{"5.2", "NURBS block"},
	{"5", "cubic spline"},
	{"7", "lathe diameter mode"},
	{"8", "lathe radius mode"},
	{"10", "set offsets"},
	{"17.1", "plane select UV"},
	{"17", "plane select XY"},
	{"18.1", "plane select WU"},
	{"18", "plane select ZX"},
	{"19.1", "plane select VW"},
	{"19", "plane select YZ"},
	{"20", "units inches"},
	{"21", "units millimeters"},
	{"28.1", "store predefined position 1"},
	{"28", "go to predefined position 1"},
	{"30.1", "store predefined position 2"},
	{"30", "go to predefined position 2"},
	{"33.1", "rigid tapping"},
	{"33", "spindle synchronized motion"},
	{"38.2", "move toward workpiece until contact, signal error"},
	{"38.3", "move toward workpiece until contact"},
	{"38.4", "move away from workpiece until contact lost, signal error"},
	{"38.5", "move away from workpiece until contact lost"},
	{"40", "cutter compensation off"},
	{"41.1", "dynamic cutter compensation left"},
	{"41", "cutter compensation left"},
	{"42.1", "dynamic cutter compensation right"},
	{"42", "cutter compensation right"},
	{"43.1", "dynamic tool length offset"},
	{"43.2", "apply additional tool length offset"},
	{"43", "tool length offset"},
	{"49", "cancel tool length offset"},
	{"52", "local coordinate system offset"},
	{"53", "move in machine coordinates"},
	{"54", "work coordinate system 1"},
	{"55", "work coordinate system 2"},
	{"56", "work coordinate system 3"},
	{"57", "work coordinate system 4"},
	{"58", "work coordinate system 5"},
	{"59.1", "work coordinate system 7"},
	{"59.2", "work coordinate system 8"},
	{"59.3", "work coordinate system 9"},
	{"59", "work coordinate system 6"},
	{"61.1", "exact stop mode"},
	{"61", "exact path mode"},
	{"64", "path blending"},
	{"73", "drilling cycle with chip breaking"},
	{"74", "left-hand tapping cycle"},
	{"76", "threading cycle"},
	{"80", "cancel canned cycle"},
	{"81", "drilling cycle"},
	{"82", "drilling cycle with dwell"},
	{"83", "peck drilling cycle"},
	{"84", "right-hand tapping cycle"},
	{"85", "boring cycle, feed out"},
	{"86", "boring cycle, spindle stop, rapid out"},
	{"87", "back boring cycle"},
	{"88", "boring cycle, spindle stop, manual out"},
	{"89", "boring cycle, dwell, feed out"},
	{"90.1", "arc distance mode absolute"},
	{"90", "distance mode absolute"},
	{"91.1", "arc distance mode incremental"},
	{"91", "distance mode incremental"},
	{"92.1", "reset coordinate offsets and parameters"},
	{"92.2", "reset coordinate offsets"},
	{"92.3", "restore coordinate offsets"},
	{"92", "coordinate system offset"},
	{"93", "feed rate mode inverse time"},
	{"94", "feed rate mode units per minute"},
	{"95", "feed rate mode units per revolution"},
	{"96", "constant surface speed"},
	{"97", "RPM mode"},
	{"98", "canned cycle return to initial level"},
	{"99", "canned cycle return to R level"},
}

var mCodes = buildMCodes()

func buildMCodes() []CodeInfo {
	codes := []CodeInfo{
		{"0", "program pause"},
		{"1", "optional program pause"},
		{"2", "program end"},
		{"3", "spindle on clockwise"},
		{"4", "spindle on counter-clockwise"},
		{"5", "spindle stop"},
		{"6", "tool change"},
		{"7", "mist coolant on"},
		{"8", "flood coolant on"},
		{"9", "coolant off"},
		{"30", "program end and pallet shuttle"},
		{"48", "enable speed and feed override"},
		{"49", "disable speed and feed override"},
		{"50", "feed override control"},
		{"51", "spindle speed override control"},
		{"52", "adaptive feed control"},
		{"53", "feed stop control"},
		{"60", "pallet change pause"},
		{"61", "set current tool"},
		{"62", "digital output on, synchronized"},
		{"63", "digital output off, synchronized"},
		{"64", "digital output on, immediate"},
		{"65", "digital output off, immediate"},
		{"66", "wait on input"},
		{"67", "analog output, synchronized"},
		{"68", "analog output, immediate"},
		{"70", "save modal state"},
		{"71", "invalidate stored modal state"},
		{"72", "restore modal state"},
		{"73", "save and autorestore modal state"},
	}
	for n := 100; n <= 199; n++ {
		codes = append(codes, CodeInfo{strconv.Itoa(n), "user defined"})
	}
	return codes
}

// GCodes returns the supported G codes in matching order
func GCodes() []CodeInfo {
	return append([]CodeInfo(nil), gCodes...)
}

// MCodes returns the supported M codes in matching order
func MCodes() []CodeInfo {
	return append([]CodeInfo(nil), mCodes...)
}

// DescribeGCode returns the description of a canonical G code, or ""
func DescribeGCode(code string) string {
	return describe(gCodes, code)
}

// DescribeMCode returns the description of a canonical M code, or ""
func DescribeMCode(code string) string {
	return describe(mCodes, code)
}

func describe(table []CodeInfo, code string) string {
	for _, c := range table {
		if c.Code == code {
			return c.Description
		}
	}
	return ""
}

// MatchCode matches letter followed by code at the start of input and returns
// the bytes consumed. The letter is case-insensitive and one leading zero is
// allowed, so code "1" accepts "G1" and "g01" but rejects "G10" and "G1.5".
func MatchCode(input string, letter byte, code string) (int, bool) {
	return matchCode(input, 0, letter, code)
}

func matchCode(s string, offset int, letter byte, code string) (int, bool) {
	if upper(at(s, offset)) != upper(letter) {
		return offset, false
	}
	start := offset + 1
	for _, i := range [2]int{start, start + 1} {
		if i == start+1 && at(s, start) != '0' {
			break
		}
		if !strings.HasPrefix(s[min(i, len(s)):], code) {
			continue
		}
		end := i + len(code)
		if c := at(s, end); isDigit(c) || c == '.' {
			continue
		}
		return end, true
	}
	return offset, false
}

// codeWord matches the code word at offset against table in order and
// returns the canonical code
func (p *Parser) codeWord(offset int, letter byte, table []CodeInfo) (string, int, bool) {
	for _, c := range table {
		if end, ok := matchCode(p.src.src, offset, letter, c.Code); ok {
			return c.Code, end, true
		}
	}

	s := p.src.src
	end := offset + 1
	for end < len(s) && (isDigit(s[end]) || s[end] == '.') {
		end++
	}
	if end == offset+1 {
		p.fail(offset+1, ngcerror.CodeCodeMismatch, "expected code number after %c", upper(letter))
	} else {
		p.fail(offset, ngcerror.CodeCodeMismatch, "unsupported code %c%s", upper(letter), s[offset+1:end])
	}
	return "", offset, false
}
