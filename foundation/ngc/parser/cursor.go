// File: cursor.go
// Title: Byte Cursor Helpers
// Description: Character classes and position helpers shared by the grammar
//              functions. Every grammar function takes a byte offset into the
//              source and returns the offset after what it consumed.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-12
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-12 v0.1.0: Initial implementation

package parser

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isNameChar(c byte) bool {
	return isLetter(c) || isDigit(c) || c == '_'
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t'
}

func upper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}
	return c
}

// at returns the byte at offset or 0 past the end
func at(s string, offset int) byte {
	if offset < len(s) {
		return s[offset]
	}
	return 0
}

// skipSpace skips spaces and tabs
func skipSpace(s string, offset int) int {
	for offset < len(s) && isSpace(s[offset]) {
		offset++
	}
	return offset
}

// atLineEnd reports whether offset is at a line terminator or the end of input
func atLineEnd(s string, offset int) bool {
	return offset >= len(s) || s[offset] == '\n' || s[offset] == '\r'
}

// readWord returns the run of letters starting at offset
func readWord(s string, offset int) (string, int) {
	end := offset
	for end < len(s) && isLetter(s[end]) {
		end++
	}
	return s[offset:end], end
}

// readDigits returns the run of digits starting at offset
func readDigits(s string, offset int) (string, int) {
	end := offset
	for end < len(s) && isDigit(s[end]) {
		end++
	}
	return s[offset:end], end
}

// lineEnd returns the offset of the terminator of the line containing offset
func lineEnd(s string, offset int) int {
	for offset < len(s) && s[offset] != '\n' && s[offset] != '\r' {
		offset++
	}
	return offset
}
