// File: program.go
// Title: Program Assembler
// Description: Assembles lines into a Program. A program is framed either by
//              % lines or ends at the first top-level M2 or M30; whatever
//              follows the terminator is ignored.
// Author: msto63
// Version: v0.1.1
// Created: 2025-02-14
// Modified: 2025-03-09
//
// Change History:
// - 2025-02-14 v0.1.0: Initial implementation
// - 2025-03-02 v0.1.0: AllowUnterminated, blank lines kept
// - 2025-03-09 v0.1.1: A closing % requires an opening %

package parser

import (
	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// ParseProgram parses a complete program
func (p *Parser) ParseProgram(src string) (*token.Program, error) {
	timer := p.logger.StartTimer("parse program").WithLevel(ngclog.LevelDebug)

	if err := p.reset(src); err != nil {
		timer.StopWithError(err)
		return nil, err
	}

	prog, ok := p.program()
	if !ok || p.fatal != nil {
		err := p.err()
		p.logFailure("program", err)
		timer.StopWithError(err)
		return nil, err
	}

	timer.WithField("lines", len(prog.Lines)).WithField("framing", prog.Framing.String()).Stop()
	return prog, nil
}

func (p *Parser) program() (*token.Program, bool) {
	s := p.src.src
	prog := &token.Program{}

	pos, opened, ok := p.openingPercent()
	if !ok {
		return nil, false
	}
	if opened {
		p.logger.Trace("program opened with %")
	}

	for {
		if pos >= len(s) {
			if p.options.AllowUnterminated {
				prog.Framing = token.FramingNone
				return prog, true
			}
			p.fail(pos, ngcerror.CodeUnterminatedProgram, "program ends without %% or M2/M30")
			return nil, false
		}

		if isPercentLine(s, pos) {
			if !opened {
				p.abort(skipSpace(s, pos), ngcerror.CodeUnterminatedProgram, "closing %% without opening %%")
				return nil, false
			}
			prog.Framing = token.FramingPercent
			return prog, true
		}

		line, end, ok := p.line(pos)
		if !ok {
			return nil, false
		}
		prog.Lines = append(prog.Lines, line)
		pos = end

		if endsProgram(line) {
			prog.Framing = token.FramingProgramEnd
			return prog, true
		}
	}
}

// openingPercent skips blank lines and an opening % line. Without an opening
// % the blank lines belong to the program and the position stays at 0.
func (p *Parser) openingPercent() (int, bool, bool) {
	s := p.src.src
	pos := 0
	for pos < len(s) {
		i := skipSpace(s, pos)
		if at(s, i) == '%' {
			_, end, ok := p.lineEnding(lineEnd(s, i))
			if !ok {
				return 0, false, false
			}
			return end, true, true
		}
		if i >= len(s) || !atLineEnd(s, i) {
			break
		}
		_, end, ok := p.lineEnding(i)
		if !ok {
			return 0, false, false
		}
		pos = end
	}
	return 0, false, true
}

func isPercentLine(s string, offset int) bool {
	return at(s, skipSpace(s, offset)) == '%'
}

// endsProgram reports whether line carries M2 or M30 outside a block-delete
func endsProgram(line token.Line) bool {
	for _, t := range line.Tokens {
		if m, ok := t.(*token.MCode); ok && m.IsProgramEnd() {
			return true
		}
	}
	return false
}
