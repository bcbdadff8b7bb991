// File: summary.go
// Title: Program Summary
// Description: Collects statistics over a parsed program for reports: token
//              counts by kind, the codes used, subroutines defined and called
//              and the parameters assigned.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-20
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-20 v0.1.0: Initial implementation

package ngc

import (
	"sort"

	"github.com/msto63/ngc/foundation/ngc/token"
)

// Summary describes a parsed program
type Summary struct {
	Lines        int            `json:"lines" yaml:"lines"`
	BlankLines   int            `json:"blank_lines" yaml:"blank_lines"`
	DeletedLines int            `json:"deleted_lines" yaml:"deleted_lines"`
	Framing      string         `json:"framing" yaml:"framing"`
	Tokens       map[string]int `json:"tokens" yaml:"tokens"`
	GCodes       []string       `json:"gcodes,omitempty" yaml:"gcodes,omitempty"`
	MCodes       []string       `json:"mcodes,omitempty" yaml:"mcodes,omitempty"`
	Subroutines  []string       `json:"subroutines,omitempty" yaml:"subroutines,omitempty"`
	Calls        []string       `json:"calls,omitempty" yaml:"calls,omitempty"`
	Assigned     []string       `json:"assigned,omitempty" yaml:"assigned,omitempty"`
}

// Summarize walks prog, including block bodies and block-delete lines
func Summarize(prog *token.Program) Summary {
	s := Summary{
		Lines:   len(prog.Lines),
		Framing: prog.Framing.String(),
		Tokens:  make(map[string]int),
	}

	for _, l := range prog.Lines {
		if l.IsBlank() {
			s.BlankLines++
		}
		if len(l.Tokens) == 1 && l.Tokens[0].Kind() == token.KindBlockDelete {
			s.DeletedLines++
		}
	}

	gcodes := set{}
	mcodes := set{}
	subs := set{}
	calls := set{}
	assigned := set{}

	token.Walk(prog.Lines, func(t token.Token) bool {
		s.Tokens[t.Kind().String()]++
		switch v := t.(type) {
		case *token.GCode:
			gcodes.add(v.String())
		case *token.MCode:
			mcodes.add(v.String())
		case *token.SubroutineDefinition:
			subs.add(v.ID.String())
		case *token.SubroutineCall:
			calls.add(v.ID.String())
		case *token.ParameterAssignment:
			assigned.add(v.Parameter.String())
		}
		return true
	})

	s.GCodes = gcodes.sorted()
	s.MCodes = mcodes.sorted()
	s.Subroutines = subs.sorted()
	s.Calls = calls.sorted()
	s.Assigned = assigned.sorted()
	return s
}

// UndefinedCalls returns the called subroutines the program does not define
func (s Summary) UndefinedCalls() []string {
	defined := set{}
	for _, id := range s.Subroutines {
		defined.add(id)
	}
	var missing []string
	for _, id := range s.Calls {
		if !defined[id] {
			missing = append(missing, id)
		}
	}
	return missing
}

type set map[string]bool

func (s set) add(v string) { s[v] = true }

func (s set) sorted() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
