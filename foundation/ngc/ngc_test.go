// File: ngc_test.go
// Title: NGC Engine Tests
// Description: Tests for the engine facade and program summaries.
// Author: msto63
// Version: v0.1.0
// Created: 2025-02-18
// Modified: 2025-03-02
//
// Change History:
// - 2025-02-18 v0.1.0: Initial tests

package ngc

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc/eval"
	"github.com/msto63/ngc/foundation/ngc/parser"
	"github.com/msto63/ngc/foundation/ngc/token"
)

const sample = `%
(sample program)
#<depth> = -1.5
o100 sub
  G1 Z#<depth> F[#1 * 60]
o100 endsub
N10 G0 X0 Y0
/M8
o100 call [5]
o200 call
%
`

func newTestEngine(t *testing.T, opts Options) *Engine {
	t.Helper()
	opts.Logger = ngclog.Discard()
	e, err := NewEngine(opts)
	require.NoError(t, err)
	return e
}

func TestNewEngineDefaults(t *testing.T) {
	e, err := NewEngine()
	require.NoError(t, err)
	assert.Equal(t, parser.DefaultMaxDepth, e.Options().MaxDepth)
	assert.Equal(t, parser.DefaultMaxInputLength, e.Options().MaxInputLength)
	assert.Equal(t, eval.Degrees, e.Options().AngleUnit)
}

func TestNewEngineRejectsInvalidOptions(t *testing.T) {
	_, err := NewEngine(Options{MaxDepth: -1})
	require.Error(t, err)
	assert.Equal(t, ngcerror.CodeInvalidInput, ngcerror.GetCode(err))

	_, err = NewEngine(Options{AngleUnit: eval.AngleUnit(9)})
	assert.Error(t, err)
}

func TestEngineParseProgram(t *testing.T) {
	e := newTestEngine(t, Options{})

	prog, err := e.ParseProgram(sample)
	require.NoError(t, err)
	assert.Equal(t, token.FramingPercent, prog.Framing)
	assert.Len(t, prog.Lines, 7)
}

func TestEngineAllowUnterminated(t *testing.T) {
	_, err := newTestEngine(t, Options{}).ParseProgram("G1 X1\n")
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeUnterminatedProgram))

	prog, err := newTestEngine(t, Options{AllowUnterminated: true}).ParseProgram("G1 X1\n")
	require.NoError(t, err)
	assert.Equal(t, token.FramingNone, prog.Framing)
}

func TestEngineEvaluateExpression(t *testing.T) {
	e := newTestEngine(t, Options{})
	ctx := eval.MapContext{token.Numbered(1): 21}

	v, err := e.EvaluateExpression("[#1 * 2]", ctx)
	require.NoError(t, err)
	assert.Equal(t, 42.0, v)

	_, err = e.EvaluateExpression("[#1 *", ctx)
	require.Error(t, err)
	var perr *parser.ParseError
	assert.ErrorAs(t, err, &perr)

	_, err = e.EvaluateExpression("[#2]", ctx)
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeUnresolvedParameter))
}

func TestEngineEvaluateLineValues(t *testing.T) {
	e := newTestEngine(t, Options{AngleUnit: eval.Radians})

	line, err := e.ParseLine("G1 X[COS[0] * 10] F#<_feed>")
	require.NoError(t, err)
	require.Len(t, line.Tokens, 3)

	coords := line.Tokens[1].(*token.Coordinates)
	x, err := e.EvaluateValue(*coords.X, nil)
	require.NoError(t, err)
	assert.Equal(t, 10.0, x)

	feed := line.Tokens[2].(*token.Word)
	f, err := e.EvaluateValue(feed.Value, eval.MapContext{token.Global("feed"): 300})
	require.NoError(t, err)
	assert.Equal(t, 300.0, f)
}

func TestEngineConcurrentParse(t *testing.T) {
	e := newTestEngine(t, Options{})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			prog, err := e.ParseProgram(sample)
			if assert.NoError(t, err) {
				assert.Len(t, prog.Lines, 7)
			}
		}()
	}
	wg.Wait()
}

func TestSummarize(t *testing.T) {
	e := newTestEngine(t, Options{})
	prog, err := e.ParseProgram(sample)
	require.NoError(t, err)

	s := Summarize(prog)
	assert.Equal(t, 7, s.Lines)
	assert.Equal(t, 1, s.DeletedLines)
	assert.Equal(t, 0, s.BlankLines)
	assert.Equal(t, "percent", s.Framing)
	assert.Equal(t, []string{"G0", "G1"}, s.GCodes)
	assert.Equal(t, []string{"M8"}, s.MCodes)
	assert.Equal(t, []string{"o100"}, s.Subroutines)
	assert.Equal(t, []string{"o100", "o200"}, s.Calls)
	assert.Equal(t, []string{"#<depth>"}, s.Assigned)
	assert.Equal(t, []string{"o200"}, s.UndefinedCalls())
	assert.Equal(t, 2, s.Tokens[token.KindSubroutineCall.String()])
	assert.Equal(t, 1, s.Tokens[token.KindComment.String()])
}
