package repl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc"
	"github.com/msto63/ngc/foundation/ngc/token"
)

func newTestEngine(t *testing.T) *ngc.Engine {
	t.Helper()
	e, err := ngc.NewEngine(ngc.Options{Logger: ngclog.Discard()})
	require.NoError(t, err)
	return e
}

func TestSessionExpressions(t *testing.T) {
	s := NewSession(newTestEngine(t))

	tests := []struct {
		input string
		want  float64
	}{
		{"[1 + 2 * 3 / 4 - 5]", -2.5},
		{"1 + 2 * 3 / 4 - 5", -2.5},
		{"ABS[-1.5]", 1.5},
		{"  [2 ** 3]  ", 8},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := s.Execute(tt.input)
			require.NoError(t, err)
			assert.Equal(t, ResultValue, res.Kind)
			assert.InDelta(t, tt.want, res.Value, 1e-9)
		})
	}
}

func TestSessionAssignments(t *testing.T) {
	s := NewSession(newTestEngine(t))

	res, err := s.Execute("#1 = 2")
	require.NoError(t, err)
	assert.Equal(t, ResultAssignment, res.Kind)
	assert.Equal(t, "#1 = 2", res.Output)

	res, err = s.Execute("#<depth> = [#1 * 3]")
	require.NoError(t, err)
	assert.Equal(t, "#<depth> = 6", res.Output)

	res, err = s.Execute("#<depth> + #1")
	require.NoError(t, err)
	assert.Equal(t, 8.0, res.Value)

	assert.Equal(t, 6.0, s.Params()[token.Named("depth")])
}

func TestSessionAssignmentsReadPreviousValues(t *testing.T) {
	s := NewSession(newTestEngine(t))

	_, err := s.Execute("#1 = 1")
	require.NoError(t, err)

	res, err := s.Execute("#1 = 10 #2 = #1")
	require.NoError(t, err)
	assert.Equal(t, "#1 = 10  #2 = 1", res.Output)

	params := s.Params()
	assert.Equal(t, 10.0, params[token.Numbered(1)])
	assert.Equal(t, 1.0, params[token.Numbered(2)])
}

func TestSessionErrors(t *testing.T) {
	s := NewSession(newTestEngine(t))

	tests := []struct {
		input string
		code  ngcerror.Code
	}{
		{"#7 + 1", ngcerror.CodeUnresolvedParameter},
		{"1 / 0", ngcerror.CodeDomain},
		{"FOO[1]", ngcerror.CodeUnknownFunction},
		{"#1 = 2 G1", ngcerror.CodeInvalidInput},
		{":bogus", ngcerror.CodeInvalidInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := s.Execute(tt.input)
			require.Error(t, err)
			assert.Equal(t, tt.code, ngcerror.GetCode(err), err.Error())
		})
	}
	assert.Empty(t, s.Params())
}

func TestSessionCommands(t *testing.T) {
	s := NewSession(newTestEngine(t))

	res, err := s.Execute(":params")
	require.NoError(t, err)
	assert.Equal(t, "no parameters set", res.Output)

	_, err = s.Execute("#2 = 4 #1 = 3")
	require.NoError(t, err)

	res, err = s.Execute(":p")
	require.NoError(t, err)
	assert.Equal(t, "#1 = 3\n#2 = 4", res.Output)

	res, err = s.Execute(":clear")
	require.NoError(t, err)
	assert.Equal(t, ResultClear, res.Kind)
	assert.Empty(t, s.Params())

	res, err = s.Execute(":help")
	require.NoError(t, err)
	assert.Contains(t, res.Output, ":params")

	res, err = s.Execute(":quit")
	require.NoError(t, err)
	assert.Equal(t, ResultQuit, res.Kind)

	res, err = s.Execute("   ")
	require.NoError(t, err)
	assert.Equal(t, ResultCommand, res.Kind)
}
