package render

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	ngclog "github.com/msto63/ngc/foundation/core/log"
	"github.com/msto63/ngc/foundation/ngc"
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

const broken = "%\nG1 X10\nG1 Y[1 + 2\n%\n"

func parse(t *testing.T, src string) (*token.Program, error) {
	t.Helper()
	e, err := ngc.NewEngine(ngc.Options{Logger: ngclog.Discard()})
	require.NoError(t, err)
	return e.ParseProgram(src)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  Format
	}{
		{"", FormatText},
		{"text", FormatText},
		{"YAML", FormatYAML},
		{"yml", FormatYAML},
		{"json", FormatJSON},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseFormat(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.want.String(), got.String())
		})
	}

	_, err := ParseFormat("xml")
	assert.True(t, ngcerror.HasCode(err, ngcerror.CodeInvalidInput))
}

func TestTree(t *testing.T) {
	prog, err := parse(t, sample)
	require.NoError(t, err)

	nodes := Tree(prog.Lines)
	require.Len(t, nodes, 7)

	assert.Equal(t, "line", nodes[0].Kind)
	assert.Equal(t, 2, nodes[0].Line)
	assert.Equal(t, "comment", nodes[0].Children[0].Kind)

	sub := nodes[2].Children[0]
	assert.Equal(t, "sub", sub.Kind)
	assert.Equal(t, "o100 sub", sub.Text)
	require.Len(t, sub.Children, 1)
	assert.Equal(t, "gcode", sub.Children[0].Children[0].Kind)
	assert.Equal(t, "linear move", sub.Children[0].Children[0].Note)

	deleted := nodes[4].Children[0]
	assert.Equal(t, "block_delete", deleted.Kind)
	assert.Equal(t, "flood coolant on", deleted.Children[0].Note)
}

func TestTreeIfBranches(t *testing.T) {
	prog, err := parse(t, "%\no1 if [#1 GT 0]\nG0 X1\no1 elseif [#1 LT 0]\nG0 X2\no1 else\nG0 X3\no1 endif\n%\n")
	require.NoError(t, err)

	nodes := Tree(prog.Lines)
	require.Len(t, nodes, 1)

	block := nodes[0].Children[0]
	assert.Equal(t, "if", block.Kind)
	require.Len(t, block.Children, 3)
	assert.Equal(t, "o1 if [#1 GT 0]", block.Children[0].Text)
	assert.Equal(t, "o1 elseif [#1 LT 0]", block.Children[1].Text)
	assert.Equal(t, "o1 else", block.Children[2].Text)
}

func TestProgramText(t *testing.T) {
	prog, err := parse(t, sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText, false).Program(&buf, "sample.ngc", prog))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "sample.ngc (percent, 7 lines)\n"), out)
	assert.Contains(t, out, "o100 sub")
	assert.Contains(t, out, "G0  rapid move")
	assert.Contains(t, out, "calls without definition: o200")
}

func TestProgramYAML(t *testing.T) {
	prog, err := parse(t, sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatYAML, true).Program(&buf, "sample.ngc", prog))

	var doc Document
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "sample.ngc", doc.File)
	assert.Equal(t, "percent", doc.Framing)
	assert.Len(t, doc.Lines, 7)
	assert.Equal(t, []string{"o100"}, doc.Summary.Subroutines)
	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestProgramJSON(t *testing.T) {
	prog, err := parse(t, sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatJSON, false).Program(&buf, "", prog))

	var doc map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
	assert.Equal(t, "percent", doc["framing"])
	assert.NotContains(t, doc, "file")
}

func TestDiagnosticText(t *testing.T) {
	_, err := parse(t, broken)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText, false).Diagnostic(&buf, "broken.ngc", err))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "broken.ngc:3:11: error[NGC_UNBALANCED_EXPRESSION]: "), lines[0])
	assert.Equal(t, "    G1 Y[1 + 2", lines[1])
	assert.Equal(t, "    "+strings.Repeat(" ", 10)+"^", lines[2])
}

func TestDiagnosticJSON(t *testing.T) {
	_, err := parse(t, broken)
	require.Error(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatJSON, false).Diagnostic(&buf, "broken.ngc", err))

	var d Diagnostic
	require.NoError(t, json.Unmarshal(buf.Bytes(), &d))
	assert.Equal(t, "NGC_UNBALANCED_EXPRESSION", d.Code)
	assert.Equal(t, "parse", d.Category)
	assert.Equal(t, 3, d.Line)
	assert.Equal(t, 11, d.Column)
	assert.Equal(t, "G1 Y[1 + 2", d.Excerpt)
}

func TestDiagnosticForeignError(t *testing.T) {
	d := NewDiagnostic("", ngcerror.New("division by zero").WithCode(ngcerror.CodeDomain))
	assert.Equal(t, "NGC_DOMAIN", d.Code)
	assert.Equal(t, "evaluation", d.Category)
	assert.Zero(t, d.Line)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText, false).Diagnostic(&buf, "", errors.New("boom")))
	assert.Equal(t, "error[UNKNOWN]: boom\n", buf.String())
}

func TestCheck(t *testing.T) {
	prog, err := parse(t, sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText, false).Check(&buf, "sample.ngc", prog, nil))
	assert.Equal(t, "ok sample.ngc (7 lines, percent)\n", buf.String())

	_, perr := parse(t, broken)
	buf.Reset()
	require.NoError(t, New(FormatYAML, false).Check(&buf, "broken.ngc", nil, perr))

	var res CheckResult
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &res))
	assert.False(t, res.OK)
	require.NotNil(t, res.Error)
	assert.Equal(t, 3, res.Error.Line)
	assert.Nil(t, res.Summary)
}

func TestSummary(t *testing.T) {
	prog, err := parse(t, sample)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, New(FormatText, false).Summary(&buf, "sample.ngc", ngc.Summarize(prog)))
	out := buf.String()
	assert.Contains(t, out, "lines        7 (0 blank, 1 deleted)")
	assert.Contains(t, out, "gcodes       G0 G1")
	assert.Contains(t, out, "assigned     #<depth>")
}

func TestValue(t *testing.T) {
	tests := []struct {
		v    float64
		want string
	}{
		{-2.5, "-2.5"},
		{3, "3"},
		{1000000, "1000000"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		require.NoError(t, New(FormatText, false).Value(&buf, "[x]", tt.v))
		assert.Equal(t, tt.want+"\n", buf.String())
	}

	var buf bytes.Buffer
	require.NoError(t, New(FormatJSON, false).Value(&buf, "[1 + 2]", 3))
	var res Result
	require.NoError(t, json.Unmarshal(buf.Bytes(), &res))
	assert.Equal(t, Result{Expression: "[1 + 2]", Value: 3}, res)
}
