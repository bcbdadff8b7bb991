// ============================================================================
// ngc - RS274/NGC Parser Toolkit
// ============================================================================
//
// Package:     render
// Description: Text, YAML and JSON output for parsed programs, diagnostics
//              and evaluation results
// Author:      Mike Stoffels
// Created:     2025-12-08
// License:     MIT
// ============================================================================

package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	ngcerror "github.com/msto63/ngc/foundation/core/error"
	"github.com/msto63/ngc/foundation/ngc"
	"github.com/msto63/ngc/foundation/ngc/parser"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// Format selects the output encoding
type Format int

const (
	FormatText Format = iota
	FormatYAML
	FormatJSON
)

// String returns the format name
func (f Format) String() string {
	switch f {
	case FormatText:
		return "text"
	case FormatYAML:
		return "yaml"
	case FormatJSON:
		return "json"
	default:
		return "unknown"
	}
}

// ParseFormat parses an output format name
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "text":
		return FormatText, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	default:
		return FormatText, ngcerror.Newf("unknown output format %q", s).
			WithCode(ngcerror.CodeInvalidInput).
			WithOperation("render.ParseFormat").
			WithDetail("format", s)
	}
}

// Document is the encoded form of a parsed program
type Document struct {
	File    string      `json:"file,omitempty" yaml:"file,omitempty"`
	Framing string      `json:"framing" yaml:"framing"`
	Lines   []Node      `json:"lines" yaml:"lines"`
	Summary ngc.Summary `json:"summary" yaml:"summary"`
}

// Diagnostic is the encoded form of a failure
type Diagnostic struct {
	File     string `json:"file,omitempty" yaml:"file,omitempty"`
	Code     string `json:"code" yaml:"code"`
	Category string `json:"category" yaml:"category"`
	Message  string `json:"message" yaml:"message"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Column   int    `json:"column,omitempty" yaml:"column,omitempty"`
	Offset   int    `json:"offset,omitempty" yaml:"offset,omitempty"`
	Excerpt  string `json:"excerpt,omitempty" yaml:"excerpt,omitempty"`

	caret string
}

// Result is the encoded form of an evaluated expression
type Result struct {
	Expression string  `json:"expression" yaml:"expression"`
	Value      float64 `json:"value" yaml:"value"`
}

// CheckResult is the encoded form of one checked file
type CheckResult struct {
	File    string       `json:"file" yaml:"file"`
	OK      bool         `json:"ok" yaml:"ok"`
	Summary *ngc.Summary `json:"summary,omitempty" yaml:"summary,omitempty"`
	Error   *Diagnostic  `json:"error,omitempty" yaml:"error,omitempty"`
}

// Renderer writes results in one format
type Renderer struct {
	format Format
	styles Styles
}

// New creates a renderer. color only affects text output.
func New(format Format, color bool) *Renderer {
	return &Renderer{format: format, styles: NewStyles(color && format == FormatText)}
}

// Format returns the output format
func (r *Renderer) Format() Format {
	return r.format
}

// Program writes the tree of a parsed program
func (r *Renderer) Program(w io.Writer, file string, prog *token.Program) error {
	doc := Document{
		File:    file,
		Framing: prog.Framing.String(),
		Lines:   Tree(prog.Lines),
		Summary: ngc.Summarize(prog),
	}

	if r.format != FormatText {
		return r.Encode(w, doc)
	}

	var b strings.Builder
	title := file
	if title == "" {
		title = "<stdin>"
	}
	fmt.Fprintf(&b, "%s %s\n", r.styles.Title.Render(title),
		r.styles.Note.Render(fmt.Sprintf("(%s, %d lines)", doc.Framing, doc.Summary.Lines)))
	for _, n := range doc.Lines {
		r.writeNode(&b, n, 0)
	}
	if undefined := doc.Summary.UndefinedCalls(); len(undefined) > 0 {
		fmt.Fprintf(&b, "%s %s\n", r.styles.ErrCode.Render("calls without definition:"), strings.Join(undefined, ", "))
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (r *Renderer) writeNode(b *strings.Builder, n Node, depth int) {
	indent := strings.Repeat("  ", depth)

	switch n.Kind {
	case "blank":
		fmt.Fprintf(b, "%s%s\n", indent, r.styles.LineNo.Render(fmt.Sprintf("%4d", n.Line)))
		return
	case "line":
		fmt.Fprintf(b, "%s%s\n", indent, r.styles.LineNo.Render(fmt.Sprintf("%4d", n.Line)))
		for _, c := range n.Children {
			r.writeNode(b, c, depth+3)
		}
		return
	}

	text := n.Text
	if n.Kind == "gcode" || n.Kind == "mcode" {
		text = r.styles.Code.Render(text)
	}
	fmt.Fprintf(b, "%s%s %s", indent, r.styles.Kind.Render(fmt.Sprintf("%-12s", n.Kind)), text)
	if n.Note != "" {
		fmt.Fprintf(b, "  %s", r.styles.Note.Render(n.Note))
	}
	b.WriteByte('\n')

	for _, c := range n.Children {
		r.writeNode(b, c, depth+1)
	}
}

// Summary writes the statistics of a parsed program
func (r *Renderer) Summary(w io.Writer, file string, s ngc.Summary) error {
	if r.format != FormatText {
		return r.Encode(w, struct {
			File    string      `json:"file,omitempty" yaml:"file,omitempty"`
			Summary ngc.Summary `json:"summary" yaml:"summary"`
		}{file, s})
	}

	var b strings.Builder
	if file != "" {
		fmt.Fprintf(&b, "%s\n", r.styles.Title.Render(file))
	}
	fmt.Fprintf(&b, "  framing      %s\n", s.Framing)
	fmt.Fprintf(&b, "  lines        %d (%d blank, %d deleted)\n", s.Lines, s.BlankLines, s.DeletedLines)
	writeList(&b, "gcodes", s.GCodes)
	writeList(&b, "mcodes", s.MCodes)
	writeList(&b, "subroutines", s.Subroutines)
	writeList(&b, "calls", s.Calls)
	writeList(&b, "assigned", s.Assigned)

	_, err := io.WriteString(w, b.String())
	return err
}

func writeList(b *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		return
	}
	fmt.Fprintf(b, "  %-12s %s\n", label, strings.Join(items, " "))
}

// NewDiagnostic describes err. Parse errors keep their position and excerpt.
func NewDiagnostic(file string, err error) Diagnostic {
	code := ngcerror.GetCode(err)
	d := Diagnostic{
		File:     file,
		Code:     code.String(),
		Category: code.Category(),
		Message:  err.Error(),
	}

	var perr *parser.ParseError
	if errors.As(err, &perr) {
		d.Message = perr.Message
		d.Line = perr.Line
		d.Column = perr.Column
		d.Offset = perr.Offset
		d.Excerpt = perr.Excerpt
		d.caret = perr.Caret()
	}
	return d
}

// Diagnostic writes a failure. Text output follows the file:line:col
// convention and shows the excerpt with a caret.
func (r *Renderer) Diagnostic(w io.Writer, file string, err error) error {
	d := NewDiagnostic(file, err)
	if r.format != FormatText {
		return r.Encode(w, d)
	}

	_, werr := io.WriteString(w, r.diagnosticText(d))
	return werr
}

func (r *Renderer) diagnosticText(d Diagnostic) string {
	var b strings.Builder

	var loc []string
	if d.File != "" {
		loc = append(loc, d.File)
	}
	if d.Line > 0 {
		loc = append(loc, fmt.Sprintf("%d:%d", d.Line, d.Column))
	}
	if len(loc) > 0 {
		b.WriteString(strings.Join(loc, ":"))
		b.WriteString(": ")
	}
	fmt.Fprintf(&b, "%s %s\n", r.styles.Error.Render("error")+r.styles.ErrCode.Render("["+d.Code+"]")+":", d.Message)

	if d.caret != "" {
		lines := strings.SplitN(d.caret, "\n", 2)
		fmt.Fprintf(&b, "    %s\n", lines[0])
		if len(lines) == 2 {
			fmt.Fprintf(&b, "    %s\n", r.styles.Caret.Render(lines[1]))
		}
	}
	return b.String()
}

// Check writes the outcome of checking one file
func (r *Renderer) Check(w io.Writer, file string, prog *token.Program, err error) error {
	res := CheckResult{File: file, OK: err == nil}
	if err != nil {
		d := NewDiagnostic(file, err)
		res.Error = &d
	} else {
		s := ngc.Summarize(prog)
		res.Summary = &s
	}

	if r.format != FormatText {
		return r.Encode(w, res)
	}

	if err != nil {
		_, werr := io.WriteString(w, r.diagnosticText(*res.Error))
		return werr
	}
	_, werr := fmt.Fprintf(w, "%s %s %s\n", r.styles.OK.Render("ok"), file,
		r.styles.Note.Render(fmt.Sprintf("(%d lines, %s)", res.Summary.Lines, res.Summary.Framing)))
	return werr
}

// Value writes the result of an evaluated expression
func (r *Renderer) Value(w io.Writer, expr string, v float64) error {
	if r.format != FormatText {
		return r.Encode(w, Result{Expression: expr, Value: v})
	}
	_, err := fmt.Fprintln(w, r.styles.Value.Render(FormatValue(v)))
	return err
}

// FormatValue formats an evaluation result without a trailing ".0"
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Encode writes v as YAML or JSON. Text renderers fall back to JSON.
func (r *Renderer) Encode(w io.Writer, v interface{}) error {
	switch r.format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return ngcerror.Wrap(err, "failed to encode YAML").WithCode(ngcerror.CodeInternal)
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return ngcerror.Wrap(err, "failed to encode JSON").WithCode(ngcerror.CodeInternal)
		}
		return nil
	}
}
