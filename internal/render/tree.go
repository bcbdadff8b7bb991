package render

import (
	"strings"

	"github.com/msto63/ngc/foundation/ngc/parser"
	"github.com/msto63/ngc/foundation/ngc/token"
)

// Node is one element of the rendered program tree. Lines hold tokens, block
// tokens hold branches or body lines.
type Node struct {
	Kind     string `json:"kind" yaml:"kind"`
	Text     string `json:"text,omitempty" yaml:"text,omitempty"`
	Note     string `json:"note,omitempty" yaml:"note,omitempty"`
	Line     int    `json:"line,omitempty" yaml:"line,omitempty"`
	Children []Node `json:"children,omitempty" yaml:"children,omitempty"`
}

// Tree converts the lines of a program into nodes
func Tree(lines []token.Line) []Node {
	nodes := make([]Node, 0, len(lines))
	for _, l := range lines {
		nodes = append(nodes, lineNode(l))
	}
	return nodes
}

func lineNode(l token.Line) Node {
	if l.IsBlank() {
		return Node{Kind: "blank", Line: l.Pos.Line}
	}
	n := Node{Kind: "line", Line: l.Pos.Line}
	for _, t := range l.Tokens {
		n.Children = append(n.Children, tokenNode(t))
	}
	return n
}

func tokenNode(t token.Token) Node {
	n := Node{Kind: t.Kind().String()}

	switch v := t.(type) {
	case *token.GCode:
		n.Text = v.String()
		n.Note = parser.DescribeGCode(v.Code)
	case *token.MCode:
		n.Text = v.String()
		n.Note = parser.DescribeMCode(v.Code)
	case *token.BlockDelete:
		n.Text = "/"
		for _, c := range v.Tokens {
			n.Children = append(n.Children, tokenNode(c))
		}
	case *token.SubroutineDefinition:
		n.Text = header(v.ID, "sub", nil)
		if v.Return != nil {
			n.Note = "returns " + v.Return.String()
		}
		n.Children = Tree(v.Body)
	case *token.If:
		n.Text = header(v.ID, "if", v.Branches[0].Condition)
		for i, br := range v.Branches {
			keyword := "elseif"
			if i == 0 {
				keyword = "if"
			}
			n.Children = append(n.Children, Node{
				Kind:     "branch",
				Text:     header(v.ID, keyword, br.Condition),
				Children: Tree(br.Body),
			})
		}
		if v.Else != nil {
			n.Children = append(n.Children, Node{
				Kind:     "branch",
				Text:     header(v.ID, "else", nil),
				Children: Tree(v.Else.Body),
			})
		}
	case *token.While:
		n.Text = header(v.ID, "while", v.Condition)
		n.Children = Tree(v.Body)
	case *token.DoWhile:
		n.Text = header(v.ID, "do", nil)
		n.Note = "until not " + conditionText(v.Condition)
		n.Children = Tree(v.Body)
	case *token.Repeat:
		n.Text = header(v.ID, "repeat", v.Count)
		n.Children = Tree(v.Body)
	default:
		n.Text = t.String()
	}
	return n
}

func header(id token.BlockID, keyword string, expr token.Expression) string {
	var b strings.Builder
	b.WriteString(id.String())
	b.WriteByte(' ')
	b.WriteString(keyword)
	if expr != nil {
		b.WriteByte(' ')
		b.WriteString(expr.String())
	}
	return b.String()
}

func conditionText(expr token.Expression) string {
	if expr == nil {
		return "[]"
	}
	return expr.String()
}
