package encode

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alpenstock/go-alpenstock/ir"

	"gopkg.in/yaml.v3"
)

type EncState struct {
	indent int
	colors *Colors
}

// Encode writes node as YAML text. Head comments render as "# text" lines
// above their node, line comments after the value on the same line. A nil
// node writes nothing.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{indent: 2}
	for _, opt := range opts {
		opt(es)
	}
	if node == nil {
		return nil
	}
	y := toYAML(node)
	if es.colors == nil {
		return emit(y, w, es)
	}
	buf := bytes.NewBuffer(nil)
	if err := emit(y, buf, es); err != nil {
		return err
	}
	return writeString(w, colorize(buf.String(), es.colors))
}

func emit(y *yaml.Node, w io.Writer, es *EncState) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(es.indent)
	if err := enc.Encode(y); err != nil {
		enc.Close()
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return nil
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func toYAML(n *ir.Node) *yaml.Node {
	switch n.Type {
	case ir.ObjectType:
		y := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		if n.Style == ir.FlowStyle {
			y.Style = yaml.FlowStyle
		}
		setComments(y, n)
		for i := range n.Fields {
			k, v := n.Fields[i], n.Values[i]
			yk := &yaml.Node{
				Kind:        yaml.ScalarNode,
				Tag:         "!!str",
				Value:       k.String,
				HeadComment: commentBlock(k.Head),
				LineComment: commentLine(k.Line),
				FootComment: commentBlock(k.Foot),
			}
			y.Content = append(y.Content, yk, toYAML(v))
		}
		return y
	case ir.ArrayType:
		y := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		if n.Style == ir.FlowStyle {
			y.Style = yaml.FlowStyle
		}
		setComments(y, n)
		for _, v := range n.Values {
			y.Content = append(y.Content, toYAML(v))
		}
		return y
	default:
		return toYAMLScalar(n)
	}
}

func toYAMLScalar(n *ir.Node) *yaml.Node {
	y := &yaml.Node{Kind: yaml.ScalarNode}
	y.Style = styleToYAML(n.Style)
	setComments(y, n)
	switch n.Type {
	case ir.StringType:
		y.Tag = "!!str"
		y.Value = n.String
		if n.String == "" && y.Style == 0 {
			y.Style = yaml.DoubleQuotedStyle
		}
	case ir.BoolType:
		y.Tag = "!!bool"
		y.Value = strconv.FormatBool(n.Bool)
	case ir.NumberType:
		y.Tag = "!!int"
		y.Value = n.Number
		if n.Float64 != nil && n.Int64 == nil {
			y.Tag = "!!float"
		}
		if y.Value == "" {
			y.Value = n.Value()
			if y.Tag == "!!float" && !strings.ContainsAny(y.Value, ".eEnN") {
				y.Value += ".0"
			}
		}
	case ir.NullType:
		y.Tag = "!!null"
		y.Value = "null"
	}
	return y
}

func setComments(y *yaml.Node, n *ir.Node) {
	y.HeadComment = commentBlock(n.Head)
	y.LineComment = commentLine(n.Line)
	y.FootComment = commentBlock(n.Foot)
}

func styleToYAML(s ir.Style) yaml.Style {
	switch s {
	case ir.SingleQuotedStyle:
		return yaml.SingleQuotedStyle
	case ir.DoubleQuotedStyle:
		return yaml.DoubleQuotedStyle
	case ir.LiteralStyle:
		return yaml.LiteralStyle
	case ir.FoldedStyle:
		return yaml.FoldedStyle
	case ir.FlowStyle:
		return yaml.FlowStyle
	default:
		return 0
	}
}

func commentBlock(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	marked := make([]string, len(lines))
	for i, ln := range lines {
		marked[i] = commentLine(ln)
	}
	return strings.Join(marked, "\n")
}

func commentLine(s string) string {
	if s == "" {
		return ""
	}
	return "# " + s
}
