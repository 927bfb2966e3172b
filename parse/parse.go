// Package parse provides YAML parsing support for settings documents.
package parse

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/alpenstock/go-alpenstock/ir"

	"gopkg.in/yaml.v3"
)

// Parse reads a YAML document into an IR tree, keeping document order and
// comment material. An empty document yields a nil node. Malformed input
// yields an error wrapping ErrParse and no partial tree.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	var doc yaml.Node
	if err := yaml.Unmarshal(d, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	if doc.Kind == 0 || len(doc.Content) == 0 {
		return nil, nil
	}
	root, err := fromYAML(doc.Content[0])
	if err != nil {
		return nil, err
	}
	// Comments the scanner attributes to the document itself belong to the
	// root node in the IR.
	if h := commentLines(doc.HeadComment); len(h) > 0 {
		root.Head = append(h, root.Head...)
	}
	if f := commentLines(doc.FootComment); len(f) > 0 {
		root.Foot = append(root.Foot, f...)
	}
	if pOpts.expandEnv {
		expandEnv(root, pOpts.lookup())
	}
	return root, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

func ParseReader(r io.Reader, opts ...ParseOption) (*ir.Node, error) {
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return Parse(d, opts...)
}

func fromYAML(n *yaml.Node) (*ir.Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return ir.Null(), nil
		}
		return fromYAML(n.Content[0])
	case yaml.AliasNode:
		// Aliases are resolved in place; the anchor's comments stay with
		// the anchor.
		return fromYAML(n.Alias)
	case yaml.MappingNode:
		return fromYAMLMapping(n)
	case yaml.SequenceNode:
		return fromYAMLSequence(n)
	case yaml.ScalarNode:
		return fromYAMLScalar(n), nil
	default:
		return nil, fmt.Errorf("%w: unsupported node kind %d", ErrParse, n.Kind)
	}
}

func fromYAMLMapping(n *yaml.Node) (*ir.Node, error) {
	obj := &ir.Node{Type: ir.ObjectType}
	if n.Style == yaml.FlowStyle {
		obj.Style = ir.FlowStyle
	}
	obj.Head = commentLines(n.HeadComment)
	obj.Line = commentText(n.LineComment)
	obj.Foot = commentLines(n.FootComment)
	for i := 0; i+1 < len(n.Content); i += 2 {
		k, v := n.Content[i], n.Content[i+1]
		key := ir.FromString(k.Value)
		key.Head = commentLines(k.HeadComment)
		key.Foot = commentLines(k.FootComment)
		val, err := fromYAML(v)
		if err != nil {
			return nil, err
		}
		// The scanner attaches an entry's line comment to the key or the
		// value depending on layout. Normalize: leaf entries carry it on
		// the value, composite entries on the key.
		if val.Type.IsLeaf() {
			if val.Line == "" {
				val.Line = commentText(k.LineComment)
			}
		} else {
			if key.Line == "" {
				key.Line = val.Line
			}
			if key.Line == "" {
				key.Line = commentText(k.LineComment)
			}
			val.Line = ""
		}
		ir.Append(obj, key, val)
	}
	return obj, nil
}

func fromYAMLSequence(n *yaml.Node) (*ir.Node, error) {
	arr := &ir.Node{Type: ir.ArrayType}
	if n.Style == yaml.FlowStyle {
		arr.Style = ir.FlowStyle
	}
	arr.Head = commentLines(n.HeadComment)
	arr.Line = commentText(n.LineComment)
	arr.Foot = commentLines(n.FootComment)
	for _, c := range n.Content {
		item, err := fromYAML(c)
		if err != nil {
			return nil, err
		}
		ir.Push(arr, item)
	}
	return arr, nil
}

func fromYAMLScalar(n *yaml.Node) *ir.Node {
	leaf := &ir.Node{}
	leaf.Head = commentLines(n.HeadComment)
	leaf.Line = commentText(n.LineComment)
	leaf.Foot = commentLines(n.FootComment)
	leaf.Style = styleFromYAML(n.Style)
	switch n.Tag {
	case "!!null", "":
		leaf.Type = ir.NullType
	case "!!bool":
		leaf.Type = ir.BoolType
		b, err := strconv.ParseBool(strings.ToLower(n.Value))
		if err != nil {
			// y/yes/on style booleans from the YAML 1.1 schema
			switch strings.ToLower(n.Value) {
			case "y", "yes", "on":
				b = true
			}
		}
		leaf.Bool = b
	case "!!int":
		leaf.Type = ir.NumberType
		leaf.Number = n.Value
		if i, err := strconv.ParseInt(n.Value, 0, 64); err == nil {
			leaf.Int64 = &i
		}
	case "!!float":
		leaf.Type = ir.NumberType
		leaf.Number = n.Value
		if f, err := strconv.ParseFloat(n.Value, 64); err == nil {
			leaf.Float64 = &f
		}
	default:
		// !!str and anything exotic (timestamps, custom tags) keeps its
		// textual source representation.
		leaf.Type = ir.StringType
		leaf.String = n.Value
	}
	return leaf
}

func styleFromYAML(s yaml.Style) ir.Style {
	switch s {
	case yaml.SingleQuotedStyle:
		return ir.SingleQuotedStyle
	case yaml.DoubleQuotedStyle:
		return ir.DoubleQuotedStyle
	case yaml.LiteralStyle:
		return ir.LiteralStyle
	case yaml.FoldedStyle:
		return ir.FoldedStyle
	case yaml.FlowStyle:
		return ir.FlowStyle
	default:
		return ir.DefaultStyle
	}
}

// commentLines splits a scanner comment block into bare comment lines,
// dropping the "#" markers.
func commentLines(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, "\n")
	lines := make([]string, 0, len(parts))
	for _, p := range parts {
		lines = append(lines, commentText(p))
	}
	return lines
}

func commentText(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	return strings.TrimPrefix(s, " ")
}
