package ir

import (
	"slices"
	"strconv"
)

// Node is a single value in a settings document. The tree is a closed
// tagged union: the Type field selects which value fields are meaningful.
//
// Comments belong to nodes, not to the values they happen to hold: moving
// a value into a fresh node loses its comments, moving the node keeps them.
type Node struct {
	Type        Type
	Parent      *Node
	ParentIndex int
	ParentField string

	// Fields[i] is the key node for Values[i] when Type is ObjectType.
	// Key order is semantically meaningful and reproduced on output.
	Fields []*Node
	Values []*Node

	// Head holds leading block comment lines, Line the trailing comment on
	// the value's own line, Foot trailing lines below the node. None of the
	// strings carry the "#" marker.
	Head []string
	Line string
	Foot []string

	Style Style

	String  string
	Bool    bool
	Number  string
	Float64 *float64
	Int64   *int64
}

func (y *Node) WithHead(lines ...string) *Node {
	y.Head = lines
	return y
}

func (y *Node) WithLine(comment string) *Node {
	y.Line = comment
	return y
}

func (y *Node) Clone() *Node {
	res := &Node{}
	return y.CloneTo(res)
}

// CloneTo deep-copies y into dst. dst keeps y's parent coordinates, so a
// clone of a subtree can stand in for the original.
func (y *Node) CloneTo(dst *Node) *Node {
	dst.Parent = y.Parent
	dst.ParentIndex = y.ParentIndex
	dst.ParentField = y.ParentField
	dst.Type = y.Type
	dst.Style = y.Style
	dst.Head = slices.Clone(y.Head)
	dst.Line = y.Line
	dst.Foot = slices.Clone(y.Foot)
	dst.Fields = make([]*Node, len(y.Fields))
	dst.Values = make([]*Node, len(y.Values))
	for i, yf := range y.Fields {
		dstI := &Node{}
		yf.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yf.String
		dst.Fields[i] = dstI
	}
	for i, yv := range y.Values {
		dstI := &Node{}
		yv.CloneTo(dstI)
		dstI.Parent = dst
		dstI.ParentIndex = i
		dstI.ParentField = yv.ParentField
		dst.Values[i] = dstI
	}
	dst.String = y.String
	dst.Number = y.Number
	if y.Float64 != nil {
		f := *y.Float64
		dst.Float64 = &f
	}
	if y.Int64 != nil {
		i := *y.Int64
		dst.Int64 = &i
	}
	dst.Bool = y.Bool
	return dst
}

// Detach clears y's parent coordinates so it can be placed in another tree.
func (y *Node) Detach() *Node {
	y.Parent = nil
	y.ParentIndex = 0
	y.ParentField = ""
	return y
}

func FromString(v string) *Node {
	return &Node{
		Type:   StringType,
		String: v,
	}
}

func FromInt(v int64) *Node {
	return &Node{
		Type:  NumberType,
		Int64: &v,
	}
}

func FromFloat(f float64) *Node {
	return &Node{
		Type:    NumberType,
		Float64: &f,
	}
}

func FromBool(v bool) *Node {
	return &Node{
		Type: BoolType,
		Bool: v,
	}
}

func Null() *Node {
	return &Node{Type: NullType}
}

type KeyVal struct {
	Key *Node
	Val *Node
}

func FromKeyVals(kvs []KeyVal) *Node {
	res := &Node{}
	return FromKeyValsAt(res, kvs)
}

func FromKeyValsAt(res *Node, kvs []KeyVal) *Node {
	res.Type = ObjectType
	res.Fields = make([]*Node, 0, len(kvs))
	res.Values = make([]*Node, 0, len(kvs))
	for i := range kvs {
		kv := &kvs[i]
		Append(res, kv.Key, kv.Val)
	}
	return res
}

func FromSlice(ySlice []*Node) *Node {
	res := &Node{
		Type: ArrayType,
	}
	res.Values = make([]*Node, len(ySlice))
	for i, y := range ySlice {
		res.Values[i] = y
		y.Parent = res
		y.ParentIndex = i
	}
	return res
}

// Append adds a key/value entry to an ObjectType node, fixing up parent
// coordinates on both nodes.
func Append(obj, key, val *Node) {
	i := len(obj.Values)
	key.Parent = obj
	key.ParentIndex = i
	key.ParentField = key.String
	val.Parent = obj
	val.ParentIndex = i
	val.ParentField = key.String
	obj.Fields = append(obj.Fields, key)
	obj.Values = append(obj.Values, val)
}

// Push adds an item to an ArrayType node.
func Push(arr, item *Node) {
	item.Parent = arr
	item.ParentIndex = len(arr.Values)
	arr.Values = append(arr.Values, item)
}

// Get returns the value for field, or nil if y has no such entry.
func Get(y *Node, field string) *Node {
	n := len(y.Fields)
	for i := 0; i < n; i++ {
		if y.Fields[i].String == field {
			return y.Values[i]
		}
	}
	return nil
}

// Index returns the entry position of field in y, or -1.
func Index(y *Node, field string) int {
	for i := range y.Fields {
		if y.Fields[i].String == field {
			return i
		}
	}
	return -1
}

// Set replaces the value for field, appending a new entry when absent.
// The existing key node, and therefore its comments, is kept.
func Set(obj *Node, field string, val *Node) {
	if i := Index(obj, field); i >= 0 {
		val.Parent = obj
		val.ParentIndex = i
		val.ParentField = field
		obj.Values[i] = val
		return
	}
	Append(obj, FromString(field), val)
}

// ToMap returns the entries of an ObjectType node keyed by field name.
// Entry order is lost; use Fields/Values where order matters.
func ToMap(node *Node) map[string]*Node {
	if node.Type != ObjectType {
		return nil
	}
	res := make(map[string]*Node, len(node.Fields))
	for i := range node.Fields {
		res[node.Fields[i].String] = node.Values[i]
	}
	return res
}

func (y *Node) Visit(f func(y *Node, isPost bool) (bool, error)) error {
	dive, err := f(y, false)
	if err != nil {
		return err
	}
	if dive {
		for _, yy := range y.Values {
			if err := yy.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(y, true); err != nil {
		return err
	}
	return nil
}

func (y *Node) Root() *Node {
	res := y
	for res.Parent != nil {
		res = res.Parent
	}
	return res
}

// Value returns the scalar value in its textual source representation.
func (y *Node) Value() string {
	switch y.Type {
	case StringType:
		return y.String
	case BoolType:
		return strconv.FormatBool(y.Bool)
	case NumberType:
		if y.Number != "" {
			return y.Number
		}
		if y.Int64 != nil {
			return strconv.FormatInt(*y.Int64, 10)
		}
		if y.Float64 != nil {
			return strconv.FormatFloat(*y.Float64, 'g', -1, 64)
		}
		return ""
	case NullType:
		return "null"
	default:
		return ""
	}
}
