package settings

import (
	"reflect"
	"slices"
	"strconv"

	"github.com/alpenstock/go-alpenstock/debug"
	"github.com/alpenstock/go-alpenstock/encode"
	"github.com/alpenstock/go-alpenstock/ir"
	"github.com/alpenstock/go-alpenstock/schema"
)

type saver struct {
	fill  bool
	width int
}

// Document reconciles v's current field values with its origin document
// and returns the updated tree. Existing nodes are reused wherever the
// origin has a matching entry, so their comments and order survive; keys
// the origin lacks are appended in schema declaration order. The
// returned tree becomes v's new origin.
func Document(v any, opts ...Option) (*ir.Node, error) {
	o := getOpts(opts)
	rv, sc, err := structOf(v)
	if err != nil {
		return nil, err
	}
	s := &saver{fill: o.fillComments, width: o.width}
	root, err := s.reconcileStruct(rv, sc)
	if err != nil {
		return nil, err
	}
	if debug.Save() {
		debug.Logf("settings: reconciled %T to:\n%v", v, root)
	}
	return root, nil
}

func (s *saver) reconcileStruct(rv reflect.Value, sc *schema.Schema) (*ir.Node, error) {
	var origin *ir.Node
	h := holderOf(rv)
	if h != nil {
		origin = h.originNode()
	}
	if origin != nil && origin.Type != ir.ObjectType {
		origin = nil
	}
	out := &ir.Node{Type: ir.ObjectType}
	done := map[string]bool{}
	if origin != nil {
		carryComments(out, origin)
		out.Style = origin.Style
		// Origin order wins for keys the document already has.
		for i, key := range origin.Fields {
			f := sc.Field(key.String)
			if f == nil {
				// Keys the schema does not declare are dropped.
				continue
			}
			done[f.Name] = true
			keyCopy := key.Clone().Detach()
			if s.fill && f.Comment != "" && len(keyCopy.Head) == 0 {
				keyCopy.Head = encode.Wrap(f.Comment, s.width)
			}
			val, err := s.fieldNode(rv.Field(f.Index), f, origin.Values[i])
			if err != nil {
				return nil, err
			}
			ir.Append(out, keyCopy, val)
		}
	}
	// New keys go after all existing ones, in declaration order.
	for i := range sc.Fields {
		f := &sc.Fields[i]
		if done[f.Name] {
			continue
		}
		key := ir.FromString(f.Name)
		if s.fill && f.Comment != "" {
			key.Head = encode.Wrap(f.Comment, s.width)
		}
		val, err := s.fieldNode(rv.Field(f.Index), f, nil)
		if err != nil {
			return nil, err
		}
		ir.Append(out, key, val)
	}
	if h != nil {
		h.setOrigin(out)
	}
	return out, nil
}

func (s *saver) fieldNode(fv reflect.Value, f *schema.Field, originVal *ir.Node) (*ir.Node, error) {
	switch f.Kind {
	case schema.StructKind:
		target := fv
		if f.Ptr {
			if fv.IsNil() {
				return ir.Null(), nil
			}
			target = fv.Elem()
		}
		sub, err := schema.Of(f.Elem)
		if err != nil {
			return nil, err
		}
		// The nested struct's own origin drives its reconciliation; a
		// replaced-wholesale instance has none and synthesizes fresh.
		return s.reconcileStruct(target, sub)

	case schema.StructListKind:
		sub, err := schema.Of(f.Elem)
		if err != nil {
			return nil, err
		}
		seq := s.sequenceNode(originVal)
		for j := 0; j < fv.Len(); j++ {
			ev := fv.Index(j)
			if ev.Kind() == reflect.Pointer {
				if ev.IsNil() {
					ir.Push(seq, ir.Null())
					continue
				}
				ev = ev.Elem()
			}
			item, err := s.reconcileStruct(ev, sub)
			if err != nil {
				return nil, err
			}
			ir.Push(seq, item)
		}
		return seq, nil

	case schema.ScalarListKind:
		// Plain scalar items have no stable identity, so their individual
		// comments are not carried across saves. The list node's own
		// comments are.
		seq := s.sequenceNode(originVal)
		for j := 0; j < fv.Len(); j++ {
			ir.Push(seq, scalarNodeOf(fv.Index(j), f.ElemKind))
		}
		return seq, nil

	default:
		return carryScalar(scalarNodeOf(fv, f.Kind), originVal), nil
	}
}

// sequenceNode starts a rebuilt list node, keeping list-level comments
// from the original sequence independent of item identity.
func (s *saver) sequenceNode(originVal *ir.Node) *ir.Node {
	seq := &ir.Node{Type: ir.ArrayType}
	if originVal != nil && originVal.Type == ir.ArrayType {
		carryComments(seq, originVal)
		seq.Style = originVal.Style
	}
	return seq
}

func scalarNodeOf(fv reflect.Value, kind schema.Kind) *ir.Node {
	switch kind {
	case schema.StringKind:
		return ir.FromString(fv.String())
	case schema.IntKind:
		return ir.FromInt(fv.Int())
	case schema.UintKind:
		return &ir.Node{Type: ir.NumberType, Number: strconv.FormatUint(fv.Uint(), 10)}
	case schema.FloatKind:
		return ir.FromFloat(fv.Float())
	case schema.BoolKind:
		return ir.FromBool(fv.Bool())
	default:
		return ir.Null()
	}
}

// carryScalar moves an original leaf's comments onto the freshly built
// node and, when the value is unchanged, its source representation too.
func carryScalar(node, origin *ir.Node) *ir.Node {
	if origin == nil || !origin.Type.IsLeaf() {
		return node
	}
	carryComments(node, origin)
	if equalScalar(node, origin) {
		node.Style = origin.Style
		if node.Type == ir.NumberType {
			node.Number = origin.Number
		}
	}
	return node
}

func carryComments(dst, src *ir.Node) {
	dst.Head = slices.Clone(src.Head)
	dst.Line = src.Line
	dst.Foot = slices.Clone(src.Foot)
}

func equalScalar(a, b *ir.Node) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case ir.StringType:
		return a.String == b.String
	case ir.BoolType:
		return a.Bool == b.Bool
	case ir.NumberType:
		if a.Int64 != nil && b.Int64 != nil {
			return *a.Int64 == *b.Int64
		}
		if a.Float64 != nil && b.Float64 != nil {
			return *a.Float64 == *b.Float64
		}
		return a.Value() == b.Value()
	default:
		return true
	}
}
