package settings

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/alpenstock/go-alpenstock/ir"
	"github.com/alpenstock/go-alpenstock/schema"
)

// bindStruct copies document values into rv field by field, attaching
// sub-document origins as it descends.
func bindStruct(obj *ir.Node, rv reflect.Value, sc *schema.Schema) error {
	for i := range sc.Fields {
		f := &sc.Fields[i]
		node := ir.Get(obj, f.Name)
		if node == nil {
			if f.Required {
				return &ValidationError{
					Path:   ir.JoinPath(obj.Path(), f.Name),
					Reason: "required field missing",
				}
			}
			continue
		}
		if err := bindField(node, rv.Field(f.Index), f); err != nil {
			return err
		}
	}
	return nil
}

func bindField(node *ir.Node, fv reflect.Value, f *schema.Field) error {
	switch f.Kind {
	case schema.StructKind:
		target := fv
		if f.Ptr {
			if node.Type == ir.NullType {
				fv.SetZero()
				return nil
			}
			if fv.IsNil() {
				fv.Set(reflect.New(f.Elem))
			}
			target = fv.Elem()
		}
		if node.Type != ir.ObjectType {
			return &ValidationError{
				Path:   node.Path(),
				Reason: fmt.Sprintf("cannot use %s as %s", node.Type, f.Kind),
			}
		}
		sub, err := schema.Of(f.Elem)
		if err != nil {
			return err
		}
		if err := bindStruct(node, target, sub); err != nil {
			return err
		}
		if h := holderOf(target); h != nil {
			h.setOrigin(node)
		}
		return nil

	case schema.StructListKind:
		if node.Type != ir.ArrayType {
			return &ValidationError{
				Path:   node.Path(),
				Reason: fmt.Sprintf("cannot use %s as %s", node.Type, f.Kind),
			}
		}
		sub, err := schema.Of(f.Elem)
		if err != nil {
			return err
		}
		elemIsPtr := f.Type.Elem().Kind() == reflect.Pointer
		out := reflect.MakeSlice(f.Type, len(node.Values), len(node.Values))
		for j, item := range node.Values {
			if item.Type != ir.ObjectType {
				return &ValidationError{
					Path:   item.Path(),
					Reason: fmt.Sprintf("cannot use %s as %s item", item.Type, f.Kind),
				}
			}
			ev := reflect.New(f.Elem)
			if err := bindStruct(item, ev.Elem(), sub); err != nil {
				return err
			}
			// Each item keeps a private origin so its comments follow it
			// through reorders.
			if h := holderOf(ev.Elem()); h != nil {
				h.setOrigin(item)
			}
			if elemIsPtr {
				out.Index(j).Set(ev)
			} else {
				out.Index(j).Set(ev.Elem())
			}
		}
		fv.Set(out)
		return nil

	case schema.ScalarListKind:
		if node.Type != ir.ArrayType {
			return &ValidationError{
				Path:   node.Path(),
				Reason: fmt.Sprintf("cannot use %s as %s", node.Type, f.Kind),
			}
		}
		out := reflect.MakeSlice(f.Type, len(node.Values), len(node.Values))
		for j, item := range node.Values {
			if err := setScalar(out.Index(j), f.ElemKind, item); err != nil {
				return err
			}
		}
		fv.Set(out)
		return nil

	default:
		return setScalar(fv, f.Kind, node)
	}
}

// setScalar coerces a leaf node into a scalar field. Coercion is lenient
// in the direction YAML users expect: quoted numbers parse into numeric
// fields, any scalar stringifies into a string field. Shape mismatches
// fail with the node's path.
func setScalar(fv reflect.Value, kind schema.Kind, node *ir.Node) error {
	if !node.Type.IsLeaf() {
		return typeErr(node, kind)
	}
	switch kind {
	case schema.StringKind:
		if node.Type == ir.NullType {
			fv.SetString("")
			return nil
		}
		fv.SetString(node.Value())
	case schema.IntKind:
		i, ok := intValue(node)
		if !ok || fv.OverflowInt(i) {
			return typeErr(node, kind)
		}
		fv.SetInt(i)
	case schema.UintKind:
		i, ok := intValue(node)
		if !ok || i < 0 || fv.OverflowUint(uint64(i)) {
			return typeErr(node, kind)
		}
		fv.SetUint(uint64(i))
	case schema.FloatKind:
		f, ok := floatValue(node)
		if !ok {
			return typeErr(node, kind)
		}
		fv.SetFloat(f)
	case schema.BoolKind:
		b, ok := boolValue(node)
		if !ok {
			return typeErr(node, kind)
		}
		fv.SetBool(b)
	default:
		return typeErr(node, kind)
	}
	return nil
}

func typeErr(node *ir.Node, kind schema.Kind) error {
	return &ValidationError{
		Path:   node.Path(),
		Reason: fmt.Sprintf("cannot use %s %q as %s", node.Type, node.Value(), kind),
	}
}

func intValue(node *ir.Node) (int64, bool) {
	switch node.Type {
	case ir.NumberType:
		if node.Int64 != nil {
			return *node.Int64, true
		}
		return 0, false
	case ir.StringType:
		i, err := strconv.ParseInt(strings.TrimSpace(node.String), 10, 64)
		return i, err == nil
	default:
		return 0, false
	}
}

func floatValue(node *ir.Node) (float64, bool) {
	switch node.Type {
	case ir.NumberType:
		if node.Float64 != nil {
			return *node.Float64, true
		}
		if node.Int64 != nil {
			return float64(*node.Int64), true
		}
		return 0, false
	case ir.StringType:
		f, err := strconv.ParseFloat(strings.TrimSpace(node.String), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

func boolValue(node *ir.Node) (bool, bool) {
	switch node.Type {
	case ir.BoolType:
		return node.Bool, true
	case ir.StringType:
		b, err := strconv.ParseBool(strings.TrimSpace(node.String))
		return b, err == nil
	default:
		return false, false
	}
}
