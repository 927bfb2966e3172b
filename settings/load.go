package settings

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/alpenstock/go-alpenstock/debug"
	"github.com/alpenstock/go-alpenstock/ir"
	"github.com/alpenstock/go-alpenstock/parse"
	"github.com/alpenstock/go-alpenstock/schema"
)

// Load reads a YAML document into v, which must be a non-nil pointer to
// a settings struct. src is the document text as []byte, string or
// io.Reader. Fields the document omits keep the values already in v;
// that is how defaults are expressed. Fields tagged required must be
// present. The parsed document tree becomes v's origin, so a later Save
// reproduces the document's comments and key order.
func Load(src any, v any, opts ...Option) error {
	o := getOpts(opts)
	data, err := readSource(src)
	if err != nil {
		return err
	}
	var pOpts []parse.ParseOption
	if o.expandEnv {
		if o.lookupEnv != nil {
			pOpts = append(pOpts, parse.ExpandEnvFrom(o.lookupEnv))
		} else {
			pOpts = append(pOpts, parse.ExpandEnv())
		}
	}
	root, err := parse.Parse(data, pOpts...)
	if err != nil {
		return err
	}
	return bindRoot(root, v)
}

// LoadFile is Load reading the document from path.
func LoadFile(path string, v any, opts ...Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return Load(data, v, opts...)
}

func readSource(src any) ([]byte, error) {
	switch s := src.(type) {
	case []byte:
		return s, nil
	case string:
		return []byte(s), nil
	case io.Reader:
		d, err := io.ReadAll(s)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrParse, err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("settings: unsupported source type %T", src)
	}
}

func bindRoot(root *ir.Node, v any) error {
	rv, sc, err := structOf(v)
	if err != nil {
		return err
	}
	if root == nil || root.Type == ir.NullType {
		// Empty document: defaults apply, required fields do not.
		root = &ir.Node{Type: ir.ObjectType}
	}
	if root.Type != ir.ObjectType {
		return &ValidationError{Reason: fmt.Sprintf("expected mapping document, got %s", root.Type)}
	}
	if err := bindStruct(root, rv, sc); err != nil {
		return err
	}
	if h := holderOf(rv); h != nil {
		h.setOrigin(root)
	}
	if debug.Load() {
		debug.Logf("settings: loaded %T from:\n%v", v, root)
	}
	return nil
}

func structOf(v any) (reflect.Value, *schema.Schema, error) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, nil, fmt.Errorf("settings: %T is not a non-nil pointer to a struct", v)
	}
	rv = rv.Elem()
	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, nil, fmt.Errorf("settings: %T is not a non-nil pointer to a struct", v)
	}
	sc, err := schema.Of(rv.Type())
	if err != nil {
		return reflect.Value{}, nil, err
	}
	return rv, sc, nil
}
