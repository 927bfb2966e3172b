package schema

import (
	"fmt"
	"reflect"
	"strings"
	"sync"
)

// Kind is the declared shape of a settings field.
type Kind int

const (
	InvalidKind Kind = iota
	StringKind
	IntKind
	UintKind
	FloatKind
	BoolKind
	StructKind
	StructListKind
	ScalarListKind
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		StringKind:     "string",
		IntKind:        "int",
		UintKind:       "uint",
		FloatKind:      "float",
		BoolKind:       "bool",
		StructKind:     "settings",
		StructListKind: "settings list",
		ScalarListKind: "scalar list",
	}[k]
	if ok {
		return s
	}
	return "<invalid kind>"
}

// Field is the static descriptor of one declared settings field. Built
// once from the struct definition, consulted read-only thereafter.
type Field struct {
	// Name is the document key: the yaml tag when present, otherwise the
	// lowercased Go field name.
	Name string

	// Comment is the default annotation from the comment tag, used to
	// synthesize a leading comment when the document has none.
	Comment string

	// Required marks fields tagged `settings:"required"`. Loading a
	// document without them fails.
	Required bool

	Kind  Kind
	Index int
	Type  reflect.Type

	// Elem is the element struct type for StructKind and StructListKind,
	// or the scalar element type for ScalarListKind.
	Elem     reflect.Type
	ElemKind Kind

	// Ptr is set for StructKind fields declared as *T.
	Ptr bool
}

// Schema is the per-type descriptor table.
type Schema struct {
	Type   reflect.Type
	Fields []Field

	byName map[string]int
}

// Field returns the descriptor for a document key, or nil.
func (s *Schema) Field(name string) *Field {
	i, ok := s.byName[name]
	if !ok {
		return nil
	}
	return &s.Fields[i]
}

var (
	mu       sync.Mutex
	registry = map[reflect.Type]*Schema{}
)

// Of returns the schema for a settings struct type, building and caching
// it on first use. Unexported, anonymous, and `yaml:"-"` fields are
// skipped; anonymous skipping is what keeps the embedded settings.Origin
// out of the document.
func Of(t reflect.Type) (*Schema, error) {
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %s is not a struct", ErrSchema, t)
	}
	mu.Lock()
	defer mu.Unlock()
	if s, ok := registry[t]; ok {
		return s, nil
	}
	s, err := build(t)
	if err != nil {
		return nil, err
	}
	registry[t] = s
	return s, nil
}

func build(t reflect.Type) (*Schema, error) {
	s := &Schema{
		Type:   t,
		byName: map[string]int{},
	}
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" || sf.Anonymous {
			continue
		}
		name := fieldName(sf)
		if name == "-" {
			continue
		}
		if _, dup := s.byName[name]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate field name %q", ErrSchema, t, name)
		}
		f := Field{
			Name:     name,
			Comment:  sf.Tag.Get("comment"),
			Required: hasTagOption(sf.Tag.Get("settings"), "required"),
			Index:    i,
			Type:     sf.Type,
		}
		if err := fillKind(&f, sf.Type); err != nil {
			return nil, fmt.Errorf("%w: %s.%s: %v", ErrSchema, t, sf.Name, err)
		}
		s.byName[name] = len(s.Fields)
		s.Fields = append(s.Fields, f)
	}
	return s, nil
}

func fillKind(f *Field, t reflect.Type) error {
	if k := scalarKind(t); k != InvalidKind {
		f.Kind = k
		return nil
	}
	switch t.Kind() {
	case reflect.Struct:
		f.Kind = StructKind
		f.Elem = t
		return nil
	case reflect.Pointer:
		if t.Elem().Kind() != reflect.Struct {
			return fmt.Errorf("unsupported pointer type %s", t)
		}
		f.Kind = StructKind
		f.Elem = t.Elem()
		f.Ptr = true
		return nil
	case reflect.Slice:
		et := t.Elem()
		if et.Kind() == reflect.Pointer {
			et = et.Elem()
		}
		if et.Kind() == reflect.Struct {
			f.Kind = StructListKind
			f.Elem = et
			return nil
		}
		if k := scalarKind(et); k != InvalidKind {
			f.Kind = ScalarListKind
			f.Elem = et
			f.ElemKind = k
			return nil
		}
		return fmt.Errorf("unsupported list element type %s", t.Elem())
	default:
		return fmt.Errorf("unsupported field type %s", t)
	}
}

func scalarKind(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.String:
		return StringKind
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return IntKind
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return UintKind
	case reflect.Float32, reflect.Float64:
		return FloatKind
	case reflect.Bool:
		return BoolKind
	default:
		return InvalidKind
	}
}

func fieldName(sf reflect.StructField) string {
	tag := sf.Tag.Get("yaml")
	if tag == "" {
		return strings.ToLower(sf.Name)
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(sf.Name)
	}
	return name
}

func hasTagOption(tag, opt string) bool {
	for _, part := range strings.Split(tag, ",") {
		if strings.TrimSpace(part) == opt {
			return true
		}
	}
	return false
}
