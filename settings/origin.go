package settings

import (
	"reflect"

	"github.com/alpenstock/go-alpenstock/ir"
)

// Origin is the back-reference from a settings struct to the document
// subtree it was loaded from. Embed it in any struct whose document
// comments and key order should survive load-mutate-save cycles:
//
//	type Server struct {
//	    settings.Origin
//
//	    Host string `yaml:"host"`
//	}
//
// The zero value is ready to use. The reference is non-owning and is
// consulted and replaced only by Load and Save, never by field
// assignment; once a save supersedes the old tree nothing holds on to
// it. A struct without an embedded Origin still loads and saves, but
// saves as if freshly constructed: comments from its source document
// are not carried over.
type Origin struct {
	node *ir.Node
}

func (o *Origin) originNode() *ir.Node { return o.node }
func (o *Origin) setOrigin(n *ir.Node) { o.node = n }

type originHolder interface {
	originNode() *ir.Node
	setOrigin(n *ir.Node)
}

// holderOf returns the origin accessor of an addressable settings struct
// value, or nil when the struct does not embed Origin.
func holderOf(rv reflect.Value) originHolder {
	if !rv.CanAddr() {
		return nil
	}
	h, _ := rv.Addr().Interface().(originHolder)
	return h
}
