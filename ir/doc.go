// Package ir provides the document tree for settings documents.
//
// # Overview
//
// A settings document (whether parsed from YAML text or produced by
// reconciling a settings struct) is represented as a tree of ir.Node
// values. The tree mirrors the structured text source: mapping nodes keep
// their key order, sequence nodes keep their item order, and every node
// carries the comments the document author attached to it.
//
// The IR works as a recursive tagged union, where values are placed in
// fields depending on the node type.
//
// # Node Types
//
// The Type field indicates the node's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - NumberType: numeric value (int64 or float64, with the source text
//     kept in Number)
//   - StringType: string value
//   - ArrayType: ordered list of nodes
//   - ObjectType: key-value pairs (fields and values)
//
// # Objects
//
// For ObjectType nodes, Fields[i] is the key node for the value at
// Values[i], so there are always the same number of fields as values.
// Keys are unique and their order is reproduced on output.
//
// # Comments
//
// Every node carries optional comment material, without the "#" marker:
//
//   - Head: leading block comment lines rendered above the node
//   - Line: the trailing comment on the node's own line
//   - Foot: comment lines rendered below the node
//
// For an object entry, the entry's leading comment lives on the key node.
// A scalar entry's line comment lives on the value node; a composite
// entry's line comment lives on the key node.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	node := ir.FromString("hello")
//	num := ir.FromInt(42)
//	obj := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("key"), Val: ir.FromString("value")},
//	})
//	arr := ir.FromSlice([]*ir.Node{ir.FromInt(1), ir.FromInt(2)})
//
// # Navigating Nodes
//
// Nodes maintain parent-child relationships through Parent, ParentIndex
// and ParentField. Use Path() to get a dotted field path for error
// reporting:
//
//	path := node.Path() // e.g. "srv[1].port"
//
// # Thread Safety
//
// Node structures are not thread-safe. If you need to access nodes from
// multiple goroutines, you must synchronize access yourself or clone
// nodes for each goroutine.
//
// # Related Packages
//
//   - github.com/alpenstock/go-alpenstock/parse - Parses YAML text into IR nodes
//   - github.com/alpenstock/go-alpenstock/encode - Encodes IR nodes to YAML text
//   - github.com/alpenstock/go-alpenstock/settings - Binds IR trees to typed structs
package ir
