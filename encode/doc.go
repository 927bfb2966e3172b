// Package encode encodes IR nodes to YAML text.
//
// # Usage
//
//	node := ir.FromKeyVals([]ir.KeyVal{
//	    {Key: ir.FromString("name"), Val: ir.FromString("alice")},
//	    {Key: ir.FromString("age"), Val: ir.FromInt(30)},
//	})
//	err := encode.Encode(node, w)
//
//	// Encode with options
//	err := encode.Encode(node, w, encode.Indent(4))
//	err := encode.Encode(node, w, encode.EncodeColors(encode.NewColors()))
//
// Comments on nodes are rendered as "# text" lines above the node and
// " # text" after scalar values. Wrap provides the word wrapping applied
// to comments the settings engine synthesizes.
//
// # Related Packages
//
//   - github.com/alpenstock/go-alpenstock/ir - IR representation
//   - github.com/alpenstock/go-alpenstock/parse - Parse text to IR
package encode
