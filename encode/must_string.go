package encode

import (
	"bytes"

	"github.com/alpenstock/go-alpenstock/ir"
)

// MustString renders node to a string, panicking on encoding failure.
// Intended for tests and debug output.
func MustString(node *ir.Node, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}
