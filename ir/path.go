package ir

import (
	"strconv"
	"strings"
)

// Path returns the dotted field path of y from the root of its tree, in
// the form used by validation errors: "srv[1].port". The root node has
// the empty path.
func (y *Node) Path() string {
	var parts []string
	for n := y; n.Parent != nil; n = n.Parent {
		switch n.Parent.Type {
		case ObjectType:
			parts = append(parts, n.ParentField)
		case ArrayType:
			parts = append(parts, "["+strconv.Itoa(n.ParentIndex)+"]")
		}
	}
	var sb strings.Builder
	for i := len(parts) - 1; i >= 0; i-- {
		p := parts[i]
		if sb.Len() > 0 && !strings.HasPrefix(p, "[") {
			sb.WriteByte('.')
		}
		sb.WriteString(p)
	}
	return sb.String()
}

// JoinPath extends a dotted field path with a member name.
func JoinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
