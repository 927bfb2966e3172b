package parse

import (
	"regexp"
	"strings"

	"github.com/alpenstock/go-alpenstock/debug"
	"github.com/alpenstock/go-alpenstock/ir"
)

var envPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)\}`)

// expandEnv rewrites ${NAME} occurrences in string scalars in place.
// Object keys are never substituted.
func expandEnv(root *ir.Node, lookup func(string) string) {
	_ = root.Visit(func(y *ir.Node, isPost bool) (bool, error) {
		if isPost || y.Type != ir.StringType {
			return true, nil
		}
		if !strings.Contains(y.String, "${") {
			return true, nil
		}
		was := y.String
		y.String = envPattern.ReplaceAllStringFunc(y.String, func(m string) string {
			return lookup(m[2 : len(m)-1])
		})
		if debug.Env() && was != y.String {
			debug.Logf("expand %s: %q -> %q\n", y.Path(), was, y.String)
		}
		return true, nil
	})
}
