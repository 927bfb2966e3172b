// Package debug provides env-gated diagnostics for the settings engine.
// Set ALPENSTOCK_DEBUG_LOAD, ALPENSTOCK_DEBUG_SAVE or ALPENSTOCK_DEBUG_ENV
// to a true value to trace loading, reconciliation or placeholder
// substitution on stderr. Errors are never reported here; they are
// returned to the caller.
package debug

import (
	"bytes"
	"fmt"
	"os"

	"github.com/alpenstock/go-alpenstock/encode"
	"github.com/alpenstock/go-alpenstock/ir"

	"github.com/mattn/go-isatty"
)

var stderrTTY = isatty.IsTerminal(os.Stderr.Fd())

// Logf writes to stderr. *ir.Node arguments are rendered as YAML,
// colorized when stderr is a terminal.
func Logf(msg string, args ...any) {
	for i := range args {
		x, ok := args[i].(*ir.Node)
		if !ok {
			continue
		}
		var opts []encode.EncodeOption
		if stderrTTY {
			opts = append(opts, encode.EncodeColors(encode.NewColors()))
		}
		buf := bytes.NewBuffer(nil)
		if err := encode.Encode(x, buf, opts...); err != nil {
			args[i] = fmt.Sprintf("[raw node] %v", x)
			continue
		}
		args[i] = buf.String()
	}
	fmt.Fprintf(os.Stderr, msg, args...)
}
