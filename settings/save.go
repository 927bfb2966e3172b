package settings

import (
	"bytes"
	"io"
	"os"

	"github.com/alpenstock/go-alpenstock/encode"
)

// Save reconciles v with its origin document and writes the result as
// YAML. Comments and key order from the loaded document are preserved;
// see Document for the reconciliation rules.
func Save(w io.Writer, v any, opts ...Option) error {
	root, err := Document(v, opts...)
	if err != nil {
		return err
	}
	return encode.Encode(root, w)
}

// SaveFile is Save writing to path. The file is written in one call
// after the document is fully rendered, so a reconciliation error never
// truncates an existing file.
func SaveFile(path string, v any, opts ...Option) error {
	buf := bytes.NewBuffer(nil)
	if err := Save(buf, v, opts...); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0o644)
}
