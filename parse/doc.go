// Package parse parses YAML settings documents into IR nodes.
//
// # Usage
//
//	node, err := parse.Parse([]byte("host: example.com # prod\n"))
//	if err != nil {
//	    return err
//	}
//
//	// Parse from a string or reader
//	node, err := parse.ParseString("port: 8080\n")
//	node, err := parse.ParseReader(f)
//
//	// Substitute ${NAME} environment placeholders while parsing
//	node, err := parse.Parse(data, parse.ExpandEnv())
//
// Key order and comments from the source document are preserved on the
// resulting nodes. The underlying YAML machinery is gopkg.in/yaml.v3;
// this package normalizes its comment attachment into the IR's model.
//
// # Related Packages
//
//   - github.com/alpenstock/go-alpenstock/ir - IR representation
//   - github.com/alpenstock/go-alpenstock/encode - Encode IR to text
package parse
