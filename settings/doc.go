// Package settings binds typed settings structs to human-edited YAML
// documents, preserving the comments and key order the document author
// introduced across repeated load-mutate-save cycles.
//
// # Usage
//
//	type Server struct {
//	    settings.Origin
//
//	    Dest string `yaml:"dest" comment:"Destination host."`
//	    Port int    `yaml:"port" comment:"Destination port."`
//	}
//
//	type App struct {
//	    settings.Origin
//
//	    Name string   `yaml:"name" comment:"The name of the application."`
//	    Srv  []Server `yaml:"srv" comment:"List of server configurations."`
//	}
//
//	app := &App{Name: "MyApp"} // field values are the defaults
//	if err := settings.Load(data, app); err != nil {
//	    return err
//	}
//	app.Srv = append(app.Srv, Server{Dest: "new.example.com", Port: 80})
//	if err := settings.Save(w, app); err != nil {
//	    return err
//	}
//
// # Comment preservation
//
// Loading keeps the parsed document tree attached to the struct (and to
// every nested settings struct and list item) as its origin. Saving
// reconciles current field values with that tree: nodes the document
// already has are reused, so their comments and order survive; keys the
// document lacks are appended in declaration order. List items of
// settings structs carry their own origins, so reordering the slice
// moves each item's comments with it.
//
// Two documented limitations: comments on individual entries of plain
// scalar lists are lost across a save, because no stable identity exists
// to re-associate a reordered or edited scalar with its comment; and
// ${NAME} placeholders substituted at load time are not recoverable, the
// resolved value is what saves.
//
// # Options
//
//	settings.Load(data, v, settings.ExpandEnv())
//	settings.Save(w, v, settings.FillDefaultComments(), settings.CommentWidth(50))
//
// # Errors
//
// Malformed text fails with an error wrapping ErrParse. A value that
// cannot be coerced to its field, or a missing required field, fails
// with a *ValidationError carrying the field's dotted path; these match
// errors.Is(err, ErrValidation). There is nothing to retry: loading and
// saving are deterministic transforms.
//
// # Concurrency
//
// Load and Save are pure transforms over in-memory trees plus one I/O
// call. A given struct must not be mutated concurrently with a Load or
// Save on it; the package adds no locking of its own.
//
// # Related Packages
//
//   - github.com/alpenstock/go-alpenstock/ir - the document tree
//   - github.com/alpenstock/go-alpenstock/parse - text to IR
//   - github.com/alpenstock/go-alpenstock/encode - IR to text
//   - github.com/alpenstock/go-alpenstock/schema - field descriptors
package settings
