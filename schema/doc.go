// Package schema derives per-field descriptor tables from settings
// struct definitions.
//
// # Overview
//
// A settings struct declares its document shape through ordinary Go
// fields and tags:
//
//	type Server struct {
//	    settings.Origin
//
//	    Host string `yaml:"host" comment:"The hostname of the server."`
//	    Port int    `yaml:"port" comment:"The port the server listens on."`
//	    Name string `yaml:"name" settings:"required"`
//	}
//
// schema.Of builds the descriptor table for a type once and caches it;
// the table is consulted read-only by loading and reconciliation.
//
// # Field shapes
//
// Supported field shapes are scalars (string, integer, float, bool),
// nested settings structs (T or *T), lists of settings structs, and
// lists of scalars. Anything else is a schema error at build time.
//
// # Tags
//
//   - yaml: the document key; "-" skips the field. Defaults to the
//     lowercased field name.
//   - comment: the default annotation rendered as a leading comment when
//     saving with fill-default-comments enabled.
//   - settings: comma-separated options; "required" makes loading fail
//     when the document omits the field.
package schema
