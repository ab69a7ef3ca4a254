// Package jsonschema decodes JSON Schema fragments (JSON or YAML) into the
// read-only schema.Schema consumed by the input resolver.
//
// Decoding is deliberately lenient: only the keywords that influence native
// input configuration are read, ill-typed keywords are treated as absent and
// nothing is validated. Schema validation and compilation belong to a
// dedicated schema library.
package jsonschema
