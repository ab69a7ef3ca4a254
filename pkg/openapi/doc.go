// Package openapi extracts input schema fragments from OpenAPI documents. It
// keeps kin-openapi behind a small surface: load a document, then pick a
// component schema or a request body property and convert it into a
// schema.Schema the input resolver understands.
package openapi
