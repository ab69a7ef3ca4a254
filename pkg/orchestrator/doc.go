// Package orchestrator wires the schema source → field props → renderer
// pipeline for a single input field. It loads the schema fragment (raw JSON or
// YAML, or an OpenAPI document), applies transformers and UI decorators,
// selects a theme and hands the result to a named renderer.
package orchestrator
