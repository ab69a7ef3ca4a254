// Package uischema loads per-field UI documents (JSON or YAML) and applies
// them to render.FieldProps. Each entry carries presentation settings such as
// label, placeholder and declared widget plus the typed input options. Option
// keys are decoded strictly: an unknown key fails the load with
// input.ErrUnknownOption.
package uischema
