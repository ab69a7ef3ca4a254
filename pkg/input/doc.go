// Package input derives native input configuration from schema fragments and
// normalizes raw control events for a surrounding form-state engine.
//
// Three pieces make up the package:
//
//   - Resolve turns a schema fragment, a declared WidgetType and typed Options
//     into Attributes (native type, step/min/max, examples list id, label
//     shrink flag and adornment kind).
//   - BuildExamples derives the deduplicated suggestion list rendered next to
//     the control and keyed by the list id.
//   - Normalizer converts raw change/blur/focus events into the canonical
//     (fieldID, value) callbacks, substituting Options.EmptyValue when a
//     field is cleared.
//
// Everything here is pure and synchronous. Unknown widget types, missing
// examples or defaults are not errors: they degrade to the default
// presentation.
package input
