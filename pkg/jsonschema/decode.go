package jsonschema

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forminput/pkg/schema"
)

var (
	// ErrNotObject is returned when a fragment is not a JSON object.
	ErrNotObject = errors.New("jsonschema: fragment must be an object")
	// ErrPointerNotFound is returned when Lookup cannot follow a pointer.
	ErrPointerNotFound = errors.New("jsonschema: pointer not found")
)

// Parse decodes raw JSON or YAML into a fragment. JSON is attempted first so
// numbers keep encoding/json semantics.
func Parse(raw []byte) (schema.Schema, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return schema.Schema{}, err
	}
	return FromMap(payload)
}

// ParseAt decodes raw JSON or YAML and returns the fragment addressed by the
// JSON pointer (for example "/properties/age").
func ParseAt(raw []byte, pointer string) (schema.Schema, error) {
	payload, err := decodePayload(raw)
	if err != nil {
		return schema.Schema{}, err
	}
	node, err := Lookup(payload, pointer)
	if err != nil {
		return schema.Schema{}, err
	}
	return FromMap(node)
}

// FromMap reads the input-relevant keywords from a decoded fragment.
func FromMap(payload map[string]any) (schema.Schema, error) {
	if payload == nil {
		return schema.Schema{}, ErrNotObject
	}

	out := schema.Schema{
		Type:        readType(payload["type"]),
		Format:      strings.TrimSpace(readString(payload, "format")),
		Title:       strings.TrimSpace(readString(payload, "title")),
		Description: strings.TrimSpace(readString(payload, "description")),
		Extensions:  extractExtensions(payload),
	}

	if value, ok := payload["default"]; ok {
		out.Default = value
		out.HasDefault = true
	}

	if raw, ok := payload["examples"]; ok {
		if list, ok := raw.([]any); ok {
			out.Examples = append([]any{}, list...)
			out.HasExamples = true
		}
	}

	if raw, ok := payload["enum"].([]any); ok {
		out.Enum = append([]any(nil), raw...)
	}

	out.Minimum = readFloat(payload, "minimum")
	out.Maximum = readFloat(payload, "maximum")
	out.MultipleOf = readFloat(payload, "multipleOf")

	if readOnly, ok := payload["readOnly"].(bool); ok {
		out.ReadOnly = readOnly
	}

	return out, nil
}

// Lookup follows a JSON pointer through a decoded document.
func Lookup(payload map[string]any, pointer string) (map[string]any, error) {
	pointer = strings.TrimSpace(pointer)
	pointer = strings.TrimPrefix(pointer, "#")
	if pointer == "" || pointer == "/" {
		return payload, nil
	}

	var current any = payload
	for _, segment := range strings.Split(strings.TrimPrefix(pointer, "/"), "/") {
		key := unescapeJSONPointer(segment)
		node, ok := current.(map[string]any)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPointerNotFound, pointer)
		}
		current, ok = node[key]
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrPointerNotFound, pointer)
		}
	}

	node, ok := current.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("%w at %s", ErrNotObject, pointer)
	}
	return node, nil
}

func decodePayload(raw []byte) (map[string]any, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return nil, errors.New("jsonschema: document is empty")
	}

	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err == nil {
		return payload, nil
	}

	var node any
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("jsonschema: parse document: %w", err)
	}
	normalized, ok := normalizeYAML(node).(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return normalized, nil
}

// normalizeYAML converts yaml.v3 map[any]any leftovers (non-string keys) so
// the decoded tree matches what encoding/json produces.
func normalizeYAML(node any) any {
	switch v := node.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[key] = normalizeYAML(value)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for key, value := range v {
			out[fmt.Sprint(key)] = normalizeYAML(value)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for idx, value := range v {
			out[idx] = normalizeYAML(value)
		}
		return out
	default:
		return v
	}
}

func readType(raw any) schema.Type {
	switch v := raw.(type) {
	case string:
		return schema.Type(strings.TrimSpace(v))
	case []any:
		// ["string", "null"] style unions resolve to the first non-null type.
		for _, entry := range v {
			if str, ok := entry.(string); ok && str != string(schema.TypeNull) {
				return schema.Type(strings.TrimSpace(str))
			}
		}
	}
	return ""
}

func readString(payload map[string]any, key string) string {
	value, _ := payload[key].(string)
	return value
}

func readFloat(payload map[string]any, key string) *float64 {
	value, ok := toFloat(payload[key])
	if !ok {
		return nil
	}
	return &value
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return 0, false
		}
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return 0, false
	}
}

func isVendorExtension(key string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(key)), "x-")
}

func extractExtensions(payload map[string]any) map[string]any {
	var extensions map[string]any
	for _, key := range sortedKeys(payload) {
		if !isVendorExtension(key) {
			continue
		}
		if extensions == nil {
			extensions = make(map[string]any)
		}
		extensions[key] = payload[key]
	}
	return extensions
}

func unescapeJSONPointer(value string) string {
	replacer := strings.NewReplacer("~1", "/", "~0", "~")
	return replacer.Replace(value)
}

func sortedKeys(payload map[string]any) []string {
	keys := make([]string, 0, len(payload))
	for key := range payload {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
