package input

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"github.com/goliatone/go-forminput/pkg/schema"
)

const (
	examplesSuffix    = "__examples"
	errorSuffix       = "__error"
	descriptionSuffix = "__description"
	helpSuffix        = "__help"
)

// ExamplesID returns the list identifier tying a control to its suggestion
// list. It is stable for a given field id.
func ExamplesID(id string) string {
	return id + examplesSuffix
}

// AriaDescribedBy lists the ids of the elements describing the control, in
// the order assistive technology should read them.
func AriaDescribedBy(id string, includeExamples bool) []string {
	ids := []string{id + errorSuffix, id + descriptionSuffix, id + helpSuffix}
	if includeExamples {
		ids = append(ids, ExamplesID(id))
	}
	return ids
}

// Example is a single suggestion. Key is the display form of Value and is
// unique within a list.
type Example struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// ExampleList is the ordered suggestion list for a field. No two entries are
// equal or share a display key.
type ExampleList []Example

// Values returns the raw example values in order.
func (l ExampleList) Values() []any {
	if len(l) == 0 {
		return nil
	}
	out := make([]any, len(l))
	for idx, entry := range l {
		out[idx] = entry.Value
	}
	return out
}

// Keys returns the display keys in order.
func (l ExampleList) Keys() []string {
	if len(l) == 0 {
		return nil
	}
	out := make([]string, len(l))
	for idx, entry := range l {
		out[idx] = entry.Key
	}
	return out
}

// BuildExamples derives the suggestion list from s.Examples, appending
// s.Default when it is defined and not already listed. The boolean is false
// when the schema has no examples sequence or the sequence is empty; a
// default on its own never produces a list.
func BuildExamples(s schema.Schema) (ExampleList, bool) {
	if !s.HasExamples || len(s.Examples) == 0 {
		return nil, false
	}

	list := make(ExampleList, 0, len(s.Examples)+1)
	for _, value := range s.Examples {
		if containsValue(list, value) {
			continue
		}
		list = append(list, Example{Key: FormatValue(value), Value: value})
	}

	if s.HasDefault && s.Default != nil && !containsValue(list, s.Default) {
		list = append(list, Example{Key: FormatValue(s.Default), Value: s.Default})
	}
	return list, true
}

// containsValue reports whether value, or another value with the same display
// form, is already listed.
func containsValue(list ExampleList, value any) bool {
	key := FormatValue(value)
	for _, entry := range list {
		if entry.Key == key || equalValues(entry.Value, value) {
			return true
		}
	}
	return false
}

// equalValues compares values the way decoded JSON would: numbers compare by
// magnitude regardless of their Go type, everything else by deep equality.
func equalValues(a, b any) bool {
	if af, ok := toFloat(a); ok {
		bf, ok := toFloat(b)
		return ok && af == bf
	}
	return reflect.DeepEqual(a, b)
}

// FormatValue renders a schema value as the string a native control shows.
func FormatValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case bool:
		return strconv.FormatBool(v)
	case fmt.Stringer:
		return v.String()
	}
	if f, ok := toFloat(value); ok {
		return strconv.FormatFloat(f, 'f', -1, 64)
	}
	return fmt.Sprint(value)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	default:
		return math.NaN(), false
	}
}
