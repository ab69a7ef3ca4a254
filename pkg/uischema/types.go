package uischema

import (
	"strings"

	"github.com/goliatone/go-forminput/pkg/input"
)

// RootID is the prefix of generated field ids.
const RootID = "root"

// Store keeps the parsed field configurations keyed by field id. It is safe
// for concurrent readers when treated as immutable after construction.
type Store struct {
	fields map[string]FieldConfig
}

// FieldConfig customises how a single field is presented.
type FieldConfig struct {
	Widget         string        `json:"widget,omitempty" yaml:"widget,omitempty"`
	Label          string        `json:"label,omitempty" yaml:"label,omitempty"`
	LabelKey       string        `json:"labelKey,omitempty" yaml:"labelKey,omitempty"`
	HideLabel      bool          `json:"hideLabel,omitempty" yaml:"hideLabel,omitempty"`
	Placeholder    string        `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	PlaceholderKey string        `json:"placeholderKey,omitempty" yaml:"placeholderKey,omitempty"`
	Required       bool          `json:"required,omitempty" yaml:"required,omitempty"`
	Readonly       bool          `json:"readonly,omitempty" yaml:"readonly,omitempty"`
	Disabled       bool          `json:"disabled,omitempty" yaml:"disabled,omitempty"`
	Autofocus      bool          `json:"autofocus,omitempty" yaml:"autofocus,omitempty"`
	CSSClass       string        `json:"cssClass,omitempty" yaml:"cssClass,omitempty"`
	Options        input.Options `json:"options,omitempty" yaml:"options,omitempty"`
	OriginalPath   string        `json:"-" yaml:"-"`
}

// FieldID converts a UI document key into a field id. Dotted and bracketed
// paths become underscore-separated ids under RootID ("address.zip" and
// "address[zip]" both map to "root_address_zip"); keys that already start
// with RootID are kept.
func FieldID(path string) string {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return ""
	}
	replacer := strings.NewReplacer(
		"[", "_",
		"]", "",
		".", "_",
	)
	normalised := replacer.Replace(trimmed)
	for strings.Contains(normalised, "__") {
		normalised = strings.ReplaceAll(normalised, "__", "_")
	}
	normalised = strings.Trim(normalised, "_")
	if normalised == "" {
		return ""
	}
	if normalised == RootID || strings.HasPrefix(normalised, RootID+"_") {
		return normalised
	}
	return RootID + "_" + normalised
}
