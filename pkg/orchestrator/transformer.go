package orchestrator

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/render"
)

// Transformer mutates field props after the schema is loaded and before UI
// decorators run.
type Transformer interface {
	Transform(ctx context.Context, props *render.FieldProps) error
}

// TransformerFunc adapts plain functions to the Transformer interface.
type TransformerFunc func(ctx context.Context, props *render.FieldProps) error

// Transform executes the wrapped function when non-nil.
func (fn TransformerFunc) Transform(ctx context.Context, props *render.FieldProps) error {
	if fn == nil {
		return nil
	}
	return fn(ctx, props)
}

// PresetTransformer applies declarative per-field patches loaded from a JSON
// or YAML document keyed by field id:
//
//	fields:
//	  root_amount:
//	    label: Amount
//	    description: Total in EUR
//	    options:
//	      emptyValue: 0
//	      step: 0.01
type PresetTransformer struct {
	fields map[string]presetPatch
}

type presetDocument struct {
	Fields map[string]presetPatch `yaml:"fields"`
}

type presetPatch struct {
	Label       string         `yaml:"label"`
	Description string         `yaml:"description"`
	Placeholder string         `yaml:"placeholder"`
	Widget      string         `yaml:"widget"`
	ClassName   string         `yaml:"className"`
	Examples    []any          `yaml:"examples"`
	Options     *input.Options `yaml:"options"`
}

// NewPresetTransformer constructs a transformer from raw JSON or YAML bytes.
// Unknown keys are rejected.
func NewPresetTransformer(data []byte) (*PresetTransformer, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.New("preset transformer: document is empty")
	}
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	var document presetDocument
	if err := decoder.Decode(&document); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("preset transformer: document is empty")
		}
		return nil, fmt.Errorf("preset transformer: parse document: %w", err)
	}
	return &PresetTransformer{fields: document.Fields}, nil
}

// NewPresetTransformerFromFS loads a preset document from the provided
// filesystem path.
func NewPresetTransformerFromFS(fsys fs.FS, path string) (*PresetTransformer, error) {
	if fsys == nil {
		return nil, errors.New("preset transformer: filesystem is nil")
	}
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("preset transformer: path is required")
	}
	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("preset transformer: read %s: %w", path, err)
	}
	return NewPresetTransformer(data)
}

// Transform applies the patch registered for props.ID, if any. Patches
// replace non-empty values; options replace the caller's options wholesale.
func (t *PresetTransformer) Transform(ctx context.Context, props *render.FieldProps) error {
	if props == nil {
		return errors.New("preset transformer: field props are nil")
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if t == nil {
		return nil
	}
	patch, ok := t.fields[props.ID]
	if !ok {
		return nil
	}
	applyPatch(props, patch)
	return nil
}

func applyPatch(props *render.FieldProps, patch presetPatch) {
	if patch.Label != "" {
		props.Label = patch.Label
	}
	if patch.Placeholder != "" {
		props.Placeholder = patch.Placeholder
	}
	if patch.Widget != "" {
		props.Widget = input.WidgetType(strings.TrimSpace(patch.Widget))
	}
	if patch.ClassName != "" {
		props.ClassName = strings.TrimSpace(props.ClassName + " " + patch.ClassName)
	}

	if patch.Description != "" || patch.Examples != nil {
		fragment := props.Schema.Clone()
		if patch.Description != "" {
			fragment.Description = patch.Description
		}
		if patch.Examples != nil {
			fragment.Examples = append([]any(nil), patch.Examples...)
			fragment.HasExamples = true
		}
		props.Schema = fragment
	}
	if patch.Options != nil {
		props.Options = patch.Options.Clone()
	}
}
