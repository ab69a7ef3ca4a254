package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/openapi"
	"github.com/goliatone/go-forminput/pkg/orchestrator"
	"github.com/goliatone/go-forminput/pkg/render"
	"github.com/goliatone/go-forminput/pkg/renderers/vanilla"
)

// sourceFlags selects the schema fragment and the field settings shared by
// resolve and render.
type sourceFlags struct {
	schemaPath  string
	pointer     string
	openapiPath string
	component   string
	operation   string
	property    string
	id          string
	widget      string
	label       string
	value       string
	uiDir       string
	presetPath  string
}

func (f *sourceFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()
	flags.StringVar(&f.schemaPath, "schema", "", "JSON or YAML schema fragment file")
	flags.StringVar(&f.pointer, "pointer", "", "JSON pointer selecting a nested fragment in --schema")
	flags.StringVar(&f.openapiPath, "openapi", "", "OpenAPI document file")
	flags.StringVar(&f.component, "component", "", "component schema name in --openapi")
	flags.StringVar(&f.operation, "operation", "", "operation id (or method:path) whose request body holds the field")
	flags.StringVar(&f.property, "property", "", "property name within the component or request body")
	flags.StringVar(&f.id, "id", "", "field id (defaults to root_<property>)")
	flags.StringVar(&f.widget, "widget", "", "declared widget type")
	flags.StringVar(&f.label, "label", "", "field label")
	flags.StringVar(&f.value, "value", "", "current field value")
	flags.StringVar(&f.uiDir, "ui", "", "directory of UI schema documents")
	flags.StringVar(&f.presetPath, "preset", "", "preset document applied before UI schema documents")
}

func (f *sourceFlags) request(ctx context.Context) (orchestrator.Request, error) {
	req := orchestrator.Request{
		Component:   f.component,
		OperationID: f.operation,
		Property:    f.property,
		Pointer:     f.pointer,
		Field: render.FieldProps{
			ID:     strings.TrimSpace(f.id),
			Label:  f.label,
			Widget: input.WidgetType(strings.TrimSpace(f.widget)),
		},
	}
	if f.value != "" {
		req.Field.Value = f.value
	}

	switch {
	case f.openapiPath != "":
		raw, err := os.ReadFile(f.openapiPath)
		if err != nil {
			return orchestrator.Request{}, fmt.Errorf("read openapi document: %w", err)
		}
		doc, err := openapi.Load(ctx, raw)
		if err != nil {
			return orchestrator.Request{}, err
		}
		req.Document = doc
	case f.schemaPath != "":
		raw, err := os.ReadFile(f.schemaPath)
		if err != nil {
			return orchestrator.Request{}, fmt.Errorf("read schema: %w", err)
		}
		req.Fragment = raw
	default:
		return orchestrator.Request{}, errors.New("one of --schema or --openapi is required")
	}
	return req, nil
}

func (f *sourceFlags) options(logger *zap.Logger) ([]orchestrator.Option, error) {
	options := []orchestrator.Option{orchestrator.WithLogger(logger)}
	if f.uiDir != "" {
		options = append(options, orchestrator.WithUISchemaFS(os.DirFS(f.uiDir)))
	}
	if f.presetPath != "" {
		raw, err := os.ReadFile(f.presetPath)
		if err != nil {
			return nil, fmt.Errorf("read preset: %w", err)
		}
		preset, err := orchestrator.NewPresetTransformer(raw)
		if err != nil {
			return nil, err
		}
		options = append(options, orchestrator.WithSchemaTransformer(preset))
	}
	return options, nil
}

func newResolveCmd(a *app) *cobra.Command {
	var flags sourceFlags

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Print the resolved input attributes and example list as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			req, err := flags.request(ctx)
			if err != nil {
				return err
			}
			options, err := flags.options(a.logger)
			if err != nil {
				return err
			}

			resolution, err := orchestrator.New(options...).Resolve(ctx, req)
			if err != nil {
				return err
			}
			a.logger.Debug("field resolved",
				zap.String("field", resolution.FieldID),
				zap.String("type", string(resolution.Attributes.Type)),
				zap.Int("examples", len(resolution.Examples)),
			)

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(resolution)
		},
	}
	flags.register(cmd)
	return cmd
}

func newRenderCmd(a *app) *cobra.Command {
	var (
		flags    sourceFlags
		renderer string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render the field with the vanilla (HTML) or tui (terminal prompt) renderer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			req, err := flags.request(ctx)
			if err != nil {
				return err
			}
			req.Renderer = renderer
			options, err := flags.options(a.logger)
			if err != nil {
				return err
			}

			out, err := orchestrator.New(options...).Generate(ctx, req)
			if err != nil {
				return err
			}

			if output != "" {
				if err := os.WriteFile(output, out, 0o644); err != nil {
					return fmt.Errorf("write output: %w", err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "Field written to %s\n", output)
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return err
		},
	}
	flags.register(cmd)
	cmd.Flags().StringVar(&renderer, "renderer", vanilla.Name, "renderer to use (vanilla or tui)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")
	return cmd
}
