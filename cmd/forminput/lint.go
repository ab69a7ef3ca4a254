package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-forminput/pkg/input"
	"github.com/goliatone/go-forminput/pkg/openapi"
	"github.com/goliatone/go-forminput/pkg/schema"
	"github.com/goliatone/go-forminput/pkg/widgets"
)

var errLintViolations = errors.New("lint violations found")

type violation struct {
	file     string
	location string
	message  string
}

func newLintCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "lint <openapi files...>",
		Short: "Check component properties for input hints that cannot render",
		Long: `lint walks every component property of the given OpenAPI documents and
reports x-widget values that name no known input type, empty examples lists
and non-numeric examples or defaults on number and integer fields.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}

			var violations []violation
			for _, path := range args {
				linted, err := lintFile(ctx, path)
				if err != nil {
					return fmt.Errorf("lint %s: %w", path, err)
				}
				a.logger.Debug("document linted", zap.String("file", path), zap.Int("violations", len(linted)))
				violations = append(violations, linted...)
			}
			if len(violations) == 0 {
				return nil
			}

			sort.Slice(violations, func(i, j int) bool {
				if violations[i].file == violations[j].file {
					if violations[i].location == violations[j].location {
						return violations[i].message < violations[j].message
					}
					return violations[i].location < violations[j].location
				}
				return violations[i].file < violations[j].file
			})
			for _, v := range violations {
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s -> %s\n", v.file, v.location, v.message)
			}
			return fmt.Errorf("%w: %d", errLintViolations, len(violations))
		},
	}
}

func lintFile(ctx context.Context, path string) ([]violation, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	doc, err := openapi.Load(ctx, raw)
	if err != nil {
		return nil, err
	}

	var result []violation
	for _, name := range doc.ComponentNames() {
		properties, err := doc.Properties(name)
		if err != nil {
			return nil, err
		}
		for _, property := range properties {
			fragment, err := doc.Component(name, property)
			if err != nil {
				return nil, err
			}
			location := formatLocation([]string{"components", name, "properties." + property})
			for _, message := range lintFragment(fragment) {
				result = append(result, violation{file: path, location: location, message: message})
			}
		}
	}
	return result, nil
}

func lintFragment(fragment schema.Schema) []string {
	var messages []string

	if raw, ok := fragment.Extensions[widgets.WidgetExtensionKey]; ok {
		value, isString := raw.(string)
		switch {
		case !isString:
			messages = append(messages, fmt.Sprintf("%s must be a string (got %T)", widgets.WidgetExtensionKey, raw))
		case !input.WidgetType(strings.TrimSpace(value)).Known():
			messages = append(messages, fmt.Sprintf("%s %q is not a known input type", widgets.WidgetExtensionKey, value))
		}
	}

	if fragment.HasExamples && len(fragment.Examples) == 0 {
		messages = append(messages, "examples list is empty; no suggestions will render")
	}

	if fragment.IsNumeric() {
		for _, example := range fragment.Examples {
			if !isNumber(example) {
				messages = append(messages, fmt.Sprintf("example %q is not numeric", input.FormatValue(example)))
			}
		}
		if fragment.HasDefault && fragment.Default != nil && !isNumber(fragment.Default) {
			messages = append(messages, fmt.Sprintf("default %q is not numeric", input.FormatValue(fragment.Default)))
		}
	}
	return messages
}

func isNumber(value any) bool {
	switch value.(type) {
	case float64, float32, int, int64, int32, uint, uint64, uint32:
		return true
	default:
		return false
	}
}

func formatLocation(path []string) string {
	return strings.Join(path, " > ")
}
