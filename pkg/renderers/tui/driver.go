package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// InputConfig describes the prompt for one field. Drivers return Default for
// an empty answer, so leave it blank when an empty answer must stay empty.
type InputConfig struct {
	Message     string
	Default     string
	Help        string
	Suggestions []string
	Validator   func(string) error
}

// PromptDriver asks the questions. The renderer only talks to a driver, so
// sessions can be scripted in tests or served by another terminal library.
type PromptDriver interface {
	Input(ctx context.Context, cfg InputConfig) (string, error)
	Password(ctx context.Context, cfg InputConfig) (string, error)
	Info(ctx context.Context, msg string) error
}

// SurveyDriver prompts on the process terminal with survey. Info lines go to
// its writer.
type SurveyDriver struct {
	out io.Writer
}

var _ PromptDriver = (*SurveyDriver)(nil)

// NewSurveyDriver returns a driver printing info lines to out, or to stdout
// when out is nil.
func NewSurveyDriver(out io.Writer) *SurveyDriver {
	if out == nil {
		out = os.Stdout
	}
	return &SurveyDriver{out: out}
}

func (d *SurveyDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	prompt := &survey.Input{Message: cfg.Message, Help: cfg.Help, Default: cfg.Default}
	if len(cfg.Suggestions) > 0 {
		prompt.Suggest = suggester(cfg.Suggestions)
	}
	return ask(ctx, prompt, cfg.Validator)
}

// Password hides the answer; suggestions and defaults are never shown.
func (d *SurveyDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	return ask(ctx, &survey.Password{Message: cfg.Message, Help: cfg.Help}, cfg.Validator)
}

func (d *SurveyDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, msg)
	return err
}

func ask(ctx context.Context, prompt survey.Prompt, validate func(string) error) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	opts := []survey.AskOpt{survey.WithShowCursor(true)}
	if validate != nil {
		opts = append(opts, survey.WithValidator(func(ans any) error {
			value, _ := ans.(string)
			return validate(value)
		}))
	}

	var answer string
	if err := survey.AskOne(prompt, &answer, opts...); err != nil {
		if errors.Is(err, terminal.InterruptErr) {
			return "", ErrAborted
		}
		return "", err
	}
	return answer, nil
}

// suggester completes typed text from the field examples: prefix matches
// first, then examples containing the text. Nothing typed offers them all.
func suggester(values []string) func(string) []string {
	return func(typed string) []string {
		needle := strings.ToLower(strings.TrimSpace(typed))
		if needle == "" {
			return append([]string(nil), values...)
		}
		var prefixed, contained []string
		for _, value := range values {
			lower := strings.ToLower(value)
			switch {
			case strings.HasPrefix(lower, needle):
				prefixed = append(prefixed, value)
			case strings.Contains(lower, needle):
				contained = append(contained, value)
			}
		}
		return append(prefixed, contained...)
	}
}
