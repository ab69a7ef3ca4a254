package render

import (
	"errors"
	"strings"
)

// ErrMissingTranslator is passed to MissingTranslationHandler when a key is
// present but no Translator was configured.
var ErrMissingTranslator = errors.New("render: translator not configured")

// Translator resolves a message key for a locale.
type Translator interface {
	Translate(locale, key string, args ...any) (string, error)
}

// TranslatorFunc adapts a function into a Translator.
type TranslatorFunc func(locale, key string, args ...any) (string, error)

// Translate implements Translator.
func (fn TranslatorFunc) Translate(locale, key string, args ...any) (string, error) {
	return fn(locale, key, args...)
}

// MissingTranslationHandler decides what to show when a key cannot be
// translated. err is nil when the translator returned an empty string.
type MissingTranslationHandler func(locale, key, fallback string, err error) string

// Localize returns a copy of props with LabelKey and PlaceholderKey replaced
// by their translations. Failed lookups fall back to onMissing, then to the
// plain label/placeholder, then to the key itself.
func Localize(props FieldProps, t Translator, onMissing MissingTranslationHandler) FieldProps {
	props.Label = translate(props.Locale, props.LabelKey, props.Label, t, onMissing)
	props.Placeholder = translate(props.Locale, props.PlaceholderKey, props.Placeholder, t, onMissing)
	return props
}

func translate(locale, key, fallback string, t Translator, onMissing MissingTranslationHandler) string {
	key = strings.TrimSpace(key)
	if key == "" {
		return fallback
	}

	var err error
	if t == nil {
		err = ErrMissingTranslator
	} else {
		var result string
		result, err = t.Translate(locale, key)
		if err == nil && strings.TrimSpace(result) != "" {
			return result
		}
	}

	if onMissing != nil {
		return onMissing(locale, key, fallback, err)
	}
	if strings.TrimSpace(fallback) != "" {
		return fallback
	}
	return key
}
