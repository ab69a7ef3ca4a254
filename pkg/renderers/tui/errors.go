package tui

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("tui: aborted")
	// ErrRequired is reported by the prompt validator when a required field is
	// left empty.
	ErrRequired = errors.New("tui: value required")
)
