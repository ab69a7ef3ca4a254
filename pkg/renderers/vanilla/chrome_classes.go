package vanilla

// ChromeClass is a typed identifier for semantic chrome CSS classes.
type ChromeClass string

const (
	ClassField       ChromeClass = "forminput-field"
	ClassFieldError  ChromeClass = "forminput-field--error"
	ClassLabel       ChromeClass = "forminput-label"
	ClassControl     ChromeClass = "forminput-control"
	ClassAdornment   ChromeClass = "forminput-adornment"
	ClassInput       ChromeClass = "forminput-input"
	ClassDescription ChromeClass = "forminput-description"
	ClassErrors      ChromeClass = "forminput-errors"
	// ClassMonospace is applied to number inputs so digits line up.
	ClassMonospace ChromeClass = "font-mono"
)

// Theme tokens that append classes to the built-in chrome.
const (
	TokenFieldClass = "forms.input.field"
	TokenInputClass = "forms.input.control"
)
