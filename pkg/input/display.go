package input

import "math"

// DisplayValue converts the current field value into the string the control
// shows. Empty values (nil, "", false, NaN) render blank; numeric zero stays
// visible.
func DisplayValue(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case bool:
		if !v {
			return ""
		}
		return "true"
	}
	if f, ok := toFloat(value); ok && math.IsNaN(f) {
		return ""
	}
	return FormatValue(value)
}

// LabelValue returns the label to render, or "" when the label is hidden.
func LabelValue(label string, hideLabel bool) string {
	if hideLabel {
		return ""
	}
	return label
}
