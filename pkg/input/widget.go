package input

import "strings"

// WidgetType names the native input flavour a caller asks for. It is supplied
// by the caller, never derived by the resolver; pkg/widgets offers a default
// selection when a caller has none.
type WidgetType string

const (
	WidgetText          WidgetType = "text"
	WidgetNumber        WidgetType = "number"
	WidgetDate          WidgetType = "date"
	WidgetDateTimeLocal WidgetType = "datetime-local"
	WidgetFile          WidgetType = "file"
	WidgetTime          WidgetType = "time"
	WidgetEmail         WidgetType = "email"
	WidgetPassword      WidgetType = "password"
	WidgetURL           WidgetType = "url"
	WidgetSearch        WidgetType = "search"
	WidgetTel           WidgetType = "tel"
	WidgetColor         WidgetType = "color"
	WidgetRange         WidgetType = "range"
	WidgetMonth         WidgetType = "month"
	WidgetWeek          WidgetType = "week"
	WidgetHidden        WidgetType = "hidden"
)

// shrinkLabelTypes lists native types whose rendering already shows
// placeholder-like content that collides with a floating label.
var shrinkLabelTypes = map[WidgetType]struct{}{
	WidgetDate:          {},
	WidgetDateTimeLocal: {},
	WidgetFile:          {},
	WidgetTime:          {},
}

// ShrinksLabel reports whether w belongs to the fixed label-shrink set.
func ShrinksLabel(w WidgetType) bool {
	_, ok := shrinkLabelTypes[w.normalized()]
	return ok
}

// Known reports whether w is one of the widget types declared above.
func (w WidgetType) Known() bool {
	switch w.normalized() {
	case WidgetText, WidgetNumber, WidgetDate, WidgetDateTimeLocal, WidgetFile,
		WidgetTime, WidgetEmail, WidgetPassword, WidgetURL, WidgetSearch,
		WidgetTel, WidgetColor, WidgetRange, WidgetMonth, WidgetWeek, WidgetHidden:
		return true
	default:
		return false
	}
}

func (w WidgetType) normalized() WidgetType {
	return WidgetType(strings.ToLower(strings.TrimSpace(string(w))))
}
