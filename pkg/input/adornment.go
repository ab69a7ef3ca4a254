package input

// AdornmentKind selects the decorative indicator shown next to the control.
type AdornmentKind string

const (
	AdornmentNumber AdornmentKind = "number"
	AdornmentString AdornmentKind = "string"
)

// AdornmentFor maps a resolved native type to its adornment. Every type other
// than number falls through to the string adornment, including types this
// package has never heard of.
func AdornmentFor(nativeType WidgetType) AdornmentKind {
	switch nativeType.normalized() {
	case WidgetNumber:
		return AdornmentNumber
	default:
		return AdornmentString
	}
}
