package core

// Button identifies one of the logical inputs of the device,
// abstracted from the physical pin or key that drives it.
type Button int

const (
	ButtonLeft    Button = iota // Move paddle left
	ButtonRight                 // Move paddle right
	ButtonConfirm               // Start / pause / resume

	ButtonCount
)

// Buttons lists every logical input in sampling order.
var Buttons = [ButtonCount]Button{ButtonLeft, ButtonRight, ButtonConfirm}

// String returns a human-readable name for the button.
func (b Button) String() string {
	switch b {
	case ButtonLeft:
		return "left"
	case ButtonRight:
		return "right"
	case ButtonConfirm:
		return "confirm"
	default:
		return "unknown"
	}
}

// ParseButton is the inverse of String.
func ParseButton(s string) (Button, bool) {
	for _, b := range Buttons {
		if b.String() == s {
			return b, true
		}
	}
	return 0, false
}
