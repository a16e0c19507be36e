package joystick

// Slot identifies one of the two logical controllers.
type Slot int

// List of valid Slot values.
const (
	Player0 Slot = iota
	Player1
	NumSlots
)

// Control is a physical-ish control reported by a Device. The Key* controls
// are keyboard-only and are only ever reported for Player0.
type Control int

// List of valid Control values. ControlNone is used where a control is
// optional.
const (
	ControlNone Control = iota
	ControlUp
	ControlDown
	ControlLeft
	ControlRight
	ControlA
	ControlB
	ControlX
	ControlY
	ControlLB
	ControlRB
	ControlLT
	ControlRT
	ControlStart
	ControlEscape

	ControlSpace
	ControlDigit0
	ControlDigit1
	ControlDigit2
	ControlDigit3
	ControlDigit4
	ControlDigit5
	ControlDigit6
	ControlDigit7
	ControlDigit8
	ControlDigit9
	ControlMinus
	ControlEqual

	NumControls
)

// Device is the input layer for both player slots. Implementations merge
// whatever physical sources back each slot (a gamepad, the keyboard).
type Device interface {
	// Poll samples the physical devices. It is called once at the start of
	// every frame.
	Poll() error

	// IsControlDown reports the state of control as of the last Poll. When
	// analogAsDigital is true the direction controls also respond to the
	// analog stick.
	IsControlDown(slot Slot, control Control, analogAsDigital bool) bool

	// AxisValue returns the position of an analog stick in the range -1 to
	// 1. Primary selects the horizontal axis, otherwise the vertical.
	AxisValue(slot Slot, stick int, primary bool) float64

	// WaitUntilReleased returns a channel that is closed during the first
	// Poll that sees control released.
	WaitUntilReleased(slot Slot, control Control) <-chan struct{}

	// AddFakeReleaseEvent makes control read as released until it is
	// physically released and pressed again.
	AddFakeReleaseEvent(control Control)
}

// keyboard digit keys in the order they are checked
var digitControls = [...]struct {
	control Control
	input   Functional
}{
	{ControlDigit0, Key0},
	{ControlDigit1, Key1},
	{ControlDigit2, Key2},
	{ControlDigit3, Key3},
	{ControlDigit4, Key4},
	{ControlDigit5, Key5},
	{ControlDigit6, Key6},
	{ControlDigit7, Key7},
	{ControlDigit8, Key8},
	{ControlDigit9, Key9},
	{ControlMinus, KeyStar},
	{ControlEqual, KeyPound},
}
