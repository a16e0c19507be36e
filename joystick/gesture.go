package joystick

import "fmt"

// Gesture is an action that fires when a control becomes held.
type Gesture int

// List of valid Gesture values.
const (
	GesturePause Gesture = iota
	GestureRemap
	NumGestures
)

// the control that triggers each gesture
var gestureControls = [NumGestures]Control{
	GesturePause: ControlEscape,
	GestureRemap: ControlStart,
}

func (g Gesture) String() string {
	switch g {
	case GesturePause:
		return "pause"
	case GestureRemap:
		return "remap"
	}
	return fmt.Sprintf("Gesture(%d)", int(g))
}

// Control returns the control bound to the gesture.
func (g Gesture) Control() Control {
	if g < 0 || g >= NumGestures {
		return ControlNone
	}
	return gestureControls[g]
}

// HoldDetector latches gestures so that each fires once per continuous hold.
// The latch is cleared with Release once the control has been seen released.
//
// The zero value has no latched gestures.
type HoldDetector struct {
	latched [NumSlots][NumGestures]bool
}

// Check returns true if the gesture should fire. down is the current state of
// the gesture's control. A true result latches the gesture.
func (d *HoldDetector) Check(slot Slot, g Gesture, down bool) bool {
	if !down || d.Latched(slot, g) {
		return false
	}
	d.latched[slot][g] = true
	return true
}

// Latched is true while the gesture is waiting for its control to be
// released.
func (d *HoldDetector) Latched(slot Slot, g Gesture) bool {
	if slot < 0 || slot >= NumSlots || g < 0 || g >= NumGestures {
		// out of range gestures can never fire
		return true
	}
	return d.latched[slot][g]
}

// Release clears the latch for the gesture.
func (d *HoldDetector) Release(slot Slot, g Gesture) {
	if slot < 0 || slot >= NumSlots || g < 0 || g >= NumGestures {
		return
	}
	d.latched[slot][g] = false
}

// Reset clears every latch.
func (d *HoldDetector) Reset() {
	d.latched = [NumSlots][NumGestures]bool{}
}
