package joystick

// KeypadFrames is the minimum number of frames a keypad overlay lasts.
const KeypadFrames = 10

type overlayState struct {
	code   Functional
	frames int
	sticky bool
}

// Overlay forces a player's input to a single functional input for a while.
// It is used by the on-screen keypad: the selected key is reported for at
// least KeypadFrames frames and for as long as the button that selected it
// stays held.
//
// The zero value has no active overlays.
type Overlay struct {
	state [NumSlots]overlayState
}

// Set installs or refreshes the overlay for the slot.
func (o *Overlay) Set(slot Slot, f Functional) {
	if slot < 0 || slot >= NumSlots {
		return
	}
	o.state[slot] = overlayState{
		code:   f,
		frames: KeypadFrames,
		sticky: true,
	}
}

// Tick advances the overlay by one frame. The returned functional input
// replaces normal input resolution for the slot when ok is true.
//
// triggerHeld is whether the button that installed the overlay is still
// held. Once it has been seen released it is no longer consulted.
func (o *Overlay) Tick(slot Slot, triggerHeld bool) (f Functional, ok bool) {
	if slot < 0 || slot >= NumSlots {
		return None, false
	}

	s := &o.state[slot]
	if s.code == None {
		return None, false
	}

	s.frames--
	if s.sticky {
		s.sticky = triggerHeld
	}

	if s.frames <= 0 && !s.sticky {
		*s = overlayState{}
		return None, false
	}

	return s.code, true
}

// Active returns the pending functional input for the slot, if any.
func (o *Overlay) Active(slot Slot) (Functional, bool) {
	if slot < 0 || slot >= NumSlots {
		return None, false
	}
	return o.state[slot].code, o.state[slot].code != None
}

// Reset clears all overlays.
func (o *Overlay) Reset() {
	o.state = [NumSlots]overlayState{}
}
