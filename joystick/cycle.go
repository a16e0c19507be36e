package joystick

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrClosed is returned by a Cycle after Close has been called.
var ErrClosed = errors.New("joystick: input cycle closed")

// Engine receives the combined input. SetInput is called at most once per
// Tick.
type Engine interface {
	SetInput(in CombinedInput)
}

// Config for NewCycle.
type Config struct {
	Scheme Scheme

	// Mapping of face buttons to functional inputs. The scheme's default
	// mapping is used if the mapping is empty.
	Mapping Mapping

	// Fired is called during the Tick in which a gesture fires. No input is
	// sent to the engine for that frame.
	Fired func(g Gesture, slot Slot)

	// Released is called once the control that fired the gesture has been
	// released. It is called from Tick or Pump.
	Released func(g Gesture, slot Slot)
}

// a fired gesture waiting for its control to be released
type release struct {
	slot    Slot
	gesture Gesture
	done    <-chan struct{}
}

// Cycle is the per-frame input pipeline. It should be ticked exactly once
// per frame, immediately before the engine steps.
type Cycle struct {
	device  Device
	engine  Engine
	scheme  Scheme
	encoder Encoder
	mapping Mapping

	fired    func(Gesture, Slot)
	released func(Gesture, Slot)

	overlay  Overlay
	gestures HoldDetector
	releases []release

	closed bool
}

// NewCycle is the preferred method of initialisation for the Cycle type.
func NewCycle(device Device, engine Engine, cfg Config) *Cycle {
	c := &Cycle{
		device:   device,
		engine:   engine,
		scheme:   cfg.Scheme,
		encoder:  cfg.Scheme.Encoder(),
		mapping:  cfg.Mapping,
		fired:    cfg.Fired,
		released: cfg.Released,
	}
	if len(c.mapping) == 0 {
		c.mapping = c.encoder.DefaultMapping()
	}
	return c
}

// Scheme returns the control scheme the cycle encodes for.
func (c *Cycle) Scheme() Scheme {
	return c.scheme
}

// Pump polls the device and completes any gestures whose controls have been
// released. It does not send anything to the engine and is suitable for
// calling in place of Tick while emulation is paused.
func (c *Cycle) Pump() error {
	if c.closed {
		return ErrClosed
	}
	if err := c.device.Poll(); err != nil {
		return fmt.Errorf("joystick: polling devices: %w", err)
	}
	c.settle()
	return nil
}

// Tick runs one frame of input. Errors from the device are returned unhandled.
func (c *Cycle) Tick() error {
	if err := c.Pump(); err != nil {
		return err
	}

	var players [NumSlots]uint32
	var sticks Sticks

	for slot := Player0; int(slot) < c.encoder.Players(); slot++ {
		if f, ok := c.overlay.Tick(slot, c.keypadTrigger(slot)); ok {
			players[slot] = f.Code()
			continue
		}

		if c.checkGestures(slot) {
			return nil
		}

		players[slot] = c.resolve(slot)
		sticks[slot] = c.sample(slot)
	}

	c.engine.SetInput(c.encoder.Encode(players, sticks))
	return nil
}

// OnKeypad installs a keypad overlay for the slot. If originating is not
// ControlNone a release is faked for that control so that the key that
// selected the keypad value doesn't repeat.
func (c *Cycle) OnKeypad(slot Slot, f Functional, originating Control) {
	if c.closed {
		return
	}
	c.overlay.Set(slot, f)
	slog.Debug("keypad overlay", "player", int(slot), "input", f)
	if originating != ControlNone {
		c.device.AddFakeReleaseEvent(originating)
	}
}

// Close ends the session. Gestures waiting for release are abandoned and
// their Released continuation is never called.
func (c *Cycle) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if len(c.releases) > 0 {
		slog.Debug("abandoning gesture releases", "count", len(c.releases))
	}
	c.releases = nil
	c.gestures.Reset()
	c.overlay.Reset()
}

func (c *Cycle) down(slot Slot, control Control) bool {
	return c.device.IsControlDown(slot, control, true)
}

// the keyboard can only hold an overlay for the first player
func (c *Cycle) keypadTrigger(slot Slot) bool {
	if c.down(slot, ControlA) {
		return true
	}
	return slot == Player0 && (c.down(slot, ControlSpace) || c.down(slot, ControlStart))
}

// checkGestures returns true if a gesture fired, in which case the frame
// must be abandoned.
func (c *Cycle) checkGestures(slot Slot) bool {
	for g := Gesture(0); g < NumGestures; g++ {
		control := g.Control()
		if !c.gestures.Check(slot, g, c.down(slot, control)) {
			continue
		}

		slog.Debug("gesture fired", "gesture", g, "player", int(slot))
		c.releases = append(c.releases, release{
			slot:    slot,
			gesture: g,
			done:    c.device.WaitUntilReleased(slot, control),
		})
		if c.fired != nil {
			c.fired(g, slot)
		}
		return true
	}
	return false
}

// settle unlatches gestures whose release has been seen and runs their
// continuations.
func (c *Cycle) settle() {
	if len(c.releases) == 0 {
		return
	}

	var done []release
	pending := c.releases[:0]
	for _, r := range c.releases {
		select {
		case <-r.done:
			done = append(done, r)
		default:
			pending = append(pending, r)
		}
	}
	c.releases = pending

	for _, r := range done {
		if c.closed {
			return
		}
		c.gestures.Release(r.slot, r.gesture)
		slog.Debug("gesture released", "gesture", r.gesture, "player", int(r.slot))
		if c.released != nil {
			c.released(r.gesture, r.slot)
		}
	}
}

// resolve produces the joystick value for a player from directions, mapped
// buttons and, for the first player, the keyboard's number keys.
func (c *Cycle) resolve(slot Slot) uint32 {
	analog := c.encoder.AnalogAsDigital()

	var v uint32

	if c.device.IsControlDown(slot, ControlUp, analog) {
		v |= Up
	} else if c.device.IsControlDown(slot, ControlDown, analog) {
		v |= Down
	}

	if c.device.IsControlDown(slot, ControlRight, analog) {
		v |= Right
	} else if c.device.IsControlDown(slot, ControlLeft, analog) {
		v |= Left
	}

	// fire bits accumulate but only one button can claim the keypad nibble
	var keypad Functional
	for b := ButtonA; b < NumButtons; b++ {
		if !c.down(slot, b.Control()) {
			continue
		}
		f, ok := c.mapping[b]
		if !ok || f == None {
			continue
		}
		if f.Code()&KeypadMask == 0 {
			v |= f.Code()
		} else if keypad == None {
			keypad = f
		}
	}

	switch {
	case keypad != None && !keypad.IsDigit():
		// coloured buttons are not digits and can be pressed alongside the
		// stick and fire buttons
		v |= keypad.Code()
	case v&directionFireMask != 0:
	case keypad != None:
		v |= keypad.Code()
	case slot == Player0:
		v |= c.keyboardDigit()
	}

	return v
}

func (c *Cycle) keyboardDigit() uint32 {
	for _, d := range digitControls {
		if c.down(Player0, d.control) {
			return d.input.Code()
		}
	}
	return 0
}

func (c *Cycle) sample(slot Slot) [2]Stick {
	var s [2]Stick
	for i := range s {
		s[i].X = c.device.AxisValue(slot, i, true)
		s[i].Y = c.device.AxisValue(slot, i, false)
	}
	return s
}
