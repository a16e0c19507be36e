package main

import (
	"log/slog"

	"github.com/MatusOllah/colem-go/joystick"
	"github.com/hajimehoshi/ebiten/v2"
	input "github.com/quasilyte/ebitengine-input"
)

const (
	ActionUp     = input.Action(joystick.ControlUp)
	ActionDown   = input.Action(joystick.ControlDown)
	ActionLeft   = input.Action(joystick.ControlLeft)
	ActionRight  = input.Action(joystick.ControlRight)
	ActionA      = input.Action(joystick.ControlA)
	ActionB      = input.Action(joystick.ControlB)
	ActionX      = input.Action(joystick.ControlX)
	ActionY      = input.Action(joystick.ControlY)
	ActionLB     = input.Action(joystick.ControlLB)
	ActionRB     = input.Action(joystick.ControlRB)
	ActionLT     = input.Action(joystick.ControlLT)
	ActionRT     = input.Action(joystick.ControlRT)
	ActionStart  = input.Action(joystick.ControlStart)
	ActionEscape = input.Action(joystick.ControlEscape)
)

// the first player gets the keyboard as well as the first gamepad
var keymaps = [joystick.NumSlots]input.Keymap{
	{
		ActionUp:     {input.KeyUp, input.KeyGamepadUp},
		ActionDown:   {input.KeyDown, input.KeyGamepadDown},
		ActionLeft:   {input.KeyLeft, input.KeyGamepadLeft},
		ActionRight:  {input.KeyRight, input.KeyGamepadRight},
		ActionA:      {input.KeyZ, input.KeyGamepadA},
		ActionB:      {input.KeyX, input.KeyGamepadB},
		ActionX:      {input.KeyA, input.KeyGamepadX},
		ActionY:      {input.KeyS, input.KeyGamepadY},
		ActionLB:     {input.KeyW, input.KeyGamepadL1},
		ActionRB:     {input.KeyE, input.KeyGamepadR1},
		ActionLT:     {input.KeyQ, input.KeyGamepadL2},
		ActionRT:     {input.KeyR, input.KeyGamepadR2},
		ActionStart:  {input.KeyEnter, input.KeyGamepadStart},
		ActionEscape: {input.KeyEscape, input.KeyGamepadHome},
	},
	{
		ActionUp:     {input.KeyGamepadUp},
		ActionDown:   {input.KeyGamepadDown},
		ActionLeft:   {input.KeyGamepadLeft},
		ActionRight:  {input.KeyGamepadRight},
		ActionA:      {input.KeyGamepadA},
		ActionB:      {input.KeyGamepadB},
		ActionX:      {input.KeyGamepadX},
		ActionY:      {input.KeyGamepadY},
		ActionLB:     {input.KeyGamepadL1},
		ActionRB:     {input.KeyGamepadR1},
		ActionLT:     {input.KeyGamepadL2},
		ActionRT:     {input.KeyGamepadR2},
		ActionStart:  {input.KeyGamepadStart},
		ActionEscape: {input.KeyGamepadHome},
	},
}

// keyboard-only controls, read directly from ebiten
var directKeys = map[joystick.Control]ebiten.Key{
	joystick.ControlSpace:  ebiten.KeySpace,
	joystick.ControlDigit0: ebiten.KeyDigit0,
	joystick.ControlDigit1: ebiten.KeyDigit1,
	joystick.ControlDigit2: ebiten.KeyDigit2,
	joystick.ControlDigit3: ebiten.KeyDigit3,
	joystick.ControlDigit4: ebiten.KeyDigit4,
	joystick.ControlDigit5: ebiten.KeyDigit5,
	joystick.ControlDigit6: ebiten.KeyDigit6,
	joystick.ControlDigit7: ebiten.KeyDigit7,
	joystick.ControlDigit8: ebiten.KeyDigit8,
	joystick.ControlDigit9: ebiten.KeyDigit9,
	joystick.ControlMinus:  ebiten.KeyMinus,
	joystick.ControlEqual:  ebiten.KeyEqual,
}

// how far a stick has to be pushed to count as a direction
const stickThreshold = 0.5

type releaseWait struct {
	slot    joystick.Slot
	control joystick.Control
	done    chan struct{}
}

// Device implements joystick.Device with ebitengine-input handlers, one per
// player, and the raw ebiten gamepad API for the analog sticks.
type Device struct {
	sys      input.System
	handlers [joystick.NumSlots]*input.Handler

	gamepads []ebiten.GamepadID

	// controls with a faked release, until they are physically released
	suppressed map[joystick.Control]bool

	waits []releaseWait
}

func NewDevice() *Device {
	d := &Device{
		suppressed: make(map[joystick.Control]bool),
	}
	d.sys.Init(input.SystemConfig{
		DevicesEnabled: input.AnyDevice,
	})
	for i := range d.handlers {
		d.handlers[i] = d.sys.NewHandler(uint8(i), keymaps[i])
	}
	return d
}

func (d *Device) Poll() error {
	d.sys.Update()

	n := len(d.gamepads)
	d.gamepads = ebiten.AppendGamepadIDs(d.gamepads[:0])
	if len(d.gamepads) != n {
		for i, id := range d.gamepads {
			slog.Info("gamepad", "player", i, "name", ebiten.GamepadName(id), "standard", ebiten.IsStandardGamepadLayoutAvailable(id))
		}
		if len(d.gamepads) < n {
			slog.Info("gamepad disconnected", "connected", len(d.gamepads))
		}
	}

	for c := range d.suppressed {
		if !d.rawDown(joystick.Player0, c, true) {
			delete(d.suppressed, c)
		}
	}

	if len(d.waits) > 0 {
		pending := d.waits[:0]
		for _, w := range d.waits {
			if d.IsControlDown(w.slot, w.control, true) {
				pending = append(pending, w)
				continue
			}
			close(w.done)
		}
		d.waits = pending
	}

	return nil
}

func (d *Device) IsControlDown(slot joystick.Slot, control joystick.Control, analogAsDigital bool) bool {
	if slot == joystick.Player0 && d.suppressed[control] {
		return false
	}
	return d.rawDown(slot, control, analogAsDigital)
}

func (d *Device) rawDown(slot joystick.Slot, control joystick.Control, analogAsDigital bool) bool {
	if slot < 0 || slot >= joystick.NumSlots {
		return false
	}

	if k, ok := directKeys[control]; ok {
		return slot == joystick.Player0 && ebiten.IsKeyPressed(k)
	}

	if d.handlers[slot].ActionIsPressed(input.Action(control)) {
		return true
	}
	if !analogAsDigital {
		return false
	}

	switch control {
	case joystick.ControlUp:
		return d.AxisValue(slot, 0, false) <= -stickThreshold
	case joystick.ControlDown:
		return d.AxisValue(slot, 0, false) >= stickThreshold
	case joystick.ControlLeft:
		return d.AxisValue(slot, 0, true) <= -stickThreshold
	case joystick.ControlRight:
		return d.AxisValue(slot, 0, true) >= stickThreshold
	}
	return false
}

func (d *Device) AxisValue(slot joystick.Slot, stick int, primary bool) float64 {
	if slot < 0 || int(slot) >= len(d.gamepads) || stick < 0 || stick > 1 {
		return 0
	}
	id := d.gamepads[slot]

	// TODO: read raw axes for gamepads without an SDL mapping
	if !ebiten.IsStandardGamepadLayoutAvailable(id) {
		return 0
	}

	axis := ebiten.StandardGamepadAxisLeftStickHorizontal
	switch {
	case stick == 0 && !primary:
		axis = ebiten.StandardGamepadAxisLeftStickVertical
	case stick == 1 && primary:
		axis = ebiten.StandardGamepadAxisRightStickHorizontal
	case stick == 1 && !primary:
		axis = ebiten.StandardGamepadAxisRightStickVertical
	}
	return ebiten.StandardGamepadAxisValue(id, axis)
}

func (d *Device) WaitUntilReleased(slot joystick.Slot, control joystick.Control) <-chan struct{} {
	w := releaseWait{
		slot:    slot,
		control: control,
		done:    make(chan struct{}),
	}
	d.waits = append(d.waits, w)
	return w.done
}

func (d *Device) AddFakeReleaseEvent(control joystick.Control) {
	d.suppressed[control] = true
}
