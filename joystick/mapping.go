package joystick

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Button is a face button of a modern gamepad.
type Button int

// List of valid Button values, in the order they are checked each frame.
const (
	ButtonA Button = iota
	ButtonB
	ButtonX
	ButtonY
	ButtonLB
	ButtonRB
	ButtonLT
	ButtonRT
	NumButtons
)

var buttonNames = [NumButtons]string{"a", "b", "x", "y", "lb", "rb", "lt", "rt"}

var buttonControls = [NumButtons]Control{
	ControlA, ControlB, ControlX, ControlY,
	ControlLB, ControlRB, ControlLT, ControlRT,
}

func (b Button) String() string {
	if b < 0 || b >= NumButtons {
		return fmt.Sprintf("Button(%d)", int(b))
	}
	return buttonNames[b]
}

// Control returns the device control for the button.
func (b Button) Control() Control {
	if b < 0 || b >= NumButtons {
		return ControlNone
	}
	return buttonControls[b]
}

// ParseButton converts a button name ("a", "lb", etc.) to a Button.
func ParseButton(s string) (Button, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range buttonNames {
		if n == s {
			return Button(i), nil
		}
	}
	return 0, fmt.Errorf("unknown button: %q", s)
}

// Mapping assigns functional inputs to face buttons. Buttons missing from the
// mapping do nothing when pressed.
type Mapping map[Button]Functional

// LoadMapping decodes a YAML document of button to functional input pairs:
//
//	a: fireLeft
//	b: fireRight
//	x: "5"
func LoadMapping(r io.Reader) (Mapping, error) {
	var raw map[string]string
	if err := yaml.NewDecoder(r).Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return Mapping{}, nil
		}
		return nil, fmt.Errorf("mapping: %w", err)
	}

	m := make(Mapping, len(raw))
	for k, v := range raw {
		b, err := ParseButton(k)
		if err != nil {
			return nil, fmt.Errorf("mapping: %w", err)
		}
		f, err := ParseFunctional(v)
		if err != nil {
			return nil, fmt.Errorf("mapping: button %s: %w", b, err)
		}
		m[b] = f
	}
	return m, nil
}
