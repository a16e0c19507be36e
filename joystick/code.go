package joystick

import (
	"fmt"
	"strings"
)

// Joystick word bits, as read by the engine for a single player.
//
//	8   4    2 1 8 4 2 1 8   4    2 1 8  4  2  1
//	x.FIRE-L.x.x.L.D.R.U.x.FIRE-R.x.x.N3.N2.N1.N0
const (
	KeypadMask uint32 = 0x000F
	Up         uint32 = 0x0100
	Right      uint32 = 0x0200
	Down       uint32 = 0x0400
	Left       uint32 = 0x0800
	FireRight  uint32 = 0x0040
	FireLeft   uint32 = 0x4000

	// second player fire bits, used by the super action and roller controllers
	FireRight2P uint32 = 0x00400000
	FireLeft2P  uint32 = 0x40000000

	// any of these being set suppresses keypad digits for the frame
	directionFireMask = Up | Right | Down | Left | FireRight | FireLeft | FireRight2P | FireLeft2P
)

// Functional is a logical game input, independent of the button that
// produced it.
type Functional int

// List of valid Functional values.
const (
	None Functional = iota
	Key0
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	KeyStar
	KeyPound
	FireLeftInput
	FireRightInput
	FireLeft2PInput
	FireRight2PInput
	Blue
	Purple
)

// keypad codes are not sequential and must not be derived.
var codes = [...]uint32{
	None:             0,
	Key0:             0x0005,
	Key1:             0x0002,
	Key2:             0x0008,
	Key3:             0x0003,
	Key4:             0x000D,
	Key5:             0x000C,
	Key6:             0x0001,
	Key7:             0x000A,
	Key8:             0x000E,
	Key9:             0x0004,
	KeyStar:          0x0006,
	KeyPound:         0x0009,
	FireLeftInput:    FireLeft,
	FireRightInput:   FireRight,
	FireLeft2PInput:  FireLeft2P,
	FireRight2PInput: FireRight2P,
	Blue:             0x000B,
	Purple:           0x0007,
}

var names = [...]string{
	None:             "none",
	Key0:             "0",
	Key1:             "1",
	Key2:             "2",
	Key3:             "3",
	Key4:             "4",
	Key5:             "5",
	Key6:             "6",
	Key7:             "7",
	Key8:             "8",
	Key9:             "9",
	KeyStar:          "*",
	KeyPound:         "#",
	FireLeftInput:    "fireLeft",
	FireRightInput:   "fireRight",
	FireLeft2PInput:  "fireLeft2p",
	FireRight2PInput: "fireRight2p",
	Blue:             "blue",
	Purple:           "purple",
}

// older mapping files use these names
var aliases = map[string]Functional{
	"firel":  FireLeftInput,
	"firer":  FireRightInput,
	"firel2": FireLeft2PInput,
	"firer2": FireRight2PInput,
}

// Code returns the joystick bits for the functional input.
func (f Functional) Code() uint32 {
	if f < 0 || int(f) >= len(codes) {
		return 0
	}
	return codes[f]
}

// IsDigit is true for the numeric keypad keys and the two punctuation keys.
func (f Functional) IsDigit() bool {
	return f >= Key0 && f <= KeyPound
}

func (f Functional) String() string {
	if f < 0 || int(f) >= len(names) {
		return fmt.Sprintf("Functional(%d)", int(f))
	}
	return names[f]
}

// ParseFunctional converts a functional input name to a Functional.
// Matching is case insensitive.
func ParseFunctional(s string) (Functional, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if Functional(i) == None {
			continue
		}
		if strings.ToLower(n) == s {
			return Functional(i), nil
		}
	}
	if f, ok := aliases[s]; ok {
		return f, nil
	}
	return None, fmt.Errorf("unknown functional input: %q", s)
}

// Digit returns the keypad Functional for the digits 0 to 9.
func Digit(n int) Functional {
	if n < 0 || n > 9 {
		return None
	}
	return Key0 + Functional(n)
}
