package joystick

import (
	"fmt"
	"strconv"
	"strings"
)

// Scheme is the controller layout for a session.
type Scheme int

// List of valid Scheme values. The numeric values are those used by the
// engine's launch properties.
const (
	Standard Scheme = iota
	SuperAction
	Driving
	Roller
	numSchemes
)

var schemeNames = [numSchemes]string{"standard", "superaction", "driving", "roller"}

func (s Scheme) String() string {
	if s < 0 || s >= numSchemes {
		return fmt.Sprintf("Scheme(%d)", int(s))
	}
	return schemeNames[s]
}

// ParseScheme accepts a scheme name or its number.
func ParseScheme(s string) (Scheme, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	for i, n := range schemeNames {
		if n == s {
			return Scheme(i), nil
		}
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 0 && n < int(numSchemes) {
		return Scheme(n), nil
	}
	return Standard, fmt.Errorf("unknown control scheme: %q", s)
}

// Engine option bits.
const (
	OptionSGM       uint32 = 0x00001000
	OptionSpinner1X uint32 = 0x00000020
	OptionSpinner2Y uint32 = 0x00000100
)

// Axis ranges and the deadzone, as a fraction of the range.
const (
	AxisRangeX = 512
	AxisRangeY = 128
	Deadzone   = 0.20
)

// Stick is a sampled analog stick.
type Stick struct {
	X, Y float64
}

// Sticks holds both sticks of both players for a frame. Sticks for a player
// whose keypad overlay is active are left at zero.
type Sticks [NumSlots][2]Stick

// CombinedInput is the value handed to the engine every frame.
type CombinedInput struct {
	Word  uint32
	AxisX int32
	AxisY int32
}

func (in CombinedInput) String() string {
	return fmt.Sprintf("%08x x=%d y=%d", in.Word, in.AxisX, in.AxisY)
}

// Encoder packs resolved player input into a CombinedInput. Every Scheme has
// exactly one Encoder.
type Encoder interface {
	// Players is the number of slots read by the scheme.
	Players() int

	// AnalogAsDigital is true if the analog stick also drives the direction
	// bits.
	AnalogAsDigital() bool

	// Options returns the engine option bits for the scheme.
	Options() uint32

	// DefaultMapping is used when no mapping has been supplied.
	DefaultMapping() Mapping

	// Encode packs the per-player joystick values and axis samples.
	Encode(players [NumSlots]uint32, sticks Sticks) CombinedInput
}

// Encoder returns the encoder for the scheme. Unknown schemes are treated as
// Standard.
func (s Scheme) Encoder() Encoder {
	switch s {
	case SuperAction:
		return superAction{}
	case Driving:
		return driving{}
	case Roller:
		return roller{}
	}
	return standard{}
}

// scaleAxis converts a stick position to the engine range. The product is
// truncated toward zero and anything inside the deadzone is reported as
// zero.
func scaleAxis(v float64, rng int32) int32 {
	a := int32(v * float64(rng))
	dead := float64(rng) * Deadzone
	if float64(a) < dead && float64(a) > -dead {
		return 0
	}
	return a
}

// both players side by side
func packPair(players [NumSlots]uint32) uint32 {
	return players[Player0] | players[Player1]<<16
}

// the engine reads spinner controllers from the second player's region
func packSpinner(p uint32) uint32 {
	return ((p & 0x0F0F) << 16) | (p & 0x4040) | (p & 0x40400000)
}

type standard struct{}

func (standard) Players() int          { return int(NumSlots) }
func (standard) AnalogAsDigital() bool { return true }
func (standard) Options() uint32       { return OptionSGM }

func (standard) DefaultMapping() Mapping {
	return Mapping{
		ButtonA: FireLeftInput,
		ButtonB: FireRightInput,
	}
}

func (standard) Encode(players [NumSlots]uint32, _ Sticks) CombinedInput {
	return CombinedInput{Word: packPair(players)}
}

type superAction struct{}

func (superAction) Players() int          { return int(NumSlots) }
func (superAction) AnalogAsDigital() bool { return true }
func (superAction) Options() uint32       { return OptionSGM | OptionSpinner1X | OptionSpinner2Y }

func (superAction) DefaultMapping() Mapping {
	return Mapping{
		ButtonA: FireLeftInput,
		ButtonB: FireRightInput,
		ButtonX: Purple,
		ButtonY: Blue,
	}
}

func (superAction) Encode(players [NumSlots]uint32, sticks Sticks) CombinedInput {
	return CombinedInput{
		Word:  packPair(players),
		AxisX: -scaleAxis(sticks[Player0][1].X, AxisRangeX),
		AxisY: scaleAxis(sticks[Player1][1].X, AxisRangeX),
	}
}

type driving struct{}

func (driving) Players() int          { return 1 }
func (driving) AnalogAsDigital() bool { return false }
func (driving) Options() uint32       { return OptionSGM | OptionSpinner1X }

func (driving) DefaultMapping() Mapping {
	return standard{}.DefaultMapping()
}

func (driving) Encode(players [NumSlots]uint32, sticks Sticks) CombinedInput {
	return CombinedInput{
		Word:  packSpinner(players[Player0]),
		AxisX: scaleAxis(sticks[Player0][0].X, AxisRangeX),
	}
}

type roller struct{}

func (roller) Players() int          { return int(NumSlots) }
func (roller) AnalogAsDigital() bool { return true }
func (roller) Options() uint32       { return OptionSGM | OptionSpinner1X | OptionSpinner2Y }

func (roller) DefaultMapping() Mapping {
	return Mapping{
		ButtonA: FireLeft2PInput,
		ButtonB: FireRight2PInput,
		ButtonX: FireLeftInput,
		ButtonY: FireRightInput,
	}
}

// player 1 is resolved (gestures, overlay) but does not reach the engine
func (roller) Encode(players [NumSlots]uint32, sticks Sticks) CombinedInput {
	return CombinedInput{
		Word:  packSpinner(players[Player0]),
		AxisX: scaleAxis(sticks[Player0][0].X, AxisRangeX),
		AxisY: scaleAxis(sticks[Player0][0].Y, AxisRangeY),
	}
}
