package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatusOllah/colem-go/joystick"
)

// Engine stands in for the native ColecoVision core. It keeps the values it
// is given so that the input side can be exercised end to end.
type Engine struct {
	bios, rom []byte
	opts      uint32
	input     joystick.CombinedInput
	running   bool
	frames    uint64
}

func NewEngine() *Engine {
	return &Engine{}
}

func (e *Engine) LoadBIOS(b []byte) error {
	if len(b) == 0 {
		return errors.New("the BIOS size is invalid (0 bytes)")
	}
	e.bios = b
	return nil
}

func (e *Engine) LoadROM(rom []byte) error {
	if len(rom) == 0 {
		return errors.New("the ROM size is invalid (0 bytes)")
	}
	e.rom = rom
	return nil
}

func (e *Engine) SetOptions(opts uint32) {
	e.opts = opts
}

func (e *Engine) Start() error {
	if e.rom == nil {
		return errors.New("no ROM loaded")
	}
	slog.Info("engine started", "options", hex32(e.opts), "rom size", len(e.rom), "bios", e.bios != nil)
	e.running = true
	return nil
}

func (e *Engine) SetInput(in joystick.CombinedInput) {
	if in != e.input {
		slog.Debug("input", "frame", e.frames, "word", hex32(in.Word), "x", in.AxisX, "y", in.AxisY)
	}
	e.input = in
}

// Step runs one frame.
func (e *Engine) Step() {
	if !e.running {
		return
	}
	//TODO: hand the frame to the core
	e.frames++
}

func hex32(v uint32) string {
	return fmt.Sprintf("%#08x", v)
}
