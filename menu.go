package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/MatusOllah/colem-go/joystick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"
)

const (
	menuResume  = "Resume"
	menuKeypad1 = "Keypad (player 1)"
	menuKeypad2 = "Keypad (player 2)"
	menuQuit    = "Quit"
)

// in the order they appear on the controller
var keypadKeys = []string{
	"1", "2", "3",
	"4", "5", "6",
	"7", "8", "9",
	"*", "0", "#",
}

// showPauseMenu blocks until the user has chosen an item and must not be
// called from the game loop.
func (g *Game) showPauseMenu() {
	item, err := zenity.List("Paused",
		[]string{menuResume, menuKeypad1, menuKeypad2, menuQuit},
		zenity.Title("colem-go"),
	)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		slog.Error("failed to show pause menu", "error", err)
	}

	switch item {
	case menuKeypad1:
		g.showKeypad(joystick.Player0)
	case menuKeypad2:
		g.showKeypad(joystick.Player1)
	case menuQuit:
		g.post(func(g *Game) error {
			return ebiten.Termination
		})
	default:
		g.post(func(g *Game) error {
			g.pause(false)
			return nil
		})
	}
}

// showKeypad asks for a keypad key and installs it as an overlay for the
// player. Like showPauseMenu it blocks.
func (g *Game) showKeypad(slot joystick.Slot) {
	key, err := zenity.List(fmt.Sprintf("Player %d keypad", slot+1),
		keypadKeys,
		zenity.Title("colem-go"),
	)
	if err != nil && !errors.Is(err, zenity.ErrCanceled) {
		slog.Error("failed to show keypad", "error", err)
	}

	var f joystick.Functional
	if key != "" {
		f, err = joystick.ParseFunctional(key)
		if err != nil {
			slog.Warn("ignoring keypad selection", "error", err)
		}
	}

	g.post(func(g *Game) error {
		if f != joystick.None {
			g.cycle.OnKeypad(slot, f, joystick.ControlNone)
		}
		g.pause(false)
		return nil
	})
}
