package main

import (
	"log/slog"

	"github.com/MatusOllah/colem-go/joystick"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	Width  = 272
	Height = 200
)

// event is sent to the game loop by the dialogs, which run on their own
// goroutines. Returning an error ends the game.
type event func(g *Game) error

type Game struct {
	engine *Engine
	device *Device
	cycle  *joystick.Cycle

	paused bool
	events chan event
}

func NewGame(engine *Engine, device *Device, scheme joystick.Scheme, mapping joystick.Mapping) *Game {
	g := &Game{
		engine: engine,
		device: device,
		events: make(chan event, 4),
	}
	g.cycle = joystick.NewCycle(device, engine, joystick.Config{
		Scheme:   scheme,
		Mapping:  mapping,
		Fired:    g.onGestureFired,
		Released: g.onGestureReleased,
	})
	engine.SetOptions(scheme.Encoder().Options())
	return g
}

func (g *Game) InitEbiten() {
	ebiten.SetWindowSize(Width*3, Height*3)
	ebiten.SetWindowTitle("colem-go")
	ebiten.SetTPS(60)
}

func (g *Game) Start() error {
	if err := g.engine.Start(); err != nil {
		return err
	}
	defer g.cycle.Close()
	return ebiten.RunGame(g)
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}

	if err := g.handleEvents(); err != nil {
		return err
	}

	if g.paused {
		return g.cycle.Pump()
	}

	if err := g.cycle.Tick(); err != nil {
		return err
	}

	// a gesture fired during the tick
	if g.paused {
		return nil
	}

	g.engine.Step()
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {

}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	return Width, Height
}

func (g *Game) handleEvents() error {
	for {
		select {
		case ev := <-g.events:
			if err := ev(g); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

func (g *Game) post(ev event) {
	g.events <- ev
}

func (g *Game) pause(p bool) {
	if g.paused == p {
		return
	}
	g.paused = p
	slog.Debug("paused", "paused", p)
}

func (g *Game) onGestureFired(gesture joystick.Gesture, slot joystick.Slot) {
	g.pause(true)
}

func (g *Game) onGestureReleased(gesture joystick.Gesture, slot joystick.Slot) {
	switch gesture {
	case joystick.GesturePause:
		go g.showPauseMenu()
	case joystick.GestureRemap:
		g.showControllers(slot)
	}
}

// showControllers opens the keypad for the player
func (g *Game) showControllers(slot joystick.Slot) {
	// stop the keys that can select a keypad value from repeating
	g.device.AddFakeReleaseEvent(joystick.ControlSpace)
	g.device.AddFakeReleaseEvent(joystick.ControlStart)

	go g.showKeypad(slot)
}
