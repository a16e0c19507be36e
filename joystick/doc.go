// Package joystick turns the state of two players' input devices into the
// combined joystick word the ColecoVision engine reads once per frame.
//
// A Cycle is ticked by the frame loop immediately before the engine is
// stepped. Each tick polls the Device, resolves the keypad overlay and the
// hold gestures (pause, remap), resolves directions, fire buttons and keypad
// digits, and hands the packed CombinedInput to the Engine using the encoder
// of the session's Scheme.
//
// The package does no locking. All methods of Cycle must be called from the
// goroutine running the frame loop.
package joystick
