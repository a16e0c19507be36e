package joystick

import "testing"

func TestHoldDetectorSingleFire(t *testing.T) {
	var d HoldDetector

	fires := 0
	for i := 0; i < 30; i++ {
		if d.Check(Player0, GesturePause, true) {
			fires++
		}
	}
	if fires != 1 {
		t.Fatalf("expected one fire for a continuous hold, got %d", fires)
	}

	// still latched until the release is reported, even if the control is up
	if d.Check(Player0, GesturePause, false) || !d.Latched(Player0, GesturePause) {
		t.Fatalf("gesture should stay latched until released")
	}

	d.Release(Player0, GesturePause)
	if !d.Check(Player0, GesturePause, true) {
		t.Fatalf("gesture should fire again after release")
	}
}

func TestHoldDetectorIndependentLatches(t *testing.T) {
	var d HoldDetector

	if !d.Check(Player0, GesturePause, true) {
		t.Fatalf("pause should fire")
	}
	if !d.Check(Player0, GestureRemap, true) {
		t.Fatalf("remap should fire independently of pause")
	}
	if !d.Check(Player1, GesturePause, true) {
		t.Fatalf("player 1 pause should fire independently of player 0")
	}

	d.Reset()
	for s := Player0; s < NumSlots; s++ {
		for g := Gesture(0); g < NumGestures; g++ {
			if d.Latched(s, g) {
				t.Errorf("player %d %s: reset should clear the latch", s, g)
			}
		}
	}
}

func TestHoldDetectorOutOfRange(t *testing.T) {
	var d HoldDetector
	if d.Check(Slot(2), GesturePause, true) {
		t.Errorf("out of range slot should never fire")
	}
	if d.Check(Player0, Gesture(7), true) {
		t.Errorf("out of range gesture should never fire")
	}
}

func TestGestureControls(t *testing.T) {
	if GesturePause.Control() != ControlEscape {
		t.Errorf("pause should be bound to escape")
	}
	if GestureRemap.Control() != ControlStart {
		t.Errorf("remap should be bound to start")
	}
}
