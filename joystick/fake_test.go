package joystick

import "errors"

type controlKey struct {
	slot    Slot
	control Control
}

type axisKey struct {
	slot    Slot
	stick   int
	primary bool
}

type waiter struct {
	key  controlKey
	done chan struct{}
}

// fakeDevice is a scripted Device. Tests press and release controls between
// ticks.
type fakeDevice struct {
	held   map[controlKey]bool
	analog map[controlKey]bool // down only via the stick
	axes   map[axisKey]float64
	faked  map[Control]bool

	waiters []waiter
	pollErr error
	polls   int
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		held:   make(map[controlKey]bool),
		analog: make(map[controlKey]bool),
		axes:   make(map[axisKey]float64),
		faked:  make(map[Control]bool),
	}
}

func (d *fakeDevice) press(slot Slot, controls ...Control) {
	for _, c := range controls {
		d.held[controlKey{slot, c}] = true
	}
}

func (d *fakeDevice) release(slot Slot, controls ...Control) {
	for _, c := range controls {
		delete(d.held, controlKey{slot, c})
	}
}

func (d *fakeDevice) setAxis(slot Slot, stick int, primary bool, v float64) {
	d.axes[axisKey{slot, stick, primary}] = v
}

func (d *fakeDevice) Poll() error {
	d.polls++
	if d.pollErr != nil {
		return d.pollErr
	}
	for c := range d.faked {
		if !d.held[controlKey{Player0, c}] {
			delete(d.faked, c)
		}
	}
	pending := d.waiters[:0]
	for _, w := range d.waiters {
		if d.held[w.key] {
			pending = append(pending, w)
			continue
		}
		close(w.done)
	}
	d.waiters = pending
	return nil
}

func (d *fakeDevice) IsControlDown(slot Slot, control Control, analogAsDigital bool) bool {
	k := controlKey{slot, control}
	if slot == Player0 && d.faked[control] {
		return false
	}
	return d.held[k] || (analogAsDigital && d.analog[k])
}

func (d *fakeDevice) AxisValue(slot Slot, stick int, primary bool) float64 {
	return d.axes[axisKey{slot, stick, primary}]
}

func (d *fakeDevice) WaitUntilReleased(slot Slot, control Control) <-chan struct{} {
	w := waiter{key: controlKey{slot, control}, done: make(chan struct{})}
	d.waiters = append(d.waiters, w)
	return w.done
}

func (d *fakeDevice) AddFakeReleaseEvent(control Control) {
	d.faked[control] = true
}

// recordingEngine keeps every input it is given.
type recordingEngine struct {
	inputs []CombinedInput
}

func (e *recordingEngine) SetInput(in CombinedInput) {
	e.inputs = append(e.inputs, in)
}

func (e *recordingEngine) last() (CombinedInput, bool) {
	if len(e.inputs) == 0 {
		return CombinedInput{}, false
	}
	return e.inputs[len(e.inputs)-1], true
}

var errUnplugged = errors.New("gamepad unplugged")
