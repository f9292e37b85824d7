package platform

// Fake is a deterministic Platform for tests. Time only moves when the test
// advances it, and every output write is recorded with its timestamp.
type Fake struct {
	// Inputs, set directly by tests. Values are not clamped so tests can
	// feed out-of-range readings.
	RootCV    float64
	TempoCV   float64
	PatternCV float64
	Internal  bool

	now      uint32
	gateEdge bool

	PitchWrites []CVWrite
	LEDWrites   []CVWrite
	GateWrites  []GateWrite

	pitchVolts float64
	gateHigh   bool
}

// CVWrite records one DAC write.
type CVWrite struct {
	At    uint32
	Volts float64
}

// GateWrite records one gate pin write.
type GateWrite struct {
	At   uint32
	High bool
}

// NewFake creates a fake platform at t=0 with all inputs at rest.
func NewFake() *Fake {
	return &Fake{}
}

// Advance moves the fake clock forward.
func (f *Fake) Advance(ms uint32) {
	f.now += ms
}

// PulseGate schedules one rising edge, consumed by the next
// GateInRisingEdge call.
func (f *Fake) PulseGate() {
	f.gateEdge = true
}

// Pitch returns the last written pitch voltage.
func (f *Fake) Pitch() float64 {
	return f.pitchVolts
}

// Gate returns the current gate pin state.
func (f *Fake) Gate() bool {
	return f.gateHigh
}

// Platform interface

func (f *Fake) ReadCV(ch Channel) float64 {
	switch ch {
	case CVRoot:
		return f.RootCV
	case CVTempo:
		return f.TempoCV
	case CVPattern:
		return f.PatternCV
	}
	return 0
}

func (f *Fake) GateInRisingEdge() bool {
	edge := f.gateEdge
	f.gateEdge = false
	return edge
}

func (f *Fake) ToggleSwitchState() bool {
	return f.Internal
}

func (f *Fake) WriteCV(ch Channel, volts float64) {
	switch ch {
	case CVOutPitch:
		f.pitchVolts = volts
		f.PitchWrites = append(f.PitchWrites, CVWrite{At: f.now, Volts: volts})
	case CVOutLED:
		f.LEDWrites = append(f.LEDWrites, CVWrite{At: f.now, Volts: volts})
	}
}

func (f *Fake) WriteGate(ch Channel, high bool) {
	if ch != GateOut {
		return
	}
	// Record edges only; the controller re-drives the pin every cycle.
	if f.gateHigh != high {
		f.GateWrites = append(f.GateWrites, GateWrite{At: f.now, High: high})
	}
	f.gateHigh = high
}

func (f *Fake) NowMs() uint32 {
	return f.now
}

func (f *Fake) SleepMs(ms uint32) {
	f.Advance(ms)
}

var _ Platform = (*Fake)(nil)
var _ Platform = (*Sim)(nil)
