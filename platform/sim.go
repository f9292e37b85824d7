package platform

import (
	"sync"
	"time"
)

// OutputObserver follows the module's output writes. The MIDI mirror hangs
// off this; the core never sees it.
type OutputObserver interface {
	CVWritten(ch Channel, volts float64)
	GateWritten(ch Channel, high bool)
}

// Sim is a host-side Platform backed by the wall clock. The TUI sets the
// knobs; the last written outputs are retained for display.
type Sim struct {
	mu    sync.Mutex
	start time.Time

	// Inputs (set from the UI)
	rootCV      float64 // bipolar [-1,1]
	tempoCV     float64 // pot [0,1]
	patternCV   float64 // pot [0,1]
	internal    bool
	gatePending bool

	// Outputs (written by the controller)
	pitchVolts float64
	ledVolts   float64
	gateHigh   bool

	observer OutputObserver
}

// NewSim creates a simulated platform with all inputs at rest.
func NewSim() *Sim {
	return &Sim{start: time.Now()}
}

// SetObserver attaches an output observer (nil detaches).
func (s *Sim) SetObserver(o OutputObserver) {
	s.mu.Lock()
	s.observer = o
	s.mu.Unlock()
}

// SetRootCV sets the pitch input, clamped to [-1,1].
func (s *Sim) SetRootCV(v float64) {
	s.mu.Lock()
	s.rootCV = clamp(v, -1, 1)
	s.mu.Unlock()
}

// SetTempoCV sets the tempo pot, clamped to [0,1].
func (s *Sim) SetTempoCV(v float64) {
	s.mu.Lock()
	s.tempoCV = clamp(v, 0, 1)
	s.mu.Unlock()
}

// SetPatternCV sets the pattern select pot, clamped to [0,1].
func (s *Sim) SetPatternCV(v float64) {
	s.mu.Lock()
	s.patternCV = clamp(v, 0, 1)
	s.mu.Unlock()
}

// SetInternalClock flips the clock-mode switch.
func (s *Sim) SetInternalClock(internal bool) {
	s.mu.Lock()
	s.internal = internal
	s.mu.Unlock()
}

// TapGate latches one rising edge on the external gate input. The edge is
// consumed by the next GateInRisingEdge call.
func (s *Sim) TapGate() {
	s.mu.Lock()
	s.gatePending = true
	s.mu.Unlock()
}

// Inputs returns the current knob values for display.
func (s *Sim) Inputs() (root, tempo, pattern float64, internal bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rootCV, s.tempoCV, s.patternCV, s.internal
}

// Outputs returns the last written output values for display.
func (s *Sim) Outputs() (pitchVolts, ledVolts float64, gateHigh bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pitchVolts, s.ledVolts, s.gateHigh
}

// Platform interface

func (s *Sim) ReadCV(ch Channel) float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch ch {
	case CVRoot:
		return s.rootCV
	case CVTempo:
		return s.tempoCV
	case CVPattern:
		return s.patternCV
	}
	return 0
}

func (s *Sim) GateInRisingEdge() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.gatePending {
		s.gatePending = false
		return true
	}
	return false
}

func (s *Sim) ToggleSwitchState() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.internal
}

func (s *Sim) WriteCV(ch Channel, volts float64) {
	s.mu.Lock()
	switch ch {
	case CVOutPitch:
		s.pitchVolts = volts
	case CVOutLED:
		s.ledVolts = volts
	}
	o := s.observer
	s.mu.Unlock()

	if o != nil {
		o.CVWritten(ch, volts)
	}
}

func (s *Sim) WriteGate(ch Channel, high bool) {
	s.mu.Lock()
	changed := ch == GateOut && s.gateHigh != high
	if ch == GateOut {
		s.gateHigh = high
	}
	o := s.observer
	s.mu.Unlock()

	// Only edges are interesting downstream; the controller re-drives the
	// pin every idle cycle.
	if o != nil && changed {
		o.GateWritten(ch, high)
	}
}

func (s *Sim) NowMs() uint32 {
	return uint32(time.Since(s.start).Milliseconds())
}

func (s *Sim) SleepMs(ms uint32) {
	time.Sleep(time.Duration(ms) * time.Millisecond)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
