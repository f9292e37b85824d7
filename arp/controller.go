package arp

import (
	"context"
	"math"
	"sync"

	"go-arp/platform"
)

const (
	// GatePulseMs is how long gate-out stays high after a step.
	GatePulseMs = 10

	// DefaultTempoBPM is the power-on tempo before any edge or CV is seen.
	DefaultTempoBPM = 120

	controlPeriodMs = 1
	ledPeriodMs     = 1000
)

// Controller is the top-level per-cycle state machine. Each control cycle
// it samples the inputs, consults the clock, advances the pattern engine,
// and drives the CV/gate output pair. The cycle does not allocate.
type Controller struct {
	hw     platform.Platform
	clock  *ClockSource
	engine *PatternEngine
	st     *State

	// Guards Tick against Snapshot; the control loop itself is
	// single-threaded.
	mu sync.Mutex
}

// NewController wires a controller to a platform. The seed feeds the
// Random pattern's PRNG.
func NewController(hw platform.Platform, seed int64) *Controller {
	return &Controller{
		hw:     hw,
		clock:  NewClockSource(ClockExternal, DefaultTempoBPM),
		engine: NewPatternEngine(seed),
		st:     NewState(),
	}
}

// Snapshot is a copy of the observable controller state for display.
type Snapshot struct {
	State State
	Mode  ClockMode
	Tempo float64
}

// Snapshot returns a consistent copy of the current state.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: *c.st, Mode: c.clock.Mode(), Tempo: c.clock.Tempo()}
}

// Run drives the control loop at ~1 kHz until the context is cancelled.
// On hardware the context never fires and the loop runs for device
// lifetime.
func (c *Controller) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}
		c.Tick(c.hw.NowMs())
		c.hw.SleepMs(controlPeriodMs)
	}
}

// Tick runs one control cycle at the given millisecond timestamp. The
// order of operations is part of the contract: mode transition, pattern
// change, root policy, clock poll, then step emission.
func (c *Controller) Tick(now uint32) {
	c.mu.Lock()
	defer c.mu.Unlock()

	st := c.st

	// 1. Sample inputs.
	internal := c.hw.ToggleSwitchState()
	patternCV := c.hw.ReadCV(platform.CVPattern)
	tempoCV := c.hw.ReadCV(platform.CVTempo)
	rootCV := c.hw.ReadCV(platform.CVRoot)
	gateEdge := c.hw.GateInRisingEdge()

	// 2. Mode transition: the entered source reinitializes and the engine
	// goes silent until its first tick.
	mode := ClockExternal
	if internal {
		mode = ClockInternal
	}
	if mode != c.clock.Mode() {
		c.clock.SetMode(mode, now)
		st.Running = false
		st.Step = 0
		st.HasPending = false
	}

	// 3. Pattern selection.
	if kind := PatternFromCV(patternCV); kind != st.Pattern {
		st.Pattern = kind
		st.Step = 0
	}

	// 4. Root policy: latch at the phrase boundary, stage mid-pattern so
	// the pitch never jumps mid-arpeggio. A newer candidate replaces a
	// staged one; returning to the latched root withdraws the stage.
	root := QuantizeCV(rootCV)
	if st.Step == 0 || !st.Running {
		st.Root = root
		st.HasPending = false
	} else if root != st.Root {
		st.Pending = root
		st.HasPending = true
	} else {
		st.HasPending = false
	}

	// 5. Clock. An external tick restarts the phrase so the first note of
	// every beat lands on degree 0; the first internal tick starts the
	// arpeggio.
	tick := c.clock.Poll(now, gateEdge, tempoCV)
	stepDue := false
	if tick {
		if c.clock.Mode() == ClockExternal || !st.Running {
			st.Step = 0
		}
		st.Running = true
		stepDue = true
	}

	// Step interval from the fresh tempo: external gates are quarter
	// notes split across the pattern, internal ticks are steps.
	if c.clock.Mode() == ClockExternal {
		st.StepIntervalMs = 60000.0 / c.clock.Tempo() / float64(st.Pattern.Length())
	} else {
		st.StepIntervalMs = 60000.0 / c.clock.Tempo()
	}

	// Between external ticks, steps fall every StepInterval.
	if !stepDue && st.Running && c.clock.Mode() == ClockExternal &&
		float64(now-st.LastStepTime) >= st.StepIntervalMs {
		stepDue = true
	}

	// 6-8. Emit a step, or close the gate after the pulse.
	switch {
	case st.Running && stepDue:
		if st.Step == 0 && st.HasPending {
			st.Root = st.Pending
			st.HasPending = false
		}
		note := c.engine.StepNote(st.Root, st.Pattern, st.Step)
		c.hw.WriteCV(platform.CVOutPitch, ClampVoltage(NoteToVoltage(note)))
		c.hw.WriteGate(platform.GateOut, true)
		st.GateHigh = true
		st.Step = (st.Step + 1) % st.Pattern.Length()
		st.LastStepTime = now

	case st.Running:
		if now-st.LastStepTime >= GatePulseMs {
			c.hw.WriteGate(platform.GateOut, false)
			st.GateHigh = false
		}

	default:
		c.hw.WriteGate(platform.GateOut, false)
		st.GateHigh = false
	}

	// LED breathing on the auxiliary output, independent of run state.
	phase := float64(now%ledPeriodMs) / ledPeriodMs
	c.hw.WriteCV(platform.CVOutLED, (math.Sin(2*math.Pi*phase)+1)/2*VoltsMax)
}
