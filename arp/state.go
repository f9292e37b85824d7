package arp

// State is the single mutable record for the arpeggiator, owned by the
// Controller. The audio path never touches it.
type State struct {
	Root       Note        // latched root pitch
	Pending    Note        // root change waiting for the next step-0 boundary
	HasPending bool
	Pattern    PatternKind
	Step       int // 0 <= Step < Pattern.Length()

	LastStepTime   uint32  // ms timestamp of the last emitted step
	StepIntervalMs float64 // ms per arpeggio step, > 0

	Running  bool // a tick has occurred in the current mode
	GateHigh bool // last driven gate-out level
}

// NewState returns the power-on defaults: Up pattern at 120 BPM quarters
// split four ways.
func NewState() *State {
	return &State{
		Pattern:        PatternUp,
		StepIntervalMs: 125,
	}
}
