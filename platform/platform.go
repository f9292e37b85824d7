package platform

// Channel names a logical input or output. The physical pin mapping is a
// board concern and lives behind the Platform implementation.
type Channel int

const (
	CVPattern  Channel = iota // pattern select input
	CVTempo                   // tempo input (internal clock only)
	CVRoot                    // pitch input, ±5V expected
	CVOutPitch                // pitch output, 0-5V
	CVOutLED                  // visual feedback output
	GateIn                    // external clock input
	GateOut                   // step gate output
	SwitchMode                // clock-mode toggle switch
)

var channelNames = map[Channel]string{
	CVPattern:  "CV_PATTERN",
	CVTempo:    "CV_TEMPO",
	CVRoot:     "CV_ROOT",
	CVOutPitch: "CV_OUT_PITCH",
	CVOutLED:   "CV_OUT_LED",
	GateIn:     "GATE_IN",
	GateOut:    "GATE_OUT",
	SwitchMode: "SWITCH_MODE",
}

func (ch Channel) String() string {
	if name, ok := channelNames[ch]; ok {
		return name
	}
	return "CV_UNKNOWN"
}

// Platform is the narrow hardware capability the arpeggiator core consumes.
// Implementations must be non-blocking except SleepMs.
type Platform interface {
	// ReadCV returns a normalized reading: [0,1] for pot-style channels,
	// [-1,+1] for bipolar CV jacks.
	ReadCV(ch Channel) float64

	// GateInRisingEdge reports true exactly once per detected rising edge
	// on the external gate.
	GateInRisingEdge() bool

	// ToggleSwitchState is the debounced clock-mode switch; true means the
	// internal clock is selected.
	ToggleSwitchState() bool

	// WriteCV drives a DAC output. Volts must already be clamped to [0,5].
	WriteCV(ch Channel, volts float64)

	// WriteGate drives a digital output pin.
	WriteGate(ch Channel, high bool)

	// NowMs is a monotonic millisecond counter. It wraps; callers use
	// modular subtraction.
	NowMs() uint32

	// SleepMs yields cooperatively for roughly the given duration.
	SleepMs(ms uint32)
}
