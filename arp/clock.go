package arp

// ClockMode selects which tick source is active.
type ClockMode int

const (
	ClockExternal ClockMode = iota
	ClockInternal
)

func (m ClockMode) String() string {
	if m == ClockInternal {
		return "INT"
	}
	return "EXT"
}

const (
	// TempoMin and TempoMax bound the tempo in BPM.
	TempoMin = 20.0
	TempoMax = 200.0

	// Inter-edge gaps shorter than this keep the previous tempo estimate.
	minGateIntervalMs = 1
)

// ClockSource yields a monotonic stream of tick events from the external
// gate or the internal free-running generator. Exactly one source is
// active at a time.
type ClockSource struct {
	mode  ClockMode
	tempo float64

	lastTick uint32 // internal mode: time of last generated tick
	lastGate uint32 // external mode: time of last rising edge
	haveGate bool   // a previous edge exists to measure against
}

// NewClockSource starts in the given mode with the given tempo.
func NewClockSource(mode ClockMode, tempoBPM float64) *ClockSource {
	return &ClockSource{mode: mode, tempo: clampTempo(tempoBPM)}
}

// Mode returns the active tick source.
func (c *ClockSource) Mode() ClockMode {
	return c.mode
}

// Tempo returns the current estimate in BPM, always within [20,200].
func (c *ClockSource) Tempo() float64 {
	return c.tempo
}

// SetMode switches tick sources, reinitializing the one being entered.
// Entering internal restarts the generator from now; entering external
// forgets any previous edge so the first new edge keeps the prior tempo.
func (c *ClockSource) SetMode(mode ClockMode, now uint32) {
	if mode == c.mode {
		return
	}
	c.mode = mode
	switch mode {
	case ClockInternal:
		c.lastTick = now
	case ClockExternal:
		c.haveGate = false
		c.lastGate = 0
	}
}

// Poll advances the clock one control cycle and reports whether a tick
// fired. External ticks follow gate edges and update the tempo estimate
// from the inter-edge gap; internal ticks fire every 60000/tempo ms with
// the tempo mapped from the tempo CV.
func (c *ClockSource) Poll(now uint32, gateEdge bool, tempoCV float64) bool {
	if c.mode == ClockExternal {
		if !gateEdge {
			return false
		}
		if c.haveGate {
			dt := now - c.lastGate // modular, survives counter wrap
			if dt >= minGateIntervalMs {
				c.tempo = clampTempo(60000.0 / float64(dt))
			}
		}
		c.lastGate = now
		c.haveGate = true
		return true
	}

	c.tempo = clampTempo(TempoMin + clamp01(tempoCV)*(TempoMax-TempoMin))
	if float64(now-c.lastTick) >= 60000.0/c.tempo {
		c.lastTick = now
		return true
	}
	return false
}

func clampTempo(bpm float64) float64 {
	if bpm < TempoMin {
		return TempoMin
	}
	if bpm > TempoMax {
		return TempoMax
	}
	return bpm
}
