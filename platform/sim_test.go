package platform

import "testing"

func TestSimGateEdgeConsumedOnce(t *testing.T) {
	s := NewSim()
	if s.GateInRisingEdge() {
		t.Error("edge reported before any tap")
	}
	s.TapGate()
	if !s.GateInRisingEdge() {
		t.Error("tap did not latch an edge")
	}
	if s.GateInRisingEdge() {
		t.Error("edge reported twice for one tap")
	}
}

func TestSimClampsKnobs(t *testing.T) {
	s := NewSim()
	s.SetRootCV(-2)
	s.SetTempoCV(1.5)
	s.SetPatternCV(-0.1)
	root, tempo, pattern, _ := s.Inputs()
	if root != -1 {
		t.Errorf("root = %v, want clamp to -1", root)
	}
	if tempo != 1 {
		t.Errorf("tempo = %v, want clamp to 1", tempo)
	}
	if pattern != 0 {
		t.Errorf("pattern = %v, want clamp to 0", pattern)
	}
}

type recordingObserver struct {
	cv    []float64
	gates []bool
}

func (r *recordingObserver) CVWritten(ch Channel, volts float64) {
	if ch == CVOutPitch {
		r.cv = append(r.cv, volts)
	}
}

func (r *recordingObserver) GateWritten(ch Channel, high bool) {
	r.gates = append(r.gates, high)
}

func TestSimObserverSeesGateEdgesOnly(t *testing.T) {
	s := NewSim()
	obs := &recordingObserver{}
	s.SetObserver(obs)

	s.WriteGate(GateOut, false) // already low, no edge
	s.WriteGate(GateOut, true)
	s.WriteGate(GateOut, true) // re-driven high, no edge
	s.WriteGate(GateOut, false)

	want := []bool{true, false}
	if len(obs.gates) != len(want) {
		t.Fatalf("observer saw %v, want %v", obs.gates, want)
	}
	for i := range want {
		if obs.gates[i] != want[i] {
			t.Fatalf("observer saw %v, want %v", obs.gates, want)
		}
	}

	s.WriteCV(CVOutPitch, 2.5)
	if len(obs.cv) != 1 || obs.cv[0] != 2.5 {
		t.Errorf("observer CV writes = %v, want [2.5]", obs.cv)
	}
}
