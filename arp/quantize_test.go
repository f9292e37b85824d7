package arp

import (
	"math"
	"testing"
)

func TestQuantizeZeroVolts(t *testing.T) {
	if n := QuantizeCV(0); n != 11 {
		t.Errorf("QuantizeCV(0) = %d, want 11 (B-1)", n)
	}
}

func TestQuantizeKnownNotes(t *testing.T) {
	cases := []struct {
		norm float64
		want Note
	}{
		{0.2, 23},   // +1V
		{1.0, 71},   // +5V
		{-0.2, -1},  // -1V, below MIDI range but still defined
		{0.81667, 60}, // middle C
	}
	for _, c := range cases {
		if got := QuantizeCV(c.norm); got != c.want {
			t.Errorf("QuantizeCV(%v) = %d, want %d", c.norm, got, c.want)
		}
	}
}

func TestQuantizeRoundTripOnGrid(t *testing.T) {
	for n := Note(0); n <= 127; n++ {
		norm := NoteToVoltage(n) / cvRangeVolts
		if got := QuantizeCV(norm); got != n {
			t.Fatalf("round trip failed for note %d: got %d", n, got)
		}
	}
}

func TestQuantizeNondecreasing(t *testing.T) {
	prev := QuantizeCV(-1)
	steps := 0
	for i := 1; i <= 20000; i++ {
		norm := -1 + float64(i)/10000.0
		n := QuantizeCV(norm)
		if n < prev {
			t.Fatalf("quantizer decreased at norm=%v: %d -> %d", norm, prev, n)
		}
		if n > prev {
			steps += int(n - prev)
		}
		prev = n
	}
	// 10 volts of sweep at 12 semitones per volt.
	if steps != 120 {
		t.Errorf("saw %d semitone steps across the sweep, want 120", steps)
	}
}

func TestQuantizeHalfRoundsAwayFromZero(t *testing.T) {
	// Half a semitone above B-1 lands on C0.
	if n := QuantizeCV(0.5 / 60.0); n != 12 {
		t.Errorf("got %d, want 12", n)
	}
	// note_float = -0.5 rounds to -1, not 0.
	norm := (-11.5 / semitonesPerVolt) / cvRangeVolts
	if n := QuantizeCV(norm); n != -1 {
		t.Errorf("got %d, want -1", n)
	}
}

func TestNoteToVoltage(t *testing.T) {
	if v := NoteToVoltage(11); v != 0 {
		t.Errorf("NoteToVoltage(11) = %v, want 0", v)
	}
	if v := NoteToVoltage(23); math.Abs(v-1.0) > 1e-12 {
		t.Errorf("NoteToVoltage(23) = %v, want 1", v)
	}
}

func TestClampVoltage(t *testing.T) {
	if v := ClampVoltage(NoteToVoltage(127)); v != VoltsMax {
		t.Errorf("note 127 should clamp to %v V, got %v", VoltsMax, v)
	}
	if v := ClampVoltage(-0.25); v != 0 {
		t.Errorf("negative voltage should clamp to 0, got %v", v)
	}
	if v := ClampVoltage(2.5); v != 2.5 {
		t.Errorf("in-range voltage should pass through, got %v", v)
	}
}

func TestNoteName(t *testing.T) {
	cases := []struct {
		n    Note
		want string
	}{
		{60, "C4"},
		{11, "B-1"},
		{23, "B0"},
		{69, "A4"},
	}
	for _, c := range cases {
		if got := NoteName(c.n); got != c.want {
			t.Errorf("NoteName(%d) = %q, want %q", c.n, got, c.want)
		}
	}
}
