package arp

import (
	"fmt"
	"math"
)

// Note is a MIDI semitone index. The playable range is [0,127] but the
// quantizer is total: out-of-range inputs map mathematically and are only
// clamped at the DAC.
type Note int

const (
	semitonesPerVolt = 12.0
	cvRangeVolts     = 5.0 // bipolar ±5V in, 0-5V DAC out
	zeroVoltNote     = 11  // 0V ↔ MIDI 11 (B-1)

	// VoltsMax is the DAC ceiling.
	VoltsMax = 5.0
)

// QuantizeCV converts a normalized bipolar reading in [-1,1] to the nearest
// semitone under the 1V/octave law. Halves round away from zero.
func QuantizeCV(norm float64) Note {
	volts := norm * cvRangeVolts
	return Note(math.Round(volts*semitonesPerVolt + zeroVoltNote))
}

// NoteToVoltage is the inverse law. The result is unclamped; use
// ClampVoltage before a DAC write.
func NoteToVoltage(n Note) float64 {
	return float64(n-zeroVoltNote) / semitonesPerVolt
}

// ClampVoltage folds a voltage into the DAC domain [0,5]. Musically this
// pins out-of-range pitches to the floor or ceiling.
func ClampVoltage(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > VoltsMax {
		return VoltsMax
	}
	return v
}

// NoteName formats a note the usual way, e.g. 60 -> "C4", 11 -> "B-1".
func NoteName(n Note) string {
	names := []string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}
	idx := int(n) % 12
	if idx < 0 {
		idx += 12
	}
	octave := (int(n)-idx)/12 - 1
	return fmt.Sprintf("%s%d", names[idx], octave)
}

func clamp01(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 1 {
		return 1
	}
	return x
}

// unipolar normalizes a selector reading to [0,1]: pot readings pass
// through, the negative half of a bipolar jack is remapped by (x+1)/2.
func unipolar(x float64) float64 {
	if x < 0 {
		x = (x + 1) / 2
	}
	return clamp01(x)
}
