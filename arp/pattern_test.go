package arp

import "testing"

func TestPatternTables(t *testing.T) {
	cases := []struct {
		kind PatternKind
		want []int
	}{
		{PatternUp, []int{0, 1, 2, 3}},
		{PatternDown, []int{3, 2, 1, 0}},
		{PatternUpDown, []int{0, 1, 2, 3, 2, 1}},
		{PatternDownUp, []int{3, 2, 1, 0, 1, 2}},
		{PatternCustom1324, []int{0, 2, 1, 3}},
	}
	e := NewPatternEngine(1)
	for _, c := range cases {
		if c.kind.Length() != len(c.want) {
			t.Errorf("%s length = %d, want %d", c.kind, c.kind.Length(), len(c.want))
		}
		for step, want := range c.want {
			if got := e.Degree(c.kind, step); got != want {
				t.Errorf("%s step %d degree = %d, want %d", c.kind, step, got, want)
			}
		}
	}
}

func TestChordVoicing(t *testing.T) {
	want := [4]int{0, 4, 7, 10}
	if ChordVoicing != want {
		t.Errorf("ChordVoicing = %v, want %v", ChordVoicing, want)
	}
}

func TestStepNoteComposesRoot(t *testing.T) {
	e := NewPatternEngine(1)
	want := []Note{60, 64, 67, 70}
	for step, w := range want {
		if got := e.StepNote(60, PatternUp, step); got != w {
			t.Errorf("step %d note = %d, want %d", step, got, w)
		}
	}
}

func TestPatternFromCVSegments(t *testing.T) {
	cases := []struct {
		cv   float64
		want PatternKind
	}{
		{0.0, PatternUp},
		{0.16, PatternUp},
		{0.25, PatternDown},
		{0.40, PatternUpDown},
		{0.5, PatternDownUp},
		{0.70, PatternRandom},
		{0.90, PatternCustom1324},
		{1.0, PatternCustom1324},  // top boundary clamps to the last kind
		{1.5, PatternCustom1324},  // out of range clamps
		{-1.0, PatternUp},         // bipolar remap: (x+1)/2
		{-0.5, PatternDown},       // remaps to 0.25
	}
	for _, c := range cases {
		if got := PatternFromCV(c.cv); got != c.want {
			t.Errorf("PatternFromCV(%v) = %s, want %s", c.cv, got, c.want)
		}
	}
}

func TestRandomDegreesDeterministicPerSeed(t *testing.T) {
	a := NewPatternEngine(42)
	b := NewPatternEngine(42)
	for step := 0; step < 32; step++ {
		da := a.Degree(PatternRandom, step)
		db := b.Degree(PatternRandom, step)
		if da != db {
			t.Fatalf("same seed diverged at step %d: %d vs %d", step, da, db)
		}
		if da < 0 || da > 3 {
			t.Fatalf("random degree %d out of range at step %d", da, step)
		}
	}
}

func TestRandomLengthIsFour(t *testing.T) {
	if l := PatternRandom.Length(); l != 4 {
		t.Errorf("Random length = %d, want 4", l)
	}
}
