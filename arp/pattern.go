package arp

import "math/rand"

// PatternKind selects the traversal order over the chord voicing.
type PatternKind int

const (
	PatternUp PatternKind = iota
	PatternDown
	PatternUpDown
	PatternDownUp
	PatternRandom
	PatternCustom1324

	NumPatternKinds = 6
)

var patternNames = []string{"Up", "Down", "UpDown", "DownUp", "Random", "1324"}

func (k PatternKind) String() string {
	if k < 0 || int(k) >= len(patternNames) {
		return "?"
	}
	return patternNames[k]
}

// ChordVoicing is the dominant-7th voicing: root, major 3rd, perfect 5th,
// minor 7th. It is never mutated.
var ChordVoicing = [4]int{0, 4, 7, 10}

// Degree tables, indices into ChordVoicing. Random only contributes its
// length; degrees are drawn per step.
var patternTables = [NumPatternKinds][]int{
	PatternUp:         {0, 1, 2, 3},
	PatternDown:       {3, 2, 1, 0},
	PatternUpDown:     {0, 1, 2, 3, 2, 1},
	PatternDownUp:     {3, 2, 1, 0, 1, 2},
	PatternRandom:     {0, 1, 2, 3},
	PatternCustom1324: {0, 2, 1, 3},
}

// Length returns the number of steps before the step index wraps to zero.
func (k PatternKind) Length() int {
	if k < 0 || int(k) >= NumPatternKinds {
		k = NumPatternKinds - 1
	}
	return len(patternTables[k])
}

// PatternFromCV divides the normalized selector into NumPatternKinds equal
// segments; the top boundary clamps to the last kind.
func PatternFromCV(x float64) PatternKind {
	k := PatternKind(unipolar(x) * NumPatternKinds)
	if k >= NumPatternKinds {
		k = NumPatternKinds - 1
	}
	return k
}

// PatternEngine maps (kind, step) to a chord degree and composes it with
// the latched root. It owns the random source for the Random kind.
type PatternEngine struct {
	rng *rand.Rand
}

// NewPatternEngine creates an engine with the given PRNG seed. Tests pass
// a fixed seed for reproducible Random traversals.
func NewPatternEngine(seed int64) *PatternEngine {
	return &PatternEngine{rng: rand.New(rand.NewSource(seed))}
}

// Degree returns a chord degree in {0,1,2,3} for this step.
func (e *PatternEngine) Degree(kind PatternKind, step int) int {
	if kind == PatternRandom {
		return e.rng.Intn(len(ChordVoicing))
	}
	if kind < 0 || int(kind) >= NumPatternKinds {
		kind = NumPatternKinds - 1
	}
	table := patternTables[kind]
	return table[step%len(table)]
}

// StepNote composes the root with the chord degree for this step.
func (e *PatternEngine) StepNote(root Note, kind PatternKind, step int) Note {
	return root + Note(ChordVoicing[e.Degree(kind, step)])
}
