package main

import (
	"fmt"
	"os"
	"time"

	"gitlab.com/gomidi/midi/v2"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv"

	"go-arp/arp"
	"go-arp/platform"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		return
	}

	switch os.Args[1] {
	case "notes":
		printNotes()
	case "patterns":
		printPatterns()
	case "sweep":
		runSweep()
	case "ports":
		listPorts()
	default:
		usage()
	}
}

func usage() {
	fmt.Println("CV Test Scripts")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  notes    - Print the quantizer grid (note, name, voltage)")
	fmt.Println("  patterns - Print pattern tables and arpeggio notes")
	fmt.Println("  sweep    - Run the arpeggiator on a simulated clock")
	fmt.Println("  ports    - List MIDI output ports for the mirror")
}

func printNotes() {
	fmt.Println("=== Quantizer grid (1V/octave, 0V = B-1) ===")
	for n := arp.Note(11); n <= 71; n++ {
		v := arp.NoteToVoltage(n)
		fmt.Printf("  %3d %-4s %5.3fV  cv=%+.4f\n", n, arp.NoteName(n), v, v/arp.VoltsMax)
	}
	fmt.Println("\nNotes above 71 exceed the 5V DAC and clamp to the ceiling.")
}

func printPatterns() {
	engine := arp.NewPatternEngine(1)
	root := arp.Note(60)

	fmt.Printf("=== Patterns over a dominant-7th on %s ===\n", arp.NoteName(root))
	for k := arp.PatternKind(0); k < arp.NumPatternKinds; k++ {
		fmt.Printf("\n%-8s (len %d):", k.String(), k.Length())
		for step := 0; step < k.Length(); step++ {
			note := engine.StepNote(root, k, step)
			fmt.Printf("  %s", arp.NoteName(note))
		}
	}

	fmt.Println("\n\nSelector segments (normalized CV):")
	for k := arp.PatternKind(0); k < arp.NumPatternKinds; k++ {
		lo := float64(k) / float64(arp.NumPatternKinds)
		hi := float64(k+1) / float64(arp.NumPatternKinds)
		fmt.Printf("  [%.4f, %.4f)  %s\n", lo, hi, k.String())
	}
}

func runSweep() {
	hw := platform.NewFake()
	hw.Internal = true
	hw.TempoCV = 1.0        // 200 BPM, one step per 300ms
	hw.RootCV = 49.0 / 60.0 // middle C
	ctrl := arp.NewController(hw, time.Now().UnixNano())

	fmt.Println("=== 10 simulated seconds, internal clock at 200 BPM ===")
	fmt.Println("Cycling through every pattern kind:")

	for ms := uint32(0); ms < 10000; ms++ {
		kind := arp.PatternKind(ms / 1700 % arp.NumPatternKinds)
		hw.PatternCV = (float64(kind) + 0.5) / float64(arp.NumPatternKinds)
		ctrl.Tick(hw.NowMs())
		hw.Advance(1)
	}

	last := arp.PatternKind(-1)
	for _, w := range hw.PitchWrites {
		kind := arp.PatternKind(w.At / 1700 % arp.NumPatternKinds)
		if kind != last {
			fmt.Printf("\n%-8s", kind.String())
			last = kind
		}
		note := arp.QuantizeCV(w.Volts / arp.VoltsMax)
		fmt.Printf("  %5dms %s", w.At, arp.NoteName(note))
	}
	fmt.Printf("\n\n%d steps, %d gate edges\n", len(hw.PitchWrites), len(hw.GateWrites))
}

func listPorts() {
	fmt.Println("=== MIDI Output Ports ===")
	outs := midi.GetOutPorts()
	if len(outs) == 0 {
		fmt.Println("  (none)")
		return
	}
	for i, p := range outs {
		fmt.Printf("  %d: %s\n", i, p.String())
	}
}
