// Package mirror echoes the module's CV/gate outputs to a MIDI port so
// the simulated arpeggio can drive a real synth. It observes output
// writes from the platform; the control core never sees it.
package mirror

import (
	"fmt"
	"strings"
	"sync"

	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register MIDI driver

	"go-arp/arp"
	"go-arp/debug"
	"go-arp/platform"
)

const velocity = 100

// Mirror converts pitch CV + gate edges into NoteOn/NoteOff pairs.
type Mirror struct {
	mu      sync.Mutex
	send    func(msg gomidi.Message) error
	channel uint8

	pitchVolts float64
	sounding   int // MIDI note currently on, -1 if none
}

// Open connects to the first MIDI output port whose name contains
// portName (case-insensitive). An empty portName takes the first port.
func Open(portName string, channel int) (*Mirror, error) {
	var outPort drivers.Out
	for _, op := range gomidi.GetOutPorts() {
		if portName == "" || strings.Contains(strings.ToLower(op.String()), strings.ToLower(portName)) {
			outPort = op
			break
		}
	}
	if outPort == nil {
		return nil, fmt.Errorf("no MIDI output port matching %q", portName)
	}

	send, err := gomidi.SendTo(outPort)
	if err != nil {
		return nil, fmt.Errorf("open output: %w", err)
	}

	if channel < 1 || channel > 16 {
		channel = 1
	}
	debug.Log("mirror", "connected to %s on channel %d", outPort.String(), channel)

	return &Mirror{
		send:     send,
		channel:  uint8(channel - 1),
		sounding: -1,
	}, nil
}

// CVWritten tracks the pitch output; the note is read on the next gate
// rising edge.
func (m *Mirror) CVWritten(ch platform.Channel, volts float64) {
	if ch != platform.CVOutPitch {
		return
	}
	debug.LogEvery(32, "mirror", "pitch cv %.3fV", volts)
	m.mu.Lock()
	m.pitchVolts = volts
	m.mu.Unlock()
}

// GateWritten converts gate edges into note events. A rising edge starts
// the note currently on the pitch output; a falling edge releases it.
func (m *Mirror) GateWritten(ch platform.Channel, high bool) {
	if ch != platform.GateOut {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.sounding >= 0 {
		if err := m.send(gomidi.NoteOff(m.channel, uint8(m.sounding))); err != nil {
			debug.Log("mirror", "note off failed: %v", err)
		}
		m.sounding = -1
	}
	if !high {
		return
	}

	note := int(arp.QuantizeCV(m.pitchVolts / arp.VoltsMax))
	if note < 0 {
		note = 0
	}
	if note > 127 {
		note = 127
	}
	if err := m.send(gomidi.NoteOn(m.channel, uint8(note), velocity)); err != nil {
		debug.Log("mirror", "note on failed: %v", err)
		return
	}
	m.sounding = note
}

// Close releases any sounding note.
func (m *Mirror) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.sounding >= 0 {
		if err := m.send(gomidi.NoteOff(m.channel, uint8(m.sounding))); err != nil {
			debug.Log("mirror", "note off failed: %v", err)
		}
		m.sounding = -1
	}
}

var _ platform.OutputObserver = (*Mirror)(nil)
