package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"go-arp/arp"
	"go-arp/platform"
	"go-arp/theme"
	"go-arp/widgets"
)

// Knob step sizes in normalized CV units. One semitone on the root jack
// is 1/12 V over a 5 V half-range.
const (
	semitoneCV = 1.0 / 60.0
	octaveCV   = 12.0 / 60.0
	tempoStep  = 0.05
)

type Model struct {
	Controller *arp.Controller
	Sim        *platform.Sim
	Theme      *theme.Theme
	quitting   bool
}

// frameMsg drives the ~30 FPS redraw.
type frameMsg time.Time

func NewModel(ctrl *arp.Controller, sim *platform.Sim, th *theme.Theme) Model {
	return Model{
		Controller: ctrl,
		Sim:        sim,
		Theme:      th,
	}
}

func frameTick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

func (m Model) Init() tea.Cmd {
	return frameTick()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		root, tempo, _, internal := m.Sim.Inputs()

		switch msg.String() {
		case "q", "ctrl+c":
			m.quitting = true
			return m, tea.Quit

		case "m":
			m.Sim.SetInternalClock(!internal)

		case "g", " ":
			m.Sim.TapGate()

		case "k":
			m.Sim.SetRootCV(root + semitoneCV)
		case "j":
			m.Sim.SetRootCV(root - semitoneCV)
		case "K":
			m.Sim.SetRootCV(root + octaveCV)
		case "J":
			m.Sim.SetRootCV(root - octaveCV)

		case "l":
			m.Sim.SetTempoCV(tempo + tempoStep)
		case "h":
			m.Sim.SetTempoCV(tempo - tempoStep)

		case "p":
			next := (m.Controller.Snapshot().State.Pattern + 1) % arp.NumPatternKinds
			m.Sim.SetPatternCV((float64(next) + 0.5) / float64(arp.NumPatternKinds))
		}

	case frameMsg:
		return m, frameTick()
	}

	return m, nil
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.Controller.Snapshot()
	root, tempo, pattern, _ := m.Sim.Inputs()
	pitchVolts, ledVolts, gateHigh := m.Sim.Outputs()

	headerStyle := lipgloss.NewStyle().Foreground(m.Theme.Accent())
	dimStyle := lipgloss.NewStyle().Foreground(m.Theme.Muted())
	activeStyle := lipgloss.NewStyle().Foreground(m.Theme.Active())

	runState := "IDLE"
	if snap.State.Running {
		runState = "RUN"
	}
	rootName := arp.NoteName(snap.State.Root)
	if snap.State.HasPending {
		rootName += ">" + arp.NoteName(snap.State.Pending)
	}
	header := headerStyle.Render(fmt.Sprintf("go-arp  %s %s  %5.1fbpm  %s  root:%s",
		snap.Mode, runState, snap.Tempo, snap.State.Pattern, rootName))

	// Step row: one pad per pattern step, playhead highlighted.
	padColors := make([][3]uint8, snap.State.Pattern.Length())
	for i := range padColors {
		if snap.State.Running && i == snap.State.Step {
			padColors[i] = m.Theme.RGB(theme.RoleActive)
		} else {
			padColors[i] = m.Theme.RGB(theme.RoleMuted)
		}
	}
	gateSym := m.Theme.Symbols.GateLow
	gateStyle := dimStyle
	if gateHigh {
		gateSym = m.Theme.Symbols.GateHigh
		gateStyle = activeStyle
	}
	stepLine := widgets.RenderPadRow(padColors) + "   gate " + gateStyle.Render(string(gateSym))

	// Knobs and outputs as meters colored by palette position.
	meterW := 20
	knobs := strings.Join([]string{
		fmt.Sprintf("  root    %s %+5.2f", widgets.RenderMeter((root+1)/2, meterW, m.Theme.RGB(theme.RoleCursor)), root),
		fmt.Sprintf("  tempo   %s %5.2f", widgets.RenderMeter(tempo, meterW, m.Theme.RGB(theme.RoleAccent)), tempo),
		fmt.Sprintf("  pattern %s %5.2f", widgets.RenderMeter(pattern, meterW, m.Theme.RGB(theme.RoleWarning)), pattern),
	}, "\n")
	outs := strings.Join([]string{
		fmt.Sprintf("  pitch   %s %4.2fV", widgets.RenderMeter(pitchVolts/arp.VoltsMax, meterW, m.Theme.RGB(theme.RoleSuccess)), pitchVolts),
		fmt.Sprintf("  led     %s %4.2fV", widgets.RenderMeter(ledVolts/arp.VoltsMax, meterW, m.Theme.RGB(theme.RoleActive)), ledVolts),
	}, "\n")

	help := dimStyle.Render(widgets.RenderKeyHelp([]widgets.KeySection{
		{Keys: []widgets.KeyBinding{
			{Key: "g/space", Desc: "tap external clock"},
			{Key: "m", Desc: "clock mode INT/EXT"},
			{Key: "j/k J/K", Desc: "root semitone/octave"},
			{Key: "h/l", Desc: "tempo CV"},
			{Key: "p", Desc: "next pattern"},
			{Key: "q", Desc: "quit"},
		}},
	}))

	var out strings.Builder
	out.WriteString("\n")
	out.WriteString(header)
	out.WriteString("\n\n")
	out.WriteString(stepLine)
	out.WriteString("\n\n")
	out.WriteString(knobs)
	out.WriteString("\n")
	out.WriteString(outs)
	out.WriteString("\n\n")
	out.WriteString(help)

	return out.String()
}
