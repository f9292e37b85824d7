package widgets

import (
	"strings"
	"testing"
)

func TestRenderPadRowOnePadPerColor(t *testing.T) {
	colors := [][3]uint8{{255, 0, 0}, {0, 255, 0}, {0, 0, 255}}
	row := RenderPadRow(colors)
	if got := strings.Count(row, "■"); got != len(colors) {
		t.Errorf("pad count = %d, want %d", got, len(colors))
	}
}

func TestRenderMeterFill(t *testing.T) {
	white := [3]uint8{255, 255, 255}

	full := RenderMeter(1, 10, white)
	if strings.Count(full, "█") != 10 || strings.Count(full, "░") != 0 {
		t.Errorf("full meter = %q", full)
	}
	empty := RenderMeter(-0.5, 10, white)
	if strings.Count(empty, "█") != 0 || strings.Count(empty, "░") != 10 {
		t.Errorf("clamped-empty meter = %q", empty)
	}
	half := RenderMeter(0.5, 10, white)
	if strings.Count(half, "█") != 5 || strings.Count(half, "░") != 5 {
		t.Errorf("half meter = %q", half)
	}
}

func TestRenderKeyHelp(t *testing.T) {
	out := RenderKeyHelp([]KeySection{
		{Title: "Keys", Keys: []KeyBinding{{Key: "q", Desc: "quit"}}},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || lines[0] != "Keys" {
		t.Fatalf("got %q", out)
	}
	if !strings.Contains(lines[1], "q") || !strings.Contains(lines[1], "quit") {
		t.Errorf("binding line = %q", lines[1])
	}
}
