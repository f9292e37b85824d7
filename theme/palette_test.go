package theme

import "testing"

func TestPaletteAssetMatchesBuiltin(t *testing.T) {
	p := MustLoadGPL("../palettes/plasma.gpl")
	if p.Name != "Plasma" {
		t.Errorf("name = %q, want Plasma", p.Name)
	}
	def := Default()
	if len(p.Colors) != len(def.Colors) {
		t.Fatalf("asset has %d stops, want %d", len(p.Colors), len(def.Colors))
	}
	for i, c := range def.Colors {
		if p.Colors[i] != c {
			t.Errorf("stop %d = %v, want %v", i, p.Colors[i], c)
		}
	}
}

func TestLoadGPLMissingFile(t *testing.T) {
	if _, err := LoadGPL("no-such-palette.gpl"); err == nil {
		t.Error("expected an error for a missing palette file")
	}
}

func TestLookupEndpoints(t *testing.T) {
	p := Default()
	if got := p.Lookup(0); got != p.Colors[0] {
		t.Errorf("Lookup(0) = %v, want first stop %v", got, p.Colors[0])
	}
	if got := p.Lookup(1); got != p.Colors[len(p.Colors)-1] {
		t.Errorf("Lookup(1) = %v, want last stop %v", got, p.Colors[len(p.Colors)-1])
	}
	if got := p.Lookup(-0.5); got != p.Colors[0] {
		t.Errorf("Lookup clamps below: got %v", got)
	}
	if got := p.Lookup(2); got != p.Colors[len(p.Colors)-1] {
		t.Errorf("Lookup clamps above: got %v", got)
	}
}

func TestLookupInterpolates(t *testing.T) {
	p := &Palette{Colors: []RGB{{0, 0, 0}, {100, 200, 50}}}
	got := p.Lookup(0.5)
	want := RGB{50, 100, 25}
	if got != want {
		t.Errorf("Lookup(0.5) = %v, want %v", got, want)
	}
}

func TestIndexClamps(t *testing.T) {
	p := Default()
	if p.Index(-3) != p.Colors[0] {
		t.Error("Index should clamp below zero")
	}
	if p.Index(99) != p.Colors[len(p.Colors)-1] {
		t.Error("Index should clamp past the end")
	}
}
