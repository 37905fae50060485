package theme

import "testing"

func TestPresetNamesAllExist(t *testing.T) {
	for _, name := range PresetNames {
		if _, ok := Presets[name]; !ok {
			t.Fatalf("PresetNames lists %q but Presets has no entry for it", name)
		}
	}
}

func TestParseRGBDecodesHex(t *testing.T) {
	rgb, err := ParseRGB("#bd93f9")
	if err != nil {
		t.Fatal(err)
	}
	if rgb.R != 0xbd || rgb.G != 0x93 || rgb.B != 0xf9 {
		t.Fatalf("got %+v", rgb)
	}
}

func TestParseRGBRejectsMalformed(t *testing.T) {
	for _, bad := range []string{"bd93f9", "#bd93f", "#gggggg", ""} {
		if _, err := ParseRGB(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestToPaletteConvertsEveryField(t *testing.T) {
	pal := Presets["dracula"].Config.ToPalette()
	want, _ := ParseRGB("#bd93f9")
	if pal.Accent != want {
		t.Fatalf("accent = %+v, want %+v", pal.Accent, want)
	}
}

func TestMustRGBFallsBackOnBadColor(t *testing.T) {
	cfg := Config{FG: "not-a-color"}
	pal := cfg.ToPalette()
	if pal.FG.R != 255 || pal.FG.G != 255 || pal.FG.B != 255 {
		t.Fatalf("expected white fallback, got %+v", pal.FG)
	}
}
