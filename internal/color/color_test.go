package color

import (
	"errors"
	"math"
	"testing"
)

func TestHexToHSL_KnownColors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hex  string
		want HSL
	}{
		{"#FF0000", HSL{H: 0, S: 100, L: 50}},
		{"#00FF00", HSL{H: 120, S: 100, L: 50}},
		{"#0000FF", HSL{H: 240, S: 100, L: 50}},
		{"#FFFFFF", HSL{H: 0, S: 0, L: 100}},
		{"#000000", HSL{H: 0, S: 0, L: 0}},
		{"#808080", HSL{H: 0, S: 0, L: 50}},
		{"ff0000", HSL{H: 0, S: 100, L: 50}},  // leading # optional
		{"#ff0000", HSL{H: 0, S: 100, L: 50}}, // case-insensitive
	}

	for _, tc := range cases {
		got, err := HexToHSL(tc.hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", tc.hex, err)
		}
		if got != tc.want {
			t.Errorf("HexToHSL(%q)=%+v want=%+v", tc.hex, got, tc.want)
		}
	}
}

func TestHexToHSL_Invalid(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"", "#FFF", "#GGGGGG", "#12345", "not-a-color"} {
		_, err := HexToHSL(hex)
		if err == nil {
			t.Errorf("HexToHSL(%q): want error", hex)
		}
		var fe *FormatError
		if !errors.As(err, &fe) {
			t.Errorf("HexToHSL(%q): error type %T, want *FormatError", hex, err)
		}
	}
}

func TestHSLToHex_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, hex := range []string{"#FF0000", "#00FF00", "#0000FF", "#808080", "#8B4513", "#4169E1", "#F5F5DC"} {
		hsl, err := HexToHSL(hex)
		if err != nil {
			t.Fatalf("HexToHSL(%q): %v", hex, err)
		}
		back, err := HexToHSL(HSLToHex(hsl.H, hsl.S, hsl.L))
		if err != nil {
			t.Fatalf("round trip %q: %v", hex, err)
		}
		if absInt(back.H-hsl.H) > 1 || absInt(back.S-hsl.S) > 1 || absInt(back.L-hsl.L) > 1 {
			t.Errorf("round trip %q: got %+v want %+v", hex, back, hsl)
		}
	}
}

func TestDistance(t *testing.T) {
	t.Parallel()

	same, err := Distance("#FF0000", "#FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if same != 0 {
		t.Errorf("identical colors distance=%v want=0", same)
	}

	// Red vs cyan: hue 180 apart at equal s/l, hue weighted 2x.
	d, err := Distance("#FF0000", "#00FFFF")
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(d-360) > 1e-9 {
		t.Errorf("red/cyan distance=%v want=360", d)
	}

	ab, _ := Distance("#FF0000", "#4169E1")
	ba, _ := Distance("#4169E1", "#FF0000")
	if ab != ba {
		t.Errorf("distance not symmetric: %v vs %v", ab, ba)
	}

	if _, err := Distance("bad", "#FF0000"); err == nil {
		t.Error("want error for malformed color")
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
