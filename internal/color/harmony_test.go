package color

import (
	"math"
	"testing"
)

func TestHarmonious(t *testing.T) {
	t.Parallel()

	cases := []struct {
		harmony HarmonyType
		wantLen int
	}{
		{Complementary, 2},
		{Triadic, 3},
		{Analogous, 3},
		{SplitComplementary, 3},
		{Monochromatic, 4},
		{Tetradic, 1}, // not generated, base only
		{HarmonyType("unknown"), 1},
	}

	for _, tc := range cases {
		colors, err := Harmonious("#FF0000", tc.harmony)
		if err != nil {
			t.Fatalf("Harmonious(%s): %v", tc.harmony, err)
		}
		if len(colors) != tc.wantLen {
			t.Errorf("Harmonious(%s) len=%d want=%d", tc.harmony, len(colors), tc.wantLen)
		}
		if colors[0] != "#FF0000" {
			t.Errorf("Harmonious(%s) first=%q want base", tc.harmony, colors[0])
		}
	}

	comp, err := Harmonious("#FF0000", Complementary)
	if err != nil {
		t.Fatal(err)
	}
	if comp[1] != "#00ffff" {
		t.Errorf("complement of red=%q want=%q", comp[1], "#00ffff")
	}

	if _, err := Harmonious("nope", Complementary); err == nil {
		t.Error("want error for malformed base color")
	}
}

func TestCompatibility_Buckets(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		c1, c2 string
		want   float64
	}{
		// hue 90 apart, equal s/l: distance 180, complementary-like bucket
		{"complementary-like", "#FF0000", "#80FF00", 0.9},
		// hue 60 apart: distance 120, triadic-like bucket
		{"triadic-like", "#FF0000", "#FFFF00", 0.8},
		// hue 20 apart: distance 40, analogous bucket only
		{"analogous", "#FF0000", "#FF5500", 0.7},
		// hue 180 apart: distance 360, harsh contrast floored at 0
		{"harsh contrast", "#FF0000", "#00FFFF", 0},
	}

	for _, tc := range cases {
		got := Compatibility([]string{tc.c1}, []string{tc.c2})
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: Compatibility=%v want=%v", tc.name, got, tc.want)
		}
	}
}

// Identical colors land in both the analogous bonus and the too-similar
// penalty, netting 0.4. Close-but-distinct colors score higher. Pinned
// engine behavior.
func TestCompatibility_IdenticalColorsQuirk(t *testing.T) {
	t.Parallel()

	identical := Compatibility([]string{"#FF0000"}, []string{"#FF0000"})
	if math.Abs(identical-0.4) > 1e-9 {
		t.Fatalf("identical colors score=%v want=0.4", identical)
	}

	close := Compatibility([]string{"#FF0000"}, []string{"#FF5500"})
	if close <= identical {
		t.Errorf("close colors (%v) should outscore identical (%v)", close, identical)
	}
}

func TestCompatibility_Degenerate(t *testing.T) {
	t.Parallel()

	if got := Compatibility(nil, []string{"#FF0000"}); got != 0 {
		t.Errorf("empty palette score=%v want=0", got)
	}
	if got := Compatibility([]string{"#FF0000"}, nil); got != 0 {
		t.Errorf("empty palette score=%v want=0", got)
	}
	// All pairs malformed: no comparisons, score 0.
	if got := Compatibility([]string{"bad"}, []string{"also bad"}); got != 0 {
		t.Errorf("malformed palettes score=%v want=0", got)
	}
}

func TestBestHarmony(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		c1, c2   string
		wantType string
		want     float64
	}{
		{"complementary", "#FF0000", "#00FFFF", "complementary", 0.9},
		{"triadic", "#FF0000", "#00FF00", "triadic", 0.8},
		{"analogous", "#FF0000", "#FF5500", "analogous", 0.7},
		{"split-complementary", "#FF0000", "#00FF80", "split-complementary", 0.75},
		{"no band", "#FF0000", "#FFFF00", "", 0},
	}

	for _, tc := range cases {
		got := BestHarmony([]string{tc.c1}, []string{tc.c2})
		if got.Type != tc.wantType || math.Abs(got.Score-tc.want) > 1e-9 {
			t.Errorf("%s: BestHarmony=%+v want type=%q score=%v", tc.name, got, tc.wantType, tc.want)
		}
	}
}

func TestBestHarmony_PicksStrongest(t *testing.T) {
	t.Parallel()

	// Cyan pairs complementary with red (0.9) and triadic-ish with green;
	// the strongest relation wins.
	got := BestHarmony([]string{"#FF0000", "#00FF00"}, []string{"#00FFFF"})
	if got.Type != "complementary" || got.Score != 0.9 {
		t.Errorf("BestHarmony=%+v want complementary 0.9", got)
	}
}
