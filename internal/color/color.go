// Package color implements the HSL color model used by the style and
// matching engines: hex/HSL conversion, a hue-weighted distance metric,
// harmony generation, and palette compatibility scoring.
//
// The distance metric and all scoring thresholds are a fixed heuristic
// policy, not a perceptual color model; they are only meaningful for
// relative comparison.
package color

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// HSL holds rounded hue (degrees), saturation and lightness (percent).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// FormatError reports a color string that is not 6 hex digits.
type FormatError struct {
	Value string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid hex color %q", e.Value)
}

// HexToHSL converts a "#RRGGBB" string (leading # optional,
// case-insensitive) to HSL. Achromatic colors get hue 0, saturation 0.
func HexToHSL(hex string) (HSL, error) {
	s := strings.TrimPrefix(hex, "#")
	if len(s) != 6 {
		return HSL{}, &FormatError{Value: hex}
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return HSL{}, &FormatError{Value: hex}
	}

	r := float64(v>>16&0xFF) / 255
	g := float64(v>>8&0xFF) / 255
	b := float64(v&0xFF) / 255

	max := math.Max(r, math.Max(g, b))
	min := math.Min(r, math.Min(g, b))

	l := (max + min) / 2
	var h, sat float64

	if max != min {
		d := max - min
		if l > 0.5 {
			sat = d / (2 - max - min)
		} else {
			sat = d / (max + min)
		}
		switch max {
		case r:
			h = (g - b) / d
			if g < b {
				h += 6
			}
		case g:
			h = (b-r)/d + 2
		case b:
			h = (r-g)/d + 4
		}
		h /= 6
	}

	return HSL{
		H: int(math.Round(h * 360)),
		S: int(math.Round(sat * 100)),
		L: int(math.Round(l * 100)),
	}, nil
}

// HSLToHex converts HSL components back to a lower-case "#rrggbb" string.
func HSLToHex(h, s, l int) string {
	hf := float64(h) / 360
	sf := float64(s) / 100
	lf := float64(l) / 100

	var r, g, b float64
	if sf == 0 {
		r, g, b = lf, lf, lf
	} else {
		var q float64
		if lf < 0.5 {
			q = lf * (1 + sf)
		} else {
			q = lf + sf - lf*sf
		}
		p := 2*lf - q
		r = hueToRGB(p, q, hf+1.0/3)
		g = hueToRGB(p, q, hf)
		b = hueToRGB(p, q, hf-1.0/3)
	}

	return fmt.Sprintf("#%02x%02x%02x",
		int(math.Round(r*255)),
		int(math.Round(g*255)),
		int(math.Round(b*255)))
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// Distance returns the weighted Euclidean distance between two colors in
// HSL space. Hue difference is circular and weighted 2x against saturation
// and lightness.
func Distance(c1, c2 string) (float64, error) {
	hsl1, err := HexToHSL(c1)
	if err != nil {
		return 0, err
	}
	hsl2, err := HexToHSL(c2)
	if err != nil {
		return 0, err
	}
	return hslDistance(hsl1, hsl2), nil
}

func hslDistance(a, b HSL) float64 {
	hueDiff := circularHueDiff(a.H, b.H)

	const (
		hueWeight   = 2
		satWeight   = 1
		lightWeight = 1
	)

	return math.Sqrt(
		math.Pow(hueDiff*hueWeight, 2) +
			math.Pow(float64(a.S-b.S)*satWeight, 2) +
			math.Pow(float64(a.L-b.L)*lightWeight, 2))
}

func circularHueDiff(h1, h2 int) float64 {
	d := math.Abs(float64(h1 - h2))
	return math.Min(d, 360-d)
}
