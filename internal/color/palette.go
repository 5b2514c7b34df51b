package color

import "math"

// RoomPalette groups the color suggestions for coordinating a room around
// a primary color.
type RoomPalette struct {
	Accent    []string `json:"accent"`
	Neutral   []string `json:"neutral"`
	Secondary []string `json:"secondary"`
}

// PaletteForRoom builds accent/neutral/secondary suggestions for a room
// type around the primary color. Unknown room types fall back to living.
func PaletteForRoom(primary, roomType string) (RoomPalette, error) {
	hsl, err := HexToHSL(primary)
	if err != nil {
		return RoomPalette{}, err
	}

	switch roomType {
	case "bedroom":
		accent, _ := Harmonious(primary, Monochromatic)
		secondary, _ := Harmonious(primary, Analogous)
		return RoomPalette{Accent: accent, Neutral: WarmNeutrals(), Secondary: secondary}, nil
	case "kitchen":
		accent, _ := Harmonious(primary, Complementary)
		secondary, _ := Harmonious(primary, SplitComplementary)
		return RoomPalette{Accent: accent, Neutral: CoolNeutrals(), Secondary: secondary}, nil
	case "dining":
		accent, _ := Harmonious(primary, Triadic)
		secondary, _ := Harmonious(primary, Analogous)
		return RoomPalette{Accent: accent, Neutral: WarmNeutrals(), Secondary: secondary}, nil
	default: // living
		accent, _ := Harmonious(primary, Complementary)
		secondary, _ := Harmonious(primary, Analogous)
		return RoomPalette{Accent: accent, Neutral: Neutrals(hsl), Secondary: secondary}, nil
	}
}

// Neutrals returns grays and whites plus two desaturated tints of the base
// hue, so the neutral set leans toward the room's primary color.
func Neutrals(base HSL) []string {
	return []string{
		"#F5F5F5",
		"#E8E8E8",
		"#D3D3D3",
		"#FFFFFF",
		"#F9F9F9",
		HSLToHex(base.H, 5, 85),
		HSLToHex(base.H, 10, 75),
	}
}

// WarmNeutrals returns beige and tan tones.
func WarmNeutrals() []string {
	return []string{
		"#F5F5DC",
		"#FAF0E6",
		"#FDF5E6",
		"#FFFAF0",
		"#F5DEB3",
		"#DEB887",
		"#D2B48C",
	}
}

// CoolNeutrals returns pale blue and lavender tones.
func CoolNeutrals() []string {
	return []string{
		"#F0F8FF",
		"#F5F5F5",
		"#E6E6FA",
		"#F0FFFF",
		"#F8F8FF",
		"#E0E0E0",
		"#D3D3D3",
	}
}

// PaletteProximity scores how close the item colors sit to any color of the
// room palette: the best pair's distance mapped through 1 - d/300, floored
// at 0.
func PaletteProximity(itemColors []string, palette RoomPalette) float64 {
	all := make([]string, 0, len(palette.Accent)+len(palette.Neutral)+len(palette.Secondary))
	all = append(all, palette.Accent...)
	all = append(all, palette.Neutral...)
	all = append(all, palette.Secondary...)

	var best float64
	for _, c := range itemColors {
		for _, rc := range all {
			distance, err := Distance(c, rc)
			if err != nil {
				continue
			}
			best = math.Max(best, math.Max(0, 1-distance/300))
		}
	}
	return best
}

// NeutralScore measures how neutral a palette is, in [0,1]. Each color
// earns 0.3 for low saturation (<20) and 0.4 for sitting within distance 50
// of a known neutral; the sum is averaged over the palette.
func NeutralScore(colors []string) float64 {
	if len(colors) == 0 {
		return 0
	}

	neutrals := Neutrals(HSL{H: 0, S: 0, L: 50})
	var score float64

	for _, c := range colors {
		hsl, err := HexToHSL(c)
		if err != nil {
			continue
		}
		if hsl.S < 20 {
			score += 0.3
		}
		for _, n := range neutrals {
			distance, err := Distance(c, n)
			if err != nil {
				continue
			}
			if distance < 50 {
				score += 0.4
				break
			}
		}
	}

	return math.Min(1, score/float64(len(colors)))
}
