package engine

import (
	"fmt"
	"math/rand"
	"strconv"
	"strings"
)

// tonalPalettes maps each named hue family to five tonal hex variants,
// light to dark.
var tonalPalettes = map[string][]string{
	"purple": {"#c084fc", "#a855f7", "#9333ea", "#7e22ce", "#6b21a8"},
	"blue":   {"#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af"},
	"green":  {"#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534"},
	"red":    {"#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b"},
	"yellow": {"#fde047", "#facc15", "#eab308", "#ca8a04", "#a16207"},
	"pink":   {"#f472b6", "#ec4899", "#db2777", "#be185d", "#9d174d"},
	"indigo": {"#818cf8", "#6366f1", "#4f46e5", "#4338ca", "#3730a3"},
	"teal":   {"#2dd4bf", "#14b8a6", "#0d9488", "#0f766e", "#115e59"},
}

// hueOrder fixes the match order so substring matching is deterministic.
var hueOrder = []string{"purple", "blue", "green", "red", "yellow", "pink", "indigo", "teal"}

// ResolvePalette expands a single base color into its five tonal variants.
// Multi-color input passes through unchanged; empty or unmatched input
// defaults to the purple set.
func ResolvePalette(colors []string) []string {
	if len(colors) > 1 {
		return colors
	}
	if len(colors) == 1 {
		token := strings.ToLower(strings.TrimSpace(colors[0]))
		for _, hue := range hueOrder {
			if token == hue || strings.Contains(token, hue) {
				return tonalPalettes[hue]
			}
		}
	}
	return tonalPalettes["purple"]
}

// PickColor selects a uniformly random entry from the palette. An empty
// palette falls back to the purple set.
func PickColor(rng *rand.Rand, palette []string) string {
	if len(palette) == 0 {
		palette = tonalPalettes["purple"]
	}
	return palette[rng.Intn(len(palette))]
}

// shadeHex darkens (factor < 1) or lightens (factor > 1) a #rrggbb color.
// Non-hex input is returned unchanged.
func shadeHex(hex string, factor float64) string {
	if len(hex) != 7 || hex[0] != '#' {
		return hex
	}
	r, err1 := strconv.ParseInt(hex[1:3], 16, 32)
	g, err2 := strconv.ParseInt(hex[3:5], 16, 32)
	b, err3 := strconv.ParseInt(hex[5:7], 16, 32)
	if err1 != nil || err2 != nil || err3 != nil {
		return hex
	}
	scale := func(v int64) int64 {
		s := int64(float64(v) * factor)
		if s < 0 {
			return 0
		}
		if s > 255 {
			return 255
		}
		return s
	}
	return fmt.Sprintf("#%02x%02x%02x", scale(r), scale(g), scale(b))
}
