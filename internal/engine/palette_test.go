package engine

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolvePalette(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		want  []string
	}{
		{"exact hue", []string{"teal"}, tonalPalettes["teal"]},
		{"substring match", []string{"deep-blue"}, tonalPalettes["blue"]},
		{"case and whitespace", []string{"  GREEN "}, tonalPalettes["green"]},
		{"unknown defaults to purple", []string{"#ff00ff"}, tonalPalettes["purple"]},
		{"empty defaults to purple", nil, tonalPalettes["purple"]},
		{"multi passes through", []string{"#111111", "#222222"}, []string{"#111111", "#222222"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolvePalette(tt.input))
		})
	}
}

func TestResolvePaletteIdempotent(t *testing.T) {
	// Resolving an already-resolved palette must not change it, so layer
	// params can round-trip through the resolver any number of times.
	once := ResolvePalette([]string{"indigo"})
	assert.Equal(t, once, ResolvePalette(once))
}

func TestPickColor(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	palette := tonalPalettes["red"]
	for i := 0; i < 50; i++ {
		assert.Contains(t, palette, PickColor(rng, palette))
	}
	assert.Contains(t, tonalPalettes["purple"], PickColor(rng, nil))
}

func TestShadeHex(t *testing.T) {
	assert.Equal(t, "#000000", shadeHex("#ffffff", 0))
	assert.Equal(t, "#ffffff", shadeHex("#ffffff", 2))
	assert.Equal(t, "#7f7f7f", shadeHex("#ffffff", 0.5))
	assert.Equal(t, "not-a-color", shadeHex("not-a-color", 0.5))
	assert.Equal(t, "#fff", shadeHex("#fff", 0.5))
}
