package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParamsFloat(t *testing.T) {
	p := Params{
		"number":  42.5,
		"integer": 7,
		"text":    "3.25",
		"junk":    "not a number",
	}

	assert.Equal(t, 42.5, p.Float("number", 0))
	assert.Equal(t, 7.0, p.Float("integer", 0))
	assert.Equal(t, 3.25, p.Float("text", 0))
	assert.Equal(t, 9.9, p.Float("junk", 9.9))
	assert.Equal(t, 9.9, p.Float("missing", 9.9))
}

func TestParamsClamped(t *testing.T) {
	p := Params{"density": 500.0, "depth": -3.0}

	assert.Equal(t, 100.0, p.ClampedFloat("density", 50, 1, 100))
	assert.Equal(t, 1, p.ClampedInt("depth", 4, 1, 12))
	assert.Equal(t, 4, p.ClampedInt("missing", 4, 1, 12))
}

func TestParamsString(t *testing.T) {
	p := Params{"rule": "  23/3 ", "blank": "   ", "number": 5.0}

	assert.Equal(t, "23/3", p.String("rule", "x"))
	assert.Equal(t, "x", p.String("blank", "x"))
	assert.Equal(t, "x", p.String("number", "x"))
	assert.Equal(t, "x", p.String("missing", "x"))
}

func TestParamsColors(t *testing.T) {
	tests := []struct {
		name string
		p    Params
		want []string
	}{
		{"json array", Params{"colors": []any{"#111111", "#222222"}}, []string{"#111111", "#222222"}},
		{"comma string single hue", Params{"colors": "teal"}, tonalPalettes["teal"]},
		{"comma string multi", Params{"colors": "#aaa, #bbb"}, []string{"#aaa", "#bbb"}},
		{"missing defaults", Params{}, tonalPalettes["purple"]},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.p.Colors("colors"))
		})
	}
}

func TestAlgorithmDefaults(t *testing.T) {
	for _, info := range Algorithms() {
		defaults := info.Defaults()
		assert.Len(t, defaults, len(info.Controls), "%s: every control contributes a default", info.ID)
		for _, c := range info.Controls {
			assert.NotEmpty(t, c.Key, "%s: control keys must be set", info.ID)
			assert.Contains(t, defaults, c.Key)
		}
	}
}
