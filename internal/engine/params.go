package engine

import (
	"strconv"
	"strings"
)

// ControlType tells the frontend which widget to build for a parameter.
type ControlType string

const (
	ControlSlider ControlType = "slider"
	ControlSelect ControlType = "select"
	ControlText   ControlType = "text"
)

// Control describes one tunable parameter of an algorithm: the UI builds a
// widget from it and the engine uses Default when the key is absent from a
// layer's parameter bag.
type Control struct {
	Key     string      `json:"key"`
	Label   string      `json:"label"`
	Type    ControlType `json:"type"`
	Min     float64     `json:"min,omitempty"`
	Max     float64     `json:"max,omitempty"`
	Step    float64     `json:"step,omitempty"`
	Options []string    `json:"options,omitempty"`
	Default any         `json:"defaultValue"`
}

// AlgorithmInfo is the public metadata of one generator.
type AlgorithmInfo struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Controls []Control `json:"controls"`
}

// Defaults builds the parameter bag implied by the control catalog.
func (a AlgorithmInfo) Defaults() Params {
	p := make(Params, len(a.Controls))
	for _, c := range a.Controls {
		p[c.Key] = c.Default
	}
	return p
}

// Params is an open mapping from parameter name to number or string, as
// decoded from JSON. Unknown or missing keys fall back to per-call defaults;
// lookups never fail.
type Params map[string]any

// Float reads a numeric parameter, accepting JSON numbers, Go ints, and
// numeric strings. Anything else yields the default.
func (p Params) Float(key string, def float64) float64 {
	v, ok := p[key]
	if !ok {
		return def
	}
	switch t := v.(type) {
	case float64:
		return t
	case float32:
		return float64(t)
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
			return f
		}
	}
	return def
}

// ClampedFloat reads a numeric parameter and clamps it into [lo, hi].
func (p Params) ClampedFloat(key string, def, lo, hi float64) float64 {
	return clampFloat(p.Float(key, def), lo, hi)
}

// Int reads an integer parameter, truncating fractional input.
func (p Params) Int(key string, def int) int {
	return int(p.Float(key, float64(def)))
}

// ClampedInt reads an integer parameter and clamps it into [lo, hi].
func (p Params) ClampedInt(key string, def, lo, hi int) int {
	return clampInt(p.Int(key, def), lo, hi)
}

// String reads a string parameter; empty values yield the default.
func (p Params) String(key, def string) string {
	if v, ok := p[key].(string); ok && strings.TrimSpace(v) != "" {
		return strings.TrimSpace(v)
	}
	return def
}

// Colors reads a color-list parameter. It accepts a JSON string array, a Go
// string slice, or a comma-separated string, and resolves the result through
// the palette table.
func (p Params) Colors(key string) []string {
	var colors []string
	switch v := p[key].(type) {
	case []string:
		colors = v
	case []any:
		for _, e := range v {
			if s, ok := e.(string); ok && s != "" {
				colors = append(colors, s)
			}
		}
	case string:
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				colors = append(colors, part)
			}
		}
	}
	return ResolvePalette(colors)
}
