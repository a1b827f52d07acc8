package engine

import (
	"math"
	"math/rand"
	"strings"
)

const (
	maxLSystemIterations = 7
	// Hard cap on the rewritten string so pathological rules cannot grow
	// memory without bound.
	maxLSystemLength = 50000
)

// lsystemPreset is a named axiom + rule set with its natural turn angle.
type lsystemPreset struct {
	axiom string
	rules map[rune]string
	angle float64 // degrees
}

var lsystemPresets = map[string]lsystemPreset{
	"koch":       {axiom: "F", rules: map[rune]string{'F': "F+F-F-F+F"}, angle: 90},
	"dragon":     {axiom: "FX", rules: map[rune]string{'X': "X+YF+", 'Y': "-FX-Y"}, angle: 90},
	"sierpinski": {axiom: "F-G-G", rules: map[rune]string{'F': "F-G+F+G-F", 'G': "GG"}, angle: 120},
	"plant":      {axiom: "X", rules: map[rune]string{'X': "F+[[X]-X]-F[-FX]+X", 'F': "FF"}, angle: 25},
	"tree":       {axiom: "F", rules: map[rune]string{'F': "F[+F]F[-F]F"}, angle: 25.7},
	"levy":       {axiom: "F", rules: map[rune]string{'F': "+F--F+"}, angle: 45},
	"hilbert":    {axiom: "A", rules: map[rune]string{'A': "+BF-AFA-FB+", 'B': "-AF+BFB+FA-"}, angle: 90},
	"gosper":     {axiom: "F", rules: map[rune]string{'F': "F-G--G+F++FF+G-", 'G': "+F-GG--G-F++F+G"}, angle: 60},
}

var lsystemPresetNames = []string{"koch", "dragon", "sierpinski", "plant", "tree", "levy", "hilbert", "gosper"}

// lsystem rewrites an axiom through its production rules and interprets the
// result as turtle graphics. A dry-run walk first measures the bounding box
// so the drawing pass can center the figure on the canvas.
type lsystem struct{}

func (g *lsystem) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "l-system",
		Name: "L-System",
		Controls: []Control{
			{Key: "iterations", Label: "Iterations", Type: ControlSlider, Min: 1, Max: maxLSystemIterations, Step: 1, Default: 4.0},
			{Key: "angle", Label: "Turn Angle", Type: ControlSlider, Min: 1, Max: 180, Step: 0.1, Default: 0.0},
			{Key: "pattern", Label: "Pattern", Type: ControlSelect, Options: lsystemPresetNames, Default: "koch"},
			{Key: "axiom", Label: "Custom Axiom", Type: ControlText, Default: ""},
			{Key: "rules", Label: "Custom Rules", Type: ControlText, Default: ""},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "green"},
		},
	}
}

func (g *lsystem) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	iterations := spec.Params.ClampedInt("iterations", 4, 1, maxLSystemIterations)
	palette := spec.Params.Colors("colorPalette")

	axiom, rules, presetAngle := resolveLSystem(
		spec.Params.String("axiom", ""),
		spec.Params.String("rules", ""),
		spec.Params.String("pattern", "koch"),
	)
	// An explicit angle overrides the preset's natural one.
	angle := spec.Params.Float("angle", 0)
	if angle <= 0 {
		angle = presetAngle
	}
	angle = clampFloat(angle, 1, 180) * math.Pi / 180

	expanded := rewriteLSystem(axiom, rules, iterations)

	minDim := math.Min(w, h)
	step := math.Max(3, (minDim/12)/math.Pow(1.3, float64(iterations)))

	// Dry-run pass: measure.
	bounds, _ := walkTurtle(expanded, Point{X: w / 2, Y: h}, angle, step, w, h, Point{}, false, nil)

	// Drawing pass, recentered inside the canvas.
	offset := Point{
		X: w/2 - (bounds.minX+bounds.maxX)/2,
		Y: h/2 - (bounds.minY+bounds.maxY)/2,
	}
	_, commands := walkTurtle(expanded, Point{X: w / 2, Y: h}, angle, step, w, h, offset, true, palette)
	return commands
}

// resolveLSystem picks the grammar: custom axiom+rules when both parse,
// otherwise the named preset, otherwise koch.
func resolveLSystem(axiom, rulesText, pattern string) (string, map[rune]string, float64) {
	if axiom != "" {
		if rules := parseLSystemRules(rulesText); len(rules) > 0 {
			return axiom, rules, 60
		}
	}
	preset, ok := lsystemPresets[strings.ToLower(pattern)]
	if !ok {
		preset = lsystemPresets["koch"]
	}
	return preset.axiom, preset.rules, preset.angle
}

// parseLSystemRules reads comma-separated "symbol=replacement" or
// "symbol->replacement" productions. Invalid entries are skipped.
func parseLSystemRules(text string) map[rune]string {
	rules := make(map[rune]string)
	for _, part := range strings.Split(text, ",") {
		part = strings.TrimSpace(part)
		var sym, repl string
		if i := strings.Index(part, "->"); i >= 0 {
			sym, repl = strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+2:])
		} else if i := strings.Index(part, "="); i >= 0 {
			sym, repl = strings.TrimSpace(part[:i]), strings.TrimSpace(part[i+1:])
		}
		if len(sym) == 1 && repl != "" {
			rules[rune(sym[0])] = repl
		}
	}
	return rules
}

// rewriteLSystem expands the axiom for the given number of rounds, mapping
// unmatched symbols to themselves. Expansion stops once the string would
// exceed the hard length cap.
func rewriteLSystem(axiom string, rules map[rune]string, iterations int) string {
	current := axiom
	for i := 0; i < iterations; i++ {
		var b strings.Builder
		b.Grow(len(current) * 2)
		truncated := false
		for _, r := range current {
			repl, ok := rules[r]
			if !ok {
				repl = string(r)
			}
			if b.Len()+len(repl) > maxLSystemLength {
				truncated = true
				break
			}
			b.WriteString(repl)
		}
		current = b.String()
		if truncated {
			break
		}
	}
	return current
}

// turtleBounds is the bounding box traced by a turtle walk.
type turtleBounds struct {
	minX, minY, maxX, maxY float64
}

// turtleFrame is one entry of the bracket stack: position, heading, depth.
type turtleFrame struct {
	pos     Point
	heading float64
	depth   int
}

// walkTurtle interprets the expanded string. F and G draw and advance, f
// advances silently, + and - turn, [ and ] push and pop state. The walk
// aborts if the turtle strays beyond [-dim, 2*dim] on either axis, which
// shields against runaway rule sets.
func walkTurtle(s string, start Point, angle, step, w, h float64,
	offset Point, draw bool, palette []string) (turtleBounds, []DrawCommand) {

	pos := start
	heading := -math.Pi / 2 // up
	depth := 0
	var stack []turtleFrame
	bounds := turtleBounds{minX: pos.X, minY: pos.Y, maxX: pos.X, maxY: pos.Y}
	var commands []DrawCommand

	extend := func(p Point) {
		bounds.minX = math.Min(bounds.minX, p.X)
		bounds.minY = math.Min(bounds.minY, p.Y)
		bounds.maxX = math.Max(bounds.maxX, p.X)
		bounds.maxY = math.Max(bounds.maxY, p.Y)
	}

	for _, r := range s {
		switch r {
		case 'F', 'G':
			next := Point{
				X: pos.X + math.Cos(heading)*step,
				Y: pos.Y + math.Sin(heading)*step,
			}
			if draw {
				color := palette[clampInt(depth, 0, len(palette)-1)]
				commands = append(commands,
					Line(pos.Add(offset), next.Add(offset), color, 1.5))
			}
			pos = next
			extend(pos)
			if pos.X < -w || pos.X > 2*w || pos.Y < -h || pos.Y > 2*h {
				return bounds, commands
			}
		case 'f':
			pos = Point{
				X: pos.X + math.Cos(heading)*step,
				Y: pos.Y + math.Sin(heading)*step,
			}
			extend(pos)
		case '+':
			heading += angle
		case '-':
			heading -= angle
		case '[':
			stack = append(stack, turtleFrame{pos: pos, heading: heading, depth: depth})
			depth++
		case ']':
			if n := len(stack); n > 0 {
				frame := stack[n-1]
				stack = stack[:n-1]
				pos, heading, depth = frame.pos, frame.heading, frame.depth
			}
		}
	}
	return bounds, commands
}
