package engine

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRewriteLSystem(t *testing.T) {
	koch := map[rune]string{'F': "F+F-F-F+F"}

	assert.Equal(t, "F+F-F-F+F", rewriteLSystem("F", koch, 1))
	assert.Equal(t,
		"F+F-F-F+F+F+F-F-F+F-F+F-F-F+F-F+F-F-F+F+F+F-F-F+F",
		rewriteLSystem("F", koch, 2))

	// Unmatched symbols map to themselves.
	assert.Equal(t, "A+A", rewriteLSystem("A+A", koch, 3))
}

func TestRewriteLSystemLengthCap(t *testing.T) {
	explosive := map[rune]string{'F': strings.Repeat("F", 10)}
	out := rewriteLSystem("F", explosive, maxLSystemIterations)
	assert.LessOrEqual(t, len(out), maxLSystemLength)
}

func TestParseLSystemRules(t *testing.T) {
	tests := []struct {
		name string
		text string
		want map[rune]string
	}{
		{"equals form", "F=F+F", map[rune]string{'F': "F+F"}},
		{"arrow form", "F->FF, X->F[X]", map[rune]string{'F': "FF", 'X': "F[X]"}},
		{"skips invalid entries", "F=FF, nonsense, =X", map[rune]string{'F': "FF"}},
		{"empty", "", map[rune]string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseLSystemRules(tt.text))
		})
	}
}

func TestResolveLSystem(t *testing.T) {
	axiom, rules, angle := resolveLSystem("", "", "dragon")
	assert.Equal(t, "FX", axiom)
	assert.Equal(t, 90.0, angle)
	assert.Contains(t, rules, 'X')

	// Custom grammar wins over the preset when both parse.
	axiom, rules, _ = resolveLSystem("A", "A=AB", "dragon")
	assert.Equal(t, "A", axiom)
	assert.Equal(t, "AB", rules['A'])

	// Unknown preset falls back to koch.
	axiom, _, angle = resolveLSystem("", "", "nope")
	assert.Equal(t, "F", axiom)
	assert.Equal(t, 90.0, angle)
}

func TestWalkTurtleDrawCount(t *testing.T) {
	// Every F in the string draws exactly one segment.
	s := "F+F-F-F+F"
	_, commands := walkTurtle(s, Point{X: 400, Y: 600}, math.Pi/2, 10, 800, 600,
		Point{}, true, ResolvePalette(nil))
	assert.Len(t, commands, strings.Count(s, "F"))
	for _, c := range commands {
		assert.Equal(t, KindLine, c.Kind)
		assert.Len(t, c.Points, 2)
	}
}

func TestWalkTurtleBracketStack(t *testing.T) {
	// After [F], the turtle is back where it started, so the following F
	// retraces the same segment.
	_, commands := walkTurtle("[F]F", Point{X: 100, Y: 100}, math.Pi/2, 10, 800, 600,
		Point{}, true, ResolvePalette(nil))
	require.Len(t, commands, 2)
	assert.Equal(t, commands[0].Points[0], commands[1].Points[0])
	assert.Equal(t, commands[0].Points[1], commands[1].Points[1])

	// Unbalanced closers are ignored rather than panicking.
	_, commands = walkTurtle("]]F", Point{X: 100, Y: 100}, math.Pi/2, 10, 800, 600,
		Point{}, true, ResolvePalette(nil))
	assert.Len(t, commands, 1)
}

func TestWalkTurtleBoundsAbort(t *testing.T) {
	// A long straight run walks off the guard region and stops early.
	s := strings.Repeat("F", 1000)
	_, commands := walkTurtle(s, Point{X: 400, Y: 300}, math.Pi/2, 50, 800, 600,
		Point{}, true, ResolvePalette(nil))
	assert.Less(t, len(commands), 1000)
}

func TestLSystemGenerateCentered(t *testing.T) {
	spec := LayerSpec{
		Algorithm:    "l-system",
		Params:       Params{"pattern": "koch", "iterations": 3.0},
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         5,
	}
	commands := Generate(spec)
	require.NotEmpty(t, commands)

	minX, maxX := commands[0].Points[0].X, commands[0].Points[0].X
	for _, c := range commands {
		for _, p := range c.Points {
			minX = math.Min(minX, p.X)
			maxX = math.Max(maxX, p.X)
		}
	}
	// The measured figure is recentered horizontally on the canvas.
	assert.InDelta(t, 400, (minX+maxX)/2, 1.0)
}
