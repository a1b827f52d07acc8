package engine

import (
	"math"
	"math/rand"
	"strings"
)

const (
	automataBaseCellSize = 12.0
	maxAutomataGens      = 64
	// Grid axes are capped so a huge canvas cannot explode the simulation.
	maxAutomataGridDim = 256
)

// automata runs a life-like cellular automaton with a toroidal 8-cell
// neighborhood for a fixed number of synchronous generations, then
// rasterizes the surviving cells.
type automata struct{}

func (g *automata) Info() AlgorithmInfo {
	return AlgorithmInfo{
		ID:   "cellular-automata",
		Name: "Cellular Automata",
		Controls: []Control{
			{Key: "density", Label: "Density", Type: ControlSlider, Min: 1, Max: 100, Step: 1, Default: 50.0},
			{Key: "survivalRules", Label: "Rules (S/B)", Type: ControlText, Default: "23/3"},
			{Key: "generations", Label: "Generations", Type: ControlSlider, Min: 1, Max: 20, Step: 1, Default: 5.0},
			{Key: "colorPalette", Label: "Palette", Type: ControlSelect, Options: hueOrder, Default: "purple"},
		},
	}
}

func (g *automata) Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand {
	w, h := resolveCanvas(spec.CanvasWidth, spec.CanvasHeight)
	density := spec.Params.ClampedFloat("density", 50, 1, 100)
	generations := spec.Params.ClampedInt("generations", 5, 1, maxAutomataGens)
	palette := spec.Params.Colors("colorPalette")

	survive, birth := parseRuleString(spec.Params.String("survivalRules", "23/3"))

	cellSize := math.Max(1, automataBaseCellSize*(1-density/150))
	cols := clampInt(int(w/cellSize), 0, maxAutomataGridDim)
	rows := clampInt(int(h/cellSize), 0, maxAutomataGridDim)
	if cols <= 0 || rows <= 0 {
		return []DrawCommand{}
	}

	grid := seedGrid(rng, rows, cols)
	for i := 0; i < generations; i++ {
		grid = stepGrid(grid, survive, birth)
	}

	commands := []DrawCommand{}
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			if !grid[row][col] {
				continue
			}
			center := Point{
				X: (float64(col) + 0.5) * cellSize,
				Y: (float64(row) + 0.5) * cellSize,
			}
			commands = append(commands,
				Rect(center, cellSize, cellSize, PickColor(rng, palette)))
		}
	}
	return commands
}

// parseRuleString interprets an "S/B" rule like "23/3" (Conway's Life).
// Malformed input falls back to the Life rule set.
func parseRuleString(rule string) (survive, birth map[int]bool) {
	parts := strings.Split(rule, "/")
	if len(parts) == 2 {
		survive = digitSet(parts[0])
		birth = digitSet(parts[1])
	}
	if len(survive) == 0 && len(birth) == 0 {
		return map[int]bool{2: true, 3: true}, map[int]bool{3: true}
	}
	return survive, birth
}

func digitSet(s string) map[int]bool {
	set := make(map[int]bool)
	for _, r := range s {
		if r >= '0' && r <= '8' {
			set[int(r-'0')] = true
		}
	}
	return set
}

// seedGrid randomizes the initial state with a radial bias: cells near the
// center are more likely to start alive, which keeps starting patterns
// non-trivial.
func seedGrid(rng *rand.Rand, rows, cols int) [][]bool {
	grid := make([][]bool, rows)
	cx, cy := float64(cols)/2, float64(rows)/2
	maxDist := math.Hypot(cx, cy)
	for row := range grid {
		grid[row] = make([]bool, cols)
		for col := range grid[row] {
			dist := math.Hypot(float64(col)-cx, float64(row)-cy) / maxDist
			p := math.Max(0.1, 0.4-0.3*dist)
			grid[row][col] = rng.Float64() < p
		}
	}
	return grid
}

// stepGrid applies one synchronous generation over a double buffer with
// wrap-around neighbor counting.
func stepGrid(grid [][]bool, survive, birth map[int]bool) [][]bool {
	rows := len(grid)
	cols := len(grid[0])
	next := make([][]bool, rows)
	for row := 0; row < rows; row++ {
		next[row] = make([]bool, cols)
		for col := 0; col < cols; col++ {
			n := liveNeighbors(grid, row, col)
			if grid[row][col] {
				next[row][col] = survive[n]
			} else {
				next[row][col] = birth[n]
			}
		}
	}
	return next
}

func liveNeighbors(grid [][]bool, row, col int) int {
	rows := len(grid)
	cols := len(grid[0])
	count := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r := ((row+dr)%rows + rows) % rows
			c := ((col+dc)%cols + cols) % cols
			if grid[r][c] {
				count++
			}
		}
	}
	return count
}
