package engine

import (
	"log/slog"
	"math/rand"
	"sort"
	"time"
)

// LayerSpec is the input bundle for one generation pass: an algorithm id,
// its parameter bag, the target canvas, and an optional seed. A zero seed
// means "fresh entropy"; any other value makes the output fully
// reproducible.
type LayerSpec struct {
	Algorithm    string `json:"algorithm"`
	Params       Params `json:"parameters"`
	CanvasWidth  int    `json:"canvasWidth"`
	CanvasHeight int    `json:"canvasHeight"`
	Seed         int64  `json:"seed,omitempty"`
}

// Generator is one generative algorithm. Generate must be a pure function of
// the spec and the supplied RNG: bounded output for every input, no retained
// references, no shared state.
type Generator interface {
	Info() AlgorithmInfo
	Generate(spec LayerSpec, rng *rand.Rand) []DrawCommand
}

var registry = make(map[string]Generator)

func register(g Generator) {
	registry[g.Info().ID] = g
}

func init() {
	register(&uniformGrid{})
	register(&noiseGrid{})
	register(&subdivision{})
	register(&isoGrid{})
	register(&flowField{})
	register(&fractalTrees{})
	register(&particleField{})
	register(&automata{})
	register(&lsystem{})
}

// Lookup retrieves a generator by algorithm id.
func Lookup(id string) (Generator, bool) {
	g, ok := registry[id]
	return g, ok
}

// Algorithms returns the public catalog of all registered generators,
// ordered by id so the UI layout is stable.
func Algorithms() []AlgorithmInfo {
	infos := make([]AlgorithmInfo, 0, len(registry))
	for _, g := range registry {
		infos = append(infos, g.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].ID < infos[j].ID })
	return infos
}

// Generate runs one synchronous generation pass for the spec. Unknown
// algorithm ids log a diagnostic and return an empty list; no input causes
// an error or a panic to cross this boundary.
func Generate(spec LayerSpec) []DrawCommand {
	g, ok := registry[spec.Algorithm]
	if !ok {
		slog.Warn("unknown algorithm", "algorithm", spec.Algorithm)
		return []DrawCommand{}
	}

	seed := spec.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	commands := g.Generate(spec, rng)
	if commands == nil {
		commands = []DrawCommand{}
	}
	return commands
}
