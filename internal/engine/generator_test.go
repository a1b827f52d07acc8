package engine

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlgorithmsCatalog(t *testing.T) {
	infos := Algorithms()
	require.Len(t, infos, 9)

	ids := make([]string, len(infos))
	for i, info := range infos {
		ids[i] = info.ID
		assert.NotEmpty(t, info.Name)
		assert.NotEmpty(t, info.Controls)
	}
	assert.Equal(t, []string{
		"cellular-automata",
		"flow-field",
		"fractal-trees",
		"grid",
		"isometric",
		"l-system",
		"noise-grid",
		"particles",
		"subdivision",
	}, ids)
}

func TestLookup(t *testing.T) {
	g, ok := Lookup("grid")
	require.True(t, ok)
	assert.Equal(t, "grid", g.Info().ID)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func TestGenerateUnknownAlgorithm(t *testing.T) {
	commands := Generate(LayerSpec{Algorithm: "does-not-exist", Seed: 1})
	assert.NotNil(t, commands)
	assert.Empty(t, commands)
}

func TestGenerateDeterministic(t *testing.T) {
	for _, info := range Algorithms() {
		t.Run(info.ID, func(t *testing.T) {
			spec := LayerSpec{
				Algorithm:    info.ID,
				Params:       info.Defaults(),
				CanvasWidth:  800,
				CanvasHeight: 600,
				Seed:         1234,
			}
			a, err := CommandsToJSON(Generate(spec))
			require.NoError(t, err)
			b, err := CommandsToJSON(Generate(spec))
			require.NoError(t, err)
			assert.Equal(t, a, b, "same seed must reproduce the output exactly")
		})
	}
}

func TestGenerateSeedChangesOutput(t *testing.T) {
	base := LayerSpec{
		Algorithm:    "particles",
		CanvasWidth:  800,
		CanvasHeight: 600,
		Seed:         1,
	}
	other := base
	other.Seed = 2

	a, _ := CommandsToJSON(Generate(base))
	b, _ := CommandsToJSON(Generate(other))
	assert.NotEqual(t, a, b)
}

func TestGenerateDegenerateCanvases(t *testing.T) {
	cases := []struct{ w, h int }{
		{0, 0},
		{-10, -10},
		{1, 1},
		{10000, 10000},
		{10000, 1},
	}
	for _, info := range Algorithms() {
		for _, c := range cases {
			t.Run(fmt.Sprintf("%s_%dx%d", info.ID, c.w, c.h), func(t *testing.T) {
				spec := LayerSpec{
					Algorithm:    info.ID,
					Params:       info.Defaults(),
					CanvasWidth:  c.w,
					CanvasHeight: c.h,
					Seed:         9,
				}
				commands := Generate(spec)
				assert.NotNil(t, commands, "no input may yield a nil list")
			})
		}
	}
}

func TestGenerateEmptyParams(t *testing.T) {
	// Nil and empty parameter bags fall back to the catalog defaults.
	for _, info := range Algorithms() {
		t.Run(info.ID, func(t *testing.T) {
			commands := Generate(LayerSpec{
				Algorithm:    info.ID,
				CanvasWidth:  800,
				CanvasHeight: 600,
				Seed:         3,
			})
			assert.NotNil(t, commands)
			assert.NotEmpty(t, commands, "defaults on a full canvas should draw something")
		})
	}
}
