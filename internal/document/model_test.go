package document

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEmptyDocument(t *testing.T) {
	doc := NewEmptyDocument("proj_1", "My Project", "layer_1", 42)

	assert.Equal(t, "proj_1", doc.Project.ID)
	assert.Equal(t, 1, doc.Project.Version)
	assert.Equal(t, 800, doc.Canvas.Width)
	assert.Equal(t, 600, doc.Canvas.Height)

	require.Len(t, doc.Order, 1)
	layer := doc.Layers["layer_1"]
	assert.Equal(t, "grid", layer.Algorithm)
	assert.True(t, layer.Visible)
	assert.Equal(t, 1.0, layer.Opacity)
	assert.Equal(t, int64(42), layer.Seed)
}

func TestOrderedLayers(t *testing.T) {
	doc := &Document{
		Layers: map[string]Layer{
			"a": {ID: "a"},
			"b": {ID: "b"},
		},
		Order: []string{"b", "ghost", "a"},
	}

	layers := doc.OrderedLayers()
	require.Len(t, layers, 2, "dangling order entries are skipped")
	assert.Equal(t, "b", layers[0].ID)
	assert.Equal(t, "a", layers[1].ID)
}

func TestDocumentJSONRoundTrip(t *testing.T) {
	doc := NewSampleDocument("proj_demo")

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	var decoded Document
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, doc.Order, decoded.Order)
	assert.Equal(t, doc.Canvas, decoded.Canvas)
	require.Contains(t, decoded.Layers, "layer_field")
	assert.Equal(t, 0.5, decoded.Layers["layer_field"].Opacity)
}

func TestSampleDocumentWellFormed(t *testing.T) {
	doc := NewSampleDocument("proj_demo")

	require.Len(t, doc.Order, len(doc.Layers))
	for _, id := range doc.Order {
		layer, ok := doc.Layers[id]
		require.True(t, ok, "order entry %s has a layer", id)
		assert.Equal(t, id, layer.ID)
		assert.NotEmpty(t, layer.Algorithm)
	}
}
