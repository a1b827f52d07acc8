package collab

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tessera/tessera/backend-go/internal/document"
)

func newTestState() *DocumentState {
	doc := document.NewEmptyDocument("proj_test", "Test", "layer_1", 42)
	return NewDocumentState(doc)
}

func boolPtr(b bool) *bool        { return &b }
func intPtr(i int) *int           { return &i }
func int64Ptr(i int64) *int64     { return &i }
func floatPtr(f float64) *float64 { return &f }

func rawJSON(s string) json.RawMessage { return json.RawMessage(s) }

func TestApplyLayerCreate(t *testing.T) {
	ds := newTestState()

	seq, err := ds.ApplyOperation(Operation{
		Type:  OpLayerCreate,
		Layer: rawJSON(`{"id":"layer_2","name":"Flow","algorithm":"flow-field","visible":true}`),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), seq)
	assert.True(t, ds.Dirty())

	doc := ds.GetDocument()
	require.Contains(t, doc.Layers, "layer_2")
	assert.Equal(t, []string{"layer_1", "layer_2"}, doc.Order)
	assert.Equal(t, 1.0, doc.Layers["layer_2"].Opacity, "zero opacity defaults to opaque")
}

func TestApplyLayerCreateAtIndex(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{
		Type:  OpLayerCreate,
		Layer: rawJSON(`{"id":"layer_0","algorithm":"grid","visible":true}`),
		Index: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"layer_0", "layer_1"}, ds.GetDocument().Order)
}

func TestApplyLayerCreateRejectsUnknownAlgorithm(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{
		Type:  OpLayerCreate,
		Layer: rawJSON(`{"id":"layer_2","algorithm":"warp-drive"}`),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown algorithm")
	assert.False(t, ds.Dirty(), "failed operations leave the document clean")
}

func TestApplyLayerDelete(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{Type: OpLayerDelete, LayerID: "layer_1"})
	require.NoError(t, err)
	assert.Empty(t, ds.GetDocument().Layers)
	assert.Empty(t, ds.GetDocument().Order)

	_, err = ds.ApplyOperation(Operation{Type: OpLayerDelete, LayerID: "layer_1"})
	assert.Error(t, err)
}

func TestApplyLayerParamsMerges(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{
		Type:    OpLayerParams,
		LayerID: "layer_1",
		Params:  rawJSON(`{"density":80}`),
	})
	require.NoError(t, err)

	_, err = ds.ApplyOperation(Operation{
		Type:    OpLayerParams,
		LayerID: "layer_1",
		Params:  rawJSON(`{"gutter":12}`),
	})
	require.NoError(t, err)

	params := ds.GetDocument().Layers["layer_1"].Params
	assert.Equal(t, 80.0, params["density"], "earlier changes survive later merges")
	assert.Equal(t, 12.0, params["gutter"])
}

func TestApplyLayerToggles(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{Type: OpLayerVisibility, LayerID: "layer_1", Visible: boolPtr(false)})
	require.NoError(t, err)
	assert.False(t, ds.GetDocument().Layers["layer_1"].Visible)

	_, err = ds.ApplyOperation(Operation{Type: OpLayerOpacity, LayerID: "layer_1", Opacity: floatPtr(2.5)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, ds.GetDocument().Layers["layer_1"].Opacity, "opacity clamps to [0,1]")

	_, err = ds.ApplyOperation(Operation{Type: OpLayerReseed, LayerID: "layer_1", Seed: int64Ptr(777)})
	require.NoError(t, err)
	assert.Equal(t, int64(777), ds.GetDocument().Layers["layer_1"].Seed)

	_, err = ds.ApplyOperation(Operation{Type: OpLayerRename, LayerID: "layer_1", Name: "Background"})
	require.NoError(t, err)
	assert.Equal(t, "Background", ds.GetDocument().Layers["layer_1"].Name)
}

func TestApplyLayerReorder(t *testing.T) {
	ds := newTestState()
	for _, id := range []string{"layer_2", "layer_3"} {
		_, err := ds.ApplyOperation(Operation{
			Type:  OpLayerCreate,
			Layer: rawJSON(`{"id":"` + id + `","algorithm":"grid","visible":true}`),
		})
		require.NoError(t, err)
	}

	_, err := ds.ApplyOperation(Operation{Type: OpLayerReorder, LayerID: "layer_3", NewIndex: 0})
	require.NoError(t, err)
	assert.Equal(t, []string{"layer_3", "layer_1", "layer_2"}, ds.GetDocument().Order)

	// Out-of-range target indexes clamp instead of failing.
	_, err = ds.ApplyOperation(Operation{Type: OpLayerReorder, LayerID: "layer_3", NewIndex: 99})
	require.NoError(t, err)
	assert.Equal(t, []string{"layer_1", "layer_2", "layer_3"}, ds.GetDocument().Order)
}

func TestApplyCanvasUpdate(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{
		Type:    OpCanvasUpdate,
		Changes: rawJSON(`{"width":1280,"height":720,"background":"#000000"}`),
	})
	require.NoError(t, err)

	canvas := ds.GetDocument().Canvas
	assert.Equal(t, 1280, canvas.Width)
	assert.Equal(t, 720, canvas.Height)
	assert.Equal(t, "#000000", canvas.Background)

	// Non-positive dimensions are ignored.
	_, err = ds.ApplyOperation(Operation{Type: OpCanvasUpdate, Changes: rawJSON(`{"width":-5}`)})
	require.NoError(t, err)
	assert.Equal(t, 1280, ds.GetDocument().Canvas.Width)
}

func TestApplyProjectRename(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{Type: OpProjectRename, Name: "Renamed"})
	require.NoError(t, err)
	assert.Equal(t, "Renamed", ds.GetDocument().Project.Name)
}

func TestApplyUnknownOperation(t *testing.T) {
	ds := newTestState()

	_, err := ds.ApplyOperation(Operation{Type: "layer.explode"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation type")
}

func TestServerSeqMonotonic(t *testing.T) {
	ds := newTestState()

	var last int64
	for i := 0; i < 5; i++ {
		seq, err := ds.ApplyOperation(Operation{Type: OpLayerReseed, LayerID: "layer_1", Seed: int64Ptr(int64(i))})
		require.NoError(t, err)
		assert.Greater(t, seq, last)
		last = seq
	}

	ds.MarkSaved()
	assert.False(t, ds.Dirty())
}
