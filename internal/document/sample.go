package document

// NewSampleDocument builds the built-in demo project: a flow-field wash
// under a sparse grid with a pair of fractal trees on top. Used by the
// playground and by the wasm build before any project is loaded.
func NewSampleDocument(projectID string) *Document {
	return &Document{
		Project: Project{
			ID:      projectID,
			Name:    "Sample Project",
			Version: 1,
		},
		Canvas: Canvas{
			Width:      1280,
			Height:     720,
			Background: "#11111b",
		},
		Layers: map[string]Layer{
			"layer_field": {
				ID:        "layer_field",
				Name:      "Flow Field",
				Algorithm: "flow-field",
				Params: map[string]any{
					"density":       40.0,
					"flowSpeed":     0.008,
					"fieldStrength": 1.2,
					"colorPalette":  "indigo",
				},
				Visible: true,
				Opacity: 0.5,
				Seed:    101,
			},
			"layer_grid": {
				ID:        "layer_grid",
				Name:      "Grid",
				Algorithm: "grid",
				Params: map[string]any{
					"density":      65.0,
					"gutter":       14.0,
					"shapeVariety": 5.0,
					"colorPalette": "teal",
				},
				Visible: true,
				Opacity: 0.9,
				Seed:    102,
			},
			"layer_trees": {
				ID:        "layer_trees",
				Name:      "Trees",
				Algorithm: "fractal-trees",
				Params: map[string]any{
					"treeCount":   2.0,
					"iterations":  8.0,
					"branchAngle": 22.0,
				},
				Visible: true,
				Opacity: 1.0,
				Seed:    103,
			},
		},
		Order: []string{"layer_field", "layer_grid", "layer_trees"},
	}
}
