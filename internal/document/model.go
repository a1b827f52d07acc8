package document

// Document is the authoritative state of one Tessera project: a canvas plus
// an ordered stack of generative layers.
type Document struct {
	Project Project          `json:"project"`
	Canvas  Canvas           `json:"canvas"`
	Layers  map[string]Layer `json:"layers"`
	// Order lists layer ids bottom to top; rendering follows it so later
	// layers paint over earlier ones.
	Order []string `json:"order"`
}

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Version   int    `json:"version"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type Canvas struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Background string `json:"background"`
}

// Layer is one generative pattern instance: an algorithm id plus its
// parameter bag. Seed pins the layer's randomness so re-rendering an
// untouched layer reproduces the same image.
type Layer struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Algorithm string         `json:"algorithm"`
	Params    map[string]any `json:"parameters"`
	Visible   bool           `json:"visible"`
	Opacity   float64        `json:"opacity"`
	Seed      int64          `json:"seed"`
}

// OrderedLayers resolves Order into layer values, skipping dangling ids.
func (d *Document) OrderedLayers() []Layer {
	layers := make([]Layer, 0, len(d.Order))
	for _, id := range d.Order {
		if l, ok := d.Layers[id]; ok {
			layers = append(layers, l)
		}
	}
	return layers
}

// NewEmptyDocument creates the document seeded for a new project: one
// default uniform-grid layer on an 800x600 canvas.
func NewEmptyDocument(projectID, projectName, layerID string, seed int64) *Document {
	return &Document{
		Project: Project{
			ID:      projectID,
			Name:    projectName,
			Version: 1,
		},
		Canvas: Canvas{
			Width:      800,
			Height:     600,
			Background: "#1a1a2e",
		},
		Layers: map[string]Layer{
			layerID: {
				ID:        layerID,
				Name:      "Layer 1",
				Algorithm: "grid",
				Params:    map[string]any{},
				Visible:   true,
				Opacity:   1,
				Seed:      seed,
			},
		},
		Order: []string{layerID},
	}
}
