package engine

import (
	"github.com/tessera/tessera/backend-go/internal/document"
)

// RenderDocument generates every visible layer of the document bottom to
// top and concatenates the results, so painter's order holds across layers
// as well as within them. Layer opacity below 1 scales each command's alpha.
func RenderDocument(doc *document.Document) []DrawCommand {
	if doc == nil {
		return []DrawCommand{}
	}

	commands := []DrawCommand{}
	for _, layer := range doc.OrderedLayers() {
		if !layer.Visible {
			continue
		}
		layerCommands := Generate(LayerSpec{
			Algorithm:    layer.Algorithm,
			Params:       Params(layer.Params),
			CanvasWidth:  doc.Canvas.Width,
			CanvasHeight: doc.Canvas.Height,
			Seed:         layer.Seed,
		})
		if layer.Opacity > 0 && layer.Opacity < 1 {
			for i, cmd := range layerCommands {
				alpha := cmd.Alpha
				if alpha == 0 {
					alpha = 1
				}
				layerCommands[i] = cmd.WithAlpha(alpha * layer.Opacity)
			}
		}
		commands = append(commands, layerCommands...)
	}
	return commands
}
