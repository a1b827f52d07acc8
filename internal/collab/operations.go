package collab

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/tessera/tessera/backend-go/internal/document"
	"github.com/tessera/tessera/backend-go/internal/engine"
)

// DocumentState holds the authoritative document for a room and applies
// layer operations to it under a lock.
type DocumentState struct {
	mu        sync.RWMutex
	doc       *document.Document
	serverSeq int64
	dirty     bool
}

func NewDocumentState(doc *document.Document) *DocumentState {
	return &DocumentState{doc: doc}
}

// GetDocument returns the current document; callers must not mutate it.
func (ds *DocumentState) GetDocument() *document.Document {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.doc
}

// Dirty reports whether operations were applied since the last save.
func (ds *DocumentState) Dirty() bool {
	ds.mu.RLock()
	defer ds.mu.RUnlock()
	return ds.dirty
}

// MarkSaved clears the dirty flag after a successful snapshot.
func (ds *DocumentState) MarkSaved() {
	ds.mu.Lock()
	defer ds.mu.Unlock()
	ds.dirty = false
}

// ApplyOperation applies an operation and returns the new server sequence.
func (ds *DocumentState) ApplyOperation(op Operation) (int64, error) {
	ds.mu.Lock()
	defer ds.mu.Unlock()

	if err := ds.applyOperationLocked(op); err != nil {
		return 0, err
	}

	ds.serverSeq++
	ds.dirty = true
	return ds.serverSeq, nil
}

func (ds *DocumentState) applyOperationLocked(op Operation) error {
	switch op.Type {
	case OpLayerCreate:
		return ds.applyLayerCreate(op)
	case OpLayerDelete:
		return ds.applyLayerDelete(op)
	case OpLayerParams:
		return ds.applyLayerParams(op)
	case OpLayerVisibility:
		return ds.applyLayerVisibility(op)
	case OpLayerOpacity:
		return ds.applyLayerOpacity(op)
	case OpLayerReseed:
		return ds.applyLayerReseed(op)
	case OpLayerReorder:
		return ds.applyLayerReorder(op)
	case OpLayerRename:
		return ds.applyLayerRename(op)
	case OpCanvasUpdate:
		return ds.applyCanvasUpdate(op)
	case OpProjectRename:
		ds.doc.Project.Name = op.Name
		return nil
	default:
		return fmt.Errorf("unknown operation type: %s", op.Type)
	}
}

func (ds *DocumentState) applyLayerCreate(op Operation) error {
	var layer document.Layer
	if err := json.Unmarshal(op.Layer, &layer); err != nil {
		return fmt.Errorf("invalid layer: %w", err)
	}
	if layer.ID == "" {
		return fmt.Errorf("layer id is required")
	}
	if _, ok := engine.Lookup(layer.Algorithm); !ok {
		return fmt.Errorf("unknown algorithm: %s", layer.Algorithm)
	}
	if layer.Opacity <= 0 {
		layer.Opacity = 1
	}

	ds.doc.Layers[layer.ID] = layer

	if op.Index != nil && *op.Index >= 0 && *op.Index <= len(ds.doc.Order) {
		order := make([]string, 0, len(ds.doc.Order)+1)
		order = append(order, ds.doc.Order[:*op.Index]...)
		order = append(order, layer.ID)
		order = append(order, ds.doc.Order[*op.Index:]...)
		ds.doc.Order = order
	} else {
		ds.doc.Order = append(ds.doc.Order, layer.ID)
	}
	return nil
}

func (ds *DocumentState) applyLayerDelete(op Operation) error {
	if _, ok := ds.doc.Layers[op.LayerID]; !ok {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}
	delete(ds.doc.Layers, op.LayerID)

	order := make([]string, 0, len(ds.doc.Order))
	for _, id := range ds.doc.Order {
		if id != op.LayerID {
			order = append(order, id)
		}
	}
	ds.doc.Order = order
	return nil
}

func (ds *DocumentState) applyLayerParams(op Operation) error {
	layer, ok := ds.doc.Layers[op.LayerID]
	if !ok {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}

	var changes map[string]any
	if err := json.Unmarshal(op.Params, &changes); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	if layer.Params == nil {
		layer.Params = make(map[string]any, len(changes))
	}
	for k, v := range changes {
		layer.Params[k] = v
	}
	ds.doc.Layers[op.LayerID] = layer
	return nil
}

func (ds *DocumentState) applyLayerVisibility(op Operation) error {
	layer, ok := ds.doc.Layers[op.LayerID]
	if !ok {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}
	if op.Visible != nil {
		layer.Visible = *op.Visible
	}
	ds.doc.Layers[op.LayerID] = layer
	return nil
}

func (ds *DocumentState) applyLayerOpacity(op Operation) error {
	layer, ok := ds.doc.Layers[op.LayerID]
	if !ok {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}
	if op.Opacity != nil {
		o := *op.Opacity
		if o < 0 {
			o = 0
		}
		if o > 1 {
			o = 1
		}
		layer.Opacity = o
	}
	ds.doc.Layers[op.LayerID] = layer
	return nil
}

func (ds *DocumentState) applyLayerReseed(op Operation) error {
	layer, ok := ds.doc.Layers[op.LayerID]
	if !ok {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}
	if op.Seed != nil {
		layer.Seed = *op.Seed
	}
	ds.doc.Layers[op.LayerID] = layer
	return nil
}

func (ds *DocumentState) applyLayerReorder(op Operation) error {
	from := -1
	for i, id := range ds.doc.Order {
		if id == op.LayerID {
			from = i
			break
		}
	}
	if from < 0 {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}

	to := op.NewIndex
	if to < 0 {
		to = 0
	}
	if to >= len(ds.doc.Order) {
		to = len(ds.doc.Order) - 1
	}

	order := append([]string{}, ds.doc.Order...)
	order = append(order[:from], order[from+1:]...)
	order = append(order[:to], append([]string{op.LayerID}, order[to:]...)...)
	ds.doc.Order = order
	return nil
}

func (ds *DocumentState) applyLayerRename(op Operation) error {
	layer, ok := ds.doc.Layers[op.LayerID]
	if !ok {
		return fmt.Errorf("layer not found: %s", op.LayerID)
	}
	layer.Name = op.Name
	ds.doc.Layers[op.LayerID] = layer
	return nil
}

func (ds *DocumentState) applyCanvasUpdate(op Operation) error {
	var changes map[string]any
	if err := json.Unmarshal(op.Changes, &changes); err != nil {
		return fmt.Errorf("invalid canvas changes: %w", err)
	}

	if v, ok := changes["width"].(float64); ok && v > 0 {
		ds.doc.Canvas.Width = int(v)
	}
	if v, ok := changes["height"].(float64); ok && v > 0 {
		ds.doc.Canvas.Height = int(v)
	}
	if v, ok := changes["background"].(string); ok {
		ds.doc.Canvas.Background = v
	}
	return nil
}

// GetServerTimestamp returns the current server timestamp in milliseconds.
func GetServerTimestamp() int64 {
	return time.Now().UnixMilli()
}
