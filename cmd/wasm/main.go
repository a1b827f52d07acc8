//go:build js && wasm

package main

import (
	"encoding/json"
	"syscall/js"

	"github.com/tessera/tessera/backend-go/internal/document"
	"github.com/tessera/tessera/backend-go/internal/engine"
)

func main() {
	// Create the engine API object
	tesseraEngine := js.Global().Get("Object").New()

	tesseraEngine.Set("algorithms", js.FuncOf(algorithms))
	tesseraEngine.Set("generate", js.FuncOf(generate))
	tesseraEngine.Set("renderDocument", js.FuncOf(renderDocument))
	tesseraEngine.Set("sampleDocument", js.FuncOf(sampleDocument))

	// Register on global scope
	js.Global().Set("tesseraEngine", tesseraEngine)

	// Signal that WASM is ready
	js.Global().Set("tesseraWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

// algorithms returns the control catalog as JSON.
func algorithms(this js.Value, args []js.Value) interface{} {
	data, err := json.Marshal(engine.Algorithms())
	if err != nil {
		return js.ValueOf("[]")
	}
	return js.ValueOf(string(data))
}

// generate runs one layer spec and returns the draw commands as JSON.
func generate(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("[]")
	}

	var spec engine.LayerSpec
	if err := json.Unmarshal([]byte(args[0].String()), &spec); err != nil {
		return js.ValueOf("[]")
	}

	result, _ := engine.CommandsToJSON(engine.Generate(spec))
	return js.ValueOf(result)
}

// renderDocument generates a whole document's layer stack as JSON.
func renderDocument(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return js.ValueOf("[]")
	}

	var doc document.Document
	if err := json.Unmarshal([]byte(args[0].String()), &doc); err != nil {
		return js.ValueOf("[]")
	}

	result, _ := engine.CommandsToJSON(engine.RenderDocument(&doc))
	return js.ValueOf(result)
}

// sampleDocument returns the built-in demo document as JSON.
func sampleDocument(this js.Value, args []js.Value) interface{} {
	projectID := "proj_sample"
	if len(args) > 0 && args[0].Type() == js.TypeString {
		projectID = args[0].String()
	}

	data, err := json.Marshal(document.NewSampleDocument(projectID))
	if err != nil {
		return js.ValueOf("{}")
	}
	return js.ValueOf(string(data))
}
