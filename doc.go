/*
Package pentrace converts a textured 3D mesh and a small artist-chosen color
palette into an ordered collection of 3D pen-strokes for driving a
plotter-like drawing process on the mesh's physical surface.

The pipeline runs in five stages: a palette Quantizer, a per-color
ColorSplitter, an Island detector, a 2D trace emitter (border + fill
hatching) and a UV-to-3D projector. Each stage is a pure function of its
inputs; see the Tracer type for the orchestration entry point.

	package main

	import (
		"fmt"

		"github.com/duckify/pentrace"
	)

	func main() {
		t := pentrace.New(texturePath, modelPath, outputPath, palette, pentrace.NewConfig())
		if err := t.ComputeTraces(); err != nil {
			fmt.Printf("Error computing traces: %s", err.Error())
		}
	}
*/
package pentrace
