package pentrace

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/term"
)

// traceOut is the JSON wire shape of one Trace3D (spec §6).
type traceOut struct {
	Face  [3]float64  `json:"face"`
	Color int         `json:"color"`
	Path  [][]float64 `json:"path"`
}

// document is the JSON wire shape of the full output file (spec §6).
type document struct {
	GeneratedAt string     `json:"generated_at"`
	Model       string     `json:"model"`
	Texture     string     `json:"texture"`
	Traces      []traceOut `json:"traces"`
}

// ExportTraces writes traces as pretty-printed JSON to outputPath (spec §6).
// If outputPath already exists, the caller is prompted to confirm overwrite
// when a TTY is attached ("N/y", default No); when not attached to a TTY,
// or when the user declines, the write is aborted and an IoError is
// returned so the CLI can map it to exit code 2.
func ExportTraces(traces []Trace3D, modelPath, texturePath, outputPath string, now time.Time) error {
	if dir := filepath.Dir(outputPath); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return newErr(IoError, "export", err)
		}
	}

	if _, err := os.Stat(outputPath); err == nil {
		if !confirmOverwrite(outputPath) {
			return newErrf(IoError, "export", "output file %q already exists, overwrite declined", outputPath)
		}
	} else if !os.IsNotExist(err) {
		return newErr(IoError, "export", err)
	}

	doc := buildDocument(traces, modelPath, texturePath, now)
	data, err := json.MarshalIndent(doc, "", "    ")
	if err != nil {
		return newErr(Fatal, "export", err)
	}
	if err := os.WriteFile(outputPath, data, 0o644); err != nil {
		return newErr(IoError, "export", err)
	}
	return nil
}

// confirmOverwrite implements spec §6's interactive overwrite prompt. It
// defaults to No whenever stdin is not an interactive terminal, using
// golang.org/x/term.IsTerminal the same way the teacher's CLI checks for an
// interactive session before showing its progress spinner.
func confirmOverwrite(path string) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return false
	}
	fmt.Printf("File %s already exists. Overwrite? N/y ", path)
	line, _ := bufio.NewReader(os.Stdin).ReadString('\n')
	choice := strings.ToLower(strings.TrimSpace(line))
	return choice == "y" || choice == "yes"
}

func buildDocument(traces []Trace3D, modelPath, texturePath string, now time.Time) document {
	out := make([]traceOut, len(traces))
	for i, t := range traces {
		path := make([][]float64, len(t.Path))
		for j, p := range t.Path {
			path[j] = []float64{p.X, p.Y, p.Z}
		}
		out[i] = traceOut{
			Face:  [3]float64{t.Face.X, t.Face.Y, t.Face.Z},
			Color: t.Color,
			Path:  path,
		}
	}
	return document{
		GeneratedAt: now.Format(time.RFC3339),
		Model:       modelPath,
		Texture:     texturePath,
		Traces:      out,
	}
}
