// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package export writes the computation graph reachable from a Value in
// Graphviz dot, Mermaid or YAML form.
//
// Example:
//
//	autodiff.Backward(z)
//	if err := export.WriteFile("graph.dot", z, export.DefaultOptions()); err != nil {
//	    log.Fatal(err)
//	}
//	// dot -Tsvg graph.dot -o graph.svg
package export

import (
	"io"

	"github.com/born-ml/backprop/internal/export"
	"github.com/born-ml/backprop/scalar"
)

// Format selects the output syntax.
type Format = export.Format

// Supported formats.
const (
	FormatDOT     = export.FormatDOT
	FormatMermaid = export.FormatMermaid
	FormatYAML    = export.FormatYAML
)

// Options configures an export.
type Options = export.Options

// Snapshot is a flat description of a graph: nodes and operand edges.
type Snapshot = export.Snapshot

// NodeRecord describes one node of a Snapshot.
type NodeRecord = export.NodeRecord

// EdgeRecord describes one operand edge of a Snapshot.
type EdgeRecord = export.EdgeRecord

// WriteError reports a failure of the destination sink.
type WriteError = export.WriteError

// Errors.
var (
	ErrUnsupportedFormat = export.ErrUnsupportedFormat
	ErrNilRoot           = export.ErrNilRoot
)

// DefaultOptions returns the defaults for a Graphviz export.
func DefaultOptions() Options {
	return export.DefaultOptions()
}

// Capture builds a Snapshot of everything reachable from root.
func Capture(root *scalar.Value) (*Snapshot, error) {
	return export.Capture(root)
}

// Render returns the graph reachable from root as a string.
func Render(root *scalar.Value, opts Options) (string, error) {
	return export.Render(root, opts)
}

// Write renders the graph reachable from root to w.
func Write(w io.Writer, root *scalar.Value, opts Options) error {
	return export.Write(w, root, opts)
}

// WriteFile renders the graph reachable from root into the file at path.
func WriteFile(path string, root *scalar.Value, opts Options) error {
	return export.WriteFile(path, root, opts)
}
