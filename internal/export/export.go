// Package export renders the computation graph reachable from a root Value
// in text formats understood by external tools.
//
// Supported formats:
//   - dot: Graphviz digraph with record-shaped nodes (render with `dot -Tsvg`)
//   - mermaid: Mermaid flowchart
//   - yaml: structured Snapshot for inspection or diffing
//
// Export has no effect on gradients; it reports whatever each Value holds at
// the time of the call.
package export

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/born-ml/backprop/internal/scalar"
)

// Format selects the output syntax.
type Format string

// Supported formats.
const (
	FormatDOT     Format = "dot"
	FormatMermaid Format = "mermaid"
	FormatYAML    Format = "yaml"
)

// Options configures an export.
type Options struct {
	// Format is the output syntax.
	// Default: FormatDOT
	Format Format

	// Direction is the layout direction for dot and mermaid (LR, TB, RL, BT).
	// Default: "LR"
	Direction string

	// Precision is the number of decimals used for gradients in dot and
	// mermaid labels. Values are always printed in shortest form.
	// Default: 4
	Precision int

	// GraphName is the dot graph identifier.
	// Default: "G"
	GraphName string

	// Logger receives a debug record per export. Nil uses the root's graph
	// logger.
	Logger *slog.Logger
}

// DefaultOptions returns the defaults for a Graphviz export.
func DefaultOptions() Options {
	return Options{
		Format:    FormatDOT,
		Direction: "LR",
		Precision: 4,
		GraphName: "G",
	}
}

// withDefaults fills zero fields from DefaultOptions.
func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.Format == "" {
		o.Format = d.Format
	}
	if o.Direction == "" {
		o.Direction = d.Direction
	}
	if o.Precision <= 0 {
		o.Precision = d.Precision
	}
	if o.GraphName == "" {
		o.GraphName = d.GraphName
	}
	return o
}

// Render returns the graph reachable from root as a string.
func Render(root *scalar.Value, opts Options) (string, error) {
	var buf bytes.Buffer
	if err := render(&buf, root, opts.withDefaults()); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Write renders the graph reachable from root to w.
//
// The document is rendered in memory first, so w receives nothing when
// rendering fails. Sink failures are returned as *WriteError.
func Write(w io.Writer, root *scalar.Value, opts Options) error {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	if err := render(&buf, root, opts); err != nil {
		return err
	}
	if _, err := w.Write(buf.Bytes()); err != nil {
		return &WriteError{Format: opts.Format, Err: err}
	}
	return nil
}

// WriteFile renders the graph reachable from root into the file at path,
// creating or truncating it.
func WriteFile(path string, root *scalar.Value, opts Options) error {
	opts = opts.withDefaults()

	var buf bytes.Buffer
	if err := render(&buf, root, opts); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return &WriteError{Format: opts.Format, Path: path, Err: err}
	}
	return nil
}

func render(buf *bytes.Buffer, root *scalar.Value, opts Options) error {
	snap, err := Capture(root)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatDOT:
		writeDOT(buf, snap, opts)
	case FormatMermaid:
		writeMermaid(buf, snap, opts)
	case FormatYAML:
		if err := writeYAML(buf, snap); err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, opts.Format)
	}

	logger := opts.Logger
	if logger == nil && root.Graph() != nil {
		logger = root.Graph().Logger()
	}
	if logger != nil {
		logger.Debug("graph exported",
			slog.String("format", string(opts.Format)),
			slog.String("graph", snap.Graph),
			slog.Int("nodes", len(snap.Nodes)),
			slog.Int("edges", len(snap.Edges)))
	}
	return nil
}
