// Package scalar implements the node model of the reverse-mode autodiff engine.
//
// A Graph is an arena that hands out sequential identities to the Values it
// creates. Values are immutable except for their gradient cell, which is
// written by the backward pass in package autodiff.
//
// Construction:
//
//	g := scalar.NewGraph()
//	x := g.Leaf(5)
//	w := g.Leaf(2)
//	y := x.Add(w)           // 7
//	z := y.Mul(g.Leaf(2))   // 14
//
// Every operation allocates a new Value whose operands already exist, so the
// resulting reference graph is acyclic by construction.
package scalar

import (
	"log/slog"

	"github.com/google/uuid"
)

// Graph is the arena that owns identity allocation for Values.
//
// A Graph is not safe for concurrent use. Callers building expressions from
// several goroutines must use one Graph per goroutine or serialize access.
type Graph struct {
	id     uuid.UUID
	next   uint64 // identity handed to the next Value
	logger *slog.Logger
}

// GraphOption configures a Graph at construction.
type GraphOption func(*Graph)

// WithLogger sets the logger used for debug records emitted while working
// with the graph (backward passes, exports). The default discards everything.
func WithLogger(logger *slog.Logger) GraphOption {
	return func(g *Graph) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// NewGraph creates an empty Graph.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		id:     uuid.New(),
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger.Debug("graph created", slog.String("graph", g.id.String()))
	return g
}

// UUID returns the globally unique identifier of the graph.
func (g *Graph) UUID() uuid.UUID {
	return g.id
}

// Logger returns the graph logger. Never nil.
func (g *Graph) Logger() *slog.Logger {
	return g.logger
}

// Len returns the number of Values allocated by this graph so far.
func (g *Graph) Len() int {
	return int(g.next)
}

// Leaf creates a new leaf Value with zero gradient.
func (g *Graph) Leaf(data float64) *Value {
	return g.newValue(data, Op{Kind: OpLeaf})
}

// Leaves creates one leaf per element of data, in order.
func (g *Graph) Leaves(data ...float64) []*Value {
	out := make([]*Value, len(data))
	for i, d := range data {
		out[i] = g.Leaf(d)
	}
	return out
}

func (g *Graph) newValue(data float64, op Op) *Value {
	v := &Value{
		id:    g.next,
		data:  data,
		op:    op,
		graph: g,
	}
	g.next++
	return v
}
