package export

import (
	"github.com/born-ml/backprop/internal/autodiff"
	"github.com/born-ml/backprop/internal/scalar"
)

// Snapshot is a flat description of the graph reachable from a root.
//
// Nodes appear in topological order (operands first, root last), each once.
// Edges run from operand to result, one per operand slot, so x + x yields
// two edges from x.
type Snapshot struct {
	Graph string       `yaml:"graph"`
	Root  int          `yaml:"root"`
	Nodes []NodeRecord `yaml:"nodes"`
	Edges []EdgeRecord `yaml:"edges"`
}

// NodeRecord describes one Value.
type NodeRecord struct {
	Key   int     `yaml:"key"` // position in Nodes, unique within the snapshot
	ID    uint64  `yaml:"id"`  // identity assigned by the owning Graph
	Value float64 `yaml:"value"`
	Grad  float64 `yaml:"grad"`
	Op    string  `yaml:"op"`
}

// EdgeRecord describes one operand relationship.
type EdgeRecord struct {
	From    int    `yaml:"from"` // operand key
	To      int    `yaml:"to"`   // result key
	Op      string `yaml:"op"`   // operation symbol
	Operand string `yaml:"operand"`
}

// Capture builds a Snapshot of everything reachable from root.
func Capture(root *scalar.Value) (*Snapshot, error) {
	if root == nil {
		return nil, ErrNilRoot
	}

	order := autodiff.TopologicalOrder(root)
	s := &Snapshot{
		Nodes: make([]NodeRecord, 0, len(order)),
	}
	index := make(map[*scalar.Value]int, len(order))
	if g := root.Graph(); g != nil {
		s.Graph = g.UUID().String()
	}

	for i, v := range order {
		index[v] = i
		s.Nodes = append(s.Nodes, NodeRecord{
			Key:   i,
			ID:    v.ID(),
			Value: v.Value(),
			Grad:  v.Grad(),
			Op:    v.Op().Kind.String(),
		})
	}

	// Operands precede results in order, so every index lookup succeeds.
	for i, v := range order {
		op := v.Op()
		if op.Kind == scalar.OpLeaf {
			continue
		}
		s.Edges = append(s.Edges,
			EdgeRecord{From: index[op.Left], To: i, Op: op.Kind.String(), Operand: "left"},
			EdgeRecord{From: index[op.Right], To: i, Op: op.Kind.String(), Operand: "right"},
		)
	}

	s.Root = len(order) - 1
	return s, nil
}
