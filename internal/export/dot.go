package export

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// recordEscaper escapes characters with special meaning in dot record labels.
var recordEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	`{`, `\{`,
	`}`, `\}`,
	`|`, `\|`,
	`<`, `\<`,
	`>`, `\>`,
)

// writeDOT emits a Graphviz digraph. Nodes are named N<key>; each is a record
// showing value, gradient, operation and graph identity. Edges run from
// operand to result and carry the operation symbol.
func writeDOT(buf *bytes.Buffer, s *Snapshot, opts Options) {
	fmt.Fprintf(buf, "digraph %s {\n", strconv.Quote(opts.GraphName))
	if s.Graph != "" {
		fmt.Fprintf(buf, "  // graph %s\n", s.Graph)
	}
	fmt.Fprintf(buf, "  rankdir=%s;\n", strconv.Quote(opts.Direction))

	for _, n := range s.Nodes {
		label := fmt.Sprintf("data=%s | grad=%s | op=%s | id=%d",
			recordEscaper.Replace(formatValue(n.Value)),
			recordEscaper.Replace(formatGrad(n.Grad, opts.Precision)),
			recordEscaper.Replace(n.Op),
			n.ID)
		fmt.Fprintf(buf, "  N%d [shape=record, label=\"%s\"];\n", n.Key, label)
	}

	for _, e := range s.Edges {
		fmt.Fprintf(buf, "  N%d -> N%d [label=%s];\n", e.From, e.To, strconv.Quote(e.Op))
	}

	buf.WriteString("}\n")
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func formatGrad(g float64, precision int) string {
	return strconv.FormatFloat(g, 'f', precision, 64)
}
