package export

import (
	"bytes"
	"fmt"
	"strings"
)

// writeMermaid emits a Mermaid flowchart equivalent to the dot output.
func writeMermaid(buf *bytes.Buffer, s *Snapshot, opts Options) {
	fmt.Fprintf(buf, "flowchart %s\n", opts.Direction)

	for _, n := range s.Nodes {
		label := fmt.Sprintf("data=%s<br/>grad=%s<br/>op=%s<br/>id=%d",
			formatValue(n.Value), formatGrad(n.Grad, opts.Precision), n.Op, n.ID)
		fmt.Fprintf(buf, "    N%d[\"%s\"]\n", n.Key, escapeMermaid(label))
	}

	for _, e := range s.Edges {
		fmt.Fprintf(buf, "    N%d -->|\"%s\"| N%d\n", e.From, escapeMermaid(e.Op), e.To)
	}
}

func escapeMermaid(s string) string {
	return strings.ReplaceAll(s, `"`, "#quot;")
}
