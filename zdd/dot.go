package zdd

import (
	"bufio"
	"fmt"
	"io"
)

// WriteDOT renders the built diagram as Graphviz DOT: one node per diagram
// node, labeled with its level (plus the two terminals), solid edges for
// the 1-branch (take), dashed
// for the 0-branch (skip). No analogue in the original puzzle's own
// dumper, which only ever dots the board graph — this is a natural
// extension now that the ZDD engine is a first-class package rather than
// an external black box.
func (b *Builder[S]) WriteDOT(w io.Writer) error {
	b.mu.RLock()
	defer b.mu.RUnlock()

	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, "digraph zdd {")
	fmt.Fprintln(bw, `0 [shape=box,label="0"];`)
	fmt.Fprintln(bw, `1 [shape=box,label="1"];`)

	for id := 2; id < len(b.nodes); id++ {
		n := b.nodes[id]
		fmt.Fprintf(bw, "%d [label=\"%d\"];\n", id, n.level)
		fmt.Fprintf(bw, "%d -> %d [style=dashed];\n", id, int(n.lo))
		fmt.Fprintf(bw, "%d -> %d [style=solid];\n", id, int(n.hi))
	}

	fmt.Fprintln(bw, "}")

	return bw.Flush()
}
