package permrope

import (
	"fmt"
	"io"
)

type nodeids struct {
	idTable map[*node]int
	max     int
}

func newtable() nodeids {
	return nodeids{
		idTable: make(map[*node]int),
		max:     1,
	}
}

func (ids nodeids) find(n *node) int {
	return ids.idTable[n]
}

func (ids *nodeids) alloc(n *node) int {
	if id := ids.find(n); id > 0 {
		return id
	}
	ids.idTable[n] = ids.max
	ids.max++
	return ids.max - 1
}

// Rope2Dot outputs the internal structure of a Rope in Graphviz DOT format
// (for debugging purposes).
//
// The tree is printed as it is stored: children of nodes with a pending
// reversal (drawn in orange) appear in their physical, not logical, order.
func Rope2Dot(rope *Rope, w io.Writer) error {
	if rope == nil {
		return ErrIllegalArguments
	}
	ids := newtable()
	nodelist, edgelist := "", ""
	nils := 0
	var visit func(n *node)
	visit = func(n *node) {
		ID := ids.alloc(n)
		label := fmt.Sprintf("%d\\n#%d Σ%d", n.value, n.summary.Size, n.summary.Sum)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", ID, label, nodeDotStyles(n))
		for _, ch := range []*node{n.left, n.right} {
			if ch == nil {
				nils++
				nodelist += fmt.Sprintf("\"nil%d\" %s;\n", nils, emptyNode())
				edgelist += fmt.Sprintf("\"%d\" -> \"nil%d\";\n", ID, nils)
				continue
			}
			edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", ID, ids.alloc(ch))
			visit(ch)
		}
	}
	if rope.root != nil {
		visit(rope.root)
	}
	_, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n")
	if err == nil {
		_, err = io.WriteString(w, nodelist+edgelist+"}\n")
	}
	if err != nil {
		tracer().Errorf("rope DOT: %s", err.Error())
	}
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=point]"
}

func nodeDotStyles(n *node) string {
	s := ",style=filled,shape=circle,color=black"
	if n.reversed {
		s += ",fillcolor=\"#FFAA66\""
	} else {
		s += ",fillcolor=\"#a3d7e4\""
	}
	return s
}
