package bintree

import (
	"fmt"
	"io"
	"strings"
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

// Tree2Dot outputs the structure of a tree in Graphviz DOT format
// (for debugging purposes). Missing children of inner nodes are drawn as
// small empty circles, so left and right edges can be told apart.
func Tree2Dot(t *Tree, w io.Writer) error {
	var nodelist, edgelist strings.Builder
	ids := newtable()
	nilid := 0
	t.walkNodes(PreOrder, func(n *node) bool {
		ID := ids.alloc(n)
		fmt.Fprintf(&nodelist, "\"%d\" [label=%d%s];\n", ID, n.value, nodeDotStyles(n.isLeaf()))
		if n.isLeaf() {
			return true
		}
		for _, child := range [...]*node{n.left, n.right} {
			if child == nil {
				nilid++
				fmt.Fprintf(&nodelist, "\"nil%d\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\"%d\" -> \"nil%d\";\n", ID, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\"%d\" -> \"%d\";\n", ID, ids.alloc(child))
		}
		return true
	})
	if _, err := io.WriteString(w, "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n"); err != nil {
		T().Errorf("tree DOT: %s", err.Error())
		return err
	}
	_, err := io.WriteString(w, nodelist.String()+edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,shape=circle,fixedsize=true,width=.2]"
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
