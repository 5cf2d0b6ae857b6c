package ast

import (
	"fmt"
	"strings"
)

// Print displays a human-readable representation of a node
func Print(n *Node) {
	printLevel(n, 0)
}

func printLevel(n *Node, level int) {
	if n == nil {
		fmt.Printf(":nil\n")
		return
	}
	indent := strings.Repeat("    ", level)
	fmt.Printf("%s(%s): ", indent, n.Type())
	switch n.Type() {

	case NodeTypeList:
		fmt.Printf("(%v)\n", n.Token())
		list := n.List()
		for i := range list {
			printLevel(list[i], level+1)
		}

	default:
		fmt.Printf("%#v (%v)\n", n.Value(), n.Token())
	}
}

// Encode transforms a node back into its canonical text representation.
// The output is re-readable: feeding it to the parser yields an equal
// tree.
func Encode(n *Node) []byte {
	return encodeNodeLevel(n, 0)
}

func encodeNodeLevel(n *Node, level int) []byte {
	if n == nil {
		return []byte("")
	}
	switch n.Type() {
	case NodeTypeList:
		nodes := []string{}
		for _, c := range n.List() {
			nodes = append(nodes, string(encodeNodeLevel(c, level+1)))
		}
		if level == 0 && n.Token() == nil {
			// root container, not a written form
			return []byte(strings.Join(nodes, " "))
		}
		return []byte("(" + strings.Join(nodes, " ") + ")")

	case NodeTypeFloat:
		return []byte(fmt.Sprintf("%v", n.Float()))

	default:
		return []byte(fmt.Sprintf("%v", n.Value()))
	}
}
