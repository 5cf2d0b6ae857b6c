package ast

import (
	"errors"
	"fmt"

	"github.com/Techdojo/Lantern/lexer"
)

// Node represents a leaf or a branch of the expression tree. Value nodes
// hold an atom (integer, float or symbol), list nodes hold ordered
// children. The evaluator treats trees as read-only once built.
type Node struct {
	p *Node

	nt  NodeType
	tok *lexer.Token
	v   interface{}
}

func newNode(nt NodeType, tok *lexer.Token, v interface{}) *Node {
	return &Node{
		nt:  nt,
		v:   v,
		tok: tok,
	}
}

// NewInt creates and returns an orphaned integer node
func NewInt(tok *lexer.Token, v int64) *Node {
	return newNode(NodeTypeInt, tok, v)
}

// NewFloat creates and returns an orphaned float node
func NewFloat(tok *lexer.Token, v float64) *Node {
	return newNode(NodeTypeFloat, tok, v)
}

// NewSymbol creates and returns an orphaned symbol node
func NewSymbol(tok *lexer.Token, name string) *Node {
	return newNode(NodeTypeSymbol, tok, name)
}

// NewList creates and returns a node of type "list"
func NewList(tok *lexer.Token) *Node {
	return newNode(NodeTypeList, tok, []*Node{})
}

// Token returns the token associated to the node
func (n Node) Token() *lexer.Token {
	return n.tok
}

// Type returns the type of the node
func (n Node) Type() NodeType {
	return n.nt
}

// Value returns the raw value of the node
func (n Node) Value() interface{} {
	return n.v
}

// Int returns the value of an integer node
func (n Node) Int() int64 {
	return n.v.(int64)
}

// Float returns the value of a float node
func (n Node) Float() float64 {
	return n.v.(float64)
}

// Symbol returns the name of a symbol node
func (n Node) Symbol() string {
	return n.v.(string)
}

// List returns all the children elements of the node
func (n *Node) List() []*Node {
	return n.v.([]*Node)
}

func (n Node) String() string {
	if n.nt == NodeTypeList {
		return fmt.Sprintf("(%v)[%d]", nodeTypeName[n.nt], len(n.List()))
	}
	return fmt.Sprintf("(%v): %v", nodeTypeName[n.nt], n.v)
}

// Push appends a child node to a parent node of type "list".
func (n *Node) Push(node *Node) error {
	if n.IsList() {
		n.v = append(n.v.([]*Node), node)
		node.p = n
		return nil
	}
	return errors.New("nodes of type value can't accept children")
}

// PushList appends a new list node to the node
func (n *Node) PushList(tok *lexer.Token) (*Node, error) {
	node := NewList(tok)
	if err := n.Push(node); err != nil {
		return nil, err
	}
	return node, nil
}

// IsValue returns true if the node is an atom
func (n *Node) IsValue() bool {
	return n.nt&nodeTypeValue > 0
}

// IsList returns true if the node is a list
func (n *Node) IsList() bool {
	return n.nt&nodeTypeVector > 0
}

// Parent returns the node that contains this node, if any
func (n *Node) Parent() *Node {
	return n.p
}
