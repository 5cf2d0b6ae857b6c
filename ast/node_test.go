package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Techdojo/Lantern/lexer"
)

func TestNode(t *testing.T) {
	root := NewList(nil)

	assert.True(t, root.IsList())
	assert.False(t, root.IsValue())

	assert.NoError(t, root.Push(NewSymbol(nil, "+")))
	assert.NoError(t, root.Push(NewInt(nil, 1)))
	assert.NoError(t, root.Push(NewFloat(nil, 2.5)))

	assert.Equal(t, 3, len(root.List()))
	assert.Equal(t, "+", root.List()[0].Symbol())
	assert.Equal(t, int64(1), root.List()[1].Int())
	assert.Equal(t, 2.5, root.List()[2].Float())

	assert.Equal(t, root, root.List()[0].Parent())

	leaf := NewInt(nil, 1)
	assert.True(t, leaf.IsValue())
	assert.Error(t, leaf.Push(NewInt(nil, 2)))
}

func TestEncode(t *testing.T) {
	root := NewList(nil)

	inner, err := root.PushList(lexer.NewToken(lexer.TokenOpenParen, "(", 1, 1))
	assert.NoError(t, err)

	assert.NoError(t, inner.Push(NewSymbol(nil, "*")))
	assert.NoError(t, inner.Push(NewInt(nil, 6)))
	assert.NoError(t, inner.Push(NewFloat(nil, 1.5)))

	assert.Equal(t, "(* 6 1.5)", string(Encode(root)))
	assert.Equal(t, "(* 6 1.5)", string(Encode(inner)))
}
