package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelang/forge/internal/source"
)

func TestCloneProducesIndependentDeepCopy(t *testing.T) {
	inner := NewTypeInt(true, 32, source.Null)
	ptr := NewTypePointer(PointerFlagConst, inner, source.Null)

	cp := Clone(ptr)
	require.NotSame(t, ptr, cp)
	require.NotSame(t, ptr.Inner(), cp.Inner())
	assert.True(t, Compare(ptr, cp))

	// Mutating the clone's inner must not affect the original.
	cp.Inner().bitWidth = 64
	assert.Equal(t, 32, ptr.Inner().BitWidth())
}

func TestCloneListsUseFreshBackingArrays(t *testing.T) {
	a := NewTypeBool(source.Null)
	b := NewTypeInt(true, 8, source.Null)
	fn := NewTypeFunction([]*Node{NewProperty(0, "x", a, source.Null), NewProperty(0, "y", b, source.Null)}, nil, nil, NewTypeVoid(source.Null), source.Null)

	cp := Clone(fn)
	require.Len(t, cp.Children(), 2)
	for i := range cp.Children() {
		assert.NotSame(t, fn.Children()[i], cp.Children()[i])
	}
}

func TestCloneNilIsNil(t *testing.T) {
	assert.Nil(t, Clone(nil))
}

func TestComparePointerFlagsAndPointee(t *testing.T) {
	a := NewTypePointer(PointerFlagConst, NewTypeInt(true, 32, source.Null), source.Null)
	b := NewTypePointer(PointerFlagConst, NewTypeInt(true, 32, source.Null), source.Null)
	c := NewTypePointer(0, NewTypeInt(true, 32, source.Null), source.Null)
	d := NewTypePointer(PointerFlagConst, NewTypeInt(true, 64, source.Null), source.Null)

	assert.True(t, Compare(a, b))
	assert.False(t, Compare(a, c))
	assert.False(t, Compare(a, d))
}

func TestCompareArrayLengthAndElement(t *testing.T) {
	a := NewTypeArray(4, NewTypeBool(source.Null), source.Null)
	b := NewTypeArray(4, NewTypeBool(source.Null), source.Null)
	c := NewTypeArray(5, NewTypeBool(source.Null), source.Null)
	assert.True(t, Compare(a, b))
	assert.False(t, Compare(a, c))
}

func TestCompareFunctionArgsVariadicAndReturn(t *testing.T) {
	argsA := []*Node{NewProperty(0, "x", NewTypeInt(true, 32, source.Null), source.Null)}
	argsB := []*Node{NewProperty(0, "x", NewTypeInt(true, 32, source.Null), source.Null)}
	ret := NewTypeVoid(source.Null)

	a := NewTypeFunction(argsA, nil, nil, ret, source.Null)
	b := NewTypeFunction(argsB, nil, nil, ret, source.Null)
	assert.True(t, Compare(a, b))

	withVariadic := NewTypeFunction(argsB, NewTypeInt(true, 8, source.Null), nil, ret, source.Null)
	assert.False(t, Compare(a, withVariadic))
}

func TestCompareDifferentKindsNeverEqual(t *testing.T) {
	assert.False(t, Compare(NewTypeBool(source.Null), NewTypeVoid(source.Null)))
}

func TestCompareNilHandling(t *testing.T) {
	assert.True(t, Compare(nil, nil))
	assert.False(t, Compare(nil, NewTypeBool(source.Null)))
	assert.False(t, Compare(NewTypeBool(source.Null), nil))
}

func TestAcceptVisitsEveryChildOfABinaryNode(t *testing.T) {
	l := NewValueInt(true, 32, 1, source.Null)
	r := NewValueInt(true, 32, 2, source.Null)
	add := NewBinary(KindValueAdd, l, r, source.Null)

	var seen []*Node
	Accept(add, func(n *Node) *Node {
		seen = append(seen, n)
		return n
	})
	assert.Equal(t, []*Node{l, r}, seen)
}

func TestAcceptErasesRemovedListChildren(t *testing.T) {
	keep := NewValueBool(true, source.Null)
	drop := NewValueBool(false, source.Null)
	block := NewStmtBlock([]*Node{keep, drop}, source.Null)

	Accept(block, func(n *Node) *Node {
		if n == drop {
			return nil
		}
		return n
	})
	assert.Equal(t, []*Node{keep}, block.Children())
}

func TestAcceptCanTransplantAChild(t *testing.T) {
	original := NewValueBool(true, source.Null)
	replacement := NewValueBool(false, source.Null)
	ret := NewReturn(original, source.Null)

	Accept(ret, func(n *Node) *Node {
		if n == original {
			return replacement
		}
		return n
	})
	assert.Same(t, replacement, ret.Value())
}

func TestAcceptLeafVisitsNothing(t *testing.T) {
	called := false
	Accept(NewValueBool(true, source.Null), func(n *Node) *Node {
		called = true
		return n
	})
	assert.False(t, called)
}

func TestAcceptOnNilIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		Accept(nil, func(n *Node) *Node { return n })
	})
}
