package visitor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/source"
)

func TestVisitorRunsPreBeforeChildrenAndPostAfter(t *testing.T) {
	root := buildTree()
	var order []string

	v := New(nil)
	v.OnPre(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		order = append(order, "pre-add")
		return n, Ok
	})
	v.OnPost(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		order = append(order, "post-add")
		return n, Ok
	})
	v.OnPre(ast.KindValueInt, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		order = append(order, "pre-int")
		return n, Ok
	})

	v.Walk(root)
	assert.Equal(t, []string{"pre-add", "pre-int", "pre-int", "post-add"}, order)
}

func TestVisitorHandlersRunInRegistrationOrder(t *testing.T) {
	root := buildTree()
	var order []string

	v := New(nil)
	v.OnPre(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		order = append(order, "first")
		return n, Ok
	})
	v.OnPre(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		order = append(order, "second")
		return n, Ok
	})

	v.Walk(root)
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestVisitorSkipSuppressesChildrenAndPost(t *testing.T) {
	root := buildTree()
	postRan := false

	v := New(nil)
	v.OnPre(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		return n, Skip
	})
	v.OnPre(ast.KindValueInt, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		t.Fatal("children of a skipped node must not be visited")
		return n, Ok
	})
	v.OnPost(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		postRan = true
		return n, Ok
	})

	v.Walk(root)
	assert.False(t, postRan)
}

func TestVisitorStopHaltsWholeWalkImmediately(t *testing.T) {
	root := buildTree()
	var visited []ast.Kind

	v := New(nil)
	v.OnPre(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		visited = append(visited, n.Kind())
		return n, Stop
	})
	v.OnPost(ast.KindStmtReturn, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		t.Fatal("the return statement's post-handler must not run once halted")
		return n, Ok
	})
	v.OnPre(ast.KindStmtReturn, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		visited = append(visited, n.Kind())
		return n, Ok
	})

	v.Walk(root)
	assert.Equal(t, []ast.Kind{ast.KindStmtReturn, ast.KindValueAdd}, visited)
}

func TestVisitorPostHandlerSeesRewriteFromPre(t *testing.T) {
	root := buildTree()
	replacement := ast.NewValueInt(true, 32, 7, source.Null)
	var seenInPost *ast.Node

	v := New(nil)
	v.OnPre(ast.KindValueAdd, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		return replacement, Ok
	})
	v.OnPost(ast.KindValueInt, func(n *ast.Node, parent *ast.Node, _ int) (*ast.Node, Result) {
		if n == replacement {
			seenInPost = parent
		}
		return n, Ok
	})

	v.Walk(root)
	require.NotNil(t, seenInPost)
	assert.Equal(t, ast.KindStmtReturn, seenInPost.Kind())
}

func TestVisitorContextIsRetrievable(t *testing.T) {
	v := New("some-state")
	assert.Equal(t, "some-state", v.Context())
}

func TestVisitorKindWithNoHandlersPassesThroughUnchanged(t *testing.T) {
	root := buildTree()
	v := New(nil)
	result := v.Walk(root)
	assert.Same(t, root, result)
}
