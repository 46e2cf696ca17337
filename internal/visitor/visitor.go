// Package visitor implements a generic, mutable pre-order/post-order
// traversal over the AST, built on ast.Accept. It is the one place tree
// rewriting logic lives outside the resolver itself: passes that need to
// walk the whole tree (debug dumping, a future optimizer, anything that
// isn't type resolution) register handlers here instead of hand-rolling
// their own recursive descent.
package visitor

import "github.com/forgelang/forge/internal/ast"

// Result is what a handler returns to steer the traversal: continue
// normally, skip this node's children, or stop the whole walk. Replacing or
// removing the current node is expressed through the node a handler returns,
// not through a Result value.
type Result int

const (
	// Ok continues the traversal normally.
	Ok Result = iota
	// Skip continues the traversal but does not descend into this node's
	// children.
	Skip
	// Stop aborts the entire walk immediately.
	Stop
)

// Handler is called once per node: in pre-order by Walk, and in the pre or
// post phase it was installed for by a Visitor. It returns the node that
// should take this node's place (itself for no change, a different node to
// replace the subtree, or nil to remove it) along with a Result steering
// further traversal.
type Handler func(n *ast.Node, parent *ast.Node, depth int) (*ast.Node, Result)

// Walk traverses root pre-order, calling handle on every node including
// root itself. It returns the (possibly replaced) root, or nil if handle
// removed it. parent is nil for root.
func Walk(root *ast.Node, handle Handler) *ast.Node {
	w := &walker{handle: handle}
	return w.visit(root, nil, 0)
}

type walker struct {
	handle Handler
	halted bool
}

func (w *walker) visit(n *ast.Node, parent *ast.Node, depth int) *ast.Node {
	if n == nil || w.halted {
		return n
	}
	replacement, result := w.handle(n, parent, depth)
	switch result {
	case Stop:
		w.halted = true
		return replacement
	case Skip:
		return replacement
	}
	if replacement == nil {
		return nil
	}
	ast.Accept(replacement, func(child *ast.Node) *ast.Node {
		if w.halted {
			return child
		}
		return w.visit(child, replacement, depth+1)
	})
	return replacement
}

// Find returns the first node in root's subtree (pre-order, including root)
// for which pred reports true, or nil if none does.
func Find(root *ast.Node, pred func(*ast.Node) bool) *ast.Node {
	var found *ast.Node
	Walk(root, func(n *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		if pred(n) {
			found = n
			return n, Stop
		}
		return n, Ok
	})
	return found
}

// Count returns the number of nodes in root's subtree (including root) for
// which pred reports true.
func Count(root *ast.Node, pred func(*ast.Node) bool) int {
	n := 0
	Walk(root, func(node *ast.Node, _ *ast.Node, _ int) (*ast.Node, Result) {
		if pred(node) {
			n++
		}
		return node, Ok
	})
	return n
}
