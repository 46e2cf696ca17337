package ast

// Accept enumerates n's immediate children to visit, in the traversal order
// a pre-order/post-order visitor expects. For each child, visit is called
// with the current child and must return its replacement: the same node to
// leave it alone, a different node to transplant a new subtree (ownership
// of the old one transfers to the caller), or nil to remove it. List
// children are rebuilt with removed entries erased, matching the
// "erase-on-null" semantics of the original visitor_acceptors.c.
//
// Kinds with FlagHasChildren unset but a single child field still accept
// that one child; leaf kinds (literals, symbols, primitive types) accept
// nothing.
func Accept(n *Node, visit func(*Node) *Node) {
	if n == nil {
		return
	}
	kindInfo(n.kind).accept(n, visit)
}

func acceptLeaf(*Node, func(*Node) *Node) {}

func acceptInner(n *Node, visit func(*Node) *Node) {
	if n.inner != nil {
		n.inner = visit(n.inner)
	}
}

func acceptLeft(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
}

func acceptValueOnly(n *Node, visit func(*Node) *Node) {
	if n.value != nil {
		n.value = visit(n.value)
	}
}

func acceptTypeOnly(n *Node, visit func(*Node) *Node) {
	if n.typ != nil {
		n.typ = visit(n.typ)
	}
}

func acceptBinary(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
	if n.right != nil {
		n.right = visit(n.right)
	}
}

func acceptChildren(n *Node, visit func(*Node) *Node) {
	n.children = visitList(n.children, visit)
}

func visitList(list []*Node, visit func(*Node) *Node) []*Node {
	out := list[:0:0]
	for _, c := range list {
		if c == nil {
			continue
		}
		if r := visit(c); r != nil {
			out = append(out, r)
		}
	}
	return out
}

func acceptTypeFunction(n *Node, visit func(*Node) *Node) {
	n.children = visitList(n.children, visit)
	if n.variadicPositional != nil {
		n.variadicPositional = visit(n.variadicPositional)
	}
	if n.variadicKeyword != nil {
		n.variadicKeyword = visit(n.variadicKeyword)
	}
	if n.typ != nil {
		n.typ = visit(n.typ)
	}
}

func acceptInterface(n *Node, visit func(*Node) *Node) {
	n.extends = visitList(n.extends, visit)
	n.children = visitList(n.children, visit)
}

func acceptFunctionArgument(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
	if n.value != nil {
		n.value = visit(n.value)
	}
}

func acceptDeclFunction(n *Node, visit func(*Node) *Node) {
	if n.typ != nil {
		n.typ = visit(n.typ)
	}
	if n.body != nil {
		n.body = visit(n.body)
	}
}

func acceptAssignment(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
	if n.value != nil {
		n.value = visit(n.value)
	}
}

func acceptStmtIf(n *Node, visit func(*Node) *Node) {
	for i := range n.clauses {
		if n.clauses[i].Condition != nil {
			n.clauses[i].Condition = visit(n.clauses[i].Condition)
		}
		if n.clauses[i].Body != nil {
			n.clauses[i].Body = visit(n.clauses[i].Body)
		}
	}
	if n.elseBody != nil {
		n.elseBody = visit(n.elseBody)
	}
}

func acceptWhile(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
	if n.body != nil {
		n.body = visit(n.body)
	}
}

func acceptCall(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
	n.children = visitList(n.children, visit)
	n.keywordArgs = visitList(n.keywordArgs, visit)
}

func acceptCast(n *Node, visit func(*Node) *Node) {
	if n.left != nil {
		n.left = visit(n.left)
	}
	if n.typ != nil {
		n.typ = visit(n.typ)
	}
}
