package visitor

import "github.com/forgelang/forge/internal/ast"

// Visitor is the per-kind handler-list traversal driver spec.md's component
// 5 names: a user-supplied context plus pre/post handler lists keyed by
// node kind, as distinct from the single-handler Walk helper in visitor.go (which
// is the quick one-off case; Visitor is for passes that install different
// logic per kind, the way a well-formedness checker registers one handler
// per declaration kind rather than a single handler that switches on
// n.Kind() internally).
type Visitor struct {
	ctx  any
	pre  map[ast.Kind][]Handler
	post map[ast.Kind][]Handler
}

// New returns an empty Visitor carrying ctx, retrievable by installed
// handlers via Context — handlers close over the Visitor they were
// registered on rather than receiving ctx as a parameter, so Context exists
// for handlers that need to be installed before the Visitor they'll run
// against is fully constructed.
func New(ctx any) *Visitor {
	return &Visitor{ctx: ctx, pre: map[ast.Kind][]Handler{}, post: map[ast.Kind][]Handler{}}
}

// Context returns the value New was constructed with.
func (v *Visitor) Context() any { return v.ctx }

// OnPre installs h to run before a node's children are visited, for every
// node of kind k. Handlers installed on the same kind run in registration
// order.
func (v *Visitor) OnPre(k ast.Kind, h Handler) { v.pre[k] = append(v.pre[k], h) }

// OnPost installs h to run after a node's children have all been visited
// (and possibly rewritten), for every node of kind k.
func (v *Visitor) OnPost(k ast.Kind, h Handler) { v.post[k] = append(v.post[k], h) }

// Walk traverses root, running every installed pre-handler for a node's
// kind before descending into its children and every installed post-handler
// after, mirroring spec.md §4.4's "pre-handlers run; acceptance recurses;
// post-handlers run" sequencing. A kind with no installed handlers simply
// passes through both phases unchanged. Stop returned from any handler
// halts the remainder of the walk immediately, including any sibling
// handlers still pending for the current node. Skip suppresses descent into
// the current node's children (and therefore its post-handlers never run,
// since there is nothing below it left to have completed) but lets the walk
// continue with siblings.
func (v *Visitor) Walk(root *ast.Node) *ast.Node {
	d := &dispatch{v: v}
	return d.visit(root, nil, 0)
}

type dispatch struct {
	v      *Visitor
	halted bool
}

func (d *dispatch) visit(n *ast.Node, parent *ast.Node, depth int) *ast.Node {
	if n == nil || d.halted {
		return n
	}

	cur, skipped := d.runHandlers(d.v.pre[n.Kind()], n, parent, depth)
	if d.halted || cur == nil || skipped {
		return cur
	}

	ast.Accept(cur, func(child *ast.Node) *ast.Node {
		if d.halted {
			return child
		}
		return d.visit(child, cur, depth+1)
	})
	if d.halted {
		return cur
	}

	cur, _ = d.runHandlers(d.v.post[cur.Kind()], cur, parent, depth)
	return cur
}

// runHandlers threads a node through every handler in hs in order,
// returning the final node and whether a Skip was observed.
func (d *dispatch) runHandlers(hs []Handler, n *ast.Node, parent *ast.Node, depth int) (*ast.Node, bool) {
	cur := n
	for _, h := range hs {
		replacement, result := h(cur, parent, depth)
		cur = replacement
		switch result {
		case Stop:
			d.halted = true
			return cur, false
		case Skip:
			return cur, true
		}
		if cur == nil {
			return nil, false
		}
	}
	return cur, false
}
