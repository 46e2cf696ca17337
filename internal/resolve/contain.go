package resolve

import (
	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/source"
)

// contain computes the smallest type that can represent every value either
// a or b can, the numeric containment relation the binary "containing"
// operator family resolves through. Only int and float types participate;
// any other combination fails. The result carries source.Null since it
// names a synthesized type, not a type written anywhere in the source.
func contain(a, b *ast.Node) (*ast.Node, bool) {
	if a == nil || b == nil {
		return nil, false
	}
	switch {
	case a.Kind() == ast.KindTypeInt && b.Kind() == ast.KindTypeInt:
		return containInt(a, b)
	case a.Kind() == ast.KindTypeFloat && b.Kind() == ast.KindTypeFloat:
		return containFloat(a, b), true
	case a.Kind() == ast.KindTypeInt && b.Kind() == ast.KindTypeFloat:
		return containIntFloat(a, b), true
	case a.Kind() == ast.KindTypeFloat && b.Kind() == ast.KindTypeInt:
		return containIntFloat(b, a), true
	default:
		return nil, false
	}
}

func containInt(a, b *ast.Node) (*ast.Node, bool) {
	if a.Signed() == b.Signed() {
		width := a.BitWidth()
		if b.BitWidth() > width {
			width = b.BitWidth()
		}
		return ast.NewTypeInt(a.Signed(), width, source.Null), true
	}

	signedNode, unsignedNode := a, b
	if unsignedNode.Signed() {
		signedNode, unsignedNode = b, a
	}
	wU := unsignedNode.BitWidth()
	if wU == 64 {
		return ast.NewTypeFloat(64, source.Null), true
	}
	width := 2 * wU
	if width > 64 {
		width = 64
	}
	if signedWidth := signedNode.BitWidth(); signedWidth > width {
		width = signedWidth
	}
	return ast.NewTypeInt(true, width, source.Null), true
}

func containFloat(a, b *ast.Node) *ast.Node {
	width := a.BitWidth()
	if b.BitWidth() > width {
		width = b.BitWidth()
	}
	return ast.NewTypeFloat(width, source.Null)
}

// containIntFloat picks 64 over 32 more eagerly for an unsigned operand
// (>=32 bits escalates) than a signed one (>32 bits escalates): an unsigned
// 32-bit int's full range needs more mantissa precision than a signed
// 32-bit int's, so float32 stops being sufficient one width sooner.
func containIntFloat(i, f *ast.Node) *ast.Node {
	width := 32
	if i.Signed() {
		if i.BitWidth() > 32 {
			width = 64
		}
	} else {
		if i.BitWidth() >= 32 {
			width = 64
		}
	}
	if f.BitWidth() > width {
		width = f.BitWidth()
	}
	return ast.NewTypeFloat(width, source.Null)
}
