package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// DeclarationName returns n's name slot and true if n is a kind that
// introduces a named declaration (union, structure, property, interface,
// function) — the kinds that carry their own name slot. Scope's
// LoadDeclarationBlock also binds a declaration-assignment, under its
// property's name.
func DeclarationName(n *Node) (string, bool) {
	if n == nil {
		return "", false
	}
	switch n.kind {
	case KindDeclUnion, KindDeclStructure, KindDeclProperty, KindDeclInterface, KindDeclFunction:
		return n.name, true
	default:
		return "", false
	}
}

// PrettyString renders a resolved type node the way diagnostic messages
// quote it: 'u8', 'i32', 'bool', '*T', 'T[4]', or a declared name. It is
// defined only for the type family; calling it on anything else returns the
// kind name in angle brackets as a fallback for debugging.
func PrettyString(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	switch n.kind {
	case KindTypeVoid:
		return "void"
	case KindTypeBool:
		return "bool"
	case KindTypeInt:
		sign := "i"
		if !n.signed {
			sign = "u"
		}
		return sign + strconv.Itoa(n.bitWidth)
	case KindTypeFloat:
		return "f" + strconv.Itoa(n.bitWidth)
	case KindTypeSymbol:
		return n.name
	case KindTypePointer:
		return "*" + PrettyString(n.inner)
	case KindTypeArray:
		return fmt.Sprintf("%s[%d]", PrettyString(n.inner), n.length)
	case KindTypeFunction:
		args := make([]string, len(n.children))
		for i, a := range n.children {
			if a != nil && a.kind == KindDeclFunctionArgument {
				a = a.left
			}
			if a != nil && a.kind == KindDeclProperty {
				a = a.typ
			}
			args[i] = PrettyString(a)
		}
		return fmt.Sprintf("fn(%s) -> %s", strings.Join(args, ", "), PrettyString(n.typ))
	default:
		return "<" + KindName(n.kind) + ">"
	}
}

// DebugString renders n and its whole subtree in a stable, parenthesized
// s-expression form used by snapshot tests: (kind-name field=value ...
// child...). It never depends on map iteration order or pointer identity,
// so two structurally identical trees produce byte-identical output.
func DebugString(n *Node) string {
	var b strings.Builder
	dump(&b, n)
	return b.String()
}

func dump(b *strings.Builder, n *Node) {
	if n == nil {
		b.WriteString("nil")
		return
	}
	b.WriteByte('(')
	b.WriteString(KindName(n.kind))

	if n.name != "" {
		fmt.Fprintf(b, " name=%q", n.name)
	}
	if n.flags != 0 {
		fmt.Fprintf(b, " flags=%d", n.flags)
	}
	if n.ptrFlags != 0 {
		fmt.Fprintf(b, " ptr-flags=%d", n.ptrFlags)
	}

	switch n.kind {
	case KindTypeInt:
		fmt.Fprintf(b, " signed=%t width=%d", n.signed, n.bitWidth)
	case KindTypeFloat:
		fmt.Fprintf(b, " width=%d", n.bitWidth)
	case KindTypeArray, KindValueArrayRepeated:
		fmt.Fprintf(b, " length=%d", n.length)
	case KindValueBool:
		fmt.Fprintf(b, " value=%t", n.boolLit)
	case KindValueInt:
		fmt.Fprintf(b, " signed=%t width=%d bits=%d", n.signed, n.bitWidth, n.intLit)
	case KindValueFloat:
		fmt.Fprintf(b, " width=%d value=%v", n.bitWidth, n.floatLit)
	case KindValueCharacter:
		fmt.Fprintf(b, " value=%q", n.charLit)
	case KindValueString:
		fmt.Fprintf(b, " value=%q", n.stringLit)
	}
	if op := KindOperator(n.kind); op != "" {
		fmt.Fprintf(b, " op=%q", op)
	}

	for _, child := range []*Node{n.inner, n.typ, n.value, n.body, n.elseBody, n.left, n.right, n.variadicPositional, n.variadicKeyword} {
		if child != nil {
			b.WriteByte(' ')
			dump(b, child)
		}
	}
	for _, c := range n.clauses {
		b.WriteString(" (clause ")
		dump(b, c.Condition)
		b.WriteByte(' ')
		dump(b, c.Body)
		b.WriteByte(')')
	}
	for _, list := range [][]*Node{n.children, n.extends, n.keywordArgs} {
		for _, c := range list {
			b.WriteByte(' ')
			dump(b, c)
		}
	}

	b.WriteByte(')')
}
