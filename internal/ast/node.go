package ast

import "github.com/forgelang/forge/internal/source"

// DeclFlag is a bitmask of declaration modifiers, carried on property,
// function, and function-argument nodes.
type DeclFlag uint32

const (
	// DeclFlagPublic marks a declaration visible outside its declaring scope.
	DeclFlagPublic DeclFlag = 1 << iota
	// DeclFlagMutable marks a property or argument as assignable after
	// initialization.
	DeclFlagMutable
	// DeclFlagVariadicPositional marks the trailing positional variadic
	// argument of a function.
	DeclFlagVariadicPositional
	// DeclFlagVariadicKeyword marks the trailing keyword variadic argument of a
	// function.
	DeclFlagVariadicKeyword
)

// PointerFlag is a bitmask of pointer-type modifiers.
type PointerFlag uint32

const (
	// PointerFlagImplicitDereference marks a pointer produced by an
	// l-value expression (a "reference"): the resolver requires this flag
	// to permit get_address, and requires its absence to permit
	// dereference.
	PointerFlagImplicitDereference PointerFlag = 1 << iota
	// PointerFlagConst marks a pointer to immutable data.
	PointerFlagConst
)

// IfClause is one `condition { body }` arm of an if statement.
type IfClause struct {
	Condition *Node
	Body      *Node
}

// Node is a single AST node. Every node carries a Kind tag and a source
// Range; the remaining fields are populated according to Kind, following
// the per-kind field roles documented on the accessor methods below. A field is shared
// across several kinds when its role never conflicts (e.g. Left is both
// "binary left operand" and "unary operand" and "assignment property",
// never more than one of which applies to a given Kind) — the same
// technique the teacher's own node struct uses for its CFG/AST dual-purpose
// fields.
//
// Every child pointer is exclusively owned by its parent: cloning deep
// copies the whole subtree, and there is never a second owning reference to
// any *Node reachable from a tree root. Scope and other side-tables only
// ever borrow *Node values produced elsewhere.
type Node struct {
	kind Kind
	rng  source.Range

	name     string
	flags    DeclFlag
	ptrFlags PointerFlag

	signed   bool
	bitWidth int
	length   int

	inner    *Node
	typ      *Node
	value    *Node
	body     *Node
	elseBody *Node
	left     *Node
	right    *Node

	children    []*Node
	extends     []*Node
	keywordArgs []*Node
	clauses     []IfClause

	variadicPositional *Node
	variadicKeyword    *Node

	boolLit   bool
	intLit    uint64
	floatLit  float64
	charLit   rune
	stringLit string
}

// Kind returns the node's discriminant.
func (n *Node) Kind() Kind { return n.kind }

// Range returns the node's source range.
func (n *Node) Range() source.Range { return n.rng }

// Name returns the node's name slot: a type symbol's name, a declaration's
// name, a value-symbol's referent, a call-keyword-argument's key, or an
// access expression's member name.
func (n *Node) Name() string { return n.name }

// Flags returns the node's declaration-modifier flags.
func (n *Node) Flags() DeclFlag { return n.flags }

// PointerFlags returns a TypePointer node's modifier flags.
func (n *Node) PointerFlags() PointerFlag { return n.ptrFlags }

// Signed reports the sign of a TypeInt/TypeFloat type or a value literal's
// embedded type tag's sign (floats are always "signed" in the sense that
// the field is meaningless for them; resolvers never read it for floats).
func (n *Node) Signed() bool { return n.signed }

// BitWidth returns a TypeInt/TypeFloat's bit width, or a value literal's
// embedded type tag's bit width.
func (n *Node) BitWidth() int { return n.bitWidth }

// Length returns a TypeArray's declared length or a value-array-repeated's
// declared repeat count.
func (n *Node) Length() int { return n.length }

// Inner returns a TypePointer's pointee, a TypeArray's element type, or a
// value-array-repeated's repeated element value.
func (n *Node) Inner() *Node { return n.inner }

// Type returns a declaration-property's type, a declaration-function's
// function type, a type-function's return type, or a value-cast's target
// type.
func (n *Node) Type() *Node { return n.typ }

// Value returns a declaration-assignment's or statement-return's optional
// value, a declaration-function-argument's default value, or a
// value-call-keyword-argument's value.
func (n *Node) Value() *Node { return n.value }

// Body returns a declaration-function's or statement-while's body block.
func (n *Node) Body() *Node { return n.body }

// ElseBody returns a statement-if's optional else block.
func (n *Node) ElseBody() *Node { return n.elseBody }

// Left returns the left operand of a binary value, the sole operand of a
// unary/dereference/get-address value, a value-access's base expression, a
// value-call's callee, a value-cast's source value, a
// declaration-assignment's or declaration-function-argument's property
// sub-node, or a statement-while's condition.
func (n *Node) Left() *Node { return n.left }

// Right returns the right operand of a binary value.
func (n *Node) Right() *Node { return n.right }

// Children returns a type-function's argument list, a declaration-union's
// properties, a declaration-structure's or declaration-interface's or
// declaration-block's or statement-block's declarations/statements, a
// value-call's positional arguments, a value-array's elements, or a
// value-structure's field assignments.
func (n *Node) Children() []*Node { return n.children }

// Extends returns a declaration-interface's extended interface list.
func (n *Node) Extends() []*Node { return n.extends }

// KeywordArgs returns a value-call's keyword argument list.
func (n *Node) KeywordArgs() []*Node { return n.keywordArgs }

// Clauses returns a statement-if's condition/body arms.
func (n *Node) Clauses() []IfClause { return n.clauses }

// VariadicPositional returns a type-function's trailing positional-variadic
// argument type, or nil.
func (n *Node) VariadicPositional() *Node { return n.variadicPositional }

// VariadicKeyword returns a type-function's trailing keyword-variadic
// argument type, or nil.
func (n *Node) VariadicKeyword() *Node { return n.variadicKeyword }

// BoolValue returns a value-bool literal's value.
func (n *Node) BoolValue() bool { return n.boolLit }

// IntBits returns a value-int literal's raw bit pattern; combine with
// BitWidth/Signed to interpret it.
func (n *Node) IntBits() uint64 { return n.intLit }

// FloatValue returns a value-float literal's value.
func (n *Node) FloatValue() float64 { return n.floatLit }

// CharValue returns a value-character literal's codepoint.
func (n *Node) CharValue() rune { return n.charLit }

// StringValue returns a value-string literal's text.
func (n *Node) StringValue() string { return n.stringLit }
