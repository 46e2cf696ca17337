package ast

import "github.com/forgelang/forge/internal/source"

// Constructors assert the local invariants from the data model section:
// bit widths drawn from a fixed set, non-empty identifier-shaped names,
// positive lengths, and required children actually present. A violation
// here is a parser bug, not a user-facing diagnostic — the parser is
// contractually responsible for only ever building well-formed nodes
// (§7: "AST invariant violation ... classified internal severity because
// the parser is supposed to prevent these"), so these assertions panic
// rather than returning an error.

func assert(cond bool, msg string) {
	if !cond {
		panic("ast: invariant violated: " + msg)
	}
}

func isValidIdentifier(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_':
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case i > 0 && r >= '0' && r <= '9':
		default:
			return false
		}
	}
	return true
}

func assertIdentifier(name string) {
	assert(isValidIdentifier(name), "symbol name must be non-empty and start with a letter or underscore: "+name)
}

func assertIntWidth(width int) {
	assert(width == 8 || width == 16 || width == 32 || width == 64, "integer bit width must be one of 8, 16, 32, 64")
}

func assertFloatWidth(width int) {
	assert(width == 32 || width == 64, "float bit width must be one of 32, 64")
}

// --- Types -----------------------------------------------------------------

func NewTypeVoid(rng source.Range) *Node { return &Node{kind: KindTypeVoid, rng: rng} }

func NewTypeBool(rng source.Range) *Node { return &Node{kind: KindTypeBool, rng: rng} }

// NewTypeInt constructs an integer type of the given signedness and bit
// width; width must be one of 8, 16, 32, 64.
func NewTypeInt(signed bool, bitWidth int, rng source.Range) *Node {
	assertIntWidth(bitWidth)
	return &Node{kind: KindTypeInt, signed: signed, bitWidth: bitWidth, rng: rng}
}

// NewTypeFloat constructs a float type of the given bit width; width must
// be 32 or 64.
func NewTypeFloat(bitWidth int, rng source.Range) *Node {
	assertFloatWidth(bitWidth)
	return &Node{kind: KindTypeFloat, bitWidth: bitWidth, rng: rng}
}

func NewTypeSymbol(name string, rng source.Range) *Node {
	assertIdentifier(name)
	return &Node{kind: KindTypeSymbol, name: name, rng: rng}
}

func NewTypePointer(flags PointerFlag, inner *Node, rng source.Range) *Node {
	assert(inner != nil, "pointer type requires a non-nil inner type")
	return &Node{kind: KindTypePointer, ptrFlags: flags, inner: inner, rng: rng}
}

func NewTypeArray(length int, element *Node, rng source.Range) *Node {
	assert(length > 0, "array length must be positive")
	assert(element != nil, "array type requires a non-nil element type")
	return &Node{kind: KindTypeArray, length: length, inner: element, rng: rng}
}

// NewTypeFunction constructs a function type. returnType is always present
// after parsing, per the data model invariant.
func NewTypeFunction(args []*Node, variadicPositional, variadicKeyword, returnType *Node, rng source.Range) *Node {
	assert(returnType != nil, "function type requires a non-nil return type")
	return &Node{
		kind: KindTypeFunction, children: args,
		variadicPositional: variadicPositional, variadicKeyword: variadicKeyword,
		typ: returnType, rng: rng,
	}
}

// --- Declarations ------------------------------------------------------------

func NewUnion(name string, properties []*Node, rng source.Range) *Node {
	assertIdentifier(name)
	for _, p := range properties {
		assert(p != nil && p.kind == KindDeclProperty, "union members must be properties")
		assert(p.typ != nil, "a property inside a union must have a non-null type")
	}
	return &Node{kind: KindDeclUnion, name: name, children: properties, rng: rng}
}

func NewStructure(name string, declarations []*Node, rng source.Range) *Node {
	assertIdentifier(name)
	return &Node{kind: KindDeclStructure, name: name, children: declarations, rng: rng}
}

func NewProperty(flags DeclFlag, name string, typ *Node, rng source.Range) *Node {
	assertIdentifier(name)
	return &Node{kind: KindDeclProperty, flags: flags, name: name, typ: typ, rng: rng}
}

func NewInterface(flags DeclFlag, name string, extends, declarations []*Node, rng source.Range) *Node {
	assertIdentifier(name)
	return &Node{kind: KindDeclInterface, flags: flags, name: name, extends: extends, children: declarations, rng: rng}
}

func NewFunctionArgument(flags DeclFlag, property, defaultValue *Node, rng source.Range) *Node {
	assert(property != nil && property.kind == KindDeclProperty, "function argument requires a property child")
	return &Node{kind: KindDeclFunctionArgument, flags: flags, left: property, value: defaultValue, rng: rng}
}

func NewFunction(flags DeclFlag, name string, typ, body *Node, rng source.Range) *Node {
	assertIdentifier(name)
	assert(typ != nil && typ.kind == KindTypeFunction, "function declaration requires a function type")
	return &Node{kind: KindDeclFunction, flags: flags, name: name, typ: typ, body: body, rng: rng}
}

func NewAssignment(property, value *Node, rng source.Range) *Node {
	assert(property != nil && property.kind == KindDeclProperty, "assignment requires a property child")
	return &Node{kind: KindDeclAssignment, left: property, value: value, rng: rng}
}

func NewDeclBlock(declarations []*Node, rng source.Range) *Node {
	return &Node{kind: KindDeclBlock, children: declarations, rng: rng}
}

// --- Statements --------------------------------------------------------------

func NewReturn(value *Node, rng source.Range) *Node {
	return &Node{kind: KindStmtReturn, value: value, rng: rng}
}

func NewIf(clauses []IfClause, elseBody *Node, rng source.Range) *Node {
	assert(len(clauses) > 0, "if statement requires at least one clause")
	for _, c := range clauses {
		assert(c.Condition != nil && c.Body != nil, "if clause requires a condition and a body")
	}
	return &Node{kind: KindStmtIf, clauses: clauses, elseBody: elseBody, rng: rng}
}

func NewWhile(condition, body *Node, rng source.Range) *Node {
	assert(condition != nil, "while statement requires a condition")
	assert(body != nil, "while statement requires a body")
	return &Node{kind: KindStmtWhile, left: condition, body: body, rng: rng}
}

func NewStmtBlock(statements []*Node, rng source.Range) *Node {
	return &Node{kind: KindStmtBlock, children: statements, rng: rng}
}

// --- Values --------------------------------------------------------------

func NewValueBool(value bool, rng source.Range) *Node {
	return &Node{kind: KindValueBool, boolLit: value, rng: rng}
}

// NewValueInt constructs an integer literal whose embedded type tag is
// (signed, bitWidth); bits holds the literal's raw value truncated to that
// width.
func NewValueInt(signed bool, bitWidth int, bits uint64, rng source.Range) *Node {
	assertIntWidth(bitWidth)
	return &Node{kind: KindValueInt, signed: signed, bitWidth: bitWidth, intLit: bits, rng: rng}
}

func NewValueFloat(bitWidth int, value float64, rng source.Range) *Node {
	assertFloatWidth(bitWidth)
	return &Node{kind: KindValueFloat, bitWidth: bitWidth, floatLit: value, rng: rng}
}

func NewValueCharacter(value rune, rng source.Range) *Node {
	return &Node{kind: KindValueCharacter, charLit: value, rng: rng}
}

func NewValueString(value string, rng source.Range) *Node {
	return &Node{kind: KindValueString, stringLit: value, rng: rng}
}

func NewValueArray(elements []*Node, rng source.Range) *Node {
	return &Node{kind: KindValueArray, children: elements, rng: rng}
}

func NewValueArrayRepeated(length int, element *Node, rng source.Range) *Node {
	assert(length > 0, "repeated array length must be positive")
	assert(element != nil, "repeated array requires a non-nil element")
	return &Node{kind: KindValueArrayRepeated, length: length, inner: element, rng: rng}
}

func NewValueStructure(assignments []*Node, rng source.Range) *Node {
	return &Node{kind: KindValueStructure, children: assignments, rng: rng}
}

func NewValueSymbol(name string, rng source.Range) *Node {
	assertIdentifier(name)
	return &Node{kind: KindValueSymbol, name: name, rng: rng}
}

func NewDereference(operand *Node, rng source.Range) *Node {
	assert(operand != nil, "dereference requires a non-nil operand")
	return &Node{kind: KindValueDereference, left: operand, rng: rng}
}

func NewGetAddress(operand *Node, rng source.Range) *Node {
	assert(operand != nil, "get-address requires a non-nil operand")
	return &Node{kind: KindValueGetAddress, left: operand, rng: rng}
}

func NewCallKeywordArgument(name string, value *Node, rng source.Range) *Node {
	assertIdentifier(name)
	assert(value != nil, "call keyword argument requires a non-nil value")
	return &Node{kind: KindValueCallKeywordArgument, name: name, value: value, rng: rng}
}

func NewCall(callee *Node, args, keywordArgs []*Node, rng source.Range) *Node {
	assert(callee != nil, "call requires a non-nil callee")
	return &Node{kind: KindValueCall, left: callee, children: args, keywordArgs: keywordArgs, rng: rng}
}

func NewCast(value, typ *Node, rng source.Range) *Node {
	assert(value != nil, "cast requires a non-nil value")
	assert(typ != nil, "cast requires a non-nil target type")
	return &Node{kind: KindValueCast, left: value, typ: typ, rng: rng}
}

func NewAccess(base *Node, member string, rng source.Range) *Node {
	assert(base != nil, "access requires a non-nil base expression")
	assertIdentifier(member)
	return &Node{kind: KindValueAccess, left: base, name: member, rng: rng}
}

// NewUnary constructs a unary operator node of the given kind. kind must be
// one of the unary operator kinds (bit_not, logical_not, negate, increment,
// decrement).
func NewUnary(kind Kind, operand *Node, rng source.Range) *Node {
	assert(KindFlags(kind).Has(FlagValueUnary), "NewUnary requires a unary operator kind")
	assert(operand != nil, "unary operator requires a non-nil operand")
	return &Node{kind: kind, left: operand, rng: rng}
}

// NewBinary constructs a binary operator node (arithmetic, bitwise,
// comparison, logical, shift, assign, or compound-assign) of the given
// kind.
func NewBinary(kind Kind, left, right *Node, rng source.Range) *Node {
	assert(KindFlags(kind).Has(FlagValueBinary), "NewBinary requires a binary operator kind")
	assert(left != nil && right != nil, "binary operator requires non-nil operands")
	return &Node{kind: kind, left: left, right: right, rng: rng}
}
