package ast

import (
	"sync"

	"github.com/forgelang/forge/internal/diag"
)

// TypeResolverFunc computes the type of n under sc, appending diagnostics
// to buf on failure. It is the one hook the ast package cannot implement
// itself: resolving value_symbol needs Scope lookups and a resolution
// failure needs the diagnostic buffer. Per-kind resolvers live in package
// resolve and register themselves here at package init, the way
// database/sql drivers or image decoders register into a central table
// instead of being imported directly by their caller — the only way to
// give this registry real type-resolution hooks without resolve, ast, and
// scope forming an import cycle.
type TypeResolverFunc func(buf *diag.Buffer, sc *Scope, n *Node) (*Node, bool)

// kindHooks holds the per-kind static metadata and dispatch hooks the
// node-kind registry is built from: display name, flag set, an optional
// operator symbol, and the structural hooks whose correct behavior depends
// on which fields a kind actually populates (clone, compare, visitor child
// acceptance). The type resolver hook is registered separately by package
// resolve; see RegisterTypeResolver.
type kindHooks struct {
	name     string
	flags    Flag
	operator string
	clone    func(*Node) *Node
	compare  func(a, b *Node) bool
	accept   func(n *Node, visit func(*Node) *Node)
	resolve  TypeResolverFunc
}

var (
	registry     [kindCount]kindHooks
	registryOnce sync.Once
)

func kindInfo(k Kind) *kindHooks {
	registryOnce.Do(initRegistry)
	return &registry[k]
}

// RegisterTypeResolver installs the type-resolution hook for kind. It is
// meant to be called from package resolve's init() functions, once per
// kind; registering the same kind twice is a programming error and panics,
// mirroring the original table's single-initialization assertion.
func RegisterTypeResolver(kind Kind, fn TypeResolverFunc) {
	registryOnce.Do(initRegistry)
	if registry[kind].resolve != nil {
		panic("ast: type resolver already registered for kind " + registry[kind].name)
	}
	registry[kind].resolve = fn
}

// Resolver looks up the registered type resolver for n's kind. ok is false
// if no resolver has been registered (package resolve was never imported,
// or a kind was genuinely never given one — both programming errors at the
// call site, not conditions a compiled program can trigger).
func Resolver(n *Node) (TypeResolverFunc, bool) {
	fn := kindInfo(n.kind).resolve
	return fn, fn != nil
}

// KindName returns the kind's display name, e.g. "type-int", "value-call".
func KindName(k Kind) string { return kindInfo(k).name }

// KindFlags returns the kind's static flag set.
func KindFlags(k Kind) Flag { return kindInfo(k).flags }

// KindOperator returns the kind's operator symbol ("+", "&&", "~", ...), or
// "" for kinds with none.
func KindOperator(k Kind) string { return kindInfo(k).operator }

// AllKinds returns every non-sentinel Kind, in declaration order, for
// coverage tests that assert the registry has an entry for each one.
func AllKinds() []Kind {
	out := make([]Kind, 0, int(kindCount)-1)
	for k := KindInvalid + 1; k < kindCount; k++ {
		out = append(out, k)
	}
	return out
}

func initRegistry() {
	reg := func(k Kind, name string, flags Flag, op string, clone func(*Node) *Node, compare func(a, b *Node) bool, accept func(*Node, func(*Node) *Node)) {
		registry[k] = kindHooks{name: name, flags: flags, operator: op, clone: clone, compare: compare, accept: accept}
	}

	const (
		primary = FlagType | FlagTypePrimary
		typ     = FlagType
		decl    = FlagDeclaration
		declC   = FlagDeclaration | FlagHasChildren
		stmt    = FlagStatement
		stmtC   = FlagStatement | FlagHasChildren
		val     = FlagValue
		valC    = FlagValue | FlagHasChildren
	)

	reg(KindTypeVoid, "type-void", primary, "", cloneTypePrimary, compareAlwaysTrue, acceptLeaf)
	reg(KindTypeBool, "type-bool", primary, "", cloneTypePrimary, compareAlwaysTrue, acceptLeaf)
	reg(KindTypeInt, "type-int", typ, "", cloneTypeInt, compareInt, acceptLeaf)
	reg(KindTypeFloat, "type-float", typ, "", cloneTypeFloat, compareFloat, acceptLeaf)
	reg(KindTypeSymbol, "type-symbol", typ, "", cloneTypeSymbol, compareSymbol, acceptLeaf)
	reg(KindTypePointer, "type-pointer", typ, "*", cloneTypePointer, comparePointer, acceptInner)
	reg(KindTypeArray, "type-array", typ, "", cloneTypeArray, compareArray, acceptInner)
	reg(KindTypeFunction, "type-function", typ, "", cloneTypeFunction, compareFunction, acceptTypeFunction)

	reg(KindDeclUnion, "declaration-union", declC, "", cloneDeclUnionOrStructure, compareAlwaysTrue, acceptChildren)
	reg(KindDeclStructure, "declaration-structure", declC, "", cloneDeclUnionOrStructure, compareAlwaysTrue, acceptChildren)
	reg(KindDeclProperty, "declaration-property", decl, "", cloneDeclProperty, compareAlwaysTrue, acceptTypeOnly)
	reg(KindDeclInterface, "declaration-interface", declC, "", cloneDeclInterface, compareAlwaysTrue, acceptInterface)
	reg(KindDeclFunctionArgument, "declaration-function-argument", decl, "", cloneDeclFunctionArgument, compareAlwaysTrue, acceptFunctionArgument)
	reg(KindDeclFunction, "declaration-function", decl, "", cloneDeclFunction, compareAlwaysTrue, acceptDeclFunction)
	reg(KindDeclAssignment, "declaration-assignment", decl, "", cloneDeclAssignment, compareAlwaysTrue, acceptAssignment)
	reg(KindDeclBlock, "declaration-block", declC, "", cloneBlock, compareAlwaysTrue, acceptChildren)

	reg(KindStmtReturn, "statement-return", stmt, "", cloneStmtReturn, compareAlwaysTrue, acceptValueOnly)
	reg(KindStmtIf, "statement-if", stmtC, "", cloneStmtIf, compareAlwaysTrue, acceptStmtIf)
	reg(KindStmtWhile, "statement-while", stmt, "", cloneStmtWhile, compareAlwaysTrue, acceptWhile)
	reg(KindStmtBlock, "statement-block", stmtC, "", cloneBlock, compareAlwaysTrue, acceptChildren)

	reg(KindValueBool, "value-bool", val, "", cloneValueBool, compareAlwaysTrue, acceptLeaf)
	reg(KindValueInt, "value-int", val, "", cloneValueInt, compareAlwaysTrue, acceptLeaf)
	reg(KindValueFloat, "value-float", val, "", cloneValueFloat, compareAlwaysTrue, acceptLeaf)
	reg(KindValueCharacter, "value-character", val, "", cloneValueCharacter, compareAlwaysTrue, acceptLeaf)
	reg(KindValueString, "value-string", val, "", cloneValueString, compareAlwaysTrue, acceptLeaf)
	reg(KindValueArray, "value-array", valC, "", cloneBlock, compareAlwaysTrue, acceptChildren)
	reg(KindValueArrayRepeated, "value-array-repeated", val, "", cloneValueArrayRepeated, compareAlwaysTrue, acceptInner)
	reg(KindValueStructure, "value-structure", valC, "", cloneBlock, compareAlwaysTrue, acceptChildren)
	reg(KindValueSymbol, "value-symbol", val, "", cloneValueSymbol, compareAlwaysTrue, acceptLeaf)
	reg(KindValueDereference, "value-dereference", val, "", cloneUnaryLike, compareAlwaysTrue, acceptLeft)
	reg(KindValueGetAddress, "value-get-address", val, "", cloneUnaryLike, compareAlwaysTrue, acceptLeft)
	reg(KindValueCallKeywordArgument, "value-call-keyword-argument", val, "", cloneValueCallKeywordArgument, compareAlwaysTrue, acceptValueOnly)
	reg(KindValueCall, "value-call", valC, "", cloneValueCall, compareAlwaysTrue, acceptCall)
	reg(KindValueCast, "value-cast", val, "", cloneValueCast, compareAlwaysTrue, acceptCast)
	reg(KindValueAccess, "value-access", val, ".", cloneUnaryLike, compareAlwaysTrue, acceptLeft)

	for _, k := range unaryKinds {
		reg(k, unaryName(k), FlagValue|FlagValueUnary, unaryOperator(k), cloneUnaryLike, compareAlwaysTrue, acceptLeft)
	}
	for _, k := range binaryContainingKinds {
		reg(k, binaryName(k), FlagValue|FlagValueBinary, binaryOperator(k), cloneBinaryLike, compareAlwaysTrue, acceptBinary)
	}
	for _, k := range binaryShiftKinds {
		reg(k, binaryName(k), FlagValue|FlagValueBinary, binaryOperator(k), cloneBinaryLike, compareAlwaysTrue, acceptBinary)
	}
	for _, k := range binaryAssignKinds {
		reg(k, binaryName(k), FlagValue|FlagValueBinary, binaryOperator(k), cloneBinaryLike, compareAlwaysTrue, acceptBinary)
	}
}
