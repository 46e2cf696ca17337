// Package resolve implements the type resolver: the per-kind
// TypeResolverFunc family that computes a node's type under a Scope,
// registered into package ast's node-kind registry from this package's
// init() so ast itself never needs to import resolve, diag's Buffer, or
// Scope-aware code directly (see ast.RegisterTypeResolver).
package resolve

import (
	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/diag"
	"github.com/forgelang/forge/internal/source"
)

// Resolve computes n's type under sc, the entry point callers outside this
// package use. It is a thin wrapper over the registry dispatch so callers
// never need to reach into ast.Resolver directly.
func Resolve(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	fn, ok := ast.Resolver(n)
	if !ok {
		panic("resolve: no type resolver registered for kind " + ast.KindName(n.Kind()))
	}
	return fn(buf, sc, n)
}

func init() {
	// Type kinds resolve to themselves: a type used where an expression's
	// type is expected (e.g. as a cast target fed back through Resolve)
	// just names itself.
	identity := func(_ *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
		return ast.Clone(n), true
	}
	for _, k := range []ast.Kind{
		ast.KindTypeVoid, ast.KindTypeBool, ast.KindTypeInt, ast.KindTypeFloat,
		ast.KindTypeSymbol, ast.KindTypePointer, ast.KindTypeArray, ast.KindTypeFunction,
	} {
		ast.RegisterTypeResolver(k, identity)
	}

	ast.RegisterTypeResolver(ast.KindDeclUnion, resolveDeclUnion)
	ast.RegisterTypeResolver(ast.KindDeclStructure, resolveDeclStructure)
	ast.RegisterTypeResolver(ast.KindDeclProperty, resolveDeclProperty)
	ast.RegisterTypeResolver(ast.KindDeclInterface, resolveDeclInterface)
	ast.RegisterTypeResolver(ast.KindDeclFunctionArgument, resolveDeclFunctionArgument)
	ast.RegisterTypeResolver(ast.KindDeclFunction, resolveDeclFunction)
	ast.RegisterTypeResolver(ast.KindDeclAssignment, resolveDeclAssignment)

	asBool := func(_ *diag.Buffer, _ *ast.Scope, _ *ast.Node) (*ast.Node, bool) {
		return ast.NewTypeBool(source.Null), true
	}
	for _, k := range []ast.Kind{
		ast.KindValueBool, ast.KindValueLogicalNot, ast.KindValueLogicalAnd, ast.KindValueLogicalOr,
		ast.KindValueEq, ast.KindValueNe, ast.KindValueLt, ast.KindValueLe, ast.KindValueGt, ast.KindValueGe,
	} {
		ast.RegisterTypeResolver(k, asBool)
	}

	ast.RegisterTypeResolver(ast.KindValueInt, resolveValueInt)
	ast.RegisterTypeResolver(ast.KindValueFloat, resolveValueFloat)
	ast.RegisterTypeResolver(ast.KindValueCharacter, unsupported("Character literals"))
	ast.RegisterTypeResolver(ast.KindValueString, unsupported("String literals"))
	ast.RegisterTypeResolver(ast.KindValueArray, resolveValueArray)
	ast.RegisterTypeResolver(ast.KindValueArrayRepeated, resolveValueArrayRepeated)
	ast.RegisterTypeResolver(ast.KindValueSymbol, resolveValueSymbol)
	ast.RegisterTypeResolver(ast.KindValueDereference, resolveValueDereference)
	ast.RegisterTypeResolver(ast.KindValueGetAddress, resolveValueGetAddress)
	ast.RegisterTypeResolver(ast.KindValueCallKeywordArgument, resolveValueCallKeywordArgument)
	ast.RegisterTypeResolver(ast.KindValueCall, resolveValueCall)
	ast.RegisterTypeResolver(ast.KindValueCast, resolveValueCast)
	ast.RegisterTypeResolver(ast.KindValueAccess, unsupported("Member access expressions"))

	ast.RegisterTypeResolver(ast.KindValueBitNot, resolveUnaryIntOnly)
	ast.RegisterTypeResolver(ast.KindValueIncrement, resolveUnaryNumericOnly)
	ast.RegisterTypeResolver(ast.KindValueDecrement, resolveUnaryNumericOnly)
	ast.RegisterTypeResolver(ast.KindValueNegate, resolveValueNegate)

	for _, k := range []ast.Kind{
		ast.KindValueBitAnd, ast.KindValueBitOr, ast.KindValueBitXor,
		ast.KindValueAdd, ast.KindValueSub, ast.KindValueMul, ast.KindValueDiv, ast.KindValueDivInt,
		ast.KindValueMod, ast.KindValueExp,
	} {
		ast.RegisterTypeResolver(k, resolveBinaryContaining)
	}

	for _, k := range []ast.Kind{ast.KindValueBitShl, ast.KindValueBitShr} {
		ast.RegisterTypeResolver(k, resolveBinaryLeft)
	}
	for _, k := range []ast.Kind{
		ast.KindValueAssign,
		ast.KindValueAddAssign, ast.KindValueSubAssign, ast.KindValueMulAssign, ast.KindValueDivAssign,
		ast.KindValueDivIntAssign, ast.KindValueModAssign, ast.KindValueExpAssign,
		ast.KindValueBitAndAssign, ast.KindValueBitOrAssign, ast.KindValueBitXorAssign,
		ast.KindValueBitShlAssign, ast.KindValueBitShrAssign,
	} {
		ast.RegisterTypeResolver(k, resolveBinaryLeft)
	}
}

func unsupported(featureName string) ast.TypeResolverFunc {
	return func(buf *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
		emitUnsupportedFeature(buf, n.Range(), featureName)
		return nil, false
	}
}

func resolveDeclUnion(buf *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	emitUnsupportedFeature(buf, n.Range(), "Union declarations")
	return nil, false
}

func resolveDeclStructure(buf *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	emitUnsupportedFeature(buf, n.Range(), "Struct declarations")
	return nil, false
}

func resolveDeclInterface(buf *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	emitUnsupportedFeature(buf, n.Range(), "Interface declarations")
	return nil, false
}

func resolveDeclProperty(buf *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	if n.Type() == nil {
		emitUnsupportedFeature(buf, n.Range(), "Dynamic objects")
		return nil, false
	}
	return ast.Clone(n.Type()), true
}

func resolveDeclFunctionArgument(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return Resolve(buf, sc, n.Left())
}

func resolveDeclFunction(_ *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return ast.Clone(n.Type()), true
}

func resolveDeclAssignment(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return Resolve(buf, sc, n.Left())
}

func resolveValueInt(_ *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return ast.NewTypeInt(n.Signed(), n.BitWidth(), source.Null), true
}

func resolveValueFloat(_ *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return ast.NewTypeFloat(n.BitWidth(), source.Null), true
}

func resolveValueArray(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	if len(n.Children()) == 0 {
		buf.Emit(diag.Internal, "", n.Range(), "Cannot resolve the type of an empty array literal")
		return nil, false
	}
	elemType, ok := Resolve(buf, sc, n.Children()[0])
	if !ok {
		return nil, false
	}
	return ast.NewTypeArray(len(n.Children()), elemType, source.Null), true
}

func resolveValueArrayRepeated(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	elemType, ok := Resolve(buf, sc, n.Inner())
	if !ok {
		return nil, false
	}
	return ast.NewTypeArray(n.Length(), elemType, source.Null), true
}

func resolveValueSymbol(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	decl, ok := sc.GetDeclaration(n.Name())
	if !ok {
		emitUndeclaredSymbol(buf, n.Range(), n.Name())
		return nil, false
	}
	return Resolve(buf, sc, decl)
}

func resolveValueDereference(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	operandType, ok := Resolve(buf, sc, n.Left())
	if !ok {
		return nil, false
	}
	if operandType.Kind() != ast.KindTypePointer || operandType.PointerFlags().Has(ast.PointerFlagImplicitDereference) {
		emitCannotDereferenceNonPointer(buf, n.Range(), operandType)
		return nil, false
	}
	return ast.NewTypePointer(operandType.PointerFlags()|ast.PointerFlagImplicitDereference, ast.Clone(operandType.Inner()), source.Null), true
}

func resolveValueGetAddress(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	operandType, ok := Resolve(buf, sc, n.Left())
	if !ok {
		return nil, false
	}
	if operandType.Kind() != ast.KindTypePointer || !operandType.PointerFlags().Has(ast.PointerFlagImplicitDereference) {
		emitCannotGetAddressNonReference(buf, n.Range(), operandType)
		return nil, false
	}
	return ast.NewTypePointer(0, operandType, source.Null), true
}

func resolveValueCallKeywordArgument(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return Resolve(buf, sc, n.Value())
}

func resolveValueCall(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	calleeType, ok := Resolve(buf, sc, n.Left())
	if !ok {
		return nil, false
	}
	if calleeType.Kind() != ast.KindTypeFunction {
		emitCannotCallNonFunction(buf, n.Range(), calleeType)
		return nil, false
	}
	return ast.Clone(calleeType.Type()), true
}

func resolveValueCast(_ *diag.Buffer, _ *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return ast.Clone(n.Type()), true
}

func resolveUnaryIntOnly(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	operandType, ok := Resolve(buf, sc, n.Left())
	if !ok {
		return nil, false
	}
	if operandType.Kind() != ast.KindTypeInt {
		emitOperatorUnexpectedOperandType(buf, n.Range(), ast.KindOperator(n.Kind()), "operand", "integer", operandType)
		return nil, false
	}
	return operandType, true
}

func resolveUnaryNumericOnly(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	operandType, ok := Resolve(buf, sc, n.Left())
	if !ok {
		return nil, false
	}
	if operandType.Kind() != ast.KindTypeInt && operandType.Kind() != ast.KindTypeFloat {
		emitOperatorUnexpectedOperandType(buf, n.Range(), ast.KindOperator(n.Kind()), "operand", "numeric", operandType)
		return nil, false
	}
	return operandType, true
}

func resolveValueNegate(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	operandType, ok := Resolve(buf, sc, n.Left())
	if !ok {
		return nil, false
	}
	switch operandType.Kind() {
	case ast.KindTypeInt:
		return ast.NewTypeInt(true, operandType.BitWidth(), source.Null), true
	case ast.KindTypeFloat:
		return operandType, true
	default:
		emitOperatorUnexpectedOperandType(buf, n.Range(), "-", "operand", "numeric", operandType)
		return nil, false
	}
}

// resolveBinaryContaining resolves both operands unconditionally, even when
// the left one already fails its category check, so that a subtree with two
// independently ill-typed operands accumulates one ET-6 per side rather than
// stopping at the first (spec.md §8: "a single subtree may accumulate
// multiple independent errors when operands are independently ill-typed").
func resolveBinaryContaining(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	leftType, leftOk := Resolve(buf, sc, n.Left())
	if leftOk && leftType.Kind() != ast.KindTypeInt && leftType.Kind() != ast.KindTypeFloat {
		emitOperatorUnexpectedOperandType(buf, n.Range(), ast.KindOperator(n.Kind()), "left-hand side", "numeric", leftType)
		leftOk = false
	}

	rightType, rightOk := Resolve(buf, sc, n.Right())
	if rightOk && rightType.Kind() != ast.KindTypeInt && rightType.Kind() != ast.KindTypeFloat {
		emitOperatorUnexpectedOperandType(buf, n.Range(), ast.KindOperator(n.Kind()), "right-hand side", "numeric", rightType)
		rightOk = false
	}

	if !leftOk || !rightOk {
		return nil, false
	}

	result, ok := contain(leftType, rightType)
	if !ok {
		emitNoContainingType(buf, n.Range(), leftType, rightType)
		return nil, false
	}
	return result, true
}

func resolveBinaryLeft(buf *diag.Buffer, sc *ast.Scope, n *ast.Node) (*ast.Node, bool) {
	return Resolve(buf, sc, n.Left())
}
