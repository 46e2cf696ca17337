package resolve

import (
	"github.com/forgelang/forge/internal/ast"
	"github.com/forgelang/forge/internal/diag"
	"github.com/forgelang/forge/internal/source"
)

// The message texts below are copied verbatim (modulo Go's %s in place of
// the original's %s/%Lu/printf-family forms) from the original compiler's
// message catalog, one function per catalog entry so each resolver calls a
// named emitter instead of repeating a Sprintf template.

func emitUndeclaredSymbol(buf *diag.Buffer, rng source.Range, name string) {
	buf.Emitf(diag.Error, "ET-1", rng, "Symbol '%s' must be declared", name)
}

func emitCannotDereferenceNonPointer(buf *diag.Buffer, rng source.Range, typ *ast.Node) {
	buf.Emitf(diag.Error, "ET-2", rng, "Cannot dereference non-pointer type '%s'", ast.PrettyString(typ))
}

func emitCannotCallNonFunction(buf *diag.Buffer, rng source.Range, typ *ast.Node) {
	buf.Emitf(diag.Error, "ET-3", rng, "Cannot call non-function type '%s'", ast.PrettyString(typ))
}

func emitCannotGetAddressNonReference(buf *diag.Buffer, rng source.Range, typ *ast.Node) {
	buf.Emitf(diag.Error, "ET-4", rng, "Cannot get address of value with non-reference type '%s'", ast.PrettyString(typ))
}

func emitMismatchedReturnType(buf *diag.Buffer, rng source.Range, expected, actual *ast.Node) {
	buf.Emitf(diag.Error, "ET-5", rng, "Cannot return value of type '%s' in function with return type '%s'",
		ast.PrettyString(actual), ast.PrettyString(expected))
}

func emitOperatorUnexpectedOperandType(buf *diag.Buffer, rng source.Range, operatorName, operandName, expectedTypeName string, operandType *ast.Node) {
	buf.Emitf(diag.Error, "ET-6", rng, "Operator %s's %s must be %s, but is '%s'",
		operatorName, operandName, expectedTypeName, ast.PrettyString(operandType))
}

func emitNoContainingType(buf *diag.Buffer, rng source.Range, a, b *ast.Node) {
	buf.Emitf(diag.Internal, "IT-1", rng, "Unable to find a type that can contain both '%s' and '%s'",
		ast.PrettyString(a), ast.PrettyString(b))
}

// emitUnsupportedFeature covers the union/structure/interface/character/
// string/access kinds the resolver does not yet implement, matching the
// wording of the original's EFT-1 family without the numbered-requirement
// cross-reference those macros attach (this repo has no such numbering).
func emitUnsupportedFeature(buf *diag.Buffer, rng source.Range, featureName string) {
	buf.Emitf(diag.Error, "EFT-1", rng, "Language feature is not yet supported ('%s')", featureName)
}
